package progression

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/limelight-tw/loyalty/loyalty/database"
	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
	"github.com/limelight-tw/loyalty/loyalty/logger"
	"github.com/uptrace/bun"
)

var (
	// ErrSessionNotJoinable covers both a missing session and a closed one.
	ErrSessionNotJoinable = errors.New("session is not joinable")
	ErrAlreadyJoined      = errors.New("member already joined this session")
)

// LevelUpRewarder is notified after a join commits an experience change that
// crosses a level boundary. Issuance is best-effort: a returned error is
// logged and never unwinds the join.
type LevelUpRewarder interface {
	IssueLevelUpCoupon(ctx context.Context, memberID string, newLevel int) error
}

// TxRunner runs a function inside one database transaction.
// *database.TransactionManager is the production implementation.
type TxRunner interface {
	WithTransaction(ctx context.Context, opts *database.TransactionOptions, fn func(context.Context, bun.Tx) error) error
}

// Service is the session-join ledger. The participation insert and the member
// experience update commit as one transaction; the unique index on
// (session_id, member_id) is the concurrency guard, so a join is idempotent
// even when two devices race.
type Service struct {
	sessionRepo       repositories.SessionRepository
	participationRepo repositories.ParticipationRepository
	memberRepo        repositories.MemberRepository
	scriptRepo        repositories.ScriptRepository
	txm               TxRunner
	rewarder          LevelUpRewarder
}

func NewService(
	sessionRepo repositories.SessionRepository,
	participationRepo repositories.ParticipationRepository,
	memberRepo repositories.MemberRepository,
	scriptRepo repositories.ScriptRepository,
	txm TxRunner,
	rewarder LevelUpRewarder,
) *Service {
	return &Service{
		sessionRepo:       sessionRepo,
		participationRepo: participationRepo,
		memberRepo:        memberRepo,
		scriptRepo:        scriptRepo,
		txm:               txm,
		rewarder:          rewarder,
	}
}

// EnsureScript resolves a script for collaborators that reference scripts by
// name only, creating a bare row when the lookup misses. The unique title
// index makes concurrent creates converge on one row.
func (s *Service) EnsureScript(ctx context.Context, title string) (*models.Script, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("script title is required")
	}
	return s.scriptRepo.GetOrCreateByTitle(ctx, title)
}

// Join registers the member's attendance at the session, awards its base
// experience and detects level-ups. The passed member is mutated to reflect
// the committed totals.
func (s *Service) Join(ctx context.Context, member *models.Member, sessionID int64) (*JoinResult, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotJoinable
		}
		return nil, err
	}
	if !session.Joinable() {
		return nil, ErrSessionNotJoinable
	}

	// Fast-path duplicate check. The authoritative guard is the unique index
	// hit inside the transaction below.
	exists, err := s.participationRepo.Exists(ctx, sessionID, member.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyJoined
	}

	earned := session.BaseExperience
	before := LevelInfo(member.TotalExperience)
	after := LevelInfo(member.TotalExperience + earned)

	err = s.txm.WithTransaction(ctx, nil, func(txCtx context.Context, tx bun.Tx) error {
		record := &models.ParticipationRecord{
			SessionID:        sessionID,
			MemberID:         member.ID,
			ExperienceGained: earned,
		}
		if err := s.participationRepo.CreateTx(txCtx, tx, record); err != nil {
			return err
		}
		return s.memberRepo.ApplyExperienceTx(txCtx, tx, member.ID, earned, after.Level)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateParticipation) {
			return nil, ErrAlreadyJoined
		}
		return nil, err
	}

	member.TotalExperience += earned
	member.Level = after.Level

	result := &JoinResult{
		ExpAwarded:  earned,
		NewTotalExp: member.TotalExperience,
		LeveledUp:   after.Level > before.Level,
		NewLevel:    after.Level,
	}

	slog.Info("Session joined",
		slog.String("member_id", member.ID),
		slog.Int64("session_id", sessionID),
		slog.Int64("exp_awarded", earned),
		slog.Bool("leveled_up", result.LeveledUp))

	if result.LeveledUp && s.rewarder != nil {
		if err := s.rewarder.IssueLevelUpCoupon(ctx, member.ID, after.Level); err != nil {
			// Best-effort: the experience change is kept even when the coupon
			// insert fails.
			logger.LogError("Level-up coupon issuance failed", err,
				slog.String("member_id", member.ID),
				slog.Int("new_level", after.Level))
		}
	}

	return result, nil
}
