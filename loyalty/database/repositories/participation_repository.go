package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// ErrDuplicateParticipation is raised when the (session, member) uniqueness
// rule rejects an insert. The ledger reports it as AlreadyJoined.
var ErrDuplicateParticipation = errors.New("participation record already exists")

type ParticipationRepository interface {
	Exists(ctx context.Context, sessionID int64, memberID string) (bool, error)
	CreateTx(ctx context.Context, tx bun.Tx, record *models.ParticipationRecord) error
	GetHistoryByMember(ctx context.Context, memberID string) ([]*models.ParticipationRecord, error)
}

type participationRepository struct {
	db *bun.DB
}

func NewParticipationRepository(db *bun.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Exists(ctx context.Context, sessionID int64, memberID string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.ParticipationRecord)(nil)).
		Where("session_id = ?", sessionID).
		Where("member_id = ?", memberID).
		Exists(ctx)
}

// CreateTx inserts the join artifact inside the caller's transaction. The
// unique index on (session_id, member_id) makes the insert the real
// concurrency guard; a violation surfaces as ErrDuplicateParticipation.
func (r *participationRepository) CreateTx(ctx context.Context, tx bun.Tx, record *models.ParticipationRecord) error {
	record.CreatedAt = time.Now()
	_, err := tx.NewInsert().Model(record).Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrDuplicateParticipation
		}
		return fmt.Errorf("failed to insert participation record: %w", err)
	}
	return nil
}

func (r *participationRepository) GetHistoryByMember(ctx context.Context, memberID string) ([]*models.ParticipationRecord, error) {
	var records []*models.ParticipationRecord
	err := r.db.NewSelect().
		Model(&records).
		Relation("Session").
		Relation("Session.Script").
		Where("pr.member_id = ?", memberID).
		Order("pr.created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to load participation history: %w", err)
	}
	return records, nil
}
