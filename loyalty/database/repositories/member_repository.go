package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/uptrace/bun"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id string) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	UpdateLevel(ctx context.Context, id string, level int) error
	UpdateProfile(ctx context.Context, member *models.Member) error
	MaxSequenceNumber(ctx context.Context) (string, error)
	ApplyExperienceTx(ctx context.Context, tx bun.Tx, id string, delta int64, newLevel int) error
}

type memberRepository struct {
	db *bun.DB
}

func NewMemberRepository(db *bun.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(member).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	slog.Debug("MemberRepository.GetByID called",
		slog.String("type", "db"),
		slog.String("operation", "GetByID"),
		slog.String("member_id", id))

	member := new(models.Member)
	err := r.db.NewSelect().
		Model(member).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		slog.Error("Database error when getting member",
			slog.String("type", "db"),
			slog.String("operation", "GetByID"),
			slog.String("member_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	member.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(member).
		WherePK().
		Exec(ctx)
	return err
}

// UpdateLevel writes only the level column. Used by the reconciliation pass,
// which must never touch total_experience.
func (r *memberRepository) UpdateLevel(ctx context.Context, id string, level int) error {
	_, err := r.db.NewUpdate().
		Model((*models.Member)(nil)).
		Set("level = ?", level).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// UpdateProfile persists the member-editable fields only.
func (r *memberRepository) UpdateProfile(ctx context.Context, member *models.Member) error {
	_, err := r.db.NewUpdate().
		Model(member).
		Column("display_name", "phone", "birth_date", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

// MaxSequenceNumber returns the highest assigned sequence number, or an empty
// string when no members exist.
func (r *memberRepository) MaxSequenceNumber(ctx context.Context) (string, error) {
	var seq string
	err := r.db.NewSelect().
		Model((*models.Member)(nil)).
		Column("sequence_number").
		OrderExpr("sequence_number DESC").
		Limit(1).
		Scan(ctx, &seq)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read max sequence number: %w", err)
	}
	return seq, nil
}

// ApplyExperienceTx adds delta to total_experience and sets the new level in
// one statement, inside the caller's transaction.
func (r *memberRepository) ApplyExperienceTx(ctx context.Context, tx bun.Tx, id string, delta int64, newLevel int) error {
	res, err := tx.NewUpdate().
		Model((*models.Member)(nil)).
		Set("total_experience = total_experience + ?", delta).
		Set("level = ?", newLevel).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply experience: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
