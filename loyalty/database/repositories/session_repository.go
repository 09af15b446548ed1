package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/uptrace/bun"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Session, error)
}

type sessionRepository struct {
	db *bun.DB
}

func NewSessionRepository(db *bun.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session := new(models.Session)
	err := r.db.NewSelect().
		Model(session).
		Relation("Script").
		Where("s.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
