package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/uptrace/bun"
)

var ErrScriptNotFound = errors.New("script not found")

type ScriptRepository interface {
	GetByTitle(ctx context.Context, title string) (*models.Script, error)
	GetOrCreateByTitle(ctx context.Context, title string) (*models.Script, error)
}

type scriptRepository struct {
	db *bun.DB
}

func NewScriptRepository(db *bun.DB) ScriptRepository {
	return &scriptRepository{db: db}
}

func (r *scriptRepository) GetByTitle(ctx context.Context, title string) (*models.Script, error) {
	script := new(models.Script)
	err := r.db.NewSelect().
		Model(script).
		Where("title = ?", title).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScriptNotFound
		}
		return nil, err
	}
	return script, nil
}

// GetOrCreateByTitle resolves a script by its title, creating a bare row on a
// lookup miss. Serves the external import collaborator, which references
// scripts by name only. The unique title index makes concurrent creates
// converge on a single row.
func (r *scriptRepository) GetOrCreateByTitle(ctx context.Context, title string) (*models.Script, error) {
	script, err := r.GetByTitle(ctx, title)
	if err == nil {
		return script, nil
	}
	if !errors.Is(err, ErrScriptNotFound) {
		return nil, err
	}

	script = &models.Script{
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err = r.db.NewInsert().
		Model(script).
		On("CONFLICT (title) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create script %q: %w", title, err)
	}

	// The conflict path leaves script.ID unset; re-read either way.
	return r.GetByTitle(ctx, title)
}
