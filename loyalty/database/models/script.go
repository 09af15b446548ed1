package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Script is a reusable session template. Title doubles as the lookup key for
// the import collaborator path.
type Script struct {
	bun.BaseModel `bun:"table:scripts,alias:sc"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Title    string `bun:"title,notnull,unique"`
	CoverURL string `bun:"cover_url"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
