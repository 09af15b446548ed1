package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	SessionStatusOpen   = "open"
	SessionStatusClosed = "closed"
)

// Session is a scheduled run of a Script at a venue.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID       int64 `bun:"id,pk,autoincrement"`
	ScriptID int64 `bun:"script_id,notnull"`

	HostName        string     `bun:"host_name"`
	PlayTime        *time.Time `bun:"play_time,nullzero"`
	BranchName      string     `bun:"branch_name"`
	NarrativeMemory string     `bun:"narrative_memory"`
	BaseExperience  int64      `bun:"base_experience,notnull,default:0"`
	Status          string     `bun:"status,notnull,default:'open'"`

	Script *Script `bun:"rel:belongs-to,join:script_id=id"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// Joinable reports whether the session still accepts participants.
func (s *Session) Joinable() bool {
	return s.Status == SessionStatusOpen
}
