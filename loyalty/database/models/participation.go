package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ParticipationRecord is the join artifact between a Member and a Session.
// At most one record exists per (session, member) pair, enforced by a unique
// index at the storage layer.
type ParticipationRecord struct {
	bun.BaseModel `bun:"table:participation_records,alias:pr"`

	ID        int64  `bun:"id,pk,autoincrement"`
	SessionID int64  `bun:"session_id,notnull"`
	MemberID  string `bun:"member_id,notnull"`

	ExperienceGained int64  `bun:"experience_gained,notnull,default:0"`
	Comment          string `bun:"comment"`

	Session *Session `bun:"rel:belongs-to,join:session_id=id"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
