package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Member struct {
	bun.BaseModel `bun:"table:members,alias:m"`

	// ID is issued by the external identity platform and never changes.
	ID            string `bun:"id,pk"`
	DisplayName   string `bun:"display_name,notnull"`
	AvatarURL     string `bun:"avatar_url"`
	SequenceNumber string `bun:"sequence_number,notnull,unique"`

	Level           int   `bun:"level,notnull,default:1"`
	TotalExperience int64 `bun:"total_experience,notnull,default:0"`

	Phone         string     `bun:"phone"`
	BirthDate     *time.Time `bun:"birth_date,nullzero"`
	OverrideTitle string     `bun:"override_title"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// DisplayTitle returns the override title when staff assigned one, otherwise
// the ladder title computed from experience.
func (m *Member) DisplayTitle(ladderTitle string) string {
	if m.OverrideTitle != "" {
		return m.OverrideTitle
	}
	return ladderTitle
}

// HasBirthDate reports whether the member has ever supplied a birth date.
func (m *Member) HasBirthDate() bool {
	return m.BirthDate != nil && !m.BirthDate.IsZero()
}
