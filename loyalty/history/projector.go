package history

import (
	"context"
	"strings"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
)

// Fallbacks used when a joined row is missing display data. The projection
// must stay renderable for every historical record, so defaults are applied
// here instead of deep inside business logic.
const (
	placeholderCoverURL = "https://images.unsplash.com/photo-1514467953502-5a7820e3efb4?w=600&q=80"
	fallbackScriptTitle = "Unknown script"
	fallbackPlayTime    = "unknown time"
	fallbackHostName    = "unknown GM"
	fallbackBranchName  = "Main venue 1.0"
	fallbackExperience  = 50

	playTimeLayout = "2006-01-02 15:04"
)

// Entry is one display-ready history row.
type Entry struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	CoverURL        string `json:"cover_url"`
	PlayedAt        string `json:"played_at"`
	HostName        string `json:"host_name"`
	Experience      int64  `json:"experience"`
	BranchName      string `json:"branch_name"`
	NarrativeMemory string `json:"narrative_memory"`
	Comment         string `json:"comment,omitempty"`
}

// CouponView is a coupon row with its status derived from stored facts.
type CouponView struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	RedeemedAt  *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CoverResolver looks up a cover image for a script title in external object
// storage. An empty return means no cover exists.
type CoverResolver interface {
	CoverURL(ctx context.Context, scriptTitle string) string
}

// Projector maps raw participation and coupon rows into fallback-safe views.
// Projections are recomputed from source on every call. When a cover resolver
// is set, scripts without a stored cover URL are looked up in object storage
// before the placeholder applies.
type Projector struct {
	covers CoverResolver
}

func NewProjector(covers CoverResolver) *Projector {
	return &Projector{covers: covers}
}

// Project derives display entries from participation rows. Input is expected
// ordered by creation time descending (the repository's order) and the order
// is preserved.
func (p *Projector) Project(ctx context.Context, rows []*models.ParticipationRecord) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, p.projectRow(ctx, row))
	}
	return entries
}

func (p *Projector) projectRow(ctx context.Context, row *models.ParticipationRecord) Entry {
	entry := Entry{
		ID:         row.ID,
		Title:      fallbackScriptTitle,
		CoverURL:   placeholderCoverURL,
		PlayedAt:   fallbackPlayTime,
		HostName:   fallbackHostName,
		Experience: row.ExperienceGained,
		BranchName: fallbackBranchName,
		Comment:    row.Comment,
	}

	if entry.Experience == 0 {
		entry.Experience = fallbackExperience
	}

	session := row.Session
	if session == nil {
		return entry
	}

	if session.PlayTime != nil && !session.PlayTime.IsZero() {
		entry.PlayedAt = session.PlayTime.Format(playTimeLayout)
	}
	if session.HostName != "" {
		entry.HostName = session.HostName
	}
	if session.BranchName != "" {
		entry.BranchName = session.BranchName
	}
	entry.NarrativeMemory = session.NarrativeMemory

	if script := session.Script; script != nil {
		if script.Title != "" {
			entry.Title = script.Title
		}
		if trimmed := strings.TrimSpace(script.CoverURL); trimmed != "" {
			entry.CoverURL = trimmed
		} else if p.covers != nil && script.Title != "" {
			if url := p.covers.CoverURL(ctx, script.Title); url != "" {
				entry.CoverURL = url
			}
		}
	}

	return entry
}

// ProjectCoupons is a pass-through ordered list; the only transformation is
// deriving each coupon's effective status.
func (p *Projector) ProjectCoupons(coupons []*models.Coupon, now time.Time) []CouponView {
	views := make([]CouponView, 0, len(coupons))
	for _, c := range coupons {
		views = append(views, CouponView{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Status:      c.EffectiveStatus(now),
			ExpiryDate:  c.ExpiryDate,
			RedeemedAt:  c.RedeemedAt,
			CreatedAt:   c.CreatedAt,
		})
	}
	return views
}
