package progression

import (
	"context"
	"log/slog"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
	"github.com/limelight-tw/loyalty/loyalty/logger"
)

// Guard repairs drift between a member's stored level and the level implied by
// stored experience. It runs once per entry, after identity resolution and
// before any history or coupon read.
type Guard struct {
	memberRepo repositories.MemberRepository
}

func NewGuard(memberRepo repositories.MemberRepository) *Guard {
	return &Guard{memberRepo: memberRepo}
}

// Reconcile sets the stored level to the one the ladder dictates. Total
// experience is never altered here. A failed persist is logged and the member
// keeps its stored level; callers must not assume the correction happened.
func (g *Guard) Reconcile(ctx context.Context, member *models.Member) *models.Member {
	expected := LevelInfo(member.TotalExperience)
	if member.Level == expected.Level {
		return member
	}

	slog.Info("Level drift detected",
		slog.String("member_id", member.ID),
		slog.Int("stored_level", member.Level),
		slog.Int("expected_level", expected.Level),
		slog.Int64("total_experience", member.TotalExperience))

	if err := g.memberRepo.UpdateLevel(ctx, member.ID, expected.Level); err != nil {
		logger.LogError("Level correction failed", err,
			slog.String("member_id", member.ID),
			slog.Int("expected_level", expected.Level))
		return member
	}

	member.Level = expected.Level
	return member
}
