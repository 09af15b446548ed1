package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/limelight-tw/loyalty/backend/middleware"
	"github.com/limelight-tw/loyalty/backend/models"
	"github.com/limelight-tw/loyalty/backend/utils"
	"github.com/limelight-tw/loyalty/loyalty"
	dbmodels "github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/history"
	"github.com/limelight-tw/loyalty/loyalty/progression"
	"github.com/limelight-tw/loyalty/loyalty/rewards"
)

// WebApp bundles the wired application for the HTTP handlers.
type WebApp struct {
	App *loyalty.App
}

const birthDateLayout = "2006-01-02"

// Entry handles POST /api/entry. It resolves the member, repairs level drift,
// executes the deep-linked session join when a session_id query parameter is
// present, and returns the full member state. A failed join is reported in
// the response but does not fail the entry.
func Entry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, ok := middleware.ProfileFromCtx(c)
		if !ok {
			return utils.SendUnauthorized(c, "No resolvable platform profile")
		}

		ctx := c.Context()

		member, created, err := webApp.App.Resolver.Resolve(ctx, profile)
		if err != nil {
			return utils.SendInternalServerError(c, "Member resolution failed")
		}

		member = webApp.App.Guard.Reconcile(ctx, member)

		var outcome *models.JoinOutcome
		if raw := c.Query("session_id"); raw != "" {
			outcome = webApp.executeJoin(ctx, member, raw)
		}

		historyEntries, coupons, err := webApp.loadMemberState(ctx, member.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load member history")
		}

		resp := models.EntryResponse{
			Member:     webApp.memberView(member),
			FirstLogin: created,
			Join:       outcome,
			History:    historyEntries,
			Coupons:    coupons,
		}
		if created {
			resp.WelcomeMessage = fmt.Sprintf(
				"Registration complete! Welcome aboard, your member number is %s.",
				member.SequenceNumber)
		}

		return utils.SendSuccess(c, resp, "")
	}
}

// executeJoin runs the join transaction once per entry and maps its failures
// to user-visible outcome codes.
func (w *WebApp) executeJoin(ctx context.Context, member *dbmodels.Member, rawSessionID string) *models.JoinOutcome {
	outcome := &models.JoinOutcome{Attempted: true}

	sessionID, err := strconv.ParseInt(rawSessionID, 10, 64)
	if err != nil {
		outcome.ErrorCode = "SESSION_NOT_JOINABLE"
		outcome.Message = "This session has already ended or does not exist!"
		return outcome
	}

	result, err := w.App.Ledger.Join(ctx, member, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, progression.ErrSessionNotJoinable):
			outcome.ErrorCode = "SESSION_NOT_JOINABLE"
			outcome.Message = "This session has already ended or does not exist!"
		case errors.Is(err, progression.ErrAlreadyJoined):
			outcome.ErrorCode = "ALREADY_JOINED"
			outcome.Message = "You have already registered for this session!"
		default:
			slog.Error("Join transaction failed",
				slog.String("type", "http"),
				slog.String("member_id", member.ID),
				slog.Int64("session_id", sessionID),
				slog.String("error", err.Error()))
			outcome.ErrorCode = "PERSISTENCE_FAILURE"
			outcome.Message = "Joining failed, please try again."
		}
		return outcome
	}

	outcome.OK = true
	outcome.ExpAwarded = result.ExpAwarded
	outcome.LeveledUp = result.LeveledUp
	outcome.NewLevel = result.NewLevel
	if result.LeveledUp {
		outcome.Message = fmt.Sprintf("Level up! You are now LV.%d.", result.NewLevel)
	} else {
		outcome.Message = fmt.Sprintf("Successfully joined! +%d EXP", result.ExpAwarded)
	}
	return outcome
}

// loadMemberState fetches history and coupons concurrently; both are
// projected through fallback-safe views.
func (w *WebApp) loadMemberState(ctx context.Context, memberID string) ([]history.Entry, []history.CouponView, error) {
	var entries []history.Entry
	var coupons []history.CouponView

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := w.App.ParticipationRepository.GetHistoryByMember(gctx, memberID)
		if err != nil {
			return err
		}
		entries = w.App.Projector.Project(gctx, rows)
		return nil
	})

	g.Go(func() error {
		rows, err := w.App.CouponRepository.GetByMember(gctx, memberID)
		if err != nil {
			return err
		}
		coupons = w.App.Projector.ProjectCoupons(rows, time.Now())
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return entries, coupons, nil
}

// History handles GET /api/me/history. The optional q parameter narrows the
// list with a fuzzy match over script titles.
func History(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		member, err := webApp.resolveMember(c)
		if err != nil {
			return utils.SendInternalServerError(c, "Member resolution failed")
		}

		rows, err := webApp.App.ParticipationRepository.GetHistoryByMember(c.Context(), member.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load history")
		}

		entries := webApp.App.Projector.Project(c.Context(), rows)
		if q := c.Query("q"); q != "" {
			entries = history.Search(entries, q)
		}

		return utils.SendSuccess(c, entries, "")
	}
}

// Coupons handles GET /api/me/coupons.
func Coupons(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		member, err := webApp.resolveMember(c)
		if err != nil {
			return utils.SendInternalServerError(c, "Member resolution failed")
		}

		rows, err := webApp.App.CouponRepository.GetByMember(c.Context(), member.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load coupons")
		}

		return utils.SendSuccess(c, webApp.App.Projector.ProjectCoupons(rows, time.Now()), "")
	}
}

// ProfileUpdate handles PUT /api/me/profile.
func ProfileUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Malformed request body", nil)
		}

		member, err := webApp.resolveMember(c)
		if err != nil {
			return utils.SendInternalServerError(c, "Member resolution failed")
		}

		couponIssued, err := webApp.App.ProfileService.UpdateProfile(c.Context(), member, rewards.ProfileUpdate{
			DisplayName: req.DisplayName,
			Phone:       req.Phone,
			BirthDate:   req.BirthDate,
		})
		if err != nil {
			if errors.Is(err, rewards.ErrValidation) {
				return utils.SendUnprocessableEntity(c, err.Error())
			}
			return utils.SendInternalServerError(c, "Profile update failed")
		}

		resp := models.ProfileResponse{
			Member:       webApp.memberView(member),
			CouponIssued: couponIssued,
		}
		message := "Profile saved"
		if couponIssued {
			message = "Profile saved! Your completion gift coupon is in your wallet."
		}

		return utils.SendSuccess(c, resp, message)
	}
}

// HealthCheck handles GET /health.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := webApp.App.DB.GetPool().Ping(c.Context()); err != nil {
			return utils.SendError(c, fiber.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unreachable", nil)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func (w *WebApp) resolveMember(c *fiber.Ctx) (*dbmodels.Member, error) {
	profile, ok := middleware.ProfileFromCtx(c)
	if !ok {
		return nil, errors.New("no platform profile in context")
	}
	member, _, err := w.App.Resolver.Resolve(c.Context(), profile)
	return member, err
}

func (w *WebApp) memberView(member *dbmodels.Member) models.MemberView {
	level := progression.LevelInfo(member.TotalExperience)

	view := models.MemberView{
		ID:              member.ID,
		DisplayName:     member.DisplayName,
		AvatarURL:       member.AvatarURL,
		SequenceNumber:  member.SequenceNumber,
		Level:           member.Level,
		Title:           member.DisplayTitle(level.Title),
		NextThreshold:   level.NextThreshold,
		TotalExperience: member.TotalExperience,
		Phone:           member.Phone,
		DaysJoined:      daysJoined(member.CreatedAt, time.Now()),
	}
	if member.HasBirthDate() {
		view.BirthDate = member.BirthDate.Format(birthDateLayout)
	}
	return view
}

func daysJoined(createdAt, now time.Time) int {
	if createdAt.IsZero() {
		return 0
	}
	return int(math.Ceil(math.Abs(now.Sub(createdAt).Hours()) / 24))
}
