package rewards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
	"github.com/limelight-tw/loyalty/loyalty/logger"
)

// ErrValidation flags malformed profile-edit input.
var ErrValidation = errors.New("invalid profile input")

const birthDateLayout = "2006-01-02"

// ProfileUpdate carries the member-editable fields. Empty strings leave the
// stored value alone, except DisplayName which is required.
type ProfileUpdate struct {
	DisplayName string
	Phone       string
	BirthDate   string
}

// ProfileService persists profile edits and triggers the one-time completion
// reward when a birth date is supplied for the first time.
type ProfileService struct {
	memberRepo repositories.MemberRepository
	issuer     *Issuer
}

func NewProfileService(memberRepo repositories.MemberRepository, issuer *Issuer) *ProfileService {
	return &ProfileService{memberRepo: memberRepo, issuer: issuer}
}

// UpdateProfile validates and persists the edit. The returned flag reports
// whether the completion coupon was issued on this call. Coupon issuance is
// best-effort and never unwinds the profile change.
func (s *ProfileService) UpdateProfile(ctx context.Context, member *models.Member, update ProfileUpdate) (bool, error) {
	name := strings.TrimSpace(update.DisplayName)
	if name == "" {
		return false, fmt.Errorf("%w: display name is required", ErrValidation)
	}

	var birthDate *time.Time
	if update.BirthDate != "" {
		parsed, err := time.Parse(birthDateLayout, update.BirthDate)
		if err != nil {
			return false, fmt.Errorf("%w: birth date must be YYYY-MM-DD", ErrValidation)
		}
		birthDate = &parsed
	}

	// The completion reward fires exactly when the birth date transitions from
	// unset to set. Any other edit issues nothing.
	firstCompletion := !member.HasBirthDate() && birthDate != nil

	member.DisplayName = name
	member.Phone = strings.TrimSpace(update.Phone)
	if birthDate != nil {
		member.BirthDate = birthDate
	}
	member.UpdatedAt = time.Now()

	if err := s.memberRepo.UpdateProfile(ctx, member); err != nil {
		return false, fmt.Errorf("profile update failed: %w", err)
	}

	if !firstCompletion {
		return false, nil
	}

	if err := s.issuer.IssueProfileCompletionCoupon(ctx, member.ID); err != nil {
		logger.LogError("Completion coupon issuance failed", err,
			slog.String("member_id", member.ID))
		return false, nil
	}
	return true, nil
}
