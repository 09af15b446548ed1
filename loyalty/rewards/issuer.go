package rewards

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
)

const (
	levelUpCouponValidity    = 1  // years
	completionCouponValidity = 3  // months

	completionCouponTitle       = "Profile completion gift: $50 off"
	completionCouponDescription = "Thanks for completing your member profile! Redeem this coupon for $50 off your next session. Your personal birthday gift is on its way."
)

// Issuer creates promotional coupons for life-cycle events. Both contracts are
// best-effort relative to the caller: a failed insert is reported, never
// rolled back into the triggering operation.
type Issuer struct {
	couponRepo repositories.CouponRepository
}

func NewIssuer(couponRepo repositories.CouponRepository) *Issuer {
	return &Issuer{couponRepo: couponRepo}
}

// IssueLevelUpCoupon creates the one premium coupon a level-up earns,
// valid for one year.
func (i *Issuer) IssueLevelUpCoupon(ctx context.Context, memberID string, newLevel int) error {
	expiry := time.Now().AddDate(levelUpCouponValidity, 0, 0)
	coupon := &models.Coupon{
		MemberID:    memberID,
		Title:       fmt.Sprintf("LV.%d upgrade reward", newLevel),
		Description: fmt.Sprintf("Congratulations on reaching LV.%d! This exclusive upgrade coupon is our thanks for your continued support.", newLevel),
		Status:      models.CouponStatusAvailable,
		ExpiryDate:  &expiry,
	}

	if err := i.couponRepo.Create(ctx, coupon); err != nil {
		return fmt.Errorf("level-up coupon insert failed: %w", err)
	}

	slog.Info("Level-up coupon issued",
		slog.String("member_id", memberID),
		slog.Int("new_level", newLevel))
	return nil
}

// IssueProfileCompletionCoupon creates the fixed $50 discount coupon granted
// the first time a member completes their profile, valid for three months.
func (i *Issuer) IssueProfileCompletionCoupon(ctx context.Context, memberID string) error {
	expiry := time.Now().AddDate(0, completionCouponValidity, 0)
	coupon := &models.Coupon{
		MemberID:    memberID,
		Title:       completionCouponTitle,
		Description: completionCouponDescription,
		Status:      models.CouponStatusAvailable,
		ExpiryDate:  &expiry,
	}

	if err := i.couponRepo.Create(ctx, coupon); err != nil {
		return fmt.Errorf("profile completion coupon insert failed: %w", err)
	}

	slog.Info("Profile completion coupon issued",
		slog.String("member_id", memberID))
	return nil
}
