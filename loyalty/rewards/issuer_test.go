package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/limelight-tw/loyalty/internal/mocks"
	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"go.uber.org/mock/gomock"
)

// within reports whether ts falls inside a day of want. Issuance stamps expiry
// with time.Now, so the tests allow slack instead of pinning the clock.
func within(ts, want time.Time) bool {
	diff := ts.Sub(want)
	if diff < 0 {
		diff = -diff
	}
	return diff < 24*time.Hour
}

func TestIssuer_IssueLevelUpCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	coupons := mocks.NewMockCouponRepository(ctrl)

	var created *models.Coupon
	coupons.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Coupon) error {
			created = c
			return nil
		})

	if err := NewIssuer(coupons).IssueLevelUpCoupon(context.Background(), "plat-1", 3); err != nil {
		t.Fatalf("IssueLevelUpCoupon() error = %v", err)
	}

	if created.MemberID != "plat-1" {
		t.Errorf("coupon member = %q, want plat-1", created.MemberID)
	}
	if created.Title != "LV.3 upgrade reward" {
		t.Errorf("coupon title = %q", created.Title)
	}
	if created.Status != models.CouponStatusAvailable {
		t.Errorf("coupon status = %q, want available", created.Status)
	}
	if created.ExpiryDate == nil || !within(*created.ExpiryDate, time.Now().AddDate(1, 0, 0)) {
		t.Errorf("coupon expiry = %v, want about one year out", created.ExpiryDate)
	}
}

func TestIssuer_IssueProfileCompletionCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	coupons := mocks.NewMockCouponRepository(ctrl)

	var created *models.Coupon
	coupons.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Coupon) error {
			created = c
			return nil
		})

	if err := NewIssuer(coupons).IssueProfileCompletionCoupon(context.Background(), "plat-2"); err != nil {
		t.Fatalf("IssueProfileCompletionCoupon() error = %v", err)
	}

	if created.Title != "Profile completion gift: $50 off" {
		t.Errorf("coupon title = %q", created.Title)
	}
	if created.ExpiryDate == nil || !within(*created.ExpiryDate, time.Now().AddDate(0, 3, 0)) {
		t.Errorf("coupon expiry = %v, want about three months out", created.ExpiryDate)
	}
}
