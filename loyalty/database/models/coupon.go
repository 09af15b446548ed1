package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	CouponStatusAvailable = "available"
	CouponStatusUsed      = "used"
	CouponStatusExpired   = "expired"
)

// Coupon belongs to exactly one member. The stored status column only carries
// the redemption mutation performed by the point-of-sale system; expiry is a
// fact of expiry_date and is derived at read time, never written back.
type Coupon struct {
	bun.BaseModel `bun:"table:coupons,alias:c"`

	ID       int64  `bun:"id,pk,autoincrement"`
	MemberID string `bun:"member_id,notnull"`

	Title       string `bun:"title,notnull"`
	Description string `bun:"description"`
	Status      string `bun:"status,notnull,default:'available'"`

	ExpiryDate *time.Time `bun:"expiry_date,nullzero"`
	RedeemedAt *time.Time `bun:"redeemed_at,nullzero"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// EffectiveStatus derives the coupon state from its stored facts. A redeemed
// coupon stays used even past its expiry date.
func (c *Coupon) EffectiveStatus(now time.Time) string {
	if c.RedeemedAt != nil && !c.RedeemedAt.IsZero() {
		return CouponStatusUsed
	}
	if c.Status == CouponStatusUsed {
		return CouponStatusUsed
	}
	if c.ExpiryDate != nil && c.ExpiryDate.Before(now) {
		return CouponStatusExpired
	}
	return CouponStatusAvailable
}
