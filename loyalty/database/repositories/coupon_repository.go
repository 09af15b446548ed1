package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/limelight-tw/loyalty/loyalty/database/models"
	"github.com/uptrace/bun"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByMember(ctx context.Context, memberID string) ([]*models.Coupon, error)
}

type couponRepository struct {
	db *bun.DB
}

func NewCouponRepository(db *bun.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	coupon.CreatedAt = time.Now()
	if coupon.Status == "" {
		coupon.Status = models.CouponStatusAvailable
	}
	_, err := r.db.NewInsert().Model(coupon).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert coupon: %w", err)
	}
	return nil
}

func (r *couponRepository) GetByMember(ctx context.Context, memberID string) ([]*models.Coupon, error) {
	var coupons []*models.Coupon
	err := r.db.NewSelect().
		Model(&coupons).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to load coupons: %w", err)
	}
	return coupons, nil
}
