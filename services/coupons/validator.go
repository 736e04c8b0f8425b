package coupons

import (
	"errors"
	"fmt"
	"strings"
	"time"

	couponRepo "recreio/database/repository/coupon"
	"recreio/models"
)

// ErrCouponInvalid covers every way a code can fail to resolve: unknown,
// inactive, expired or usage-exhausted. Callers get no distinction; the
// operator just sees an unusable code.
var ErrCouponInvalid = errors.New("coupon invalid or expired")

// DefaultCouponService implements CouponService.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository
}

// Lookup resolves a code to a usable coupon.
func (s *DefaultCouponService) Lookup(code string) (*models.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCouponInvalid
	}

	coupon, err := s.Repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrNotFound) {
			return nil, ErrCouponInvalid
		}
		return nil, fmt.Errorf("coupon lookup failed: %w", err)
	}
	if !coupon.Usable(time.Now()) {
		return nil, ErrCouponInvalid
	}
	return coupon, nil
}

// GetAll lists coupon definitions ordered by code.
func (s *DefaultCouponService) GetAll() ([]models.Coupon, error) {
	return s.Repo.GetAll()
}

// Create registers a new coupon.
func (s *DefaultCouponService) Create(coupon *models.Coupon) error {
	if err := validateDefinition(coupon); err != nil {
		return err
	}
	return s.Repo.Create(coupon)
}

// Update modifies a coupon definition.
func (s *DefaultCouponService) Update(coupon *models.Coupon) error {
	if err := validateDefinition(coupon); err != nil {
		return err
	}
	return s.Repo.Update(coupon)
}

// Delete removes a coupon definition.
func (s *DefaultCouponService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func validateDefinition(coupon *models.Coupon) error {
	if strings.TrimSpace(coupon.Code) == "" {
		return errors.New("coupon code is required")
	}
	switch coupon.DiscountType {
	case models.DiscountPercentage, models.DiscountFixed, models.DiscountFreeTime:
	default:
		return fmt.Errorf("unknown discount type %q", coupon.DiscountType)
	}
	if coupon.DiscountValue <= 0 {
		return errors.New("discount value must be positive")
	}
	switch coupon.Status {
	case models.CouponActive, models.CouponInactive:
	default:
		return fmt.Errorf("unknown coupon status %q", coupon.Status)
	}
	if coupon.UsageLimit < 0 {
		return errors.New("usage limit cannot be negative")
	}
	return nil
}
