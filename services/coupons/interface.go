package coupons

import "recreio/models"

// CouponService resolves codes into usable coupons and manages coupon
// definitions.
type CouponService interface {
	// Lookup resolves a code to a usable coupon. Not-found, inactive,
	// expired and usage-exhausted all surface as ErrCouponInvalid; callers
	// treat them identically.
	Lookup(code string) (*models.Coupon, error)
	// GetAll lists coupon definitions ordered by code.
	GetAll() ([]models.Coupon, error)
	// Create registers a new coupon.
	Create(coupon *models.Coupon) error
	// Update modifies a coupon definition.
	Update(coupon *models.Coupon) error
	// Delete removes a coupon definition.
	Delete(id string) error
}
