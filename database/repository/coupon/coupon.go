package couponRepo

import "recreio/models"

// CouponRepository defines methods for coupon data access. The usage counter
// is incremented only inside the settlement transaction (checkout repo), not
// here.
type CouponRepository interface {
	// GetByID retrieves a coupon by its unique ID.
	GetByID(id string) (*models.Coupon, error)
	// GetByCode retrieves a coupon by its upper-cased code.
	GetByCode(code string) (*models.Coupon, error)
	// GetAll retrieves all coupons ordered by code.
	GetAll() ([]models.Coupon, error)
	// Create inserts a new coupon record.
	Create(coupon *models.Coupon) error
	// Update modifies an existing coupon record, leaving uses untouched.
	Update(coupon *models.Coupon) error
	// Delete removes a coupon record by its ID.
	Delete(id string) error
}
