package models

import "time"

// Discount kinds.
const (
	DiscountPercentage = "percentage" // percentage off the first hour only
	DiscountFixed      = "fixed"      // flat currency amount
	DiscountFreeTime   = "freeTime"   // free minutes, single-hour sessions only
)

// Coupon statuses.
const (
	CouponActive   = "active"
	CouponInactive = "inactive"
)

// Coupon is a discount voucher. Codes are stored upper-cased and matched
// case-insensitively.
type Coupon struct {
	ID            string     `bson:"id" json:"id"`
	Code          string     `bson:"code" json:"code"`
	DiscountType  string     `bson:"discountType" json:"discountType"`
	DiscountValue float64    `bson:"discountValue" json:"discountValue"`
	Status        string     `bson:"status" json:"status"`
	Uses          int        `bson:"uses" json:"uses"`
	UsageLimit    int        `bson:"usageLimit" json:"usageLimit"` // 0 = unlimited
	ValidUntil    *time.Time `bson:"validUntil,omitempty" json:"validUntil,omitempty"`
}

// Usable reports whether the coupon can still be redeemed at the given
// instant: active, unexpired and under its usage limit.
func (c *Coupon) Usable(now time.Time) bool {
	if c.Status != CouponActive {
		return false
	}
	if c.ValidUntil != nil && c.ValidUntil.Before(now) {
		return false
	}
	if c.UsageLimit > 0 && c.Uses >= c.UsageLimit {
		return false
	}
	return true
}
