package billing

import (
	"fmt"
	"math"

	"recreio/models"
)

// InapplicableCouponError reports a coupon that cannot apply to the
// session's current time mode. The caller is expected to clear the coupon
// selection and show the reason to the operator.
type InapplicableCouponError struct {
	Code   string
	Reason string
}

func (e InapplicableCouponError) Error() string {
	return fmt.Sprintf("coupon %s not applicable: %s", e.Code, e.Reason)
}

// discount is the closed set of discount kinds. Each coupon type maps to
// exactly one arm; unknown types are rejected up front.
type discount interface {
	amount(q models.Quote, rates RateTable) float64
}

// percentageDiscount takes a cut of the first hour only, never of additional
// hours or consumption.
type percentageDiscount struct {
	pct float64
}

func (d percentageDiscount) amount(q models.Quote, rates RateTable) float64 {
	return q.FirstHourCost * (d.pct / 100)
}

// fixedDiscount is a flat currency amount, not pro-rated.
type fixedDiscount struct {
	value float64
}

func (d fixedDiscount) amount(q models.Quote, rates RateTable) float64 {
	return d.value
}

// freeTimeDiscount converts free minutes to currency at the first-hour
// per-minute rate, capped per child at the full first hour.
type freeTimeDiscount struct {
	minutes float64
}

func (d freeTimeDiscount) amount(q models.Quote, rates RateTable) float64 {
	perChild := math.Min(rates.FirstHourRate/60*d.minutes, rates.FirstHourRate)
	return perChild * float64(q.ChildCount)
}

// discountFor resolves a coupon into its discount arm, enforcing contextual
// applicability: free-time coupons only make sense on a single contracted
// hour with no overtime and never in full-afternoon mode.
func discountFor(c *models.Coupon, q models.Quote, rates RateTable) (discount, error) {
	switch c.DiscountType {
	case models.DiscountPercentage:
		return percentageDiscount{pct: c.DiscountValue}, nil
	case models.DiscountFixed:
		return fixedDiscount{value: c.DiscountValue}, nil
	case models.DiscountFreeTime:
		if q.FullAfternoon {
			return nil, InapplicableCouponError{
				Code:   c.Code,
				Reason: "free-time coupons do not apply to full-afternoon sessions",
			}
		}
		if q.HoursToCharge != 1 {
			return nil, InapplicableCouponError{
				Code:   c.Code,
				Reason: "free-time coupons only apply to single-hour sessions",
			}
		}
		return freeTimeDiscount{minutes: c.DiscountValue}, nil
	default:
		return nil, fmt.Errorf("unknown discount type %q", c.DiscountType)
	}
}
