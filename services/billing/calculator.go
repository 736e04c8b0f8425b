// Package billing turns a session's elapsed time, consumption and coupon
// into a cost breakdown. It is pure: no I/O, no clock access beyond the Now
// argument, safe to recompute on every display tick.
package billing

import (
	"math"
	"time"

	"recreio/models"
)

// RateTable holds the venue's per-child pricing.
type RateTable struct {
	FirstHourRate      float64
	AdditionalHourRate float64
	FullAfternoonRate  float64
}

// RatesFrom builds a RateTable from the settings document.
func RatesFrom(settings *models.Settings) RateTable {
	return RateTable{
		FirstHourRate:      settings.FirstHourRate,
		AdditionalHourRate: settings.AdditionalHourRate,
		FullAfternoonRate:  settings.FullAfternoonRate,
	}
}

// Input is everything a quote depends on.
type Input struct {
	StartTime         time.Time
	ContractedMinutes int
	ChildCount        int
	IsFullAfternoon   bool
	Consumption       []models.ConsumptionItem

	// Coupon, when set, drives the discount. When nil, FallbackDiscount
	// (the discount snapshotted at check-in) applies instead.
	Coupon           *models.Coupon
	FallbackDiscount float64

	AlreadyPaid float64
	Now         time.Time
}

// Calculate produces the cost breakdown for the input at the given instant.
//
// The contracted floor always applies: leaving early never reduces the
// charge, and overtime always re-bills by started hours. Returns
// InapplicableCouponError when the coupon cannot apply to the session's time
// mode; the caller must clear the coupon and recompute.
func Calculate(in Input, rates RateTable) (models.Quote, error) {
	elapsedMinutes := in.Now.Sub(in.StartTime).Minutes()
	if elapsedMinutes < 0 {
		elapsedMinutes = 0
	}
	minutesToCharge := math.Max(elapsedMinutes, float64(in.ContractedMinutes))
	hoursToCharge := int(math.Ceil(minutesToCharge / 60))
	if hoursToCharge < 1 {
		hoursToCharge = 1
	}

	children := float64(in.ChildCount)

	q := models.Quote{
		ElapsedMinutes:  elapsedMinutes,
		MinutesToCharge: minutesToCharge,
		HoursToCharge:   hoursToCharge,
		ChildCount:      in.ChildCount,
		FullAfternoon:   in.IsFullAfternoon,
		AlreadyPaid:     in.AlreadyPaid,
	}

	if in.IsFullAfternoon {
		// Flat mode: hour tiering and the hour count are display-only.
		q.TimeCost = rates.FullAfternoonRate * children
	} else {
		q.FirstHourCost = rates.FirstHourRate * children
		q.AdditionalHours = hoursToCharge - 1
		q.AdditionalHoursCost = float64(q.AdditionalHours) * rates.AdditionalHourRate * children
		q.TimeCost = q.FirstHourCost + q.AdditionalHoursCost
	}

	for _, item := range in.Consumption {
		q.ConsumptionCost += item.Price * float64(item.Quantity)
	}
	q.Subtotal = q.TimeCost + q.ConsumptionCost

	if in.Coupon != nil {
		d, err := discountFor(in.Coupon, q, rates)
		if err != nil {
			return models.Quote{}, err
		}
		q.Discount = d.amount(q, rates)
	} else {
		q.Discount = in.FallbackDiscount
	}

	q.Total = math.Max(0, q.Subtotal-q.Discount)
	q.AmountDue = math.Max(0, q.Total-q.AlreadyPaid)
	return q, nil
}
