package billing

import (
	"errors"
	"math"
	"testing"
	"time"

	"recreio/models"
)

var testRates = RateTable{
	FirstHourRate:      30.00,
	AdditionalHourRate: 15.00,
	FullAfternoonRate:  50.00,
}

func quoteAt(t *testing.T, in Input) models.Quote {
	t.Helper()
	q, err := Calculate(in, testRates)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	return q
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestCalculateContractedFloor(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	// 30 minutes elapsed of a 60-minute contract still bills the full hour.
	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        2,
		Now:               start.Add(30 * time.Minute),
	})
	if q.MinutesToCharge != 60 {
		t.Errorf("MinutesToCharge = %v, want 60", q.MinutesToCharge)
	}
	if q.HoursToCharge != 1 {
		t.Errorf("HoursToCharge = %d, want 1", q.HoursToCharge)
	}
	if !almostEqual(q.TimeCost, 60.00) {
		t.Errorf("TimeCost = %v, want 60.00", q.TimeCost)
	}
}

func TestCalculateOvertimeStartedHours(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	// 125 minutes elapsed: three started hours for two children.
	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        2,
		Now:               start.Add(125 * time.Minute),
	})
	if q.HoursToCharge != 3 {
		t.Errorf("HoursToCharge = %d, want 3", q.HoursToCharge)
	}
	// 30×2 first hour + 2 additional hours ×15×2.
	if !almostEqual(q.TimeCost, 120.00) {
		t.Errorf("TimeCost = %v, want 120.00", q.TimeCost)
	}
}

func TestCalculateFullAfternoonFlatRate(t *testing.T) {
	start := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 300,
		ChildCount:        2,
		IsFullAfternoon:   true,
		Now:               start.Add(4 * time.Hour),
	})
	if !almostEqual(q.TimeCost, 100.00) {
		t.Errorf("TimeCost = %v, want 100.00 (flat rate per child)", q.TimeCost)
	}
	if q.AdditionalHoursCost != 0 {
		t.Errorf("AdditionalHoursCost = %v, want 0 in flat mode", q.AdditionalHoursCost)
	}
}

func TestCalculateConsumptionUsesSnapshotPrices(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		Consumption: []models.ConsumptionItem{
			{ProductID: "p1", Name: "Pipoca", Price: 8.00, Quantity: 2},
			{ProductID: "p2", Name: "Suco", Price: 6.50, Quantity: 1},
		},
		Now: start.Add(30 * time.Minute),
	})
	if !almostEqual(q.ConsumptionCost, 22.50) {
		t.Errorf("ConsumptionCost = %v, want 22.50", q.ConsumptionCost)
	}
	if !almostEqual(q.Subtotal, 52.50) {
		t.Errorf("Subtotal = %v, want 52.50", q.Subtotal)
	}
}

func TestCalculatePercentageDiscountFirstHourOnly(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	coupon := &models.Coupon{
		Code:          "METADE",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 50,
		Status:        models.CouponActive,
	}

	// Two started hours: the cut applies to the first hour only.
	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 120,
		ChildCount:        1,
		Coupon:            coupon,
		Now:               start.Add(90 * time.Minute),
	})
	if !almostEqual(q.Discount, 15.00) {
		t.Errorf("Discount = %v, want 15.00 (half of the first hour)", q.Discount)
	}
	if !almostEqual(q.Total, 30.00) {
		t.Errorf("Total = %v, want 30.00", q.Total)
	}
}

func TestCalculateFreeTimeDiscount(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	coupon := &models.Coupon{
		Code:          "MEIAHORA",
		DiscountType:  models.DiscountFreeTime,
		DiscountValue: 30,
		Status:        models.CouponActive,
	}

	// 30 free minutes at 30/hour: 15.00 per child.
	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		Coupon:            coupon,
		Now:               start.Add(45 * time.Minute),
	})
	if !almostEqual(q.Discount, 15.00) {
		t.Errorf("Discount = %v, want 15.00", q.Discount)
	}

	// Free minutes are capped at a full first hour per child.
	generous := &models.Coupon{
		Code:          "DIALIVRE",
		DiscountType:  models.DiscountFreeTime,
		DiscountValue: 240,
		Status:        models.CouponActive,
	}
	q = quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        2,
		Coupon:            generous,
		Now:               start.Add(45 * time.Minute),
	})
	if !almostEqual(q.Discount, 60.00) {
		t.Errorf("Discount = %v, want 60.00 (capped at first hour ×2 children)", q.Discount)
	}
}

func TestCalculateFreeTimeRejectedOutsideSingleHour(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	coupon := &models.Coupon{
		Code:          "MEIAHORA",
		DiscountType:  models.DiscountFreeTime,
		DiscountValue: 30,
		Status:        models.CouponActive,
	}

	// Two contracted hours.
	_, err := Calculate(Input{
		StartTime:         start,
		ContractedMinutes: 120,
		ChildCount:        1,
		Coupon:            coupon,
		Now:               start.Add(10 * time.Minute),
	}, testRates)
	var inapplicable InapplicableCouponError
	if !errors.As(err, &inapplicable) {
		t.Fatalf("expected InapplicableCouponError for two-hour session, got %v", err)
	}

	// Full-afternoon mode.
	_, err = Calculate(Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		IsFullAfternoon:   true,
		Coupon:            coupon,
		Now:               start.Add(10 * time.Minute),
	}, testRates)
	if !errors.As(err, &inapplicable) {
		t.Fatalf("expected InapplicableCouponError in full-afternoon mode, got %v", err)
	}
}

func TestCalculateDiscountNeverDrivesTotalNegative(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	coupon := &models.Coupon{
		Code:          "GIGANTE",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 500,
		Status:        models.CouponActive,
	}

	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		Coupon:            coupon,
		Now:               start.Add(30 * time.Minute),
	})
	if q.Total != 0 {
		t.Errorf("Total = %v, want 0 (floored)", q.Total)
	}
	if q.AmountDue != 0 {
		t.Errorf("AmountDue = %v, want 0", q.AmountDue)
	}
}

func TestCalculateAmountDueSubtractsAlreadyPaid(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        2,
		AlreadyPaid:       60.00,
		Now:               start.Add(125 * time.Minute),
	})
	// 120 total time cost, 60 already collected.
	if !almostEqual(q.AmountDue, 60.00) {
		t.Errorf("AmountDue = %v, want 60.00", q.AmountDue)
	}

	// Overpayment never produces a negative balance.
	q = quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		AlreadyPaid:       100.00,
		Now:               start.Add(30 * time.Minute),
	})
	if q.AmountDue != 0 {
		t.Errorf("AmountDue = %v, want 0", q.AmountDue)
	}
}

func TestCalculateFallbackDiscountWithoutCoupon(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	q := quoteAt(t, Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		FallbackDiscount:  10.00,
		Now:               start.Add(30 * time.Minute),
	})
	if !almostEqual(q.Discount, 10.00) {
		t.Errorf("Discount = %v, want snapshotted 10.00", q.Discount)
	}
	if !almostEqual(q.Total, 20.00) {
		t.Errorf("Total = %v, want 20.00", q.Total)
	}
}

func TestCalculateUnknownDiscountType(t *testing.T) {
	start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	coupon := &models.Coupon{
		Code:          "RARO",
		DiscountType:  "bogus",
		DiscountValue: 10,
		Status:        models.CouponActive,
	}

	if _, err := Calculate(Input{
		StartTime:         start,
		ContractedMinutes: 60,
		ChildCount:        1,
		Coupon:            coupon,
		Now:               start.Add(10 * time.Minute),
	}, testRates); err == nil {
		t.Fatal("expected error for unknown discount type")
	}
}
