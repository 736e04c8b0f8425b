package models

import "time"

// ConsumptionItem is one purchased line on a session's tab. Price is the unit
// price snapshotted when the item was first added, so later product price
// edits never change an open tab.
type ConsumptionItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// ActiveSession represents one checked-in group, from check-in until the
// settlement that closes it (or an explicit cancellation).
type ActiveSession struct {
	ID               string            `bson:"id" json:"id"`
	Responsible      string            `bson:"responsible" json:"responsible"`
	ResponsibleCpf   string            `bson:"responsibleCpf" json:"responsibleCpf"`
	ResponsiblePhone string            `bson:"responsiblePhone,omitempty" json:"responsiblePhone,omitempty"`
	Children         []string          `bson:"children" json:"children"`
	StartTime        time.Time         `bson:"startTime" json:"startTime"`
	MaxTime          int               `bson:"maxTime" json:"maxTime"` // contracted minutes
	IsFullAfternoon  bool              `bson:"isFullAfternoon" json:"isFullAfternoon"`
	Consumption      []ConsumptionItem `bson:"consumption" json:"consumption"`

	// Coupon snapshot fixed at check-in, or replaced by a last-minute coupon
	// at settlement.
	CouponCode      string  `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	CouponID        string  `bson:"couponId,omitempty" json:"couponId,omitempty"`
	DiscountApplied float64 `bson:"discountApplied,omitempty" json:"discountApplied,omitempty"`

	// IsInitialPaymentMade marks the balance as settled while the session
	// stays open. Adding time flips it back to false.
	IsInitialPaymentMade bool    `bson:"isInitialPaymentMade" json:"isInitialPaymentMade"`
	TotalPaidSoFar       float64 `bson:"totalPaidSoFar" json:"totalPaidSoFar"`

	// IsCouponUsageCounted guards the coupon use counter so repeated partial
	// settlements of the same session count the coupon exactly once.
	IsCouponUsageCounted bool `bson:"isCouponUsageCounted" json:"isCouponUsageCounted"`
}

// ContractedEnd is the instant the contracted time runs out.
func (s *ActiveSession) ContractedEnd() time.Time {
	return s.StartTime.Add(time.Duration(s.MaxTime) * time.Minute)
}

// InOvertime reports whether elapsed time has exceeded the contracted time.
func (s *ActiveSession) InOvertime(now time.Time) bool {
	return now.After(s.ContractedEnd())
}
