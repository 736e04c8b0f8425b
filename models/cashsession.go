package models

import "time"

// Cash drawer statuses.
const (
	CashSessionOpen   = "open"
	CashSessionClosed = "closed"
)

// Operator identifies who performed a drawer operation.
type Operator struct {
	UID   string `bson:"uid" json:"uid"`
	Email string `bson:"email" json:"email"`
}

// Withdrawal is cash taken out of the drawer mid-day.
type Withdrawal struct {
	Amount    float64   `bson:"amount" json:"amount"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UserName  string    `bson:"userName" json:"userName"`
}

// CashSession is the daily cash-register lifecycle: open, operate, close.
// System-wide at most one session has status "open" at any time.
type CashSession struct {
	ID             string       `bson:"id" json:"id"`
	Status         string       `bson:"status" json:"status"`
	OpenedAt       time.Time    `bson:"openedAt" json:"openedAt"`
	OpeningBalance float64      `bson:"openingBalance" json:"openingBalance"`
	OpenedBy       Operator     `bson:"openedBy" json:"openedBy"`
	Withdrawals    []Withdrawal `bson:"withdrawals" json:"withdrawals"`

	// Set at close.
	ClosedAt           *time.Time `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
	ClosedBy           *Operator  `bson:"closedBy,omitempty" json:"closedBy,omitempty"`
	CountedBalance     float64    `bson:"countedBalance,omitempty" json:"countedBalance,omitempty"`
	ExpectedCashAmount float64    `bson:"expectedCashAmount,omitempty" json:"expectedCashAmount,omitempty"`
	Difference         float64    `bson:"difference,omitempty" json:"difference,omitempty"`
	FinalCashSales     float64    `bson:"finalCashSales,omitempty" json:"finalCashSales,omitempty"`
}

// WithdrawalsTotal sums all cash taken out of the drawer.
func (s *CashSession) WithdrawalsTotal() float64 {
	var total float64
	for _, w := range s.Withdrawals {
		total += w.Amount
	}
	return total
}
