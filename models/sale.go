package models

import "time"

// Tender methods accepted at the register.
const (
	PaymentCash   = "cash"
	PaymentPix    = "pix"
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
)

// Payment is one tendered amount within a settlement. A settlement carries an
// ordered list of these.
type Payment struct {
	Method string  `bson:"method" json:"method"`
	Amount float64 `bson:"amount" json:"amount"`
}

// SaleRecord is the immutable receipt written once per settlement event.
// Reporting and history reads never mutate it.
type SaleRecord struct {
	ID                string            `bson:"id" json:"id"`
	FinalizedAt       time.Time         `bson:"finalizedAt" json:"finalizedAt"`
	Responsible       string            `bson:"responsible" json:"responsible"`
	ResponsibleCpf    string            `bson:"responsibleCpf" json:"responsibleCpf"`
	Children          []string          `bson:"children" json:"children"`
	DurationInMinutes int               `bson:"durationInMinutes" json:"durationInMinutes"`
	TimeCost          float64           `bson:"timeCost" json:"timeCost"`
	Consumption       []ConsumptionItem `bson:"consumption" json:"consumption"`
	ConsumptionCost   float64           `bson:"consumptionCost" json:"consumptionCost"`
	CouponCode        string            `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	CouponID          string            `bson:"couponId,omitempty" json:"couponId,omitempty"`
	DiscountApplied   float64           `bson:"discountApplied" json:"discountApplied"`
	TotalAmount       float64           `bson:"totalAmount" json:"totalAmount"`
	PaymentMethods    []Payment         `bson:"paymentMethods" json:"paymentMethods"`
	ChangeGiven       float64           `bson:"changeGiven" json:"changeGiven"`
}

// CashTendered sums the cash portion of the sale's payments.
func (s *SaleRecord) CashTendered() float64 {
	var total float64
	for _, p := range s.PaymentMethods {
		if p.Method == PaymentCash {
			total += p.Amount
		}
	}
	return total
}

// CashCollected is the cash that actually stayed in the drawer for this sale,
// after change was handed back.
func (s *SaleRecord) CashCollected() float64 {
	collected := s.CashTendered() - s.ChangeGiven
	if collected < 0 {
		return 0
	}
	return collected
}
