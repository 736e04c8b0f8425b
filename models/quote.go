package models

// Quote is the cost breakdown the billing calculator produces for a session
// at a given instant. It is a pure read-side projection; nothing is persisted
// from it directly.
type Quote struct {
	ElapsedMinutes  float64 `json:"elapsedMinutes"`
	MinutesToCharge float64 `json:"minutesToCharge"`
	HoursToCharge   int     `json:"hoursToCharge"`
	ChildCount      int     `json:"childCount"`
	FullAfternoon   bool    `json:"fullAfternoon"`

	FirstHourCost       float64 `json:"firstHourCost"`
	AdditionalHours     int     `json:"additionalHours"`
	AdditionalHoursCost float64 `json:"additionalHoursCost"`
	TimeCost            float64 `json:"timeCost"`
	ConsumptionCost     float64 `json:"consumptionCost"`
	Subtotal            float64 `json:"subtotal"`
	Discount            float64 `json:"discount"`
	AlreadyPaid         float64 `json:"alreadyPaid"`

	// Total is the display total (subtotal minus discount, floored at zero).
	// AmountDue additionally subtracts what previous partial settlements
	// already collected.
	Total     float64 `json:"total"`
	AmountDue float64 `json:"amountDue"`
}
