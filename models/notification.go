package models

import "time"

// Notice types.
const (
	NoticeStock    = "stock"
	NoticeOvertime = "overtime"
)

// Notice is an operator-facing alert (low stock, contracted time expired).
// While unresolved, at most one notice exists per entity.
type Notice struct {
	ID        string    `bson:"id" json:"id"`
	Type      string    `bson:"type" json:"type"`
	EntityID  string    `bson:"entityId" json:"entityId"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"`
}

// LowStockPayload is the task payload for deferred low-stock notices.
type LowStockPayload struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// OvertimeReminderPayload is the task payload for contracted-time-expiry
// reminders.
type OvertimeReminderPayload struct {
	SessionID string `json:"sessionId"`
}
