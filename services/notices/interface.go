package notices

import "recreio/models"

// NoticeService manages operator-facing alerts. Filing is idempotent per
// entity: while an alert for a product or session is unresolved, repeated
// triggers do not stack up duplicates.
type NoticeService interface {
	// List returns all notices, newest first.
	List() ([]models.Notice, error)
	// Dismiss resolves a notice by ID.
	Dismiss(id string) error
	// DismissAll resolves every notice.
	DismissAll() error
	// FileLowStock files a low-stock notice for the product.
	FileLowStock(payload models.LowStockPayload) error
	// FileOvertime files a contracted-time-expired notice for the session.
	FileOvertime(session *models.ActiveSession) error
}
