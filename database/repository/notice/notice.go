package noticeRepo

import "recreio/models"

// NoticeRepository defines methods for operator notice data access.
type NoticeRepository interface {
	// CreateIfAbsent inserts the notice unless an unresolved notice of the
	// same type already exists for the same entity. Returns true when a new
	// notice was written.
	CreateIfAbsent(notice *models.Notice) (bool, error)
	// GetAll retrieves all notices, newest first.
	GetAll() ([]models.Notice, error)
	// Delete removes a notice by its ID (resolves it).
	Delete(id string) error
	// DeleteAll removes every notice.
	DeleteAll() error
}
