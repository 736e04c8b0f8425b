// Package notices manages operator alerts: low product stock and sessions
// past their contracted time.
package notices

import (
	"fmt"
	"strings"
	"time"

	noticeRepo "recreio/database/repository/notice"
	"recreio/models"
	"recreio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNoticeService implements NoticeService.
type DefaultNoticeService struct {
	Repo noticeRepo.NoticeRepository
}

// List returns all notices, newest first.
func (s *DefaultNoticeService) List() ([]models.Notice, error) {
	return s.Repo.GetAll()
}

// Dismiss resolves a notice by ID.
func (s *DefaultNoticeService) Dismiss(id string) error {
	return s.Repo.Delete(id)
}

// DismissAll resolves every notice.
func (s *DefaultNoticeService) DismissAll() error {
	return s.Repo.DeleteAll()
}

// FileLowStock files a low-stock notice for the product. At most one
// unresolved notice exists per product.
func (s *DefaultNoticeService) FileLowStock(payload models.LowStockPayload) error {
	notice := &models.Notice{
		ID:        uuid.New().String(),
		Type:      models.NoticeStock,
		EntityID:  payload.ProductID,
		Message:   fmt.Sprintf("Low stock: %s has %d units left", payload.Name, payload.Stock),
		CreatedAt: time.Now(),
		Link:      "/products",
	}
	created, err := s.Repo.CreateIfAbsent(notice)
	if err != nil {
		return err
	}
	if created {
		utils.GetLogger().Info("filed low-stock notice",
			zap.String("productId", payload.ProductID),
			zap.Int("stock", payload.Stock),
		)
	}
	return nil
}

// FileOvertime files a contracted-time-expired notice for the session. At
// most one unresolved notice exists per session.
func (s *DefaultNoticeService) FileOvertime(session *models.ActiveSession) error {
	notice := &models.Notice{
		ID:        uuid.New().String(),
		Type:      models.NoticeOvertime,
		EntityID:  session.ID,
		Message:   fmt.Sprintf("Contracted time expired for %s (%s)", session.Responsible, strings.Join(session.Children, ", ")),
		CreatedAt: time.Now(),
		Link:      "/sessions/" + session.ID,
	}
	created, err := s.Repo.CreateIfAbsent(notice)
	if err != nil {
		return err
	}
	if created {
		utils.GetLogger().Info("filed overtime notice",
			zap.String("sessionId", session.ID),
		)
	}
	return nil
}
