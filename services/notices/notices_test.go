package notices

import (
	"testing"
	"time"

	"recreio/models"
)

type fakeNoticeRepo struct {
	notices []models.Notice
}

func (f *fakeNoticeRepo) CreateIfAbsent(notice *models.Notice) (bool, error) {
	for _, existing := range f.notices {
		if existing.Type == notice.Type && existing.EntityID == notice.EntityID {
			return false, nil
		}
	}
	f.notices = append(f.notices, *notice)
	return true, nil
}

func (f *fakeNoticeRepo) GetAll() ([]models.Notice, error) { return f.notices, nil }

func (f *fakeNoticeRepo) Delete(id string) error {
	for i, n := range f.notices {
		if n.ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeNoticeRepo) DeleteAll() error {
	f.notices = nil
	return nil
}

func TestFileLowStockDeduplicatesPerProduct(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := &DefaultNoticeService{Repo: repo}

	payload := models.LowStockPayload{ProductID: "p1", Name: "Pipoca", Stock: 2}
	for i := 0; i < 3; i++ {
		if err := svc.FileLowStock(payload); err != nil {
			t.Fatalf("FileLowStock %d failed: %v", i, err)
		}
	}
	if len(repo.notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(repo.notices))
	}
	if repo.notices[0].Type != models.NoticeStock || repo.notices[0].EntityID != "p1" {
		t.Errorf("unexpected notice: %+v", repo.notices[0])
	}
}

func TestFileOvertimeDeduplicatesPerSession(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := &DefaultNoticeService{Repo: repo}

	session := &models.ActiveSession{
		ID:          "s1",
		Responsible: "Ana",
		Children:    []string{"Bia"},
		StartTime:   time.Now().Add(-2 * time.Hour),
		MaxTime:     60,
	}
	for i := 0; i < 2; i++ {
		if err := svc.FileOvertime(session); err != nil {
			t.Fatalf("FileOvertime %d failed: %v", i, err)
		}
	}
	if len(repo.notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(repo.notices))
	}

	// A different session gets its own notice.
	other := &models.ActiveSession{ID: "s2", Responsible: "Davi", Children: []string{"Eva"}}
	if err := svc.FileOvertime(other); err != nil {
		t.Fatalf("FileOvertime failed: %v", err)
	}
	if len(repo.notices) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(repo.notices))
	}
}

func TestDismiss(t *testing.T) {
	repo := &fakeNoticeRepo{}
	svc := &DefaultNoticeService{Repo: repo}

	if err := svc.FileLowStock(models.LowStockPayload{ProductID: "p1", Name: "Pipoca", Stock: 1}); err != nil {
		t.Fatalf("FileLowStock failed: %v", err)
	}
	id := repo.notices[0].ID
	if err := svc.Dismiss(id); err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if len(repo.notices) != 0 {
		t.Error("notice not removed")
	}

	// Once dismissed, the same condition may be filed again.
	if err := svc.FileLowStock(models.LowStockPayload{ProductID: "p1", Name: "Pipoca", Stock: 1}); err != nil {
		t.Fatalf("re-file failed: %v", err)
	}
	if len(repo.notices) != 1 {
		t.Error("expected notice re-filed after dismissal")
	}
}
