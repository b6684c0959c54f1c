package mocks

import (
	"context"
	"sync"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

// MockAuditRepository is a mock implementation of AuditRepository for testing
type MockAuditRepository struct {
	mu      sync.RWMutex
	entries []models.AuditEntry

	LogChangeFunc    func(ctx context.Context, entry *models.AuditEntry) error
	ListByCinemaFunc func(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error)
}

// NewMockAuditRepository creates a new mock audit repository
func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

// Entries returns a snapshot of everything logged so far
func (m *MockAuditRepository) Entries() []models.AuditEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.AuditEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MockAuditRepository) LogChange(ctx context.Context, entry *models.AuditEntry) error {
	if m.LogChangeFunc != nil {
		return m.LogChangeFunc(ctx, entry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockAuditRepository) ListByCinema(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error) {
	if m.ListByCinemaFunc != nil {
		return m.ListByCinemaFunc(ctx, cinemaID, offset, limit)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []*models.AuditEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].CinemaID == cinemaID {
			entry := m.entries[i]
			matched = append(matched, &entry)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}
