package memory

import (
	"context"
	"sync"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

// InMemoryAuditRepository is an in-memory implementation for testing
type InMemoryAuditRepository struct {
	mu      sync.RWMutex
	entries []*models.AuditEntry
	nextID  int64
}

// NewInMemoryAuditRepository creates a new in-memory audit repository
func NewInMemoryAuditRepository() ports.AuditRepository {
	return &InMemoryAuditRepository{nextID: 1}
}

func (r *InMemoryAuditRepository) LogChange(ctx context.Context, entry *models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, entry)
	return nil
}

func (r *InMemoryAuditRepository) ListByCinema(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.AuditEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CinemaID == cinemaID {
			matched = append(matched, r.entries[i])
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
