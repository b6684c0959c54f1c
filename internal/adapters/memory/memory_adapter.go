package memory

import (
	"context"

	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

// MemoryAdapter implements the DatabaseAdapter interface with in-memory
// storage. Used for development and tests; data does not survive restarts.
type MemoryAdapter struct {
	cinemaRepo ports.CinemaRepository
	auditRepo  ports.AuditRepository
}

// NewMemoryAdapter creates a new in-memory database adapter
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		cinemaRepo: NewInMemoryCinemaRepository(),
		auditRepo:  NewInMemoryAuditRepository(),
	}
}

// Connect is a no-op for the in-memory adapter
func (a *MemoryAdapter) Connect(ctx context.Context) error {
	return nil
}

// Disconnect is a no-op for the in-memory adapter
func (a *MemoryAdapter) Disconnect(ctx context.Context) error {
	return nil
}

// Ping always succeeds for the in-memory adapter
func (a *MemoryAdapter) Ping(ctx context.Context) error {
	return nil
}

// GetType returns the database type
func (a *MemoryAdapter) GetType() ports.DatabaseType {
	return ports.DatabaseTypeMemory
}

// GetCinemaRepository returns the cinema repository
func (a *MemoryAdapter) GetCinemaRepository() ports.CinemaRepository {
	return a.cinemaRepo
}

// GetAuditRepository returns the audit repository
func (a *MemoryAdapter) GetAuditRepository() ports.AuditRepository {
	return a.auditRepo
}

// HealthCheck always succeeds for the in-memory adapter
func (a *MemoryAdapter) HealthCheck(ctx context.Context) error {
	return nil
}
