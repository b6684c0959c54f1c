package ports

import (
	"context"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

// CinemaRepository defines the interface for cinema rack data access.
// This is a port owned by the domain layer.
type CinemaRepository interface {
	// GetByID retrieves a cinema and its rack snapshot
	GetByID(ctx context.Context, id string) (*models.Cinema, error)

	// GetByName retrieves a cinema by its display name
	GetByName(ctx context.Context, name string) (*models.Cinema, error)

	// List retrieves all cinemas ordered by name
	List(ctx context.Context) ([]*models.Cinema, error)

	// Create adds a new cinema record
	Create(ctx context.Context, cinema *models.Cinema) error

	// Update replaces an existing cinema record
	Update(ctx context.Context, cinema *models.Cinema) error

	// ReplaceComponents replaces the full component list of a cinema
	ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) error

	// Delete removes a cinema and its snapshot
	Delete(ctx context.Context, id string) error
}

// AuditRepository defines the interface for rack change logging
type AuditRepository interface {
	// LogChange records one mutation applied to a cinema's rack
	LogChange(ctx context.Context, entry *models.AuditEntry) error

	// ListByCinema retrieves audit entries for a cinema, newest first
	ListByCinema(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error)
}
