package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

// auditRepository implements the AuditRepository interface using PostgreSQL
type auditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new PostgreSQL audit repository
func NewAuditRepository(db *sqlx.DB) ports.AuditRepository {
	return &auditRepository{db: db}
}

// LogChange records one mutation applied to a cinema's rack
func (r *auditRepository) LogChange(ctx context.Context, entry *models.AuditEntry) error {
	query := `
		INSERT INTO rack_audit_log (cinema_id, action, detail, changed_at)
		VALUES (:cinema_id, :action, :detail, :changed_at)
		RETURNING id
	`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &entry.ID, entry)
	if err != nil {
		return fmt.Errorf("failed to log change: %w", err)
	}

	return nil
}

// ListByCinema retrieves audit entries for a cinema, newest first
func (r *auditRepository) ListByCinema(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, cinema_id, action, detail, changed_at
		FROM rack_audit_log
		WHERE cinema_id = $1
		ORDER BY changed_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	var entries []*models.AuditEntry
	if err := r.db.SelectContext(ctx, &entries, query, cinemaID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return entries, nil
}
