package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
	"github.com/ValenGrassi/cinerack/internal/observability"
)

// cinemaRow is the database representation of a cinema. The component
// list is stored as one JSONB document: the snapshot is always read and
// replaced whole, never row by row.
type cinemaRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Location     string    `db:"location"`
	Address      string    `db:"address"`
	HasGenerator bool      `db:"has_generator"`
	LastUpdated  time.Time `db:"last_updated"`
	Components   []byte    `db:"components"`
}

// cinemaRepository implements the CinemaRepository interface using PostgreSQL
type cinemaRepository struct {
	db *sqlx.DB
}

// NewCinemaRepository creates a new PostgreSQL cinema repository
func NewCinemaRepository(db *sqlx.DB) ports.CinemaRepository {
	return &cinemaRepository{db: db}
}

func (r *cinemaRepository) toRow(cinema *models.Cinema) (*cinemaRow, error) {
	components, err := json.Marshal(cinema.Components)
	if err != nil {
		return nil, fmt.Errorf("failed to encode components: %w", err)
	}
	return &cinemaRow{
		ID:           cinema.ID,
		Name:         cinema.Name,
		Location:     cinema.Location,
		Address:      cinema.Address,
		HasGenerator: cinema.HasGenerator,
		LastUpdated:  cinema.LastUpdated,
		Components:   components,
	}, nil
}

func (r *cinemaRepository) toModel(row *cinemaRow) (*models.Cinema, error) {
	cinema := &models.Cinema{
		ID:           row.ID,
		Name:         row.Name,
		Location:     row.Location,
		Address:      row.Address,
		HasGenerator: row.HasGenerator,
		LastUpdated:  row.LastUpdated,
	}
	if len(row.Components) > 0 {
		if err := json.Unmarshal(row.Components, &cinema.Components); err != nil {
			return nil, fmt.Errorf("failed to decode components: %w", err)
		}
	}
	return cinema, nil
}

// GetByID retrieves a cinema and its rack snapshot
func (r *cinemaRepository) GetByID(ctx context.Context, id string) (*models.Cinema, error) {
	query := `
		SELECT id, name, location, address, has_generator, last_updated, components
		FROM cinemas
		WHERE id = $1
	`

	var row cinemaRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema: %w", err)
	}

	return r.toModel(&row)
}

// GetByName retrieves a cinema by its display name
func (r *cinemaRepository) GetByName(ctx context.Context, name string) (*models.Cinema, error) {
	query := `
		SELECT id, name, location, address, has_generator, last_updated, components
		FROM cinemas
		WHERE name = $1
	`

	var row cinemaRow
	err := r.db.GetContext(ctx, &row, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema by name: %w", err)
	}

	return r.toModel(&row)
}

// List retrieves all cinemas ordered by name
func (r *cinemaRepository) List(ctx context.Context) ([]*models.Cinema, error) {
	start := time.Now()
	defer func() {
		observability.RepositoryQueryDuration.WithLabelValues("list_cinemas").Observe(time.Since(start).Seconds())
	}()

	query := `
		SELECT id, name, location, address, has_generator, last_updated, components
		FROM cinemas
		ORDER BY name ASC
	`

	var rows []cinemaRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list cinemas: %w", err)
	}

	cinemas := make([]*models.Cinema, 0, len(rows))
	for i := range rows {
		cinema, err := r.toModel(&rows[i])
		if err != nil {
			return nil, err
		}
		cinemas = append(cinemas, cinema)
	}
	return cinemas, nil
}

// Create adds a new cinema record
func (r *cinemaRepository) Create(ctx context.Context, cinema *models.Cinema) error {
	row, err := r.toRow(cinema)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cinemas (id, name, location, address, has_generator, last_updated, components)
		VALUES (:id, :name, :location, :address, :has_generator, :last_updated, :components)
	`

	_, err = r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.ErrCinemaExists
		}
		return fmt.Errorf("failed to create cinema: %w", err)
	}

	return nil
}

// Update replaces an existing cinema record
func (r *cinemaRepository) Update(ctx context.Context, cinema *models.Cinema) error {
	row, err := r.toRow(cinema)
	if err != nil {
		return err
	}

	query := `
		UPDATE cinemas
		SET name = :name,
		    location = :location,
		    address = :address,
		    has_generator = :has_generator,
		    last_updated = :last_updated,
		    components = :components
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to update cinema: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrCinemaNotFound
	}

	return nil
}

// ReplaceComponents replaces the full component list of a cinema
func (r *cinemaRepository) ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) error {
	encoded, err := json.Marshal(components)
	if err != nil {
		return fmt.Errorf("failed to encode components: %w", err)
	}

	query := `
		UPDATE cinemas
		SET components = $1, last_updated = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, encoded, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to replace components: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrCinemaNotFound
	}

	return nil
}

// Delete removes a cinema and its snapshot
func (r *cinemaRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cinemas WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete cinema: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrCinemaNotFound
	}

	return nil
}
