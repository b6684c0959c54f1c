package ports

import (
	"context"
	"io"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

// RackService defines the core business operations over cinema racks.
// This is the primary port for the rack domain.
type RackService interface {
	// ListCinemas retrieves all cinemas with their rack snapshots
	ListCinemas(ctx context.Context) ([]*models.Cinema, error)

	// GetCinema retrieves one cinema and its rack snapshot
	GetCinema(ctx context.Context, id string) (*models.Cinema, error)

	// GetRackMetrics recomputes derived metrics from the current snapshot
	GetRackMetrics(ctx context.Context, id string) (*RackMetrics, error)

	// ReplaceComponents replaces the whole component list of a cinema
	ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) (*models.Cinema, error)

	// UpdateComponent replaces one component, matched by its id
	UpdateComponent(ctx context.Context, id string, component models.EquipmentRecord) (*models.Cinema, error)

	// RemoveComponent removes one component from the snapshot
	RemoveComponent(ctx context.Context, id, componentID string) (*models.Cinema, error)

	// DeleteCinema removes a cinema entirely
	DeleteCinema(ctx context.Context, id string) error

	// ImportSpreadsheet ingests a rack spreadsheet and creates or replaces
	// the cinema it describes
	ImportSpreadsheet(ctx context.Context, r io.Reader, filename string) (*IngestResult, error)

	// ListAuditLog retrieves the change log for a cinema
	ListAuditLog(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error)
}

// BatterySummary describes the battery state of one UPS unit.
// It is only produced when the unit carries a parseable install date.
type BatterySummary struct {
	ComponentID       string                    `json:"component_id"`
	InstallDate       string                    `json:"install_date"`
	RemainingMonths   int                       `json:"remaining_months"`
	DueForReplacement bool                      `json:"due_for_replacement"`
	Level             models.BatteryStatusLevel `json:"level"`
}

// RackMetrics bundles the derived figures computed from a rack snapshot.
// These values are never stored; every call recomputes them.
type RackMetrics struct {
	CinemaID          string           `json:"cinema_id"`
	TotalConsumptionW float64          `json:"total_consumption_w"`
	TotalCapacityVA   float64          `json:"total_capacity_va"`
	LoadPercentage    int              `json:"load_percentage"`
	AutonomyHours     float64          `json:"autonomy_hours"`
	AutonomyDefined   bool             `json:"autonomy_defined"`
	Batteries         []BatterySummary `json:"batteries,omitempty"`
}

// IngestHeader carries the site-level facts read from a rack spreadsheet
type IngestHeader struct {
	CinemaName        string  `json:"cinema_name"`
	Location          string  `json:"location"`
	Address           string  `json:"address"`
	TotalKVA          float64 `json:"total_kva"`
	TotalConsumption  float64 `json:"total_consumption"`
	EstimatedAutonomy float64 `json:"estimated_autonomy"`
	LastBatteryChange string  `json:"last_battery_change"`
	NextBatteryChange string  `json:"next_battery_change"`
	HasGenerator      bool    `json:"has_generator"`
}

// IngestResult is the outcome of a spreadsheet import: the header facts
// plus the canonical equipment records built from the sheet
type IngestResult struct {
	Header     IngestHeader             `json:"header"`
	Components []models.EquipmentRecord `json:"components"`
	CinemaID   string                   `json:"cinema_id"`
}
