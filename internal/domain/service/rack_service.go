package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ValenGrassi/cinerack/internal/adapters/spreadsheet"
	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
	"github.com/ValenGrassi/cinerack/internal/observability"
)

var (
	ErrComponentNotFound = errors.New("component not found")
	ErrEmptySpreadsheet  = errors.New("spreadsheet contains no cinema name")
)

// rackService implements the RackService interface
type rackService struct {
	cinemaRepo ports.CinemaRepository
	auditRepo  ports.AuditRepository
	logger     observability.Logger
}

// NewRackService creates a new rack service instance
func NewRackService(cinemaRepo ports.CinemaRepository, auditRepo ports.AuditRepository) ports.RackService {
	return &rackService{
		cinemaRepo: cinemaRepo,
		auditRepo:  auditRepo,
		logger:     observability.New("rack-service", ""),
	}
}

// ListCinemas retrieves all cinemas with their rack snapshots
func (s *rackService) ListCinemas(ctx context.Context) ([]*models.Cinema, error) {
	cinemas, err := s.cinemaRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("ListCinemas failed", "error", err)
		return nil, err
	}
	s.logger.Infow("ListCinemas completed", "count", len(cinemas))
	return cinemas, nil
}

// GetCinema retrieves one cinema and its rack snapshot
func (s *rackService) GetCinema(ctx context.Context, id string) (*models.Cinema, error) {
	cinema, err := s.cinemaRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("GetCinema failed", "cinema_id", id, "error", err)
		return nil, err
	}
	return cinema, nil
}

// GetRackMetrics recomputes the derived figures from the current
// snapshot. Nothing here is cached: every call reads the records and
// computes from scratch, so the numbers can never drift from the rack.
func (s *rackService) GetRackMetrics(ctx context.Context, id string) (*ports.RackMetrics, error) {
	cinema, err := s.cinemaRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("GetRackMetrics failed to load cinema", "cinema_id", id, "error", err)
		return nil, err
	}

	observability.RackMetricsComputeTotal.Inc()

	consumption := models.TotalPowerConsumption(cinema.Components)
	capacity := models.TotalUPSCapacityVA(cinema.Components)
	autonomy, autonomyDefined := models.EstimatedAutonomyHours(cinema.Components)

	metrics := &ports.RackMetrics{
		CinemaID:          cinema.ID,
		TotalConsumptionW: consumption,
		TotalCapacityVA:   capacity,
		LoadPercentage:    models.UPSLoadPercentage(consumption, capacity),
		AutonomyHours:     autonomy,
		AutonomyDefined:   autonomyDefined,
		Batteries:         batterySummaries(cinema.Components),
	}

	s.logger.Infow("GetRackMetrics computed",
		"cinema_id", id,
		"consumption_w", metrics.TotalConsumptionW,
		"capacity_va", metrics.TotalCapacityVA,
		"load_pct", metrics.LoadPercentage,
	)
	return metrics, nil
}

// batterySummaries derives the battery state of each UPS that carries a
// parseable install date. Units without a date are suppressed entirely:
// an unknown battery age must not show up as a fresh one.
func batterySummaries(records []models.EquipmentRecord) []ports.BatterySummary {
	now := time.Now()

	var summaries []ports.BatterySummary
	for _, record := range records {
		if record.Kind != models.KindUPS || record.UPS == nil || record.UPS.BatteryInstallDate == "" {
			continue
		}
		install, err := models.ParseBatteryDate(record.UPS.BatteryInstallDate)
		if err != nil {
			continue
		}
		lifespan := record.UPS.BatteryLifespanMonths
		summaries = append(summaries, ports.BatterySummary{
			ComponentID:       record.ID,
			InstallDate:       record.UPS.BatteryInstallDate,
			RemainingMonths:   models.BatteryRemainingMonths(install, now, lifespan),
			DueForReplacement: models.BatteryDueForReplacement(install, now, lifespan, models.DefaultBatteryWarningMonths),
			Level:             models.BatteryStatus(install, now, lifespan),
		})
	}
	return summaries
}

// ReplaceComponents replaces the whole component list of a cinema
func (s *rackService) ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) (*models.Cinema, error) {
	for _, component := range components {
		if err := models.ValidateKind(component.Kind); err != nil {
			return nil, fmt.Errorf("component %q: %w", component.ID, err)
		}
		if err := models.ValidateStatus(component.Status); err != nil {
			return nil, fmt.Errorf("component %q: %w", component.ID, err)
		}
	}

	if err := s.cinemaRepo.ReplaceComponents(ctx, id, components); err != nil {
		s.logger.Errorw("ReplaceComponents failed", "cinema_id", id, "error", err)
		return nil, err
	}

	s.audit(ctx, id, "replace-components", fmt.Sprintf("%d components", len(components)))
	s.logger.Infow("ReplaceComponents completed", "cinema_id", id, "count", len(components))
	return s.cinemaRepo.GetByID(ctx, id)
}

// UpdateComponent replaces one component, matched by its id
func (s *rackService) UpdateComponent(ctx context.Context, id string, component models.EquipmentRecord) (*models.Cinema, error) {
	if err := models.ValidateKind(component.Kind); err != nil {
		return nil, err
	}
	if err := models.ValidateStatus(component.Status); err != nil {
		return nil, err
	}

	cinema, err := s.cinemaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range cinema.Components {
		if existing.ID == component.ID {
			cinema.Components[i] = component
			replaced = true
			break
		}
	}
	if !replaced {
		s.logger.Warnw("UpdateComponent target not found", "cinema_id", id, "component_id", component.ID)
		return nil, ErrComponentNotFound
	}

	if err := s.cinemaRepo.ReplaceComponents(ctx, id, cinema.Components); err != nil {
		s.logger.Errorw("UpdateComponent failed", "cinema_id", id, "component_id", component.ID, "error", err)
		return nil, err
	}

	s.audit(ctx, id, "update-component", component.ID)
	s.logger.Infow("UpdateComponent completed", "cinema_id", id, "component_id", component.ID)
	return s.cinemaRepo.GetByID(ctx, id)
}

// RemoveComponent removes one component from the snapshot
func (s *rackService) RemoveComponent(ctx context.Context, id, componentID string) (*models.Cinema, error) {
	cinema, err := s.cinemaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := make([]models.EquipmentRecord, 0, len(cinema.Components))
	found := false
	for _, component := range cinema.Components {
		if component.ID == componentID {
			found = true
			continue
		}
		kept = append(kept, component)
	}
	if !found {
		return nil, ErrComponentNotFound
	}

	if err := s.cinemaRepo.ReplaceComponents(ctx, id, kept); err != nil {
		s.logger.Errorw("RemoveComponent failed", "cinema_id", id, "component_id", componentID, "error", err)
		return nil, err
	}

	s.audit(ctx, id, "remove-component", componentID)
	s.logger.Infow("RemoveComponent completed", "cinema_id", id, "component_id", componentID)
	return s.cinemaRepo.GetByID(ctx, id)
}

// DeleteCinema removes a cinema entirely
func (s *rackService) DeleteCinema(ctx context.Context, id string) error {
	if err := s.cinemaRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("DeleteCinema failed", "cinema_id", id, "error", err)
		return err
	}
	s.audit(ctx, id, "delete-cinema", "")
	s.logger.Infow("DeleteCinema completed", "cinema_id", id)
	return nil
}

// ImportSpreadsheet ingests a rack spreadsheet and creates or replaces
// the cinema it describes. Only container-level failures surface to the
// caller; malformed rows have already been dropped by the extractor.
func (s *rackService) ImportSpreadsheet(ctx context.Context, r io.Reader, filename string) (*ports.IngestResult, error) {
	start := time.Now()
	s.logger.Infow("ImportSpreadsheet started", "filename", filename)

	data, err := spreadsheet.Parse(r)
	if err != nil {
		observability.SpreadsheetIngestTotal.WithLabelValues("error").Inc()
		s.logger.Errorw("ImportSpreadsheet decode failed", "filename", filename, "error", err)
		return nil, err
	}
	if data.CinemaName == "" {
		observability.SpreadsheetIngestTotal.WithLabelValues("error").Inc()
		return nil, ErrEmptySpreadsheet
	}

	components := spreadsheet.Assemble(data)

	cinema, err := s.cinemaRepo.GetByName(ctx, data.CinemaName)
	switch {
	case err == nil:
		cinema.Location = data.Location
		cinema.Address = data.Address
		cinema.HasGenerator = data.HasGenerator
		cinema.Components = components
		cinema.LastUpdated = time.Now()
		if err := s.cinemaRepo.Update(ctx, cinema); err != nil {
			observability.SpreadsheetIngestTotal.WithLabelValues("error").Inc()
			return nil, err
		}
	case errors.Is(err, models.ErrCinemaNotFound):
		cinema = &models.Cinema{
			ID:           slugify(data.CinemaName),
			Name:         data.CinemaName,
			Location:     data.Location,
			Address:      data.Address,
			HasGenerator: data.HasGenerator,
			LastUpdated:  time.Now(),
			Components:   components,
		}
		if err := s.cinemaRepo.Create(ctx, cinema); err != nil {
			observability.SpreadsheetIngestTotal.WithLabelValues("error").Inc()
			return nil, err
		}
	default:
		observability.SpreadsheetIngestTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	s.audit(ctx, cinema.ID, "import-spreadsheet", filename)
	observability.SpreadsheetIngestTotal.WithLabelValues("ok").Inc()
	observability.SpreadsheetIngestDuration.Observe(time.Since(start).Seconds())

	s.logger.Infow("ImportSpreadsheet completed",
		"filename", filename,
		"cinema_id", cinema.ID,
		"components", len(components),
	)

	return &ports.IngestResult{
		Header: ports.IngestHeader{
			CinemaName:        data.CinemaName,
			Location:          data.Location,
			Address:           data.Address,
			TotalKVA:          data.TotalKVA,
			TotalConsumption:  data.TotalConsumption,
			EstimatedAutonomy: data.EstimatedAutonomy,
			LastBatteryChange: data.LastBatteryChange,
			NextBatteryChange: data.NextBatteryChange,
			HasGenerator:      data.HasGenerator,
		},
		Components: components,
		CinemaID:   cinema.ID,
	}, nil
}

// ListAuditLog retrieves the change log for a cinema
func (s *rackService) ListAuditLog(ctx context.Context, cinemaID string, offset, limit int) ([]*models.AuditEntry, error) {
	entries, err := s.auditRepo.ListByCinema(ctx, cinemaID, offset, limit)
	if err != nil {
		s.logger.Errorw("ListAuditLog failed", "cinema_id", cinemaID, "error", err)
		return nil, err
	}
	return entries, nil
}

// audit records a mutation; audit failures are logged, never propagated
func (s *rackService) audit(ctx context.Context, cinemaID, action, detail string) {
	entry := &models.AuditEntry{
		CinemaID:  cinemaID,
		Action:    action,
		Detail:    detail,
		ChangedAt: time.Now(),
	}
	if err := s.auditRepo.LogChange(ctx, entry); err != nil {
		s.logger.Warnw("audit log write failed", "cinema_id", cinemaID, "action", action, "error", err)
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
