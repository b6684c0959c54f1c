package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

// InMemoryCinemaRepository is an in-memory implementation for testing
// and single-node deployments
type InMemoryCinemaRepository struct {
	mu      sync.RWMutex
	cinemas map[string]*models.Cinema
}

// NewInMemoryCinemaRepository creates a new in-memory cinema repository
func NewInMemoryCinemaRepository() ports.CinemaRepository {
	return &InMemoryCinemaRepository{
		cinemas: make(map[string]*models.Cinema),
	}
}

func (r *InMemoryCinemaRepository) GetByID(ctx context.Context, id string) (*models.Cinema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cinema, ok := r.cinemas[id]; ok {
		return copyCinema(cinema), nil
	}
	return nil, models.ErrCinemaNotFound
}

func (r *InMemoryCinemaRepository) GetByName(ctx context.Context, name string) (*models.Cinema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cinema := range r.cinemas {
		if cinema.Name == name {
			return copyCinema(cinema), nil
		}
	}
	return nil, models.ErrCinemaNotFound
}

func (r *InMemoryCinemaRepository) List(ctx context.Context) ([]*models.Cinema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Cinema, 0, len(r.cinemas))
	for _, cinema := range r.cinemas {
		result = append(result, copyCinema(cinema))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *InMemoryCinemaRepository) Create(ctx context.Context, cinema *models.Cinema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cinemas[cinema.ID]; exists {
		return models.ErrCinemaExists
	}
	r.cinemas[cinema.ID] = copyCinema(cinema)
	return nil
}

func (r *InMemoryCinemaRepository) Update(ctx context.Context, cinema *models.Cinema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cinemas[cinema.ID]; !exists {
		return models.ErrCinemaNotFound
	}
	r.cinemas[cinema.ID] = copyCinema(cinema)
	return nil
}

func (r *InMemoryCinemaRepository) ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cinema, exists := r.cinemas[id]
	if !exists {
		return models.ErrCinemaNotFound
	}
	cinema.Components = append([]models.EquipmentRecord(nil), components...)
	cinema.LastUpdated = time.Now()
	return nil
}

func (r *InMemoryCinemaRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cinemas[id]; !exists {
		return models.ErrCinemaNotFound
	}
	delete(r.cinemas, id)
	return nil
}

// copyCinema returns a deep enough copy to keep callers from mutating
// the stored snapshot through the returned pointer
func copyCinema(cinema *models.Cinema) *models.Cinema {
	clone := *cinema
	clone.Components = append([]models.EquipmentRecord(nil), cinema.Components...)
	return &clone
}
