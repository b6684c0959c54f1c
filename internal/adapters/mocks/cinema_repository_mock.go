package mocks

import (
	"context"
	"sync"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

// MockCinemaRepository is a mock implementation of CinemaRepository for
// testing. Behaviour defaults to an in-memory map; individual methods
// can be overridden per test through the Func fields.
type MockCinemaRepository struct {
	mu      sync.RWMutex
	cinemas map[string]*models.Cinema

	GetByIDFunc           func(ctx context.Context, id string) (*models.Cinema, error)
	GetByNameFunc         func(ctx context.Context, name string) (*models.Cinema, error)
	ListFunc              func(ctx context.Context) ([]*models.Cinema, error)
	CreateFunc            func(ctx context.Context, cinema *models.Cinema) error
	UpdateFunc            func(ctx context.Context, cinema *models.Cinema) error
	ReplaceComponentsFunc func(ctx context.Context, id string, components []models.EquipmentRecord) error
	DeleteFunc            func(ctx context.Context, id string) error
}

// NewMockCinemaRepository creates a new mock cinema repository
func NewMockCinemaRepository() *MockCinemaRepository {
	return &MockCinemaRepository{
		cinemas: make(map[string]*models.Cinema),
	}
}

// Seed stores a cinema directly, bypassing any override
func (m *MockCinemaRepository) Seed(cinema *models.Cinema) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cinemas[cinema.ID] = cinema
}

func (m *MockCinemaRepository) GetByID(ctx context.Context, id string) (*models.Cinema, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if cinema, ok := m.cinemas[id]; ok {
		return cinema, nil
	}
	return nil, models.ErrCinemaNotFound
}

func (m *MockCinemaRepository) GetByName(ctx context.Context, name string) (*models.Cinema, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, cinema := range m.cinemas {
		if cinema.Name == name {
			return cinema, nil
		}
	}
	return nil, models.ErrCinemaNotFound
}

func (m *MockCinemaRepository) List(ctx context.Context) ([]*models.Cinema, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*models.Cinema, 0, len(m.cinemas))
	for _, cinema := range m.cinemas {
		result = append(result, cinema)
	}
	return result, nil
}

func (m *MockCinemaRepository) Create(ctx context.Context, cinema *models.Cinema) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cinema)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.cinemas[cinema.ID]; exists {
		return models.ErrCinemaExists
	}
	m.cinemas[cinema.ID] = cinema
	return nil
}

func (m *MockCinemaRepository) Update(ctx context.Context, cinema *models.Cinema) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cinema)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.cinemas[cinema.ID]; !exists {
		return models.ErrCinemaNotFound
	}
	m.cinemas[cinema.ID] = cinema
	return nil
}

func (m *MockCinemaRepository) ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) error {
	if m.ReplaceComponentsFunc != nil {
		return m.ReplaceComponentsFunc(ctx, id, components)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cinema, exists := m.cinemas[id]
	if !exists {
		return models.ErrCinemaNotFound
	}
	cinema.Components = components
	return nil
}

func (m *MockCinemaRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.cinemas[id]; !exists {
		return models.ErrCinemaNotFound
	}
	delete(m.cinemas, id)
	return nil
}
