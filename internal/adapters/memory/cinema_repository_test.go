package memory

import (
	"context"
	"testing"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCinema(id, name string) *models.Cinema {
	return &models.Cinema{
		ID:   id,
		Name: name,
		Components: []models.EquipmentRecord{
			{ID: "server-1", Kind: models.KindServer, Status: models.StatusOnline, Position: 1},
		},
	}
}

func TestCinemaRepositoryCRUD(t *testing.T) {
	repo := NewInMemoryCinemaRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCinema("cine-a", "Cine A")))
	assert.ErrorIs(t, repo.Create(ctx, testCinema("cine-a", "Cine A")), models.ErrCinemaExists)

	cinema, err := repo.GetByID(ctx, "cine-a")
	require.NoError(t, err)
	assert.Equal(t, "Cine A", cinema.Name)

	byName, err := repo.GetByName(ctx, "Cine A")
	require.NoError(t, err)
	assert.Equal(t, "cine-a", byName.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrCinemaNotFound)

	cinema.Address = "updated"
	require.NoError(t, repo.Update(ctx, cinema))
	updated, err := repo.GetByID(ctx, "cine-a")
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Address)

	require.NoError(t, repo.Delete(ctx, "cine-a"))
	assert.ErrorIs(t, repo.Delete(ctx, "cine-a"), models.ErrCinemaNotFound)
}

func TestCinemaRepositoryListSortedByName(t *testing.T) {
	repo := NewInMemoryCinemaRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCinema("b", "Belgrano")))
	require.NoError(t, repo.Create(ctx, testCinema("a", "Abasto")))

	cinemas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cinemas, 2)
	assert.Equal(t, "Abasto", cinemas[0].Name)
	assert.Equal(t, "Belgrano", cinemas[1].Name)
}

func TestCinemaRepositoryReplaceComponents(t *testing.T) {
	repo := NewInMemoryCinemaRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCinema("cine-a", "Cine A")))

	replacement := []models.EquipmentRecord{
		{ID: "switch-1", Kind: models.KindSwitch, Status: models.StatusOnline, Position: 1},
		{ID: "ups-2", Kind: models.KindUPS, Status: models.StatusOnline, Position: 2},
	}
	require.NoError(t, repo.ReplaceComponents(ctx, "cine-a", replacement))

	cinema, err := repo.GetByID(ctx, "cine-a")
	require.NoError(t, err)
	require.Len(t, cinema.Components, 2)
	assert.Equal(t, "switch-1", cinema.Components[0].ID)
	assert.False(t, cinema.LastUpdated.IsZero())

	assert.ErrorIs(t, repo.ReplaceComponents(ctx, "missing", nil), models.ErrCinemaNotFound)
}

// The repository must hand out copies: mutating a fetched snapshot must
// not leak into the stored one.
func TestCinemaRepositoryReturnsCopies(t *testing.T) {
	repo := NewInMemoryCinemaRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCinema("cine-a", "Cine A")))

	fetched, err := repo.GetByID(ctx, "cine-a")
	require.NoError(t, err)
	fetched.Components[0].Status = models.StatusOffline

	fresh, err := repo.GetByID(ctx, "cine-a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, fresh.Components[0].Status)
}

func TestAuditRepository(t *testing.T) {
	repo := NewInMemoryAuditRepository()
	ctx := context.Background()

	for _, action := range []string{"import-spreadsheet", "update-component", "delete-cinema"} {
		require.NoError(t, repo.LogChange(ctx, &models.AuditEntry{CinemaID: "cine-a", Action: action}))
	}
	require.NoError(t, repo.LogChange(ctx, &models.AuditEntry{CinemaID: "cine-b", Action: "update-component"}))

	entries, err := repo.ListByCinema(ctx, "cine-a", 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "delete-cinema", entries[0].Action, "newest first")

	paged, err := repo.ListByCinema(ctx, "cine-a", 1, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "update-component", paged[0].Action)

	empty, err := repo.ListByCinema(ctx, "cine-a", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
