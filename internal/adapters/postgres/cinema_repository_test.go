package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func testComponentsJSON(t *testing.T) []byte {
	t.Helper()
	components := []models.EquipmentRecord{
		{ID: "switch-1", Kind: models.KindSwitch, Name: "Cisco C9200", Status: models.StatusOnline, Position: 1, PowerConsumptionWatts: 150},
		{ID: "ups-2", Kind: models.KindUPS, Name: "APC Smart-UPS", Status: models.StatusOnline, Position: 2, UPS: &models.UPSSpec{CapacityVA: 3000}},
	}
	encoded, err := json.Marshal(components)
	require.NoError(t, err)
	return encoded
}

func TestNewCinemaRepository(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)
	assert.NotNil(t, repo)
}

func TestGetByID_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "location", "address", "has_generator", "last_updated", "components",
	}).AddRow(
		"cine-palermo", "Cine Palermo", "Buenos Aires", "Av. Santa Fe 3253", true, now, testComponentsJSON(t),
	)

	mock.ExpectQuery("SELECT (.+) FROM cinemas WHERE id = (.+)").
		WithArgs("cine-palermo").
		WillReturnRows(rows)

	cinema, err := repo.GetByID(ctx, "cine-palermo")

	require.NoError(t, err)
	assert.Equal(t, "Cine Palermo", cinema.Name)
	assert.True(t, cinema.HasGenerator)
	require.Len(t, cinema.Components, 2)
	assert.Equal(t, models.KindSwitch, cinema.Components[0].Kind)
	require.NotNil(t, cinema.Components[1].UPS)
	assert.Equal(t, 3000.0, cinema.Components[1].UPS.CapacityVA)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM cinemas WHERE id = (.+)").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrCinemaNotFound)
}

func TestGetByName_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "location", "address", "has_generator", "last_updated", "components",
	}).AddRow(
		"cine-palermo", "Cine Palermo", "Buenos Aires", "", false, time.Now(), []byte("[]"),
	)

	mock.ExpectQuery("SELECT (.+) FROM cinemas WHERE name = (.+)").
		WithArgs("Cine Palermo").
		WillReturnRows(rows)

	cinema, err := repo.GetByName(context.Background(), "Cine Palermo")
	require.NoError(t, err)
	assert.Equal(t, "cine-palermo", cinema.ID)
	assert.Empty(t, cinema.Components)
}

func TestList_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "location", "address", "has_generator", "last_updated", "components",
	}).
		AddRow("cine-abasto", "Cine Abasto", "", "", false, time.Now(), []byte("[]")).
		AddRow("cine-palermo", "Cine Palermo", "", "", true, time.Now(), testComponentsJSON(t))

	mock.ExpectQuery("SELECT (.+) FROM cinemas ORDER BY name ASC").
		WillReturnRows(rows)

	cinemas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cinemas, 2)
	assert.Equal(t, "Cine Abasto", cinemas[0].Name)
	assert.Len(t, cinemas[1].Components, 2)
}

func TestCreate_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("INSERT INTO cinemas").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Cinema{
		ID:          "cine-palermo",
		Name:        "Cine Palermo",
		LastUpdated: time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateName(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("INSERT INTO cinemas").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Cinema{
		ID:   "cine-palermo",
		Name: "Cine Palermo",
	})
	assert.ErrorIs(t, err, models.ErrCinemaExists)
}

func TestUpdate_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("UPDATE cinemas").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Cinema{ID: "missing"})
	assert.ErrorIs(t, err, models.ErrCinemaNotFound)
}

func TestReplaceComponents_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("UPDATE cinemas SET components = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReplaceComponents(context.Background(), "cine-palermo", []models.EquipmentRecord{
		{ID: "router-1", Kind: models.KindRouter, Status: models.StatusOnline},
	})
	assert.NoError(t, err)
}

func TestReplaceComponents_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("UPDATE cinemas SET components = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReplaceComponents(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, models.ErrCinemaNotFound)
}

func TestDelete_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("DELETE FROM cinemas WHERE id = (.+)").
		WithArgs("cine-palermo").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "cine-palermo"))
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	repo := NewCinemaRepository(db)

	mock.ExpectExec("DELETE FROM cinemas WHERE id = (.+)").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), models.ErrCinemaNotFound)
}
