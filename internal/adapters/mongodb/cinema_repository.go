package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

const cinemasCollection = "cinemas"

// cinemaRepository implements the CinemaRepository interface using MongoDB
type cinemaRepository struct {
	collection *mongo.Collection
}

// NewCinemaRepository creates a new MongoDB cinema repository
func NewCinemaRepository(db *mongo.Database) ports.CinemaRepository {
	return &cinemaRepository{
		collection: db.Collection(cinemasCollection),
	}
}

// GetByID retrieves a cinema and its rack snapshot
func (r *cinemaRepository) GetByID(ctx context.Context, id string) (*models.Cinema, error) {
	var cinema models.Cinema

	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&cinema)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema: %w", err)
	}

	return &cinema, nil
}

// GetByName retrieves a cinema by its display name
func (r *cinemaRepository) GetByName(ctx context.Context, name string) (*models.Cinema, error) {
	var cinema models.Cinema

	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&cinema)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("failed to get cinema by name: %w", err)
	}

	return &cinema, nil
}

// List retrieves all cinemas ordered by name
func (r *cinemaRepository) List(ctx context.Context) ([]*models.Cinema, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list cinemas: %w", err)
	}
	defer cursor.Close(ctx)

	var cinemas []*models.Cinema
	if err := cursor.All(ctx, &cinemas); err != nil {
		return nil, fmt.Errorf("failed to decode cinemas: %w", err)
	}

	return cinemas, nil
}

// Create adds a new cinema record
func (r *cinemaRepository) Create(ctx context.Context, cinema *models.Cinema) error {
	_, err := r.collection.InsertOne(ctx, cinema)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrCinemaExists
		}
		return fmt.Errorf("failed to create cinema: %w", err)
	}

	return nil
}

// Update replaces an existing cinema record
func (r *cinemaRepository) Update(ctx context.Context, cinema *models.Cinema) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": cinema.ID}, cinema)
	if err != nil {
		return fmt.Errorf("failed to update cinema: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrCinemaNotFound
	}

	return nil
}

// ReplaceComponents replaces the full component list of a cinema
func (r *cinemaRepository) ReplaceComponents(ctx context.Context, id string, components []models.EquipmentRecord) error {
	update := bson.M{
		"$set":         bson.M{"components": components},
		"$currentDate": bson.M{"last_updated": true},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to replace components: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrCinemaNotFound
	}

	return nil
}

// Delete removes a cinema and its snapshot
func (r *cinemaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cinema: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrCinemaNotFound
	}

	return nil
}
