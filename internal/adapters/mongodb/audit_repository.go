package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

const auditCollection = "rack_audit_log"

// auditRepository implements the AuditRepository interface using MongoDB
type auditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new MongoDB audit repository
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &auditRepository{
		collection: db.Collection(auditCollection),
	}
}

// LogChange records one mutation applied to a cinema's rack
func (r *auditRepository) LogChange(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ChangedAt.IsZero() {
		entry.ChangedAt = time.Now()
	}
	// Monotonic-enough id for a log entry; mongo keys documents by _id
	entry.ID = entry.ChangedAt.UnixNano()

	_, err := r.collection.InsertOne(ctx, entry)
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

	opts := options.Find().
		SetSort(bson.D{{Key: "changed_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"cinema_id": cinemaID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*models.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode audit entries: %w", err)
	}

	return entries, nil
}
