package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/ValenGrassi/cinerack/internal/domain/ports"
)

// MongoDBAdapter implements the DatabaseAdapter interface for MongoDB
type MongoDBAdapter struct {
	client     *mongo.Client
	db         *mongo.Database
	config     *ports.MongoDBConfig
	cinemaRepo ports.CinemaRepository
	auditRepo  ports.AuditRepository
}

// NewMongoDBAdapter creates a new MongoDB database adapter
func NewMongoDBAdapter(config *ports.MongoDBConfig) *MongoDBAdapter {
	return &MongoDBAdapter{
		config: config,
	}
}

// Connect establishes a connection to the MongoDB database
func (a *MongoDBAdapter) Connect(ctx context.Context) error {
	clientOpts := options.Client().ApplyURI(a.config.URI)

	// Configure connection pool
	if a.config.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(uint64(a.config.MaxPoolSize))
	}
	if a.config.MinPoolSize > 0 {
		clientOpts.SetMinPoolSize(uint64(a.config.MinPoolSize))
	}
	if a.config.MaxConnIdleTime > 0 {
		clientOpts.SetMaxConnIdleTime(time.Duration(a.config.MaxConnIdleTime) * time.Second)
	}
	if a.config.ServerTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(time.Duration(a.config.ServerTimeout) * time.Second)
	}
	if a.config.SocketTimeout > 0 {
		clientOpts.SetSocketTimeout(time.Duration(a.config.SocketTimeout) * time.Second)
	}

	// Set read preference
	if a.config.ReadPreference != "" {
		switch a.config.ReadPreference {
		case "primary":
			clientOpts.SetReadPreference(readpref.Primary())
		case "secondary":
			clientOpts.SetReadPreference(readpref.Secondary())
		case "primaryPreferred":
			clientOpts.SetReadPreference(readpref.PrimaryPreferred())
		case "secondaryPreferred":
			clientOpts.SetReadPreference(readpref.SecondaryPreferred())
		}
	}

	// Set write concern
	if a.config.WriteConcern != "" {
		switch a.config.WriteConcern {
		case "majority":
			clientOpts.SetWriteConcern(writeconcern.Majority())
		}
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	a.client = client
	a.db = client.Database(a.config.Database)

	// Initialize repositories
	a.cinemaRepo = NewCinemaRepository(a.db)
	a.auditRepo = NewAuditRepository(a.db)

	// Create indexes
	if err = a.createIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes ensures the indexes the repositories rely on
func (a *MongoDBAdapter) createIndexes(ctx context.Context) error {
	cinemaIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := a.db.Collection(cinemasCollection).Indexes().CreateMany(ctx, cinemaIndexes); err != nil {
		return fmt.Errorf("failed to create cinema indexes: %w", err)
	}

	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "cinema_id", Value: 1}, {Key: "changed_at", Value: -1}},
		},
	}
	if _, err := a.db.Collection(auditCollection).Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("failed to create audit indexes: %w", err)
	}

	return nil
}

// Disconnect closes the database connection
func (a *MongoDBAdapter) Disconnect(ctx context.Context) error {
	if a.client != nil {
		return a.client.Disconnect(ctx)
	}
	return nil
}

// Ping checks if the database connection is alive
func (a *MongoDBAdapter) Ping(ctx context.Context) error {
	if a.client == nil {
		return fmt.Errorf("database not connected")
	}
	return a.client.Ping(ctx, nil)
}

// GetType returns the database type
func (a *MongoDBAdapter) GetType() ports.DatabaseType {
	return ports.DatabaseTypeMongoDB
}

// GetCinemaRepository returns the cinema repository
func (a *MongoDBAdapter) GetCinemaRepository() ports.CinemaRepository {
	return a.cinemaRepo
}

// GetAuditRepository returns the audit repository
func (a *MongoDBAdapter) GetAuditRepository() ports.AuditRepository {
	return a.auditRepo
}

// HealthCheck performs a health check on the database
func (a *MongoDBAdapter) HealthCheck(ctx context.Context) error {
	if err := a.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	// Run a cheap command against the database
	var result bson.M
	err := a.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&result)
	if err != nil {
		return fmt.Errorf("health check command failed: %w", err)
	}

	return nil
}
