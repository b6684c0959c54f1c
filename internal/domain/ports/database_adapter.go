package ports

import "context"

// DatabaseType represents the type of storage backend
type DatabaseType string

const (
	DatabaseTypePostgreSQL DatabaseType = "postgres"
	DatabaseTypeMongoDB    DatabaseType = "mongodb"
	DatabaseTypeMemory     DatabaseType = "memory"
)

// DatabaseAdapter defines the unified interface for storage backends.
// It provides a common abstraction over the PostgreSQL, MongoDB and
// in-memory implementations.
type DatabaseAdapter interface {
	// Connect establishes a connection to the database
	Connect(ctx context.Context) error

	// Disconnect closes the database connection
	Disconnect(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// GetType returns the database type
	GetType() DatabaseType

	// Repository factory methods
	GetCinemaRepository() CinemaRepository
	GetAuditRepository() AuditRepository

	// HealthCheck verifies the backend is usable
	HealthCheck(ctx context.Context) error
}

// DatabaseConfig holds storage configuration
type DatabaseConfig struct {
	Type           DatabaseType    `mapstructure:"type" yaml:"type"`
	PostgresConfig *PostgresConfig `mapstructure:"postgres" yaml:"postgres,omitempty"`
	MongoDBConfig  *MongoDBConfig  `mapstructure:"mongodb" yaml:"mongodb,omitempty"`
}

// PostgresConfig holds PostgreSQL-specific configuration
type PostgresConfig struct {
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	User            string `mapstructure:"user" yaml:"user"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        string `mapstructure:"database" yaml:"database"`
	SSLMode         string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // in seconds
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time" yaml:"conn_max_idle_time"` // in seconds
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI             string `mapstructure:"uri" yaml:"uri"`
	Database        string `mapstructure:"database" yaml:"database"`
	MaxPoolSize     int    `mapstructure:"max_pool_size" yaml:"max_pool_size"`
	MinPoolSize     int    `mapstructure:"min_pool_size" yaml:"min_pool_size"`
	MaxConnIdleTime int    `mapstructure:"max_conn_idle_time" yaml:"max_conn_idle_time"` // in seconds
	ServerTimeout   int    `mapstructure:"server_timeout" yaml:"server_timeout"` // in seconds
	SocketTimeout   int    `mapstructure:"socket_timeout" yaml:"socket_timeout"` // in seconds
	ReadPreference  string `mapstructure:"read_preference" yaml:"read_preference"`
	WriteConcern    string `mapstructure:"write_concern" yaml:"write_concern"`
}
