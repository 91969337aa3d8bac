package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Pagination PaginationConfig `json:"pagination"`
	Store      StoreConfig      `json:"store"`
	Logging    LoggingConfig    `json:"logging"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Telemetry  TelemetryConfig  `json:"telemetry"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
	// ServiceSecret guards /v1/internal; when empty every internal request is refused.
	ServiceSecret string `json:"-" env:"SERVICE_SECRET"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"genonaut"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	Name              string        `json:"name" env:"DB_NAME" default:"genonaut"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConns          int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns          int           `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime   time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"30m"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"10s"`
	StatementTimeout  time.Duration `json:"statement_timeout" env:"DB_STATEMENT_TIMEOUT" default:"15s"`
}

// ConnectionString renders a libpq keyword/value DSN.
func (c DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, int(c.ConnectionTimeout.Seconds()),
	)
}

type PaginationConfig struct {
	DefaultPageSize         int  `json:"default_page_size" env:"PAGINATION_DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize             int  `json:"max_page_size" env:"PAGINATION_MAX_PAGE_SIZE" default:"100"`
	SkipTotalCount          bool `json:"skip_total_count" env:"PAGINATION_SKIP_TOTAL_COUNT" default:"false"`
	SkipCountWithTagFilters bool `json:"skip_count_with_tag_filters" env:"PAGINATION_SKIP_COUNT_WITH_TAGS" default:"false"`
	AllModeSemiJoinLimit    int  `json:"all_mode_semi_join_limit" env:"PAGINATION_ALL_MODE_SEMI_JOIN_LIMIT" default:"8"`
}

const (
	StoreLayoutPartitioned = "partitioned"
	StoreLayoutUnion       = "union"
)

// StoreConfig names the relations the unified view is read from.
// Values are interpolated into SQL and are validated as identifiers.
type StoreConfig struct {
	Layout          string `json:"layout" env:"STORE_LAYOUT" default:"partitioned"`
	ParentRelation  string `json:"parent_relation" env:"STORE_PARENT_RELATION" default:"content_items_all"`
	RegularRelation string `json:"regular_relation" env:"STORE_REGULAR_RELATION" default:"content_items"`
	AutoRelation    string `json:"auto_relation" env:"STORE_AUTO_RELATION" default:"content_items_auto"`
	TagJunction     string `json:"tag_junction" env:"STORE_TAG_JUNCTION" default:"content_tags"`
	TagsRelation    string `json:"tags_relation" env:"STORE_TAGS_RELATION" default:"tags"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" env:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `json:"requests_per_second" env:"RATE_LIMIT_RPS" default:"20"`
	Burst             int     `json:"burst" env:"RATE_LIMIT_BURST" default:"40"`
	MaxClients        int     `json:"max_clients" env:"RATE_LIMIT_MAX_CLIENTS" default:"10000"`
}

type TelemetryConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"genonaut"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	OTLPEndpoint   string  `json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig loads an optional .env file, then environment variables with
// fallback to default values, and validates the result.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnvironment()
}

// FromEnvironment skips the .env lookup.
func FromEnvironment() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
