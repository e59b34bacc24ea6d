package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultServerAddress binds the HTTP server to all interfaces.
	DefaultServerAddress = "0.0.0.0"
	// DefaultServerPort is the port the container declares as exposed.
	DefaultServerPort = "8501"
)

// ServerConfig holds the bind settings of the HTTP server.
type ServerConfig struct {
	Address string
	Port    string
}

// ListenAddr returns the host:port pair passed to the listener.
func (s ServerConfig) ListenAddr() string {
	return net.JoinHostPort(s.Address, s.Port)
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// DynamoDBConfig holds settings for the DynamoDB scenario store.
type DynamoDBConfig struct {
	Region    string
	Table     string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint (e.g. DynamoDB Local). Empty means AWS.
	Endpoint string
}

// Scenario store backends.
const (
	ScenarioStorePostgres = "postgres"
	ScenarioStoreDynamoDB = "dynamodb"
)

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server   ServerConfig
	Location *time.Location
	Database DatabaseConfig
	MinIO    MinIOConfig
	DynamoDB DynamoDBConfig

	// ScenarioStore selects where scenarios live: "postgres" or "dynamodb".
	ScenarioStore string
	// ReportURLExpiry is the lifetime of presigned report download URLs.
	ReportURLExpiry time.Duration
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Address: getEnv("SERVER_ADDRESS", DefaultServerAddress),
			Port:    getEnv("SERVER_PORT", DefaultServerPort),
		},
		Location: getEnvLocation("TZ_LOCATION", time.UTC),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "lca-reports"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		DynamoDB: DynamoDBConfig{
			Region:    getEnv("AWS_REGION", "us-east-1"),
			Table:     getEnv("DYNAMODB_TABLE", "lca_scenarios"),
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		},
		ScenarioStore:   strings.ToLower(getEnv("SCENARIO_STORE", ScenarioStorePostgres)),
		ReportURLExpiry: time.Duration(getEnvInt("REPORT_URL_EXPIRY_SEC", 900)) * time.Second,
	}
}

// Validate reports settings that would only fail later at startup.
func (c *AppConfig) Validate() error {
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Server.Port)
	}
	switch c.ScenarioStore {
	case ScenarioStorePostgres, ScenarioStoreDynamoDB:
	default:
		return fmt.Errorf("unknown scenario store %q", c.ScenarioStore)
	}
	if c.ReportURLExpiry <= 0 || c.ReportURLExpiry > 7*24*time.Hour {
		// S3 presigned URLs are valid for at most seven days.
		return fmt.Errorf("report url expiry %s out of range", c.ReportURLExpiry)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvLocation(key string, def *time.Location) *time.Location {
	if v := os.Getenv(key); v != "" {
		loc, err := time.LoadLocation(v)
		if err == nil {
			return loc
		}
	}
	return def
}
