package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	AWS       AWSConfig
	Monitor   MonitorConfig
	Discovery DiscoveryConfig
	Email     EmailConfig
	Webhooks  WebhookConfig
	Logging   LoggingConfig
	SecretKey string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	Debug           bool
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database configuration
type DatabaseConfig struct {
	// URL is the connection string. A postgres:// URL selects the
	// postgres driver; anything else is treated as a sqlite file path.
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AWSConfig contains AWS credentials for CloudWatch and discovery
type AWSConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// MonitorConfig contains monitoring backend configuration
type MonitorConfig struct {
	PrometheusURL string
}

// DiscoveryConfig gates per-provider resource discovery
type DiscoveryConfig struct {
	EnableAWS        bool
	EnablePrometheus bool
}

// EmailConfig contains SMTP delivery configuration
type EmailConfig struct {
	From       string
	Recipients []string
	SMTPServer string
	SMTPPort   int
	UseTLS     bool
	Username   string
	Password   string
}

// WebhookConfig contains messaging webhook URLs
type WebhookConfig struct {
	SlackURL string
	TeamsURL string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("API_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("API_PORT", 8000),
			Debug:           getEnvAsBool("DEBUG", false),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		AWS: AWSConfig{
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Region:          getEnv("AWS_REGION", "us-east-1"),
		},
		Monitor: MonitorConfig{
			PrometheusURL: getEnv("PROMETHEUS_URL", ""),
		},
		Discovery: DiscoveryConfig{
			EnableAWS:        getEnvAsBool("ENABLE_AWS_DISCOVERY", true),
			EnablePrometheus: getEnvAsBool("ENABLE_PROMETHEUS_DISCOVERY", true),
		},
		Email: EmailConfig{
			From:       getEnv("ALERT_EMAIL_FROM", "alerts@example.com"),
			Recipients: getEnvAsSlice("ALERT_EMAIL_RECIPIENTS", nil),
			SMTPServer: getEnv("SMTP_SERVER", "smtp.example.com"),
			SMTPPort:   getEnvAsInt("SMTP_PORT", 587),
			UseTLS:     getEnvAsBool("SMTP_USE_TLS", true),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
		},
		Webhooks: WebhookConfig{
			SlackURL: getEnv("SLACK_WEBHOOK_URL", ""),
			TeamsURL: getEnv("TEAMS_WEBHOOK_URL", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		SecretKey: getEnv("SECRET_KEY", "supersecretkey"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration. A missing database connection
// string is fatal at startup rather than deferred to first use.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
