package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"dream/internal/database"
)

const fallbackJWTSecret = "fallback-secret-key-for-dev-only"

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port string

	// Database
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth. An empty PasscodeHash leaves the API open.
	JWTSecret        string
	JWTExpirationDur time.Duration
	PasscodeHash     string

	// Advisor
	GeminiAPIKey      string
	GeminiTextModel   string
	GeminiVisionModel string
	AITimeout         time.Duration

	// Events. An empty AMQPURL disables publishing.
	AMQPURL      string
	AMQPExchange string

	// Ledger
	CategoryTreeFile string
	Timezone         string
	Location         *time.Location
	SessionTTL       time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "dream.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "dream"),
		DBPassword: getEnv("DB_PASSWORD", "dream"),
		DBName:     getEnv("DB_NAME", "dream"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", fallbackJWTSecret),
		JWTExpirationDur: getDuration("JWT_EXPIRES_IN", 24*time.Hour),
		PasscodeHash:     getEnv("PASSCODE_HASH", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:   getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiVisionModel: getEnv("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
		AITimeout:         getDuration("AI_TIMEOUT", 30*time.Second),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "dream.events"),

		CategoryTreeFile: getEnv("CATEGORY_TREE_FILE", ""),
		Timezone:         getEnv("TIMEZONE", "Asia/Shanghai"),
		SessionTTL:       getDuration("SESSION_TTL", 30*time.Minute),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Validate checks every setting and reports all problems at once. It also
// resolves Timezone into Location.
func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case database.DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	case database.DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver))
	}

	if c.Env == "production" && c.PasscodeHash != "" && c.JWTSecret == fallbackJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production when PASSCODE_HASH is set"))
	}
	if c.JWTExpirationDur <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.AITimeout <= 0 {
		errs = append(errs, errors.New("AI_TIMEOUT must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.AMQPURL != "" && c.AMQPExchange == "" {
		errs = append(errs, errors.New("AMQP_EXCHANGE is required when AMQP_URL is set"))
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	} else {
		c.Location = loc
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// DatabaseConfig returns the connection settings for the database manager.
func (c *Config) DatabaseConfig() *database.Config {
	return &database.Config{
		Driver:     c.DBDriver,
		SQLitePath: c.SQLitePath,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		DBName:     c.DBName,
		SSLMode:    c.DBSSLMode,
	}
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a duration variable, falling back on bad input.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
