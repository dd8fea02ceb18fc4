package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	Roles      RolesConfig
	Navigation NavigationConfig
	I18n       I18nConfig
	Audit      AuditConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	MigrationsDir  string
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig describes how tokens from the hosted identity provider are verified.
type AuthConfig struct {
	JWTSecret             string
	Issuer                string
	AccessTokenTTLMinutes int
	VerifyEmailPath       string
}

// RolesConfig tunes the role lookup cache.
type RolesConfig struct {
	CacheTTLSeconds int
}

// NavigationConfig bounds the per-session history registry.
type NavigationConfig struct {
	MaxSessions       int
	SessionTTLMinutes int
	MaxEntries        int
}

// I18nConfig selects the fallback language.
type I18nConfig struct {
	DefaultLanguage string
}

// AuditConfig configures delivery of audit events to an external webhook.
// Delivery is disabled when WebhookURL is empty.
type AuditConfig struct {
	WebhookURL            string
	WebhookTimeoutSeconds int
	QueueSize             int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "portal-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			MigrationsDir:  getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			Issuer:                os.Getenv("AUTH_JWT_ISSUER"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			VerifyEmailPath:       getEnv("AUTH_VERIFY_EMAIL_PATH", "/auth/verify-email"),
		},
		Roles: RolesConfig{
			CacheTTLSeconds: getEnvAsInt("ROLES_CACHE_TTL_SECONDS", 300),
		},
		Navigation: NavigationConfig{
			MaxSessions:       getEnvAsInt("NAV_MAX_SESSIONS", 10000),
			SessionTTLMinutes: getEnvAsInt("NAV_SESSION_TTL_MINUTES", 60),
			MaxEntries:        getEnvAsInt("NAV_MAX_ENTRIES", 10),
		},
		I18n: I18nConfig{
			DefaultLanguage: getEnv("I18N_DEFAULT_LANGUAGE", "en"),
		},
		Audit: AuditConfig{
			WebhookURL:            getEnv("AUDIT_WEBHOOK_URL", ""),
			WebhookTimeoutSeconds: getEnvAsInt("AUDIT_WEBHOOK_TIMEOUT_SECONDS", 5),
			QueueSize:             getEnvAsInt("AUDIT_QUEUE_SIZE", 256),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long a role set stays cached.
func (r RolesConfig) CacheTTL() time.Duration {
	if r.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// SessionTTL returns how long an idle session keeps its history.
func (n NavigationConfig) SessionTTL() time.Duration {
	if n.SessionTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(n.SessionTTLMinutes) * time.Minute
}

// WebhookTimeout bounds a single webhook request.
func (a AuditConfig) WebhookTimeout() time.Duration {
	if a.WebhookTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(a.WebhookTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
