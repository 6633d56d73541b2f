package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// placeholderSendGridKey ships in the sample .env and must never be treated as a real key.
const placeholderSendGridKey = "your-sendgrid-api-key"

// defaultAdminPasswordHash is the provisioned bcrypt hash of the administrator password.
const defaultAdminPasswordHash = "$2a$10$L0TdJJgH7U2d2HC7jWrKm.Wu7soBI.gmQH36JMn7APmSipmuuwew6"

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Mail     MailConfig
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

// HTTPConfig holds the edge policies applied to every request.
type HTTPConfig struct {
	FrontendURL         string
	BodyLimitBytes      int
	RateLimitWindow     time.Duration
	RateLimitMaxRequest int
}

// PostgresConfig holds DB connection values. An empty DSN keeps all stores in memory.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters and the provisioned administrator.
type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	BcryptCost        int
	AdminID           string
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string
}

// MailConfig selects and configures the notification provider.
type MailConfig struct {
	SendGridAPIKey     string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	From               string
	OperatorEmail      string
	SendTimeoutSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	tokenTTL, err := getEnvAsDuration("JWT_EXPIRES_IN", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}

	adminEmail := getEnv("ADMIN_EMAIL", "admin@goldenpays.uk")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "GOLDENPAYS API"),
			Env:                   getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", getEnv("PORT", "5000")),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		HTTP: HTTPConfig{
			FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
			BodyLimitBytes:      getEnvAsInt("HTTP_BODY_LIMIT_BYTES", 10*1024*1024),
			RateLimitWindow:     time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_MS", 15*60*1000)) * time.Millisecond,
			RateLimitMaxRequest: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "default-secret-change-in-production"),
			TokenTTL:          tokenTTL,
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 10),
			AdminID:           getEnv("ADMIN_ID", "1"),
			AdminEmail:        adminEmail,
			AdminName:         getEnv("ADMIN_NAME", "Administrator"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", defaultAdminPasswordHash),
		},
		Mail: MailConfig{
			SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
			SMTPHost:           getEnv("SMTP_HOST", "smtp.sendgrid.net"),
			SMTPPort:           getEnvAsInt("SMTP_PORT", 587),
			SMTPUsername:       getEnv("SMTP_USERNAME", "apikey"),
			From:               getEnv("EMAIL_FROM", "noreply@goldenpays.uk"),
			OperatorEmail:      getEnv("OPERATOR_EMAIL", adminEmail),
			SendTimeoutSeconds: getEnvAsInt("MAIL_SEND_TIMEOUT_SECONDS", 10),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsProduction reports whether diagnostic detail must be withheld from responses.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// HasProvider reports whether a real transactional provider key is configured.
func (m MailConfig) HasProvider() bool {
	key := strings.TrimSpace(m.SendGridAPIKey)
	return key != "" && key != placeholderSendGridKey
}

// SendTimeout bounds a single outbound message.
func (m MailConfig) SendTimeout() time.Duration {
	if m.SendTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.SendTimeoutSeconds) * time.Second
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

// getEnvAsDuration accepts Go durations ("24h") and the day suffix used by
// older deployments ("7d").
func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback, nil
	}
	if days, ok := strings.CutSuffix(val, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(val)
}
