package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string
	FrontendURL    string

	DatabaseURL          string
	SQLitePath           string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	RedisAddr     string
	RedisPassword string
	SnapshotTTL   time.Duration

	JWTSecret    string
	SeatTokenTTL time.Duration

	BotMoveDelay     time.Duration
	FinishedGameTTL  time.Duration
	IdleGameTTL      time.Duration
	CleanupInterval  time.Duration
	HistoryRetention time.Duration
	HistoryMaxLimit  int
}

var AppConfig *Config

func LoadConfig() *Config {
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")

	// Frontend URL + localhost + CSV values
	allowedOrigins := []string{frontendURL, "http://localhost:5173"}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	AppConfig = &Config{
		Port:           GetEnv("PORT", "8080"),
		Environment:    GetEnv("ENVIRONMENT", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,

		DatabaseURL:          GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", "")),
		SQLitePath:           GetEnv("SQLITE_PATH", "./data/arcade.db"),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),

		RedisAddr:     GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		SnapshotTTL:   GetEnvAsDuration("SNAPSHOT_TTL", 2*time.Hour),

		JWTSecret:    GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		SeatTokenTTL: GetEnvAsDuration("SEAT_TOKEN_TTL", 24*time.Hour),

		BotMoveDelay:     GetEnvAsDuration("BOT_MOVE_DELAY", 500*time.Millisecond),
		FinishedGameTTL:  GetEnvAsDuration("FINISHED_GAME_TTL", time.Hour),
		IdleGameTTL:      GetEnvAsDuration("IDLE_GAME_TTL", 24*time.Hour),
		CleanupInterval:  GetEnvAsDuration("CLEANUP_INTERVAL", time.Hour),
		HistoryRetention: time.Duration(GetEnvAsInt("HISTORY_RETENTION_DAYS", 0)) * 24 * time.Hour,
		HistoryMaxLimit:  GetEnvAsInt("HISTORY_MAX_LIMIT", 100),
	}

	return AppConfig
}

// IsProduction reports whether cookies must be Secure and logs structured.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SetupLogging configures the global zerolog logger: level from LOG_LEVEL and
// a console writer outside production.
func SetupLogging(cfg *Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go durations ("500ms", "2h") or a bare number of seconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("key", key).Str("value", valueStr).Dur("default", defaultValue).Msg("invalid duration value, using default")
	return defaultValue
}
