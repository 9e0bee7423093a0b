package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	StaticDir string

	Database  DatabaseConfig
	Admin     AdminConfig
	CORS      CORSConfig
	Log       LogConfig
	Analytics AnalyticsConfig
}

type DatabaseConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

// AdminConfig holds the single administrator identity and session lifetime.
type AdminConfig struct {
	User       string
	Pass       string
	SessionTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AnalyticsConfig carries the optional Facebook pixel identifier. The core
// only reports whether it is set at startup; the landing page reads it client-side.
type AnalyticsConfig struct {
	FacebookPixelID string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.StaticDir = v.GetString("STATIC_DIR")

	cfg.Database = DatabaseConfig{
		Path:         v.GetString("DB_PATH"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Admin = AdminConfig{
		User:       v.GetString("ADMIN_USER"),
		Pass:       v.GetString("ADMIN_PASS"),
		SessionTTL: parseDuration(v.GetString("SESSION_TTL"), 6*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Analytics = AnalyticsConfig{
		FacebookPixelID: v.GetString("FB_PIXEL_ID"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("STATIC_DIR", "./public")

	v.SetDefault("DB_PATH", "data.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("DB_MAX_IDLE_CONNS", 1)

	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("ADMIN_PASS", "ChangeMe123!")
	v.SetDefault("SESSION_TTL", "6h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("FB_PIXEL_ID", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
