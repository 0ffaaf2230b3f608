package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	TMDB     TMDBConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Name              string
	Port              string
	Debug             bool
	LogPath           string
	RateLimitRequests int
	CORSOrigins       []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// RedisConfig configures the response cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type TMDBConfig struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
}

type EngineConfig struct {
	MemoEntries int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-ranker")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_MINUTES", 10)
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_REQUESTS_PER_SECOND", 20)
	viper.SetDefault("TMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("ENGINE_MEMO_ENTRIES", 256)

	// A missing .env is fine for env-only deployments.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:              viper.GetString("APP_NAME"),
			Port:              viper.GetString("PORT"),
			Debug:             viper.GetBool("DEBUG"),
			LogPath:           viper.GetString("LOG_PATH"),
			RateLimitRequests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			CORSOrigins:       viper.GetStringSlice("CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			TTL:      time.Duration(viper.GetInt("CACHE_TTL_MINUTES")) * time.Minute,
		},
		TMDB: TMDBConfig{
			APIKey:            viper.GetString("TMDB_API_KEY"),
			BaseURL:           viper.GetString("TMDB_BASE_URL"),
			RequestsPerSecond: viper.GetFloat64("TMDB_REQUESTS_PER_SECOND"),
			Timeout:           time.Duration(viper.GetInt("TMDB_TIMEOUT_SECONDS")) * time.Second,
		},
		Engine: EngineConfig{
			MemoEntries: viper.GetInt("ENGINE_MEMO_ENTRIES"),
		},
	}

	return config, nil
}
