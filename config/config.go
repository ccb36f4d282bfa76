package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	CacheDriverMemory   = "memory"
	CacheDriverDatabase = "database"

	maxNumberedAPIKeys = 4
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherBaseURL string
	OpenWeatherAPIKeys []string

	CacheTTL             time.Duration
	CacheDriver          string
	CacheCleanupInterval time.Duration

	DefaultCity            string
	TrackedCities          []string
	TrackedRefreshInterval time.Duration
	TrackedFetchTimeout    time.Duration

	CORSAllowedOrigins []string
	ZipkinEndpoint     string

	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "clim8bit-weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("CACHE_TTL", 600)
	v.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	v.SetDefault("CACHE_CLEANUP_INTERVAL", time.Minute)
	v.SetDefault("DEFAULT_CITY", "New York")
	v.SetDefault("TRACKED_REFRESH_INTERVAL", 5*time.Minute)
	v.SetDefault("TRACKED_FETCH_TIMEOUT", 5*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		DBName:                 v.GetString("DATABASE_NAME"),
		DBPassword:             v.GetString("DATABASE_PASSWORD"),
		DBUser:                 v.GetString("DATABASE_USER"),
		DBPort:                 v.GetString("DATABASE_PORT"),
		DBHost:                 v.GetString("DATABASE_HOST"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherBaseURL:     v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherAPIKeys:     apiKeys(v),
		CacheTTL:               time.Duration(v.GetInt("CACHE_TTL")) * time.Second,
		CacheDriver:            strings.ToLower(v.GetString("CACHE_DRIVER")),
		CacheCleanupInterval:   v.GetDuration("CACHE_CLEANUP_INTERVAL"),
		DefaultCity:            v.GetString("DEFAULT_CITY"),
		TrackedCities:          splitList(v.GetString("TRACKED_CITIES")),
		TrackedRefreshInterval: v.GetDuration("TRACKED_REFRESH_INTERVAL"),
		TrackedFetchTimeout:    v.GetDuration("TRACKED_FETCH_TIMEOUT"),
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ZipkinEndpoint:         v.GetString("ZIPKIN_ENDPOINT"),
		BreakerMaxFailures:     v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout:     v.GetDuration("BREAKER_OPEN_TIMEOUT"),
	}

	switch config.CacheDriver {
	case CacheDriverMemory, CacheDriverDatabase:
	default:
		return nil, fmt.Errorf("unsupported CACHE_DRIVER %q", config.CacheDriver)
	}

	if config.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %d", v.GetInt("CACHE_TTL"))
	}

	if len(config.OpenWeatherAPIKeys) == 0 {
		log.Warn().Msg("no OpenWeather API keys configured, weather lookups will fail")
	}

	return config, nil
}

// apiKeys reads OPENWEATHER_API_KEYS followed by OPENWEATHER_API_KEY_1..4, in order, skipping blanks.
func apiKeys(v *viper.Viper) []string {
	keys := splitList(v.GetString("OPENWEATHER_API_KEYS"))
	for i := 1; i <= maxNumberedAPIKeys; i++ {
		if key := strings.TrimSpace(v.GetString(fmt.Sprintf("OPENWEATHER_API_KEY_%d", i))); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
