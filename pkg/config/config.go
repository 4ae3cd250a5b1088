package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Weather   WeatherConfig
	Discovery DiscoveryConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type WeatherConfig struct {
	BaseURL     string
	APIKey      string
	CacheTTLMin int
}

// DiscoveryConfig are the tuning knobs of the recommendation pipeline.
type DiscoveryConfig struct {
	MaxResults        int
	WorkerCount       int
	RequestTimeoutSec int
	RateLimitRPS      float64
	RateLimitBurst    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SkyStop Layover Discovery API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "skystop"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Weather: WeatherConfig{
			BaseURL:     getEnv("WEATHER_BASE_URL", ""),
			APIKey:      getEnv("WEATHER_API_KEY", ""),
			CacheTTLMin: getEnvInt("WEATHER_CACHE_TTL_MIN", 15),
		},
		Discovery: DiscoveryConfig{
			MaxResults:        getEnvInt("DISCOVERY_MAX_RESULTS", 10),
			WorkerCount:       getEnvInt("DISCOVERY_WORKERS", 8),
			RequestTimeoutSec: getEnvInt("DISCOVERY_TIMEOUT_SEC", 5),
			RateLimitRPS:      getEnvFloat("DISCOVERY_RATE_LIMIT_RPS", 10),
			RateLimitBurst:    getEnvInt("DISCOVERY_RATE_LIMIT_BURST", 20),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}

	return defaultVal
}
