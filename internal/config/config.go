package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию для стартовой точки карты (центр Нью-Дели)
const (
	DefaultLatitude  = 28.6139
	DefaultLongitude = 77.209
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Ключи внешних провайдеров. Отсутствие ключа - штатный деградированный режим
	GoogleMapsAPIKey string        `env:"GOOGLE_MAPS_API_KEY"`
	NewsAPIKey       string        `env:"NEWS_API_KEY"`
	WeatherAPIKey    string        `env:"WEATHER_API_KEY"`
	WeatherProvider  string        `env:"WEATHER_PROVIDER"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	// PostgreSQL (опционально, источник ростера)
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config (опционально: сессии, лента обновлений, очередь событий)
	RedisAddr  string        `env:"REDIS_ADDR"`
	RedisPass  string        `env:"REDIS_PASSWORD"`
	RedisDB    int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Начальное положение карты
	DefaultLat float64 `env:"DEFAULT_LAT" envDefault:"28.6139"`
	DefaultLng float64 `env:"DEFAULT_LNG" envDefault:"77.209"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		NewsAPIKey:        os.Getenv("NEWS_API_KEY"),
		WeatherAPIKey:     os.Getenv("WEATHER_API_KEY"),
		WeatherProvider:   strings.ToLower(os.Getenv("WEATHER_PROVIDER")),
		UpstreamTimeout:   getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DefaultLat:        getEnvAsFloat("DEFAULT_LAT", DefaultLatitude),
		DefaultLng:        getEnvAsFloat("DEFAULT_LNG", DefaultLongitude),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DefaultLat < -90 || cfg.DefaultLat > 90 || cfg.DefaultLng < -180 || cfg.DefaultLng > 180 {
		return nil, fmt.Errorf("DEFAULT_LAT/DEFAULT_LNG out of range: %v,%v", cfg.DefaultLat, cfg.DefaultLng)
	}

	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
