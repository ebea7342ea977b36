package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix - префикс переменных окружения, POI_REDIS_HOST -> redis.host
const EnvPrefix = "POI_"

// Config - конфигурация приложения
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Logger      LoggerConfig      `koanf:"logger"`
	Search      SearchConfig      `koanf:"search"`
	Places      PlacesConfig      `koanf:"places"`
	Ratings     RatingsConfig     `koanf:"ratings"`
	Geolocation GeolocationConfig `koanf:"geolocation"`
	Cache       CacheConfig       `koanf:"cache"`
	Redis       RedisConfig       `koanf:"redis"`
	Kafka       KafkaConfig       `koanf:"kafka"`
	Database    DatabaseConfig    `koanf:"database"`
	Elastic     ElasticConfig     `koanf:"elastic"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         string        `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SearchConfig - параметры ядра поиска
type SearchConfig struct {
	ProviderMaxMeters  float64 `koanf:"provider_max_meters"`
	GridStepDegrees    float64 `koanf:"grid_step_degrees"`
	ProviderLimit      int     `koanf:"provider_limit"`
	DefaultRadiusMiles float64 `koanf:"default_radius_miles"`
	DefaultLimit       int     `koanf:"default_limit"`
	MaxRadiusMiles     float64 `koanf:"max_radius_miles"`
	MaxConcurrency     int     `koanf:"max_concurrency"`
}

// PlacesConfig - поставщик мест: geoapify, postgres или elastic
type PlacesConfig struct {
	Backend        string        `koanf:"backend"`
	GeoapifyAPIKey string        `koanf:"geoapify_api_key"`
	Timeout        time.Duration `koanf:"timeout"`
}

// RatingsConfig - поставщик рейтингов: yelp или none
type RatingsConfig struct {
	Backend    string        `koanf:"backend"`
	YelpAPIKey string        `koanf:"yelp_api_key"`
	Timeout    time.Duration `koanf:"timeout"`
}

type GeolocationConfig struct {
	YandexAPIKey    string        `koanf:"yandex_api_key"`
	OpenrouteAPIKey string        `koanf:"openroute_api_key"`
	Timeout         time.Duration `koanf:"timeout"`
}

// CacheConfig - кеш ответов внешних сервисов: memory, redis или none
type CacheConfig struct {
	Backend         string        `koanf:"backend"`
	PlacesTTL       time.Duration `koanf:"places_ttl"`
	RatingsTTL      time.Duration `koanf:"ratings_ttl"`
	RouteTTL        time.Duration `koanf:"route_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type KafkaConfig struct {
	Enabled  bool     `koanf:"enabled"`
	Brokers  []string `koanf:"brokers"`
	Topic    string   `koanf:"topic"`
	DLQTopic string   `koanf:"dlq_topic"`
	ClientID string   `koanf:"client_id"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

type ElasticConfig struct {
	URL   string `koanf:"url"`
	Index string `koanf:"index"`
	Sniff bool   `koanf:"sniff"`
}

// Default возвращает конфигурацию по умолчанию
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Logger: LoggerConfig{Level: "info", Format: "json"},
		Search: SearchConfig{
			ProviderMaxMeters:  5000,
			GridStepDegrees:    0.05,
			ProviderLimit:      50,
			DefaultRadiusMiles: 2,
			DefaultLimit:       10,
			MaxRadiusMiles:     25,
			MaxConcurrency:     16,
		},
		Places:      PlacesConfig{Backend: "geoapify", Timeout: 10 * time.Second},
		Ratings:     RatingsConfig{Backend: "yelp", Timeout: 10 * time.Second},
		Geolocation: GeolocationConfig{Timeout: 10 * time.Second},
		Cache: CacheConfig{
			Backend:         "memory",
			PlacesTTL:       time.Hour,
			RatingsTTL:      24 * time.Hour,
			RouteTTL:        15 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Redis: RedisConfig{Host: "localhost", Port: "6379"},
		Kafka: KafkaConfig{
			Brokers:  []string{"localhost:9092"},
			Topic:    "search_events",
			DLQTopic: "dead_letter_queue",
			ClientID: "poi-finder",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "places",
			SSLMode: "disable",
		},
		Elastic: ElasticConfig{URL: "http://localhost:9200", Index: "places"},
	}
}

/*
Load собирает конфигурацию по слоям, каждый следующий перекрывает предыдущий:
значения по умолчанию, YAML-файл (если указан), .env и переменные окружения, флаги командной строки.
*/
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envKey переводит POI_SEARCH_PROVIDER_LIMIT в search.provider_limit
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Addr возвращает адрес HTTP-сервера
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// DSN возвращает строку подключения к Postgres
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
