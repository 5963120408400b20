package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	RegistryMemory   = "memory"
	RegistryPostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Registry RegistryConfig `yaml:"registry"`
	Flights  FlightsConfig  `yaml:"flights"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"AIRLINE_HTTP_ADDRESS"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"AIRLINE_GRPC_ADDRESS"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"AIRLINE_DB_HOST"`
	Port     int    `yaml:"port" env:"AIRLINE_DB_PORT"`
	User     string `yaml:"user" env:"AIRLINE_DB_USER"`
	Password string `yaml:"password" env:"AIRLINE_DB_PASSWORD"`
	Name     string `yaml:"name" env:"AIRLINE_DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"AIRLINE_DB_SSLMODE"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"AIRLINE_REDIS_ADDR"`
	Password string `yaml:"password" env:"AIRLINE_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"AIRLINE_REDIS_DB"`
}

type KafkaConfig struct {
	Brokers        []string `yaml:"brokers" env:"AIRLINE_KAFKA_BROKERS" envSeparator:","`
	EventsTopic    string   `yaml:"events_topic" env:"AIRLINE_KAFKA_EVENTS_TOPIC"`
	GroupID        string   `yaml:"group_id" env:"AIRLINE_KAFKA_GROUP_ID"`
	PublishRetries int      `yaml:"publish_retries" env:"AIRLINE_KAFKA_PUBLISH_RETRIES"`
	WriteTimeoutMS int      `yaml:"write_timeout_ms" env:"AIRLINE_KAFKA_WRITE_TIMEOUT_MS"`
}

func (k KafkaConfig) WriteTimeout() time.Duration {
	return time.Duration(k.WriteTimeoutMS) * time.Millisecond
}

// Enabled reports whether events should go to Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.EventsTopic != ""
}

type RegistryConfig struct {
	Driver string `yaml:"driver" env:"AIRLINE_REGISTRY_DRIVER"`
}

type FlightsConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" env:"AIRLINE_FLIGHTS_CACHE_TTL_SECONDS"`
}

func (f FlightsConfig) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSeconds) * time.Second
}

type LogConfig struct {
	Level string `yaml:"level" env:"AIRLINE_LOG_LEVEL"`
}

func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaults() Config {
	return Config{
		HTTP:     HTTPConfig{Address: ":8080"},
		GRPC:     GRPCConfig{Address: ":9090"},
		Kafka:    KafkaConfig{EventsTopic: "airline.flight.events", GroupID: "airline-worker", PublishRetries: 2, WriteTimeoutMS: 1000},
		Registry: RegistryConfig{Driver: RegistryMemory},
		Flights:  FlightsConfig{CacheTTLSeconds: 60},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig reads the YAML file at path, then applies AIRLINE_* environment
// overrides on top.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Registry.Driver {
	case RegistryMemory, RegistryPostgres:
	default:
		return fmt.Errorf("unsupported registry driver %q", c.Registry.Driver)
	}
	return nil
}
