package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8081"
database:
  host: db
  port: 5432
  user: airline
  password: secret
  name: airline
  ssl_mode: disable
kafka:
  brokers: ["k1:9092", "k2:9092"]
registry:
  driver: postgres
flights:
  cache_ttl_seconds: 30
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, "host=db port=5432 user=airline password=secret dbname=airline sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "airline.flight.events", cfg.Kafka.EventsTopic)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 2, cfg.Kafka.PublishRetries)
	assert.Equal(t, time.Second, cfg.Kafka.WriteTimeout())
	assert.Equal(t, RegistryPostgres, cfg.Registry.Driver)
	assert.Equal(t, 30*time.Second, cfg.Flights.CacheTTL())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "http:\n  address: \":8081\"\n")
	t.Setenv("AIRLINE_HTTP_ADDRESS", ":9999")
	t.Setenv("AIRLINE_KAFKA_BROKERS", "a:1,b:2")
	t.Setenv("AIRLINE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTP.Address)
	assert.Equal(t, []string{"a:1", "b:2"}, cfg.Kafka.Brokers)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, RegistryMemory, cfg.Registry.Driver)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = LoadConfig(writeConfig(t, "http: [oops"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadConfig(writeConfig(t, "registry:\n  driver: couchdb\n"))
	assert.ErrorContains(t, err, "unsupported registry driver")
}

func TestKafkaConfig_Disabled(t *testing.T) {
	assert.False(t, KafkaConfig{EventsTopic: "t"}.Enabled())
}
