package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/cache"
	"github.com/Domenick1991/airline/internal/events"
	"github.com/Domenick1991/airline/internal/kafka"
	"github.com/Domenick1991/airline/internal/notify"
	"github.com/Domenick1991/airline/internal/service/flights"
)

// Emitters is the event fan-out used by the flight service.
type Emitters struct {
	Bus      *events.Bus
	Producer *kafka.Producer
	emitter  events.Fanout
}

func (e *Emitters) Emitter() events.Emitter {
	return e.emitter
}

func (e *Emitters) Close() error {
	if e.Producer == nil {
		return nil
	}
	return e.Producer.Close()
}

// NewEmitters always emits to the in-process bus. With Kafka enabled events
// also go to the topic and notifications are left to cmd/worker; without it
// the bus feeds the notifier directly.
func NewEmitters(ctx context.Context, cfg config.KafkaConfig, logger *slog.Logger) *Emitters {
	e := &Emitters{Bus: events.NewBus()}
	e.emitter = events.Fanout{e.Bus}

	if !cfg.Enabled() {
		e.Bus.Subscribe(notify.NewSender(logger).Handle)
		return e
	}

	e.Producer = kafka.NewProducer(cfg.Brokers, cfg.EventsTopic,
		kafka.WithRetries(cfg.PublishRetries),
		kafka.WithWriteTimeout(cfg.WriteTimeout()),
		kafka.WithProducerLogger(logger),
	)
	if err := e.Producer.CheckConnection(ctx); err != nil {
		logger.WarnContext(ctx, "kafka not reachable at startup", "brokers", cfg.Brokers, "error", err)
	}
	e.emitter = append(e.emitter, e.Producer)
	return e
}

// CacheOptions returns the flight cache option when Redis is configured and
// answers a ping. Otherwise the service runs uncached.
func CacheOptions(ctx context.Context, redisCfg config.RedisConfig, flightsCfg config.FlightsConfig, logger *slog.Logger) []flights.FlightServiceOption {
	if redisCfg.Addr == "" {
		return nil
	}
	redisCache := cache.NewRedisCache(redisCfg, flightsCfg.CacheTTL())
	if err := redisCache.Ping(ctx); err != nil {
		logger.WarnContext(ctx, "redis not reachable, flight cache disabled", "addr", redisCfg.Addr, "error", err)
		return nil
	}
	return []flights.FlightServiceOption{flights.WithCache(redisCache)}
}
