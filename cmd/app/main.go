package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/bootstrap"
	"github.com/Domenick1991/airline/internal/logging"
	"github.com/Domenick1991/airline/internal/registry"
	"github.com/Domenick1991/airline/internal/repository"
	"github.com/Domenick1991/airline/internal/service/aircraft"
	"github.com/Domenick1991/airline/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		flightRepo   registry.FlightRegistry
		aircraftRepo registry.AircraftRegistry
	)
	switch cfg.Registry.Driver {
	case config.RegistryPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		if err := repository.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		flightRepo = repository.NewFlightRepository(pool)
		aircraftRepo = repository.NewAircraftRepository(pool)
	default:
		flightRepo = registry.NewMemoryFlightRegistry()
		aircraftRepo = registry.NewMemoryAircraftRegistry()
	}

	emitters := bootstrap.NewEmitters(ctx, cfg.Kafka, logger)
	defer emitters.Close()

	opts := append([]flights.FlightServiceOption{flights.WithLogger(logger)},
		bootstrap.CacheOptions(ctx, cfg.Redis, cfg.Flights, logger)...)

	flightService := flights.NewFlightService(flightRepo, aircraftRepo, emitters.Emitter(), opts...)
	aircraftService := aircraft.NewAircraftService(aircraftRepo, logger)

	if err := bootstrap.Run(ctx, cfg, flightService, aircraftService, logger); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
