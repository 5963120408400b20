package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/events"
	"github.com/Domenick1991/airline/internal/kafka"
	"github.com/Domenick1991/airline/internal/logging"
	"github.com/Domenick1991/airline/internal/notify"
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
	if !cfg.Kafka.Enabled() {
		log.Fatalf("worker requires kafka brokers and an events topic")
	}
	logger := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic)
	defer consumer.Close()

	sender := notify.NewSender(logger)

	logger.InfoContext(ctx, "worker started", "topic", cfg.Kafka.EventsTopic, "group_id", cfg.Kafka.GroupID)
	err = consumer.ConsumeEvents(ctx, func(ctx context.Context, env events.Envelope, ev domain.Event) error {
		logger.DebugContext(ctx, "event received", "event_id", env.ID, "event_type", env.Type)
		return sender.Send(ctx, ev)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
