package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemsvc/pkg/app"
	"github.com/ghuser/itemsvc/pkg/config"
	"github.com/ghuser/itemsvc/pkg/database"
	"github.com/ghuser/itemsvc/pkg/events"
	"github.com/ghuser/itemsvc/pkg/logger"
	"github.com/ghuser/itemsvc/pkg/telemetry"
	itemEvents "github.com/ghuser/itemsvc/services/item/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the audit-log handler to every item lifecycle topic.
// Handlers must be idempotent — the EventBus retries up to 3× on failure.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{
		itemEvents.TopicItemCreated,
		itemEvents.TopicItemUpdated,
		itemEvents.TopicItemDeleted,
	}

	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleItemEvent(a, topic))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleItemEvent returns an audit-log handler for one item lifecycle topic.
// The payload is decoded generically: all three event types share event_id,
// item_id, and occurred_at.
func handleItemEvent(a *app.Application, topic string) func(context.Context, *message.Message) error {
	type auditRecord struct {
		EventID    string  `json:"event_id"`
		ItemID     string  `json:"item_id"`
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		OccurredAt string  `json:"occurred_at"`
	}

	return func(ctx context.Context, msg *message.Message) error {
		var rec auditRecord
		if err := json.Unmarshal(msg.Payload, &rec); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "item audit",
			"topic", topic,
			"event_id", rec.EventID,
			"item_id", rec.ItemID,
			"name", rec.Name,
			"price", rec.Price,
			"occurred_at", rec.OccurredAt,
		)
		return nil
	}
}
