package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-engnet/internal/events"
	"go-engnet/internal/ledger"
	"go-engnet/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer starts the ledger projection process: read decision events from
// Kafka and materialize accounting entries, blocking until a shutdown signal.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	ledgerRepo := ledger.NewRepository(gormDB)
	ledgerService := ledger.NewService(ledgerRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.ReimbursementDecidedTopic,
		GroupID:        "go-engnet-ledger",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeReimbursementDecided(ctx, reader, ledgerService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
