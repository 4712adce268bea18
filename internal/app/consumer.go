package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/events"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/historial"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/messaging/kafka/consumer"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer folds every lifecycle topic into the historial_cambios change
// trail, one reader per topic under a single consumer group.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	historialRepo := historial.NewRepository(gormDB)
	trail := historial.NewService(historialRepo)

	topics := []string{
		events.UsuarioLifecycleTopic,
		events.EmpresaLifecycleTopic,
		events.AdminLifecycleTopic,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readers := make([]*kafkago.Reader, 0, len(topics))
	for _, topic := range topics {
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{kafkaBroker},
			Topic:          topic,
			GroupID:        "convertia-historial",
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
		readers = append(readers, reader)

		go consumer.ConsumeLifecycle(ctx, reader, trail, logger)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	for _, reader := range readers {
		_ = reader.Close()
	}

	return nil
}
