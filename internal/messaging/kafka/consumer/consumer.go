package consumer

import (
	"context"
	"encoding/json"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/historial"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// lifecyclePayload extracts the fields the change trail cares about; the rest
// of the event stays opaque and lands in datos_nuevos as-is.
type lifecyclePayload struct {
	AdminUserID string `json:"admin_user_id"`
	UserID      string `json:"user_id"`
}

// ConsumeLifecycle folds lifecycle events from one topic into the
// historial_cambios trail. Aggregate identity travels in the message key and
// headers, so the consumer does not need a schema per event type.
func ConsumeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	trail historial.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		var eventType, aggregateType string
		for _, h := range msg.Headers {
			switch h.Key {
			case "event_type":
				eventType = string(h.Value)
			case "aggregate_type":
				aggregateType = string(h.Value)
			}
		}

		var payload lifecyclePayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("decode lifecycle event failed",
				zap.String("event_type", eventType),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		adminUserID := payload.AdminUserID
		if adminUserID == "" {
			adminUserID = payload.UserID
		}

		err = trail.Record(ctx, historial.Entry{
			AggregateType: aggregateType,
			RegistroID:    string(msg.Key),
			Accion:        eventType,
			AdminUserID:   adminUserID,
			Payload:       msg.Value,
		})
		if err != nil {
			// Leave uncommitted; the event is retried on the next fetch
			log.Error("record change failed",
				zap.String("event_type", eventType),
				zap.String("registro_id", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}
	}
}
