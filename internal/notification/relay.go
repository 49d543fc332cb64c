package notification

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"

	"github.com/vinaythakkar13/yatra-backend/internal/registration"
	"github.com/vinaythakkar13/yatra-backend/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Broadcaster fans a raw event payload out to live subscribers of a yatra.
type Broadcaster interface {
	Broadcast(ctx context.Context, yatraID uint, payload []byte) error
}

// StartKafkaConsumer relays registration events from the topic to redis
// until ctx is cancelled.
func StartKafkaConsumer(ctx context.Context, reader *kafka.Reader, sink Broadcaster) {
	go func() {
		defer reader.Close()
		logger.Info("Registration event relay started")
		relay(ctx, reader, sink)
		logger.Info("Registration event relay stopped")
	}()
}

func relay(ctx context.Context, reader messageReader, sink Broadcaster) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("Failed to fetch registration event", err)
			continue
		}

		var ev registration.Event
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			logger.Warningf("Skipping malformed registration event at offset %d: %v", msg.Offset, err)
		} else if err := sink.Broadcast(ctx, ev.YatraID, msg.Value); err != nil {
			logger.Error("Failed to broadcast registration event", err)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			logger.Error("Failed to commit registration event offset", err)
		}
	}
}
