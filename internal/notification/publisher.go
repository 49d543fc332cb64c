package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/vinaythakkar13/yatra-backend/internal/registration"
	"github.com/vinaythakkar13/yatra-backend/utils"
)

const publishTimeout = 5 * time.Second

// YatraChannel is the redis channel carrying live events for one yatra.
func YatraChannel(yatraID uint) string {
	return fmt.Sprintf("registrations:yatra:%d", yatraID)
}

// KafkaPublisher writes registration events to the registration topic,
// keyed by registration id so one registration's events stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev registration.Event) error {
	msg, err := eventMessage(ev)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return p.writer.WriteMessages(ctx, msg)
}

func eventMessage(ev registration.Event) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.RegistrationID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "action", Value: []byte(ev.Action)},
		},
		Time: ev.OccurredAt,
	}, nil
}

// RedisBroadcaster pushes events straight onto the per-yatra channel.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, ev registration.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.Broadcast(ctx, ev.YatraID, payload)
}

func (b *RedisBroadcaster) Broadcast(ctx context.Context, yatraID uint, payload []byte) error {
	return b.client.Publish(ctx, YatraChannel(yatraID), string(payload)).Err()
}

// NewPublisher picks the event sink for the registration service: kafka
// when a writer is configured, redis pub/sub when only redis is up, nil
// otherwise.
func NewPublisher() registration.Notifier {
	switch {
	case utils.KafkaWriter != nil:
		return NewKafkaPublisher(utils.KafkaWriter)
	case utils.RedisEnabled():
		return NewRedisBroadcaster(utils.RedisClient)
	}
	return nil
}
