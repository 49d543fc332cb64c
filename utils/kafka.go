package utils

import (
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/logger"
)

var KafkaWriter *kafka.Writer

// InitializeKafka prepares the registration-event writer. With no brokers
// configured the writer stays nil and events are dropped.
func InitializeKafka(cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warning("KAFKA_BROKERS not set, registration events will not be published")
		return
	}

	KafkaWriter = &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaRegistrationTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	logger.Success("Kafka writer ready for topic " + cfg.KafkaRegistrationTopic)
}

// NewKafkaReader builds a consumer-group reader on the registration topic.
func NewKafkaReader(cfg *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaRegistrationTopic,
		GroupID:  cfg.KafkaConsumerGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}

// CloseKafka flushes pending writes.
func CloseKafka() {
	if KafkaWriter == nil {
		return
	}
	if err := KafkaWriter.Close(); err != nil {
		logger.Error("Failed to close Kafka writer", err)
	}
}
