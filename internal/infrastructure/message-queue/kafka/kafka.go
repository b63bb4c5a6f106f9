package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alimikegami/e-bazaar/config"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Producer publishes domain events as JSON. Writes go through the circuit
// breaker so a dead broker fails fast instead of stalling requests.
type Producer struct {
	writer MessageWriter
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}

func CreateKafkaProducer(writer MessageWriter, cb *gobreaker.CircuitBreaker[[]byte]) *Producer {
	return &Producer{writer: writer, cb: cb}
}

func (p *Producer) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = p.cb.Execute(func() ([]byte, error) {
		return value, p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: value,
		})
	})

	return err
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	log.Ctx(ctx).Debug().Str("key", key).Str("event_type", msg.EventType).Msg("event publishing disabled")
	return nil
}
