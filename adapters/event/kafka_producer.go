package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/MasterEda92/UserService/internal/config"
	"github.com/MasterEda92/UserService/internal/domain/user"
)

const TopicUserEvents = "user.events"

// KafkaUserEventPublisher writes user lifecycle events to a single topic,
// keyed by user id so events for one user stay ordered within a partition.
type KafkaUserEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaUserEventPublisher(cfg config.Config) (*KafkaUserEventPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicUserEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaUserEventPublisher{writer: writer}, nil
}

func (p *KafkaUserEventPublisher) Publish(ctx context.Context, e user.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cannot marshal user event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(e.UserID, 10)),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("cannot write user event: %w", err)
	}
	return nil
}

func (p *KafkaUserEventPublisher) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
}
