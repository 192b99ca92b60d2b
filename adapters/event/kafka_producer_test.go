package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasterEda92/UserService/internal/config"
	"github.com/MasterEda92/UserService/internal/domain/user"
)

func TestNewKafkaUserEventPublisher_RequiresBrokers(t *testing.T) {
	var cfg config.Config
	_, err := NewKafkaUserEventPublisher(cfg)
	assert.Error(t, err)
}

func TestNewKafkaUserEventPublisher_WithBrokers(t *testing.T) {
	var cfg config.Config
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	p, err := NewKafkaUserEventPublisher(cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.NotNil(t, p.writer)
}

func TestNoopPublisher(t *testing.T) {
	err := NoopPublisher{}.Publish(context.Background(), user.Event{
		Kind:   user.EventRegistered,
		UserID: 1,
	})
	assert.NoError(t, err)
}
