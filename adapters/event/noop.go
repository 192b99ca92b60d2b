package event

import (
	"context"

	"github.com/MasterEda92/UserService/internal/domain/user"
)

// NoopPublisher stands in when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, e user.Event) error {
	return nil
}
