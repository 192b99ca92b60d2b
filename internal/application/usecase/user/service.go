package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/auth"
	"github.com/MasterEda92/UserService/pkg/logger"
)

// Service orchestrates the user store, password hashing and token issuing
// into the domain operations the HTTP layer exposes. Structural validation of
// inbound payloads is not its job; that happens before any method here is
// invoked.
type Service struct {
	store      user.Store
	tokens     *auth.JWTService
	events     user.EventPublisher
	logger     logger.Logger
	bcryptCost int
}

func NewService(store user.Store, tokens *auth.JWTService, events user.EventPublisher, log logger.Logger, bcryptCost int) *Service {
	return &Service{
		store:      store,
		tokens:     tokens,
		events:     events,
		logger:     log,
		bcryptCost: bcryptCost,
	}
}

// publish is best effort; a lost event never fails the request that caused it.
func (s *Service) publish(ctx context.Context, kind string, userID int64) {
	e := user.Event{Kind: kind, UserID: userID, At: time.Now().UTC()}
	if err := s.events.Publish(ctx, e); err != nil {
		s.logger.Warn("Failed to publish user event",
			zap.String("event", kind), zap.Int64("user_id", userID), zap.Error(err))
	}
}
