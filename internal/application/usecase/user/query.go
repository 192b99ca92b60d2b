package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
)

// GetAllUsers returns every persisted user; an empty slice is a valid result,
// not an error.
func (s *Service) GetAllUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to load users", err)
	}
	return users, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperror.NewNotFound("user", strconv.FormatInt(id, 10))
		}
		return nil, apperror.NewInternal("failed to load user", err)
	}
	return u, nil
}

// GetUserByEmail reports absence with the user.ErrNotFound sentinel so
// callers can branch on it with errors.Is instead of treating it as a hard
// failure.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.queryOne(ctx, user.Filter{Email: email})
}

// GetUserByUserName is symmetric to GetUserByEmail.
func (s *Service) GetUserByUserName(ctx context.Context, userName string) (*user.User, error) {
	return s.queryOne(ctx, user.Filter{UserName: userName})
}

func (s *Service) queryOne(ctx context.Context, f user.Filter) (*user.User, error) {
	if f.IsEmpty() {
		return nil, user.ErrNotFound
	}
	users, err := s.store.Query(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	if len(users) == 0 {
		return nil, user.ErrNotFound
	}
	return &users[0], nil
}

// CheckIfUserWithIDExists never fails; a store error is logged and reported
// as absent. Callers using it to short-circuit a 404 accept the race between
// check and act.
func (s *Service) CheckIfUserWithIDExists(ctx context.Context, id int64) bool {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to check user existence", zap.Int64("user_id", id), zap.Error(err))
		return false
	}
	return exists
}
