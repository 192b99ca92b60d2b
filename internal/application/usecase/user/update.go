package user

import (
	"context"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
	"github.com/MasterEda92/UserService/pkg/auth"
)

type UpdateInput struct {
	UserName  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateUserWithID replaces all mutable fields of the user; partial updates
// are not supported. A row that vanished between the caller's existence check
// and the update surfaces as apperror.ErrUpdateFailed, same as any other
// rejected update.
func (s *Service) UpdateUserWithID(ctx context.Context, id int64, in UpdateInput) (*user.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperror.NewInternal("cannot hash password", err)
	}

	updated, err := s.store.Update(ctx, &user.User{
		ID:           id,
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return nil, apperror.NewUpdateFailed(err)
	}

	s.publish(ctx, user.EventUpdated, updated.ID)
	return updated, nil
}
