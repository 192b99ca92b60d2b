package user

import (
	"context"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
	"github.com/MasterEda92/UserService/pkg/auth"
)

type RegisterInput struct {
	UserName  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterUser hashes the plaintext password before anything is persisted.
// A rejected insert, uniqueness violations included, surfaces as
// apperror.ErrRegistrationFailed.
func (s *Service) RegisterUser(ctx context.Context, in RegisterInput) (*user.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperror.NewInternal("cannot hash password", err)
	}

	created, err := s.store.Add(ctx, &user.User{
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return nil, apperror.NewRegistrationFailed(err)
	}

	s.publish(ctx, user.EventRegistered, created.ID)
	return created, nil
}
