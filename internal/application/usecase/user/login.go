package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
	"github.com/MasterEda92/UserService/pkg/auth"
)

type LoginInput struct {
	UserName string
	Email    string
	Password string
}

// LoginUser resolves the user by username or email (username wins when both
// are set), verifies the password against the stored hash and returns a
// signed token. An unresolvable user maps to 404 at the HTTP layer, a failed
// verification to 403.
func (s *Service) LoginUser(ctx context.Context, in LoginInput) (string, error) {
	var u *user.User
	var err error
	if in.UserName != "" {
		u, err = s.GetUserByUserName(ctx, in.UserName)
	} else {
		u, err = s.GetUserByEmail(ctx, in.Email)
	}
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", apperror.NewNotFound("user", loginIdentifier(in))
		}
		return "", apperror.NewInternal("failed to resolve user", err)
	}

	if !auth.CheckPasswordHash(in.Password, u.PasswordHash) {
		return "", apperror.NewLoginFailed()
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		s.logger.Error("Failed to generate token", err, zap.Int64("user_id", u.ID))
		return "", apperror.NewInternal("failed to generate token", err)
	}
	return token, nil
}

func loginIdentifier(in LoginInput) string {
	if in.UserName != "" {
		return in.UserName
	}
	return in.Email
}
