package user

import (
	"context"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
)

// DeleteUserWithID removes the user and returns the removed record. A row
// absent at deletion time, prior existence check notwithstanding, surfaces as
// apperror.ErrDeleteFailed.
func (s *Service) DeleteUserWithID(ctx context.Context, id int64) (*user.User, error) {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, apperror.NewDeleteFailed(err)
	}

	s.publish(ctx, user.EventDeleted, deleted.ID)
	return deleted, nil
}
