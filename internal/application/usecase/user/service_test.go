package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
	"github.com/MasterEda92/UserService/pkg/auth"
	"github.com/MasterEda92/UserService/pkg/logger"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetAll(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *mockStore) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockStore) Query(ctx context.Context, f user.Filter) ([]user.User, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *mockStore) Add(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockStore) DeleteByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, e user.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func newTestService(store *mockStore, publisher *mockPublisher) *Service {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(store, jwtSvc, publisher, logger.NewZapLogger("development"), bcrypt.MinCost)
}

func storedUser(t *testing.T, id int64, userName, email, password string) user.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           id,
		UserName:     userName,
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Stefan",
		LastName:     "Eder",
	}
}

func TestService_GetAllUsers_EmptyIsNotAnError(t *testing.T) {
	store := &mockStore{}
	store.On("GetAll", mock.Anything).Return([]user.User{}, nil)

	svc := newTestService(store, &mockPublisher{})

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestService_GetUserByID_NotFound(t *testing.T) {
	store := &mockStore{}
	store.On("GetByID", mock.Anything, int64(99)).Return(nil, user.ErrNotFound)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.GetUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_GetUserByEmail_AbsentIsSentinel(t *testing.T) {
	store := &mockStore{}
	store.On("Query", mock.Anything, user.Filter{Email: "nobody@example.com"}).
		Return([]user.User{}, nil)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_GetUserByUserName_Found(t *testing.T) {
	store := &mockStore{}
	existing := storedUser(t, 7, "stefan", "stefan@example.com", "pw")
	store.On("Query", mock.Anything, user.Filter{UserName: "stefan"}).
		Return([]user.User{existing}, nil)

	svc := newTestService(store, &mockPublisher{})

	u, err := svc.GetUserByUserName(context.Background(), "stefan")
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
}

func TestService_RegisterUser_HashesBeforePersisting(t *testing.T) {
	store := &mockStore{}
	publisher := &mockPublisher{}

	store.On("Add", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.UserName == "stefan" &&
			u.PasswordHash != "plaintext-pw" &&
			auth.CheckPasswordHash("plaintext-pw", u.PasswordHash)
	})).Return(&user.User{ID: 1, UserName: "stefan", Email: "stefan@example.com"}, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e user.Event) bool {
		return e.Kind == user.EventRegistered && e.UserID == 1
	})).Return(nil)

	svc := newTestService(store, publisher)

	created, err := svc.RegisterUser(context.Background(), RegisterInput{
		UserName:  "stefan",
		Email:     "stefan@example.com",
		Password:  "plaintext-pw",
		FirstName: "Stefan",
		LastName:  "Eder",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	store.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_RegisterUser_DuplicateIsRegistrationFailed(t *testing.T) {
	store := &mockStore{}
	store.On("Add", mock.Anything, mock.Anything).Return(nil, user.ErrDuplicate)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.RegisterUser(context.Background(), RegisterInput{
		UserName: "stefan", Email: "stefan@example.com", Password: "pw",
		FirstName: "Stefan", LastName: "Eder",
	})
	assert.ErrorIs(t, err, apperror.ErrRegistrationFailed)
}

func TestService_LoginUser_Success(t *testing.T) {
	store := &mockStore{}
	existing := storedUser(t, 5, "stefan", "stefan@example.com", "correct-pw")
	store.On("Query", mock.Anything, user.Filter{UserName: "stefan"}).
		Return([]user.User{existing}, nil)

	svc := newTestService(store, &mockPublisher{})

	token, err := svc.LoginUser(context.Background(), LoginInput{
		UserName: "stefan", Password: "correct-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestService_LoginUser_ByEmailWhenUserNameBlank(t *testing.T) {
	store := &mockStore{}
	existing := storedUser(t, 5, "stefan", "stefan@example.com", "correct-pw")
	store.On("Query", mock.Anything, user.Filter{Email: "stefan@example.com"}).
		Return([]user.User{existing}, nil)

	svc := newTestService(store, &mockPublisher{})

	token, err := svc.LoginUser(context.Background(), LoginInput{
		Email: "stefan@example.com", Password: "correct-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_LoginUser_UnknownUser(t *testing.T) {
	store := &mockStore{}
	store.On("Query", mock.Anything, mock.Anything).Return([]user.User{}, nil)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.LoginUser(context.Background(), LoginInput{
		UserName: "ghost", Password: "pw",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_LoginUser_WrongPassword(t *testing.T) {
	store := &mockStore{}
	existing := storedUser(t, 5, "stefan", "stefan@example.com", "correct-pw")
	store.On("Query", mock.Anything, mock.Anything).Return([]user.User{existing}, nil)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.LoginUser(context.Background(), LoginInput{
		UserName: "stefan", Password: "wrong-pw",
	})
	assert.ErrorIs(t, err, apperror.ErrLoginFailed)
}

func TestService_UpdateUserWithID_RowVanished(t *testing.T) {
	// The row can disappear between the handler's existence check and the
	// update; that must surface as UpdateFailed, not a crash.
	store := &mockStore{}
	store.On("Update", mock.Anything, mock.Anything).Return(nil, user.ErrNotFound)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.UpdateUserWithID(context.Background(), 5, UpdateInput{
		UserName: "stefan", Email: "stefan@example.com", Password: "pw",
		FirstName: "Stefan", LastName: "Eder",
	})
	assert.ErrorIs(t, err, apperror.ErrUpdateFailed)
}

func TestService_UpdateUserWithID_Success(t *testing.T) {
	store := &mockStore{}
	publisher := &mockPublisher{}
	updated := storedUser(t, 5, "stefan2", "stefan2@example.com", "new-pw")

	store.On("Update", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.ID == 5 && u.UserName == "stefan2" &&
			auth.CheckPasswordHash("new-pw", u.PasswordHash)
	})).Return(&updated, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e user.Event) bool {
		return e.Kind == user.EventUpdated && e.UserID == 5
	})).Return(nil)

	svc := newTestService(store, publisher)

	u, err := svc.UpdateUserWithID(context.Background(), 5, UpdateInput{
		UserName: "stefan2", Email: "stefan2@example.com", Password: "new-pw",
		FirstName: "Stefan", LastName: "Eder",
	})
	require.NoError(t, err)
	assert.Equal(t, "stefan2", u.UserName)

	publisher.AssertExpectations(t)
}

func TestService_DeleteUserWithID_ReturnsDeletedRecord(t *testing.T) {
	store := &mockStore{}
	publisher := &mockPublisher{}
	existing := storedUser(t, 5, "stefan", "stefan@example.com", "pw")

	store.On("DeleteByID", mock.Anything, int64(5)).Return(&existing, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e user.Event) bool {
		return e.Kind == user.EventDeleted && e.UserID == 5
	})).Return(nil)

	svc := newTestService(store, publisher)

	deleted, err := svc.DeleteUserWithID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted.ID)

	publisher.AssertExpectations(t)
}

func TestService_DeleteUserWithID_RowVanished(t *testing.T) {
	store := &mockStore{}
	store.On("DeleteByID", mock.Anything, int64(5)).Return(nil, user.ErrNotFound)

	svc := newTestService(store, &mockPublisher{})

	_, err := svc.DeleteUserWithID(context.Background(), 5)
	assert.ErrorIs(t, err, apperror.ErrDeleteFailed)
}

func TestService_CheckIfUserWithIDExists(t *testing.T) {
	store := &mockStore{}
	store.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	store.On("ExistsByID", mock.Anything, int64(2)).Return(false, nil)
	store.On("ExistsByID", mock.Anything, int64(3)).Return(false, errors.New("store down"))

	svc := newTestService(store, &mockPublisher{})

	assert.True(t, svc.CheckIfUserWithIDExists(context.Background(), 1))
	assert.False(t, svc.CheckIfUserWithIDExists(context.Background(), 2))
	assert.False(t, svc.CheckIfUserWithIDExists(context.Background(), 3))
}

func TestService_PublishFailureDoesNotFailRequest(t *testing.T) {
	store := &mockStore{}
	publisher := &mockPublisher{}
	existing := storedUser(t, 5, "stefan", "stefan@example.com", "pw")

	store.On("DeleteByID", mock.Anything, int64(5)).Return(&existing, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := newTestService(store, publisher)

	_, err := svc.DeleteUserWithID(context.Background(), 5)
	assert.NoError(t, err)
}
