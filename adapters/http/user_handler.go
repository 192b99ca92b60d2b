package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	userUC "github.com/MasterEda92/UserService/internal/application/usecase/user"
	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/apperror"
	"github.com/MasterEda92/UserService/pkg/logger"
)

// UserService is the service contract this handler consumes.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]user.User, error)
	GetUserByID(ctx context.Context, id int64) (*user.User, error)
	RegisterUser(ctx context.Context, in userUC.RegisterInput) (*user.User, error)
	LoginUser(ctx context.Context, in userUC.LoginInput) (string, error)
	UpdateUserWithID(ctx context.Context, id int64, in userUC.UpdateInput) (*user.User, error)
	DeleteUserWithID(ctx context.Context, id int64) (*user.User, error)
	CheckIfUserWithIDExists(ctx context.Context, id int64) bool
}

type UserHandler struct {
	svc    UserService
	logger logger.Logger
}

func NewUserHandler(svc UserService, log logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: log}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.svc.GetAllUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "no users found"})
		return
	}
	c.JSON(http.StatusOK, ToUserDTOs(users))
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	u, err := h.svc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	created, err := h.svc.RegisterUser(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToUserDTO(created))
}

func (h *UserHandler) LoginUser(c *gin.Context) {
	var req LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	token, err := h.svc.LoginUser(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// UpdateUserWithID validates the payload shape first (400), then resolves
// existence (404), then attempts the mutation (500 on store failure).
func (h *UserHandler) UpdateUserWithID(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	if !h.svc.CheckIfUserWithIDExists(c.Request.Context(), userID) {
		c.Error(apperror.NewNotFound("user", strconv.FormatInt(userID, 10)))
		return
	}

	updated, err := h.svc.UpdateUserWithID(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(updated))
}

func (h *UserHandler) DeleteUserWithID(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	if !h.svc.CheckIfUserWithIDExists(c.Request.Context(), userID) {
		c.Error(apperror.NewNotFound("user", strconv.FormatInt(userID, 10)))
		return
	}

	deleted, err := h.svc.DeleteUserWithID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(deleted))
}

// GetCurrentUser resolves the bearer token set by AuthMiddleware to the
// authenticated user.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context", nil))
		return
	}

	u, err := h.svc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput(fmt.Sprintf("invalid user id '%s'", c.Param("id")), err))
		return 0, false
	}
	return userID, true
}

// bindingErrorDetails turns gin's binding errors into a compact field list
// without echoing submitted values back.
func bindingErrorDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "malformed request body"
	}

	details := make([]string, len(verrs))
	for i, fe := range verrs {
		details[i] = fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
	return strings.Join(details, "; ")
}
