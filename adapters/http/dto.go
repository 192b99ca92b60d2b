package http

import (
	userUC "github.com/MasterEda92/UserService/internal/application/usecase/user"
	"github.com/MasterEda92/UserService/internal/domain/user"
)

// UserDTO is the outbound projection. It intentionally has no password
// field; neither the plaintext nor the hash ever leaves the service.
type UserDTO struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func ToUserDTOs(users []user.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = ToUserDTO(&users[i])
	}
	return dtos
}

type RegisterUserRequest struct {
	UserName  string `json:"user_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=320"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

func (req *RegisterUserRequest) ToInput() userUC.RegisterInput {
	return userUC.RegisterInput{
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
}

// UpdateUserRequest is a full replacement of the mutable fields; there are no
// partial-update semantics.
type UpdateUserRequest struct {
	UserName  string `json:"user_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=320"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

func (req *UpdateUserRequest) ToInput() userUC.UpdateInput {
	return userUC.UpdateInput{
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
}

// LoginUserRequest accepts a username or an email; at least one must be set.
type LoginUserRequest struct {
	UserName string `json:"user_name" binding:"required_without=Email"`
	Email    string `json:"email" binding:"required_without=UserName,omitempty,email"`
	Password string `json:"password" binding:"required"`
}

func (req *LoginUserRequest) ToInput() userUC.LoginInput {
	return userUC.LoginInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	}
}
