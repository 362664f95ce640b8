package dto

import (
	"github.com/vidyapath/planner-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash and frozen
// gamification columns never leave the server through this shape.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the login/register payload.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
