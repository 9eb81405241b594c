package dto

import (
	"time"

	"github.com/google/uuid"

	"promo_backend/internals/features/auth/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserUsername string    `json:"user_username"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	CreatedAt    time.Time `json:"user_created_at"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserUsername: m.UserUsername,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
