package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"promo_backend/internals/configs"
	"promo_backend/internals/features/auth/dto"
	"promo_backend/internals/features/auth/model"
	"promo_backend/internals/features/auth/service"
	helper "promo_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func bearerOrCookie(c *fiber.Ctx) string {
	if h := c.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func setAccessCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   configs.AppEnv == "production",
		SameSite: "Lax",
		Path:     "/",
	})
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_username = ? AND user_is_active = true", strings.TrimSpace(req.Username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, service.ErrBadCredentials.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !service.CheckPassword(user.UserPasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, service.ErrBadCredentials.Error())
	}

	token, expiresAt, err := service.IssueAccessToken(user.UserID, user.UserUsername, user.UserRole)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to issue token")
	}
	setAccessCookie(c, token, expiresAt)

	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.FromUserModel(user),
	})
}

/* ======================= LOGOUT ======================= */
// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	raw := bearerOrCookie(c)
	if raw != "" {
		if err := service.BlacklistToken(h.DB.WithContext(c.UserContext()), raw); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to revoke token")
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "logged out", nil)
}

/* ======================= ME ======================= */
// GET /api/a/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromUserModel(user))
}

/* ======================= CHANGE PASSWORD ======================= */
// PUT /api/a/me/password
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
	}
	if !service.CheckPassword(user.UserPasswordHash, req.OldPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "old password is incorrect")
	}

	hash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ?", user.UserID).
		Update("user_password_hash", hash).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update password")
	}

	// Revoke the session that performed the change.
	if raw := bearerOrCookie(c); raw != "" {
		_ = service.BlacklistToken(h.DB.WithContext(c.UserContext()), raw)
	}

	return helper.JsonUpdated(c, "password changed, please log in again", nil)
}

// currentUserID reads the user id the auth middleware stored in locals.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user identity")
	}
	return id, nil
}
