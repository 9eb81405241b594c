package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"promo_backend/internals/configs"
	authservice "promo_backend/internals/features/auth/service"
)

// AuthJWT validates the admin access token. It accepts a Bearer header or
// the access_token cookie, rejects blacklisted tokens, and requires the
// admin role claim. On success the user identity lands in locals.
func AuthJWT(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if h := c.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			raw = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
		if raw == "" {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing access token")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		blacklisted, err := authservice.IsTokenBlacklisted(db.WithContext(c.UserContext()), raw)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to verify token")
		}
		if blacklisted {
			return fiber.NewError(fiber.StatusUnauthorized, "token has been revoked")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
		}
		role, _ := claims["role"].(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}

		sub, _ := claims["sub"].(string)
		username, _ := claims["username"].(string)
		c.Locals("user_id", sub)
		c.Locals("username", username)
		c.Locals("role", role)
		return c.Next()
	}
}
