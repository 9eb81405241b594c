package service

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"promo_backend/internals/configs"
	"promo_backend/internals/features/auth/model"
)

const accessTTLDefault = 24 * time.Hour

var ErrBadCredentials = errors.New("invalid username or password")

func accessTTL() time.Duration {
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return accessTTLDefault
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CheckPassword compares a plain password with its stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueAccessToken signs an HS256 access token for an admin user.
func IssueAccessToken(userID uuid.UUID, username, role string) (token string, expiresAt time.Time, err error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is not configured")
	}
	now := time.Now().UTC()
	expiresAt = now.Add(accessTTL())

	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	return token, expiresAt, err
}

// BlacklistToken stores a revoked token until its natural expiry.
func BlacklistToken(db *gorm.DB, raw string) error {
	expiredAt := time.Now().UTC().Add(accessTTL())
	// Use the token's own exp when it parses; fall back to TTL from now.
	if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0).UTC()
			}
		}
	}
	row := model.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
	return db.Where("token = ?", raw).FirstOrCreate(&row).Error
}

// IsTokenBlacklisted is the check the auth middleware runs per request.
func IsTokenBlacklisted(db *gorm.DB, raw string) (bool, error) {
	var count int64
	if err := db.Model(&model.TokenBlacklist{}).
		Where("token = ?", raw).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
