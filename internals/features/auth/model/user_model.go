package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

// UserModel is an admin account. The site has no public registration;
// rows are seeded or created by another admin.
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserUsername     string `gorm:"column:user_username;not null;uniqueIndex" json:"user_username"`
	UserPasswordHash string `gorm:"column:user_password_hash;not null" json:"-"`
	UserRole         string `gorm:"column:user_role;not null;default:'admin'" json:"user_role"`
	UserIsActive     bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	CreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
