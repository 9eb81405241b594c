package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel is one member of the promotion. Students are soft-disabled
// via student_is_active for dues purposes; rows are only hard-deleted for
// administrative cleanup.
type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentName        string  `gorm:"column:student_name;not null" json:"student_name"`
	StudentNickname    *string `gorm:"column:student_nickname" json:"student_nickname,omitempty"`
	StudentDescription *string `gorm:"column:student_description" json:"student_description,omitempty"`
	StudentQuote       *string `gorm:"column:student_quote" json:"student_quote,omitempty"`
	StudentInstagram   *string `gorm:"column:student_instagram" json:"student_instagram,omitempty"`
	StudentPhotoURL    *string `gorm:"column:student_photo_url" json:"student_photo_url,omitempty"`

	StudentOrderIndex int  `gorm:"column:student_order_index;not null;default:0" json:"student_order_index"`
	StudentIsActive   bool `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`

	CreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	UpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
