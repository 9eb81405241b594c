package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GalleryImageModel is one published photo. The binary lives in object
// storage; the row only carries the public URL and display metadata.
type GalleryImageModel struct {
	GalleryImageID uuid.UUID `gorm:"column:gallery_image_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gallery_image_id"`

	GalleryImageTitle   *string `gorm:"column:gallery_image_title" json:"gallery_image_title,omitempty"`
	GalleryImageCaption *string `gorm:"column:gallery_image_caption" json:"gallery_image_caption,omitempty"`
	GalleryImageURL     string  `gorm:"column:gallery_image_url;not null" json:"gallery_image_url"`

	GalleryImageTags pq.StringArray `gorm:"column:gallery_image_tags;type:text[]" json:"gallery_image_tags,omitempty"`

	GalleryImageOrderIndex  int  `gorm:"column:gallery_image_order_index;not null;default:0" json:"gallery_image_order_index"`
	GalleryImageIsPublished bool `gorm:"column:gallery_image_is_published;not null;default:true" json:"gallery_image_is_published"`

	CreatedAt time.Time      `gorm:"column:gallery_image_created_at;autoCreateTime" json:"gallery_image_created_at"`
	UpdatedAt time.Time      `gorm:"column:gallery_image_updated_at;autoUpdateTime" json:"gallery_image_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:gallery_image_deleted_at;index" json:"gallery_image_deleted_at,omitempty"`
}

func (GalleryImageModel) TableName() string { return "gallery_images" }
