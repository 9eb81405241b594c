package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"promo_backend/internals/features/gallery/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// UpdateGalleryImageRequest is a sparse patch. Create has no JSON body:
// the upload endpoint takes multipart form fields next to the file part.
type UpdateGalleryImageRequest struct {
	GalleryImageTitle       *string  `json:"gallery_image_title,omitempty" validate:"omitempty,max=200"`
	GalleryImageCaption     *string  `json:"gallery_image_caption,omitempty" validate:"omitempty,max=500"`
	GalleryImageTags        []string `json:"gallery_image_tags,omitempty" validate:"omitempty,dive,max=50"`
	GalleryImageOrderIndex  *int     `json:"gallery_image_order_index,omitempty"`
	GalleryImageIsPublished *bool    `json:"gallery_image_is_published,omitempty"`
}

func (r UpdateGalleryImageRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.GalleryImageTitle != nil {
		patch["gallery_image_title"] = *r.GalleryImageTitle
	}
	if r.GalleryImageCaption != nil {
		patch["gallery_image_caption"] = *r.GalleryImageCaption
	}
	if r.GalleryImageTags != nil {
		patch["gallery_image_tags"] = pq.StringArray(r.GalleryImageTags)
	}
	if r.GalleryImageOrderIndex != nil {
		patch["gallery_image_order_index"] = *r.GalleryImageOrderIndex
	}
	if r.GalleryImageIsPublished != nil {
		patch["gallery_image_is_published"] = *r.GalleryImageIsPublished
	}
	return patch
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type GalleryImageResponse struct {
	GalleryImageID          uuid.UUID `json:"gallery_image_id"`
	GalleryImageTitle       *string   `json:"gallery_image_title,omitempty"`
	GalleryImageCaption     *string   `json:"gallery_image_caption,omitempty"`
	GalleryImageURL         string    `json:"gallery_image_url"`
	GalleryImageTags        []string  `json:"gallery_image_tags,omitempty"`
	GalleryImageOrderIndex  int       `json:"gallery_image_order_index"`
	GalleryImageIsPublished bool      `json:"gallery_image_is_published"`
	CreatedAt               time.Time `json:"gallery_image_created_at"`
	UpdatedAt               time.Time `json:"gallery_image_updated_at"`
}

func FromGalleryImageModel(m model.GalleryImageModel) GalleryImageResponse {
	return GalleryImageResponse{
		GalleryImageID:          m.GalleryImageID,
		GalleryImageTitle:       m.GalleryImageTitle,
		GalleryImageCaption:     m.GalleryImageCaption,
		GalleryImageURL:         m.GalleryImageURL,
		GalleryImageTags:        m.GalleryImageTags,
		GalleryImageOrderIndex:  m.GalleryImageOrderIndex,
		GalleryImageIsPublished: m.GalleryImageIsPublished,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

func FromGalleryImageModels(rows []model.GalleryImageModel) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromGalleryImageModel(r))
	}
	return out
}
