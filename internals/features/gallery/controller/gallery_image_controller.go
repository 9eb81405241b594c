package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"promo_backend/internals/features/gallery/dto"
	"promo_backend/internals/features/gallery/model"
	helper "promo_backend/internals/helpers"
	helperOSS "promo_backend/internals/helpers/oss"
)

type GalleryImageController struct {
	DB *gorm.DB
}

func NewGalleryImageController(db *gorm.DB) *GalleryImageController {
	return &GalleryImageController{DB: db}
}

func formPtr(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}

/* ======================= CREATE (UPLOAD) ======================= */
// POST /api/a/gallery (multipart: file part "image" + optional form fields;
// gallery_image_tags is comma separated)
func (h *GalleryImageController) Create(c *fiber.Ctx) error {
	fh, err := helperOSS.GetImageFile(c, "image", "photo", "file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("gallery")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "image storage unavailable")
	}
	url, err := svc.UploadAsWebP(c.UserContext(), fh, "images")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var tags []string
	if raw := strings.TrimSpace(c.FormValue("gallery_image_tags")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	row := model.GalleryImageModel{
		GalleryImageTitle:       formPtr(c, "gallery_image_title"),
		GalleryImageCaption:     formPtr(c, "gallery_image_caption"),
		GalleryImageURL:         url,
		GalleryImageTags:        pq.StringArray(tags),
		GalleryImageIsPublished: true,
	}
	if raw := strings.TrimSpace(c.FormValue("gallery_image_order_index")); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			row.GalleryImageOrderIndex = n
		}
	}
	if raw := strings.TrimSpace(c.FormValue("gallery_image_is_published")); raw != "" {
		row.GalleryImageIsPublished = raw == "true" || raw == "1"
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		// Storage row failed; drop the orphaned object.
		_ = svc.DeleteByPublicURL(c.UserContext(), url)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save gallery image")
	}

	return helper.JsonCreated(c, "gallery image uploaded", dto.FromGalleryImageModel(row))
}

/* ======================== LIST (ADMIN) ======================== */
// GET /api/a/gallery?page=&per_page=&tag=&published=
func (h *GalleryImageController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 24, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.GalleryImageModel{})
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		base = base.Where("? = ANY(gallery_image_tags)", tag)
	}
	if raw := strings.TrimSpace(c.Query("published")); raw != "" {
		base = base.Where("gallery_image_is_published = ?", raw == "true" || raw == "1")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.GalleryImageModel
	if err := base.
		Order("gallery_image_order_index ASC, gallery_image_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromGalleryImageModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== PUBLIC LIST ======================== */
// GET /api/public/gallery?tag=
func (h *GalleryImageController) PublicList(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).
		Where("gallery_image_is_published = true")
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(gallery_image_tags)", tag)
	}

	var rows []model.GalleryImageModel
	if err := q.
		Order("gallery_image_order_index ASC, gallery_image_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromGalleryImageModels(rows))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/gallery/:id
func (h *GalleryImageController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gallery image id")
	}

	var curr model.GalleryImageModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&curr, "gallery_image_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateGalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "no changes", dto.FromGalleryImageModel(curr))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.GalleryImageModel{}).
		Where("gallery_image_id = ?", id).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update gallery image")
	}

	var updated model.GalleryImageModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&updated, "gallery_image_id = ?", id).Error; err != nil {
		return helper.JsonUpdated(c, "gallery image updated", dto.FromGalleryImageModel(curr))
	}
	return helper.JsonUpdated(c, "gallery image updated", dto.FromGalleryImageModel(updated))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/gallery/:id
func (h *GalleryImageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gallery image id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.GalleryImageModel{}, "gallery_image_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
	}

	// Soft delete only. The stored object stays retrievable until the
	// purge cron reclaims it after the retention window.
	return helper.JsonDeleted(c, "gallery image deleted", fiber.Map{"gallery_image_id": id})
}
