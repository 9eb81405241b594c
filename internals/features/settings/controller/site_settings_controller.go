package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/settings/dto"
	"promo_backend/internals/features/settings/model"
	helper "promo_backend/internals/helpers"
	helperOSS "promo_backend/internals/helpers/oss"
)

type SiteSettingsController struct {
	DB *gorm.DB
}

func NewSiteSettingsController(db *gorm.DB) *SiteSettingsController {
	return &SiteSettingsController{DB: db}
}

func (h *SiteSettingsController) load(c *fiber.Ctx) (*model.SiteSettingsModel, error) {
	var row model.SiteSettingsModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("site_settings_key = ?", model.SettingsMainKey).
		Attrs(model.DefaultSiteSettings()).
		FirstOrCreate(&row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load site settings")
	}
	return &row, nil
}

/* ======================== GET (PUBLIC) ======================== */
// GET /api/public/settings
func (h *SiteSettingsController) Get(c *fiber.Ctx) error {
	row, err := h.load(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromSiteSettingsModel(*row))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/settings
func (h *SiteSettingsController) Update(c *fiber.Ctx) error {
	row, err := h.load(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSiteSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "no changes", dto.FromSiteSettingsModel(*row))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.SiteSettingsModel{}).
		Where("site_settings_key = ?", model.SettingsMainKey).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update site settings")
	}

	var updated model.SiteSettingsModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&updated, "site_settings_key = ?", model.SettingsMainKey).Error; err != nil {
		return helper.JsonUpdated(c, "site settings updated", dto.FromSiteSettingsModel(*row))
	}
	return helper.JsonUpdated(c, "site settings updated", dto.FromSiteSettingsModel(updated))
}

/* ======================== HERO IMAGE UPLOAD ======================== */
// PUT /api/a/settings/hero (multipart field "hero" or "image")
func (h *SiteSettingsController) UploadHero(c *fiber.Ctx) error {
	row, err := h.load(c)
	if err != nil {
		return err
	}

	fh, err := helperOSS.GetImageFile(c, "hero", "image", "file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("site")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "image storage unavailable")
	}

	url, err := svc.UploadAsWebP(c.UserContext(), fh, "hero")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if row.SiteSettingsHeroImageURL != nil {
		_ = svc.DeleteByPublicURL(c.UserContext(), *row.SiteSettingsHeroImageURL)
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.SiteSettingsModel{}).
		Where("site_settings_key = ?", model.SettingsMainKey).
		Update("site_settings_hero_image_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to store hero image url")
	}

	return helper.JsonUpdated(c, "hero image uploaded", fiber.Map{"site_settings_hero_image_url": url})
}
