package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/fund/dto"
	"promo_backend/internals/features/fund/model"
	"promo_backend/internals/features/fund/repository"
	helper "promo_backend/internals/helpers"
)

type FundSettingsController struct {
	DB   *gorm.DB
	repo *repository.PaymentRepository
}

func NewFundSettingsController(db *gorm.DB) *FundSettingsController {
	return &FundSettingsController{DB: db, repo: repository.NewPaymentRepository(db)}
}

// GET /api/a/fund/settings
func (h *FundSettingsController) Get(c *fiber.Ctx) error {
	row, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}
	return helper.JsonOK(c, "", dto.FromSettingsModel(row))
}

// PUT /api/a/fund/settings (partial)
func (h *FundSettingsController) Update(c *fiber.Ctx) error {
	var req dto.UpdateFundSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Ensure the singleton exists before patching it.
	curr, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "no changes", dto.FromSettingsModel(curr))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.FundSettingsModel{}).
		Where("fund_settings_key = ?", model.SettingsMainKey).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update fund settings")
	}

	var updated model.FundSettingsModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&updated, "fund_settings_key = ?", model.SettingsMainKey).Error; err != nil {
		return helper.JsonUpdated(c, "fund settings updated", dto.FromSettingsModel(curr))
	}

	return helper.JsonUpdated(c, "fund settings updated", dto.FromSettingsModel(updated))
}
