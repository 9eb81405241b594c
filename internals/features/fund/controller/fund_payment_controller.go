package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"promo_backend/internals/features/fund/dto"
	"promo_backend/internals/features/fund/model"
	"promo_backend/internals/features/fund/repository"
	"promo_backend/internals/features/fund/service"
	helper "promo_backend/internals/helpers"
)

type FundPaymentController struct {
	DB        *gorm.DB
	repo      *repository.PaymentRepository
	registrar *service.Registrar
}

func NewFundPaymentController(db *gorm.DB) *FundPaymentController {
	repo := repository.NewPaymentRepository(db)
	return &FundPaymentController{
		DB:        db,
		repo:      repo,
		registrar: service.NewRegistrar(repo),
	}
}

func registrarError(err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateWeek):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrPaymentNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidWeek):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* ======================= CREATE ======================= */
// POST /api/a/fund/payments
func (h *FundPaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreateFundPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	settingsRow, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}

	row, err := h.registrar.Register(c.UserContext(), service.RegisterInput{
		StudentID:  req.FundPaymentStudentID,
		WeekNumber: req.FundPaymentWeekNumber,
		Amount:     req.FundPaymentAmount,
		PaidAt:     req.FundPaymentPaidAt,
		Note:       req.FundPaymentNote,
	}, service.SettingsFromModel(settingsRow))
	if err != nil {
		return registrarError(err)
	}

	return helper.JsonCreated(c, "payment registered", dto.FromPaymentModel(*row))
}

/* ======================= BULK CREATE ======================= */
// POST /api/a/fund/payments/bulk
//
// Best effort: each week commits independently and earlier successes are
// not rolled back when a later week fails. The response carries one result
// per requested week.
func (h *FundPaymentController) CreateBulk(c *fiber.Ctx) error {
	var req dto.BulkRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	settingsRow, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}

	results := h.registrar.RegisterMany(
		c.UserContext(),
		req.FundPaymentStudentID,
		req.WeekNumbers,
		req.FundPaymentAmount,
		req.FundPaymentPaidAt,
		req.FundPaymentNote,
		service.SettingsFromModel(settingsRow),
	)

	return helper.JsonOK(c, "bulk registration processed", dto.FromWeekResults(results))
}

/* ======================== LIST ======================== */
// GET /api/a/fund/payments?student_id=&week=&page=&per_page=
func (h *FundPaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.FundPaymentModel{})
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid student_id")
		}
		base = base.Where("fund_payment_student_id = ?", id)
	}
	if wk := c.QueryInt("week", 0); wk > 0 {
		base = base.Where("fund_payment_week_number = ?", wk)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FundPaymentModel
	if err := base.
		Order("fund_payment_week_number ASC, fund_payment_paid_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromPaymentModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/fund/payments/:id
func (h *FundPaymentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment id")
	}

	var req dto.UpdateFundPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row, err := h.registrar.Edit(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return registrarError(err)
	}

	return helper.JsonUpdated(c, "payment updated", dto.FromPaymentModel(*row))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/fund/payments/:id
func (h *FundPaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment id")
	}

	if err := h.registrar.Remove(c.UserContext(), id); err != nil {
		return registrarError(err)
	}

	return helper.JsonDeleted(c, "payment deleted", fiber.Map{"fund_payment_id": id})
}
