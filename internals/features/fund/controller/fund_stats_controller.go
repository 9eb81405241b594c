package controller

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"promo_backend/internals/features/fund/dto"
	"promo_backend/internals/features/fund/repository"
	"promo_backend/internals/features/fund/service"
	studentModel "promo_backend/internals/features/students/model"
	helper "promo_backend/internals/helpers"
)

type FundStatsController struct {
	DB   *gorm.DB
	repo *repository.PaymentRepository
}

func NewFundStatsController(db *gorm.DB) *FundStatsController {
	return &FundStatsController{DB: db, repo: repository.NewPaymentRepository(db)}
}

/* ======================== PUBLIC STATS ======================== */
// GET /api/public/fund/stats
func (h *FundStatsController) Stats(c *fiber.Ctx) error {
	settingsRow, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}

	entries, err := repository.LoadActiveStudentEntries(c.UserContext(), h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	stats := service.Aggregate(entries, service.SettingsFromModel(settingsRow), time.Now())
	return helper.JsonOK(c, "", stats)
}

/* ======================== PUBLIC PER-STUDENT DUES ======================== */
// GET /api/public/students/:id/dues
func (h *FundStatsController) StudentDues(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}

	var student studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	settingsRow, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}

	rows, err := h.repo.ListByStudent(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	records := service.RecordsFromModels(rows)
	status := service.ComputeStatus(records, service.SettingsFromModel(settingsRow), time.Now())

	paidWeeks := make([]int, 0, len(records))
	for w := range service.PaidWeeks(records) {
		paidWeeks = append(paidWeeks, w)
	}
	sort.Ints(paidWeeks)

	return helper.JsonOK(c, "", dto.StudentDuesResponse{
		StudentID:   student.StudentID,
		StudentName: student.StudentName,
		Status:      status,
		Payments:    dto.FromPaymentModels(rows),
		PaidWeeks:   paidWeeks,
	})
}

/* ======================== ADMIN RANKING ======================== */
// GET /api/a/fund/ranking
func (h *FundStatsController) Ranking(c *fiber.Ctx) error {
	settingsRow, err := h.repo.LoadSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load fund settings")
	}

	entries, err := repository.LoadActiveStudentEntries(c.UserContext(), h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	stats := service.Aggregate(entries, service.SettingsFromModel(settingsRow), time.Now())
	return helper.JsonOK(c, "", fiber.Map{
		"current_week": stats.CurrentWeek,
		"top_debtors":  stats.TopDebtors,
	})
}
