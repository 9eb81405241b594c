package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"promo_backend/internals/features/students/dto"
	"promo_backend/internals/features/students/model"
	helper "promo_backend/internals/helpers"
	helperOSS "promo_backend/internals/helpers/oss"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func (h *StudentController) findByID(c *fiber.Ctx) (*model.StudentModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	var row model.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

/* ======================= CREATE ======================= */
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row := model.StudentModel{
		StudentName:        strings.TrimSpace(req.StudentName),
		StudentNickname:    req.StudentNickname,
		StudentDescription: req.StudentDescription,
		StudentQuote:       req.StudentQuote,
		StudentInstagram:   req.StudentInstagram,
		StudentIsActive:    true,
	}
	if req.StudentOrderIndex != nil {
		row.StudentOrderIndex = *req.StudentOrderIndex
	}
	if req.StudentIsActive != nil {
		row.StudentIsActive = *req.StudentIsActive
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create student")
	}

	return helper.JsonCreated(c, "student created", dto.FromStudentModel(row))
}

/* ======================== LIST (ADMIN) ======================== */
// GET /api/a/students?page=&per_page=&q=&active=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("student_name ILIKE ? OR student_nickname ILIKE ?", like, like)
	}
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		base = base.Where("student_is_active = ?", raw == "true" || raw == "1")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := base.
		Order("student_order_index ASC, student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromStudentModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== PUBLIC LIST ======================== */
// GET /api/public/students
func (h *StudentController) PublicList(c *fiber.Ctx) error {
	var rows []model.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("student_is_active = true").
		Order("student_order_index ASC, student_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromStudentModels(rows))
}

/* ======================== DETAIL ======================== */
// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	row, err := h.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.FromStudentModel(*row))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	curr, err := h.findByID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "no changes", dto.FromStudentModel(*curr))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("student_id = ?", curr.StudentID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update student")
	}

	var updated model.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&updated, "student_id = ?", curr.StudentID).Error; err != nil {
		return helper.JsonUpdated(c, "student updated", dto.FromStudentModel(*curr))
	}
	return helper.JsonUpdated(c, "student updated", dto.FromStudentModel(updated))
}

/* ======================== PHOTO UPLOAD ======================== */
// PUT /api/a/students/:id/photo (multipart field "photo" or "image")
func (h *StudentController) UploadPhoto(c *fiber.Ctx) error {
	curr, err := h.findByID(c)
	if err != nil {
		return err
	}

	fh, err := helperOSS.GetImageFile(c, "photo", "image", "file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("students")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "image storage unavailable")
	}

	url, err := svc.UploadAsWebP(c.UserContext(), fh, "photos")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if curr.StudentPhotoURL != nil {
		_ = svc.DeleteByPublicURL(c.UserContext(), *curr.StudentPhotoURL)
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("student_id = ?", curr.StudentID).
		Update("student_photo_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to store photo url")
	}

	return helper.JsonUpdated(c, "photo uploaded", fiber.Map{"student_photo_url": url})
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "student not found")
	}

	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
