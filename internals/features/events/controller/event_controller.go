package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"promo_backend/internals/features/events/dto"
	"promo_backend/internals/features/events/model"
	"promo_backend/internals/features/events/service"
	helper "promo_backend/internals/helpers"
	helperOSS "promo_backend/internals/helpers/oss"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

func (h *EventController) findByID(c *fiber.Ctx) (*model.EventModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid event id")
	}
	var row model.EventModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&row, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

/* ======================= CREATE ======================= */
// POST /api/a/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	base := helper.Slugify(req.EventTitle, 100)
	if req.EventSlug != nil && strings.TrimSpace(*req.EventSlug) != "" {
		base = helper.Slugify(*req.EventSlug, 100)
	}
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), h.DB, "events", "event_slug", base, nil, 100)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to allocate slug")
	}

	row := model.EventModel{
		EventTitle:       req.EventTitle,
		EventSlug:        slug,
		EventDescription: req.EventDescription,
		EventLocation:    req.EventLocation,
		EventStartsAt:    req.EventStartsAt,
		EventTicketPrice: req.EventTicketPrice,
		EventMaxTickets:  req.EventMaxTickets,
	}
	if req.EventIsPublished != nil {
		row.EventIsPublished = *req.EventIsPublished
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "an event with this slug already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create event")
	}

	return helper.JsonCreated(c, "event created", dto.FromEventModel(row))
}

/* ======================== LIST (ADMIN) ======================== */
// GET /api/a/events?page=&per_page=&q=
func (h *EventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.EventModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("event_title ILIKE ?", like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EventModel
	if err := base.
		Order("event_starts_at DESC NULLS LAST, event_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromEventModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== PUBLIC LIST / DETAIL ======================== */
// GET /api/public/events
func (h *EventController) PublicList(c *fiber.Ctx) error {
	var rows []model.EventModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("event_is_published = true").
		Order("event_starts_at ASC NULLS LAST").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromEventModels(rows))
}

// GET /api/public/events/:slug
func (h *EventController) PublicBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug must not be empty")
	}

	var row model.EventModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("event_slug = ? AND event_is_published = true", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromEventModel(row)
	if row.EventMaxTickets != nil {
		confirmed, err := confirmedQuantity(h.DB, c, row.EventID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		remaining, _ := service.Available(row.EventMaxTickets, confirmed)
		resp.AvailableTickets = &remaining
	}

	return helper.JsonOK(c, "", resp)
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	curr, err := h.findByID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := req.Patch()
	if req.EventSlug != nil {
		slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), h.DB, "events", "event_slug",
			helper.Slugify(*req.EventSlug, 100),
			func(q *gorm.DB) *gorm.DB { return q.Where("event_id <> ?", curr.EventID) }, 100)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to allocate slug")
		}
		patch["event_slug"] = slug
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "no changes", dto.FromEventModel(*curr))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Where("event_id = ?", curr.EventID).
		Updates(patch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "an event with this slug already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update event")
	}

	var updated model.EventModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&updated, "event_id = ?", curr.EventID).Error; err != nil {
		return helper.JsonUpdated(c, "event updated", dto.FromEventModel(*curr))
	}
	return helper.JsonUpdated(c, "event updated", dto.FromEventModel(updated))
}

/* ======================== FLYER UPLOAD ======================== */
// PUT /api/a/events/:id/flyer (multipart field "flyer" or "image")
func (h *EventController) UploadFlyer(c *fiber.Ctx) error {
	curr, err := h.findByID(c)
	if err != nil {
		return err
	}

	fh, err := helperOSS.GetImageFile(c, "flyer", "image", "file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("events")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "image storage unavailable")
	}

	url, err := svc.UploadAsWebP(c.UserContext(), fh, "flyers")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Old flyer becomes garbage once the new URL lands.
	if curr.EventFlyerURL != nil {
		_ = svc.DeleteByPublicURL(c.UserContext(), *curr.EventFlyerURL)
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Where("event_id = ?", curr.EventID).
		Update("event_flyer_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to store flyer url")
	}

	return helper.JsonUpdated(c, "flyer uploaded", fiber.Map{"event_flyer_url": url})
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid event id")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "event not found")
	}

	return helper.JsonDeleted(c, "event deleted", fiber.Map{"event_id": id})
}
