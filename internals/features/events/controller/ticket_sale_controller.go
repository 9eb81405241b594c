package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"promo_backend/internals/features/events/dto"
	"promo_backend/internals/features/events/model"
	"promo_backend/internals/features/events/service"
	helper "promo_backend/internals/helpers"
)

type TicketSaleController struct {
	DB *gorm.DB
}

func NewTicketSaleController(db *gorm.DB) *TicketSaleController {
	return &TicketSaleController{DB: db}
}

// confirmedQuantity sums confirmed ticket quantities for an event,
// optionally ignoring one sale (used when editing that sale).
func confirmedQuantity(db *gorm.DB, c *fiber.Ctx, eventID uuid.UUID, excludeID ...uuid.UUID) (int, error) {
	var sum int64
	q := db.WithContext(c.UserContext()).
		Model(&model.TicketSaleModel{}).
		Where("ticket_sale_event_id = ? AND ticket_sale_status = ?", eventID, model.SaleStatusConfirmed)
	if len(excludeID) > 0 {
		q = q.Where("ticket_sale_id <> ?", excludeID[0])
	}
	if err := q.Select("COALESCE(SUM(ticket_sale_quantity), 0)").Scan(&sum).Error; err != nil {
		return 0, err
	}
	return int(sum), nil
}

func capacityError(err error) error {
	switch {
	case errors.Is(err, service.ErrInsufficientCapacity):
		return fiber.NewError(fiber.StatusConflict, "not enough tickets left for this event")
	case errors.Is(err, service.ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* ======================= CREATE ======================= */
// POST /api/a/ticket-sales
func (h *TicketSaleController) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	status := model.SaleStatusConfirmed
	if req.TicketSaleStatus != nil {
		status = *req.TicketSaleStatus
	}

	var created model.TicketSaleModel
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var event model.EventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "event_id = ?", req.TicketSaleEventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "event not found")
			}
			return err
		}

		// Only confirmed sales consume capacity.
		if status == model.SaleStatusConfirmed {
			var sum int64
			if err := tx.Model(&model.TicketSaleModel{}).
				Where("ticket_sale_event_id = ? AND ticket_sale_status = ?", event.EventID, model.SaleStatusConfirmed).
				Select("COALESCE(SUM(ticket_sale_quantity), 0)").
				Scan(&sum).Error; err != nil {
				return err
			}
			if err := service.CheckQuantity(event.EventMaxTickets, int(sum), 0, req.TicketSaleQuantity); err != nil {
				return capacityError(err)
			}
		} else if req.TicketSaleQuantity < 1 {
			return capacityError(service.ErrInvalidQuantity)
		}

		created = model.TicketSaleModel{
			TicketSaleEventID:      event.EventID,
			TicketSaleBuyerName:    req.TicketSaleBuyerName,
			TicketSaleBuyerContact: req.TicketSaleBuyerContact,
			TicketSaleQuantity:     req.TicketSaleQuantity,
			TicketSaleUnitPrice:    event.EventTicketPrice,
			TicketSaleTotalAmount:  service.Total(event.EventTicketPrice, req.TicketSaleQuantity),
			TicketSaleStatus:       status,
			TicketSaleNote:         req.TicketSaleNote,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to record ticket sale")
	}

	return helper.JsonCreated(c, "ticket sale recorded", dto.FromTicketSaleModel(created))
}

/* ======================== LIST ======================== */
// GET /api/a/ticket-sales?event_id=&status=&page=&per_page=
func (h *TicketSaleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.TicketSaleModel{})
	if raw := strings.TrimSpace(c.Query("event_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid event_id")
		}
		base = base.Where("ticket_sale_event_id = ?", id)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		base = base.Where("ticket_sale_status = ?", st)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TicketSaleModel
	if err := base.
		Order("ticket_sale_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromTicketSaleModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/ticket-sales/:id
func (h *TicketSaleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid ticket sale id")
	}

	var req dto.UpdateTicketSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated model.TicketSaleModel
	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var sale model.TicketSaleModel
		if err := tx.First(&sale, "ticket_sale_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "ticket sale not found")
			}
			return err
		}

		newQty := sale.TicketSaleQuantity
		if req.TicketSaleQuantity != nil {
			newQty = *req.TicketSaleQuantity
		}
		newStatus := sale.TicketSaleStatus
		if req.TicketSaleStatus != nil {
			newStatus = *req.TicketSaleStatus
		}

		if newStatus == model.SaleStatusConfirmed {
			var event model.EventModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&event, "event_id = ?", sale.TicketSaleEventID).Error; err != nil {
				return err
			}
			var sum int64
			if err := tx.Model(&model.TicketSaleModel{}).
				Where("ticket_sale_event_id = ? AND ticket_sale_status = ? AND ticket_sale_id <> ?",
					sale.TicketSaleEventID, model.SaleStatusConfirmed, sale.TicketSaleID).
				Select("COALESCE(SUM(ticket_sale_quantity), 0)").
				Scan(&sum).Error; err != nil {
				return err
			}
			if err := service.CheckQuantity(event.EventMaxTickets, int(sum), 0, newQty); err != nil {
				return capacityError(err)
			}
		} else if newQty < 1 {
			return capacityError(service.ErrInvalidQuantity)
		}

		patch := map[string]interface{}{}
		if req.TicketSaleBuyerName != nil {
			patch["ticket_sale_buyer_name"] = *req.TicketSaleBuyerName
		}
		if req.TicketSaleBuyerContact != nil {
			patch["ticket_sale_buyer_contact"] = *req.TicketSaleBuyerContact
		}
		if req.TicketSaleNote != nil {
			patch["ticket_sale_note"] = *req.TicketSaleNote
		}
		if req.TicketSaleQuantity != nil {
			patch["ticket_sale_quantity"] = newQty
			// Total always follows the unit price captured at sale time.
			patch["ticket_sale_total_amount"] = service.Total(sale.TicketSaleUnitPrice, newQty)
		}
		if req.TicketSaleStatus != nil {
			patch["ticket_sale_status"] = newStatus
		}
		if len(patch) == 0 {
			updated = sale
			return nil
		}

		if err := tx.Model(&model.TicketSaleModel{}).
			Where("ticket_sale_id = ?", sale.TicketSaleID).
			Updates(patch).Error; err != nil {
			return err
		}
		return tx.First(&updated, "ticket_sale_id = ?", sale.TicketSaleID).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update ticket sale")
	}

	return helper.JsonUpdated(c, "ticket sale updated", dto.FromTicketSaleModel(updated))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/ticket-sales/:id
func (h *TicketSaleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid ticket sale id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Delete(&model.TicketSaleModel{}, "ticket_sale_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "ticket sale not found")
	}

	return helper.JsonDeleted(c, "ticket sale deleted", fiber.Map{"ticket_sale_id": id})
}
