package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"promo_backend/internals/features/events/dto"
	"promo_backend/internals/features/events/model"
	"promo_backend/internals/features/events/service"
	helper "promo_backend/internals/helpers"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

func newOrderID() string {
	return fmt.Sprintf("TIX-%d", time.Now().UnixNano())
}

/* ======================= PUBLIC CHECKOUT ======================= */
// POST /api/public/events/:slug/checkout
func (h *CheckoutController) Checkout(c *fiber.Ctx) error {
	if !service.MidtransReady() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "online checkout is not configured")
	}

	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug must not be empty")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var sale model.TicketSaleModel
	var event model.EventModel
	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("event_slug = ? AND event_is_published = true", slug).
			First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "event not found")
			}
			return err
		}

		// A pending sale does not hold capacity; we still refuse a
		// checkout that could never be confirmed at current occupancy.
		var sum int64
		if err := tx.Model(&model.TicketSaleModel{}).
			Where("ticket_sale_event_id = ? AND ticket_sale_status = ?", event.EventID, model.SaleStatusConfirmed).
			Select("COALESCE(SUM(ticket_sale_quantity), 0)").
			Scan(&sum).Error; err != nil {
			return err
		}
		if err := service.CheckQuantity(event.EventMaxTickets, int(sum), 0, req.Quantity); err != nil {
			return capacityError(err)
		}

		orderID := newOrderID()
		sale = model.TicketSaleModel{
			TicketSaleEventID:      event.EventID,
			TicketSaleBuyerName:    req.BuyerName,
			TicketSaleBuyerContact: &req.BuyerEmail,
			TicketSaleQuantity:     req.Quantity,
			TicketSaleUnitPrice:    event.EventTicketPrice,
			TicketSaleTotalAmount:  service.Total(event.EventTicketPrice, req.Quantity),
			TicketSaleStatus:       model.SaleStatusPending,
			TicketSaleOrderID:      &orderID,
		}
		return tx.Create(&sale).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to start checkout")
	}

	token, redirectURL, err := service.CreateCheckout(sale, event, req.BuyerEmail)
	if err != nil {
		// Leave the pending row; it never consumes capacity and the
		// buyer can retry with a fresh order id.
		log.Printf("[checkout] snap transaction failed order=%s: %v", *sale.TicketSaleOrderID, err)
		return fiber.NewError(fiber.StatusBadGateway, "payment gateway rejected the transaction")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.TicketSaleModel{}).
		Where("ticket_sale_id = ?", sale.TicketSaleID).
		Update("ticket_sale_checkout_url", redirectURL).Error; err != nil {
		log.Printf("[checkout] failed to store checkout url order=%s: %v", *sale.TicketSaleOrderID, err)
	}

	return helper.JsonCreated(c, "checkout created", fiber.Map{
		"order_id":     *sale.TicketSaleOrderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
		"total_amount": sale.TicketSaleTotalAmount,
	})
}

/* ======================= PAYMENT WEBHOOK ======================= */
// POST /api/payments/notification
func (h *CheckoutController) Notification(c *fiber.Ctx) error {
	if !service.MidtransReady() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "online checkout is not configured")
	}

	var payload service.Notification
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if payload.OrderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_id must not be empty")
	}
	if !payload.Authentic() {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	status, ok := service.SaleStatusFromNotification(payload.TransactionStatus)
	if !ok {
		// Intermediate state (pending, authorize). Acknowledge and wait.
		return helper.JsonOK(c, "notification ignored", fiber.Map{"order_id": payload.OrderID})
	}

	var sale model.TicketSaleModel
	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, "ticket_sale_order_id = ?", payload.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown order")
			}
			return err
		}
		if sale.TicketSaleStatus == status {
			return nil // replayed notification
		}

		if status == model.SaleStatusConfirmed {
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
			if err := service.CheckQuantity(event.EventMaxTickets, int(sum), 0, sale.TicketSaleQuantity); err != nil {
				// Paid but no seats left. Keep the money trail, flag for follow-up.
				log.Printf("[webhook] oversold order=%s event=%s", payload.OrderID, sale.TicketSaleEventID)
				return capacityError(err)
			}
		}

		return tx.Model(&model.TicketSaleModel{}).
			Where("ticket_sale_id = ?", sale.TicketSaleID).
			Update("ticket_sale_status", status).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to process notification")
	}

	return helper.JsonOK(c, "notification processed", fiber.Map{
		"order_id": payload.OrderID,
		"status":   status,
	})
}
