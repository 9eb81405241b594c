package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"promo_backend/internals/features/events/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateTicketSaleRequest struct {
	TicketSaleEventID      uuid.UUID `json:"ticket_sale_event_id" validate:"required"`
	TicketSaleBuyerName    string    `json:"ticket_sale_buyer_name" validate:"required,max=200"`
	TicketSaleBuyerContact *string   `json:"ticket_sale_buyer_contact,omitempty" validate:"omitempty,max=200"`
	TicketSaleQuantity     int       `json:"ticket_sale_quantity" validate:"required,min=1"`
	TicketSaleStatus       *string   `json:"ticket_sale_status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
	TicketSaleNote         *string   `json:"ticket_sale_note,omitempty" validate:"omitempty,max=500"`
}

// UpdateTicketSaleRequest is a sparse patch. Changing the quantity or the
// status re-runs the capacity check; the total is always recomputed from
// the snapshotted unit price.
type UpdateTicketSaleRequest struct {
	TicketSaleBuyerName    *string `json:"ticket_sale_buyer_name,omitempty" validate:"omitempty,max=200"`
	TicketSaleBuyerContact *string `json:"ticket_sale_buyer_contact,omitempty" validate:"omitempty,max=200"`
	TicketSaleQuantity     *int    `json:"ticket_sale_quantity,omitempty" validate:"omitempty,min=1"`
	TicketSaleStatus       *string `json:"ticket_sale_status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
	TicketSaleNote         *string `json:"ticket_sale_note,omitempty" validate:"omitempty,max=500"`
}

// CheckoutRequest is the public online purchase payload.
type CheckoutRequest struct {
	BuyerName  string `json:"buyer_name" validate:"required,max=200"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type TicketSaleResponse struct {
	TicketSaleID           uuid.UUID         `json:"ticket_sale_id"`
	TicketSaleEventID      uuid.UUID         `json:"ticket_sale_event_id"`
	TicketSaleBuyerName    string            `json:"ticket_sale_buyer_name"`
	TicketSaleBuyerContact *string           `json:"ticket_sale_buyer_contact,omitempty"`
	TicketSaleQuantity     int               `json:"ticket_sale_quantity"`
	TicketSaleUnitPrice    float64           `json:"ticket_sale_unit_price"`
	TicketSaleTotalAmount  float64           `json:"ticket_sale_total_amount"`
	TicketSaleStatus       string            `json:"ticket_sale_status"`
	TicketSaleOrderID      *string           `json:"ticket_sale_order_id,omitempty"`
	TicketSaleCheckoutURL  *string           `json:"ticket_sale_checkout_url,omitempty"`
	TicketSaleNote         *string           `json:"ticket_sale_note,omitempty"`
	TicketSaleMeta         datatypes.JSONMap `json:"ticket_sale_meta,omitempty"`
	CreatedAt              time.Time         `json:"ticket_sale_created_at"`
	UpdatedAt              time.Time         `json:"ticket_sale_updated_at"`
}

func FromTicketSaleModel(m model.TicketSaleModel) TicketSaleResponse {
	return TicketSaleResponse{
		TicketSaleID:           m.TicketSaleID,
		TicketSaleEventID:      m.TicketSaleEventID,
		TicketSaleBuyerName:    m.TicketSaleBuyerName,
		TicketSaleBuyerContact: m.TicketSaleBuyerContact,
		TicketSaleQuantity:     m.TicketSaleQuantity,
		TicketSaleUnitPrice:    m.TicketSaleUnitPrice,
		TicketSaleTotalAmount:  m.TicketSaleTotalAmount,
		TicketSaleStatus:       m.TicketSaleStatus,
		TicketSaleOrderID:      m.TicketSaleOrderID,
		TicketSaleCheckoutURL:  m.TicketSaleCheckoutURL,
		TicketSaleNote:         m.TicketSaleNote,
		TicketSaleMeta:         m.TicketSaleMeta,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func FromTicketSaleModels(rows []model.TicketSaleModel) []TicketSaleResponse {
	out := make([]TicketSaleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTicketSaleModel(r))
	}
	return out
}
