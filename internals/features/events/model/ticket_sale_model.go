package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */

const (
	SaleStatusPending   = "pending"
	SaleStatusConfirmed = "confirmed"
	SaleStatusCancelled = "cancelled"
)

/* ===================== Model ===================== */

// TicketSaleModel is one ticket purchase. The unit price is snapshotted
// from the event at creation time so later price changes never alter past
// sales' totals. Only confirmed sales consume event capacity.
type TicketSaleModel struct {
	TicketSaleID uuid.UUID `gorm:"column:ticket_sale_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ticket_sale_id"`

	TicketSaleEventID uuid.UUID `gorm:"column:ticket_sale_event_id;type:uuid;not null;index" json:"ticket_sale_event_id"`

	TicketSaleBuyerName    string  `gorm:"column:ticket_sale_buyer_name;not null" json:"ticket_sale_buyer_name"`
	TicketSaleBuyerContact *string `gorm:"column:ticket_sale_buyer_contact" json:"ticket_sale_buyer_contact,omitempty"`

	TicketSaleQuantity    int     `gorm:"column:ticket_sale_quantity;not null;check:ticket_sale_quantity >= 1" json:"ticket_sale_quantity"`
	TicketSaleUnitPrice   float64 `gorm:"column:ticket_sale_unit_price;not null;check:ticket_sale_unit_price >= 0" json:"ticket_sale_unit_price"`
	TicketSaleTotalAmount float64 `gorm:"column:ticket_sale_total_amount;not null" json:"ticket_sale_total_amount"`

	TicketSaleStatus string `gorm:"column:ticket_sale_status;not null;default:'pending'" json:"ticket_sale_status"`

	// Set when the sale went through the online checkout.
	TicketSaleOrderID     *string `gorm:"column:ticket_sale_order_id;uniqueIndex" json:"ticket_sale_order_id,omitempty"`
	TicketSaleCheckoutURL *string `gorm:"column:ticket_sale_checkout_url" json:"ticket_sale_checkout_url,omitempty"`

	TicketSaleNote *string           `gorm:"column:ticket_sale_note" json:"ticket_sale_note,omitempty"`
	TicketSaleMeta datatypes.JSONMap `gorm:"column:ticket_sale_meta;type:jsonb" json:"ticket_sale_meta,omitempty"`

	CreatedAt time.Time `gorm:"column:ticket_sale_created_at;autoCreateTime" json:"ticket_sale_created_at"`
	UpdatedAt time.Time `gorm:"column:ticket_sale_updated_at;autoUpdateTime" json:"ticket_sale_updated_at"`
}

func (TicketSaleModel) TableName() string { return "ticket_sales" }

func (s *TicketSaleModel) IsConfirmed() bool { return s.TicketSaleStatus == SaleStatusConfirmed }
