package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel is one promotion event (party, fundraiser, ceremony).
// event_max_tickets nil means unlimited capacity.
type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventTitle       string     `gorm:"column:event_title;not null" json:"event_title"`
	EventSlug        string     `gorm:"column:event_slug;not null;uniqueIndex" json:"event_slug"`
	EventDescription *string    `gorm:"column:event_description" json:"event_description,omitempty"`
	EventLocation    *string    `gorm:"column:event_location" json:"event_location,omitempty"`
	EventStartsAt    *time.Time `gorm:"column:event_starts_at" json:"event_starts_at,omitempty"`
	EventFlyerURL    *string    `gorm:"column:event_flyer_url" json:"event_flyer_url,omitempty"`

	EventTicketPrice float64 `gorm:"column:event_ticket_price;not null;default:0;check:event_ticket_price >= 0" json:"event_ticket_price"`
	EventMaxTickets  *int    `gorm:"column:event_max_tickets;check:event_max_tickets IS NULL OR event_max_tickets >= 0" json:"event_max_tickets,omitempty"`

	EventIsPublished bool `gorm:"column:event_is_published;not null;default:false" json:"event_is_published"`

	CreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	UpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
