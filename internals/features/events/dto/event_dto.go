package dto

import (
	"time"

	"github.com/google/uuid"

	"promo_backend/internals/features/events/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateEventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,max=200"`
	EventSlug        *string    `json:"event_slug,omitempty" validate:"omitempty,max=100"`
	EventDescription *string    `json:"event_description,omitempty"`
	EventLocation    *string    `json:"event_location,omitempty" validate:"omitempty,max=200"`
	EventStartsAt    *time.Time `json:"event_starts_at,omitempty"`
	EventTicketPrice float64    `json:"event_ticket_price" validate:"gte=0"`
	EventMaxTickets  *int       `json:"event_max_tickets,omitempty" validate:"omitempty,gte=0"`
	EventIsPublished *bool      `json:"event_is_published,omitempty"`
}

// UpdateEventRequest is a sparse patch.
type UpdateEventRequest struct {
	EventTitle       *string    `json:"event_title,omitempty" validate:"omitempty,max=200"`
	EventSlug        *string    `json:"event_slug,omitempty" validate:"omitempty,max=100"`
	EventDescription *string    `json:"event_description,omitempty"`
	EventLocation    *string    `json:"event_location,omitempty" validate:"omitempty,max=200"`
	EventStartsAt    *time.Time `json:"event_starts_at,omitempty"`
	EventTicketPrice *float64   `json:"event_ticket_price,omitempty" validate:"omitempty,gte=0"`
	EventMaxTickets  *int       `json:"event_max_tickets,omitempty" validate:"omitempty,gte=0"`
	EventIsPublished *bool      `json:"event_is_published,omitempty"`
}

func (r UpdateEventRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.EventTitle != nil {
		patch["event_title"] = *r.EventTitle
	}
	if r.EventSlug != nil {
		patch["event_slug"] = *r.EventSlug
	}
	if r.EventDescription != nil {
		patch["event_description"] = *r.EventDescription
	}
	if r.EventLocation != nil {
		patch["event_location"] = *r.EventLocation
	}
	if r.EventStartsAt != nil {
		patch["event_starts_at"] = *r.EventStartsAt
	}
	if r.EventTicketPrice != nil {
		patch["event_ticket_price"] = *r.EventTicketPrice
	}
	if r.EventMaxTickets != nil {
		patch["event_max_tickets"] = *r.EventMaxTickets
	}
	if r.EventIsPublished != nil {
		patch["event_is_published"] = *r.EventIsPublished
	}
	return patch
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type EventResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventSlug        string     `json:"event_slug"`
	EventDescription *string    `json:"event_description,omitempty"`
	EventLocation    *string    `json:"event_location,omitempty"`
	EventStartsAt    *time.Time `json:"event_starts_at,omitempty"`
	EventFlyerURL    *string    `json:"event_flyer_url,omitempty"`
	EventTicketPrice float64    `json:"event_ticket_price"`
	EventMaxTickets  *int       `json:"event_max_tickets,omitempty"`
	EventIsPublished bool       `json:"event_is_published"`

	// Derived, filled by the controller when capacity is relevant.
	AvailableTickets *int `json:"available_tickets,omitempty"`

	CreatedAt time.Time `json:"event_created_at"`
	UpdatedAt time.Time `json:"event_updated_at"`
}

func FromEventModel(m model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventSlug:        m.EventSlug,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventStartsAt:    m.EventStartsAt,
		EventFlyerURL:    m.EventFlyerURL,
		EventTicketPrice: m.EventTicketPrice,
		EventMaxTickets:  m.EventMaxTickets,
		EventIsPublished: m.EventIsPublished,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromEventModels(rows []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromEventModel(r))
	}
	return out
}
