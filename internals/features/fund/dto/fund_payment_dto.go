package dto

import (
	"time"

	"github.com/google/uuid"

	"promo_backend/internals/features/fund/model"
	"promo_backend/internals/features/fund/service"
)

/* =========================================================
   REQUEST DTOs (json tags = DB column names, snake_case)
========================================================= */

// CreateFundPaymentRequest registers one payment for one week.
// Amount defaults to the configured weekly amount; 0 is a valid amount and
// marks the week as exonerated. PaidAt defaults to today.
type CreateFundPaymentRequest struct {
	FundPaymentStudentID  uuid.UUID  `json:"fund_payment_student_id" validate:"required"`
	FundPaymentWeekNumber int        `json:"fund_payment_week_number" validate:"required,min=1"`
	FundPaymentAmount     *float64   `json:"fund_payment_amount,omitempty" validate:"omitempty,gte=0"`
	FundPaymentPaidAt     *time.Time `json:"fund_payment_paid_at,omitempty"`
	FundPaymentNote       *string    `json:"fund_payment_note,omitempty" validate:"omitempty,max=500"`
}

// BulkRegisterRequest registers several weeks for one student in one call.
// Each week commits independently (best effort, no rollback).
type BulkRegisterRequest struct {
	FundPaymentStudentID uuid.UUID  `json:"fund_payment_student_id" validate:"required"`
	WeekNumbers          []int      `json:"week_numbers" validate:"required,min=1,dive,min=1"`
	FundPaymentAmount    *float64   `json:"fund_payment_amount,omitempty" validate:"omitempty,gte=0"`
	FundPaymentPaidAt    *time.Time `json:"fund_payment_paid_at,omitempty"`
	FundPaymentNote      *string    `json:"fund_payment_note,omitempty" validate:"omitempty,max=500"`
}

// UpdateFundPaymentRequest is a sparse patch; only supplied fields change.
type UpdateFundPaymentRequest struct {
	FundPaymentWeekNumber *int       `json:"fund_payment_week_number,omitempty" validate:"omitempty,min=1"`
	FundPaymentAmount     *float64   `json:"fund_payment_amount,omitempty" validate:"omitempty,gte=0"`
	FundPaymentPaidAt     *time.Time `json:"fund_payment_paid_at,omitempty"`
	FundPaymentNote       *string    `json:"fund_payment_note,omitempty" validate:"omitempty,max=500"`
}

func (r UpdateFundPaymentRequest) ToPatch() service.PaymentPatch {
	return service.PaymentPatch{
		WeekNumber: r.FundPaymentWeekNumber,
		Amount:     r.FundPaymentAmount,
		PaidAt:     r.FundPaymentPaidAt,
		Note:       r.FundPaymentNote,
	}
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type FundPaymentResponse struct {
	FundPaymentID         uuid.UUID `json:"fund_payment_id"`
	FundPaymentStudentID  uuid.UUID `json:"fund_payment_student_id"`
	FundPaymentWeekNumber int       `json:"fund_payment_week_number"`
	FundPaymentAmount     float64   `json:"fund_payment_amount"`
	FundPaymentPaidAt     time.Time `json:"fund_payment_paid_at"`
	FundPaymentNote       *string   `json:"fund_payment_note,omitempty"`
	CreatedAt             time.Time `json:"fund_payment_created_at"`
	UpdatedAt             time.Time `json:"fund_payment_updated_at"`
}

func FromPaymentModel(m model.FundPaymentModel) FundPaymentResponse {
	return FundPaymentResponse{
		FundPaymentID:         m.FundPaymentID,
		FundPaymentStudentID:  m.FundPaymentStudentID,
		FundPaymentWeekNumber: m.FundPaymentWeekNumber,
		FundPaymentAmount:     m.FundPaymentAmount,
		FundPaymentPaidAt:     m.FundPaymentPaidAt,
		FundPaymentNote:       m.FundPaymentNote,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func FromPaymentModels(rows []model.FundPaymentModel) []FundPaymentResponse {
	out := make([]FundPaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromPaymentModel(r))
	}
	return out
}

// WeekResultResponse is one entry of a bulk registration outcome.
type WeekResultResponse struct {
	WeekNumber int                  `json:"week_number"`
	OK         bool                 `json:"ok"`
	Error      string               `json:"error,omitempty"`
	Payment    *FundPaymentResponse `json:"payment,omitempty"`
}

func FromWeekResults(results []service.WeekResult) []WeekResultResponse {
	out := make([]WeekResultResponse, 0, len(results))
	for _, r := range results {
		item := WeekResultResponse{WeekNumber: r.WeekNumber, OK: r.Err == nil}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		if r.Payment != nil {
			resp := FromPaymentModel(*r.Payment)
			item.Payment = &resp
		}
		out = append(out, item)
	}
	return out
}

// StudentDuesResponse is the public per-student dues lookup payload.
type StudentDuesResponse struct {
	StudentID   uuid.UUID             `json:"student_id"`
	StudentName string                `json:"student_name"`
	Status      service.StudentStatus `json:"status"`
	Payments    []FundPaymentResponse `json:"payments"`
	PaidWeeks   []int                 `json:"paid_weeks"` // weeks covered with amount > 0
}
