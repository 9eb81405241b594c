package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Model ===================== */

// FundPaymentModel is one recorded dues payment for one (student, week).
// The composite unique index is the hard backstop for the
// one-payment-per-student-per-week rule; the service pre-check only exists
// to produce a friendly error before the constraint fires.
//
// An amount of 0 is a valid row: it marks the week as exonerated
// (explicitly excused), which is different from having no row at all.
type FundPaymentModel struct {
	FundPaymentID uuid.UUID `gorm:"column:fund_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fund_payment_id"`

	FundPaymentStudentID  uuid.UUID `gorm:"column:fund_payment_student_id;type:uuid;not null;uniqueIndex:uq_fund_payments_student_week" json:"fund_payment_student_id"`
	FundPaymentWeekNumber int       `gorm:"column:fund_payment_week_number;not null;check:fund_payment_week_number >= 1;uniqueIndex:uq_fund_payments_student_week" json:"fund_payment_week_number"`

	FundPaymentAmount float64   `gorm:"column:fund_payment_amount;not null;check:fund_payment_amount >= 0" json:"fund_payment_amount"`
	FundPaymentPaidAt time.Time `gorm:"column:fund_payment_paid_at;not null" json:"fund_payment_paid_at"`
	FundPaymentNote   *string   `gorm:"column:fund_payment_note" json:"fund_payment_note,omitempty"`

	CreatedAt time.Time `gorm:"column:fund_payment_created_at;autoCreateTime" json:"fund_payment_created_at"`
	UpdatedAt time.Time `gorm:"column:fund_payment_updated_at;autoUpdateTime" json:"fund_payment_updated_at"`
}

func (FundPaymentModel) TableName() string { return "fund_payments" }

func (p *FundPaymentModel) IsExoneration() bool { return p.FundPaymentAmount == 0 }
