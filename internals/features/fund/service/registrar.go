package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"promo_backend/internals/features/fund/model"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrDuplicateWeek   = errors.New("a payment already exists for this student and week")
	ErrInvalidWeek     = errors.New("week number must be >= 1")
)

// PaymentStore is what the registrar needs from persistence. The gorm
// implementation lives in the repository package; tests use an in-memory
// fake.
type PaymentStore interface {
	StudentExists(ctx context.Context, studentID uuid.UUID) (bool, error)
	WeekTaken(ctx context.Context, studentID uuid.UUID, week int, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, p *model.FundPaymentModel) error
	Get(ctx context.Context, id uuid.UUID) (*model.FundPaymentModel, error)
	Update(ctx context.Context, p *model.FundPaymentModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Registrar owns the write-side invariants of the dues engine.
type Registrar struct {
	store PaymentStore
	now   func() time.Time
}

func NewRegistrar(store PaymentStore) *Registrar {
	return &Registrar{store: store, now: time.Now}
}

// RegisterInput is one registration request. Amount and PaidAt are optional;
// Amount defaults to the configured weekly amount, PaidAt to today.
type RegisterInput struct {
	StudentID  uuid.UUID
	WeekNumber int
	Amount     *float64
	PaidAt     *time.Time
	Note       *string
}

// Register appends exactly one payment row. A second payment for the same
// (student, week) fails with ErrDuplicateWeek; it is never overwritten or
// merged. The store's unique constraint catches the concurrent case the
// pre-check cannot.
func (r *Registrar) Register(ctx context.Context, in RegisterInput, settings Settings) (*model.FundPaymentModel, error) {
	if in.WeekNumber < 1 {
		return nil, ErrInvalidWeek
	}

	ok, err := r.store.StudentExists(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStudentNotFound
	}

	taken, err := r.store.WeekTaken(ctx, in.StudentID, in.WeekNumber, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateWeek
	}

	amount := settings.WeeklyAmount
	if in.Amount != nil {
		amount = *in.Amount
	}
	paidAt := r.now()
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}

	row := &model.FundPaymentModel{
		FundPaymentStudentID:  in.StudentID,
		FundPaymentWeekNumber: in.WeekNumber,
		FundPaymentAmount:     amount,
		FundPaymentPaidAt:     paidAt,
		FundPaymentNote:       in.Note,
	}
	if err := r.store.Insert(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// WeekResult is the outcome of one week inside a bulk registration.
type WeekResult struct {
	WeekNumber int                     `json:"week_number"`
	Payment    *model.FundPaymentModel `json:"payment,omitempty"`
	Err        error                   `json:"-"`
}

// RegisterMany registers several weeks for one student, best effort: each
// week commits independently and a failed week does not roll back the ones
// before it. The admin UI surfaces per-week results.
func (r *Registrar) RegisterMany(ctx context.Context, studentID uuid.UUID, weeks []int, amount *float64, paidAt *time.Time, note *string, settings Settings) []WeekResult {
	results := make([]WeekResult, 0, len(weeks))
	for _, w := range weeks {
		p, err := r.Register(ctx, RegisterInput{
			StudentID:  studentID,
			WeekNumber: w,
			Amount:     amount,
			PaidAt:     paidAt,
			Note:       note,
		}, settings)
		results = append(results, WeekResult{WeekNumber: w, Payment: p, Err: err})
	}
	return results
}

// PaymentPatch carries the sparse edit of a payment row; only non-nil
// fields are applied.
type PaymentPatch struct {
	WeekNumber *int
	Amount     *float64
	PaidAt     *time.Time
	Note       *string
}

// Edit applies a sparse patch. Moving a payment onto a week already covered
// for the same student fails with ErrDuplicateWeek; the DB constraint would
// reject it anyway, the pre-check just produces a clean error.
func (r *Registrar) Edit(ctx context.Context, id uuid.UUID, patch PaymentPatch) (*model.FundPaymentModel, error) {
	row, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrPaymentNotFound
	}

	if patch.WeekNumber != nil && *patch.WeekNumber != row.FundPaymentWeekNumber {
		if *patch.WeekNumber < 1 {
			return nil, ErrInvalidWeek
		}
		taken, err := r.store.WeekTaken(ctx, row.FundPaymentStudentID, *patch.WeekNumber, &row.FundPaymentID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateWeek
		}
		row.FundPaymentWeekNumber = *patch.WeekNumber
	}
	if patch.Amount != nil {
		row.FundPaymentAmount = *patch.Amount
	}
	if patch.PaidAt != nil {
		row.FundPaymentPaidAt = *patch.PaidAt
	}
	if patch.Note != nil {
		row.FundPaymentNote = patch.Note
	}

	if err := r.store.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Remove deletes one payment row.
func (r *Registrar) Remove(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
