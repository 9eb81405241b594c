package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo_backend/internals/features/fund/model"
)

// fakeStore is an in-memory PaymentStore for exercising the registrar
// invariants without a database.
type fakeStore struct {
	students map[uuid.UUID]bool
	rows     map[uuid.UUID]*model.FundPaymentModel
}

func newFakeStore(studentIDs ...uuid.UUID) *fakeStore {
	s := &fakeStore{
		students: map[uuid.UUID]bool{},
		rows:     map[uuid.UUID]*model.FundPaymentModel{},
	}
	for _, id := range studentIDs {
		s.students[id] = true
	}
	return s
}

func (s *fakeStore) StudentExists(_ context.Context, id uuid.UUID) (bool, error) {
	return s.students[id], nil
}

func (s *fakeStore) WeekTaken(_ context.Context, studentID uuid.UUID, week int, excludeID *uuid.UUID) (bool, error) {
	for _, r := range s.rows {
		if excludeID != nil && r.FundPaymentID == *excludeID {
			continue
		}
		if r.FundPaymentStudentID == studentID && r.FundPaymentWeekNumber == week {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) Insert(_ context.Context, p *model.FundPaymentModel) error {
	for _, r := range s.rows {
		if r.FundPaymentStudentID == p.FundPaymentStudentID && r.FundPaymentWeekNumber == p.FundPaymentWeekNumber {
			return ErrDuplicateWeek // mirrors the unique index
		}
	}
	p.FundPaymentID = uuid.New()
	s.rows[p.FundPaymentID] = p
	return nil
}

func (s *fakeStore) Get(_ context.Context, id uuid.UUID) (*model.FundPaymentModel, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *fakeStore) Update(_ context.Context, p *model.FundPaymentModel) error {
	if _, ok := s.rows[p.FundPaymentID]; !ok {
		return ErrPaymentNotFound
	}
	cp := *p
	s.rows[p.FundPaymentID] = &cp
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.rows[id]; !ok {
		return ErrPaymentNotFound
	}
	delete(s.rows, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestRegister_DefaultsAndDuplicateRejection(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	store := newFakeStore(studentID)
	reg := NewRegistrar(store)

	first, err := reg.Register(ctx, RegisterInput{StudentID: studentID, WeekNumber: 3}, testSettings)
	require.NoError(t, err)
	assert.Equal(t, 5.0, first.FundPaymentAmount, "amount defaults to the weekly amount")
	assert.False(t, first.FundPaymentPaidAt.IsZero(), "paidAt defaults to now")

	// Second registration for the same week fails even with a different
	// amount, and the first row is untouched.
	_, err = reg.Register(ctx, RegisterInput{
		StudentID:  studentID,
		WeekNumber: 3,
		Amount:     ptr(7.0),
	}, testSettings)
	assert.ErrorIs(t, err, ErrDuplicateWeek)

	kept, err := store.Get(ctx, first.FundPaymentID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, kept.FundPaymentAmount)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	reg := NewRegistrar(newFakeStore(studentID))

	_, err := reg.Register(ctx, RegisterInput{StudentID: studentID, WeekNumber: 0}, testSettings)
	assert.ErrorIs(t, err, ErrInvalidWeek)

	_, err = reg.Register(ctx, RegisterInput{StudentID: uuid.New(), WeekNumber: 1}, testSettings)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestRegister_ExplicitZeroAmountIsExoneration(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	reg := NewRegistrar(newFakeStore(studentID))

	row, err := reg.Register(ctx, RegisterInput{
		StudentID:  studentID,
		WeekNumber: 2,
		Amount:     ptr(0.0),
	}, testSettings)
	require.NoError(t, err)
	assert.Equal(t, 0.0, row.FundPaymentAmount)
	assert.True(t, row.IsExoneration())
}

func TestRegisterMany_PartialSuccess(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	store := newFakeStore(studentID)
	reg := NewRegistrar(store)

	// Week 2 is already taken; weeks 1 and 3 must still land.
	_, err := reg.Register(ctx, RegisterInput{StudentID: studentID, WeekNumber: 2}, testSettings)
	require.NoError(t, err)

	results := reg.RegisterMany(ctx, studentID, []int{1, 2, 3}, nil, nil, nil, testSettings)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrDuplicateWeek)
	assert.NoError(t, results[2].Err)
	assert.Len(t, store.rows, 3, "earlier successes are not rolled back")
}

func TestEdit_SparsePatch(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	store := newFakeStore(studentID)
	reg := NewRegistrar(store)

	row, err := reg.Register(ctx, RegisterInput{
		StudentID:  studentID,
		WeekNumber: 1,
		Amount:     ptr(5.0),
		Note:       ptr("first"),
	}, testSettings)
	require.NoError(t, err)

	got, err := reg.Edit(ctx, row.FundPaymentID, PaymentPatch{Amount: ptr(7.0)})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.FundPaymentAmount)
	assert.Equal(t, 1, got.FundPaymentWeekNumber, "unsupplied fields untouched")
	require.NotNil(t, got.FundPaymentNote)
	assert.Equal(t, "first", *got.FundPaymentNote)
}

func TestEdit_WeekCollision(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	reg := NewRegistrar(newFakeStore(studentID))

	_, err := reg.Register(ctx, RegisterInput{StudentID: studentID, WeekNumber: 1}, testSettings)
	require.NoError(t, err)
	second, err := reg.Register(ctx, RegisterInput{StudentID: studentID, WeekNumber: 2}, testSettings)
	require.NoError(t, err)

	// Moving week 2 onto week 1 collides.
	_, err = reg.Edit(ctx, second.FundPaymentID, PaymentPatch{WeekNumber: ptr(1)})
	assert.ErrorIs(t, err, ErrDuplicateWeek)

	// Re-submitting the same week is not a collision.
	got, err := reg.Edit(ctx, second.FundPaymentID, PaymentPatch{WeekNumber: ptr(2), Amount: ptr(9.0)})
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.FundPaymentAmount)
}

func TestEditAndRemove_NotFound(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistrar(newFakeStore())

	_, err := reg.Edit(ctx, uuid.New(), PaymentPatch{Amount: ptr(1.0)})
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	err = reg.Remove(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestRegister_PaidAtOverride(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	reg := NewRegistrar(newFakeStore(studentID))

	credited := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	row, err := reg.Register(ctx, RegisterInput{
		StudentID:  studentID,
		WeekNumber: 1,
		PaidAt:     &credited,
	}, testSettings)
	require.NoError(t, err)
	assert.True(t, row.FundPaymentPaidAt.Equal(credited))
}
