package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testSettings = Settings{
	StartDate:    date(2025, 9, 8),
	WeeklyAmount: 5,
	LateFee:      7,
	MaxWeeks:     17,
	Goal:         2000,
}

func TestCurrentWeek(t *testing.T) {
	start := date(2025, 9, 8)

	tests := []struct {
		name     string
		now      time.Time
		maxWeeks int
		want     int
	}{
		{"before start clamps to 1", date(2025, 8, 1), 17, 1},
		{"day before start", date(2025, 9, 7), 17, 1},
		{"first day is week 1", date(2025, 9, 8), 17, 1},
		{"sixth day still week 1", date(2025, 9, 14), 17, 1},
		{"seventh day rolls to week 2", date(2025, 9, 15), 17, 2},
		{"four weeks elapsed", date(2025, 10, 6), 17, 5},
		{"exactly at cap", start.AddDate(0, 0, 17*7), 17, 17},
		{"far beyond cap stays at cap", date(2030, 1, 1), 17, 17},
		{"one year out", start.AddDate(1, 0, 0), 17, 17},
		{"time of day ignored", date(2025, 9, 15).Add(23*time.Hour + 59*time.Minute), 17, 2},
		{"maxWeeks floor of 1", date(2025, 10, 6), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentWeek(start, tt.now, tt.maxWeeks))
		})
	}
}

func TestComputeStatus_ConcreteScenario(t *testing.T) {
	// 2025-10-06 is 4 whole weeks past 2025-09-08, so week 5 is running.
	now := date(2025, 10, 6)
	payments := []PaymentRecord{
		{WeekNumber: 1, Amount: 5},
		{WeekNumber: 2, Amount: 5},
		{WeekNumber: 3, Amount: 7},
	}

	got := ComputeStatus(payments, testSettings, now)

	assert.Equal(t, 5, got.CurrentWeek)
	assert.Equal(t, 3, got.WeeksPaid)
	assert.Equal(t, 2, got.WeeksPending)
	assert.Equal(t, 14.0, got.AmountOwed)
	assert.Equal(t, 17.0, got.TotalPaid)
	assert.False(t, got.IsUpToDate)
}

func TestComputeStatus_ZeroPayments(t *testing.T) {
	now := date(2025, 10, 6) // week 5
	got := ComputeStatus(nil, testSettings, now)

	assert.Equal(t, 5, got.WeeksPending)
	assert.Equal(t, 35.0, got.AmountOwed)
	assert.Equal(t, 0.0, got.TotalPaid)
	assert.False(t, got.IsUpToDate)
}

func TestComputeStatus_PrepaidAheadFloorsAtZero(t *testing.T) {
	now := date(2025, 9, 20) // week 2
	payments := []PaymentRecord{
		{WeekNumber: 1, Amount: 5},
		{WeekNumber: 2, Amount: 5},
		{WeekNumber: 3, Amount: 5},
		{WeekNumber: 4, Amount: 5},
	}

	got := ComputeStatus(payments, testSettings, now)

	assert.Equal(t, 0, got.WeeksPending)
	assert.Equal(t, 0.0, got.AmountOwed)
	assert.True(t, got.IsUpToDate)
}

func TestComputeStatus_Exoneration(t *testing.T) {
	now := date(2025, 10, 6) // week 5

	// A zero-amount record marks the week as addressed but adds nothing to
	// the total; a missing week does the opposite.
	payments := []PaymentRecord{
		{WeekNumber: 1, Amount: 5},
		{WeekNumber: 2, Amount: 0}, // exonerated
	}

	got := ComputeStatus(payments, testSettings, now)

	assert.Equal(t, 2, got.WeeksPaid)
	assert.Equal(t, 5.0, got.TotalPaid)
	assert.Equal(t, 3, got.WeeksPending)
	assert.Equal(t, 21.0, got.AmountOwed)
}

func TestComputeStatus_CountBasedNotSlotBased(t *testing.T) {
	now := date(2025, 10, 6) // week 5

	// Out-of-order week numbers still count as two credits.
	payments := []PaymentRecord{
		{WeekNumber: 5, Amount: 5},
		{WeekNumber: 3, Amount: 5},
	}

	got := ComputeStatus(payments, testSettings, now)

	assert.Equal(t, 2, got.WeeksPaid)
	assert.Equal(t, 3, got.WeeksPending)
}

func TestComputeStatus_Invariants(t *testing.T) {
	histories := [][]PaymentRecord{
		nil,
		{{WeekNumber: 1, Amount: 0}},
		{{WeekNumber: 1, Amount: 5}, {WeekNumber: 2, Amount: 7}},
		{{WeekNumber: 1, Amount: 5}, {WeekNumber: 2, Amount: 5}, {WeekNumber: 3, Amount: 5},
			{WeekNumber: 4, Amount: 5}, {WeekNumber: 5, Amount: 5}, {WeekNumber: 6, Amount: 5},
			{WeekNumber: 7, Amount: 5}, {WeekNumber: 8, Amount: 5}},
	}
	nows := []time.Time{
		date(2025, 8, 1),
		date(2025, 9, 8),
		date(2025, 10, 6),
		date(2026, 6, 1),
	}
	for _, h := range histories {
		for _, now := range nows {
			got := ComputeStatus(h, testSettings, now)
			assert.GreaterOrEqual(t, got.WeeksPending, 0)
			assert.GreaterOrEqual(t, got.AmountOwed, 0.0)
			assert.Equal(t, got.WeeksPending == 0, got.IsUpToDate,
				"isUpToDate must hold iff weeksPending == 0")
		}
	}
}

func TestAggregate(t *testing.T) {
	now := date(2025, 10, 6) // week 5
	paid := func(n int) []PaymentRecord {
		out := make([]PaymentRecord, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, PaymentRecord{WeekNumber: i, Amount: 5})
		}
		return out
	}

	students := []StudentEntry{
		{StudentID: uuid.New(), Name: "Ana", Payments: paid(5)},   // up to date
		{StudentID: uuid.New(), Name: "Bruno", Payments: paid(3)}, // owes 14
		{StudentID: uuid.New(), Name: "Carla", Payments: paid(1)}, // owes 28
		{StudentID: uuid.New(), Name: "Abel", Payments: paid(3)},  // owes 14, ties with Bruno
	}

	got := Aggregate(students, testSettings, now)

	assert.Equal(t, 5, got.CurrentWeek)
	assert.Equal(t, 60.0, got.TotalCollected)
	assert.Equal(t, 1, got.StudentsUpToDate)
	assert.Equal(t, 3, got.StudentsPending)
	assert.InDelta(t, 3.0, got.Percentage, 1e-9) // 60 / 2000 * 100

	require.Len(t, got.TopDebtors, 3)
	assert.Equal(t, "Carla", got.TopDebtors[0].Name)
	// Tie on 14 owed: name ascending.
	assert.Equal(t, "Abel", got.TopDebtors[1].Name)
	assert.Equal(t, "Bruno", got.TopDebtors[2].Name)

	for _, d := range got.TopDebtors {
		assert.Greater(t, d.AmountOwed, 0.0, "zero debtors never rank")
	}
}

func TestAggregate_RankingCapAndGoalless(t *testing.T) {
	now := date(2025, 10, 6)
	students := make([]StudentEntry, 0, 15)
	for i := 0; i < 15; i++ {
		students = append(students, StudentEntry{
			StudentID: uuid.New(),
			Name:      string(rune('a' + i)),
		})
	}

	s := testSettings
	s.Goal = 0
	got := Aggregate(students, s, now)

	assert.Len(t, got.TopDebtors, RankingSize)
	assert.Equal(t, 0.0, got.Percentage, "no goal means no percentage, not a division by zero")
}

func TestAggregate_ZeroLateFeeNeverRanks(t *testing.T) {
	now := date(2025, 10, 6) // week 5

	s := testSettings
	s.LateFee = 0
	students := []StudentEntry{
		{StudentID: uuid.New(), Name: "Ana"}, // 5 weeks behind, owes 0
	}

	got := Aggregate(students, s, now)

	// Behind on weeks, so still counted as pending.
	assert.Equal(t, 1, got.StudentsPending)
	assert.Equal(t, 0, got.StudentsUpToDate)
	// But owing nothing keeps them out of the ranking entirely.
	assert.Empty(t, got.TopDebtors)
}

func TestAggregate_PercentageUnclamped(t *testing.T) {
	now := date(2025, 10, 6)
	students := []StudentEntry{
		{StudentID: uuid.New(), Name: "Ana", Payments: []PaymentRecord{{WeekNumber: 1, Amount: 5000}}},
	}

	got := Aggregate(students, testSettings, now)
	assert.Greater(t, got.Percentage, 100.0)
}

func TestPaidWeeks_FiltersExonerations(t *testing.T) {
	payments := []PaymentRecord{
		{WeekNumber: 1, Amount: 5},
		{WeekNumber: 2, Amount: 0}, // exonerated: addressed, but not "paid"
		{WeekNumber: 4, Amount: 7},
	}

	got := PaidWeeks(payments)

	assert.Equal(t, map[int]bool{1: true, 4: true}, got)
}
