package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"promo_backend/internals/features/fund/model"
)

/* =========================================================
   Dues accounting engine.

   Everything here is a pure function of its inputs so the same rules are
   shared by the public dues endpoint, the admin ranking and the fund stats.
========================================================= */

// Settings is the subset of the fund configuration the computations need.
type Settings struct {
	StartDate    time.Time
	WeeklyAmount float64
	LateFee      float64
	MaxWeeks     int
	Goal         float64
}

func SettingsFromModel(m model.FundSettingsModel) Settings {
	return Settings{
		StartDate:    m.FundSettingsStartDate,
		WeeklyAmount: m.FundSettingsWeeklyAmount,
		LateFee:      m.FundSettingsLateFee,
		MaxWeeks:     m.FundSettingsMaxWeeks,
		Goal:         m.FundSettingsGoal,
	}
}

// PaymentRecord is the slice of a payment row the engine cares about.
type PaymentRecord struct {
	WeekNumber int
	Amount     float64
}

// StudentStatus is the derived dues state of one student. Never persisted.
type StudentStatus struct {
	CurrentWeek  int     `json:"current_week"`
	TotalPaid    float64 `json:"total_paid"`
	WeeksPaid    int     `json:"weeks_paid"`
	WeeksPending int     `json:"weeks_pending"`
	AmountOwed   float64 `json:"amount_owed"`
	IsUpToDate   bool    `json:"is_up_to_date"`
}

// StudentEntry is one active student with their payment history, the input
// row for Aggregate.
type StudentEntry struct {
	StudentID uuid.UUID
	Name      string
	Payments  []PaymentRecord
}

// Debtor is one row of the debt ranking.
type Debtor struct {
	StudentID    uuid.UUID `json:"student_id"`
	Name         string    `json:"name"`
	WeeksPending int       `json:"weeks_pending"`
	AmountOwed   float64   `json:"amount_owed"`
}

// FundStats is the promotion-wide rollup.
type FundStats struct {
	CurrentWeek      int      `json:"current_week"`
	TotalCollected   float64  `json:"total_collected"`
	Goal             float64  `json:"goal"`
	Percentage       float64  `json:"percentage"` // raw, may exceed 100
	StudentsUpToDate int      `json:"students_up_to_date"`
	StudentsPending  int      `json:"students_pending"`
	TopDebtors       []Debtor `json:"top_debtors"`
}

// RankingSize caps the debt ranking.
const RankingSize = 10

// CurrentWeek converts a date to a 1-indexed week number since startDate,
// clamped to [1, maxWeeks]. Days are compared at day granularity; partial
// days truncate. This is the single source of truth for elapsed weeks.
func CurrentWeek(startDate, now time.Time, maxWeeks int) int {
	if maxWeeks < 1 {
		maxWeeks = 1
	}
	days := daysBetween(startDate, now)
	if days < 0 {
		return 1
	}
	week := days/7 + 1
	if week < 1 {
		week = 1
	}
	if week > maxWeeks {
		week = maxWeeks
	}
	return week
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// ComputeStatus derives one student's dues state.
//
// The debt model is count-based, not slot-based: every recorded payment
// (exonerations included) credits one week against the number of elapsed
// weeks, regardless of which week numbers the records carry. A student who
// pays out of order is not penalized for the gap.
func ComputeStatus(payments []PaymentRecord, s Settings, now time.Time) StudentStatus {
	week := CurrentWeek(s.StartDate, now, s.MaxWeeks)

	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.Amount
	}

	weeksPaid := len(payments)
	weeksPending := week - weeksPaid
	if weeksPending < 0 {
		weeksPending = 0
	}

	return StudentStatus{
		CurrentWeek:  week,
		TotalPaid:    totalPaid,
		WeeksPaid:    weeksPaid,
		WeeksPending: weeksPending,
		AmountOwed:   float64(weeksPending) * s.LateFee,
		IsUpToDate:   weeksPending == 0,
	}
}

// Aggregate rolls every active student's status into promotion-wide stats.
// The percentage is left unclamped; progress bars clamp at render time.
func Aggregate(students []StudentEntry, s Settings, now time.Time) FundStats {
	stats := FundStats{
		CurrentWeek: CurrentWeek(s.StartDate, now, s.MaxWeeks),
		Goal:        s.Goal,
		TopDebtors:  []Debtor{},
	}

	debtors := make([]Debtor, 0, len(students))
	for _, st := range students {
		status := ComputeStatus(st.Payments, s, now)
		stats.TotalCollected += status.TotalPaid
		if status.IsUpToDate {
			stats.StudentsUpToDate++
		} else {
			stats.StudentsPending++
		}
		// Students owing nothing never enter the ranking. With a zero
		// late fee a student can be behind yet owe nothing; they still
		// count as pending above but carry no debt to rank.
		if status.AmountOwed > 0 {
			debtors = append(debtors, Debtor{
				StudentID:    st.StudentID,
				Name:         st.Name,
				WeeksPending: status.WeeksPending,
				AmountOwed:   status.AmountOwed,
			})
		}
	}

	if s.Goal > 0 {
		stats.Percentage = stats.TotalCollected / s.Goal * 100
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		if debtors[i].AmountOwed != debtors[j].AmountOwed {
			return debtors[i].AmountOwed > debtors[j].AmountOwed
		}
		return debtors[i].Name < debtors[j].Name
	})
	if len(debtors) > RankingSize {
		debtors = debtors[:RankingSize]
	}
	stats.TopDebtors = debtors

	return stats
}

// PaidWeeks returns the set of week numbers already covered by a payment
// with amount > 0. The admin bulk-registration screen uses this to offer
// remaining weeks; note the deliberate asymmetry with ComputeStatus, which
// counts zero-amount exonerations as addressed weeks.
func PaidWeeks(payments []PaymentRecord) map[int]bool {
	out := make(map[int]bool, len(payments))
	for _, p := range payments {
		if p.Amount > 0 {
			out[p.WeekNumber] = true
		}
	}
	return out
}

// RecordsFromModels maps payment rows to engine records.
func RecordsFromModels(rows []model.FundPaymentModel) []PaymentRecord {
	out := make([]PaymentRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, PaymentRecord{WeekNumber: r.FundPaymentWeekNumber, Amount: r.FundPaymentAmount})
	}
	return out
}
