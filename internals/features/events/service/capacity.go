package service

import (
	"errors"
	"math"
)

var (
	ErrInsufficientCapacity = errors.New("not enough tickets remain for this event")
	ErrInvalidQuantity      = errors.New("quantity must be >= 1")
)

// Available returns how many tickets remain given the event cap and the
// quantity already confirmed. capped is false for uncapped events, in which
// case remaining is meaningless.
func Available(maxTickets *int, confirmed int) (remaining int, capped bool) {
	if maxTickets == nil {
		return 0, false
	}
	remaining = *maxTickets - confirmed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// CheckQuantity enforces the capacity rule for a create or an edit.
// previousConfirmed is the quantity this same sale already holds in
// confirmed state (0 on create, or when the sale was pending/cancelled):
// editing a confirmed sale credits its own tickets back before the check.
// Pending and cancelled sales never count against capacity.
func CheckQuantity(maxTickets *int, confirmed, previousConfirmed, requested int) error {
	if requested < 1 {
		return ErrInvalidQuantity
	}
	remaining, capped := Available(maxTickets, confirmed)
	if !capped {
		return nil
	}
	if requested > remaining+previousConfirmed {
		return ErrInsufficientCapacity
	}
	return nil
}

// Total recomputes a sale total from the snapshotted unit price. Rounded to
// the cent to keep float arithmetic out of stored totals.
func Total(unitPrice float64, quantity int) float64 {
	return math.Round(unitPrice*float64(quantity)*100) / 100
}
