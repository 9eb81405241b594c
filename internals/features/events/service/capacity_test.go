package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAvailable(t *testing.T) {
	tests := []struct {
		name          string
		maxTickets    *int
		confirmed     int
		wantRemaining int
		wantCapped    bool
	}{
		{"uncapped event", nil, 100, 0, false},
		{"untouched cap", intPtr(50), 0, 50, true},
		{"partially sold", intPtr(50), 30, 20, true},
		{"sold out", intPtr(50), 50, 0, true},
		{"oversold floors at zero", intPtr(50), 60, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, capped := Available(tt.maxTickets, tt.confirmed)
			assert.Equal(t, tt.wantRemaining, remaining)
			assert.Equal(t, tt.wantCapped, capped)
		})
	}
}

func TestCheckQuantity(t *testing.T) {
	tests := []struct {
		name              string
		maxTickets        *int
		confirmed         int
		previousConfirmed int
		requested         int
		wantErr           error
	}{
		{"sold-out event rejects one more", intPtr(50), 50, 0, 1, ErrInsufficientCapacity},
		{"exact fit passes", intPtr(50), 40, 0, 10, nil},
		{"one over fails", intPtr(50), 40, 0, 11, ErrInsufficientCapacity},
		{"uncapped never fails", nil, 1000, 0, 500, nil},
		{"edit credits own confirmed quantity back", intPtr(50), 50, 10, 12, nil},
		{"edit beyond credit fails", intPtr(50), 50, 10, 11, ErrInsufficientCapacity},
		{"zero quantity invalid", intPtr(50), 0, 0, 0, ErrInvalidQuantity},
		{"negative quantity invalid", nil, 0, 0, -3, ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckQuantity(tt.maxTickets, tt.confirmed, tt.previousConfirmed, tt.requested)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// A pending sale holds no capacity: the scenario from the admin screen
// where 50 confirmed + 10 pending must still reject a new confirmed single.
func TestPendingSalesDoNotConsumeCapacity(t *testing.T) {
	confirmed := 50 // the pending 10 are simply not in this sum

	err := CheckQuantity(intPtr(50), confirmed, 0, 1)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	remaining, capped := Available(intPtr(50), confirmed)
	assert.True(t, capped)
	assert.Equal(t, 0, remaining)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 25.0, Total(5, 5))
	assert.Equal(t, 0.0, Total(0, 10))
	assert.Equal(t, 7.5, Total(2.5, 3))
	assert.Equal(t, 0.3, Total(0.1, 3)) // rounded, not 0.30000000000000004
}
