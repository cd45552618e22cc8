package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Transitions(t *testing.T) {
	tests := []struct {
		status     BookingStatus
		canConfirm bool
		canCancel  bool
		active     bool
		terminal   bool
	}{
		{BookingStatusCreated, true, true, true, false},
		{BookingStatusConfirmed, false, true, true, false},
		{BookingStatusCancelled, false, false, false, true},
		{BookingStatusCompleted, false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}
