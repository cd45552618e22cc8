package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	slot := &TimeSlot{
		StartTime: base,
		EndTime:   base.Add(time.Hour),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "identical interval",
			start: base,
			end:   base.Add(time.Hour),
			want:  true,
		},
		{
			name:  "candidate starts inside",
			start: base.Add(30 * time.Minute),
			end:   base.Add(90 * time.Minute),
			want:  true,
		},
		{
			name:  "candidate ends inside",
			start: base.Add(-30 * time.Minute),
			end:   base.Add(30 * time.Minute),
			want:  true,
		},
		{
			name:  "candidate contains slot",
			start: base.Add(-time.Hour),
			end:   base.Add(2 * time.Hour),
			want:  true,
		},
		{
			name:  "candidate inside slot",
			start: base.Add(15 * time.Minute),
			end:   base.Add(45 * time.Minute),
			want:  true,
		},
		{
			name:  "back-to-back after slot",
			start: base.Add(time.Hour),
			end:   base.Add(2 * time.Hour),
			want:  false,
		},
		{
			name:  "back-to-back before slot",
			start: base.Add(-time.Hour),
			end:   base,
			want:  false,
		},
		{
			name:  "fully before",
			start: base.Add(-3 * time.Hour),
			end:   base.Add(-2 * time.Hour),
			want:  false,
		},
		{
			name:  "fully after",
			start: base.Add(2 * time.Hour),
			end:   base.Add(3 * time.Hour),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.start, tt.end))
		})
	}
}

func TestTimeSlot_DurationMinutes(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	slot := &TimeSlot{StartTime: start, EndTime: start.Add(90 * time.Minute)}

	assert.Equal(t, 90, slot.DurationMinutes())
}

func TestTimeSlot_StatusHelpers(t *testing.T) {
	slot := &TimeSlot{Status: SlotStatusAvailable}
	assert.True(t, slot.IsAvailable())
	assert.False(t, slot.IsBooked())

	slot.Status = SlotStatusBooked
	assert.True(t, slot.IsBooked())
	assert.False(t, slot.IsAvailable())

	slot.Status = SlotStatusCancelled
	assert.True(t, slot.IsCancelled())
}

func TestSlotPatch_ChangesTime(t *testing.T) {
	spec := "Go"
	start := time.Now()

	assert.False(t, (&SlotPatch{}).ChangesTime())
	assert.False(t, (&SlotPatch{Specialization: &spec}).ChangesTime())
	assert.True(t, (&SlotPatch{StartTime: &start}).ChangesTime())
	assert.True(t, (&SlotPatch{EndTime: &start}).ChangesTime())
}
