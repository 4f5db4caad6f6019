package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func interval(start, end string) domain.TimeInterval {
	return domain.TimeInterval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func reservation(start, end string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

func slot(start, end string, status domain.SlotStatus) domain.Slot {
	return domain.Slot{Start: types.TimeString(start), End: types.TimeString(end), Status: status}
}

func TestResolveSlots(t *testing.T) {
	tests := []struct {
		name         string
		intervals    []domain.TimeInterval
		reservations []*domain.Reservation
		want         []domain.Slot
	}{
		{
			name:      "no reservations, whole interval available",
			intervals: []domain.TimeInterval{interval("08:00", "18:00")},
			want:      []domain.Slot{slot("08:00", "18:00", domain.SlotAvailable)},
		},
		{
			name:      "confirmed reservation splits the interval",
			intervals: []domain.TimeInterval{interval("08:00", "18:00")},
			reservations: []*domain.Reservation{
				reservation("10:00", "12:00", domain.StatusConfirmed),
			},
			want: []domain.Slot{
				slot("08:00", "10:00", domain.SlotAvailable),
				slot("10:00", "12:00", domain.SlotOccupied),
				slot("12:00", "18:00", domain.SlotAvailable),
			},
		},
		{
			name:      "pending reservation marks slot pending",
			intervals: []domain.TimeInterval{interval("08:00", "12:00")},
			reservations: []*domain.Reservation{
				reservation("08:00", "09:00", domain.StatusPending),
			},
			want: []domain.Slot{
				slot("08:00", "09:00", domain.SlotPending),
				slot("09:00", "12:00", domain.SlotAvailable),
			},
		},
		{
			name:      "cancelled and denied reservations are ignored",
			intervals: []domain.TimeInterval{interval("08:00", "12:00")},
			reservations: []*domain.Reservation{
				reservation("09:00", "10:00", domain.StatusCancelled),
				reservation("10:00", "11:00", domain.StatusDenied),
			},
			want: []domain.Slot{slot("08:00", "12:00", domain.SlotAvailable)},
		},
		{
			name: "reservation spanning a template gap is clipped per interval",
			intervals: []domain.TimeInterval{
				interval("08:00", "12:00"),
				interval("14:00", "18:00"),
			},
			reservations: []*domain.Reservation{
				reservation("11:00", "15:00", domain.StatusConfirmed),
			},
			want: []domain.Slot{
				slot("08:00", "11:00", domain.SlotAvailable),
				slot("11:00", "12:00", domain.SlotOccupied),
				slot("14:00", "15:00", domain.SlotOccupied),
				slot("15:00", "18:00", domain.SlotAvailable),
			},
		},
		{
			name:      "back to back reservations leave no available gap",
			intervals: []domain.TimeInterval{interval("08:00", "12:00")},
			reservations: []*domain.Reservation{
				reservation("08:00", "10:00", domain.StatusConfirmed),
				reservation("10:00", "12:00", domain.StatusPending),
			},
			want: []domain.Slot{
				slot("08:00", "10:00", domain.SlotOccupied),
				slot("10:00", "12:00", domain.SlotPending),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSlots(tt.intervals, tt.reservations)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSlots_Ordered(t *testing.T) {
	slots := resolveSlots(
		[]domain.TimeInterval{interval("08:00", "12:00"), interval("14:00", "18:00")},
		[]*domain.Reservation{reservation("09:00", "10:00", domain.StatusConfirmed)},
	)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.IsBefore(slots[i].Start),
			"slots must be ordered by start time")
	}
}

func TestResolveSlotsWithGranularity(t *testing.T) {
	t.Run("partial last unit is clipped", func(t *testing.T) {
		// 08:00-11:30 с почасовой гранулярностью: последняя единица 11:00-11:30
		slots := resolveSlotsWithGranularity(
			[]domain.TimeInterval{interval("08:00", "11:30")},
			nil,
			60,
		)

		require.Len(t, slots, 4)
		assert.Equal(t, slot("08:00", "09:00", domain.SlotAvailable), slots[0])
		assert.Equal(t, slot("11:00", "11:30", domain.SlotAvailable), slots[3])
	})

	t.Run("partial overlap marks the whole unit", func(t *testing.T) {
		slots := resolveSlotsWithGranularity(
			[]domain.TimeInterval{interval("08:00", "12:00")},
			[]*domain.Reservation{reservation("09:30", "10:30", domain.StatusConfirmed)},
			60,
		)

		require.Len(t, slots, 4)
		assert.Equal(t, domain.SlotAvailable, slots[0].Status) // 08:00-09:00
		assert.Equal(t, domain.SlotOccupied, slots[1].Status)  // 09:00-10:00
		assert.Equal(t, domain.SlotOccupied, slots[2].Status)  // 10:00-11:00
		assert.Equal(t, domain.SlotAvailable, slots[3].Status) // 11:00-12:00
	})

	t.Run("confirmed takes precedence over pending", func(t *testing.T) {
		slots := resolveSlotsWithGranularity(
			[]domain.TimeInterval{interval("08:00", "09:00")},
			[]*domain.Reservation{
				reservation("08:00", "08:30", domain.StatusPending),
				reservation("08:30", "09:00", domain.StatusConfirmed),
			},
			60,
		)

		require.Len(t, slots, 1)
		assert.Equal(t, domain.SlotOccupied, slots[0].Status)
	})

	t.Run("touching reservation does not mark the unit", func(t *testing.T) {
		slots := resolveSlotsWithGranularity(
			[]domain.TimeInterval{interval("08:00", "10:00")},
			[]*domain.Reservation{reservation("09:00", "10:00", domain.StatusConfirmed)},
			60,
		)

		require.Len(t, slots, 2)
		assert.Equal(t, domain.SlotAvailable, slots[0].Status)
		assert.Equal(t, domain.SlotOccupied, slots[1].Status)
	})
}
