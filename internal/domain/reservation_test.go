package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestReservation_Occupies(t *testing.T) {
	tests := []struct {
		status ReservationStatus
		want   bool
	}{
		{status: StatusPending, want: true},
		{status: StatusConfirmed, want: true},
		{status: StatusDenied, want: false},
		{status: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.want, r.Occupies())
		})
	}
}

func TestReservation_Overlaps(t *testing.T) {
	r := &Reservation{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}

	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  bool
	}{
		{name: "identical interval", start: "10:00", end: "12:00", want: true},
		{name: "contained", start: "10:30", end: "11:30", want: true},
		{name: "overlaps start", start: "09:00", end: "10:30", want: true},
		{name: "overlaps end", start: "11:30", end: "13:00", want: true},
		{name: "covers", start: "09:00", end: "13:00", want: true},
		{name: "touches start", start: "08:00", end: "10:00", want: false},
		{name: "touches end", start: "12:00", end: "14:00", want: false},
		{name: "disjoint before", start: "07:00", end: "08:00", want: false},
		{name: "disjoint after", start: "13:00", end: "14:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReservation_StartsAt(t *testing.T) {
	r := &Reservation{
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("09:30"),
	}

	startsAt, err := r.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local), startsAt)
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusDenied}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
}

func TestRoom_PriceFor(t *testing.T) {
	room := &Room{HourlyPrice: 40.0}

	// 2.5 часа по 40 за час
	assert.InDelta(t, 100.0, room.PriceFor(150), 1e-9)
	// Ровно час
	assert.InDelta(t, 40.0, room.PriceFor(60), 1e-9)
	// Полчаса
	assert.InDelta(t, 20.0, room.PriceFor(30), 1e-9)

	// Бесплатная комната всегда дает 0
	free := &Room{HourlyPrice: 40.0, IsFree: true}
	assert.Zero(t, free.PriceFor(150))
}
