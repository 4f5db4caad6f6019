package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusDenied    ReservationStatus = "denied"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a room reservation for a specific date and time interval
type Reservation struct {
	ID     int64
	RoomID int64
	UserID int64

	Date      time.Time // calendar day, no time component
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus

	// Computed at creation from the room's hourly price
	TotalPrice float64

	// Denormalized data for history
	RoomName     string
	BuildingName string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies returns true if the reservation occupies its time interval.
// Both the conflict check and the availability view rely on this single
// predicate: pending and confirmed reservations block the interval,
// denied and cancelled ones never do.
func (r *Reservation) Occupies() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if no forward status transition is allowed.
// A confirmed reservation is terminal for approval purposes but may still
// be cancelled by the requester (subject to the cancellation cutoff).
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusConfirmed || r.Status == StatusDenied || r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation status allows cancellation
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// StartsAt returns the reservation start as a point in time (local timezone)
func (r *Reservation) StartsAt() (time.Time, error) {
	minutes, err := r.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.Local)
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// Overlaps reports whether the reservation interval overlaps [start, end).
// Half-open semantics: an interval ending exactly where another starts
// does not overlap.
func (r *Reservation) Overlaps(start, end types.TimeString) bool {
	return r.StartTime.IsBefore(end) && r.EndTime.IsAfter(start)
}

// OccupyingStatuses statuses that block a time interval
var OccupyingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses statuses that never conflict with new reservations
var InactiveStatuses = []ReservationStatus{
	StatusDenied,
	StatusCancelled,
}

// RoomReservationsFilter filter for listing a room's reservations
type RoomReservationsFilter struct {
	RoomID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *ReservationStatus
	IncludeInactive bool // include denied and cancelled reservations
}
