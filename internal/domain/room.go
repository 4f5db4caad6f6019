package domain

import "time"

// Room represents a bookable room inside a building
type Room struct {
	ID         int64
	BuildingID int64

	// Denormalized from the owning building: the user allowed to
	// approve or deny reservations for this room
	OwnerID int64

	Name     string
	Category string
	Capacity int

	HourlyPrice float64
	IsFree      bool // free-of-charge rooms always price to zero

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Building represents a physical location containing rooms.
// Its weekly schedule is the fallback for rooms without one of their own.
type Building struct {
	ID      int64
	OwnerID int64

	Name       string
	Street     string
	Number     string
	City       string
	State      string
	PostalCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceFor computes the total price for occupying the room for the given
// number of minutes. Duration is fractional hours, not rounded.
func (r *Room) PriceFor(durationMinutes int) float64 {
	if r.IsFree {
		return 0
	}
	return r.HourlyPrice * float64(durationMinutes) / 60.0
}
