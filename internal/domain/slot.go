package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// SlotStatus availability status of a sub-interval of a bookable slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"  // reserved, awaiting owner approval
	SlotOccupied  SlotStatus = "occupied" // reserved and confirmed
)

// Slot a concrete time interval on a specific date with its availability.
// Produced ordered by Start within a single availability query.
type Slot struct {
	Start  types.TimeString
	End    types.TimeString
	Status SlotStatus
}

// IsAvailable returns true if the slot can still be reserved
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}
