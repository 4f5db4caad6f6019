package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ErrInvalidSchedule is returned for malformed weekly schedules: inverted or
// overlapping intervals, values outside 00:00-24:00, or an inactive day that
// still carries intervals. The write is rejected as a whole, never partially
// applied.
var ErrInvalidSchedule = errors.New("domain: invalid schedule")

// ScheduleOwnerType the kind of entity a weekly schedule belongs to
type ScheduleOwnerType string

const (
	OwnerRoom     ScheduleOwnerType = "room"
	OwnerBuilding ScheduleOwnerType = "building"
)

// TimeInterval a half-open [Start, End) interval within a single day
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate checks start < end and that both bounds fall within 00:00-24:00
func (i TimeInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start %q: %v", ErrInvalidSchedule, i.Start, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end %q: %v", ErrInvalidSchedule, i.End, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: interval %s-%s is inverted or empty", ErrInvalidSchedule, i.Start, i.End)
	}
	return nil
}

// Contains reports whether [start, end) lies entirely within the interval
func (i TimeInterval) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(i.Start) && !end.IsAfter(i.End)
}

// Overlaps reports whether the interval overlaps [start, end), half-open
func (i TimeInterval) Overlaps(start, end types.TimeString) bool {
	return i.Start.IsBefore(end) && i.End.IsAfter(start)
}

// DaySchedule the configuration of a single weekday
type DaySchedule struct {
	Active    bool
	Intervals []TimeInterval
}

// IsBookable returns true if the day is active and has at least one interval
func (d DaySchedule) IsBookable() bool {
	return d.Active && len(d.Intervals) > 0
}

// WeekSchedule the recurring weekly opening-hours template of a room or
// building. Days are indexed by time.Weekday (Sunday = 0).
type WeekSchedule struct {
	days [7]DaySchedule
}

// NewWeekSchedule creates an empty schedule with all days inactive
func NewWeekSchedule() *WeekSchedule {
	return &WeekSchedule{}
}

// SetDay validates and replaces the configuration of a weekday atomically.
// Intervals are stored sorted by start time. An inactive day with non-empty
// intervals is rejected rather than silently normalized.
func (s *WeekSchedule) SetDay(day time.Weekday, active bool, intervals []TimeInterval) error {
	if !active && len(intervals) > 0 {
		return fmt.Errorf("%w: %s is inactive but has %d intervals", ErrInvalidSchedule, day, len(intervals))
	}

	sorted := make([]TimeInterval, len(intervals))
	copy(sorted, intervals)

	for _, interval := range sorted {
		if err := interval.Validate(); err != nil {
			return err
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.IsBefore(sorted[j].Start)
	})

	// Sorted intervals overlap iff a start precedes the previous end
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.IsBefore(sorted[i-1].End) {
			return fmt.Errorf("%w: intervals %s-%s and %s-%s overlap on %s",
				ErrInvalidSchedule,
				sorted[i-1].Start, sorted[i-1].End,
				sorted[i].Start, sorted[i].End,
				day)
		}
	}

	s.days[int(day)] = DaySchedule{Active: active, Intervals: sorted}
	return nil
}

// Day returns the configuration of a weekday
func (s *WeekSchedule) Day(day time.Weekday) DaySchedule {
	return s.days[int(day)]
}

// IsEmpty returns true if no day is active with at least one interval
func (s *WeekSchedule) IsEmpty() bool {
	for _, d := range s.days {
		if d.IsBookable() {
			return false
		}
	}
	return true
}

// ResolveEffectiveDay resolves the schedule that governs a room on a given
// weekday: the room's own day wins when it is active and non-empty,
// otherwise the building's day applies. A nil schedule counts as empty.
//
// Resolution is a pure function of the two templates; no caching is done
// here and none is assumed by callers.
func ResolveEffectiveDay(roomSchedule, buildingSchedule *WeekSchedule, day time.Weekday) DaySchedule {
	if roomSchedule != nil {
		if d := roomSchedule.Day(day); d.IsBookable() {
			return d
		}
	}
	if buildingSchedule != nil {
		if d := buildingSchedule.Day(day); d.IsBookable() {
			return d
		}
	}
	return DaySchedule{}
}
