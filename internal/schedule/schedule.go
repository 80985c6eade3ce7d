// Package schedule implements the booking-grid rules: which hourly slots of a
// room are free, occupied or in the past, and whether a proposed booking would
// overlap an existing one. Everything here is a pure function over snapshots
// supplied by the caller; the package performs no I/O and holds no state, so
// it is safe to call repeatedly and concurrently.
package schedule

import (
	"time"
)

// Grid hours. Slots are whole hours; a booking starting at OpenHour with
// duration 1 occupies [OpenHour, OpenHour+1).
const (
	OpenHour  = 8
	CloseHour = 20
)

// DayHours returns the valid start hours of a day, in ascending order.
func DayHours() []int {
	hours := make([]int, 0, CloseHour-OpenHour)
	for h := OpenHour; h < CloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Booking is the minimal view of a reservation the grid needs.
// Date carries only the calendar day; the clock part is ignored.
type Booking struct {
	ID        string
	UserID    string
	RoomID    string
	Date      time.Time
	StartHour int
	Duration  int
}

// SlotKey identifies a single (date, hour) cell for one room.
// The date is a "YYYY-MM-DD" string so keys compare by calendar day
// regardless of location or monotonic clock readings.
type SlotKey struct {
	Date string
	Hour int
}

// DateKey formats t as the calendar-day key used by SlotIndex.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SlotIndex maps occupied (date, hour) cells of one room to the booking
// claiming them. It is a read model rebuilt from the current booking list;
// it is never the source of truth.
type SlotIndex map[SlotKey]Booking

// BuildSlotIndex indexes every hour claimed by the given room's bookings.
// If two bookings claim the same cell (data that violates the no-overlap
// invariant), the later one in iteration order wins silently.
func BuildSlotIndex(bookings []Booking, roomID string) SlotIndex {
	idx := make(SlotIndex)
	for _, b := range bookings {
		if b.RoomID != roomID {
			continue
		}
		date := DateKey(b.Date)
		for i := 0; i < b.Duration; i++ {
			idx[SlotKey{Date: date, Hour: b.StartHour + i}] = b
		}
	}
	return idx
}

// SlotState classifies a single grid cell.
type SlotState int

const (
	SlotAvailable SlotState = iota
	SlotOccupied
	SlotPast
)

func (s SlotState) String() string {
	switch s {
	case SlotOccupied:
		return "occupied"
	case SlotPast:
		return "past"
	default:
		return "available"
	}
}

// SlotInfo is the result of classifying one cell. Booking is set only when
// the state is SlotOccupied.
type SlotInfo struct {
	State   SlotState
	Booking *Booking
	IsOwner bool
}

// ClassifySlot resolves the state of the (date, hour) cell. A slot is past
// once its end boundary (hour+1 on that date) is at or before now, so the
// 14:00 slot stays bookable until 15:00 sharp. Slots on future dates are
// never past. Occupancy wins over past so finished bookings remain visible.
func ClassifySlot(date time.Time, hour int, idx SlotIndex, now time.Time, currentUserID string) SlotInfo {
	if b, ok := idx[SlotKey{Date: DateKey(date), Hour: hour}]; ok {
		return SlotInfo{
			State:   SlotOccupied,
			Booking: &b,
			IsOwner: b.UserID == currentUserID,
		}
	}

	end := time.Date(date.Year(), date.Month(), date.Day(), hour+1, 0, 0, 0, now.Location())
	if !end.After(now) {
		return SlotInfo{State: SlotPast}
	}

	return SlotInfo{State: SlotAvailable}
}

// RejectReason enumerates the validation outcomes of ValidateCandidate.
// These are expected results returned to the caller, never faults.
type RejectReason string

const (
	ReasonInvalidDuration RejectReason = "invalid-duration"
	ReasonPastDate        RejectReason = "past-date"
	ReasonSlotOverlap     RejectReason = "slot-overlap"
)

// Decision is the outcome of validating a candidate booking.
type Decision struct {
	Accepted bool
	Reason   RejectReason
}

// Candidate is a proposed booking not yet written to the store.
type Candidate struct {
	RoomID    string
	Date      time.Time
	StartHour int
	Duration  int
}

// ValidateCandidate checks a proposed booking against the caller's snapshot
// of existing bookings. Entries for another room or day are ignored, so
// passing an unfiltered list is harmless.
//
// This is an advisory pre-flight check: two clients may both pass it before
// either write lands. The authoritative overlap check runs at write time
// against the database (see the booking repository).
func ValidateCandidate(cand Candidate, existing []Booking, today time.Time) Decision {
	if cand.Duration < 1 {
		return Decision{Reason: ReasonInvalidDuration}
	}

	// Past dates are rejected before any overlap arithmetic.
	if DateKey(cand.Date) < DateKey(today) {
		return Decision{Reason: ReasonPastDate}
	}

	date := DateKey(cand.Date)
	for _, b := range existing {
		if b.RoomID != cand.RoomID || DateKey(b.Date) != date {
			continue
		}
		// Half-open intervals [start, start+duration) intersect.
		if cand.StartHour < b.StartHour+b.Duration && b.StartHour < cand.StartHour+cand.Duration {
			return Decision{Reason: ReasonSlotOverlap}
		}
	}

	return Decision{Accepted: true}
}
