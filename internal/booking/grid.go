package booking

import (
	"time"

	"github.com/reservalasala/room-booking-backend/internal/schedule"
)

// SlotView is one grid cell as shown to the caller. Booking is set only for
// occupied cells.
type SlotView struct {
	Hour    int
	State   schedule.SlotState
	Booking *Booking
	IsOwner bool
}

// DayGrid holds the classified slots of a single weekday.
type DayGrid struct {
	Date  time.Time
	Slots []SlotView
}

// WeekGrid is the weekly availability view of one room, Monday to Friday.
type WeekGrid struct {
	RoomID   string
	RoomName string
	Days     []DayGrid
}

// toScheduleBookings projects stored bookings onto the view the grid core
// consumes.
func toScheduleBookings(bookings []*Booking) []schedule.Booking {
	out := make([]schedule.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = schedule.Booking{
			ID:        b.ID,
			UserID:    b.UserID,
			RoomID:    b.RoomID,
			Date:      b.Date,
			StartHour: b.StartHour,
			Duration:  b.Duration,
		}
	}
	return out
}

// buildWeekGrid classifies every (date, hour) cell of the window against a
// fresh snapshot of the room's bookings. Pure; rebuilt on every call.
func buildWeekGrid(roomID, roomName string, window []time.Time, bookings []*Booking, now time.Time, currentUserID string) *WeekGrid {
	idx := schedule.BuildSlotIndex(toScheduleBookings(bookings), roomID)

	byID := make(map[string]*Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	grid := &WeekGrid{
		RoomID:   roomID,
		RoomName: roomName,
		Days:     make([]DayGrid, 0, len(window)),
	}

	for _, date := range window {
		day := DayGrid{Date: date}
		for _, hour := range schedule.DayHours() {
			info := schedule.ClassifySlot(date, hour, idx, now, currentUserID)
			view := SlotView{
				Hour:    hour,
				State:   info.State,
				IsOwner: info.IsOwner,
			}
			if info.Booking != nil {
				view.Booking = byID[info.Booking.ID]
			}
			day.Slots = append(day.Slots, view)
		}
		grid.Days = append(grid.Days, day)
	}

	return grid
}
