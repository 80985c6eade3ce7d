package booking

import (
	"net/http"
	"time"

	"github.com/reservalasala/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotTaken        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidDuration  = apperror.New(http.StatusBadRequest, "duration must be at least one hour")
	ErrPastDate         = apperror.New(http.StatusBadRequest, "cannot create booking on a past date")
	ErrOutsideGridHours = apperror.New(http.StatusBadRequest, "booking falls outside the reservable hours")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date")
)

// Booking reserves a room for whole hours on a single calendar day.
// Date carries only the day; the occupied interval is
// [StartHour, StartHour+Duration) in whole hours.
type Booking struct {
	ID            string
	UserID        string
	UserFirstName string
	UserLastName  string
	UserSector    string
	RoomID        string
	RoomName      string
	Date          time.Time
	StartHour     int
	Duration      int
	CreatedAt     time.Time
}

// Filter narrows booking listings.
type Filter struct {
	UserID    string
	RoomID    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
