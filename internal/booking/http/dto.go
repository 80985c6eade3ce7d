package http

import (
	"time"

	"github.com/reservalasala/room-booking-backend/internal/booking"
	roomHttp "github.com/reservalasala/room-booking-backend/internal/room/http"
	"github.com/reservalasala/room-booking-backend/internal/schedule"
	userHttp "github.com/reservalasala/room-booking-backend/internal/user/http"
)

const dateLayout = "2006-01-02"

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	RoomID    string `form:"room_id" binding:"omitempty,uuid"`
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=200"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=date start_hour created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.DateFrom != "" {
		if _, err := time.Parse(dateLayout, r.DateFrom); err != nil {
			return booking.ErrInvalidDate
		}
	}
	if r.DateTo != "" {
		if _, err := time.Parse(dateLayout, r.DateTo); err != nil {
			return booking.ErrInvalidDate
		}
	}
	return nil
}

type BookingResponse struct {
	ID        string           `json:"id"`
	User      userHttp.UserTag `json:"user"`
	Room      roomHttp.RoomTag `json:"room"`
	Date      string           `json:"date"`
	StartHour int              `json:"start_hour"`
	EndHour   int              `json:"end_hour"`
	Duration  int              `json:"duration"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		User: userHttp.UserTag{
			ID:        b.UserID,
			FirstName: b.UserFirstName,
			LastName:  b.UserLastName,
			Sector:    b.UserSector,
		},
		Room:      roomHttp.RoomTag{ID: b.RoomID, Name: b.RoomName},
		Date:      b.Date.Format(dateLayout),
		StartHour: b.StartHour,
		EndHour:   b.StartHour + b.Duration,
		Duration:  b.Duration,
		CreatedAt: b.CreatedAt,
	}
}

type CreateBookingRequest struct {
	RoomID    string `json:"room_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartHour int    `json:"start_hour" binding:"min=0,max=23"`
	Duration  int    `json:"duration" binding:"required,min=1,max=12"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return booking.ErrInvalidDate
	}
	return nil
}

// ParsedDate returns the request date as a calendar day. Call Validate first.
func (r *CreateBookingRequest) ParsedDate() time.Time {
	t, _ := time.Parse(dateLayout, r.Date)
	return t
}

// WeekGridRequest defines query parameters for the weekly grid endpoint.
// Date may be any day of the wanted week; it defaults to today.
type WeekGridRequest struct {
	Date string `form:"date"`
}

// Validate performs custom validation for WeekGridRequest.
func (r *WeekGridRequest) Validate() error {
	if r.Date != "" {
		if _, err := time.Parse(dateLayout, r.Date); err != nil {
			return booking.ErrInvalidDate
		}
	}
	return nil
}

type SlotResponse struct {
	Hour    int              `json:"hour"`
	State   string           `json:"state"`
	Booking *BookingResponse `json:"booking,omitempty"`
	IsOwner bool             `json:"is_owner"`
}

type DayGridResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type WeekGridResponse struct {
	Room      roomHttp.RoomTag  `json:"room"`
	OpenHour  int               `json:"open_hour"`
	CloseHour int               `json:"close_hour"`
	Days      []DayGridResponse `json:"days"`
}

func NewWeekGridResponse(g *booking.WeekGrid) WeekGridResponse {
	days := make([]DayGridResponse, len(g.Days))
	for i, d := range g.Days {
		slots := make([]SlotResponse, len(d.Slots))
		for j, s := range d.Slots {
			slot := SlotResponse{
				Hour:    s.Hour,
				State:   s.State.String(),
				IsOwner: s.IsOwner,
			}
			if s.Booking != nil {
				br := NewBookingResponse(s.Booking)
				slot.Booking = &br
			}
			slots[j] = slot
		}
		days[i] = DayGridResponse{
			Date:  d.Date.Format(dateLayout),
			Slots: slots,
		}
	}

	return WeekGridResponse{
		Room:      roomHttp.RoomTag{ID: g.RoomID, Name: g.RoomName},
		OpenHour:  schedule.OpenHour,
		CloseHour: schedule.CloseHour,
		Days:      days,
	}
}
