package booking

import (
	"context"
	"errors"
	"time"

	"github.com/reservalasala/room-booking-backend/internal/room"
	"github.com/reservalasala/room-booking-backend/internal/schedule"
)

type CreateRequest struct {
	UserID    string
	RoomID    string
	Date      time.Time
	StartHour int
	Duration  int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// Cancel removes a booking. Only the owner or an administrator may cancel.
	Cancel(ctx context.Context, id string, requesterID string, isAdmin bool) error
	// WeekGrid returns the Monday-to-Friday availability grid of a room for
	// the week containing ref.
	WeekGrid(ctx context.Context, roomID string, ref time.Time, currentUserID string) (*WeekGrid, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	now         func() time.Time
}

func NewService(repo Repository, roomService room.Service) Service {
	return NewServiceWithNow(repo, roomService, time.Now)
}

// NewServiceWithNow injects the wall clock used for past-date and past-slot
// decisions.
func NewServiceWithNow(repo Repository, roomService room.Service, now func() time.Time) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		now:         now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Room must exist.
	r, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	day := dateOnly(req.Date)

	// 2. Advisory pre-flight against the current snapshot. Two concurrent
	// callers can both pass this; the repository re-checks at write time.
	existing, err := s.repo.ListForRoomRange(ctx, req.RoomID, day, day)
	if err != nil {
		return nil, err
	}

	cand := schedule.Candidate{
		RoomID:    req.RoomID,
		Date:      day,
		StartHour: req.StartHour,
		Duration:  req.Duration,
	}
	decision := schedule.ValidateCandidate(cand, toScheduleBookings(existing), s.now())
	if !decision.Accepted {
		switch decision.Reason {
		case schedule.ReasonInvalidDuration:
			return nil, ErrInvalidDuration
		case schedule.ReasonPastDate:
			return nil, ErrPastDate
		case schedule.ReasonSlotOverlap:
			return nil, ErrSlotTaken
		default:
			return nil, ErrSlotTaken
		}
	}

	// 3. Keep the booking inside the reservable hours of the grid.
	if req.StartHour < schedule.OpenHour || req.StartHour+req.Duration > schedule.CloseHour {
		return nil, ErrOutsideGridHours
	}

	b := &Booking{
		UserID:    req.UserID,
		RoomID:    req.RoomID,
		RoomName:  r.Name,
		Date:      day,
		StartHour: req.StartHour,
		Duration:  req.Duration,
	}

	// 4. Write. The repository performs the authoritative overlap check in
	// the same statement, so a lost race surfaces as ErrSlotTaken here.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id string, requesterID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.UserID != requesterID && !isAdmin {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) WeekGrid(ctx context.Context, roomID string, ref time.Time, currentUserID string) (*WeekGrid, error) {
	r, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	window := schedule.DeriveWeekWindow(ref)

	bookings, err := s.repo.ListForRoomRange(ctx, roomID, window[0], window[len(window)-1])
	if err != nil {
		return nil, err
	}

	return buildWeekGrid(roomID, r.Name, window, bookings, s.now(), currentUserID), nil
}

// dateOnly strips the clock part, keeping the calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
