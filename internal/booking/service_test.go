package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservalasala/room-booking-backend/internal/room"
	"github.com/reservalasala/room-booking-backend/internal/schedule"
)

// fakeRepository keeps bookings in memory and mirrors the overlap guard of
// the real insert statement.
type fakeRepository struct {
	bookings []*Booking
	nextID   int
}

func (f *fakeRepository) Create(ctx context.Context, b *Booking) error {
	for _, existing := range f.bookings {
		if existing.RoomID != b.RoomID || !existing.Date.Equal(b.Date) {
			continue
		}
		if existing.StartHour < b.StartHour+b.Duration && b.StartHour < existing.StartHour+existing.Duration {
			return ErrSlotTaken
		}
	}

	f.nextID++
	b.ID = fmt.Sprintf("booking-%d", f.nextID)
	b.CreatedAt = time.Now()
	copied := *b
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.RoomID != "" && b.RoomID != filter.RoomID {
			continue
		}
		out = append(out, b)
	}
	return out, len(out), nil
}

func (f *fakeRepository) ListForRoomRange(ctx context.Context, roomID string, from, to time.Time) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		if b.Date.Before(from) || b.Date.After(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeRoomService serves a fixed set of rooms.
type fakeRoomService struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomService) Create(ctx context.Context, req room.CreateRequest) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) GetByID(ctx context.Context, id string) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoomService) List(ctx context.Context, filter room.Filter) ([]*room.Room, int, error) {
	panic("not used")
}

func (f *fakeRoomService) Update(ctx context.Context, id string, req room.UpdateRequest) (*room.Room, error) {
	panic("not used")
}

func (f *fakeRoomService) Delete(ctx context.Context, id string) error {
	panic("not used")
}

const (
	testRoomID  = "0b870bc6-98b1-4e7d-b600-b4c9f73d1b6f"
	otherRoomID = "8e9a4f43-09a7-4f30-bd3c-0ea7a3d0a777"
)

// newTestService pins the clock to Wednesday 2026-03-04 10:30.
func newTestService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()

	repo := &fakeRepository{}
	rooms := &fakeRoomService{
		rooms: map[string]*room.Room{
			testRoomID: {ID: testRoomID, Name: "Sala Grande"},
		},
	}

	now := func() time.Time {
		return time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	}

	return NewServiceWithNow(repo, rooms, now), repo
}

func day(yy, mm, dd int) time.Time {
	return time.Date(yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _ := newTestService(t)

		b, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  2,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "Sala Grande", b.RoomName)
		assert.Equal(t, 9, b.StartHour)
		assert.Equal(t, 2, b.Duration)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    otherRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  1,
		})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("invalid duration", func(t *testing.T) {
		svc, _ := newTestService(t)

		for _, duration := range []int{0, -1} {
			_, err := svc.Create(ctx, CreateRequest{
				UserID:    "user-1",
				RoomID:    testRoomID,
				Date:      day(2026, 3, 5),
				StartHour: 9,
				Duration:  duration,
			})
			assert.ErrorIs(t, err, ErrInvalidDuration)
		}
	})

	t.Run("past date", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 3),
			StartHour: 9,
			Duration:  1,
		})
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("today is not past", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 4),
			StartHour: 15,
			Duration:  1,
		})
		assert.NoError(t, err)
	})

	t.Run("overlap rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  2,
		})
		require.NoError(t, err)

		// Starts inside [9, 11)
		_, err = svc.Create(ctx, CreateRequest{
			UserID:    "user-2",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 10,
			Duration:  1,
		})
		assert.ErrorIs(t, err, ErrSlotTaken)

		// Ends inside [9, 11)
		_, err = svc.Create(ctx, CreateRequest{
			UserID:    "user-2",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 8,
			Duration:  2,
		})
		assert.ErrorIs(t, err, ErrSlotTaken)

		// Back to back is fine: intervals are half-open
		_, err = svc.Create(ctx, CreateRequest{
			UserID:    "user-2",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 11,
			Duration:  1,
		})
		assert.NoError(t, err)
	})

	t.Run("same hour different day accepted", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  1,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{
			UserID:    "user-2",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 6),
			StartHour: 9,
			Duration:  1,
		})
		assert.NoError(t, err)
	})

	t.Run("outside grid hours", func(t *testing.T) {
		svc, _ := newTestService(t)

		// Before opening
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 7,
			Duration:  1,
		})
		assert.ErrorIs(t, err, ErrOutsideGridHours)

		// Runs past closing
		_, err = svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 19,
			Duration:  2,
		})
		assert.ErrorIs(t, err, ErrOutsideGridHours)

		// Last reservable hour is fine
		_, err = svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 19,
			Duration:  1,
		})
		assert.NoError(t, err)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, string) {
		svc, _ := newTestService(t)
		b, err := svc.Create(ctx, CreateRequest{
			UserID:    "owner",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  1,
		})
		require.NoError(t, err)
		return svc, b.ID
	}

	t.Run("owner can cancel", func(t *testing.T) {
		svc, id := setup(t)

		err := svc.Cancel(ctx, id, "owner", false)
		require.NoError(t, err)

		_, err = svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("admin can cancel any booking", func(t *testing.T) {
		svc, id := setup(t)

		err := svc.Cancel(ctx, id, "someone-else", true)
		assert.NoError(t, err)
	})

	t.Run("other users cannot cancel", func(t *testing.T) {
		svc, id := setup(t)

		err := svc.Cancel(ctx, id, "someone-else", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		_, err = svc.GetByID(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.Cancel(ctx, "booking-404", "owner", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWeekGrid(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown room", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.WeekGrid(ctx, otherRoomID, day(2026, 3, 4), "user-1")
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("grid shape and states", func(t *testing.T) {
		svc, _ := newTestService(t)

		// Thursday 9-11 booked by user-1
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  2,
		})
		require.NoError(t, err)

		grid, err := svc.WeekGrid(ctx, testRoomID, day(2026, 3, 4), "user-1")
		require.NoError(t, err)

		assert.Equal(t, testRoomID, grid.RoomID)
		assert.Equal(t, "Sala Grande", grid.RoomName)

		require.Len(t, grid.Days, schedule.WeekdayCount)
		assert.Equal(t, day(2026, 3, 2), grid.Days[0].Date)
		assert.Equal(t, day(2026, 3, 6), grid.Days[4].Date)

		hoursPerDay := schedule.CloseHour - schedule.OpenHour
		for _, d := range grid.Days {
			assert.Len(t, d.Slots, hoursPerDay)
		}

		thursday := grid.Days[3]

		nine := thursday.Slots[9-schedule.OpenHour]
		assert.Equal(t, schedule.SlotOccupied, nine.State)
		require.NotNil(t, nine.Booking)
		assert.Equal(t, "user-1", nine.Booking.UserID)
		assert.True(t, nine.IsOwner)

		ten := thursday.Slots[10-schedule.OpenHour]
		assert.Equal(t, schedule.SlotOccupied, ten.State)

		eleven := thursday.Slots[11-schedule.OpenHour]
		assert.Equal(t, schedule.SlotAvailable, eleven.State)
		assert.Nil(t, eleven.Booking)

		// Monday is entirely behind the pinned clock (Wednesday 10:30)
		monday := grid.Days[0]
		for _, slot := range monday.Slots {
			assert.Equal(t, schedule.SlotPast, slot.State)
		}

		// On Wednesday, hour 9 ended at 10:00 and is past; hour 10 is still
		// running and is not
		wednesday := grid.Days[2]
		assert.Equal(t, schedule.SlotPast, wednesday.Slots[9-schedule.OpenHour].State)
		assert.Equal(t, schedule.SlotAvailable, wednesday.Slots[10-schedule.OpenHour].State)
	})

	t.Run("occupancy is not viewer dependent", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:    "user-1",
			RoomID:    testRoomID,
			Date:      day(2026, 3, 5),
			StartHour: 9,
			Duration:  1,
		})
		require.NoError(t, err)

		grid, err := svc.WeekGrid(ctx, testRoomID, day(2026, 3, 4), "user-2")
		require.NoError(t, err)

		slot := grid.Days[3].Slots[9-schedule.OpenHour]
		assert.Equal(t, schedule.SlotOccupied, slot.State)
		assert.False(t, slot.IsOwner)
	})
}
