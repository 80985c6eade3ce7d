package http

import (
	"time"

	"github.com/reservalasala/room-booking-backend/internal/room"
)

// RoomTag is the minimal room reference embedded in other responses.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
	}
}

type CreateRoomRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UpdateRoomRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	Name     string `form:"name"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=50" binding:"omitempty,min=1,max=200"`
}
