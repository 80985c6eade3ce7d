package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrNameRequired    = errors.New("name cannot be empty")
	ErrAddressRequired = errors.New("address cannot be empty")
)

// Room is a bookable meeting room at a street address.
type Room struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Name     string
	Page     int
	PageSize int
}
