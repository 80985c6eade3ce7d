package sector

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("sector not found")
	ErrNameRequired = errors.New("name cannot be empty")
	ErrNameTaken    = errors.New("sector already exists")
)

// Sector is a corporate area users belong to (e.g. Finance, IT).
type Sector struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// DefaultNames seeds the sector table on first boot.
var DefaultNames = []string{
	"Administración",
	"Comercial",
	"Legales",
	"Recursos Humanos",
	"Sistemas",
}
