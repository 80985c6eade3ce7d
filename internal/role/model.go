package role

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("role not found")
	ErrNameRequired = errors.New("name cannot be empty")
	ErrNameTaken    = errors.New("role already exists")
	ErrProtected    = errors.New("the administrator role cannot be modified")
)

// AdminName is the privileged role. Users holding it manage rooms, sectors,
// roles, users and settings, and may cancel anyone's booking.
const AdminName = "Administrador"

// Role is an assignable user role.
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// DefaultNames seeds the role table on first boot. AdminName must always be
// present.
var DefaultNames = []string{
	AdminName,
	"Empleado",
	"Recepción",
}

// IsAdmin reports whether the role name grants administrator rights.
func IsAdmin(name string) bool {
	return name == AdminName
}
