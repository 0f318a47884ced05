package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Back office - full access
	RoleWorkshop Role = "workshop" // Workshop terminal - can record hours for machines
	RoleEmployee Role = "employee" // Regular employee
)

// Draft carries the editable fields of a user without identity or
// credentials; a User is a Draft plus id and auth fields.
type Draft struct {
	Username    string
	Name        string
	Surname     string
	Role        Role
	Machine     bool
	HoursPerDay float64
	CostPerKm   *decimal.Decimal
	Active      bool
}

type User struct {
	Draft

	ID           string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user has back-office privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReadWorkedHoursOf reports whether u may read the worked hours of
// target. Admins and workshop terminals read everyone; everyone can
// read a machine's hours; otherwise only their own.
func (u *User) CanReadWorkedHoursOf(target *User) bool {
	if u.Role == RoleAdmin || u.Role == RoleWorkshop {
		return true
	}
	if target.Machine {
		return true
	}
	return u.ID == target.ID
}
