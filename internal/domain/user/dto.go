package user

import (
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Username    string           `json:"username"`
	Name        string           `json:"name"`
	Surname     string           `json:"surname"`
	Password    string           `json:"password"`
	Role        string           `json:"role"`
	Machine     bool             `json:"machine"`
	HoursPerDay float64          `json:"hoursPerDay"`
	CostPerKm   *decimal.Decimal `json:"costPerKm"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username may only contain letters, numbers, dots, underscores, and hyphens (3-50 characters)",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !r.Machine {
		if validator.IsEmpty(r.Password) {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password is required",
			})
		} else if len(r.Password) < 8 {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must be at least 8 characters long",
			})
		}
	}

	switch Role(r.Role) {
	case RoleAdmin, RoleWorkshop, RoleEmployee:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, workshop, employee",
		})
	}

	if r.HoursPerDay < 0 || r.HoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hoursPerDay",
			Message: "hoursPerDay must be between 0 and 24",
		})
	}

	if r.CostPerKm != nil && r.CostPerKm.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "costPerKm",
			Message: "costPerKm must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name"`
	Surname     *string          `json:"surname"`
	Password    *string          `json:"password"`
	Role        *string          `json:"role"`
	HoursPerDay *float64         `json:"hoursPerDay"`
	CostPerKm   *decimal.Decimal `json:"costPerKm"`
	Active      *bool            `json:"active"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if r.Role != nil {
		switch Role(*r.Role) {
		case RoleAdmin, RoleWorkshop, RoleEmployee:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of admin, workshop, employee",
			})
		}
	}

	if r.HoursPerDay != nil && (*r.HoursPerDay < 0 || *r.HoursPerDay > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "hoursPerDay",
			Message: "hoursPerDay must be between 0 and 24",
		})
	}

	if r.CostPerKm != nil && r.CostPerKm.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "costPerKm",
			Message: "costPerKm must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Name        string           `json:"name"`
	Surname     string           `json:"surname"`
	Role        string           `json:"role"`
	Machine     bool             `json:"machine"`
	HoursPerDay float64          `json:"hoursPerDay"`
	CostPerKm   *decimal.Decimal `json:"costPerKm"`
	Active      bool             `json:"active"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Surname:     u.Surname,
		Role:        string(u.Role),
		Machine:     u.Machine,
		HoursPerDay: u.HoursPerDay,
		CostPerKm:   u.CostPerKm,
		Active:      u.Active,
	}
}
