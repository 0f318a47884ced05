package response

import (
	"errors"
	"net/http"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/job"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is disabled")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Unauthorized(w, "Admin privilege required")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrDuplicateJob):
		Conflict(w, "Job already exists")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDate):
		UnprocessableEntity(w, "INVALID_DATE", err.Error())
	case errors.Is(err, timesheet.ErrCannotReadOtherWorkedHours):
		Unauthorized(w, "Cannot read other users' worked hours")
	case errors.Is(err, timesheet.ErrDailyExpenseNotFound):
		NotFound(w, "Daily expense not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
