package job

import (
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
)

type CreateJobRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if len(r.ID) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must not exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRequest struct {
	ID          string  `json:"-"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type JobResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func ToResponse(j Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Description: j.Description,
		Active:      j.Active,
	}
}
