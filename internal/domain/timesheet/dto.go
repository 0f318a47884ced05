package timesheet

import (
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SaveWorkItemRequest struct {
	UserID string  `json:"userId"`
	JobID  string  `json:"jobId"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
}

func (r *SaveWorkItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{
			Field:   "jobId",
			Message: "jobId is required",
		})
	}

	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Hours < 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaveDailyExpenseRequest struct {
	UserID        string          `json:"userId"`
	Date          string          `json:"date"`
	Expenses      decimal.Decimal `json:"expenses"`
	Destination   string          `json:"destination"`
	Kms           decimal.Decimal `json:"kms"`
	TravelHours   float64         `json:"travelHours"`
	HolidayHours  float64         `json:"holidayHours"`
	SickHours     float64         `json:"sickHours"`
	DonationHours float64         `json:"donationHours"`
	FurloughHours float64         `json:"furloughHours"`
}

func (r *SaveDailyExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Expenses.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "expenses",
			Message: "expenses must not be negative",
		})
	}
	if r.Kms.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "kms",
			Message: "kms must not be negative",
		})
	}

	for field, hours := range map[string]float64{
		"travelHours":   r.TravelHours,
		"holidayHours":  r.HolidayHours,
		"sickHours":     r.SickHours,
		"donationHours": r.DonationHours,
		"furloughHours": r.FurloughHours,
	} {
		if hours < 0 || hours > 24 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveHolidayRequest struct {
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	Approved bool   `json:"approved"`
}

func (r *ApproveHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}
	if _, ok := validator.ParseDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkItemResponse struct {
	UserID string  `json:"userId"`
	JobID  string  `json:"jobId"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
}

func ToWorkItemResponse(w WorkItem) WorkItemResponse {
	return WorkItemResponse{
		UserID: w.UserID,
		JobID:  w.JobID,
		Date:   validator.FormatDate(w.Date),
		Hours:  w.Hours,
	}
}

type DailyExpenseResponse struct {
	UserID          string           `json:"userId"`
	Date            string           `json:"date"`
	Expenses        decimal.Decimal  `json:"expenses"`
	Destination     string           `json:"destination"`
	Kms             decimal.Decimal  `json:"kms"`
	TripCost        *decimal.Decimal `json:"tripCost,omitempty"`
	TravelHours     float64          `json:"travelHours"`
	HolidayHours    float64          `json:"holidayHours"`
	HolidayApproved HolidayApproval  `json:"holidayApproved"`
	SickHours       float64          `json:"sickHours"`
	DonationHours   float64          `json:"donationHours"`
	FurloughHours   float64          `json:"furloughHours"`
}

func ToDailyExpenseResponse(e DailyExpense) DailyExpenseResponse {
	return DailyExpenseResponse{
		UserID:          e.UserID,
		Date:            validator.FormatDate(e.Date),
		Expenses:        e.Expenses,
		Destination:     e.Destination,
		Kms:             e.Kms,
		TripCost:        e.TripCost,
		TravelHours:     e.TravelHours,
		HolidayHours:    e.HolidayHours,
		HolidayApproved: e.HolidayApproved,
		SickHours:       e.SickHours,
		DonationHours:   e.DonationHours,
		FurloughHours:   e.FurloughHours,
	}
}
