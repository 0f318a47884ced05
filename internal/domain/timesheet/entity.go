package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkItem is a user's recorded hours against one job on one date.
// A (user, job, date) triple never persists with hours == 0: writing
// zero hours deletes the row.
type WorkItem struct {
	UserID    string
	JobID     string
	Date      time.Time
	Hours     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HolidayApproval is the review state of the holiday hours on a day.
type HolidayApproval string

const (
	HolidayPending  HolidayApproval = "pending"
	HolidayApproved HolidayApproval = "approved"
	HolidayRejected HolidayApproval = "rejected"
)

// DailyExpense holds all non-regular-work entries of one user for one
// date. TripCost is derived from kms and the user's costPerKm at write
// time and stored, so later costPerKm changes never alter history.
type DailyExpense struct {
	UserID          string
	Date            time.Time
	Expenses        decimal.Decimal
	Destination     string
	Kms             decimal.Decimal
	TripCost        *decimal.Decimal
	TravelHours     float64
	HolidayHours    float64
	HolidayApproved HolidayApproval
	SickHours       float64
	DonationHours   float64
	FurloughHours   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsEmpty reports whether the expense carries no data at all, in which
// case the row must be deleted instead of persisted.
func (e *DailyExpense) IsEmpty() bool {
	return e.Expenses.IsZero() &&
		e.Destination == "" &&
		e.Kms.IsZero() &&
		(e.TripCost == nil || e.TripCost.IsZero()) &&
		e.TravelHours == 0 &&
		e.HolidayHours == 0 &&
		e.SickHours == 0 &&
		e.DonationHours == 0 &&
		e.FurloughHours == 0
}

// TripCost derives the reimbursement for the day's kilometers at the
// user's current rate. Nil when there is nothing to reimburse. The
// result is stored with the row; later rate changes never alter it.
func TripCost(kms decimal.Decimal, costPerKm *decimal.Decimal) *decimal.Decimal {
	if kms.IsZero() || costPerKm == nil {
		return nil
	}
	cost := kms.Mul(*costPerKm)
	return &cost
}

// CompanyHoursItem is the read-time merge of the work-item total and
// the daily expense for one user-date. Never persisted.
type CompanyHoursItem struct {
	UserID          string           `json:"userId"`
	Username        string           `json:"username"`
	Name            string           `json:"name"`
	Surname         string           `json:"surname"`
	Date            string           `json:"date"`
	WorkedHours     float64          `json:"workedHours"`
	ExtraHours      float64          `json:"extraHours"`
	TravelHours     float64          `json:"travelHours"`
	HolidayHours    float64          `json:"holidayHours"`
	HolidayApproved HolidayApproval  `json:"holidayApproved,omitempty"`
	SickHours       float64          `json:"sickHours"`
	DonationHours   float64          `json:"donationHours"`
	FurloughHours   float64          `json:"furloughHours"`
	Expenses        decimal.Decimal  `json:"expenses"`
	Kms             decimal.Decimal  `json:"kms"`
	Destination     string           `json:"destination"`
	TripCost        *decimal.Decimal `json:"tripCost,omitempty"`
}

// MonthWorkItem is the company-wide per-user-per-job monthly total.
// Built from raw work items only, the expense merge never touches it.
type MonthWorkItem struct {
	UserID string  `json:"userId"`
	JobID  string  `json:"jobId"`
	Month  string  `json:"month"`
	Hours  float64 `json:"hours"`
}

// MonthlyTotals is one user's monthly rollup over the merged per-day
// records.
type MonthlyTotals struct {
	UserID        string          `json:"userId"`
	WorkedHours   float64         `json:"workedHours"`
	ExtraHours    float64         `json:"extraHours"`
	TravelHours   float64         `json:"travelHours"`
	HolidayHours  float64         `json:"holidayHours"`
	SickHours     float64         `json:"sickHours"`
	DonationHours float64         `json:"donationHours"`
	FurloughHours float64         `json:"furloughHours"`
	Expenses      decimal.Decimal `json:"expenses"`
	Kms           decimal.Decimal `json:"kms"`
	TripCost      decimal.Decimal `json:"tripCost"`
}
