package timesheet

import (
	"context"
	"time"
)

// WorkItemRepository persists per-user per-job daily hours. Month
// ranges are [from, to) on the date column.
type WorkItemRepository interface {
	Upsert(ctx context.Context, w WorkItem) error
	Delete(ctx context.Context, userID, jobID string, date time.Time) error
	ListByUserMonth(ctx context.Context, userID string, from, to time.Time) ([]WorkItem, error)
	ListByMonth(ctx context.Context, from, to time.Time) ([]WorkItem, error)
}

type DailyExpenseRepository interface {
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*DailyExpense, error)
	Insert(ctx context.Context, e DailyExpense) error
	Update(ctx context.Context, e DailyExpense) error
	Delete(ctx context.Context, userID string, date time.Time) error
	ListByUserMonth(ctx context.Context, userID string, from, to time.Time) ([]DailyExpense, error)
	ListByMonth(ctx context.Context, from, to time.Time) ([]DailyExpense, error)
	SetHolidayApproval(ctx context.Context, userID string, date time.Time, approval HolidayApproval) error
}
