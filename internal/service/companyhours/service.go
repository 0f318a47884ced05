package companyhours

import (
	"context"
	"fmt"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/usercache"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
)

// Service rebuilds the company-hours view on every query; nothing here
// is persisted.
type Service interface {
	GetCompanyHours(ctx context.Context, month string) ([]timesheet.CompanyHoursItem, error)
	GetMonthlyTotals(ctx context.Context, month string) ([]timesheet.MonthlyTotals, error)
	GetMonthWorkItems(ctx context.Context, month string) ([]timesheet.MonthWorkItem, error)
}

type ServiceImpl struct {
	users        *usercache.Cache
	workItemRepo timesheet.WorkItemRepository
	expenseRepo  timesheet.DailyExpenseRepository
}

func NewService(
	users *usercache.Cache,
	workItemRepo timesheet.WorkItemRepository,
	expenseRepo timesheet.DailyExpenseRepository,
) Service {
	return &ServiceImpl{
		users:        users,
		workItemRepo: workItemRepo,
		expenseRepo:  expenseRepo,
	}
}

// monthRange validates the month string before any storage access and
// returns the [from, to) bounds of the month.
func monthRange(month string) (from, to time.Time, err error) {
	from, ok := validator.ParseMonth(month)
	if !ok {
		return time.Time{}, time.Time{}, timesheet.ErrInvalidDate
	}
	return from, from.AddDate(0, 1, 0), nil
}

func (s *ServiceImpl) GetCompanyHours(ctx context.Context, month string) ([]timesheet.CompanyHoursItem, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	workItems, err := s.workItemRepo.ListByMonth(ctx, from, to)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByMonth(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return MergeMonth(users, workItems, expenses), nil
}

func (s *ServiceImpl) GetMonthlyTotals(ctx context.Context, month string) ([]timesheet.MonthlyTotals, error) {
	items, err := s.GetCompanyHours(ctx, month)
	if err != nil {
		return nil, err
	}
	return RollupMonth(items), nil
}

func (s *ServiceImpl) GetMonthWorkItems(ctx context.Context, month string) ([]timesheet.MonthWorkItem, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	workItems, err := s.workItemRepo.ListByMonth(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return RollupWorkItems(workItems, validator.FormatMonth(from)), nil
}
