package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/job"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/database"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/usercache"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/validator"
	"github.com/intempo-hq/timesheet-backend-go/internal/repository/postgresql"
)

// Service covers the per-user write and read paths of the timesheet.
// The actor is the authenticated caller; reads and writes on behalf of
// another user are gated by the same visibility rule.
type Service interface {
	SaveWorkItem(ctx context.Context, actorID string, req timesheet.SaveWorkItemRequest) error
	GetWorkItems(ctx context.Context, actorID, month, userID string) ([]timesheet.WorkItemResponse, error)
	SaveDailyExpense(ctx context.Context, actorID string, req timesheet.SaveDailyExpenseRequest) error
	GetDailyExpenses(ctx context.Context, actorID, month, userID string) ([]timesheet.DailyExpenseResponse, error)
	ApproveHoliday(ctx context.Context, req timesheet.ApproveHolidayRequest) error
}

type ServiceImpl struct {
	db           *database.DB
	users        *usercache.Cache
	workItemRepo timesheet.WorkItemRepository
	expenseRepo  timesheet.DailyExpenseRepository
	jobRepo      job.JobRepository
}

func NewService(
	db *database.DB,
	users *usercache.Cache,
	workItemRepo timesheet.WorkItemRepository,
	expenseRepo timesheet.DailyExpenseRepository,
	jobRepo job.JobRepository,
) Service {
	return &ServiceImpl{
		db:           db,
		users:        users,
		workItemRepo: workItemRepo,
		expenseRepo:  expenseRepo,
		jobRepo:      jobRepo,
	}
}

// resolveTarget loads the actor and the user the request is about,
// defaulting to the actor when the request names nobody, and enforces
// the worked-hours visibility rule.
func (s *ServiceImpl) resolveTarget(ctx context.Context, actorID, targetID string) (actor, target user.User, err error) {
	actor, err = s.users.Get(ctx, actorID)
	if err != nil {
		return user.User{}, user.User{}, err
	}

	if targetID == "" || targetID == actorID {
		return actor, actor, nil
	}

	target, err = s.users.Get(ctx, targetID)
	if err != nil {
		return user.User{}, user.User{}, err
	}
	if !actor.CanReadWorkedHoursOf(&target) {
		return user.User{}, user.User{}, timesheet.ErrCannotReadOtherWorkedHours
	}

	return actor, target, nil
}

func (s *ServiceImpl) SaveWorkItem(ctx context.Context, actorID string, req timesheet.SaveWorkItemRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	date, _ := validator.ParseDate(req.Date)

	_, target, err := s.resolveTarget(ctx, actorID, req.UserID)
	if err != nil {
		return err
	}

	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return err
	}

	// Zero hours deletes the triple, never stores a zero row.
	if req.Hours == 0 {
		return s.workItemRepo.Delete(ctx, target.ID, req.JobID, date)
	}

	return s.workItemRepo.Upsert(ctx, timesheet.WorkItem{
		UserID: target.ID,
		JobID:  req.JobID,
		Date:   date,
		Hours:  req.Hours,
	})
}

func (s *ServiceImpl) GetWorkItems(ctx context.Context, actorID, month, userID string) ([]timesheet.WorkItemResponse, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	_, target, err := s.resolveTarget(ctx, actorID, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.workItemRepo.ListByUserMonth(ctx, target.ID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]timesheet.WorkItemResponse, 0, len(items))
	for _, w := range items {
		out = append(out, timesheet.ToWorkItemResponse(w))
	}
	return out, nil
}

func (s *ServiceImpl) SaveDailyExpense(ctx context.Context, actorID string, req timesheet.SaveDailyExpenseRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	date, _ := validator.ParseDate(req.Date)

	_, target, err := s.resolveTarget(ctx, actorID, req.UserID)
	if err != nil {
		return err
	}

	incoming := timesheet.DailyExpense{
		UserID:        target.ID,
		Date:          date,
		Expenses:      req.Expenses,
		Destination:   req.Destination,
		Kms:           req.Kms,
		TravelHours:   req.TravelHours,
		HolidayHours:  req.HolidayHours,
		SickHours:     req.SickHours,
		DonationHours: req.DonationHours,
		FurloughHours: req.FurloughHours,
	}

	incoming.TripCost = timesheet.TripCost(req.Kms, target.CostPerKm)

	// Read and write happen in one transaction so a concurrent save of
	// the same user-day cannot interleave between the emptiness check
	// and the row change.
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.expenseRepo.GetByUserAndDate(txCtx, target.ID, date)
		if err != nil {
			return err
		}

		incoming.HolidayApproved = timesheet.HolidayPending
		if existing != nil && existing.HolidayHours == incoming.HolidayHours {
			incoming.HolidayApproved = existing.HolidayApproved
		}

		switch timesheet.Reconcile(existing, incoming) {
		case timesheet.ActionInsert:
			return s.expenseRepo.Insert(txCtx, incoming)
		case timesheet.ActionUpdate:
			return s.expenseRepo.Update(txCtx, incoming)
		case timesheet.ActionDelete:
			return s.expenseRepo.Delete(txCtx, target.ID, date)
		default:
			return nil
		}
	})
}

func (s *ServiceImpl) GetDailyExpenses(ctx context.Context, actorID, month, userID string) ([]timesheet.DailyExpenseResponse, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	_, target, err := s.resolveTarget(ctx, actorID, userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByUserMonth(ctx, target.ID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]timesheet.DailyExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, timesheet.ToDailyExpenseResponse(e))
	}
	return out, nil
}

func (s *ServiceImpl) ApproveHoliday(ctx context.Context, req timesheet.ApproveHolidayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	date, _ := validator.ParseDate(req.Date)

	approval := timesheet.HolidayRejected
	if req.Approved {
		approval = timesheet.HolidayApproved
	}

	if err := s.expenseRepo.SetHolidayApproval(ctx, req.UserID, date, approval); err != nil {
		return fmt.Errorf("failed to approve holiday for user %s on %s: %w", req.UserID, req.Date, err)
	}

	return nil
}

// monthRange validates the month string before any storage access.
func monthRange(month string) (from, to time.Time, err error) {
	from, ok := validator.ParseMonth(month)
	if !ok {
		return time.Time{}, time.Time{}, timesheet.ErrInvalidDate
	}
	return from, from.AddDate(0, 1, 0), nil
}
