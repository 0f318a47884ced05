package companyhours

import (
	"context"
	"testing"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/usercache"
	"github.com/stretchr/testify/assert"
)

// failingWorkItemRepo fails the test on any storage access.
type failingWorkItemRepo struct{ t *testing.T }

func (r *failingWorkItemRepo) Upsert(context.Context, timesheet.WorkItem) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

func (r *failingWorkItemRepo) Delete(context.Context, string, string, time.Time) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

func (r *failingWorkItemRepo) ListByUserMonth(context.Context, string, time.Time, time.Time) ([]timesheet.WorkItem, error) {
	r.t.Fatal("unexpected storage access")
	return nil, nil
}

func (r *failingWorkItemRepo) ListByMonth(context.Context, time.Time, time.Time) ([]timesheet.WorkItem, error) {
	r.t.Fatal("unexpected storage access")
	return nil, nil
}

type failingExpenseRepo struct{ t *testing.T }

func (r *failingExpenseRepo) GetByUserAndDate(context.Context, string, time.Time) (*timesheet.DailyExpense, error) {
	r.t.Fatal("unexpected storage access")
	return nil, nil
}

func (r *failingExpenseRepo) Insert(context.Context, timesheet.DailyExpense) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

func (r *failingExpenseRepo) Update(context.Context, timesheet.DailyExpense) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

func (r *failingExpenseRepo) Delete(context.Context, string, time.Time) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

func (r *failingExpenseRepo) ListByUserMonth(context.Context, string, time.Time, time.Time) ([]timesheet.DailyExpense, error) {
	r.t.Fatal("unexpected storage access")
	return nil, nil
}

func (r *failingExpenseRepo) ListByMonth(context.Context, time.Time, time.Time) ([]timesheet.DailyExpense, error) {
	r.t.Fatal("unexpected storage access")
	return nil, nil
}

func (r *failingExpenseRepo) SetHolidayApproval(context.Context, string, time.Time, timesheet.HolidayApproval) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

type failingUserRepo struct{ t *testing.T }

func (r *failingUserRepo) Create(context.Context, user.User) (user.User, error) {
	r.t.Fatal("unexpected storage access")
	return user.User{}, nil
}

func (r *failingUserRepo) GetByID(context.Context, string) (user.User, error) {
	r.t.Fatal("unexpected storage access")
	return user.User{}, nil
}

func (r *failingUserRepo) GetByUsername(context.Context, string) (user.User, error) {
	r.t.Fatal("unexpected storage access")
	return user.User{}, nil
}

func (r *failingUserRepo) List(context.Context) ([]user.User, error) {
	r.t.Fatal("unexpected storage access")
	return nil, nil
}

func (r *failingUserRepo) Update(context.Context, user.User) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

func (r *failingUserRepo) Delete(context.Context, string) error {
	r.t.Fatal("unexpected storage access")
	return nil
}

// An invalid month string must be rejected before anything touches
// storage.
func TestInvalidMonthShortCircuits(t *testing.T) {
	svc := NewService(
		usercache.New(&failingUserRepo{t}, time.Minute, nil),
		&failingWorkItemRepo{t},
		&failingExpenseRepo{t},
	)

	for _, month := range []string{"2024-13", "2024-0", "202403", "march", ""} {
		_, err := svc.GetCompanyHours(context.Background(), month)
		assert.ErrorIs(t, err, timesheet.ErrInvalidDate, "month %q", month)

		_, err = svc.GetMonthlyTotals(context.Background(), month)
		assert.ErrorIs(t, err, timesheet.ErrInvalidDate, "month %q", month)

		_, err = svc.GetMonthWorkItems(context.Background(), month)
		assert.ErrorIs(t, err, timesheet.ErrInvalidDate, "month %q", month)
	}
}
