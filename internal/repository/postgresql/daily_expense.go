package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dailyExpenseRepository struct {
	db *database.DB
}

func NewDailyExpenseRepository(db *database.DB) timesheet.DailyExpenseRepository {
	return &dailyExpenseRepository{db: db}
}

const dailyExpenseColumns = `user_id, date, expenses, destination, kms, trip_cost,
	   travel_hours, holiday_hours, holiday_approved, sick_hours,
	   donation_hours, furlough_hours, created_at, updated_at`

func scanDailyExpense(row pgx.Row) (timesheet.DailyExpense, error) {
	var e timesheet.DailyExpense
	err := row.Scan(
		&e.UserID, &e.Date, &e.Expenses, &e.Destination, &e.Kms, &e.TripCost,
		&e.TravelHours, &e.HolidayHours, &e.HolidayApproved, &e.SickHours,
		&e.DonationHours, &e.FurloughHours, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByUserAndDate implements timesheet.DailyExpenseRepository. Returns
// nil without error when no row exists for the user-day.
func (r *dailyExpenseRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*timesheet.DailyExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyExpenseColumns + ` FROM daily_expenses WHERE user_id = $1 AND date = $2`

	e, err := scanDailyExpense(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily expense: %w", err)
	}

	return &e, nil
}

// Insert implements timesheet.DailyExpenseRepository.
func (r *dailyExpenseRepository) Insert(ctx context.Context, e timesheet.DailyExpense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_expenses (user_id, date, expenses, destination, kms, trip_cost,
									travel_hours, holiday_hours, holiday_approved, sick_hours,
									donation_hours, furlough_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := q.Exec(ctx, query,
		e.UserID, e.Date, e.Expenses, e.Destination, e.Kms, e.TripCost,
		e.TravelHours, e.HolidayHours, e.HolidayApproved, e.SickHours,
		e.DonationHours, e.FurloughHours,
	)
	if err != nil {
		return fmt.Errorf("failed to insert daily expense: %w", err)
	}

	return nil
}

// Update implements timesheet.DailyExpenseRepository.
func (r *dailyExpenseRepository) Update(ctx context.Context, e timesheet.DailyExpense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_expenses
		SET expenses = $3, destination = $4, kms = $5, trip_cost = $6,
			travel_hours = $7, holiday_hours = $8, holiday_approved = $9,
			sick_hours = $10, donation_hours = $11, furlough_hours = $12,
			updated_at = NOW()
		WHERE user_id = $1 AND date = $2
	`

	tag, err := q.Exec(ctx, query,
		e.UserID, e.Date, e.Expenses, e.Destination, e.Kms, e.TripCost,
		e.TravelHours, e.HolidayHours, e.HolidayApproved, e.SickHours,
		e.DonationHours, e.FurloughHours,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrDailyExpenseNotFound
	}

	return nil
}

// Delete implements timesheet.DailyExpenseRepository.
func (r *dailyExpenseRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_expenses WHERE user_id = $1 AND date = $2`

	if _, err := q.Exec(ctx, query, userID, date); err != nil {
		return fmt.Errorf("failed to delete daily expense: %w", err)
	}

	return nil
}

// ListByUserMonth implements timesheet.DailyExpenseRepository.
func (r *dailyExpenseRepository) ListByUserMonth(ctx context.Context, userID string, from, to time.Time) ([]timesheet.DailyExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyExpenseColumns + `
		FROM daily_expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily expenses: %w", err)
	}
	defer rows.Close()

	var expenses []timesheet.DailyExpense
	for rows.Next() {
		e, err := scanDailyExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// ListByMonth implements timesheet.DailyExpenseRepository.
func (r *dailyExpenseRepository) ListByMonth(ctx context.Context, from, to time.Time) ([]timesheet.DailyExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyExpenseColumns + `
		FROM daily_expenses
		WHERE date >= $1 AND date < $2
		ORDER BY user_id, date`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily expenses: %w", err)
	}
	defer rows.Close()

	var expenses []timesheet.DailyExpense
	for rows.Next() {
		e, err := scanDailyExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// SetHolidayApproval implements timesheet.DailyExpenseRepository.
func (r *dailyExpenseRepository) SetHolidayApproval(ctx context.Context, userID string, date time.Time, approval timesheet.HolidayApproval) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_expenses
		SET holiday_approved = $3, updated_at = NOW()
		WHERE user_id = $1 AND date = $2
	`

	tag, err := q.Exec(ctx, query, userID, date, approval)
	if err != nil {
		return fmt.Errorf("failed to set holiday approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrDailyExpenseNotFound
	}

	return nil
}
