package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/database"
)

type workItemRepository struct {
	db *database.DB
}

func NewWorkItemRepository(db *database.DB) timesheet.WorkItemRepository {
	return &workItemRepository{db: db}
}

// Upsert implements timesheet.WorkItemRepository. Zero-hour rows never
// reach this method, the service deletes instead.
func (r *workItemRepository) Upsert(ctx context.Context, w timesheet.WorkItem) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_items (user_id, job_id, date, hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, job_id, date)
		DO UPDATE SET hours = EXCLUDED.hours, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, w.UserID, w.JobID, w.Date, w.Hours); err != nil {
		return fmt.Errorf("failed to upsert work item: %w", err)
	}

	return nil
}

// Delete implements timesheet.WorkItemRepository. Deleting a missing
// row is not an error: writing zero hours for an absent triple is a
// no-op.
func (r *workItemRepository) Delete(ctx context.Context, userID, jobID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM work_items WHERE user_id = $1 AND job_id = $2 AND date = $3`

	if _, err := q.Exec(ctx, query, userID, jobID, date); err != nil {
		return fmt.Errorf("failed to delete work item: %w", err)
	}

	return nil
}

// ListByUserMonth implements timesheet.WorkItemRepository.
func (r *workItemRepository) ListByUserMonth(ctx context.Context, userID string, from, to time.Time) ([]timesheet.WorkItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, job_id, date, hours, created_at, updated_at
		FROM work_items
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, job_id
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work items: %w", err)
	}
	defer rows.Close()

	var items []timesheet.WorkItem
	for rows.Next() {
		var w timesheet.WorkItem
		if err := rows.Scan(&w.UserID, &w.JobID, &w.Date, &w.Hours, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work item: %w", err)
		}
		items = append(items, w)
	}

	return items, rows.Err()
}

// ListByMonth implements timesheet.WorkItemRepository.
func (r *workItemRepository) ListByMonth(ctx context.Context, from, to time.Time) ([]timesheet.WorkItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, job_id, date, hours, created_at, updated_at
		FROM work_items
		WHERE date >= $1 AND date < $2
		ORDER BY user_id, date, job_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work items: %w", err)
	}
	defer rows.Close()

	var items []timesheet.WorkItem
	for rows.Next() {
		var w timesheet.WorkItem
		if err := rows.Scan(&w.UserID, &w.JobID, &w.Date, &w.Hours, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work item: %w", err)
		}
		items = append(items, w)
	}

	return items, rows.Err()
}
