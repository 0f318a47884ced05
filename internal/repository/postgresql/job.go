package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/job"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type jobRepository struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepository{db: db}
}

// Create implements job.JobRepository.
func (r *jobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (id, description, active)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, j.ID, j.Description, j.Active).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return job.Job{}, job.ErrDuplicateJob
		}
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return j, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, description, active, created_at, updated_at FROM jobs WHERE id = $1`

	var j job.Job
	err := q.QueryRow(ctx, query, id).Scan(&j.ID, &j.Description, &j.Active, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job by id: %w", err)
	}

	return j, nil
}

// List implements job.JobRepository.
func (r *jobRepository) List(ctx context.Context, activeOnly bool) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, description, active, created_at, updated_at FROM jobs`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Description, &j.Active, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// Update implements job.JobRepository.
func (r *jobRepository) Update(ctx context.Context, j job.Job) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE jobs SET description = $2, active = $3, updated_at = $4 WHERE id = $1`

	tag, err := q.Exec(ctx, query, j.ID, j.Description, j.Active, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}
