package job

import (
	"context"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/job"
)

type Service interface {
	Create(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error)
	Get(ctx context.Context, id string) (job.JobResponse, error)
	List(ctx context.Context, activeOnly bool) ([]job.JobResponse, error)
	Update(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo job.JobRepository
}

func NewService(repo job.JobRepository) Service {
	return &ServiceImpl{repo: repo}
}

// Create implements Service. Job ids are chosen by the caller, they
// mirror the order numbers of the company's ERP.
func (s *ServiceImpl) Create(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.repo.Create(ctx, job.Job{
		ID:          req.ID,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	return job.ToResponse(created), nil
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (job.JobResponse, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(j), nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, activeOnly bool) ([]job.JobResponse, error) {
	jobs, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	out := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, job.ToResponse(j))
	}
	return out, nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error) {
	j, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return job.JobResponse{}, err
	}

	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Active != nil {
		j.Active = *req.Active
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return job.JobResponse{}, err
	}

	return job.ToResponse(j), nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
