package job

import "context"

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, activeOnly bool) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id string) error
}
