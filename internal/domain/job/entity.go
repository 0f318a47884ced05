package job

import "time"

// Job is identified by a human-assigned string code, not a surrogate id.
type Job struct {
	ID          string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
