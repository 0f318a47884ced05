package job

import "errors"

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrDuplicateJob = errors.New("job id already exists")
)
