package uploadqueue

import "context"

// Job is a unit of work executed by a Queue. Run may be called more than once
// when a recoverable failure is retried.
type Job interface {
	Run(ctx context.Context) error
}

// Finisher is implemented by jobs that want their final outcome. Finish is
// called exactly once, after the last attempt, with nil on success.
type Finisher interface {
	Finish(err error)
}

// JobFunc is a helper to adapt a function to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job for JobFunc.
func (f JobFunc) Run(ctx context.Context) error {
	if f == nil {
		return ErrNilJob
	}
	return f(ctx)
}
