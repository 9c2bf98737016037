package uploadqueue

import (
	"errors"
	"fmt"
)

var (
	// ErrQueueFull reports back-pressure: the project's shard stayed full
	// for the whole enqueue timeout.
	ErrQueueFull = errors.New("upload queue full")

	// ErrQueueClosed is returned once Stop has been called.
	ErrQueueClosed = errors.New("upload queue closed")

	// ErrJobPanicked wraps the value recovered from a panicking job.
	ErrJobPanicked = errors.New("upload job panicked")

	// ErrNilJob is returned when a nil JobFunc is run.
	ErrNilJob = errors.New("nil upload job")
)

// QueueFullError carries diagnostics while satisfying errors.Is(_, ErrQueueFull).
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("upload shard %d full (len=%d cap=%d)", e.Shard, e.Length, e.Capacity)
}

func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
