package uploadqueue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func noop(context.Context) error { return nil }

// blockShard occupies the worker for key until the returned func is called.
func blockShard(t *testing.T, q *Queue, key string) (release func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	if err := q.Submit(context.Background(), key, JobFunc(func(context.Context) error {
		close(started)
		<-ctx.Done()
		return nil
	})); err != nil {
		t.Fatalf("submit blocking job: %v", err)
	}
	<-started
	return cancel
}

func TestQueue_SubmitAndStop(t *testing.T) {
	t.Parallel()
	q := New(Config{})
	defer q.Stop()

	if err := q.Submit(context.Background(), "project-1", JobFunc(noop)); err != nil {
		t.Fatalf("submit error: %v", err)
	}
}

func TestQueue_FIFOPerProject(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 4, QueueSize: 10})
	defer q.Stop()

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 5; i++ {
		v := i
		if err := q.Submit(context.Background(), "project-7", JobFunc(func(context.Context) error {
			mu.Lock()
			order = append(order, v)
			mu.Unlock()
			return nil
		})); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := q.Barrier(ctx, "project-7"); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 5 {
		t.Fatalf("barrier returned before all jobs ran: %v", order)
	}
	for i, v := range order {
		if i != v {
			t.Fatalf("expected FIFO order, got %v", order)
		}
	}
}

func TestQueue_ProjectsRunInParallel(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 4, QueueSize: 10})
	defer q.Stop()

	// Pick two keys on different shards.
	keyA, keyB := "project-a", "project-b"
	for q.shardFor(keyB) == q.shardFor(keyA) {
		keyB += "x"
	}

	start := make(chan struct{})
	done := make(chan struct{})
	_ = q.Submit(context.Background(), keyA, JobFunc(func(context.Context) error {
		<-start
		close(done)
		return nil
	}))
	_ = q.Submit(context.Background(), keyB, JobFunc(func(context.Context) error {
		close(start)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("jobs blocked each other; expected parallelism")
	}
}

func TestQueue_SerialExecutionSameProject(t *testing.T) {
	t.Parallel()
	const n = 100
	q := New(Config{Shards: 4, QueueSize: n})
	defer q.Stop()

	var inFlight, overlap int32
	for i := 0; i < n; i++ {
		_ = q.Submit(context.Background(), "X", JobFunc(func(context.Context) error {
			if atomic.AddInt32(&inFlight, 1) > 1 {
				atomic.StoreInt32(&overlap, 1)
			}
			time.Sleep(100 * time.Microsecond)
			atomic.AddInt32(&inFlight, -1)
			return nil
		}))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := q.Barrier(ctx, "X"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
	if atomic.LoadInt32(&overlap) == 1 {
		t.Fatal("detected overlapping execution for same project")
	}
}

func TestQueue_QueueFull(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: 10 * time.Millisecond})
	defer q.Stop()

	release := blockShard(t, q, "same")
	defer release()

	_ = q.Submit(context.Background(), "same", JobFunc(noop))
	err := q.Submit(context.Background(), "same", JobFunc(noop))
	var full *QueueFullError
	if !errors.As(err, &full) || !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected queue full error, got %v", err)
	}
	if full.Capacity != 1 {
		t.Fatalf("unexpected diagnostics: %+v", full)
	}
}

func TestQueue_SubmitContextCanceledWhileWaiting(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: time.Second})
	defer q.Stop()

	release := blockShard(t, q, "k")
	defer release()
	_ = q.Submit(context.Background(), "k", JobFunc(noop))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := q.Submit(ctx, "k", JobFunc(noop)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestQueue_SubmitAfterStop(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 2, QueueSize: 2})
	q.Stop()
	q.Stop() // idempotent

	if err := q.Submit(context.Background(), "Z", JobFunc(noop)); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
	if err := q.Barrier(context.Background(), "Z"); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed from Barrier, got %v", err)
	}
}

func TestQueue_StopDrainsQueuedJobs(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 1, QueueSize: 8})

	release := blockShard(t, q, "p")
	var ran int32
	for i := 0; i < 3; i++ {
		_ = q.Submit(context.Background(), "p", JobFunc(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		}))
	}

	stopped := make(chan struct{})
	go func() { q.Stop(); close(stopped) }()
	release()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	if got := atomic.LoadInt32(&ran); got != 3 {
		t.Fatalf("drained %d jobs, want 3", got)
	}
}

func TestQueue_StopSubmitRaceFree(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 4, QueueSize: 32})

	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := q.Submit(context.Background(), "k", JobFunc(noop))
			if err != nil && !errors.Is(err, ErrQueueClosed) && !errors.Is(err, ErrQueueFull) {
				t.Errorf("unexpected submit error: %v", err)
			}
		}()
	}
	go q.Stop()
	wg.Wait()
}

type countingJob struct{ finished *int32 }

func (j countingJob) Run(context.Context) error { return nil }
func (j countingJob) Finish(error)              { atomic.AddInt32(j.finished, 1) }

func TestQueue_EveryAcceptedJobFinishesAcrossStop(t *testing.T) {
	t.Parallel()
	for iter := 0; iter < 200; iter++ {
		q := New(Config{Shards: 2, QueueSize: 64})

		var accepted, finished int32
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if err := q.Submit(context.Background(), "p", countingJob{finished: &finished}); err == nil {
					atomic.AddInt32(&accepted, 1)
				} else if !errors.Is(err, ErrQueueClosed) {
					t.Errorf("unexpected submit error: %v", err)
				}
			}()
		}
		stopped := make(chan struct{})
		go func() {
			<-start
			q.Stop()
			close(stopped)
		}()
		close(start)
		wg.Wait()
		<-stopped

		if a, f := atomic.LoadInt32(&accepted), atomic.LoadInt32(&finished); a != f {
			t.Fatalf("iteration %d: %d jobs accepted, %d finished", iter, a, f)
		}
	}
}

func TestQueue_StopWaitsForInFlightSubmit(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 1, QueueSize: 1, EnqueueTimeout: time.Second})

	release := blockShard(t, q, "k")
	_ = q.Submit(context.Background(), "k", JobFunc(noop))

	// The shard is full, so this Submit waits inside the queue.
	job := newRecordingJob(func(context.Context) error { return nil })
	submitted := make(chan error, 1)
	go func() { submitted <- q.Submit(context.Background(), "k", job) }()
	time.Sleep(20 * time.Millisecond)

	stopped := make(chan struct{})
	go func() { q.Stop(); close(stopped) }()
	time.Sleep(20 * time.Millisecond)
	release()

	if err := <-submitted; err != nil {
		t.Fatalf("in-flight submit: %v", err)
	}
	<-stopped
	if err := waitFinish(t, job); err != nil {
		t.Fatalf("accepted job finished with %v", err)
	}
}

func TestQueue_SubmitDetachedOutlivesContext(t *testing.T) {
	t.Parallel()
	q := New(Config{Shards: 1, QueueSize: 4})
	defer q.Stop()

	release := blockShard(t, q, "k")
	ctx, cancel := context.WithCancel(context.Background())
	job := newRecordingJob(func(ctx context.Context) error { return ctx.Err() })
	if err := q.SubmitDetached(ctx, "k", job); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cancel()
	release()

	if err := waitFinish(t, job); err != nil {
		t.Fatalf("detached job finished with %v, want nil", err)
	}
}
