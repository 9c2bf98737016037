// Package uploadqueue runs spreadsheet uploads in the background.
//
// Jobs are partitioned by a key (the project they belong to). Jobs with the
// same key run one at a time in submission order; different keys may run in
// parallel. Recoverable failures are retried with exponential backoff.
//
// Callers must not Submit concurrently for the same key if they rely on
// FIFO order.
package uploadqueue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	poerrors "github.com/Jinansh2608/ledger-backend/client/internal/errors"
)

type pending struct {
	ctx context.Context
	job Job
}

// Queue executes Jobs on per-shard worker goroutines.
type Queue struct {
	cfg    Config
	shards []chan pending

	// mu orders sends on shards against close(done): Submit holds it for
	// reading while it enqueues, Stop takes it for writing.
	mu     sync.RWMutex
	done   chan struct{}
	closed atomic.Bool

	wg sync.WaitGroup
}

// New starts a Queue. Zero fields of cfg take their defaults.
func New(cfg Config) *Queue {
	cfg = cfg.withDefaults()
	q := &Queue{
		cfg:    cfg,
		shards: make([]chan pending, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := range q.shards {
		ch := make(chan pending, cfg.QueueSize)
		q.shards[i] = ch
		q.wg.Add(1)
		go q.worker(i, ch)
	}
	return q
}

// Submit enqueues job behind everything already queued for key.
//
// It returns ErrQueueClosed after Stop, a *QueueFullError when the shard
// stays full for EnqueueTimeout, or ctx.Err() if ctx ends first. The same ctx
// is handed to the job when it runs.
func (q *Queue) Submit(ctx context.Context, key string, job Job) error {
	return q.submit(ctx, ctx, key, job)
}

// SubmitDetached is Submit for jobs that must outlive ctx: ctx bounds the
// enqueue wait only, and the job runs under a context that keeps ctx's
// values but is never cancelled. Stop still abandons its pending retries.
func (q *Queue) SubmitDetached(ctx context.Context, key string, job Job) error {
	return q.submit(ctx, context.WithoutCancel(ctx), key, job)
}

func (q *Queue) submit(ctx, runCtx context.Context, key string, job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed.Load() {
		return ErrQueueClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	shard := q.shardFor(key)
	ch := q.shards[shard]

	timer := time.NewTimer(q.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- pending{ctx: runCtx, job: job}:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{Shard: shard, Length: len(ch), Capacity: cap(ch)}
	}
}

// Barrier waits until every job submitted for key before the call has run.
func (q *Queue) Barrier(ctx context.Context, key string) error {
	reached := make(chan struct{})
	if err := q.Submit(ctx, key, JobFunc(func(context.Context) error {
		close(reached)
		return nil
	})); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-reached:
		return nil
	}
}

// Stop rejects new work, lets every shard finish what is already queued and
// returns once all workers exit. Pending retries are abandoned. Idempotent.
//
// Submits already in flight complete (or time out) before the workers are
// told to drain, so every accepted job is run or finished.
func (q *Queue) Stop() {
	if !q.closed.CompareAndSwap(false, true) {
		return
	}
	log.Debug().Int("shards", q.cfg.Shards).Msg("upload queue: stopping, draining shards")
	q.mu.Lock()
	close(q.done)
	q.mu.Unlock()
	q.wg.Wait()
	log.Debug().Msg("upload queue: stopped")
}

// Close lets Queue satisfy io.Closer.
func (q *Queue) Close() error {
	q.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (q *Queue) worker(idx int, ch <-chan pending) {
	defer q.wg.Done()
	label := labelFor(idx)

	for {
		select {
		case p := <-ch:
			q.process(label, p)
			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-q.done:
			drained := 0
			for {
				select {
				case p := <-ch:
					q.process(label, p)
					drained++
				default:
					if drained > 0 {
						log.Debug().Str("shard", label).Int("jobs", drained).Msg("upload queue: drained")
					}
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

// process runs p until it succeeds, fails irrecoverably, exhausts its
// attempts or is cancelled, and reports the final outcome once.
func (q *Queue) process(label string, p pending) {
	if p.job == nil {
		return
	}
	if err := p.ctx.Err(); err != nil {
		q.finish(label, p.job, err)
		return
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = q.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = q.cfg.MaxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	for attempt := 1; ; attempt++ {
		err := q.runOnce(label, p)
		if err == nil || !retryable(err) || attempt >= q.cfg.MaxAttempts || p.ctx.Err() != nil {
			q.finish(label, p.job, err)
			return
		}

		wait := exp.NextBackOff()
		log.Debug().Err(err).Str("shard", label).Int("attempt", attempt).Dur("wait", wait).Msg("upload queue: retrying")
		select {
		case <-time.After(wait):
		case <-q.done:
			q.finish(label, p.job, err)
			return
		case <-p.ctx.Done():
			q.finish(label, p.job, p.ctx.Err())
			return
		}
	}
}

func (q *Queue) runOnce(label string, p pending) (err error) {
	start := time.Now()
	defer func() {
		runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			log.Error().Str("shard", label).Interface("panic", r).Msg("upload queue: job panicked")
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return p.job.Run(p.ctx)
}

func (q *Queue) finish(label string, job Job, err error) {
	if err != nil {
		failuresTotal.WithLabelValues(label).Inc()
		q.safeHandleError(err)
	}
	if f, ok := job.(Finisher); ok {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Msg("upload queue: finish callback panicked")
				}
			}()
			f.Finish(err)
		}()
	}
}

func (q *Queue) safeHandleError(err error) {
	if q.cfg.ErrorHandler == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("upload queue: error handler panicked")
		}
	}()
	q.cfg.ErrorHandler(err)
}

func (q *Queue) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(q.shards)))
}

// retryable excludes 4xx responses and broken jobs.
func retryable(err error) bool {
	return !poerrors.IsIrrecoverable(err) &&
		!errors.Is(err, ErrJobPanicked) &&
		!errors.Is(err, ErrNilJob)
}
