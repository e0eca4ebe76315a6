package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Queue fans jobs out to a fixed set of workers and collects outcomes.
type Queue struct {
	proc    *Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool

	// outcomes has its own lock so a blocked Enqueue cannot starve the
	// workers appending results
	outMu    sync.Mutex
	outcomes []Outcome
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(proc *Processor, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("batch.worker.started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					out, err := q.proc.ProcessFile(ctx, job.Path)
					cancel()

					if err != nil {
						q.logger.Error("batch.worker.failed",
							"worker_id", workerID, "path", job.Path, "error", err)
					} else {
						q.logger.Info("batch.worker.done",
							"worker_id", workerID, "path", job.Path,
							"source", out.Source, "filled", out.Fields.Filled())
					}
					q.outMu.Lock()
					q.outcomes = append(q.outcomes, out)
					q.outMu.Unlock()
				}

				q.logger.Info("batch.worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("batch.queue.closed", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("batch.queue.enqueued", "path", job.Path)
	default:
		q.logger.Warn("batch.queue.backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

// Shutdown closes the queue, waits for the workers to drain it, and
// returns the collected outcomes.
func (q *Queue) Shutdown(ctx context.Context) []Outcome {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.outMu.Lock()
		defer q.outMu.Unlock()
		return q.outcomes
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("batch.queue.shutdown_interrupted")
	case <-done:
		q.logger.Info("batch.queue.drained")
	}

	q.outMu.Lock()
	defer q.outMu.Unlock()
	return q.outcomes
}
