// Package dispatch queues started jobs and runs them on a bounded set of
// workers.
package dispatch

//go:generate go tool counterfeiter -generate

import (
	"context"
	"sync"
	"time"

	"github.com/ehsaniara/playrunner/internal/playrunner/credentials"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/metrics"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
)

// Starter runs a job to completion.
//
//counterfeiter:generate . Starter
type Starter interface {
	PasswordsNeeded(ctx context.Context, jobID string, overrides credentials.Overrides) ([]string, error)
	Start(ctx context.Context, jobID string, overrides credentials.Overrides) (bool, error)
}

const (
	reasonStopped   = "daemon stopped before the job started"
	reasonRestarted = "daemon restarted before the job ran; start-time passwords are not persisted, create a new job"
	reasonCrashed   = "daemon restarted during run"
)

type task struct {
	jobID     string
	overrides credentials.Overrides
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithNode names this daemon on the jobs it queues. Recover only touches
// jobs carrying the same node, or none.
func WithNode(node string) Option {
	return func(d *Dispatcher) {
		d.node = node
	}
}

// Dispatcher moves submitted jobs from new to pending and hands them to
// workers, which call Starter.Start. A job leaves pending only forward:
// to running, or to error when the daemon gives up on it.
type Dispatcher struct {
	store   storage.Backend
	starter Starter
	workers int
	node    string
	// slots is reserved before a job becomes pending and released when a
	// worker takes it, so the queue send never blocks.
	slots  chan struct{}
	queue  chan task
	logger *logger.Logger

	running  bool
	runMutex sync.RWMutex
	wg       sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a dispatcher. It does nothing until Start is called.
func New(store storage.Backend, starter Starter, workers, queueSize int, opts ...Option) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		store:   store,
		starter: starter,
		workers: workers,
		slots:   make(chan struct{}, queueSize),
		queue:   make(chan task, queueSize),
		logger:  logger.WithField("component", "dispatcher"),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches the workers.
func (d *Dispatcher) Start() error {
	d.runMutex.Lock()
	defer d.runMutex.Unlock()
	if d.running {
		return nil
	}
	d.running = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	d.logger.Info("dispatcher started", "workers", d.workers, "queueSize", cap(d.queue))
	return nil
}

// Stop refuses new submissions, cancels running jobs and waits for the
// workers until ctx is done. Jobs still queued end in status error.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.runMutex.Lock()
	if !d.running {
		d.runMutex.Unlock()
		return nil
	}
	d.running = false
	d.runMutex.Unlock()

	d.logger.Info("dispatcher stopping")
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	for {
		select {
		case t := <-d.queue:
			<-d.slots
			metrics.QueueLength.Dec()
			d.abandon(context.WithoutCancel(ctx), t.jobID, domain.StatusPending, reasonStopped)
		default:
			d.logger.Info("dispatcher stopped")
			return err
		}
	}
}

// Submit validates that the job can start, reserves a queue slot, moves the
// job to pending and queues it. The job stays new when passwords are missing
// or the queue is full.
func (d *Dispatcher) Submit(ctx context.Context, jobID string, overrides credentials.Overrides) (*domain.Job, error) {
	d.runMutex.RLock()
	defer d.runMutex.RUnlock()
	if !d.running {
		return nil, errors.WrapJobError(jobID, "submit", errors.ErrShuttingDown)
	}

	needed, err := d.starter.PasswordsNeeded(ctx, jobID, overrides)
	if err != nil {
		return nil, err
	}
	if len(needed) > 0 {
		metrics.StartRefusedTotal.WithLabelValues("passwords_needed").Inc()
		return nil, errors.WrapJobError(jobID, "submit", errors.NewPasswordsNeededError(needed))
	}

	select {
	case d.slots <- struct{}{}:
	default:
		metrics.StartRefusedTotal.WithLabelValues("queue_full").Inc()
		return nil, errors.WrapJobError(jobID, "submit", errors.ErrQueueFull)
	}

	pending := domain.StatusPending
	job, err := d.store.CompareAndSwap(ctx, jobID, []domain.JobStatus{domain.StatusNew},
		domain.JobUpdate{Status: &pending, Node: &d.node})
	if err != nil {
		<-d.slots
		metrics.StartRefusedTotal.WithLabelValues("conflict").Inc()
		return nil, err
	}

	d.queue <- task{jobID: jobID, overrides: overrides}
	metrics.QueueLength.Inc()
	d.logger.Debug("job queued", "jobId", jobID, "queued", len(d.queue))
	return job, nil
}

// QueueLength returns the number of jobs waiting for a worker.
func (d *Dispatcher) QueueLength() int {
	return len(d.queue)
}

// Recover ends the jobs a previous process on this node left pending or
// running. Nothing will ever run them: queued start-time passwords were
// never persisted and a running session died with its process. Both end in
// status error with a traceback naming the cause. Call it before Start.
func (d *Dispatcher) Recover(ctx context.Context) (int, error) {
	jobs, err := d.store.List(ctx, &storage.Filter{
		Statuses: []domain.JobStatus{domain.StatusPending, domain.StatusRunning},
	})
	if err != nil {
		return 0, err
	}
	n := 0
	for _, job := range jobs {
		if job.Node != "" && job.Node != d.node {
			continue
		}
		reason := reasonRestarted
		if job.Status == domain.StatusRunning {
			reason = reasonCrashed
		}
		if d.abandon(ctx, job.ID, job.Status, reason) {
			n++
		}
	}
	if n > 0 {
		d.logger.Info("ended orphaned jobs", "count", n)
	}
	return n, nil
}

// abandon ends a job that will never run to completion in status error.
func (d *Dispatcher) abandon(ctx context.Context, jobID string, from domain.JobStatus, reason string) bool {
	status := domain.StatusError
	now := time.Now().UTC()
	_, err := d.store.CompareAndSwap(ctx, jobID, []domain.JobStatus{from}, domain.JobUpdate{
		Status:          &status,
		ResultTraceback: &reason,
		FinishedAt:      &now,
	})
	if err != nil {
		d.logger.Warn("failed to end abandoned job", "jobId", jobID, "error", err)
		return false
	}
	metrics.JobsFinishedTotal.WithLabelValues(string(status)).Inc()
	d.logger.Info("job abandoned", "jobId", jobID, "from", from, "reason", reason)
	return true
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	log := d.logger.WithField("worker", id)

	for {
		select {
		case <-d.ctx.Done():
			return
		case t := <-d.queue:
			<-d.slots
			metrics.QueueLength.Dec()
			if d.ctx.Err() != nil {
				// Stop raced with this receive.
				d.abandon(context.Background(), t.jobID, domain.StatusPending, reasonStopped)
				return
			}
			begin := time.Now()
			started, err := d.starter.Start(d.ctx, t.jobID, t.overrides)
			if err != nil {
				log.Warn("job run ended with error", "jobId", t.jobID, "started", started, "error", err)
				continue
			}
			log.Debug("job run complete", "jobId", t.jobID, "elapsed", time.Since(begin))
		}
	}
}
