// Package core drives a job from start request to final result.
package core

//go:generate go tool counterfeiter -generate

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/ehsaniara/playrunner/internal/playrunner/archive"
	"github.com/ehsaniara/playrunner/internal/playrunner/credentials"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/events"
	"github.com/ehsaniara/playrunner/internal/playrunner/invocation"
	"github.com/ehsaniara/playrunner/internal/playrunner/metrics"
	"github.com/ehsaniara/playrunner/internal/playrunner/session"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/platform"
)

// SessionRunner executes one interactive run.
//
//counterfeiter:generate . SessionRunner
type SessionRunner interface {
	Run(ctx context.Context, req session.Request) (*session.Result, error)
}

// startable are the statuses Start accepts.
var startable = []domain.JobStatus{domain.StatusNew, domain.StatusPending}

// cancelable are the statuses Cancel flags.
var cancelable = []domain.JobStatus{domain.StatusNew, domain.StatusPending, domain.StatusRunning}

// Dependencies are the collaborators of a Controller. Archive and Bus are
// optional. Node names this daemon on the jobs it runs.
type Dependencies struct {
	Store        storage.Backend
	Materializer *credentials.Materializer
	Builder      *invocation.Builder
	Runner       SessionRunner
	OS           platform.OSOperations
	Archive      archive.Sink
	Bus          events.Bus
	Node         string
}

// Controller owns the lifecycle of job runs.
type Controller struct {
	store        storage.Backend
	materializer *credentials.Materializer
	builder      *invocation.Builder
	runner       SessionRunner
	os           platform.OSOperations
	archive      archive.Sink
	bus          events.Bus
	node         string
	logger       *logger.Logger
}

func NewController(deps Dependencies) *Controller {
	c := &Controller{
		store:        deps.Store,
		materializer: deps.Materializer,
		builder:      deps.Builder,
		runner:       deps.Runner,
		os:           deps.OS,
		archive:      deps.Archive,
		bus:          deps.Bus,
		node:         deps.Node,
		logger:       logger.WithField("component", "controller"),
	}
	if c.archive == nil {
		c.archive = archive.NopSink()
	}
	return c
}

// Create validates and stores a new job. An empty ID is replaced with a
// fresh UUID; status, results and timestamps are reset.
func (c *Controller) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if job == nil {
		return nil, fmt.Errorf("%w: nil job", errors.ErrInvalidJobSpec)
	}
	j := job.DeepCopy()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.JobType == "" {
		j.JobType = domain.JobTypeRun
	}
	j.Status = domain.StatusNew
	j.Node = ""
	j.CancelFlag = false
	j.ResultStdout, j.ResultStderr, j.ResultTraceback = "", "", ""
	j.CreatedAt = time.Now().UTC()
	j.StartedAt, j.FinishedAt = nil, nil

	if err := j.Validate(); err != nil {
		return nil, errors.WrapJobError(j.ID, "create", fmt.Errorf("%w: %v", errors.ErrInvalidJobSpec, err))
	}
	if err := c.store.Create(ctx, j); err != nil {
		return nil, errors.WrapJobError(j.ID, "create", err)
	}

	c.logger.Info("job created", "jobId", j.ID, "playbook", j.Playbook, "type", j.JobType)
	c.publishStatus(ctx, j.ID, j.Status)
	return j, nil
}

// Get returns the job with its credential secrets redacted.
func (c *Controller) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := c.store.Get(ctx, jobID)
	if err != nil {
		return nil, errors.WrapJobError(jobID, "get", err)
	}
	job.Credential = job.Credential.Redacted()
	return job, nil
}

// List returns jobs newest first with credential secrets redacted.
func (c *Controller) List(ctx context.Context, filter *storage.Filter) ([]*domain.Job, error) {
	jobs, err := c.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		j.Credential = j.Credential.Redacted()
	}
	return jobs, nil
}

// PasswordsNeeded lists the credential fields that must still be supplied
// before the job can start.
func (c *Controller) PasswordsNeeded(ctx context.Context, jobID string, overrides credentials.Overrides) ([]string, error) {
	job, err := c.store.Get(ctx, jobID)
	if err != nil {
		return nil, errors.WrapJobError(jobID, "passwords-needed", err)
	}
	return credentials.PasswordsNeeded(job.Credential, overrides), nil
}

// Start runs the job to completion and reports whether it was started.
//
// A job whose credential still asks for passwords is refused and stays in
// its current status. Otherwise the status moves to running in one atomic
// store operation before any process work, the playbook is run, and the
// result is persisted with a single final update. Panics and infrastructure
// failures after the transition end the job in status error with a
// traceback; they are not returned.
func (c *Controller) Start(ctx context.Context, jobID string, overrides credentials.Overrides) (started bool, err error) {
	log := c.logger.WithField("jobId", jobID)

	job, err := c.store.Get(ctx, jobID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			metrics.StartRefusedTotal.WithLabelValues("not_found").Inc()
		}
		return false, errors.WrapJobError(jobID, "start", err)
	}

	// Covers the status transition itself; execute recovers on its own.
	defer func() {
		if r := recover(); r != nil {
			res := runResult{
				status:    domain.StatusError,
				traceback: fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()),
			}
			started, err = true, c.finish(context.WithoutCancel(ctx), job, res, log)
		}
	}()

	if needed := credentials.PasswordsNeeded(job.Credential, overrides); len(needed) > 0 {
		metrics.StartRefusedTotal.WithLabelValues("passwords_needed").Inc()
		log.Info("start refused, passwords needed", "fields", needed)
		return false, errors.WrapJobError(jobID, "start", errors.NewPasswordsNeededError(needed))
	}

	running := domain.StatusRunning
	now := time.Now().UTC()
	swapped, err := c.store.CompareAndSwap(ctx, jobID, startable, domain.JobUpdate{
		Status:    &running,
		Node:      &c.node,
		StartedAt: &now,
	})
	if err != nil {
		metrics.StartRefusedTotal.WithLabelValues("conflict").Inc()
		log.Info("start refused", "error", err)
		return false, err
	}
	job = swapped

	metrics.JobsStartedTotal.Inc()
	metrics.RunningJobs.Inc()
	defer metrics.RunningJobs.Dec()

	log.Info("job running", "playbook", job.Playbook, "type", job.JobType)
	c.publishStatus(ctx, jobID, running)

	mon := newStoreMonitor(c.store, jobID, c.archive, c.bus, log)
	result := c.execute(ctx, job, overrides, mon)

	// The final record must land even when ctx was canceled mid-run.
	return true, c.finish(context.WithoutCancel(ctx), job, result, log)
}

// Cancel flags the job for cancellation. A running job is killed by its
// runner at the next poll; a job that has not started yet ends canceled as
// soon as it is started. Terminal jobs are left alone and false is returned.
func (c *Controller) Cancel(ctx context.Context, jobID string) (bool, error) {
	flag := true
	_, err := c.store.CompareAndSwap(ctx, jobID, cancelable, domain.JobUpdate{CancelFlag: &flag})
	if errors.IsConflictError(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapJobError(jobID, "cancel", err)
	}
	c.logger.Info("cancel requested", "jobId", jobID)
	return true, nil
}

// runResult is what execute hands to finish.
type runResult struct {
	status    domain.JobStatus
	stdout    string
	traceback string
	duration  time.Duration
	prompts   int
}

// execute materializes secrets, builds the invocation and runs it. It never
// panics: a panic anywhere below is converted into status error.
func (c *Controller) execute(ctx context.Context, job *domain.Job, overrides credentials.Overrides, mon *storeMonitor) (res runResult) {
	defer func() {
		if r := recover(); r != nil {
			res = runResult{
				status:    domain.StatusError,
				stdout:    mon.Transcript(),
				traceback: fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()),
			}
		}
	}()

	secrets, err := c.materializer.Materialize(job.Credential, overrides)
	if err != nil {
		return c.fault(err, mon)
	}
	defer secrets.Release()

	inv, err := c.builder.Build(job, secrets.Secrets, invocation.Options{
		SSHUsername:  overrides[domain.FieldSSHUsername],
		SudoUsername: overrides[domain.FieldSudoUsername],
	}, c.os.Environ())
	if err != nil {
		return c.fault(err, mon)
	}

	out, err := c.runner.Run(ctx, session.Request{
		Argv:      inv.Argv,
		Dir:       inv.Dir,
		Env:       inv.Environ(),
		Passwords: secrets.Passwords,
		Monitor:   mon,
	})
	if err != nil {
		return c.fault(err, mon)
	}

	res = runResult{
		stdout:   string(out.Transcript),
		duration: out.Duration,
	}
	for _, n := range out.Prompts {
		res.prompts += n
	}
	switch out.Outcome {
	case session.OutcomeSuccessful:
		res.status = domain.StatusSuccessful
	case session.OutcomeCanceled:
		res.status = domain.StatusCanceled
	default:
		res.status = domain.StatusFailed
	}
	return res
}

func (c *Controller) fault(err error, mon *storeMonitor) runResult {
	return runResult{
		status:    domain.StatusError,
		stdout:    mon.Transcript(),
		traceback: fmt.Sprintf("%v\n\n%s", err, debug.Stack()),
	}
}

// finish persists the result of a run in one update. When that write fails
// for any reason other than the job already being settled, a minimal update
// still moves the job out of running.
func (c *Controller) finish(ctx context.Context, job *domain.Job, res runResult, log *logger.Logger) error {
	finished := time.Now().UTC()
	stderr := ""
	err := c.store.Update(ctx, job.ID, domain.JobUpdate{
		Status:          &res.status,
		ResultStdout:    &res.stdout,
		ResultStderr:    &stderr,
		ResultTraceback: &res.traceback,
		FinishedAt:      &finished,
	})

	metrics.JobsFinishedTotal.WithLabelValues(string(res.status)).Inc()
	metrics.RunDurationSeconds.WithLabelValues(string(res.status)).Observe(res.duration.Seconds())
	metrics.TranscriptBytes.Observe(float64(len(res.stdout)))

	if err != nil {
		log.Error("failed to persist job result", "status", res.status, "error", err)
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return errors.WrapJobError(job.ID, "finish", err)
		}
		traceback := fmt.Sprintf("result could not be stored: %v", err)
		if res.traceback != "" {
			traceback = res.traceback + "\n\n" + traceback
		}
		if fallbackErr := c.store.Update(ctx, job.ID, domain.JobUpdate{
			Status:          &res.status,
			ResultTraceback: &traceback,
			FinishedAt:      &finished,
		}); fallbackErr != nil {
			log.Error("failed to persist minimal job result", "status", res.status, "error", fallbackErr)
			return errors.WrapJobError(job.ID, "finish", errors.JoinErrors(err, fallbackErr))
		}
		c.publishStatus(ctx, job.ID, res.status)
		return errors.WrapJobError(job.ID, "finish", err)
	}

	if res.status == domain.StatusError {
		log.Error("job errored", "traceback", firstLine(res.traceback))
	} else {
		log.Info("job finished", "status", res.status, "duration", res.duration, "prompts", res.prompts)
	}
	c.publishStatus(ctx, job.ID, res.status)
	return nil
}

func (c *Controller) publishStatus(ctx context.Context, jobID string, status domain.JobStatus) {
	if c.bus == nil {
		return
	}
	ev := events.JobEvent{Type: events.EventStatus, JobID: jobID, Status: status, Time: time.Now().UTC()}
	if err := c.bus.Publish(ctx, events.JobTopic(jobID), ev); err != nil {
		c.logger.Debug("failed to publish status event", "jobId", jobID, "error", err)
	}
	_ = c.bus.Publish(ctx, events.AllJobsTopic, ev)
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
