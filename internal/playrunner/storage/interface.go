package storage

//go:generate go tool counterfeiter -generate

import (
	"context"
	"fmt"
	"time"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

//counterfeiter:generate . Backend

// Backend is the job record store. Every method that mutates a job does so
// atomically for the fields it names.
type Backend interface {
	// Create stores a new job. The ID must be unused.
	Create(ctx context.Context, job *domain.Job) error

	// Get returns a copy of the job.
	Get(ctx context.Context, jobID string) (*domain.Job, error)

	// Update applies the non-nil fields of update. A status change that
	// would move the job backwards, or out of a terminal status, yields
	// errors.ErrInvalidTransition.
	Update(ctx context.Context, jobID string, update domain.JobUpdate) error

	// CompareAndSwap applies update only if the job's current status is one
	// of expected, and returns the job as stored afterwards. A mismatch, or
	// a status change Update would refuse, yields errors.ErrInvalidTransition.
	CompareAndSwap(ctx context.Context, jobID string, expected []domain.JobStatus, update domain.JobUpdate) (*domain.Job, error)

	// Delete removes a job.
	Delete(ctx context.Context, jobID string) error

	// List returns jobs newest first.
	List(ctx context.Context, filter *Filter) ([]*domain.Job, error)

	Close() error

	HealthCheck(ctx context.Context) error
}

// Filter for listing jobs
type Filter struct {
	Statuses []domain.JobStatus // OR condition; empty means all
	Limit    int                // 0 = unlimited
}

// Matches reports whether job passes the status filter.
func (f *Filter) Matches(job *domain.Job) bool {
	if f == nil || len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if job.Status == s {
			return true
		}
	}
	return false
}

// NewBackend creates the backend selected in cfg.
func NewBackend(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case "memory", "":
		return NewMemoryBackend(), nil
	case "dynamodb":
		return NewDynamoDBBackend(ctx, cfg.DynamoDB)
	case "redis":
		return NewRedisBackend(ctx, cfg.Redis)
	default:
		return nil, ErrInvalidBackend
	}
}

// Lookup and state errors are shared with the rest of playrunner so callers
// can classify them with pkg/errors.
var (
	ErrJobNotFound       = errors.ErrJobNotFound
	ErrJobAlreadyExists  = errors.ErrJobAlreadyExists
	ErrInvalidTransition = errors.ErrInvalidTransition
)

var (
	ErrInvalidBackend     = &StorageError{Code: "INVALID_BACKEND", Message: "invalid storage backend"}
	ErrBackendUnavailable = &StorageError{Code: "UNAVAILABLE", Message: "backend unavailable"}
)

// StorageError represents a backend failure, as opposed to a job in the
// wrong state.
type StorageError struct {
	Code    string
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func transitionError(jobID string, current domain.JobStatus, expected []domain.JobStatus) error {
	return errors.WrapJobError(jobID, "compare-and-swap",
		fmt.Errorf("%w: status is %s, expected one of %v", ErrInvalidTransition, current, expected))
}

// checkTransition rejects an update whose status change is not a forward
// step from current.
func checkTransition(jobID string, current domain.JobStatus, update domain.JobUpdate) error {
	if update.Status == nil || current.AllowsTransition(*update.Status) {
		return nil
	}
	return errors.WrapJobError(jobID, "update",
		fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, current, *update.Status))
}

// sources lists the statuses from which update may be applied, narrowed to
// within when within is non-nil.
func sources(update domain.JobUpdate, within []domain.JobStatus) []domain.JobStatus {
	if within == nil {
		within = domain.AllStatuses
	}
	if update.Status == nil {
		return within
	}
	out := make([]domain.JobStatus, 0, len(within))
	for _, s := range within {
		if s.AllowsTransition(*update.Status) {
			out = append(out, s)
		}
	}
	return out
}

func statusIn(s domain.JobStatus, expected []domain.JobStatus) bool {
	for _, e := range expected {
		if s == e {
			return true
		}
	}
	return false
}

// stamp fills the creation defaults of a job about to be stored.
func stamp(job *domain.Job) *domain.Job {
	c := job.DeepCopy()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Status == "" {
		c.Status = domain.StatusNew
	}
	return c
}
