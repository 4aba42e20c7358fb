package server

//go:generate go tool counterfeiter -generate

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/ehsaniara/playrunner/api"
	"github.com/ehsaniara/playrunner/internal/playrunner/credentials"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/events"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
)

// JobManager is the job lifecycle surface exposed over the API.
//
//counterfeiter:generate . JobManager
type JobManager interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	List(ctx context.Context, filter *storage.Filter) ([]*domain.Job, error)
	Cancel(ctx context.Context, jobID string) (bool, error)
	PasswordsNeeded(ctx context.Context, jobID string, overrides credentials.Overrides) ([]string, error)
}

// Submitter queues a job for a worker.
//
//counterfeiter:generate . Submitter
type Submitter interface {
	Submit(ctx context.Context, jobID string, overrides credentials.Overrides) (*domain.Job, error)
}

const defaultWatchPoll = 2 * time.Second

// JobServiceServer implements playrunner.v1.JobService.
type JobServiceServer struct {
	jobs      JobManager
	submitter Submitter
	bus       events.Bus
	watchPoll time.Duration
	logger    *logger.Logger
}

var _ api.JobServiceServer = (*JobServiceServer)(nil)

type ServiceOption func(*JobServiceServer)

// WithWatchPoll sets how often WatchJob re-reads the job without a bus event.
func WithWatchPoll(d time.Duration) ServiceOption {
	return func(s *JobServiceServer) {
		if d > 0 {
			s.watchPoll = d
		}
	}
}

// NewJobServiceServer creates the service. bus may be nil, in which case
// WatchJob only polls.
func NewJobServiceServer(jobs JobManager, submitter Submitter, bus events.Bus, opts ...ServiceOption) *JobServiceServer {
	s := &JobServiceServer{
		jobs:      jobs,
		submitter: submitter,
		bus:       bus,
		watchPoll: defaultWatchPoll,
		logger:    logger.WithField("component", "job-grpc"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// convertErrorToGRPCStatus converts structured errors to appropriate gRPC status codes
func convertErrorToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	if errors.IsContextError(err) {
		return status.FromContextError(err).Err()
	}

	switch {
	case errors.IsNotFoundError(err):
		return status.Errorf(codes.NotFound, "%v", err)
	case errors.IsPreconditionError(err):
		return status.Errorf(codes.FailedPrecondition, "%v", err)
	case errors.IsAlreadyExistsError(err):
		return status.Errorf(codes.AlreadyExists, "%v", err)
	case errors.IsConflictError(err):
		return status.Errorf(codes.FailedPrecondition, "%v", err)
	case errors.IsInvalidInputError(err):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.IsQueueFullError(err):
		return status.Errorf(codes.ResourceExhausted, "%v", err)
	case errors.IsUnavailableError(err):
		return status.Errorf(codes.Unavailable, "%v", err)
	case errors.IsPermissionError(err):
		return status.Errorf(codes.PermissionDenied, "%v", err)
	case errors.IsTimeoutError(err):
		return status.Errorf(codes.DeadlineExceeded, "%v", err)
	default:
		return status.Errorf(codes.Internal, "%v", err)
	}
}

func (s *JobServiceServer) CreateJob(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	log := s.logger.WithField("operation", "CreateJob")

	var job domain.Job
	if err := api.FromStruct(req, &job); err != nil {
		return nil, convertErrorToGRPCStatus(errors.WrapConfigError("job-request", "conversion", err))
	}

	created, err := s.jobs.Create(ctx, &job)
	if err != nil {
		log.Warn("create failed", "error", err)
		return nil, convertErrorToGRPCStatus(err)
	}
	return jobResponse(created)
}

func (s *JobServiceServer) GetJob(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is required")
	}
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		return nil, convertErrorToGRPCStatus(err)
	}
	return jobResponse(job)
}

func (s *JobServiceServer) ListJobs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var lr api.ListRequest
	if req != nil && len(req.GetFields()) > 0 {
		if err := api.FromStruct(req, &lr); err != nil {
			return nil, convertErrorToGRPCStatus(errors.WrapConfigError("list-request", "conversion", err))
		}
	}
	if lr.Limit < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid limit: %d", lr.Limit)
	}
	for _, st := range lr.Statuses {
		if !st.IsValid() {
			return nil, status.Errorf(codes.InvalidArgument, "unknown job status %q", st)
		}
	}

	jobs, err := s.jobs.List(ctx, &storage.Filter{Statuses: lr.Statuses, Limit: lr.Limit})
	if err != nil {
		return nil, convertErrorToGRPCStatus(err)
	}
	for _, j := range jobs {
		j.Credential = j.Credential.Redacted()
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	return structResponse(api.ListResponse{Jobs: jobs})
}

// StartJob queues the job for execution. It returns once the job is
// pending; the outcome is observed through GetJob or WatchJob.
func (s *JobServiceServer) StartJob(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var sr api.StartRequest
	if err := api.FromStruct(req, &sr); err != nil {
		return nil, convertErrorToGRPCStatus(errors.WrapConfigError("start-request", "conversion", err))
	}
	if sr.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is required")
	}
	log := s.logger.WithFields("operation", "StartJob", "jobId", sr.ID, "overrides", len(sr.Overrides))

	job, err := s.submitter.Submit(ctx, sr.ID, credentials.Overrides(sr.Overrides))
	if err != nil {
		log.Info("start refused", "error", err)
		return nil, convertErrorToGRPCStatus(err)
	}
	log.Debug("job queued")
	return jobResponse(job)
}

func (s *JobServiceServer) CancelJob(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	id := req.GetValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is required")
	}
	canceled, err := s.jobs.Cancel(ctx, id)
	if err != nil {
		return nil, convertErrorToGRPCStatus(err)
	}
	return wrapperspb.Bool(canceled), nil
}

func (s *JobServiceServer) PasswordsNeeded(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var sr api.StartRequest
	if err := api.FromStruct(req, &sr); err != nil {
		return nil, convertErrorToGRPCStatus(errors.WrapConfigError("start-request", "conversion", err))
	}
	if sr.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "job id is required")
	}
	fields, err := s.jobs.PasswordsNeeded(ctx, sr.ID, credentials.Overrides(sr.Overrides))
	if err != nil {
		return nil, convertErrorToGRPCStatus(err)
	}
	if fields == nil {
		fields = []string{}
	}
	return structResponse(api.PasswordsResponse{Fields: fields})
}

// WatchJob streams status changes and transcript growth until the job
// reaches a terminal status. The store is the source of truth; bus events
// only trigger an early re-read.
func (s *JobServiceServer) WatchJob(req *wrapperspb.StringValue, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	ctx := stream.Context()
	id := req.GetValue()
	if id == "" {
		return status.Error(codes.InvalidArgument, "job id is required")
	}
	log := s.logger.WithFields("operation", "WatchJob", "jobId", id)

	var wake <-chan events.Message[events.JobEvent]
	if s.bus != nil {
		ch, unsubscribe, err := s.bus.Subscribe(ctx, events.JobTopic(id))
		if err != nil {
			log.Warn("watch falls back to polling", "error", err)
		} else {
			defer unsubscribe()
			wake = ch
		}
	}

	ticker := time.NewTicker(s.watchPoll)
	defer ticker.Stop()

	w := &watchState{}
	for {
		job, err := s.jobs.Get(ctx, id)
		if err != nil {
			return convertErrorToGRPCStatus(err)
		}

		update, ok := w.next(job)
		if ok {
			msg, err := api.ToStruct(update)
			if err != nil {
				return status.Errorf(codes.Internal, "%v", err)
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
			if update.Final {
				log.Debug("watch completed", "status", job.Status)
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case _, open := <-wake:
			if !open {
				wake = nil
			}
		case <-ticker.C:
		}
	}
}

// watchState remembers what a watcher has already been sent. offset counts
// bytes of the full transcript, so it survives stores that keep only a tail.
type watchState struct {
	status domain.JobStatus
	offset int
}

func (w *watchState) next(job *domain.Job) (api.WatchUpdate, bool) {
	dropped, body := domain.SplitTruncated(job.ResultStdout)
	end := dropped + len(body)
	var delta string
	if end > w.offset {
		delta = body[max(w.offset-dropped, 0):]
	}
	final := job.Status.IsTerminal()
	if delta == "" && job.Status == w.status && !final {
		return api.WatchUpdate{}, false
	}

	update := api.WatchUpdate{
		JobID:  job.ID,
		Status: job.Status,
		Output: delta,
		Final:  final,
	}
	if final {
		update.Traceback = job.ResultTraceback
	}
	w.status = job.Status
	if end > w.offset {
		w.offset = end
	}
	return update, true
}

func jobResponse(job *domain.Job) (*structpb.Struct, error) {
	out := job.DeepCopy()
	out.Credential = out.Credential.Redacted()
	return structResponse(out)
}

func structResponse(v interface{}) (*structpb.Struct, error) {
	s, err := api.ToStruct(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return s, nil
}
