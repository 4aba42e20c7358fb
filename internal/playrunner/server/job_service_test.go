package server_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ehsaniara/playrunner/api"
	"github.com/ehsaniara/playrunner/internal/playrunner/credentials"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/events"
	"github.com/ehsaniara/playrunner/internal/playrunner/server"
	"github.com/ehsaniara/playrunner/internal/playrunner/server/serverfakes"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/client"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

type fixture struct {
	jobs      *serverfakes.FakeJobManager
	submitter *serverfakes.FakeSubmitter
	client    *client.JobClient
}

func newFixture(t *testing.T, bus events.Bus, opts ...server.ServiceOption) *fixture {
	t.Helper()

	f := &fixture{
		jobs:      &serverfakes.FakeJobManager{},
		submitter: &serverfakes.FakeSubmitter{},
	}

	cfg := config.DefaultConfig
	svc := server.NewJobServiceServer(f.jobs, f.submitter, bus, opts...)
	grpcServer, _, err := server.NewGRPCServer(&cfg, svc)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	f.client = client.NewJobClientWithConn(conn)
	t.Cleanup(func() { _ = f.client.Close() })
	return f
}

func sampleJob(id string, st domain.JobStatus) *domain.Job {
	return &domain.Job{
		ID:       id,
		Status:   st,
		JobType:  domain.JobTypeRun,
		Playbook: "site.yml",
		Project:  domain.Project{ID: "p", LocalPath: "/srv/p"},
		Credential: &domain.Credential{
			SSHUsername:  "deploy",
			SSHPassword:  "s3cret",
			SudoPassword: domain.AskSentinel,
		},
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestCreateJob_RedactsSecrets(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.CreateCalls(func(_ context.Context, job *domain.Job) (*domain.Job, error) {
		out := job.DeepCopy()
		out.ID = "job-1"
		out.Status = domain.StatusNew
		return out, nil
	})

	in := sampleJob("", "")
	got, err := f.client.CreateJob(context.Background(), in)
	require.NoError(t, err)

	_, sent := f.jobs.CreateArgsForCall(0)
	assert.Equal(t, "s3cret", sent.Credential.SSHPassword, "the daemon receives the secret")
	assert.Equal(t, "job-1", got.ID)
	assert.Equal(t, "$encrypted$", got.Credential.SSHPassword)
	assert.Equal(t, domain.AskSentinel, got.Credential.SudoPassword)
}

func TestCreateJob_InvalidSpec(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.CreateReturns(nil, errors.WrapJobError("x", "create", fmt.Errorf("%w: playbook", errors.ErrInvalidJobSpec)))

	_, err := f.client.CreateJob(context.Background(), sampleJob("x", ""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCreateJob_AlreadyExists(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.CreateReturns(nil, errors.WrapJobError("x", "create", errors.ErrJobAlreadyExists))

	_, err := f.client.CreateJob(context.Background(), sampleJob("x", ""))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestGetJob(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.GetReturns(sampleJob("job-1", domain.StatusRunning), nil)

	got, err := f.client.GetJob(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, got.Status)
	_, id := f.jobs.GetArgsForCall(0)
	assert.Equal(t, "job-1", id)
}

func TestGetJob_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.GetReturns(nil, errors.NewJobNotFoundError("nope"))

	_, err := f.client.GetJob(context.Background(), "nope")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetJob_EmptyID(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.client.GetJob(context.Background(), "")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, f.jobs.GetCallCount())
}

func TestListJobs(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.ListReturns([]*domain.Job{
		sampleJob("b", domain.StatusRunning),
		sampleJob("a", domain.StatusRunning),
	}, nil)

	jobs, err := f.client.ListJobs(context.Background(), []domain.JobStatus{domain.StatusRunning}, 2)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "b", jobs[0].ID)
	assert.Equal(t, "$encrypted$", jobs[0].Credential.SSHPassword)

	_, filter := f.jobs.ListArgsForCall(0)
	assert.Equal(t, &storage.Filter{Statuses: []domain.JobStatus{domain.StatusRunning}, Limit: 2}, filter)
}

func TestListJobs_Empty(t *testing.T) {
	f := newFixture(t, nil)

	jobs, err := f.client.ListJobs(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestListJobs_UnknownStatus(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.client.ListJobs(context.Background(), []domain.JobStatus{"bogus"}, 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, f.jobs.ListCallCount())
}

func TestStartJob_Queued(t *testing.T) {
	f := newFixture(t, nil)
	f.submitter.SubmitReturns(sampleJob("job-1", domain.StatusPending), nil)

	got, err := f.client.StartJob(context.Background(), "job-1", map[string]string{domain.FieldSudoPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, "$encrypted$", got.Credential.SSHPassword)

	_, id, overrides := f.submitter.SubmitArgsForCall(0)
	assert.Equal(t, "job-1", id)
	assert.Equal(t, credentials.Overrides{domain.FieldSudoPassword: "pw"}, overrides)
}

func TestStartJob_Refusals(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"passwords needed", errors.WrapJobError("j", "start", errors.NewPasswordsNeededError([]string{domain.FieldSudoPassword})), codes.FailedPrecondition},
		{"already started", fmt.Errorf("cas: %w", errors.ErrInvalidTransition), codes.FailedPrecondition},
		{"queue full", errors.ErrQueueFull, codes.ResourceExhausted},
		{"shutting down", errors.ErrShuttingDown, codes.Unavailable},
		{"not found", errors.NewJobNotFoundError("j"), codes.NotFound},
		{"store failure", fmt.Errorf("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.submitter.SubmitReturns(nil, tt.err)

			_, err := f.client.StartJob(context.Background(), "j", nil)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestStartJob_PasswordsNeededMessage(t *testing.T) {
	f := newFixture(t, nil)
	f.submitter.SubmitReturns(nil, errors.NewPasswordsNeededError([]string{domain.FieldSSHKeyUnlock}))

	_, err := f.client.StartJob(context.Background(), "j", nil)
	require.Error(t, err)
	assert.Contains(t, status.Convert(err).Message(), domain.FieldSSHKeyUnlock)
}

func TestCancelJob(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.CancelReturns(true, nil)

	ok, err := f.client.CancelJob(context.Background(), "job-1")
	require.NoError(t, err)
	assert.True(t, ok)

	f.jobs.CancelReturns(false, nil)
	ok, err = f.client.CancelJob(context.Background(), "job-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordsNeeded(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.PasswordsNeededReturns([]string{domain.FieldSudoPassword}, nil)

	fields, err := f.client.PasswordsNeeded(context.Background(), "job-1", map[string]string{domain.FieldSSHPassword: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FieldSudoPassword}, fields)

	_, _, overrides := f.jobs.PasswordsNeededArgsForCall(0)
	assert.Equal(t, "x", overrides[domain.FieldSSHPassword])
}

func TestWatchJob_StreamsDeltasUntilTerminal(t *testing.T) {
	f := newFixture(t, nil, server.WithWatchPoll(10*time.Millisecond))

	running := sampleJob("job-1", domain.StatusRunning)
	running.ResultStdout = "PLAY [all]"
	progressed := running.DeepCopy()
	progressed.ResultStdout = "PLAY [all]\nok: [web1]"
	unchanged := progressed.DeepCopy()
	done := progressed.DeepCopy()
	done.Status = domain.StatusSuccessful
	done.ResultStdout = "PLAY [all]\nok: [web1]\nPLAY RECAP"

	f.jobs.GetReturnsOnCall(0, running, nil)
	f.jobs.GetReturnsOnCall(1, progressed, nil)
	f.jobs.GetReturnsOnCall(2, unchanged, nil)
	f.jobs.GetReturnsOnCall(3, done, nil)

	var updates []api.WatchUpdate
	err := f.client.WatchJob(context.Background(), "job-1", func(u api.WatchUpdate) error {
		updates = append(updates, u)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, updates, 3, "an unchanged read sends nothing")
	assert.Equal(t, "PLAY [all]", updates[0].Output)
	assert.Equal(t, domain.StatusRunning, updates[0].Status)
	assert.Equal(t, "\nok: [web1]", updates[1].Output)
	assert.Equal(t, "\nPLAY RECAP", updates[2].Output)
	assert.Equal(t, domain.StatusSuccessful, updates[2].Status)
	assert.True(t, updates[2].Final)
}

func TestWatchJob_TruncatedOutputKeepsOffsets(t *testing.T) {
	f := newFixture(t, nil, server.WithWatchPoll(10*time.Millisecond))

	running := sampleJob("job-1", domain.StatusRunning)
	running.ResultStdout = "PLAY [all]\n"
	grown := running.DeepCopy()
	grown.ResultStdout = domain.TruncateOutput("PLAY [all]\nok: [web1]\nok: [web2]\n", 22)
	done := grown.DeepCopy()
	done.Status = domain.StatusSuccessful
	done.ResultStdout = domain.TruncateOutput("PLAY [all]\nok: [web1]\nok: [web2]\nPLAY RECAP", 22)

	f.jobs.GetReturnsOnCall(0, running, nil)
	f.jobs.GetReturnsOnCall(1, grown, nil)
	f.jobs.GetReturnsOnCall(2, done, nil)

	var updates []api.WatchUpdate
	err := f.client.WatchJob(context.Background(), "job-1", func(u api.WatchUpdate) error {
		updates = append(updates, u)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, updates, 3)
	assert.Equal(t, "PLAY [all]\n", updates[0].Output)
	assert.Equal(t, "ok: [web1]\nok: [web2]\n", updates[1].Output)
	assert.Equal(t, "PLAY RECAP", updates[2].Output)
}

func TestWatchJob_TerminalCarriesTraceback(t *testing.T) {
	f := newFixture(t, nil)

	failed := sampleJob("job-1", domain.StatusError)
	failed.ResultTraceback = "panic: boom"
	f.jobs.GetReturns(failed, nil)

	var updates []api.WatchUpdate
	err := f.client.WatchJob(context.Background(), "job-1", func(u api.WatchUpdate) error {
		updates = append(updates, u)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Final)
	assert.Equal(t, "panic: boom", updates[0].Traceback)
}

func TestWatchJob_WokenByBus(t *testing.T) {
	bus := events.NewBus(8)
	defer bus.Close()

	// A poll interval this long means only a bus event can end the watch.
	f := newFixture(t, bus, server.WithWatchPoll(time.Hour))

	f.jobs.GetReturnsOnCall(0, sampleJob("job-1", domain.StatusRunning), nil)
	f.jobs.GetReturnsOnCall(1, sampleJob("job-1", domain.StatusCanceled), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var last api.WatchUpdate
	err := f.client.WatchJob(ctx, "job-1", func(u api.WatchUpdate) error {
		last = u
		if u.Status == domain.StatusRunning {
			return bus.Publish(ctx, events.JobTopic("job-1"), events.JobEvent{
				Type: events.EventStatus, JobID: "job-1", Status: domain.StatusCanceled,
			})
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, last.Status)
	assert.True(t, last.Final)
}

func TestWatchJob_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.GetReturns(nil, errors.NewJobNotFoundError("nope"))

	err := f.client.WatchJob(context.Background(), "nope", func(api.WatchUpdate) error { return nil })
	assert.Equal(t, codes.NotFound, status.Code(err))
}
