package storage_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

func newJob(id string, created time.Time) *domain.Job {
	return &domain.Job{
		ID:        id,
		JobType:   domain.JobTypeRun,
		Playbook:  "site.yml",
		ExtraVars: map[string]interface{}{"env": "prod"},
		Credential: &domain.Credential{
			SSHUsername: "deploy",
			SSHPassword: domain.AskSentinel,
		},
		CreatedAt: created,
	}
}

func statusPtr(s domain.JobStatus) *domain.JobStatus { return &s }

func strPtr(s string) *string { return &s }

func TestMemoryBackend_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()

	require.NoError(t, b.Create(ctx, newJob("a", time.Time{})))

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "prod", got.ExtraVars["env"])

	err = b.Create(ctx, newJob("a", time.Time{}))
	assert.ErrorIs(t, err, storage.ErrJobAlreadyExists)
	assert.True(t, errors.IsConflictError(err))

	_, err = b.Get(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMemoryBackend_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	require.NoError(t, b.Create(ctx, newJob("a", time.Time{})))

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	got.ExtraVars["env"] = "dev"
	got.Credential.SSHPassword = "changed"

	again, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "prod", again.ExtraVars["env"])
	assert.Equal(t, domain.AskSentinel, again.Credential.SSHPassword)
}

func TestMemoryBackend_Update(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	require.NoError(t, b.Create(ctx, newJob("a", time.Time{})))

	require.NoError(t, b.Update(ctx, "a", domain.JobUpdate{ResultStdout: strPtr("PLAY [all]")}))

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "PLAY [all]", got.ResultStdout)
	assert.Equal(t, domain.StatusNew, got.Status)

	assert.ErrorIs(t, b.Update(ctx, "missing", domain.JobUpdate{}), storage.ErrJobNotFound)
}

func TestMemoryBackend_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	require.NoError(t, b.Create(ctx, newJob("a", time.Time{})))

	now := time.Now()
	job, err := b.CompareAndSwap(ctx, "a",
		[]domain.JobStatus{domain.StatusNew, domain.StatusPending},
		domain.JobUpdate{Status: statusPtr(domain.StatusRunning), StartedAt: &now})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, job.Status)
	require.NotNil(t, job.StartedAt)

	_, err = b.CompareAndSwap(ctx, "a",
		[]domain.JobStatus{domain.StatusNew},
		domain.JobUpdate{Status: statusPtr(domain.StatusRunning)})
	assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	assert.True(t, errors.IsConflictError(err))
	id, ok := errors.GetJobID(err)
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	_, err = b.CompareAndSwap(ctx, "missing", []domain.JobStatus{domain.StatusNew}, domain.JobUpdate{})
	assert.ErrorIs(t, err, storage.ErrJobNotFound)
}

func TestMemoryBackend_StatusNeverMovesBackward(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	require.NoError(t, b.Create(ctx, newJob("a", time.Time{})))
	require.NoError(t, b.Update(ctx, "a", domain.JobUpdate{Status: statusPtr(domain.StatusRunning)}))

	err := b.Update(ctx, "a", domain.JobUpdate{Status: statusPtr(domain.StatusNew)})
	assert.ErrorIs(t, err, storage.ErrInvalidTransition)

	_, err = b.CompareAndSwap(ctx, "a",
		[]domain.JobStatus{domain.StatusRunning},
		domain.JobUpdate{Status: statusPtr(domain.StatusPending)})
	assert.ErrorIs(t, err, storage.ErrInvalidTransition)

	require.NoError(t, b.Update(ctx, "a", domain.JobUpdate{Status: statusPtr(domain.StatusRunning), ResultStdout: strPtr("x")}),
		"rewriting the current status is allowed")
	require.NoError(t, b.Update(ctx, "a", domain.JobUpdate{Status: statusPtr(domain.StatusFailed)}))

	err = b.Update(ctx, "a", domain.JobUpdate{Status: statusPtr(domain.StatusSuccessful)})
	assert.ErrorIs(t, err, storage.ErrInvalidTransition, "terminal statuses are final")

	got, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, got.Status)
	assert.Equal(t, "x", got.ResultStdout)
}

func TestMemoryBackend_CompareAndSwapSingleWinner(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	require.NoError(t, b.Create(ctx, newJob("a", time.Time{})))

	const racers = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := b.CompareAndSwap(ctx, "a",
				[]domain.JobStatus{domain.StatusNew},
				domain.JobUpdate{Status: statusPtr(domain.StatusRunning)})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestMemoryBackend_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	b := storage.NewMemoryBackend()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Create(ctx, newJob(fmt.Sprintf("job-%d", i), base.Add(time.Duration(i)*time.Minute))))
	}
	_, err := b.CompareAndSwap(ctx, "job-1", []domain.JobStatus{domain.StatusNew},
		domain.JobUpdate{Status: statusPtr(domain.StatusFailed)})
	require.NoError(t, err)

	all, err := b.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "job-4", all[0].ID)
	assert.Equal(t, "job-0", all[4].ID)

	limited, err := b.List(ctx, &storage.Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	failed, err := b.List(ctx, &storage.Filter{Statuses: []domain.JobStatus{domain.StatusFailed}})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "job-1", failed[0].ID)

	require.NoError(t, b.Delete(ctx, "job-1"))
	assert.ErrorIs(t, b.Delete(ctx, "job-1"), storage.ErrJobNotFound)

	all, err = b.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestFilter_Matches(t *testing.T) {
	job := &domain.Job{Status: domain.StatusRunning}

	var nilFilter *storage.Filter
	assert.True(t, nilFilter.Matches(job))
	assert.True(t, (&storage.Filter{}).Matches(job))
	assert.True(t, (&storage.Filter{Statuses: []domain.JobStatus{domain.StatusNew, domain.StatusRunning}}).Matches(job))
	assert.False(t, (&storage.Filter{Statuses: []domain.JobStatus{domain.StatusNew}}).Matches(job))
}

func TestNewBackend_Selection(t *testing.T) {
	b, err := storage.NewBackend(context.Background(), config.StorageConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.NoError(t, b.HealthCheck(context.Background()))

	_, err = storage.NewBackend(context.Background(), config.StorageConfig{Backend: "etcd"})
	assert.Equal(t, storage.ErrInvalidBackend, err)
}
