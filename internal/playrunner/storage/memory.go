package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
)

// memoryBackend keeps jobs in process memory. Data is lost on restart; it
// serves single-node setups and tests.
type memoryBackend struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
}

func NewMemoryBackend() Backend {
	return &memoryBackend{
		jobs: make(map[string]*domain.Job),
	}
}

func (m *memoryBackend) Create(ctx context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.jobs[job.ID]; exists {
		return ErrJobAlreadyExists
	}
	m.jobs[job.ID] = stamp(job)
	return nil
}

func (m *memoryBackend) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return nil, ErrJobNotFound
	}
	return job.DeepCopy(), nil
}

func (m *memoryBackend) Update(ctx context.Context, jobID string, update domain.JobUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return ErrJobNotFound
	}
	if err := checkTransition(jobID, job.Status, update); err != nil {
		return err
	}
	update.Apply(job)
	return nil
}

func (m *memoryBackend) CompareAndSwap(ctx context.Context, jobID string, expected []domain.JobStatus, update domain.JobUpdate) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return nil, ErrJobNotFound
	}
	if !statusIn(job.Status, expected) {
		return nil, transitionError(jobID, job.Status, expected)
	}
	if err := checkTransition(jobID, job.Status, update); err != nil {
		return nil, err
	}
	update.Apply(job)
	return job.DeepCopy(), nil
}

func (m *memoryBackend) Delete(ctx context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.jobs[jobID]; !exists {
		return ErrJobNotFound
	}
	delete(m.jobs, jobID)
	return nil
}

func (m *memoryBackend) List(ctx context.Context, filter *Filter) ([]*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := make([]*domain.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		if filter.Matches(job) {
			jobs = append(jobs, job.DeepCopy())
		}
	}
	sortNewestFirst(jobs)

	if filter != nil && filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

func (m *memoryBackend) Close() error {
	return nil
}

func (m *memoryBackend) HealthCheck(ctx context.Context) error {
	return nil
}

func sortNewestFirst(jobs []*domain.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
