package core

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/ehsaniara/playrunner/internal/playrunner/archive"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/events"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
)

// storeMonitor persists transcript growth and reads the cancel flag from the
// job record, so any process sharing the store can cancel the run.
type storeMonitor struct {
	store  storage.Backend
	jobID  string
	sink   archive.Sink
	bus    events.Bus
	logger *logger.Logger

	mu         sync.Mutex
	transcript []byte
	// archived only advances on a successful append so a failed chunk is
	// retried; published always advances so subscribers never see repeats.
	archived  int
	published int
}

func newStoreMonitor(store storage.Backend, jobID string, sink archive.Sink, bus events.Bus, log *logger.Logger) *storeMonitor {
	return &storeMonitor{
		store:  store,
		jobID:  jobID,
		sink:   sink,
		bus:    bus,
		logger: log,
	}
}

// Flush stores the whole transcript on the job and forwards the new bytes to
// the archive and to subscribers.
func (m *storeMonitor) Flush(ctx context.Context, transcript []byte) error {
	m.mu.Lock()
	m.transcript = bytes.Clone(transcript)
	archiveChunk := tail(transcript, m.archived)
	busChunk := tail(transcript, m.published)
	m.published += len(busChunk)
	m.mu.Unlock()

	stdout := string(transcript)
	storeErr := m.store.Update(ctx, m.jobID, domain.JobUpdate{ResultStdout: &stdout})

	var archiveErr error
	if len(archiveChunk) > 0 {
		archiveErr = m.sink.Append(ctx, m.jobID, archiveChunk)
		if archiveErr == nil {
			m.mu.Lock()
			m.archived += len(archiveChunk)
			m.mu.Unlock()
		}
	}

	if len(busChunk) > 0 && m.bus != nil {
		_ = m.bus.Publish(ctx, events.JobTopic(m.jobID), events.JobEvent{
			Type:   events.EventOutput,
			JobID:  m.jobID,
			Status: domain.StatusRunning,
			Chunk:  busChunk,
			Time:   time.Now().UTC(),
		})
	}

	return errors.JoinErrors(storeErr, archiveErr)
}

func tail(transcript []byte, from int) []byte {
	if len(transcript) <= from {
		return nil
	}
	return bytes.Clone(transcript[from:])
}

// CancelRequested re-reads the job and reports its cancel flag.
func (m *storeMonitor) CancelRequested(ctx context.Context) (bool, error) {
	job, err := m.store.Get(ctx, m.jobID)
	if err != nil {
		return false, err
	}
	return job.CancelFlag, nil
}

// Transcript returns the last flushed transcript.
func (m *storeMonitor) Transcript() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.transcript)
}
