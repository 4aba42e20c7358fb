package events

import (
	"time"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
)

// EventType distinguishes status changes from output progress.
type EventType string

const (
	EventStatus EventType = "status"
	EventOutput EventType = "output"
)

// JobEvent is published whenever a job changes status or its transcript grows.
type JobEvent struct {
	Type   EventType
	JobID  string
	Status domain.JobStatus
	// Chunk holds the transcript bytes added since the previous output event.
	Chunk []byte
	Time  time.Time
}

// JobTopic is the topic carrying events for a single job.
func JobTopic(jobID string) string {
	return "job." + jobID
}

// AllJobsTopic carries status events of every job.
const AllJobsTopic = "jobs"

// Bus is the job event bus used across playrunner.
type Bus = PubSub[JobEvent]

// NewBus creates a job event bus.
func NewBus(bufferSize int) Bus {
	return NewPubSub[JobEvent](WithBufferSize[JobEvent](bufferSize))
}
