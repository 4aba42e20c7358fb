package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// JobStatus represents the current state of a job
type JobStatus string

const (
	StatusNew        JobStatus = "new"
	StatusPending    JobStatus = "pending"
	StatusRunning    JobStatus = "running"
	StatusSuccessful JobStatus = "successful"
	StatusFailed     JobStatus = "failed"
	StatusCanceled   JobStatus = "canceled"
	StatusError      JobStatus = "error"
)

// JobType selects between a real run and a dry run.
type JobType string

const (
	JobTypeRun   JobType = "run"
	JobTypeCheck JobType = "check"
)

var (
	ErrMissingID       = errors.New("job id cannot be empty")
	ErrMissingPlaybook = errors.New("job playbook cannot be empty")
	ErrInvalidJobType  = errors.New("job type must be run or check")
	ErrNegativeForks   = errors.New("job forks cannot be negative")
	ErrPlaybookEscapes = errors.New("job playbook must stay inside the project")
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []JobStatus{
	StatusNew, StatusPending, StatusRunning,
	StatusSuccessful, StatusFailed, StatusCanceled, StatusError,
}

var statusRank = map[JobStatus]int{
	StatusNew:        0,
	StatusPending:    1,
	StatusRunning:    2,
	StatusSuccessful: 3,
	StatusFailed:     3,
	StatusCanceled:   3,
	StatusError:      3,
}

// IsValid reports whether s is one of the known statuses.
func (s JobStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// IsTerminal returns true once no further run of the job can happen.
func (s JobStatus) IsTerminal() bool {
	return statusRank[s] == 3
}

// CanTransitionTo enforces new -> pending -> running -> terminal. Steps may
// be skipped but never reversed, and terminal statuses are final.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if !s.IsValid() || !next.IsValid() || s.IsTerminal() {
		return false
	}
	return statusRank[next] > statusRank[s]
}

// AllowsTransition reports whether a store write may set next on a job
// currently in s. Rewriting the current status is always allowed.
func (s JobStatus) AllowsTransition(next JobStatus) bool {
	return s == next || s.CanTransitionTo(next)
}

// Job is one requested execution of a playbook against an inventory.
type Job struct {
	ID        string                 `json:"id" yaml:"id,omitempty"`
	Name      string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Status    JobStatus              `json:"status" yaml:"status,omitempty"`
	JobType   JobType                `json:"jobType" yaml:"jobType,omitempty"`
	Playbook  string                 `json:"playbook" yaml:"playbook"` // relative to Project.LocalPath
	Forks     int                    `json:"forks,omitempty" yaml:"forks,omitempty"`
	Limit     string                 `json:"limit,omitempty" yaml:"limit,omitempty"`
	Verbosity int                    `json:"verbosity,omitempty" yaml:"verbosity,omitempty"`
	UseSudo   bool                   `json:"useSudo,omitempty" yaml:"useSudo,omitempty"`
	ExtraVars map[string]interface{} `json:"extraVars,omitempty" yaml:"extraVars,omitempty"`

	Inventory  InventoryRef `json:"inventory" yaml:"inventory"`
	Project    Project      `json:"project" yaml:"project"`
	Credential *Credential  `json:"credential,omitempty" yaml:"credential,omitempty"`
	CreatedBy  string       `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`

	// Node is the daemon that queued or ran the job.
	Node            string `json:"node,omitempty" yaml:"-"`
	CancelFlag      bool   `json:"cancelFlag,omitempty" yaml:"-"`
	ResultStdout    string `json:"resultStdout,omitempty" yaml:"-"`
	ResultStderr    string `json:"resultStderr,omitempty" yaml:"-"`
	ResultTraceback string `json:"resultTraceback,omitempty" yaml:"-"`

	CreatedAt  time.Time  `json:"createdAt" yaml:"-"`
	StartedAt  *time.Time `json:"startedAt,omitempty" yaml:"-"`
	FinishedAt *time.Time `json:"finishedAt,omitempty" yaml:"-"`
}

// InventoryRef identifies the inventory the dynamic inventory script renders.
type InventoryRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name"`
}

// Project is the working copy holding the playbooks.
type Project struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name,omitempty" yaml:"name"`
	LocalPath string `json:"localPath" yaml:"localPath"`
}

func (j *Job) IsRunning() bool {
	return j.Status == StatusRunning
}

func (j *Job) IsCompleted() bool {
	return j.Status.IsTerminal()
}

// GetDuration returns how long the run took, or has taken so far.
func (j *Job) GetDuration() time.Duration {
	if j.StartedAt == nil {
		return 0
	}
	if j.FinishedAt == nil {
		if j.IsRunning() {
			return time.Since(*j.StartedAt)
		}
		return 0
	}
	return j.FinishedAt.Sub(*j.StartedAt)
}

// PlaybookPath resolves the playbook inside the project working copy.
func (j *Job) PlaybookPath() string {
	return filepath.Join(j.Project.LocalPath, j.Playbook)
}

func (j *Job) Validate() error {
	if j.ID == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(j.Playbook) == "" {
		return ErrMissingPlaybook
	}
	if j.JobType != JobTypeRun && j.JobType != JobTypeCheck {
		return fmt.Errorf("%w: %q", ErrInvalidJobType, j.JobType)
	}
	if j.Forks < 0 {
		return ErrNegativeForks
	}
	if filepath.IsAbs(j.Playbook) {
		return fmt.Errorf("%w: %s", ErrPlaybookEscapes, j.Playbook)
	}
	if clean := filepath.Clean(j.Playbook); clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %s", ErrPlaybookEscapes, j.Playbook)
	}
	if j.Status != "" && !j.Status.IsValid() {
		return fmt.Errorf("unknown job status %q", j.Status)
	}
	return nil
}

// DeepCopy creates a deep copy of the job
func (j *Job) DeepCopy() *Job {
	if j == nil {
		return nil
	}

	c := *j
	c.ExtraVars = copyVars(j.ExtraVars)
	if j.Credential != nil {
		cred := *j.Credential
		c.Credential = &cred
	}
	if j.StartedAt != nil {
		t := *j.StartedAt
		c.StartedAt = &t
	}
	if j.FinishedAt != nil {
		t := *j.FinishedAt
		c.FinishedAt = &t
	}
	return &c
}

func copyVars(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		return copyVars(tv)
	case []interface{}:
		out := make([]interface{}, len(tv))
		for i := range tv {
			out[i] = copyValue(tv[i])
		}
		return out
	default:
		return v
	}
}

// JobUpdate names the fields to change in one store mutation. Nil fields are
// left untouched.
type JobUpdate struct {
	Status          *JobStatus
	Node            *string
	CancelFlag      *bool
	ResultStdout    *string
	ResultStderr    *string
	ResultTraceback *string
	StartedAt       *time.Time
	FinishedAt      *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u JobUpdate) IsEmpty() bool {
	return u.Status == nil && u.Node == nil && u.CancelFlag == nil && u.ResultStdout == nil &&
		u.ResultStderr == nil && u.ResultTraceback == nil && u.StartedAt == nil && u.FinishedAt == nil
}

// Apply writes the non-nil fields of u onto j.
func (u JobUpdate) Apply(j *Job) {
	if u.Status != nil {
		j.Status = *u.Status
	}
	if u.Node != nil {
		j.Node = *u.Node
	}
	if u.CancelFlag != nil {
		j.CancelFlag = *u.CancelFlag
	}
	if u.ResultStdout != nil {
		j.ResultStdout = *u.ResultStdout
	}
	if u.ResultStderr != nil {
		j.ResultStderr = *u.ResultStderr
	}
	if u.ResultTraceback != nil {
		j.ResultTraceback = *u.ResultTraceback
	}
	if u.StartedAt != nil {
		t := *u.StartedAt
		j.StartedAt = &t
	}
	if u.FinishedAt != nil {
		t := *u.FinishedAt
		j.FinishedAt = &t
	}
}
