// Package errors provides the structured error types shared by playrunner
// packages. Sentinels identify conditions, typed wrappers carry context, and
// the Is* helpers classify an error chain without string matching.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// Job-related errors
	ErrJobNotFound       = errors.New("job not found")
	ErrJobAlreadyExists  = errors.New("job already exists")
	ErrInvalidJobSpec    = errors.New("invalid job specification")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrJobTerminal       = errors.New("job is in a terminal state")
	ErrPasswordsNeeded   = errors.New("passwords needed to start")

	// Execution-related errors
	ErrSpawnFailed  = errors.New("failed to spawn process")
	ErrQueueFull    = errors.New("dispatch queue is full")
	ErrShuttingDown = errors.New("shutting down")

	// System-related errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrTimeout          = errors.New("operation timed out")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrFilesystemFailed = errors.New("filesystem operation failed")
)

// JobError represents an error related to a specific job
type JobError struct {
	JobID     string
	Operation string
	Err       error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s: operation %s: %v", e.JobID, e.Operation, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// PasswordsNeededError lists the credential fields that must be supplied
// before a job can start.
type PasswordsNeededError struct {
	Fields []string
}

func (e *PasswordsNeededError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPasswordsNeeded, strings.Join(e.Fields, ", "))
}

func (e *PasswordsNeededError) Unwrap() error {
	return ErrPasswordsNeeded
}

// FilesystemError represents an error related to filesystem operations
type FilesystemError struct {
	Path      string
	Operation string
	Err       error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem %s: operation %s: %v", e.Path, e.Operation, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Component string
	Field     string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func WrapJobError(jobID, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &JobError{JobID: jobID, Operation: operation, Err: err}
}

func WrapFilesystemError(path, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &FilesystemError{Path: path, Operation: operation, Err: err}
}

func WrapConfigError(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Field: field, Err: err}
}

func NewPasswordsNeededError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &PasswordsNeededError{Fields: append([]string(nil), fields...)}
}

func NewJobNotFoundError(jobID string) error {
	return WrapJobError(jobID, "lookup", ErrJobNotFound)
}

func NewFilesystemError(path, operation string, err error) error {
	return WrapFilesystemError(path, operation, fmt.Errorf("%w: %v", ErrFilesystemFailed, err))
}

func NewConfigError(component, field string, err error) error {
	return WrapConfigError(component, field, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
}

func IsJobError(err error) bool {
	var je *JobError
	return errors.As(err, &je)
}

func IsFilesystemError(err error) bool {
	var fe *FilesystemError
	return errors.As(err, &fe)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrJobNotFound)
}

// IsConflictError reports whether err stems from the job being in the wrong
// state for the requested operation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrJobTerminal) ||
		errors.Is(err, ErrJobAlreadyExists)
}

func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrPasswordsNeeded)
}

func IsAlreadyExistsError(err error) bool {
	return errors.Is(err, ErrJobAlreadyExists)
}

// IsInvalidInputError reports whether err stems from a malformed request.
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidJobSpec) || errors.Is(err, ErrInvalidConfig) || IsConfigError(err)
}

func IsQueueFullError(err error) bool {
	return errors.Is(err, ErrQueueFull)
}

func IsPermissionError(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout)
}

func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrQueueFull) || errors.Is(err, ErrShuttingDown)
}

func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// GetJobID extracts the job ID from the first JobError in the chain.
func GetJobID(err error) (string, bool) {
	var je *JobError
	if errors.As(err, &je) {
		return je.JobID, true
	}
	return "", false
}

// GetMissingPasswords extracts the field names from a PasswordsNeededError.
func GetMissingPasswords(err error) []string {
	var pe *PasswordsNeededError
	if errors.As(err, &pe) {
		return pe.Fields
	}
	return nil
}

// JoinErrors combines the non-nil errors into one. It returns nil when every
// argument is nil and the error itself when only one remains.
func JoinErrors(errs ...error) error {
	var valid []error
	for _, err := range errs {
		if err != nil {
			valid = append(valid, err)
		}
	}

	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return &multiError{errors: valid}
}

type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *multiError) Unwrap() []error {
	return e.errors
}
