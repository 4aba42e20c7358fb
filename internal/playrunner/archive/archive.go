// Package archive ships job transcripts to long-term storage while the run
// is still in progress.
package archive

//go:generate go tool counterfeiter -generate

import (
	"context"
)

// Sink receives transcript chunks in order. Chunks never overlap: each one
// holds the bytes produced since the previous Append for the same job.
//
//counterfeiter:generate . Sink
type Sink interface {
	Append(ctx context.Context, jobID string, chunk []byte) error
	Close() error
}

type nopSink struct{}

// NopSink discards everything. It is used when archiving is disabled.
func NopSink() Sink {
	return nopSink{}
}

func (nopSink) Append(context.Context, string, []byte) error { return nil }

func (nopSink) Close() error { return nil }
