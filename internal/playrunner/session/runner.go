// Package session runs a command under a pseudo-terminal, answers the
// credential prompts it prints and stops it when cancellation is requested.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/ehsaniara/playrunner/internal/playrunner/metrics"
	perrors "github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/platform"
)

const (
	DefaultTimeout   = 2 * time.Second
	DefaultKillGrace = 5 * time.Second

	// maxPending bounds the unmatched output kept for prompt detection.
	maxPending   = 4096
	readSize     = 4096
	drainTimeout = 250 * time.Millisecond

	// minScrubLen is the shortest secret masked in transcripts; shorter
	// values would mask ordinary output.
	minScrubLen = 4
)

// Outcome is the terminal classification of a run.
type Outcome string

const (
	OutcomeSuccessful Outcome = "successful"
	OutcomeFailed     Outcome = "failed"
	OutcomeCanceled   Outcome = "canceled"
)

// Monitor connects a run to the outside world. Errors from either method are
// logged and the run carries on.
type Monitor interface {
	// Flush receives the whole transcript each time it has grown.
	Flush(ctx context.Context, transcript []byte) error
	// CancelRequested is polled after every watch iteration.
	CancelRequested(ctx context.Context) (bool, error)
}

// NopMonitor never cancels and discards output.
type NopMonitor struct{}

func (NopMonitor) Flush(context.Context, []byte) error { return nil }

func (NopMonitor) CancelRequested(context.Context) (bool, error) { return false, nil }

// Request describes one run.
type Request struct {
	Argv      []string
	Dir       string
	Env       []string
	Passwords map[string]string
	Monitor   Monitor
}

// Result is what a finished run produced.
type Result struct {
	Outcome    Outcome
	ExitCode   int
	Transcript []byte
	Prompts    map[Condition]int
	Duration   time.Duration
}

type Runner struct {
	prompts   PromptSet
	timeout   time.Duration
	killGrace time.Duration
	proc      platform.ProcessOperations
	logger    *logger.Logger
}

type Option func(*Runner)

// WithTimeout sets how long one watch iteration waits for output.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithKillGrace(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.killGrace = d
		}
	}
}

func WithProcessOperations(p platform.ProcessOperations) Option {
	return func(r *Runner) {
		r.proc = p
	}
}

func NewRunner(prompts PromptSet, opts ...Option) *Runner {
	if prompts == nil {
		prompts = MustDefaultPromptSet()
	}
	r := &Runner{
		prompts:   prompts,
		timeout:   DefaultTimeout,
		killGrace: DefaultKillGrace,
		proc:      platform.NewPlatform(),
		logger:    logger.WithField("component", "session"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes req to completion. Prompts and timeouts are steady-state
// conditions; the only error is a failure to spawn the process, which wraps
// errors.ErrSpawnFailed.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.Argv) == 0 {
		return nil, fmt.Errorf("%w: empty argv", perrors.ErrSpawnFailed)
	}
	if req.Monitor == nil {
		req.Monitor = NopMonitor{}
	}

	cmd := exec.Command(req.Argv[0], req.Argv[1:]...)
	cmd.Dir = req.Dir
	cmd.Env = req.Env

	started := time.Now()
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 50, Cols: 200})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", perrors.ErrSpawnFailed, req.Argv[0], err)
	}
	defer func() { _ = ptmx.Close() }()

	w := &watch{
		runner:  r,
		req:     req,
		cmd:     cmd,
		ptmx:    ptmx,
		chunks:  make(chan []byte, 16),
		done:    make(chan struct{}),
		waitCh:  make(chan error, 1),
		prompts: make(map[Condition]int),
		log:     r.logger.WithFields("pid", cmd.Process.Pid, "program", req.Argv[0]),
	}
	defer close(w.done)

	go w.readLoop()
	go func() { w.waitCh <- cmd.Wait() }()

	w.log.Debug("process spawned")

	canceled := w.loop(ctx)
	if canceled {
		w.kill()
	}
	w.awaitExit()

	res := &Result{
		ExitCode:   exitCode(w.waitErr),
		Transcript: w.scrubbed(),
		Prompts:    w.prompts,
		Duration:   time.Since(started),
	}
	switch {
	case canceled:
		res.Outcome = OutcomeCanceled
	case w.exited && res.ExitCode == 0:
		res.Outcome = OutcomeSuccessful
	default:
		res.Outcome = OutcomeFailed
	}

	w.log.Info("process finished", "outcome", res.Outcome, "exitCode", res.ExitCode,
		"duration", res.Duration, "bytes", len(res.Transcript))
	return res, nil
}

// watch is the state of one Run.
type watch struct {
	runner *Runner
	req    Request
	cmd    *exec.Cmd
	ptmx   *os.File

	chunks chan []byte
	done   chan struct{}
	waitCh chan error

	transcript bytes.Buffer
	pending    []byte
	flushed    int

	outputClosed bool
	exited       bool
	waitErr      error
	drainC       <-chan time.Time

	prompts map[Condition]int
	log     *logger.Logger
}

func (w *watch) readLoop() {
	defer close(w.chunks)
	for {
		buf := make([]byte, readSize)
		n, err := w.ptmx.Read(buf)
		if n > 0 {
			select {
			case w.chunks <- buf[:n]:
			case <-w.done:
				return
			}
		}
		if err != nil {
			// EIO is how Linux reports that every slave descriptor closed.
			if !errors.Is(err, io.EOF) && !errors.Is(err, syscall.EIO) && !errors.Is(err, os.ErrClosed) {
				w.log.Debug("pty read ended", "error", err)
			}
			return
		}
	}
}

// loop runs watch iterations until the output ends or a cancel is observed.
// It returns true when the run was canceled.
func (w *watch) loop(ctx context.Context) bool {
	for {
		cond := w.expect(ctx)

		if cond.IsPrompt() {
			w.answer(cond)
		}

		w.flush(ctx)

		if w.cancelRequested(ctx) {
			w.log.Info("cancel requested, killing process", "condition", cond)
			return true
		}

		if cond == EOF {
			return false
		}
	}
}

// expect blocks until a prompt is seen, the output ends or one timeout
// period passes.
func (w *watch) expect(ctx context.Context) Condition {
	timer := time.NewTimer(w.runner.timeout)
	defer timer.Stop()

	for {
		if m, ok := w.runner.prompts.Match(w.pending); ok {
			w.pending = w.pending[m.End:]
			return m.Condition
		}
		if w.outputClosed && w.exited {
			return EOF
		}

		var chunks <-chan []byte
		if !w.outputClosed {
			chunks = w.chunks
		}
		var waitCh <-chan error
		if !w.exited {
			waitCh = w.waitCh
		}

		select {
		case b, ok := <-chunks:
			if !ok {
				w.outputClosed = true
				continue
			}
			w.transcript.Write(b)
			w.pending = append(w.pending, b...)
			if len(w.pending) > maxPending {
				w.pending = w.pending[len(w.pending)-maxPending:]
			}
		case err := <-waitCh:
			w.exited = true
			w.waitErr = err
			// Something the process left behind may hold the terminal open.
			w.drainC = time.After(drainTimeout)
		case <-w.drainC:
			w.outputClosed = true
		case <-timer.C:
			return Timeout
		case <-ctx.Done():
			return Timeout
		}
	}
}

func (w *watch) answer(cond Condition) {
	secret := ""
	if field := cond.SecretField(); field != "" {
		secret = w.req.Passwords[field]
	}
	w.prompts[cond]++
	metrics.PromptsAnsweredTotal.WithLabelValues(cond.String()).Inc()

	if _, err := io.WriteString(w.ptmx, secret+"\n"); err != nil {
		w.log.Warn("failed to answer prompt", "prompt", cond, "error", err)
		return
	}
	w.log.Debug("answered prompt", "prompt", cond, "empty", secret == "")
}

func (w *watch) flush(ctx context.Context) {
	if w.transcript.Len() == w.flushed || ctx.Err() != nil {
		return
	}
	size := w.transcript.Len()
	if err := w.req.Monitor.Flush(ctx, w.scrubbed()); err != nil {
		metrics.MonitorErrorsTotal.WithLabelValues("flush").Inc()
		w.log.Warn("failed to flush output", "error", err)
		return
	}
	w.flushed = size
}

// scrubbed returns a copy of the transcript with every known secret replaced
// by a mask of the same length, so a secret echoed back by the terminal never
// leaves the runner. Lengths are kept so flush offsets stay valid.
func (w *watch) scrubbed() []byte {
	out := bytes.Clone(w.transcript.Bytes())
	for _, secret := range w.req.Passwords {
		if len(secret) < minScrubLen {
			continue
		}
		out = bytes.ReplaceAll(out, []byte(secret), bytes.Repeat([]byte("*"), len(secret)))
	}
	return out
}

func (w *watch) cancelRequested(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	cancel, err := w.req.Monitor.CancelRequested(ctx)
	if err != nil {
		metrics.MonitorErrorsTotal.WithLabelValues("cancel_poll").Inc()
		w.log.Warn("failed to poll cancellation", "error", err)
		return false
	}
	return cancel
}

// kill sends SIGKILL to the whole process group; pty.Start made the child a
// session leader so its pid is also the group id.
func (w *watch) kill() {
	if w.exited {
		return
	}
	pid := w.cmd.Process.Pid
	if err := w.runner.proc.Kill(-pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		w.log.Warn("failed to kill process group", "error", err)
		_ = w.cmd.Process.Kill()
	}
}

func (w *watch) awaitExit() {
	if w.exited {
		return
	}
	select {
	case err := <-w.waitCh:
		w.exited = true
		w.waitErr = err
	case <-time.After(w.runner.killGrace):
		w.log.Warn("process did not exit after kill grace period")
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
