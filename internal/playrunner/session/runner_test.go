package session

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/ehsaniara/playrunner/pkg/errors"
)

// recordingMonitor captures flushes and cancels after a number of polls.
type recordingMonitor struct {
	mu          sync.Mutex
	flushes     [][]byte
	polls       int
	cancelAfter int // 0 never cancels
	flushErr    error
	pollErr     error
}

func (m *recordingMonitor) Flush(_ context.Context, transcript []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flushErr != nil {
		return m.flushErr
	}
	m.flushes = append(m.flushes, transcript)
	return nil
}

func (m *recordingMonitor) CancelRequested(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls++
	if m.pollErr != nil {
		return false, m.pollErr
	}
	return m.cancelAfter > 0 && m.polls >= m.cancelAfter, nil
}

func requirePTY(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skipf("sh not available: %v", err)
	}
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals not available: %v", err)
	}
	_ = tty.Close()
	_ = ptmx.Close()
	return sh
}

func runScript(t *testing.T, script string, passwords map[string]string, mon Monitor, opts ...Option) *Result {
	t.Helper()
	sh := requirePTY(t)

	opts = append([]Option{WithTimeout(100 * time.Millisecond)}, opts...)
	r := NewRunner(nil, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	res, err := r.Run(ctx, Request{
		Argv:      []string{sh, "-c", script},
		Dir:       t.TempDir(),
		Env:       []string{"PATH=/usr/bin:/bin", "LANG=C"},
		Passwords: passwords,
		Monitor:   mon,
	})
	require.NoError(t, err)
	return res
}

func TestRun_Successful(t *testing.T) {
	res := runScript(t, "echo hello from play; exit 0", nil, nil)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, string(res.Transcript), "hello from play")
	assert.Empty(t, res.Prompts)
}

func TestRun_Failed(t *testing.T) {
	res := runScript(t, "echo failing; exit 3", nil, nil)

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, string(res.Transcript), "failing")
}

func TestRun_EnvAndDir(t *testing.T) {
	sh := requirePTY(t)
	dir := t.TempDir()
	r := NewRunner(nil, WithTimeout(100*time.Millisecond))
	out, err := r.Run(context.Background(), Request{
		Argv: []string{sh, "-c", `echo "job=$ACOM_JOB_ID"; pwd`},
		Dir:  dir,
		Env:  []string{"PATH=/usr/bin:/bin", "ACOM_JOB_ID=job-77"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out.Transcript), "job=job-77")
	assert.Contains(t, string(out.Transcript), dir)
}

func TestRun_CorrectPassphrase(t *testing.T) {
	script := `printf 'Enter passphrase for /tmp/k: '; read p
if [ "$p" = "right" ]; then echo unlocked; exit 0; fi
printf 'Bad passphrase, try again for /tmp/k: '; read p; exit 1`

	res := runScript(t, script, map[string]string{"ssh_key_unlock": "right"}, nil)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	assert.Contains(t, string(res.Transcript), "unlocked")
	assert.NotContains(t, string(res.Transcript), "Bad passphrase")
	assert.Equal(t, 1, res.Prompts[KeyPassphrase])
}

func TestRun_WrongPassphrase(t *testing.T) {
	script := `printf 'Enter passphrase for /tmp/k: '; read p
if [ "$p" = "right" ]; then echo unlocked; exit 0; fi
printf 'Bad passphrase, try again for /tmp/k: '; read p
echo "retry=[$p]"; exit 1`

	res := runScript(t, script, map[string]string{"ssh_key_unlock": "wrong"}, nil)

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Contains(t, string(res.Transcript), "Bad passphrase")
	assert.Contains(t, string(res.Transcript), "retry=[]")
	assert.Equal(t, 1, res.Prompts[BadPassphrase])
}

func TestRun_SudoAndSSHPasswords(t *testing.T) {
	script := `printf 'SSH password: '; read a
printf 'sudo password [defaults to SSH password]: '; read b
[ "$a" = "ssh-secret" ] && echo ssh-ok
[ "$b" = "sudo-secret" ] && echo sudo-ok
exit 0`

	res := runScript(t, script, map[string]string{"ssh_password": "ssh-secret", "sudo_password": "sudo-secret"}, nil)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	assert.Contains(t, string(res.Transcript), "ssh-ok")
	assert.Contains(t, string(res.Transcript), "sudo-ok")
	assert.Equal(t, 1, res.Prompts[SSHPassword])
	assert.Equal(t, 1, res.Prompts[SudoPassword])
}

func TestRun_EchoedSecretIsMasked(t *testing.T) {
	mon := &recordingMonitor{}
	script := `printf 'SSH password: '; read a; echo "got=[$a]"`

	res := runScript(t, script, map[string]string{"ssh_password": "hunter22"}, mon)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	assert.Contains(t, string(res.Transcript), "got=[********]")
	assert.NotContains(t, string(res.Transcript), "hunter22")
	mon.mu.Lock()
	defer mon.mu.Unlock()
	for _, f := range mon.flushes {
		assert.NotContains(t, string(f), "hunter22")
	}
}

func TestRun_ShortSecretsAreNotMasked(t *testing.T) {
	res := runScript(t, `printf 'SSH password: '; read a; echo "got=[$a] a-b-c"`,
		map[string]string{"ssh_password": "abc"}, nil)

	assert.Contains(t, string(res.Transcript), "got=[abc] a-b-c")
}

func TestRun_MissingSecretRepliesEmpty(t *testing.T) {
	res := runScript(t, `printf 'SSH password: '; read a; echo "got=[$a]"`, nil, nil)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	assert.Contains(t, string(res.Transcript), "got=[]")
}

func TestRun_TimeoutIsNotAnError(t *testing.T) {
	mon := &recordingMonitor{}
	res := runScript(t, "sleep 0.5; echo done", nil, mon)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	mon.mu.Lock()
	defer mon.mu.Unlock()
	assert.Greater(t, mon.polls, 1, "cancellation should be polled on every timeout")
}

func TestRun_IncrementalFlush(t *testing.T) {
	mon := &recordingMonitor{}
	res := runScript(t, "echo first; sleep 0.5; echo second; sleep 0.5; echo third", nil, mon)
	require.Equal(t, OutcomeSuccessful, res.Outcome)

	mon.mu.Lock()
	defer mon.mu.Unlock()
	require.GreaterOrEqual(t, len(mon.flushes), 2, "output should be flushed while the run is in progress")

	for i := 1; i < len(mon.flushes); i++ {
		assert.Greater(t, len(mon.flushes[i]), len(mon.flushes[i-1]), "flush %d did not grow", i)
		assert.True(t, strings.HasPrefix(string(mon.flushes[i]), string(mon.flushes[i-1])))
	}
	assert.Equal(t, string(res.Transcript), string(mon.flushes[len(mon.flushes)-1]))
	assert.NotContains(t, string(mon.flushes[0]), "third")
}

func TestRun_CancelDuringRun(t *testing.T) {
	mon := &recordingMonitor{cancelAfter: 3}
	start := time.Now()
	res := runScript(t, "echo started; sleep 30; echo never", nil, mon)

	assert.Equal(t, OutcomeCanceled, res.Outcome)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Contains(t, string(res.Transcript), "started")
	assert.NotContains(t, string(res.Transcript), "never")
}

func TestRun_CancelBeforeStartWinsOverSuccess(t *testing.T) {
	mon := &recordingMonitor{cancelAfter: 1}
	res := runScript(t, "echo quick; exit 0", nil, mon)

	assert.Equal(t, OutcomeCanceled, res.Outcome)
}

func TestRun_ContextCancel(t *testing.T) {
	sh := requirePTY(t)
	r := NewRunner(nil, WithTimeout(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	res, err := r.Run(ctx, Request{Argv: []string{sh, "-c", "sleep 30"}, Env: []string{"PATH=/usr/bin:/bin"}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCanceled, res.Outcome)
}

func TestRun_MonitorErrorsAreNotFatal(t *testing.T) {
	mon := &recordingMonitor{flushErr: errors.New("store down"), pollErr: errors.New("store down")}
	res := runScript(t, "echo ok; sleep 0.2", nil, mon)

	assert.Equal(t, OutcomeSuccessful, res.Outcome)
	assert.Contains(t, string(res.Transcript), "ok")
}

func TestRun_SpawnFailure(t *testing.T) {
	r := NewRunner(nil)

	_, err := r.Run(context.Background(), Request{Argv: []string{"/nonexistent/ansible-playbook"}})
	assert.ErrorIs(t, err, perrors.ErrSpawnFailed)

	_, err = r.Run(context.Background(), Request{})
	assert.ErrorIs(t, err, perrors.ErrSpawnFailed)
}
