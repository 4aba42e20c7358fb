package jobs

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ehsaniara/playrunner/api"
	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/server"
	"github.com/ehsaniara/playrunner/internal/playrunner/server/serverfakes"
	"github.com/ehsaniara/playrunner/pkg/client"
)

const jobYAML = `
name: deploy web
playbook: site.yml
jobType: check
forks: 3
limit: web*
extraVars:
  release: "1.2.3"
inventory:
  id: prod
project:
  id: infra
  localPath: /srv/infra
credential:
  sshUsername: deploy
  sshKeyData: KEY
  sshKeyUnlock: ASK
  sudoPassword: ASK
`

func TestReadJobFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yml")
	require.NoError(t, os.WriteFile(path, []byte(jobYAML), 0600))

	job, err := readJobFile(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "deploy web", job.Name)
	assert.Equal(t, "site.yml", job.Playbook)
	assert.Equal(t, domain.JobTypeCheck, job.JobType)
	assert.Equal(t, 3, job.Forks)
	assert.Equal(t, "web*", job.Limit)
	assert.Equal(t, "1.2.3", job.ExtraVars["release"])
	assert.Equal(t, "prod", job.Inventory.ID)
	assert.Equal(t, "/srv/infra", job.Project.LocalPath)
	require.NotNil(t, job.Credential)
	assert.Equal(t, "deploy", job.Credential.SSHUsername)
	assert.Equal(t, []string{domain.FieldSSHKeyUnlock, domain.FieldSudoPassword}, askFields(job.Credential))
}

func TestReadJobFile_Stdin(t *testing.T) {
	job, err := readJobFile("-", strings.NewReader("playbook: ping.yml\n"))
	require.NoError(t, err)
	assert.Equal(t, "ping.yml", job.Playbook)
	assert.Nil(t, askFields(job.Credential))
}

func TestReadJobFile_Errors(t *testing.T) {
	_, err := readJobFile(filepath.Join(t.TempDir(), "missing.yml"), nil)
	assert.ErrorContains(t, err, "failed to read job file")

	_, err = readJobFile("-", strings.NewReader("name: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse job file")

	_, err = readJobFile("-", strings.NewReader("name: no playbook\n"))
	assert.ErrorContains(t, err, "must set playbook")
}

func TestStartOptions_Overrides(t *testing.T) {
	opts := &startOptions{
		passwords:    map[string]string{domain.FieldSudoPassword: "s3cret"},
		sshUsername:  "ops",
		sudoUsername: "root",
	}
	assert.Equal(t, map[string]string{
		domain.FieldSudoPassword: "s3cret",
		domain.FieldSSHUsername:  "ops",
		domain.FieldSudoUsername: "root",
	}, opts.overrides())

	assert.Empty(t, (&startOptions{}).overrides())
}

func TestPrintJobTable(t *testing.T) {
	var buf bytes.Buffer
	printJobTable(&buf, nil)
	assert.Equal(t, "No jobs found\n", buf.String())

	buf.Reset()
	printJobTable(&buf, []*domain.Job{
		{ID: "job-1", Name: "deploy", Status: domain.StatusRunning, Playbook: "site.yml", CreatedAt: time.Now()},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "job-1")
	assert.Contains(t, lines[1], "site.yml")
}

func TestPrintJob(t *testing.T) {
	started := time.Now().Add(-time.Minute)
	finished := time.Now()
	job := &domain.Job{
		ID:              "job-1",
		Status:          domain.StatusFailed,
		Playbook:        "site.yml",
		JobType:         domain.JobTypeRun,
		CreatedAt:       started,
		StartedAt:       &started,
		FinishedAt:      &finished,
		ResultStdout:    "PLAY RECAP",
		ResultTraceback: "boom",
	}

	var buf bytes.Buffer
	printJob(&buf, job, false)
	out := buf.String()
	assert.Contains(t, out, "Job ID: job-1")
	assert.Contains(t, out, "Traceback:")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "PLAY RECAP")

	buf.Reset()
	printJob(&buf, job, true)
	assert.Contains(t, buf.String(), "PLAY RECAP")
}

func newWatchClient(t *testing.T, jobs *serverfakes.FakeJobManager) *client.JobClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	api.RegisterJobServiceServer(srv, server.NewJobServiceServer(jobs, &serverfakes.FakeSubmitter{}, nil,
		server.WithWatchPoll(5*time.Millisecond)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	c := client.NewJobClientWithConn(conn)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestFollowJob(t *testing.T) {
	jobs := &serverfakes.FakeJobManager{}
	jobs.GetReturnsOnCall(0, &domain.Job{ID: "job-1", Status: domain.StatusRunning, ResultStdout: "PLAY [all]\n"}, nil)
	jobs.GetReturns(&domain.Job{ID: "job-1", Status: domain.StatusSuccessful, ResultStdout: "PLAY [all]\nok=1\n"}, nil)

	var buf bytes.Buffer
	err := followJob(context.Background(), &buf, newWatchClient(t, jobs), "job-1")
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "PLAY [all]\nok=1\n"))
	assert.Contains(t, out, "Job job-1 finished")
}

func TestFollowJob_Failed(t *testing.T) {
	jobs := &serverfakes.FakeJobManager{}
	jobs.GetReturns(&domain.Job{ID: "job-1", Status: domain.StatusError, ResultTraceback: "no such inventory"}, nil)

	var buf bytes.Buffer
	err := followJob(context.Background(), &buf, newWatchClient(t, jobs), "job-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ended error")
	assert.Contains(t, buf.String(), "no such inventory")
}
