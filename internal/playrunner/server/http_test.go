package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/server"
	"github.com/ehsaniara/playrunner/internal/playrunner/server/serverfakes"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage/storagefakes"
	"github.com/ehsaniara/playrunner/pkg/errors"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestOpsRouter_Health(t *testing.T) {
	store := &storagefakes.FakeBackend{}
	h := server.NewOpsRouter(&serverfakes.FakeJobManager{}, store)

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	store.HealthCheckReturns(fmt.Errorf("table missing"))
	rec = get(t, h, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "table missing")
}

func TestOpsRouter_Metrics(t *testing.T) {
	h := server.NewOpsRouter(&serverfakes.FakeJobManager{}, &storagefakes.FakeBackend{})

	rec := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestOpsRouter_GetJob(t *testing.T) {
	jobs := &serverfakes.FakeJobManager{}
	jobs.GetReturns(sampleJob("job-1", domain.StatusSuccessful), nil)
	h := server.NewOpsRouter(jobs, &storagefakes.FakeBackend{})

	rec := get(t, h, "/v1/jobs/job-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "job-1", got.ID)
	_, id := jobs.GetArgsForCall(0)
	assert.Equal(t, "job-1", id)
}

func TestOpsRouter_GetJobNotFound(t *testing.T) {
	jobs := &serverfakes.FakeJobManager{}
	jobs.GetReturns(nil, errors.NewJobNotFoundError("nope"))
	h := server.NewOpsRouter(jobs, &storagefakes.FakeBackend{})

	rec := get(t, h, "/v1/jobs/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpsRouter_ListJobs(t *testing.T) {
	jobs := &serverfakes.FakeJobManager{}
	jobs.ListReturns([]*domain.Job{sampleJob("a", domain.StatusFailed)}, nil)
	h := server.NewOpsRouter(jobs, &storagefakes.FakeBackend{})

	rec := get(t, h, "/v1/jobs/?status=failed,error&limit=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*domain.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	_, filter := jobs.ListArgsForCall(0)
	assert.Equal(t, &storage.Filter{
		Statuses: []domain.JobStatus{domain.StatusFailed, domain.StatusError},
		Limit:    5,
	}, filter)
}

func TestOpsRouter_ListJobsBadQuery(t *testing.T) {
	jobs := &serverfakes.FakeJobManager{}
	h := server.NewOpsRouter(jobs, &storagefakes.FakeBackend{})

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/v1/jobs/?status=bogus").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/v1/jobs/?limit=-1").Code)
	assert.Equal(t, 0, jobs.ListCallCount())
}
