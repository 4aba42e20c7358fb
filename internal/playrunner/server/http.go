package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ehsaniara/playrunner/internal/playrunner/domain"
	"github.com/ehsaniara/playrunner/internal/playrunner/storage"
	"github.com/ehsaniara/playrunner/pkg/errors"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/version"
)

// NewOpsRouter serves /metrics, /healthz and read-only job lookups.
func NewOpsRouter(jobs JobManager, checker HealthChecker) http.Handler {
	h := &opsHandler{jobs: jobs, checker: checker, logger: logger.WithField("component", "ops-http")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", h.health)
	r.Get("/version", h.version)
	r.Route("/v1/jobs", func(r chi.Router) {
		r.Get("/", h.listJobs)
		r.Get("/{id}", h.getJob)
	})
	return r
}

// NewOpsServer wraps the router in an http.Server listening on addr.
func NewOpsServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type opsHandler struct {
	jobs    JobManager
	checker HealthChecker
	logger  *logger.Logger
}

func (h *opsHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.checker.HealthCheck(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *opsHandler) version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, version.GetBuildInfo())
}

func (h *opsHandler) getJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// listJobs accepts ?status=a,b and ?limit=n.
func (h *opsHandler) listJobs(w http.ResponseWriter, r *http.Request) {
	filter := &storage.Filter{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			st := domain.JobStatus(strings.TrimSpace(s))
			if !st.IsValid() {
				http.Error(w, "unknown status "+string(st), http.StatusBadRequest)
				return
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	jobs, err := h.jobs.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *opsHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.IsContextError(err):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		h.logger.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
