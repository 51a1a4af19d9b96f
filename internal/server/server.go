package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"yuki/internal/application/port/input"
	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/domain/entity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/google/uuid"
)

// Server exposes the agent over a small JSON API. One query runs at a
// time; a second POST /api/query while one is in flight gets 409.
type Server struct {
	agent   input.AgentPort
	desktop *desktop.Desktop
	log     output.LoggerPort

	mu      sync.Mutex
	running bool
	taskID  string

	http *http.Server
}

type Config struct {
	Addr string
}

func New(cfg Config, agent input.AgentPort, d *desktop.Desktop, log output.LoggerPort) *Server {
	s := &Server{
		agent:   agent,
		desktop: d,
		log:     log,
	}

	requestLogger := httplog.NewLogger("yuki", httplog.Options{
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/state", s.handleState)
	r.Post("/api/query", s.handleQuery)
	r.Post("/api/pause", s.handlePause)
	r.Post("/api/resume", s.handleResume)
	r.Post("/api/stop", s.handleStop)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	TaskID  string `json:"task_id"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "a query is already running")
		return
	}
	s.running = true
	s.taskID = uuid.NewString()
	taskID := s.taskID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.log.Info("query accepted", "task", taskID, "query", req.Query)
	result := s.agent.Invoke(r.Context(), req.Query)

	writeJSON(w, http.StatusOK, queryResponse{
		TaskID:  taskID,
		Content: result.Content,
		Error:   result.Error,
	})
}

type stateResponse struct {
	Apps      []entity.App `json:"apps"`
	ActiveApp string       `json:"active_app"`
	Running   bool         `json:"running"`
	Paused    bool         `json:"paused"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	apps, err := s.desktop.Apps()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var active string
	if fg, err := s.desktop.ForegroundApp(); err == nil && fg != nil {
		active = fg.Name
	}

	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stateResponse{
		Apps:      apps,
		ActiveApp: active,
		Running:   running,
		Paused:    s.agent.IsPaused(),
	})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.agent.Pause()
	writeJSON(w, http.StatusOK, map[string]string{"status": "paused"})
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.agent.Resume()
	writeJSON(w, http.StatusOK, map[string]string{"status": "resumed"})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.agent.Stop()
	writeJSON(w, http.StatusOK, map[string]string{"status": "stopping"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
