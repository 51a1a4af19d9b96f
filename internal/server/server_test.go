package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
	"yuki/internal/detect"
	"yuki/internal/domain/entity"
	"yuki/internal/infrastructure/logger"
)

type fakeAgent struct {
	mu      sync.Mutex
	result  *entity.AgentResult
	queries []string
	paused  bool
	stopped bool
	block   chan struct{}
}

func (a *fakeAgent) Invoke(ctx context.Context, query string) *entity.AgentResult {
	a.mu.Lock()
	a.queries = append(a.queries, query)
	block := a.block
	a.mu.Unlock()
	if block != nil {
		<-block
	}
	return a.result
}

func (a *fakeAgent) Pause()  { a.mu.Lock(); a.paused = true; a.mu.Unlock() }
func (a *fakeAgent) Resume() { a.mu.Lock(); a.paused = false; a.mu.Unlock() }
func (a *fakeAgent) Stop()   { a.mu.Lock(); a.stopped = true; a.mu.Unlock() }
func (a *fakeAgent) IsPaused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}
func (a *fakeAgent) IsStopped() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopped
}

type fakeWindows struct{ apps []entity.App }

func (f *fakeWindows) ListApps() ([]entity.App, error)      { return f.apps, nil }
func (f *fakeWindows) ForegroundApp() (*entity.App, error)  { return &f.apps[0], nil }
func (f *fakeWindows) SwitchTo(name string) error           { return nil }
func (f *fakeWindows) Launch(ctx context.Context, name string) (bool, error) {
	return false, nil
}
func (f *fakeWindows) Screen() entity.BoundingBox { return entity.NewBoundingBox(0, 0, 1920, 1080) }

type fakeTree struct{}

func (fakeTree) WindowRoot(handle entity.WindowHandle) (output.UINode, error) { return nil, nil }
func (fakeTree) FocusedControl() (output.UINode, bool)                        { return nil, false }

type fakeInput struct{}

func (fakeInput) Click(x, y int, button string, clicks int) error { return nil }
func (fakeInput) Move(x, y int) error                             { return nil }
func (fakeInput) Drag(fx, fy, tx, ty int) error                   { return nil }
func (fakeInput) Scroll(x, y, dx, dy int) error                   { return nil }
func (fakeInput) TypeText(text string) error                      { return nil }
func (fakeInput) KeyCombo(keys []string) error                    { return nil }

type fakeShell struct{}

func (fakeShell) Run(ctx context.Context, command string) (string, int, error) { return "", 0, nil }

type fakeShot struct{}

func (fakeShot) Capture() ([]byte, error) { return nil, nil }

func newTestServer(agent *fakeAgent) *Server {
	log := logger.NewNop()
	windows := &fakeWindows{apps: []entity.App{{
		Name: "Untitled - Notepad", Status: entity.StatusNormal,
		Size: entity.NewBoundingBox(0, 0, 800, 600), Handle: 1,
	}}}
	tree := fakeTree{}
	walker := detect.NewWalker(detect.DefaultWalkConfig(), windows.Screen(), log)
	scanner := detect.NewScanner(walker, tree, detect.DefaultScanConfig(), log)
	d := desktop.New(windows, tree, fakeInput{}, fakeShell{}, fakeShot{}, scanner, walker, desktop.DefaultConfig(), log)

	return New(Config{Addr: ":0"}, agent, d, log)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&fakeAgent{})

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestQuery(t *testing.T) {
	agent := &fakeAgent{result: &entity.AgentResult{Content: "done it"}}
	srv := newTestServer(agent)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/query", `{"query": "open notepad"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done it", body["content"])
	assert.NotEmpty(t, body["task_id"])
	assert.Equal(t, []string{"open notepad"}, agent.queries)
}

func TestQuery_FailureSurfacesError(t *testing.T) {
	agent := &fakeAgent{result: &entity.AgentResult{Error: "Execution stopped by user"}}
	srv := newTestServer(agent)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/query", `{"query": "open notepad"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Execution stopped by user", body["error"])
}

func TestQuery_EmptyIsBadRequest(t *testing.T) {
	srv := newTestServer(&fakeAgent{})

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/query", `{"query": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "query is required", body["error"])

	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/query", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuery_ConcurrentConflicts(t *testing.T) {
	agent := &fakeAgent{
		result: &entity.AgentResult{Content: "ok"},
		block:  make(chan struct{}),
	}
	srv := newTestServer(agent)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(`{"query": "first"}`))
		srv.Handler().ServeHTTP(httptest.NewRecorder(), req)
	}()

	// Wait for the first query to hold the slot.
	require.Eventually(t, func() bool {
		agent.mu.Lock()
		defer agent.mu.Unlock()
		return len(agent.queries) == 1
	}, 2*time.Second, 10*time.Millisecond)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/query", `{"query": "second"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "a query is already running", body["error"])

	close(agent.block)
	<-firstDone

	// The slot frees up once the first query completes.
	agent.block = nil
	rec, _ = doJSON(t, srv.Handler(), http.MethodPost, "/api/query", `{"query": "third"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPauseResumeStop(t *testing.T) {
	agent := &fakeAgent{}
	srv := newTestServer(agent)

	rec, body := doJSON(t, srv.Handler(), http.MethodPost, "/api/pause", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paused", body["status"])
	assert.True(t, agent.IsPaused())

	rec, body = doJSON(t, srv.Handler(), http.MethodPost, "/api/resume", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "resumed", body["status"])
	assert.False(t, agent.IsPaused())

	rec, body = doJSON(t, srv.Handler(), http.MethodPost, "/api/stop", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stopping", body["status"])
	assert.True(t, agent.IsStopped())
}

func TestState(t *testing.T) {
	agent := &fakeAgent{}
	agent.Pause()
	srv := newTestServer(agent)

	rec, body := doJSON(t, srv.Handler(), http.MethodGet, "/api/state", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Untitled - Notepad", body["active_app"])
	assert.Equal(t, false, body["running"])
	assert.Equal(t, true, body["paused"])
	apps, ok := body["apps"].([]any)
	require.True(t, ok)
	assert.Len(t, apps, 1)
}
