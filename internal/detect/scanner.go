package detect

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"
)

// ScanConfig bounds the whole-desktop scan. One pathological window
// (usually a browser with a deep DOM) must never hold the batch hostage:
// its walk is abandoned after WindowTimeout and the batch as a whole
// after BatchTimeout, trading occasional missing elements for a bounded
// user-visible latency.
type ScanConfig struct {
	Workers       int
	WindowTimeout time.Duration
	BatchTimeout  time.Duration
	ExcludedApps  []string
}

func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Workers:       6,
		WindowTimeout: 2 * time.Second,
		BatchTimeout:  4 * time.Second,
	}
}

// shellClasses are desktop shell windows that are enumerated as
// top-level but never hold useful click targets.
var shellClasses = map[string]bool{
	"Progman":                        true,
	"Shell_TrayWnd":                  true,
	"Shell_SecondaryTrayWnd":         true,
	"Windows.UI.Core.CoreWindow":     true,
	"SysListView32":                  true,
	"WorkerW":                        true,
	"ApplicationFrameTitleBarWindow": true,
}

// Scanner fans the tree walker out across all visible top-level windows
// with a bounded worker pool and merges whatever completed in time.
type Scanner struct {
	walker *Walker
	tree   output.UITreePort
	cfg    ScanConfig
	log    output.LoggerPort
}

func NewScanner(walker *Walker, tree output.UITreePort, cfg ScanConfig, log output.LoggerPort) *Scanner {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultScanConfig().Workers
	}
	return &Scanner{walker: walker, tree: tree, cfg: cfg, log: log}
}

type windowResult struct {
	app     string
	tree    entity.TreeState
	skipped bool
}

// ScanDesktop walks every eligible window concurrently and concatenates
// the per-window results. Ordering across windows is not significant;
// ordering within a window's own lists is preserved from the walker.
// Windows that exceed their timeout are skipped, not retried; their
// walks are detached, never joined.
func (s *Scanner) ScanDesktop(ctx context.Context, apps []entity.App) entity.TreeState {
	targets := s.eligible(apps)
	if len(targets) == 0 {
		return entity.TreeState{}
	}

	sem := semaphore.NewWeighted(int64(s.cfg.Workers))
	results := make(chan windowResult, len(targets))

	for _, app := range targets {
		go s.scanOne(ctx, app, sem, results)
	}

	var merged entity.TreeState
	deadline := time.NewTimer(s.cfg.BatchTimeout)
	defer deadline.Stop()

	for received := 0; received < len(targets); received++ {
		select {
		case res := <-results:
			if res.skipped {
				s.log.Warn("window scan skipped", "app", res.app)
				continue
			}
			merged.Merge(res.tree)
		case <-deadline.C:
			s.log.Warn("desktop scan deadline hit",
				"completed", received, "total", len(targets))
			return merged
		case <-ctx.Done():
			return merged
		}
	}
	return merged
}

// ScanWindow walks a single named window. Used by precise detection.
func (s *Scanner) ScanWindow(app entity.App) entity.TreeState {
	root, err := s.tree.WindowRoot(app.Handle)
	if err != nil {
		s.log.Warn("window root unavailable", "app", app.Name, "error", err)
		return entity.TreeState{}
	}
	return s.walker.WalkWindow(root, app.Name, IsBrowserApp(app))
}

// scanOne supervises one window's walk: the walk runs detached and its
// result is taken only if it lands before the per-window timeout.
// Blocked OS accessibility calls cannot be interrupted, so abandonment
// is the only safe cancellation.
func (s *Scanner) scanOne(ctx context.Context, app entity.App, sem *semaphore.Weighted, results chan<- windowResult) {
	if err := sem.Acquire(ctx, 1); err != nil {
		results <- windowResult{app: app.Name, skipped: true}
		return
	}

	// The walk keeps its worker slot until it actually returns, even
	// after abandonment, so live walks never exceed the worker bound.
	done := make(chan entity.TreeState, 1)
	go func() {
		defer sem.Release(1)
		done <- s.ScanWindow(app)
	}()

	select {
	case tree := <-done:
		results <- windowResult{app: app.Name, tree: tree}
	case <-time.After(s.cfg.WindowTimeout):
		results <- windowResult{app: app.Name, skipped: true}
	case <-ctx.Done():
		results <- windowResult{app: app.Name, skipped: true}
	}
}

func (s *Scanner) eligible(apps []entity.App) []entity.App {
	var out []entity.App
	for _, app := range apps {
		if app.Status == entity.StatusMinimized || app.Status == entity.StatusHidden {
			continue
		}
		if s.excluded(app.Name) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func (s *Scanner) excluded(name string) bool {
	if shellClasses[name] {
		return true
	}
	for _, ex := range s.cfg.ExcludedApps {
		if strings.EqualFold(ex, name) {
			return true
		}
	}
	return false
}

// browserProcesses identifies apps hosting embedded DOM content.
var browserProcesses = map[string]bool{
	"chrome":  true,
	"msedge":  true,
	"firefox": true,
	"brave":   true,
	"opera":   true,
	"vivaldi": true,
}

// IsBrowserApp reports whether the app's tree needs DOM coordinate
// handling.
func IsBrowserApp(app entity.App) bool {
	name := strings.ToLower(strings.TrimSuffix(app.ProcessName, ".exe"))
	return browserProcesses[name]
}
