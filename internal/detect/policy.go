package detect

import (
	"strings"
	"time"
)

// Mode is the detection strategy chosen for one state refresh. Full
// scans are the most accurate and the most expensive operation in the
// agent loop; most steps act on one already-known window and can pay
// less.
type Mode int

const (
	// ModeFull scans every visible top-level window.
	ModeFull Mode = iota
	// ModePrecise scans only the named target window, falling back to a
	// full scan when it yields nothing.
	ModePrecise
	// ModeCached reuses the previous snapshot untouched.
	ModeCached
	// ModeFocused short-circuits to the keyboard-focused control only.
	ModeFocused
	// ModeRanked runs a full scan and re-orders elements by task intent.
	ModeRanked
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModePrecise:
		return "precise"
	case ModeCached:
		return "cached"
	case ModeFocused:
		return "focused"
	case ModeRanked:
		return "ranked"
	}
	return "unknown"
}

// QueryKind is the coarse classification of the requested action.
type QueryKind int

const (
	KindUnknown QueryKind = iota
	KindSimpleAction
	KindTextInput
	KindComplex
)

var simpleActionWords = []string{
	"click", "press", "open", "close", "launch", "switch",
	"minimize", "maximize", "select", "check", "uncheck", "toggle",
}

var textInputWords = []string{
	"type", "enter", "write", "input", "fill in", "paste",
}

var complexWords = []string{
	"find", "search", "look for", "fill out", "form", "first",
	"best", "compare", "read", "summarize", "extract", "video",
}

// ClassifyQuery buckets a task description by keyword matching. The
// buckets are deliberately coarse: misclassification costs latency, not
// correctness, since every mode still produces valid coordinates.
func ClassifyQuery(query string) QueryKind {
	q := strings.ToLower(query)
	for _, w := range textInputWords {
		if strings.Contains(q, w) {
			return KindTextInput
		}
	}
	for _, w := range complexWords {
		if strings.Contains(q, w) {
			return KindComplex
		}
	}
	for _, w := range simpleActionWords {
		if strings.Contains(q, w) {
			return KindSimpleAction
		}
	}
	return KindUnknown
}

// PolicyInput is everything the mode decision looks at.
type PolicyInput struct {
	Query        string
	TargetApp    string
	CacheAge     time.Duration
	CacheTimeout time.Duration
	ForceRefresh bool
	HasSnapshot  bool
}

// ChooseMode maps a request to the cheapest detection strategy still
// likely to satisfy the upcoming action. ForceRefresh always wins.
func ChooseMode(in PolicyInput) Mode {
	if in.ForceRefresh {
		if in.TargetApp != "" {
			return ModePrecise
		}
		return ModeFull
	}
	if in.HasSnapshot && in.CacheAge < in.CacheTimeout {
		return ModeCached
	}
	switch ClassifyQuery(in.Query) {
	case KindTextInput:
		return ModeFocused
	case KindComplex:
		return ModeRanked
	case KindSimpleAction, KindUnknown:
		if in.TargetApp != "" {
			return ModePrecise
		}
	}
	return ModeFull
}
