//go:build windows

package windows

import (
	"yuki/internal/application/port/output"
	"yuki/internal/infrastructure/platform"
)

func init() {
	platform.NewProviderFunc = func(log output.LoggerPort) (*platform.Provider, error) {
		tree, err := NewUITree(log)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Windows:    NewManager(log),
			Input:      NewInput(log),
			Screenshot: NewCapturer(log),
			Shell:      NewShell(log),
			UITree:     tree,
		}, nil
	}
}
