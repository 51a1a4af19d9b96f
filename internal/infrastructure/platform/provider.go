package platform

import (
	"fmt"
	"runtime"

	"yuki/internal/application/port/output"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Windows    output.WindowManagerPort
	Input      output.InputPort
	Screenshot output.ScreenshotPort
	Shell      output.ShellPort
	UITree     output.UITreePort
}

// ErrUnsupported is returned on platforms without a registered backend.
var ErrUnsupported = fmt.Errorf("yuki is not supported on %s/%s; supported: windows/amd64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
var NewProviderFunc func(logger output.LoggerPort) (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider(logger output.LoggerPort) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(logger)
}
