//go:build windows

// Package windows provides the win32 platform backend: window
// enumeration and input synthesis over user32/gdi32, and the
// accessibility tree over the UI Automation COM API. Importing the
// package registers the backend with the platform provider.
package windows
