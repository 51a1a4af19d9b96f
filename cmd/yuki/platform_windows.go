//go:build windows

package main

// Register the win32 backend with the platform provider.
import _ "yuki/internal/infrastructure/platform/windows"
