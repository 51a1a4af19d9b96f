//go:build windows

package windows

import "golang.org/x/sys/windows"

var (
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")
	ole32   = windows.NewLazySystemDLL("ole32.dll")
	oleaut  = windows.NewLazySystemDLL("oleaut32.dll")
	dwmapi  = windows.NewLazySystemDLL("dwmapi.dll")

	procGetWindowTextW         = user32.NewProc("GetWindowTextW")
	procGetClassNameW          = user32.NewProc("GetClassNameW")
	procIsWindowVisible        = user32.NewProc("IsWindowVisible")
	procGetWindowRect          = user32.NewProc("GetWindowRect")
	procGetWindowPlacement     = user32.NewProc("GetWindowPlacement")
	procGetWindowLongW         = user32.NewProc("GetWindowLongW")
	procGetForegroundWindow    = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow    = user32.NewProc("SetForegroundWindow")
	procShowWindow             = user32.NewProc("ShowWindow")
	procGetSystemMetrics       = user32.NewProc("GetSystemMetrics")
	procSetCursorPos           = user32.NewProc("SetCursorPos")
	procSendInput              = user32.NewProc("SendInput")
	procGetDC                  = user32.NewProc("GetDC")
	procReleaseDC              = user32.NewProc("ReleaseDC")

	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procBitBlt                 = gdi32.NewProc("BitBlt")
	procGetDIBits              = gdi32.NewProc("GetDIBits")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procDeleteDC               = gdi32.NewProc("DeleteDC")

	procCoCreateInstance       = ole32.NewProc("CoCreateInstance")
	procSysFreeString          = oleaut.NewProc("SysFreeString")
	procVariantClear           = oleaut.NewProc("VariantClear")

	procDwmGetWindowAttribute  = dwmapi.NewProc("DwmGetWindowAttribute")
)
