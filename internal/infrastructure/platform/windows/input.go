//go:build windows

package windows

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"
	"unsafe"

	"yuki/internal/application/port/output"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	mouseLeftDown   = 0x0002
	mouseLeftUp     = 0x0004
	mouseRightDown  = 0x0008
	mouseRightUp    = 0x0010
	mouseMiddleDown = 0x0020
	mouseMiddleUp   = 0x0040
	mouseWheel      = 0x0800
	mouseHWheel     = 0x1000

	keyUp      = 0x0002
	keyUnicode = 0x0004
)

type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	_         uint32
	ExtraInfo uintptr
}

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	_         uint32
	ExtraInfo uintptr
}

// winInput mirrors the win32 INPUT struct: a type tag followed by a
// union sized for the largest member (MOUSEINPUT).
type winInput struct {
	Type uint32
	_    uint32
	M    mouseInput
}

// Input implements the input port with SendInput.
type Input struct {
	log output.LoggerPort
}

var _ output.InputPort = (*Input)(nil)

func NewInput(log output.LoggerPort) *Input {
	return &Input{log: log}
}

func send(inputs []winInput) error {
	if len(inputs) == 0 {
		return nil
	}
	n, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(winInput{}),
	)
	if int(n) != len(inputs) {
		return fmt.Errorf("sendinput placed %d of %d events: %v", n, len(inputs), err)
	}
	return nil
}

func mouse(flags, data uint32) winInput {
	return winInput{Type: inputMouse, M: mouseInput{Flags: flags, MouseData: data}}
}

func key(vk uint16, flags uint32) winInput {
	in := winInput{Type: inputKeyboard}
	k := (*keybdInput)(unsafe.Pointer(&in.M))
	k.Vk = vk
	k.Flags = flags
	return in
}

func unicodeKey(scan uint16, flags uint32) winInput {
	in := winInput{Type: inputKeyboard}
	k := (*keybdInput)(unsafe.Pointer(&in.M))
	k.Scan = scan
	k.Flags = flags | keyUnicode
	return in
}

func (i *Input) Click(x, y int, button string, clicks int) error {
	if ok, _, _ := procSetCursorPos.Call(uintptr(x), uintptr(y)); ok == 0 {
		return fmt.Errorf("failed to move cursor to (%d,%d)", x, y)
	}

	var down, up uint32
	switch button {
	case "right":
		down, up = mouseRightDown, mouseRightUp
	case "middle":
		down, up = mouseMiddleDown, mouseMiddleUp
	default:
		down, up = mouseLeftDown, mouseLeftUp
	}

	if clicks < 1 {
		clicks = 1
	}
	for n := 0; n < clicks; n++ {
		if err := send([]winInput{mouse(down, 0), mouse(up, 0)}); err != nil {
			return err
		}
		if n+1 < clicks {
			time.Sleep(50 * time.Millisecond)
		}
	}
	return nil
}

func (i *Input) Move(x, y int) error {
	if ok, _, _ := procSetCursorPos.Call(uintptr(x), uintptr(y)); ok == 0 {
		return fmt.Errorf("failed to move cursor to (%d,%d)", x, y)
	}
	return nil
}

func (i *Input) Drag(fromX, fromY, toX, toY int) error {
	if err := i.Move(fromX, fromY); err != nil {
		return err
	}
	if err := send([]winInput{mouse(mouseLeftDown, 0)}); err != nil {
		return err
	}
	// A few intermediate positions so drop targets see motion.
	const steps = 10
	for n := 1; n <= steps; n++ {
		x := fromX + (toX-fromX)*n/steps
		y := fromY + (toY-fromY)*n/steps
		procSetCursorPos.Call(uintptr(x), uintptr(y))
		time.Sleep(15 * time.Millisecond)
	}
	return send([]winInput{mouse(mouseLeftUp, 0)})
}

func (i *Input) Scroll(x, y int, dx, dy int) error {
	if err := i.Move(x, y); err != nil {
		return err
	}
	var inputs []winInput
	if dy != 0 {
		inputs = append(inputs, mouse(mouseWheel, uint32(int32(dy))))
	}
	if dx != 0 {
		inputs = append(inputs, mouse(mouseHWheel, uint32(int32(dx))))
	}
	return send(inputs)
}

func (i *Input) TypeText(text string) error {
	var inputs []winInput
	for _, unit := range utf16.Encode([]rune(text)) {
		inputs = append(inputs, unicodeKey(unit, 0), unicodeKey(unit, keyUp))
	}
	return send(inputs)
}

func (i *Input) KeyCombo(keys []string) error {
	codes := make([]uint16, 0, len(keys))
	for _, name := range keys {
		vk, ok := virtualKey(name)
		if !ok {
			return fmt.Errorf("unknown key %q", name)
		}
		codes = append(codes, vk)
	}

	inputs := make([]winInput, 0, len(codes)*2)
	for _, vk := range codes {
		inputs = append(inputs, key(vk, 0))
	}
	for n := len(codes) - 1; n >= 0; n-- {
		inputs = append(inputs, key(codes[n], keyUp))
	}
	return send(inputs)
}

var namedKeys = map[string]uint16{
	"ctrl":      0x11,
	"control":   0x11,
	"alt":       0x12,
	"shift":     0x10,
	"win":       0x5B,
	"cmd":       0x5B,
	"enter":     0x0D,
	"return":    0x0D,
	"tab":       0x09,
	"esc":       0x1B,
	"escape":    0x1B,
	"space":     0x20,
	"backspace": 0x08,
	"delete":    0x2E,
	"insert":    0x2D,
	"home":      0x24,
	"end":       0x23,
	"pageup":    0x21,
	"pagedown":  0x22,
	"up":        0x26,
	"down":      0x28,
	"left":      0x25,
	"right":     0x27,
	"printscreen": 0x2C,
}

func virtualKey(name string) (uint16, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if vk, ok := namedKeys[name]; ok {
		return vk, true
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint16(c-'a') + 0x41, true
		case c >= '0' && c <= '9':
			return uint16(c-'0') + 0x30, true
		}
	}
	if strings.HasPrefix(name, "f") && len(name) <= 3 {
		var n int
		if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && n >= 1 && n <= 12 {
			return uint16(n-1) + 0x70, true
		}
	}
	return 0, false
}
