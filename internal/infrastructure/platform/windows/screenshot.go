//go:build windows

package windows

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"unsafe"

	"yuki/internal/application/port/output"
)

const srcCopy = 0x00CC0020

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

// Capturer grabs the primary screen with GDI. It returns PNG bytes; the
// screenshot service downstream handles scaling and recompression.
type Capturer struct {
	log output.LoggerPort
}

var _ output.ScreenshotPort = (*Capturer)(nil)

func NewCapturer(log output.LoggerPort) *Capturer {
	return &Capturer{log: log}
}

func (c *Capturer) Capture() ([]byte, error) {
	w, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	width, height := int(w), int(h)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("no screen metrics available")
	}

	screenDC, _, _ := procGetDC.Call(0)
	if screenDC == 0 {
		return nil, fmt.Errorf("failed to acquire screen dc")
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, _ := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return nil, fmt.Errorf("failed to create memory dc")
	}
	defer procDeleteDC.Call(memDC)

	bitmap, _, _ := procCreateCompatibleBitmap.Call(screenDC, uintptr(width), uintptr(height))
	if bitmap == 0 {
		return nil, fmt.Errorf("failed to create bitmap %dx%d", width, height)
	}
	defer procDeleteObject.Call(bitmap)

	old, _, _ := procSelectObject.Call(memDC, bitmap)
	defer procSelectObject.Call(memDC, old)

	ok, _, _ := procBitBlt.Call(memDC, 0, 0, uintptr(width), uintptr(height), screenDC, 0, 0, srcCopy)
	if ok == 0 {
		return nil, fmt.Errorf("bitblt failed")
	}

	// Negative height requests a top-down DIB.
	info := bitmapInfo{Header: bitmapInfoHeader{
		Size:     uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		Width:    int32(width),
		Height:   -int32(height),
		Planes:   1,
		BitCount: 32,
	}}

	pixels := make([]byte, width*height*4)
	lines, _, _ := procGetDIBits.Call(
		memDC,
		bitmap,
		0,
		uintptr(height),
		uintptr(unsafe.Pointer(&pixels[0])),
		uintptr(unsafe.Pointer(&info)),
		0, // DIB_RGB_COLORS
	)
	if int(lines) != height {
		return nil, fmt.Errorf("getdibits copied %d of %d lines", lines, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(pixels); i += 4 {
		// BGRA to RGBA
		img.Pix[i] = pixels[i+2]
		img.Pix[i+1] = pixels[i+1]
		img.Pix[i+2] = pixels[i]
		img.Pix[i+3] = 0xFF
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("png encode failed: %w", err)
	}
	return buf.Bytes(), nil
}
