package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"yuki/internal/application/port/output"

	"github.com/disintegration/imaging"
)

const (
	maxWidth    = 1024
	jpegQuality = 75
)

// Service re-encodes raw platform captures for the oracle: wide frames
// are downscaled to maxWidth and everything is compressed to JPEG so a
// full-screen capture stays well under prompt attachment limits.
type Service struct {
	raw output.ScreenshotPort
	log output.LoggerPort
}

var _ output.ScreenshotPort = (*Service)(nil)

func NewService(raw output.ScreenshotPort, log output.LoggerPort) *Service {
	return &Service{raw: raw, log: log}
}

func (s *Service) Capture() ([]byte, error) {
	data, err := s.raw.Capture()
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	if s.log != nil {
		s.log.Debug("screenshot captured", "bytes", buf.Len())
	}
	return buf.Bytes(), nil
}
