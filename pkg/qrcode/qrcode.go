package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content to encode is empty.
	ErrEmptyContent = errors.New("qrcode: content is empty")
	// ErrGenerationFailed wraps failures of the underlying encoder.
	ErrGenerationFailed = errors.New("qrcode: failed to generate image")
)

// DefaultSize is the image edge length in pixels used when size is not positive.
const DefaultSize = 256

// Generate returns a PNG-encoded QR code for content.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return png, nil
}

// GenerateBase64Image returns a data URI with a base64-encoded PNG QR code,
// usable directly as an <img> source.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
