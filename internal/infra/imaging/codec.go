// Package imaging normalizes client-supplied signature payloads into PNG
// byte buffers. Signatures arrive as canvas-exported data URIs in arbitrary
// raster formats; storing a single format keeps later rendering uniform.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
)

const DefaultMaxBytes int64 = 5 * 1024 * 1024

var ErrInvalidEncoding = errors.New("invalid base64 encoding")

// PayloadTooLargeError reports both sizes in the human-readable form the
// client renders verbatim.
type PayloadTooLargeError struct {
	ActualBytes int64
	MaxBytes    int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("signature size (%s) exceeds maximum allowed size (%s)",
		formatMegabytes(e.ActualBytes), formatMegabytes(e.MaxBytes))
}

type InvalidImageError struct {
	Cause error
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image data: %s", e.Cause)
}

func (e *InvalidImageError) Unwrap() error {
	return e.Cause
}

// DecodePNG turns a base64 payload (with or without a data URI prefix) into a
// PNG byte buffer. The size gate runs on the encoded length before any decode
// effort is spent; raster validation runs on the decoded bytes afterwards.
func DecodePNG(payload string, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	raw := stripDataURIPrefix(payload)

	if size := decodedSize(raw); size > maxBytes {
		return nil, &PayloadTooLargeError{ActualBytes: size, MaxBytes: maxBytes}
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidImageError{Cause: err}
	}

	if format == "png" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &InvalidImageError{Cause: err}
	}

	return buf.Bytes(), nil
}

// stripDataURIPrefix removes a leading "data:<mime>;base64," marker. Bare
// base64 strings pass through untouched.
func stripDataURIPrefix(payload string) string {
	if !strings.HasPrefix(payload, "data:") {
		return payload
	}
	if idx := strings.Index(payload, ","); idx >= 0 {
		return payload[idx+1:]
	}
	return payload
}

// decodedSize estimates the decoded byte length from the encoded string.
// Base64 packs 3 bytes into 4 characters, minus padding.
func decodedSize(encoded string) int64 {
	padding := int64(strings.Count(encoded, "="))
	return (int64(len(encoded))*3)/4 - padding
}

func formatMegabytes(size int64) string {
	return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
}
