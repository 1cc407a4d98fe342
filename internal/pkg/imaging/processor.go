package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Bounds the stored copy of a question image. Images already smaller than
// this are re-encoded but never enlarged.
const (
	MaxWidth    = 1200
	MaxHeight   = 800
	JPEGQuality = 80
)

var dataURLPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// Processor resizes and compresses uploaded images before storage
type Processor interface {
	ResizeAndCompress(data []byte) ([]byte, error)
}

// JPEGProcessor re-encodes images as bounded JPEGs
type JPEGProcessor struct{}

// NewProcessor creates the default image processor
func NewProcessor() *JPEGProcessor {
	return &JPEGProcessor{}
}

// DecodeBase64 strips an optional data-URL prefix and decodes the payload
func DecodeBase64(encoded string) ([]byte, error) {
	trimmed := dataURLPrefix.ReplaceAllString(strings.TrimSpace(encoded), "")
	data, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return data, nil
}

// ResizeAndCompress decodes an image, scales it down to fit within
// MaxWidth x MaxHeight (preserving aspect ratio, never enlarging) and
// re-encodes it as JPEG.
func (p *JPEGProcessor) ResizeAndCompress(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	targetW, targetH := fitWithin(width, height, MaxWidth, MaxHeight)
	if targetW != width || targetH != height {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWithin scales (w, h) to fit inside (maxW, maxH) preserving aspect ratio.
// Dimensions already inside the box are returned unchanged.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	outW := int(float64(w) * scale)
	outH := int(float64(h) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}
