package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResizeAndCompressShrinksLargeImages(t *testing.T) {
	p := NewProcessor()

	out, err := p.ResizeAndCompress(encodePNG(t, 2400, 1600))
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), MaxWidth)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), MaxHeight)
}

func TestResizeAndCompressNeverEnlarges(t *testing.T) {
	p := NewProcessor()

	out, err := p.ResizeAndCompress(encodePNG(t, 200, 150))
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 150, decoded.Bounds().Dy())
}

func TestResizeAndCompressRejectsGarbage(t *testing.T) {
	p := NewProcessor()
	_, err := p.ResizeAndCompress([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestDecodeBase64StripsDataURLPrefix(t *testing.T) {
	raw := encodePNG(t, 4, 4)
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	decoded, err := DecodeBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	_, err = DecodeBase64("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestFitWithin(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH, wantW, wantH int
	}{
		{2400, 1600, 1200, 800, 1200, 800},
		{1000, 500, 1200, 800, 1000, 500},
		{3000, 800, 1200, 800, 1200, 320},
		{800, 3000, 1200, 800, 213, 800},
	}
	for _, c := range cases {
		gotW, gotH := fitWithin(c.w, c.h, c.maxW, c.maxH)
		assert.Equal(t, c.wantW, gotW)
		assert.Equal(t, c.wantH, gotH)
	}
}
