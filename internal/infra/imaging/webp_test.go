package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebP_DownscalesLongSide(t *testing.T) {
	res, err := ToWebP(pngOf(t, 3200, 800))
	require.NoError(t, err)

	assert.Equal(t, MaxSide, res.Width)
	assert.Equal(t, 400, res.Height)
	assert.NotEmpty(t, res.Data)
}

func TestToWebP_KeepsSmallImages(t *testing.T) {
	res, err := ToWebP(pngOf(t, 120, 80))
	require.NoError(t, err)

	assert.Equal(t, 120, res.Width)
	assert.Equal(t, 80, res.Height)
}

func TestToWebP_RejectsGarbage(t *testing.T) {
	_, err := ToWebP([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}
