package integrations

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestPortraitRender(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "twain.png", 40, 80)

	out, err := NewPortraitRenderer(dir, 10).Render("twain.png")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	// 40x80 scaled to width 10 is 10x20 pixels, i.e. 10 cell rows.
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 10, strings.Count(line, "▀"))
	}
}

func TestPortraitRenderImageOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	out := NewPortraitRenderer("", 4).RenderImage(img)
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestPortraitRenderMissing(t *testing.T) {
	_, err := NewPortraitRenderer(t.TempDir(), 10).Render("nope.jpg")
	assert.Error(t, err)
}

func TestPortraitRenderRemote(t *testing.T) {
	_, err := NewPortraitRenderer(t.TempDir(), 10).Render("http://example.com/a.jpg")
	assert.True(t, errors.Is(err, ErrRemoteImage))
}

func TestPortraitRenderUndecodable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0644))

	_, err := NewPortraitRenderer(dir, 10).Render("bad.png")
	assert.Error(t, err)
}

func TestCalculateDimensions(t *testing.T) {
	p := NewPortraitRenderer("", 20)

	w, h := p.calculateDimensions(100, 200)
	assert.Equal(t, 20, w)
	assert.Equal(t, 40, h)

	w, h = p.calculateDimensions(100, 5)
	assert.Equal(t, 20, w)
	assert.Equal(t, 2, h)

	_, h = p.calculateDimensions(10, 15)
	assert.Equal(t, 0, h%2)
}
