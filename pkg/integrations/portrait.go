package integrations

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrRemoteImage = errors.New("remote images are not loaded")

// PortraitRenderer draws author portraits in the terminal using half-block
// cells: each character shows two vertically stacked pixels.
type PortraitRenderer struct {
	imageDir string
	width    int
}

func NewPortraitRenderer(imageDir string, width int) *PortraitRenderer {
	if width < 1 {
		width = 1
	}
	return &PortraitRenderer{imageDir: imageDir, width: width}
}

// Render loads the image referenced by ref and returns it as terminal art.
func (p *PortraitRenderer) Render(ref string) (string, error) {
	path, ok := LocalImagePath(p.imageDir, ref)
	if !ok {
		if strings.Contains(ref, "://") {
			return "", ErrRemoteImage
		}
		return "", fmt.Errorf("image not found: %s", ref)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return p.RenderImage(img), nil
}

// RenderImage scales img to the renderer width, keeping its aspect ratio.
func (p *PortraitRenderer) RenderImage(img image.Image) string {
	width, height := p.calculateDimensions(img.Bounds().Dx(), img.Bounds().Dy())
	scaled := resize(img, width, height)

	var b strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := hexColor(scaled.At(x, y))
			bottom := top
			if y+1 < height {
				bottom = hexColor(scaled.At(x, y+1))
			}
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(cell.Render("▀"))
		}
		if y+2 < height {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// calculateDimensions returns the pixel grid for the target width. Height is
// rounded up to an even number so every cell row is full.
func (p *PortraitRenderer) calculateDimensions(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return p.width, 2
	}

	newHeight := int(float64(height) * float64(p.width) / float64(width))
	if newHeight < 2 {
		newHeight = 2
	}
	if newHeight%2 == 1 {
		newHeight++
	}
	return p.width, newHeight
}

func resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
