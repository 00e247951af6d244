package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize creates a copy of the given image, scaled to the given width.
// The aspect ratio is preserved.
func Resize(i image.Image, width int) image.Image {
	b := i.Bounds()
	if b.Dx() == 0 || width <= 0 {
		return i
	}

	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	size := image.Rect(0, 0, width, height)

	dst := image.NewRGBA(size)
	s := draw.CatmullRom
	s.Scale(dst, size, i, b, draw.Over, nil)
	return dst
}
