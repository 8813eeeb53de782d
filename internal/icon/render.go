package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Render draws the icon for style at size x size pixels.
// The canvas starts fully transparent. Negative sizes are treated as zero.
func Render(style Style, size int) *image.RGBA {
	if size < 0 {
		size = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	if style.Background != nil {
		fill(img, img.Bounds(), *style.Background)
	}

	segments, food := style.Layout(size)
	for _, r := range segments {
		fill(img, r.Image(), style.SnakeColor)
	}
	fill(img, food.Image(), style.FoodColor)

	return img
}

// fill paints r with c, replacing whatever was there (no blending).
func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
