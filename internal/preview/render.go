// Package preview draws icons in the terminal using half-block glyphs, two
// image rows per text row.
package preview

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/snake-icons/internal/core"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// Cell is one terminal character covering two vertically stacked pixels.
// A nil colour means the pixel is transparent.
type Cell struct {
	Glyph rune
	FG    *color.RGBA
	BG    *color.RGBA
}

// Cells converts img into a grid of half-block cells, at most maxCols wide.
// Wider images are nearest-neighbour downscaled so pixel edges stay sharp.
// maxCols <= 0 means no limit.
func Cells(img image.Image, maxCols int) [][]Cell {
	src := fit(img, maxCols)
	b := src.Bounds()

	rows := make([][]Cell, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		row := make([]Cell, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			top := opaque(src.At(x, y))
			var bottom *color.RGBA
			if y+1 < b.Max.Y {
				bottom = opaque(src.At(x, y+1))
			}
			row = append(row, cellFor(top, bottom))
		}
		rows = append(rows, row)
	}
	return rows
}

func cellFor(top, bottom *color.RGBA) Cell {
	switch {
	case top == nil && bottom == nil:
		return Cell{Glyph: ' '}
	case top == nil:
		return Cell{Glyph: lowerHalf, FG: bottom}
	default:
		return Cell{Glyph: upperHalf, FG: top, BG: bottom}
	}
}

// opaque returns the colour with alpha dropped, or nil if fully transparent.
func opaque(c color.Color) *color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return nil
	}
	return &color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

func fit(img image.Image, maxCols int) image.Image {
	b := img.Bounds()
	if maxCols <= 0 || b.Dx() <= maxCols {
		return img
	}
	h := b.Dy() * maxCols / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, maxCols, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Render converts img to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func Render(img image.Image, maxCols int) string {
	rows := Cells(img, maxCols)

	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			start := row[x]

			var run strings.Builder
			for x < len(row) && sameColours(row[x], start) {
				run.WriteRune(row[x].Glyph)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

func sameColours(a, b Cell) bool {
	return eq(a.FG, b.FG) && eq(a.BG, b.BG)
}

func eq(a, b *color.RGBA) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func styleFor(c Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.FG != nil {
		style = style.Foreground(lipgloss.Color(core.Hex(*c.FG)))
	}
	if c.BG != nil {
		style = style.Background(lipgloss.Color(core.Hex(*c.BG)))
	}
	return style
}
