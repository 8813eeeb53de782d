// Package verify checks icon files on disk against a fresh render.
package verify

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG format
	"os"

	"github.com/vovakirdan/snake-icons/internal/icon"
)

// Report is the outcome of checking one file.
type Report struct {
	Path   string
	Size   int // Expected edge length
	Width  int
	Height int

	// Mismatches counts pixels that differ from the expected render.
	// Not computed when the dimensions are wrong.
	Mismatches    int
	FirstMismatch image.Point
}

// OK reports whether the file matched the expected icon exactly.
func (r Report) OK() bool {
	return r.Width == r.Size && r.Height == r.Size && r.Mismatches == 0
}

// String returns a one-line human readable summary.
func (r Report) String() string {
	switch {
	case r.Width != r.Size || r.Height != r.Size:
		return fmt.Sprintf("%s: %dx%d, expected %dx%d", r.Path, r.Width, r.Height, r.Size, r.Size)
	case r.Mismatches > 0:
		return fmt.Sprintf("%s: %d pixels differ (first at %d,%d)", r.Path, r.Mismatches, r.FirstMismatch.X, r.FirstMismatch.Y)
	default:
		return fmt.Sprintf("%s: ok", r.Path)
	}
}

// File decodes the image at path and compares it with icon.Render(style, size).
// The error is non-nil only when the file cannot be read or decoded.
func File(path string, style icon.Style, size int) (Report, error) {
	report := Report{Path: path, Size: size}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return report, fmt.Errorf("verify: icon file not found: %s", path)
		}
		return report, fmt.Errorf("verify: failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return report, fmt.Errorf("verify: path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("verify: failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return report, fmt.Errorf("verify: failed to decode %s (format: %s): %w", path, format, err)
	}

	return Compare(img, icon.Render(style, size), path, size), nil
}

// Compare checks got against want pixel by pixel in non-premultiplied RGBA.
func Compare(got image.Image, want *image.RGBA, path string, size int) Report {
	b := got.Bounds()
	report := Report{Path: path, Size: size, Width: b.Dx(), Height: b.Dy()}
	if report.Width != size || report.Height != size {
		return report
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g := color.NRGBAModel.Convert(got.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			w := color.NRGBAModel.Convert(want.RGBAAt(x, y)).(color.NRGBA)
			if g != w {
				if report.Mismatches == 0 {
					report.FirstMismatch = image.Pt(x, y)
				}
				report.Mismatches++
			}
		}
	}
	return report
}
