package core

import (
	"image"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "empty rect never intersects",
			a:        NewRect(0, 0, 0, 0),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(4, 4, 4, 4)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 4, 4, true},
		{"last pixel", 7, 7, true},
		{"bottom-right edge (exclusive)", 8, 8, false},
		{"outside left", 3, 5, false},
		{"outside top", 5, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectImageAndShrink(t *testing.T) {
	r := NewRect(12, 36, 12, 12)

	if got, want := r.Image(), image.Rect(12, 36, 24, 48); got != want {
		t.Errorf("Image() = %v, expected %v", got, want)
	}

	s := r.Shrink(1)
	if s.W != 11 || s.H != 11 || s.X != 12 || s.Y != 36 {
		t.Errorf("Shrink(1) = %+v, expected 11x11 at (12, 36)", s)
	}

	if !NewRect(0, 0, 1, 1).Shrink(1).Empty() {
		t.Error("Shrink(1) of a 1x1 rect should be empty")
	}
	if got := NewRect(0, 0, 0, 0).Shrink(3); got.W != 0 || got.H != 0 {
		t.Errorf("Shrink should clamp at zero, got %+v", got)
	}
}

func TestGridCellRect(t *testing.T) {
	tests := []struct {
		size     int
		cell     int
		p        Point
		expected Rect
	}{
		{16, 4, Point{1, 1}, NewRect(4, 4, 4, 4)},
		{16, 4, Point{0, 3}, NewRect(0, 12, 4, 4)},
		{48, 12, Point{2, 3}, NewRect(24, 36, 12, 12)},
		{128, 32, Point{2, 2}, NewRect(64, 64, 32, 32)},
		{18, 4, Point{3, 3}, NewRect(12, 12, 4, 4)}, // 2px strip left over
		{3, 0, Point{1, 1}, NewRect(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		g := NewGrid(tc.size)
		if g.Cell != tc.cell {
			t.Errorf("NewGrid(%d).Cell = %d, expected %d", tc.size, g.Cell, tc.cell)
		}
		if got := g.CellRect(tc.p); got != tc.expected {
			t.Errorf("NewGrid(%d).CellRect(%v) = %+v, expected %+v", tc.size, tc.p, got, tc.expected)
		}
	}
}

func TestGridCovered(t *testing.T) {
	if got := NewGrid(18).Covered(); got != NewRect(0, 0, 16, 16) {
		t.Errorf("Covered() = %+v, expected 16x16", got)
	}
	if got := NewGrid(-5); got.Size != 0 || got.Cell != 0 {
		t.Errorf("NewGrid(-5) = %+v, expected zero grid", got)
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
