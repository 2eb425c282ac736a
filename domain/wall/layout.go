package wall

import (
	"image"
	"math"
)

// GridSize returns the square grid dimension used for n cameras:
// 2 for up to two cameras, otherwise ceil(sqrt(n)).
func GridSize(n int) int {
	if n <= 2 {
		return 2
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// Layout describes the tiled grid geometry of the wall screen.
type Layout struct {
	Rows, Cols int
	Size       image.Point // screen size in pixels
	Gap        int         // pixels between adjacent tiles
}

// FullRect is the whole screen, used for the single-camera view.
func (l Layout) FullRect() image.Rectangle {
	return image.Rectangle{Max: l.Size}
}

func (l Layout) cell() (w, h int) {
	if l.Rows <= 0 || l.Cols <= 0 {
		return 0, 0
	}
	w = (l.Size.X - l.Gap*(l.Cols-1)) / l.Cols
	h = (l.Size.Y - l.Gap*(l.Rows-1)) / l.Rows
	return max(w, 0), max(h, 0)
}

// TileRect returns the grid cell of tile i in row-major order.
func (l Layout) TileRect(i int) image.Rectangle {
	w, h := l.cell()
	if i < 0 || w == 0 || h == 0 || i >= l.Rows*l.Cols {
		return image.Rectangle{}
	}
	row, col := i/l.Cols, i%l.Cols
	x := col * (w + l.Gap)
	y := row * (h + l.Gap)
	return image.Rect(x, y, x+w, y+h)
}

// HitTest returns the cell index under p. Gaps and points outside the grid
// miss. Callers still need to check the index against the tile count.
func (l Layout) HitTest(p image.Point) (int, bool) {
	w, h := l.cell()
	if w == 0 || h == 0 || p.X < 0 || p.Y < 0 {
		return 0, false
	}
	col := p.X / (w + l.Gap)
	row := p.Y / (h + l.Gap)
	if col >= l.Cols || row >= l.Rows {
		return 0, false
	}
	i := row*l.Cols + col
	if !p.In(l.TileRect(i)) {
		return 0, false
	}
	return i, true
}

// FitRect centers the largest rectangle with src's aspect ratio inside dst.
// A zero src fills dst entirely.
func FitRect(src image.Point, dst image.Rectangle) image.Rectangle {
	dw, dh := dst.Dx(), dst.Dy()
	if src.X <= 0 || src.Y <= 0 || dw <= 0 || dh <= 0 {
		return dst
	}
	ratio := math.Min(float64(dw)/float64(src.X), float64(dh)/float64(src.Y))
	w := max(1, int(float64(src.X)*ratio+0.5))
	h := max(1, int(float64(src.Y)*ratio+0.5))
	w, h = min(w, dw), min(h, dh)
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
