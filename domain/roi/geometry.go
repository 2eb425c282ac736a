package roi

import (
	"image"
	"math"
)

// Point is a pointer position in overlay surface space. Pointer coordinates
// may be fractional; rounding happens only when a region is submitted.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is a normalized rectangle: top-left corner plus non-negative size.
// It is always derived from the two points of a drag gesture.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Normalize builds the rectangle spanned by a and b regardless of drag direction.
func Normalize(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Region is the integer rectangle sent to the camera server.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rounded converts r to integer pixels, rounding half away from zero.
func (r Rect) Rounded() Region {
	return Region{
		X:      int(math.Round(r.X)),
		Y:      int(math.Round(r.Y)),
		Width:  int(math.Round(r.Width)),
		Height: int(math.Round(r.Height)),
	}
}

// Image returns the rectangle in image.Rectangle form (rounded).
func (r Rect) Image() image.Rectangle {
	g := r.Rounded()
	return image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
}
