package roi

import (
	"image"
	"math"
)

// Mapper translates pointer positions reported relative to the viewport
// widget into the pixel space of the image displayed inside it.
//
// Positions left of or above the image map to 0 so submitted regions stay
// non-negative. There is no upper clamp: a drag past the right or bottom
// edge keeps the raw pointer coordinate.
type Mapper struct {
	// Origin is the top-left of the displayed image within the viewport.
	Origin image.Point
}

// Map converts a viewport position to surface coordinates.
func (m Mapper) Map(viewport image.Point) Point {
	return m.MapF(float64(viewport.X), float64(viewport.Y))
}

// MapF is Map for sub-pixel viewport positions.
func (m Mapper) MapF(x, y float64) Point {
	// Tk keeps delivering motion to the label after a press (implicit grab),
	// so positions in the letterbox or outside the window arrive here too.
	return Point{
		X: math.Max(0, x-float64(m.Origin.X)),
		Y: math.Max(0, y-float64(m.Origin.Y)),
	}
}
