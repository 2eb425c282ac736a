package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/soocke/camwall/domain/roi"
)

// Stroke style for the ROI rectangle. Fixed on purpose: the rectangle must
// stay visible on any camera image.
var (
	StrokeColor = color.RGBA{R: 0xff, A: 0xff}
	StrokeWidth = 2
)

// Surface is the transparent drawing layer laid over one camera image.
// It holds no rectangle state: every Repaint is a full redraw.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a transparent surface of the given displayed size.
func NewSurface(size image.Point) *Surface {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return &Surface{img: image.NewRGBA(image.Rectangle{Max: size})}
}

// Bounds returns the surface rectangle (origin at 0,0).
func (s *Surface) Bounds() image.Rectangle {
	if s == nil || s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Rect
}

// Image exposes the backing pixels for compositing.
func (s *Surface) Image() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.img
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	if s == nil || s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Rect, image.Transparent, image.Point{}, draw.Src)
}

// Repaint clears the surface and strokes the border of r.
// Parts of r outside the surface are clipped.
func (s *Surface) Repaint(r roi.Rect) {
	if s == nil || s.img == nil {
		return
	}
	s.Clear()
	strokeRect(s.img, r.Image(), StrokeColor, StrokeWidth)
}

// strokeRect draws a border of width w inside rect, like a canvas strokeRect
// centred on the path would for even widths.
func strokeRect(dst *image.RGBA, rect image.Rectangle, col color.RGBA, w int) {
	if w < 1 {
		w = 1
	}
	half := w / 2
	outer := image.Rect(rect.Min.X-half, rect.Min.Y-half, rect.Max.X+w-half, rect.Max.Y+w-half)
	src := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+w), // top
		image.Rect(outer.Min.X, outer.Max.Y-w, outer.Max.X, outer.Max.Y), // bottom
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+w, outer.Max.Y), // left
		image.Rect(outer.Max.X-w, outer.Min.Y, outer.Max.X, outer.Max.Y), // right
	}
	for _, e := range edges {
		e = e.Intersect(dst.Rect)
		if e.Empty() {
			continue
		}
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}
