package images

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBg = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	labelFg       = color.RGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 0xff}
	labelBg       = color.RGBA{A: 0xa0}
)

// Fill paints r of dst with a solid color.
func Fill(dst draw.Image, r image.Rectangle, c color.Color) {
	if dst == nil {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Placeholder paints a "no signal" tile into r.
func Placeholder(dst draw.Image, r image.Rectangle, text string) {
	Fill(dst, r, placeholderBg)
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + r.Dy()/2
	drawText(dst, image.Pt(x, y), text, labelFg)
}

// DrawLabel writes text with a translucent backing box whose top-left is at.
func DrawLabel(dst draw.Image, at image.Point, text string) {
	if dst == nil || text == "" {
		return
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	box := image.Rect(at.X, at.Y, at.X+w+8, at.Y+face.Height+6)
	draw.Draw(dst, box.Intersect(dst.Bounds()), image.NewUniform(labelBg), image.Point{}, draw.Over)
	drawText(dst, image.Pt(at.X+4, at.Y+3+face.Ascent), text, labelFg)
}

func drawText(dst draw.Image, baseline image.Point, text string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(baseline.X, baseline.Y),
	}
	d.DrawString(text)
}

// Composite blends overlay onto dst with its top-left at the given point.
func Composite(dst draw.Image, overlay image.Image, at image.Point) {
	if dst == nil || overlay == nil {
		return
	}
	ob := overlay.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(ob.Size())}
	draw.Draw(dst, r, overlay, ob.Min, draw.Over)
}
