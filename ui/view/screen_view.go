package view

import (
	"image"

	"github.com/soocke/camwall/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandler receives primary-button events on the wall screen in
// screen-label coordinates.
type PointerHandler interface {
	Press(p image.Point)
	Drag(p image.Point)
	Release(p image.Point)
}

// ScreenView shows the composed wall image in a single label.
type ScreenView interface {
	UpdateScreen(img image.Image)
}

type screenView struct {
	label     *LabelWidget
	prevPhoto *Img // disposed before each replacement
}

// NewScreenView creates the screen label at row, spanning cols columns, and
// routes pointer events to h.
func NewScreenView(row, cols int, size image.Point, h PointerHandler) ScreenView {
	photo := NewPhoto(Data(images.EncodePNG(blank(size))))
	// no border: label pixels must equal image pixels for hit testing
	label := Label(Image(photo), Borderwidth(0), Padx(0), Pady(0))
	Grid(label, Row(row), Column(0), Columnspan(cols), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	v := &screenView{label: label, prevPhoto: photo}
	if h != nil {
		Bind(label, "<ButtonPress-1>", Command(func(e *Event) { h.Press(eventPoint(e)) }))
		Bind(label, "<B1-Motion>", Command(func(e *Event) { h.Drag(eventPoint(e)) }))
		Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { h.Release(eventPoint(e)) }))
	}
	return v
}

// eventPoint extracts the pointer position relative to the event widget.
func eventPoint(e *Event) image.Point {
	if e == nil {
		return image.Point{}
	}
	return image.Pt(e.X, e.Y)
}

func blank(size image.Point) *image.RGBA {
	return image.NewRGBA(image.Rectangle{Max: size})
}

func (v *screenView) UpdateScreen(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}
