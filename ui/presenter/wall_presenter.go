package presenter

import (
	"image"
	"image/color"

	"github.com/soocke/camwall/domain/stream"
	"github.com/soocke/camwall/domain/wall"
	"github.com/soocke/camwall/ui/images"
	"github.com/soocke/camwall/ui/model"
	"github.com/soocke/camwall/ui/overlay"
)

var screenBg = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}

// FrameSources resolves the live source of a tile index.
type FrameSources interface {
	Source(i int) stream.FrameSource
}

// ScreenView displays the composed wall image.
type ScreenView interface {
	UpdateScreen(img image.Image)
}

// TileClicker receives clicks that land on a tile.
type TileClicker interface {
	OnTileClick(index int)
}

// WallPresenter composes the wall image on each tick, hosts the ROI overlay
// and routes pointer events from the screen.
type WallPresenter struct {
	registry *wall.Registry
	sources  FrameSources
	model    *model.WallModel
	view     ScreenView
	layout   wall.Layout
	clicks   TileClicker

	canvas *image.RGBA

	surface   *overlay.Surface
	overlayAt image.Point
	sink      PointerSink
	dirty     bool

	// sequences of the frames last drawn, plus the mode they were drawn in
	drawn     []uint64
	drawnMode model.WallState
	drawnFull int
}

// NewWallPresenter constructs the renderer for a fixed-size screen.
func NewWallPresenter(reg *wall.Registry, sources FrameSources, m *model.WallModel, view ScreenView, layout wall.Layout) *WallPresenter {
	return &WallPresenter{
		registry: reg,
		sources:  sources,
		model:    m,
		view:     view,
		layout:   layout,
		canvas:   image.NewRGBA(layout.FullRect()),
		drawn:    make([]uint64, reg.Len()),
		dirty:    true,
	}
}

// SetClickHandler sets the receiver of tile clicks.
func (p *WallPresenter) SetClickHandler(c TileClicker) {
	if p != nil {
		p.clicks = c
	}
}

// Layout returns the screen geometry.
func (p *WallPresenter) Layout() wall.Layout { return p.layout }

// Render composes the visible tiles and the overlay, and pushes the image to
// the view when anything changed since the last call.
func (p *WallPresenter) Render() {
	if p == nil || p.view == nil {
		return
	}
	mode := p.model.State()
	full, _ := p.model.Fullscreen()
	visible := p.visible()

	changed := p.dirty || mode != p.drawnMode || full != p.drawnFull
	for _, i := range visible {
		if p.frame(i).Sequence != p.drawn[i] {
			changed = true
		}
	}
	if !changed {
		return
	}

	images.Fill(p.canvas, p.canvas.Bounds(), screenBg)
	for _, i := range visible {
		p.drawTile(i)
	}
	if p.surface != nil {
		images.Composite(p.canvas, p.surface.Image(), p.overlayAt)
	}
	p.dirty = false
	p.drawnMode, p.drawnFull = mode, full
	p.view.UpdateScreen(p.canvas)
}

func (p *WallPresenter) visible() []int {
	if i, ok := p.model.Fullscreen(); ok {
		return []int{i}
	}
	out := make([]int, p.registry.Len())
	for i := range out {
		out[i] = i
	}
	return out
}

func (p *WallPresenter) frame(i int) stream.FrameSnapshot {
	if p.sources == nil {
		return stream.FrameSnapshot{}
	}
	src := p.sources.Source(i)
	if src == nil {
		return stream.FrameSnapshot{}
	}
	return src.LatestFrame()
}

func (p *WallPresenter) cell(i int) image.Rectangle {
	if _, ok := p.model.Fullscreen(); ok {
		return p.layout.FullRect()
	}
	return p.layout.TileRect(i)
}

func (p *WallPresenter) drawTile(i int) {
	tile, _ := p.registry.ByIndex(i)
	cell := p.cell(i)
	snap := p.frame(i)
	p.drawn[i] = snap.Sequence
	if snap.Image == nil {
		images.Placeholder(p.canvas, cell, "no signal")
	} else {
		images.ScaleInto(p.canvas, wall.FitRect(snap.Image.Bounds().Size(), cell), snap.Image)
	}
	images.DrawLabel(p.canvas, cell.Min.Add(image.Pt(4, 4)), tile.Name)
}

// ImageRect returns the rect camera's frame occupies on screen in the
// current mode. It reports false until the camera has delivered a frame,
// because the letterboxed rect is unknown before then.
func (p *WallPresenter) ImageRect(camera string) (image.Rectangle, bool) {
	if p == nil {
		return image.Rectangle{}, false
	}
	tile, ok := p.registry.ByName(camera)
	if !ok {
		return image.Rectangle{}, false
	}
	if full, isFull := p.model.Fullscreen(); isFull && full != tile.Index {
		return image.Rectangle{}, false
	}
	snap := p.frame(tile.Index)
	if snap.Image == nil {
		return image.Rectangle{}, false
	}
	r := wall.FitRect(snap.Image.Bounds().Size(), p.cell(tile.Index))
	return r, !r.Empty()
}

// AttachOverlay shows s at origin and routes pointer events to sink.
func (p *WallPresenter) AttachOverlay(s *overlay.Surface, origin image.Point, sink PointerSink) {
	p.surface, p.overlayAt, p.sink = s, origin, sink
	p.dirty = true
}

// DetachOverlay removes the overlay and its sink.
func (p *WallPresenter) DetachOverlay() {
	p.surface, p.sink = nil, nil
	p.dirty = true
}

// OverlayChanged marks the overlay for redisplay on the next Render.
func (p *WallPresenter) OverlayChanged() { p.dirty = true }

// Press handles a primary-button press on the screen.
func (p *WallPresenter) Press(pt image.Point) {
	if p != nil && p.sink != nil {
		p.sink.PointerDown(pt)
	}
}

// Drag handles pointer motion with the primary button held.
func (p *WallPresenter) Drag(pt image.Point) {
	if p != nil && p.sink != nil {
		p.sink.PointerMove(pt)
	}
}

// Release handles a primary-button release. With an overlay attached the
// release belongs to the drawing; otherwise it is a tile click.
func (p *WallPresenter) Release(pt image.Point) {
	if p == nil {
		return
	}
	if p.sink != nil {
		p.sink.PointerUp(pt)
		return
	}
	if p.clicks == nil {
		return
	}
	if i, ok := p.model.Fullscreen(); ok {
		if pt.In(p.layout.FullRect()) {
			p.clicks.OnTileClick(i)
		}
		return
	}
	if i, ok := p.layout.HitTest(pt); ok && i < p.registry.Len() {
		p.clicks.OnTileClick(i)
	}
}
