package stream

import (
	"log/slog"

	"github.com/soocke/camwall/domain/wall"
)

// Pool owns one Service per wall tile, indexed like the registry.
type Pool struct {
	services []*Service
}

// NewPool creates (stopped) services for every tile.
func NewPool(tiles []wall.Tile, logger *slog.Logger) *Pool {
	p := &Pool{services: make([]*Service, len(tiles))}
	for i, t := range tiles {
		p.services[i] = NewService(t.Name, t.StreamURL, logger)
	}
	return p
}

// Start starts every stream.
func (p *Pool) Start() {
	for _, s := range p.services {
		s.Start()
	}
}

// Stop stops every stream.
func (p *Pool) Stop() {
	for _, s := range p.services {
		s.Stop()
	}
}

// Source returns the frame source for tile index i, or nil.
func (p *Pool) Source(i int) FrameSource {
	if p == nil || i < 0 || i >= len(p.services) {
		return nil
	}
	return p.services[i]
}

// Stats returns per-tile stats in index order.
func (p *Pool) Stats() []Stats {
	if p == nil {
		return nil
	}
	out := make([]Stats, len(p.services))
	for i, s := range p.services {
		out[i] = s.Stats()
	}
	return out
}

// FramesTotal sums decoded frames across all streams.
func (p *Pool) FramesTotal() uint64 {
	var n uint64
	for _, st := range p.Stats() {
		n += st.Frames
	}
	return n
}
