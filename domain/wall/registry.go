package wall

import (
	"errors"
	"fmt"
)

// Tile identifies one camera on the wall. Name is the stable identifier used
// when persisting an ROI; Index is positional and only used for display.
type Tile struct {
	Index     int
	Name      string
	StreamURL string
}

// ErrNoCameras is returned when a wall is built without any tile.
var ErrNoCameras = errors.New("wall: no cameras configured")

// Registry maps camera identifiers to tiles. It is built once and is
// read-only afterwards, so it needs no locking.
type Registry struct {
	tiles  []Tile
	byName map[string]int
}

// NewRegistry validates tiles and indexes them by name. Tiles must be
// ordered by Index starting at 0 and carry unique, non-empty names.
func NewRegistry(tiles []Tile) (*Registry, error) {
	if len(tiles) == 0 {
		return nil, ErrNoCameras
	}
	r := &Registry{tiles: make([]Tile, len(tiles)), byName: make(map[string]int, len(tiles))}
	for i, t := range tiles {
		if t.Index != i {
			return nil, fmt.Errorf("wall: tile %q has index %d, want %d", t.Name, t.Index, i)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("wall: tile %d has no name", i)
		}
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("wall: duplicate camera name %q", t.Name)
		}
		r.byName[t.Name] = i
		r.tiles[i] = t
	}
	return r, nil
}

// ByIndex returns the tile at index i.
func (r *Registry) ByIndex(i int) (Tile, bool) {
	if r == nil || i < 0 || i >= len(r.tiles) {
		return Tile{}, false
	}
	return r.tiles[i], true
}

// ByName returns the tile for a camera name.
func (r *Registry) ByName(name string) (Tile, bool) {
	if r == nil {
		return Tile{}, false
	}
	i, ok := r.byName[name]
	if !ok {
		return Tile{}, false
	}
	return r.tiles[i], true
}

// Tiles returns a copy of all tiles in index order.
func (r *Registry) Tiles() []Tile {
	if r == nil {
		return nil
	}
	out := make([]Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Len returns the number of tiles.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tiles)
}
