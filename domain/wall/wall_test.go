package wall

import (
	"errors"
	"image"
	"testing"
)

func TestNewRegistry_Validates(t *testing.T) {
	if _, err := NewRegistry(nil); !errors.Is(err, ErrNoCameras) {
		t.Fatalf("expected ErrNoCameras, got %v", err)
	}
	if _, err := NewRegistry([]Tile{{Index: 0, Name: "a"}, {Index: 1, Name: "a"}}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if _, err := NewRegistry([]Tile{{Index: 0, Name: ""}}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if _, err := NewRegistry([]Tile{{Index: 1, Name: "a"}}); err == nil {
		t.Fatalf("expected index mismatch error")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry([]Tile{{Index: 0, Name: "gate"}, {Index: 1, Name: "yard"}})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if tl, ok := r.ByName("yard"); !ok || tl.Index != 1 {
		t.Fatalf("ByName yard: %+v %v", tl, ok)
	}
	if tl, ok := r.ByIndex(0); !ok || tl.Name != "gate" {
		t.Fatalf("ByIndex 0: %+v %v", tl, ok)
	}
	if _, ok := r.ByIndex(2); ok {
		t.Fatalf("ByIndex out of range should miss")
	}
	if _, ok := r.ByName("nope"); ok {
		t.Fatalf("unknown name should miss")
	}
	tiles := r.Tiles()
	tiles[0].Name = "mutated"
	if tl, _ := r.ByIndex(0); tl.Name != "gate" {
		t.Fatalf("Tiles must return a copy")
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestGridSize(t *testing.T) {
	cases := map[int]int{0: 2, 1: 2, 2: 2, 3: 2, 4: 2, 5: 3, 9: 3, 10: 4}
	for n, want := range cases {
		if got := GridSize(n); got != want {
			t.Fatalf("GridSize(%d)=%d want %d", n, got, want)
		}
	}
}

func TestLayout_TileRectAndHitTest(t *testing.T) {
	l := Layout{Rows: 2, Cols: 2, Size: image.Pt(210, 110), Gap: 10}
	if got := l.TileRect(0); got != image.Rect(0, 0, 100, 50) {
		t.Fatalf("tile 0: %v", got)
	}
	if got := l.TileRect(3); got != image.Rect(110, 60, 210, 110) {
		t.Fatalf("tile 3: %v", got)
	}
	if i, ok := l.HitTest(image.Pt(150, 20)); !ok || i != 1 {
		t.Fatalf("hit tile 1: %d %v", i, ok)
	}
	// gap between columns
	if _, ok := l.HitTest(image.Pt(105, 20)); ok {
		t.Fatalf("gap should miss")
	}
	if _, ok := l.HitTest(image.Pt(-1, 20)); ok {
		t.Fatalf("negative should miss")
	}
	if _, ok := l.HitTest(image.Pt(250, 20)); ok {
		t.Fatalf("outside grid should miss")
	}
	if got := l.TileRect(4); !got.Empty() {
		t.Fatalf("out of grid tile should be empty: %v", got)
	}
}

func TestFitRect(t *testing.T) {
	// 16:9 source into a square: letterboxed vertically
	got := FitRect(image.Pt(1600, 900), image.Rect(0, 0, 160, 160))
	if got != image.Rect(0, 35, 160, 125) {
		t.Fatalf("letterbox: %v", got)
	}
	// unknown source size fills destination
	dst := image.Rect(10, 10, 50, 50)
	if got := FitRect(image.Point{}, dst); got != dst {
		t.Fatalf("zero source: %v", got)
	}
}
