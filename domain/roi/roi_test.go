package roi

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_OrderIndependent(t *testing.T) {
	want := Rect{X: 10, Y: 10, Width: 40, Height: 30}
	if diff := cmp.Diff(want, Normalize(Pt(10, 10), Pt(50, 40))); diff != "" {
		t.Fatalf("forward drag (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, Normalize(Pt(50, 40), Pt(10, 10))); diff != "" {
		t.Fatalf("reverse drag (-want +got):\n%s", diff)
	}
	// mixed corners
	if diff := cmp.Diff(want, Normalize(Pt(10, 40), Pt(50, 10))); diff != "" {
		t.Fatalf("anti-diagonal drag (-want +got):\n%s", diff)
	}
}

func TestNormalize_Properties(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(3, 7), Pt(7, 3), Pt(120.5, 4), Pt(4, 120.5), Pt(99, 99)}
	for _, a := range pts {
		for _, b := range pts {
			r := Normalize(a, b)
			if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
				t.Fatalf("negative component for %v,%v: %+v", a, b, r)
			}
			if r.X != min(a.X, b.X) || r.Y != min(a.Y, b.Y) {
				t.Fatalf("origin not min for %v,%v: %+v", a, b, r)
			}
			if r.X+r.Width != max(a.X, b.X) || r.Y+r.Height != max(a.Y, b.Y) {
				t.Fatalf("extent mismatch for %v,%v: %+v", a, b, r)
			}
		}
	}
}

func TestRect_Rounded(t *testing.T) {
	got := Rect{X: 10.4, Y: 10.5, Width: 39.6, Height: 0.2}.Rounded()
	want := Region{X: 10, Y: 11, Width: 40, Height: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rounded (-want +got):\n%s", diff)
	}
}

func TestTracker_Lifecycle(t *testing.T) {
	var tr Tracker
	if _, ok := tr.UpdateDrag(Pt(1, 1)); ok {
		t.Fatalf("update while inactive should be a no-op")
	}
	if _, ok := tr.EndDrag(Pt(1, 1)); ok {
		t.Fatalf("end while inactive should be a no-op")
	}

	tr.BeginDrag(Pt(50, 40))
	if !tr.Active() {
		t.Fatalf("expected active after begin")
	}
	r, ok := tr.UpdateDrag(Pt(30, 30))
	if !ok || r != (Rect{X: 30, Y: 30, Width: 20, Height: 10}) {
		t.Fatalf("unexpected update rect %+v ok=%v", r, ok)
	}
	// Each update is computed from the original start, not accumulated.
	r, _ = tr.UpdateDrag(Pt(10, 10))
	if r != (Rect{X: 10, Y: 10, Width: 40, Height: 30}) {
		t.Fatalf("update not derived from start point: %+v", r)
	}
	r, ok = tr.EndDrag(Pt(10, 10))
	if !ok || r.Rounded() != (Region{X: 10, Y: 10, Width: 40, Height: 30}) {
		t.Fatalf("unexpected end rect %+v ok=%v", r, ok)
	}
	if tr.Active() {
		t.Fatalf("expected inactive after end")
	}
	if _, ok := tr.EndDrag(Pt(0, 0)); ok {
		t.Fatalf("second end should be a no-op")
	}
}

func TestTracker_ZeroMovement(t *testing.T) {
	var tr Tracker
	tr.BeginDrag(Pt(20, 20))
	r, ok := tr.EndDrag(Pt(20, 20))
	if !ok {
		t.Fatalf("expected rectangle for click")
	}
	if got := r.Rounded(); got != (Region{X: 20, Y: 20}) {
		t.Fatalf("expected zero-size region at 20,20, got %+v", got)
	}
	if !r.Empty() {
		t.Fatalf("expected empty rect")
	}
}

func TestMapper(t *testing.T) {
	m := Mapper{Origin: image.Pt(100, 50)}
	if got := m.Map(image.Pt(110, 60)); got != Pt(10, 10) {
		t.Fatalf("map inside: %+v", got)
	}
	// beyond the image: no upper clamp
	if got := m.Map(image.Pt(5000, 4000)); got != Pt(4900, 3950) {
		t.Fatalf("map beyond: %+v", got)
	}
	// left/above the image floors at zero
	if got := m.Map(image.Pt(20, 10)); got != Pt(0, 0) {
		t.Fatalf("map before origin: %+v", got)
	}
	if got := m.MapF(100.5, 50.25); got != Pt(0.5, 0.25) {
		t.Fatalf("mapF: %+v", got)
	}
}

func TestMapper_DragIntoLetterbox(t *testing.T) {
	// press inside the image, release in the band above and left of it
	m := Mapper{Origin: image.Pt(50, 0)}
	var tr Tracker
	tr.BeginDrag(m.Map(image.Pt(100, 50)))
	r, ok := tr.EndDrag(m.Map(image.Pt(-30, -20)))
	if !ok {
		t.Fatalf("expected rectangle")
	}
	if diff := cmp.Diff(Region{X: 0, Y: 0, Width: 50, Height: 50}, r.Rounded()); diff != "" {
		t.Fatalf("letterbox drag (-want +got):\n%s", diff)
	}
}
