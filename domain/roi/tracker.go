package roi

// Tracker owns one drag gesture. The zero value is inactive and usable.
// Calls made out of sequence (update/end without begin) are no-ops.
type Tracker struct {
	start  Point
	active bool
}

// BeginDrag records the gesture start point.
func (t *Tracker) BeginDrag(p Point) {
	if t == nil {
		return
	}
	t.start = p
	t.active = true
}

// UpdateDrag returns the rectangle between the start point and p.
func (t *Tracker) UpdateDrag(p Point) (Rect, bool) {
	if t == nil || !t.active {
		return Rect{}, false
	}
	return Normalize(t.start, p), true
}

// EndDrag returns the final rectangle and ends the gesture.
func (t *Tracker) EndDrag(p Point) (Rect, bool) {
	if t == nil || !t.active {
		return Rect{}, false
	}
	r := Normalize(t.start, p)
	t.Reset()
	return r, true
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t != nil && t.active }

// Reset discards any gesture in progress.
func (t *Tracker) Reset() {
	if t == nil {
		return
	}
	t.start = Point{}
	t.active = false
}
