package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StreamStats shows how many camera streams are delivering frames.
type StreamStats interface {
	SetStreamStats(live, total int)
}

type streamStats struct {
	lbl *LabelWidget
}

// NewStreamStats creates the stats label at (row, col) inside parent.
// If parent is nil, the label is positioned relative to the App root.
func NewStreamStats(parent *FrameWidget, row, col int) StreamStats {
	s := &streamStats{lbl: Label(Width(14))}
	if parent != nil {
		Grid(s.lbl, In(parent), Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.lbl, Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	}
	s.lbl.Configure(Txt("Live: -/-"))
	return s
}

func (s *streamStats) SetStreamStats(live, total int) {
	if s == nil || s.lbl == nil {
		return
	}
	s.lbl.Configure(Txt(fmt.Sprintf("Live: %d/%d", live, total)))
}
