package presenter

import (
	"time"

	"github.com/soocke/camwall/domain/stream"
)

// staleAfter marks a stream as down when no frame arrived for this long.
const staleAfter = 5 * time.Second

// StatsSource reports per-camera stream stats.
type StatsSource interface{ Stats() []stream.Stats }

// StatsView displays the count of live streams.
type StatsView interface {
	SetStreamStats(live, total int)
}

// StatsPresenter pushes live stream counts to the view at most once per interval.
type StatsPresenter struct {
	src      StatsSource
	view     StatsView
	interval time.Duration
	last     time.Time
}

func NewStatsPresenter(src StatsSource, view StatsView) *StatsPresenter {
	return &StatsPresenter{src: src, view: view, interval: time.Second}
}

// Tick refreshes the counts when the interval has elapsed.
func (p *StatsPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return
	}
	p.last = now
	all := p.src.Stats()
	live := 0
	for _, s := range all {
		if s.Frames > 0 && s.LatestFrameAge < staleAfter {
			live++
		}
	}
	p.view.SetStreamStats(live, len(all))
}
