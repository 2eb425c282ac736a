package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick/Render on the sub-presenters and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Wall     *WallPresenter
	Mode     *ModePresenter
	Notify   *NotifyPresenter
	Stats    *StatsPresenter
	Schedule func()
}

func NewLoop(wall *WallPresenter, mode *ModePresenter, notify *NotifyPresenter, stats *StatsPresenter, schedule func()) *Loop {
	return &Loop{Wall: wall, Mode: mode, Notify: notify, Stats: stats, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	l.Mode.Tick()
	l.Notify.Tick()
	l.Stats.Tick(now)
	l.Wall.Render()
	if l.Schedule != nil {
		l.Schedule()
	}
}
