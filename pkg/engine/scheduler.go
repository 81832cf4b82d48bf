package engine

// TickScheduler abstracts the host's redraw callback: the engine asks for the
// next tick, the host fires it on its own cadence. Cancel drops a pending
// request so a stopped engine can never be ticked again; nothing cancels
// mid-tick because ticks never block.
type TickScheduler interface {
	Schedule(tick func())
	Cancel()
}

// PolledScheduler is a TickScheduler driven by a host that polls once per
// display refresh (the Ebiten update loop, or a test loop).
type PolledScheduler struct {
	pending func()
}

// NewPolledScheduler returns an empty scheduler.
func NewPolledScheduler() *PolledScheduler {
	return &PolledScheduler{}
}

// Schedule stores the next tick callback, replacing any pending one.
func (p *PolledScheduler) Schedule(tick func()) { p.pending = tick }

// Cancel drops the pending callback.
func (p *PolledScheduler) Cancel() { p.pending = nil }

// Fire runs the pending tick, if any. The callback is cleared first so a tick
// that re-schedules itself works as expected.
func (p *PolledScheduler) Fire() {
	tick := p.pending
	p.pending = nil
	if tick != nil {
		tick()
	}
}
