// Package sim owns the vehicle state machine: input arbitration, the per-tick
// integration step, corner and lap event detection, and the autopilot.
package sim

import "sync"

// Intent is one of the four drive inputs.
type Intent int

const (
	IntentThrottle Intent = iota
	IntentBrake
	IntentLeft
	IntentRight
)

// Input is a resolved intent set for exactly one tick.
type Input struct {
	Throttle bool
	Brake    bool
	Left     bool
	Right    bool
}

// InputState collects key events between ticks. Key handlers mutate it from
// the host's event callbacks; the simulator reads one consistent snapshot per
// tick.
type InputState struct {
	mu   sync.Mutex
	held map[Intent]bool
}

// NewInputState returns an empty input set.
func NewInputState() *InputState {
	return &InputState{held: make(map[Intent]bool)}
}

// Press marks an intent held.
func (s *InputState) Press(i Intent) {
	s.mu.Lock()
	s.held[i] = true
	s.mu.Unlock()
}

// Release marks an intent no longer held.
func (s *InputState) Release(i Intent) {
	s.mu.Lock()
	delete(s.held, i)
	s.mu.Unlock()
}

// Clear drops every held intent. Called when input listeners are released.
func (s *InputState) Clear() {
	s.mu.Lock()
	s.held = make(map[Intent]bool)
	s.mu.Unlock()
}

// Snapshot returns the intent set as of now, atomically.
func (s *InputState) Snapshot() Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Input{
		Throttle: s.held[IntentThrottle],
		Brake:    s.held[IntentBrake],
		Left:     s.held[IntentLeft],
		Right:    s.held[IntentRight],
	}
}

// Arbitrate picks the effective input for a tick: the autopilot's synthesized
// input replaces the human's entirely while engaged. The two producers never
// write into each other's state.
func Arbitrate(human, pilot Input, autopilotOn bool) Input {
	if autopilotOn {
		return pilot
	}
	return human
}
