package sim

import (
	"math"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// State is the vehicle simulation state. Callers outside the simulator only
// ever see value copies.
type State struct {
	Position  float64 // distance along track, always in [0, trackLength)
	Speed     float64 // world units per tick, never negative
	Lateral   float64 // 0 = centerline; |x| > off-road threshold is off the tarmac
	Corner    int     // corner number of the zone under the car, 0 on straights
	Autopilot bool
	Lap       int
}

// Callbacks receive the simulator's edge-triggered events. Nil fields are
// simply not called.
type Callbacks struct {
	OnCornerEntered func(corner int)
	OnLapComplete   func()
}

// Vehicle integrates drive input into motion along a track. Every tick
// produces a valid next state; there is no failing input combination
// (simultaneous throttle and brake resolves to brake).
type Vehicle struct {
	params config.Params
	trk    *track.Track
	pilot  *Autopilot
	cb     Callbacks
	state  State
}

// NewVehicle creates a vehicle at rest on the start line.
func NewVehicle(trk *track.Track, params config.Params, cb Callbacks) *Vehicle {
	return &Vehicle{
		params: params,
		trk:    trk,
		pilot:  NewAutopilot(params),
		cb:     cb,
	}
}

// State returns a snapshot of the current vehicle state.
func (v *Vehicle) State() State { return v.state }

// SetAutopilot engages or disengages the autopilot.
func (v *Vehicle) SetAutopilot(on bool) { v.state.Autopilot = on }

// ToggleAutopilot flips the autopilot and reports the new setting.
func (v *Vehicle) ToggleAutopilot() bool {
	v.state.Autopilot = !v.state.Autopilot
	return v.state.Autopilot
}

// Reset zeroes the dynamic state while keeping the track and tuning.
func (v *Vehicle) Reset() {
	auto := v.state.Autopilot
	v.state = State{Autopilot: auto}
}

// Tick advances the simulation one fixed step.
func (v *Vehicle) Tick(human Input) {
	p := &v.params
	seg := v.trk.At(v.state.Position)

	in := Arbitrate(human, v.pilot.Synthesize(v.state, seg), v.state.Autopilot)

	// Longitudinal. Brake wins over throttle and is the stronger effect.
	switch {
	case in.Brake:
		v.state.Speed -= p.Brake
	case in.Throttle:
		v.state.Speed += p.Accel
	default:
		v.state.Speed -= p.PassiveDecel
	}
	v.state.Speed = clamp(v.state.Speed, 0, p.MaxSpeed)

	// Lateral: steering authority grows with speed, and the segment's
	// curvature pushes the car outward against it.
	frac := v.state.Speed / p.MaxSpeed
	if in.Left && !in.Right {
		v.state.Lateral -= p.SteerRate * frac
	} else if in.Right && !in.Left {
		v.state.Lateral += p.SteerRate * frac
	}
	v.state.Lateral -= seg.Curve * p.Centrifugal * frac
	v.state.Lateral = clamp(v.state.Lateral, -p.LateralClamp, p.LateralClamp)

	if math.Abs(v.state.Lateral) > p.OffRoadThreshold {
		v.state.Speed *= p.OffRoadDecay
	}

	// Advance and wrap, firing the lap event exactly once per wrap.
	v.state.Position += v.state.Speed
	if l := v.trk.Length(); v.state.Position >= l {
		v.state.Position -= l
		v.state.Lap++
		if v.cb.OnLapComplete != nil {
			v.cb.OnLapComplete()
		}
	}

	// Corner entry is edge-triggered on the zone under the car.
	now := v.trk.At(v.state.Position).Corner
	if now != v.state.Corner {
		v.state.Corner = now
		if now != 0 && v.cb.OnCornerEntered != nil {
			v.cb.OnCornerEntered(now)
		}
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
