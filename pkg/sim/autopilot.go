package sim

import (
	"math"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// Severity bands map curvature magnitude to a target fraction of max speed.
// Straights run near flat out; the sharpest corners drop to under a third.
var severityBands = []struct {
	curve  float64
	target float64
}{
	{3.2, 0.30},
	{2.2, 0.45},
	{1.4, 0.60},
	{0.7, 0.75},
	{0.25, 0.90},
	{0, 1.0},
}

const (
	speedDeadband = 0.4
	steerDeadband = 0.05
	lineFactor    = 0.25
	lineClamp     = 0.8
)

// Autopilot synthesizes drive input from the current vehicle state and the
// segment under the car, and nothing else, so a lap under autopilot replays
// identically every time.
type Autopilot struct {
	params config.Params
}

// NewAutopilot returns an autopilot for the given tuning.
func NewAutopilot(params config.Params) *Autopilot {
	return &Autopilot{params: params}
}

// Synthesize produces the input intent for one tick.
func (a *Autopilot) Synthesize(s State, seg *track.Segment) Input {
	var in Input

	target := a.targetSpeed(seg.Curve)
	if s.Speed < target-speedDeadband {
		in.Throttle = true
	} else if s.Speed > target+speedDeadband {
		in.Brake = true
	}

	// Hold a bounded line offset against the corner; the dead-band keeps the
	// wheel from sawing on straights.
	want := clamp(-seg.Curve*lineFactor, -lineClamp, lineClamp)
	if s.Lateral > want+steerDeadband {
		in.Left = true
	} else if s.Lateral < want-steerDeadband {
		in.Right = true
	}
	return in
}

// targetSpeed maps the current curvature to a speed target.
func (a *Autopilot) targetSpeed(curve float64) float64 {
	c := math.Abs(curve)
	for _, band := range severityBands {
		if c >= band.curve {
			return band.target * a.params.MaxSpeed
		}
	}
	return a.params.MaxSpeed
}
