package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// autopilotZones includes a corner from every severity band, chicane included.
func autopilotZones() []track.Zone {
	return []track.Zone{
		{Length: 40},
		{Length: 12, Curve: 3.4, Corner: 1},
		{Length: 10, Curve: -3.0, Corner: 2},
		{Length: 20},
		{Length: 30, Curve: 0.9, Corner: 3},
		{Length: 15},
		{Length: 16, Curve: 2.0, Corner: 4},
		{Length: 25},
		{Length: 30, Curve: 1.6, Corner: 5},
		{Length: 30},
	}
}

func TestAutopilotCompletesLapOnTrack(t *testing.T) {
	trk, err := track.Build(autopilotZones())
	require.NoError(t, err)
	p := config.Default()

	laps := 0
	v := NewVehicle(trk, p, Callbacks{OnLapComplete: func() { laps++ }})
	v.SetAutopilot(true)

	const tolerance = 1.1
	maxAbsLateral := 0.0
	for i := 0; i < 60*60*10 && laps < 1; i++ { // ten simulated minutes, far more than a lap needs
		v.Tick(Input{}) // no human input at all
		if l := math.Abs(v.State().Lateral); l > maxAbsLateral {
			maxAbsLateral = l
		}
	}
	require.Equal(t, 1, laps, "autopilot must complete a lap unaided")
	assert.LessOrEqual(t, maxAbsLateral, tolerance, "autopilot stayed within the lateral bound")
}

func TestAutopilotDeterministic(t *testing.T) {
	run := func() []float64 {
		trk, err := track.Build(autopilotZones())
		require.NoError(t, err)
		v := NewVehicle(trk, config.Default(), Callbacks{})
		v.SetAutopilot(true)

		trace := make([]float64, 0, 2000)
		for i := 0; i < 2000; i++ {
			v.Tick(Input{})
			s := v.State()
			trace = append(trace, s.Position, s.Speed, s.Lateral)
		}
		return trace
	}
	assert.Equal(t, run(), run(), "identical runs must produce identical trajectories")
}

func TestAutopilotTargetSpeedBands(t *testing.T) {
	a := NewAutopilot(config.Default())

	// Monotone: sharper curvature never raises the target.
	prev := math.Inf(1)
	distinct := map[float64]bool{}
	for c := 0.0; c <= 4.0; c += 0.05 {
		target := a.targetSpeed(c)
		assert.LessOrEqual(t, target, prev, "curve %.2f", c)
		distinct[target] = true
		prev = target
	}
	// At least 4 severity bands plus the flat-out band.
	assert.GreaterOrEqual(t, len(distinct), 5)

	// Sign of curvature is irrelevant to the speed target.
	assert.Equal(t, a.targetSpeed(2.5), a.targetSpeed(-2.5))
}

func TestAutopilotIntent(t *testing.T) {
	p := config.Default()
	a := NewAutopilot(p)
	straight := &track.Segment{}

	t.Run("slow on straight throttles", func(t *testing.T) {
		in := a.Synthesize(State{Speed: 1}, straight)
		assert.True(t, in.Throttle)
		assert.False(t, in.Brake)
	})
	t.Run("too fast for corner brakes", func(t *testing.T) {
		sharp := &track.Segment{Curve: 3.4, Corner: 1}
		in := a.Synthesize(State{Speed: p.MaxSpeed}, sharp)
		assert.True(t, in.Brake)
		assert.False(t, in.Throttle)
	})
	t.Run("dead-band coasts", func(t *testing.T) {
		in := a.Synthesize(State{Speed: p.MaxSpeed}, straight)
		assert.False(t, in.Throttle)
		assert.False(t, in.Brake)
	})
	t.Run("steering dead-band holds straight", func(t *testing.T) {
		in := a.Synthesize(State{Lateral: 0.02}, straight)
		assert.False(t, in.Left)
		assert.False(t, in.Right)
	})
	t.Run("off-center steers back", func(t *testing.T) {
		in := a.Synthesize(State{Lateral: 0.5}, straight)
		assert.True(t, in.Left)
		in = a.Synthesize(State{Lateral: -0.5}, straight)
		assert.True(t, in.Right)
	})
}
