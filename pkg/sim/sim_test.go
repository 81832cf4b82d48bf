package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

func buildTrack(t *testing.T, zones []track.Zone) *track.Track {
	t.Helper()
	trk, err := track.Build(zones)
	require.NoError(t, err)
	return trk
}

func lapZones() []track.Zone {
	return []track.Zone{
		{Length: 20},
		{Length: 10, Curve: 2.0, Corner: 1},
		{Length: 10},
		{Length: 8, Curve: -3.0, Corner: 2},
		{Length: 12},
		{Length: 15, Curve: 1.2, Corner: 3},
		{Length: 25},
	}
}

func throttleInput() Input { return Input{Throttle: true} }

func TestSpeedBounds(t *testing.T) {
	trk := buildTrack(t, lapZones())
	p := config.Default()

	tests := []struct {
		name string
		in   Input
	}{
		{"sustained throttle", Input{Throttle: true}},
		{"sustained brake", Input{Brake: true}},
		{"throttle and brake together", Input{Throttle: true, Brake: true}},
		{"coasting", Input{}},
		{"full lock left with throttle", Input{Throttle: true, Left: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVehicle(trk, p, Callbacks{})
			for i := 0; i < 5000; i++ {
				v.Tick(tt.in)
				s := v.State()
				require.GreaterOrEqual(t, s.Speed, 0.0)
				require.LessOrEqual(t, s.Speed, p.MaxSpeed)
				require.GreaterOrEqual(t, s.Position, 0.0)
				require.Less(t, s.Position, trk.Length())
			}
		})
	}
}

func TestBrakeWinsOverThrottle(t *testing.T) {
	trk := buildTrack(t, lapZones())
	v := NewVehicle(trk, config.Default(), Callbacks{})

	for i := 0; i < 100; i++ {
		v.Tick(throttleInput())
	}
	require.Greater(t, v.State().Speed, 0.0)

	// Holding both pedals must behave exactly like braking.
	for i := 0; i < 200; i++ {
		v.Tick(Input{Throttle: true, Brake: true})
	}
	assert.Zero(t, v.State().Speed)
}

func TestBrakingStrongerThanAcceleration(t *testing.T) {
	p := config.Default()
	assert.Greater(t, p.Brake, p.Accel)
}

func TestCornerEventsOncePerZoneInOrder(t *testing.T) {
	// Property: one full lap fires each corner exactly once, in track order,
	// regardless of speed. Speed is fixed by capping MaxSpeed, including a
	// non-integer value so ticks land mid-segment.
	for _, maxSpeed := range []float64{7.3, 13.0, 24.0} {
		trk := buildTrack(t, lapZones())
		p := config.Default()
		p.MaxSpeed = maxSpeed
		p.Accel = maxSpeed // saturate on the first tick

		var corners []int
		laps := 0
		v := NewVehicle(trk, p, Callbacks{
			OnCornerEntered: func(c int) { corners = append(corners, c) },
			OnLapComplete:   func() { laps++ },
		})

		for i := 0; i < 100000 && laps < 1; i++ {
			v.Tick(throttleInput())
		}
		require.Equal(t, 1, laps, "maxSpeed=%v", maxSpeed)
		assert.Equal(t, []int{1, 2, 3}, corners, "maxSpeed=%v", maxSpeed)
	}
}

func TestCornerEventNotRepeatedInsideZone(t *testing.T) {
	trk := buildTrack(t, lapZones())
	p := config.Default()
	p.MaxSpeed = 5
	p.Accel = 5

	entered := 0
	v := NewVehicle(trk, p, Callbacks{OnCornerEntered: func(int) { entered++ }})

	// Drive well into the first corner zone and park there.
	for v.State().Position < 25*track.SegmentLength {
		v.Tick(throttleInput())
	}
	require.Equal(t, 1, entered)
	for i := 0; i < 500; i++ {
		v.Tick(Input{}) // coast to a stop inside the zone
	}
	assert.Equal(t, 1, entered)
}

func TestLapCompleteExactBoundary(t *testing.T) {
	// Track of 10 segments = 2000 units; speed 20 lands exactly on the line
	// after 100 moving ticks.
	trk := buildTrack(t, []track.Zone{{Length: 10}})
	p := config.Default()
	p.MaxSpeed = 20
	p.Accel = 20

	laps := 0
	v := NewVehicle(trk, p, Callbacks{OnLapComplete: func() { laps++ }})

	for i := 0; i < 100; i++ {
		v.Tick(throttleInput())
	}
	assert.Equal(t, 1, laps, "position landing exactly on trackLength wraps once")
	assert.Zero(t, v.State().Position)

	for i := 0; i < 100; i++ {
		v.Tick(throttleInput())
	}
	assert.Equal(t, 2, laps, "one event per traversal")
}

func TestOffRoadDecay(t *testing.T) {
	trk := buildTrack(t, []track.Zone{{Length: 50}})
	p := config.Default()
	v := NewVehicle(trk, p, Callbacks{})

	for i := 0; i < 400; i++ {
		v.Tick(throttleInput())
	}
	onRoadSpeed := v.State().Speed
	require.Equal(t, p.MaxSpeed, onRoadSpeed)

	// Steer off the road; the decay must bite even under full throttle.
	for i := 0; i < 2000 && v.State().Lateral > -p.LateralClamp; i++ {
		v.Tick(Input{Throttle: true, Left: true})
	}
	require.Greater(t, math.Abs(v.State().Lateral), p.OffRoadThreshold)
	for i := 0; i < 120; i++ {
		v.Tick(Input{Throttle: true, Left: true})
	}
	assert.Less(t, v.State().Speed, onRoadSpeed)
}

func TestLateralClamp(t *testing.T) {
	trk := buildTrack(t, []track.Zone{{Length: 50}})
	p := config.Default()
	v := NewVehicle(trk, p, Callbacks{})

	for i := 0; i < 5000; i++ {
		v.Tick(Input{Throttle: true, Right: true})
		require.LessOrEqual(t, math.Abs(v.State().Lateral), p.LateralClamp)
	}
}

func TestResetPreservesTrackZeroesState(t *testing.T) {
	trk := buildTrack(t, lapZones())
	v := NewVehicle(trk, config.Default(), Callbacks{})
	v.SetAutopilot(true)

	for i := 0; i < 300; i++ {
		v.Tick(Input{})
	}
	require.Greater(t, v.State().Position, 0.0)

	v.Reset()
	s := v.State()
	assert.Zero(t, s.Position)
	assert.Zero(t, s.Speed)
	assert.Zero(t, s.Lateral)
	assert.Zero(t, s.Corner)
	assert.True(t, s.Autopilot, "reset keeps the autopilot setting")
}

func TestArbitrate(t *testing.T) {
	human := Input{Throttle: true}
	pilot := Input{Brake: true, Left: true}

	assert.Equal(t, human, Arbitrate(human, pilot, false))
	assert.Equal(t, pilot, Arbitrate(human, pilot, true))
}

func TestInputStateSnapshot(t *testing.T) {
	s := NewInputState()
	s.Press(IntentThrottle)
	s.Press(IntentLeft)
	assert.Equal(t, Input{Throttle: true, Left: true}, s.Snapshot())

	s.Release(IntentLeft)
	assert.Equal(t, Input{Throttle: true}, s.Snapshot())

	s.Clear()
	assert.Equal(t, Input{}, s.Snapshot())
}
