// Package engine ties the core together: one explicit engine instance owning
// its track, vehicle, projector, rasterizer and HUD, driven by an injected
// tick scheduler. Multiple instances are safely constructible; each owns all
// of its state.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/slipstream-dev/hotlap/log"
	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/hud"
	"github.com/slipstream-dev/hotlap/pkg/render"
	"github.com/slipstream-dev/hotlap/pkg/sim"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// Key is a logical input key; the host maps physical keys onto these.
type Key int

const (
	KeyThrottle Key = iota
	KeyBrake
	KeyLeft
	KeyRight
	KeyAutopilot
	KeyExit
)

var keyIntents = map[Key]sim.Intent{
	KeyThrottle: sim.IntentThrottle,
	KeyBrake:    sim.IntentBrake,
	KeyLeft:     sim.IntentLeft,
	KeyRight:    sim.IntentRight,
}

// Callbacks are the engine's outward events.
type Callbacks struct {
	OnCornerEntered func(corner int)
	OnLapComplete   func()
}

// Engine runs one ride: a fixed circuit, one vehicle, one viewport.
type Engine struct {
	params  config.Params
	circuit *track.Circuit
	trk     *track.Track

	veh   *sim.Vehicle
	input *sim.InputState

	proj *render.Projector
	ras  *render.Rasterizer
	hud  *hud.Renderer

	sched   TickScheduler
	running bool
	steer   float64 // smoothed steer display value for the car sprite

	lastFrame []render.Command
}

// New constructs an engine for the given viewport and circuit. The circuit's
// corner table is read-only for the engine's lifetime. Construction is the
// only place a ride can fail; the frame loop is total.
func New(width, height int, circuit *track.Circuit, params config.Params, sched TickScheduler, cb Callbacks) (*Engine, error) {
	if err := circuit.Validate(); err != nil {
		return nil, err
	}
	trk, err := track.Build(circuit.Zones)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	track.Populate(trk)

	e := &Engine{
		params:  params,
		circuit: circuit,
		trk:     trk,
		input:   sim.NewInputState(),
		proj:    render.NewProjector(width, height, params),
		ras:     render.NewRasterizer(width, height, params),
		hud:     hud.New(width, height, params, circuit),
		sched:   sched,
	}
	e.veh = sim.NewVehicle(trk, params, sim.Callbacks{
		OnCornerEntered: func(corner int) {
			log.Debug("corner entered", zap.Int("corner", corner))
			if cb.OnCornerEntered != nil {
				cb.OnCornerEntered(corner)
			}
		},
		OnLapComplete: func() {
			log.Debug("lap complete")
			if cb.OnLapComplete != nil {
				cb.OnLapComplete()
			}
		},
	})

	log.Info("engine ready",
		zap.String("circuit", circuit.Name),
		zap.Int("segments", len(trk.Segments())),
		zap.Float64("length", trk.Length()))
	return e, nil
}

// Start begins the frame loop. Starting a running engine is a no-op.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.sched.Schedule(e.tick)
	log.Info("ride started")
}

// Stop halts the frame loop, cancels the pending tick and releases input.
// Idempotent; no second loop can exist because the pending callback is
// cancelled before anything else runs.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.sched.Cancel()
	e.input.Clear()
	log.Info("ride stopped")
}

// Reset zeroes the dynamic vehicle state while preserving track geometry.
func (e *Engine) Reset() { e.veh.Reset() }

// Running reports whether the frame loop is active.
func (e *Engine) Running() bool { return e.running }

// State exposes a read-only snapshot of the vehicle.
func (e *Engine) State() sim.State { return e.veh.State() }

// SetAutopilot engages or disengages the autopilot.
func (e *Engine) SetAutopilot(on bool) { e.veh.SetAutopilot(on) }

// HandleKeyDown feeds a logical key press. Drive keys latch into the input
// set; the autopilot toggle and exit act on the press edge.
func (e *Engine) HandleKeyDown(k Key) {
	switch k {
	case KeyAutopilot:
		on := e.veh.ToggleAutopilot()
		log.Info("autopilot", zap.Bool("on", on))
	case KeyExit:
		e.Stop()
	default:
		if intent, ok := keyIntents[k]; ok {
			e.input.Press(intent)
		}
	}
}

// HandleKeyUp feeds a logical key release.
func (e *Engine) HandleKeyUp(k Key) {
	if intent, ok := keyIntents[k]; ok {
		e.input.Release(intent)
	}
}

// Step advances the simulation one tick using the current input snapshot.
func (e *Engine) Step() {
	e.veh.Tick(e.input.Snapshot())
}

// FrameCommands composes the full frame: backdrop, road window back-to-front,
// player car, HUD overlay.
func (e *Engine) FrameCommands() []render.Command {
	s := e.veh.State()
	frames := e.proj.Window(e.trk, s.Position, s.Lateral)

	cmds := e.ras.Backdrop()
	cmds = append(cmds, e.ras.Road(frames)...)
	cmds = append(cmds, e.ras.Car(e.steer))
	cmds = append(cmds, e.hud.Commands(s, e.trk.Length())...)
	return cmds
}

// LastFrame returns the commands composed by the most recent tick.
func (e *Engine) LastFrame() []render.Command { return e.lastFrame }

// tick is one update-then-compose pass; it re-schedules itself while the
// engine is running.
func (e *Engine) tick() {
	if !e.running {
		return
	}
	e.Step()
	e.updateSteerDisplay()
	e.lastFrame = e.FrameCommands()
	if e.running {
		e.sched.Schedule(e.tick)
	}
}

// updateSteerDisplay eases the car sprite tilt toward the held steering
// direction. Purely cosmetic; the simulator never reads it.
func (e *Engine) updateSteerDisplay() {
	in := e.input.Snapshot()
	target := 0.0
	if in.Left && !in.Right {
		target = -1
	} else if in.Right && !in.Left {
		target = 1
	}
	e.steer += (target - e.steer) * 0.2
}
