package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/engine"
	"github.com/slipstream-dev/hotlap/pkg/render"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// keyBindings maps physical keys onto the engine's logical keys. Arrows and
// WASD both drive; P toggles the autopilot, Escape ends the ride.
var keyBindings = map[ebiten.Key]engine.Key{
	ebiten.KeyArrowUp:    engine.KeyThrottle,
	ebiten.KeyW:          engine.KeyThrottle,
	ebiten.KeyArrowDown:  engine.KeyBrake,
	ebiten.KeyS:          engine.KeyBrake,
	ebiten.KeyArrowLeft:  engine.KeyLeft,
	ebiten.KeyA:          engine.KeyLeft,
	ebiten.KeyArrowRight: engine.KeyRight,
	ebiten.KeyD:          engine.KeyRight,
	ebiten.KeyP:          engine.KeyAutopilot,
	ebiten.KeyEscape:     engine.KeyExit,
}

// RideScreen runs one engine instance and presents its frames.
type RideScreen struct {
	eng    *engine.Engine
	sched  *engine.PolledScheduler
	canvas *render.Canvas
	onExit func()
}

// NewRideScreen builds the engine for the circuit and starts the ride.
func NewRideScreen(circuit *track.Circuit, params config.Params, autopilot bool, onExit func()) (*RideScreen, error) {
	sched := engine.NewPolledScheduler()
	eng, err := engine.New(ScreenWidth, ScreenHeight, circuit, params, sched, engine.Callbacks{})
	if err != nil {
		return nil, err
	}
	eng.SetAutopilot(autopilot)
	eng.Start()
	return &RideScreen{
		eng:    eng,
		sched:  sched,
		canvas: render.NewCanvas(),
		onExit: onExit,
	}, nil
}

// Update forwards key edges to the engine and fires the pending tick. The
// engine stopping (Escape) hands control back to the previous screen; the
// stop already cancelled the pending tick, so no second loop can start.
func (rs *RideScreen) Update() error {
	for phys, logical := range keyBindings {
		if inpututil.IsKeyJustPressed(phys) {
			rs.eng.HandleKeyDown(logical)
		}
		if inpututil.IsKeyJustReleased(phys) {
			rs.eng.HandleKeyUp(logical)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		rs.eng.Reset()
	}

	rs.sched.Fire()

	if !rs.eng.Running() {
		if rs.onExit != nil {
			rs.onExit()
		}
	}
	return nil
}

// Draw applies the last composed frame to the screen.
func (rs *RideScreen) Draw(screen *ebiten.Image) {
	rs.canvas.Apply(screen, rs.eng.LastFrame())
}
