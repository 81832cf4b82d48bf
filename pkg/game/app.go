// Package game hosts the Ebiten application shell: the screen flow from the
// title screen into the ride and back.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/slipstream-dev/hotlap/log"
	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// Screen represents a UI screen.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// ScreenWidth and ScreenHeight are the logical viewport dimensions.
const (
	ScreenWidth  = 960
	ScreenHeight = 540
)

// App implements the ebiten.Game interface and manages the screen flow.
type App struct {
	circuit       *track.Circuit
	params        config.Params
	autopilot     bool
	currentScreen Screen
}

// NewApp creates the application on its title screen.
func NewApp(circuit *track.Circuit, params config.Params, autopilot bool) (*App, error) {
	// Fail fast on a bad circuit before any screen exists.
	if err := circuit.Validate(); err != nil {
		return nil, err
	}
	app := &App{
		circuit:   circuit,
		params:    params,
		autopilot: autopilot,
	}
	app.showTitle()
	return app, nil
}

// Update advances the current screen.
func (a *App) Update() error {
	if a.currentScreen != nil {
		return a.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	if a.currentScreen != nil {
		a.currentScreen.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (a *App) showTitle() {
	a.currentScreen = NewTitleScreen(a.circuit.Name, func() {
		ride, err := NewRideScreen(a.circuit, a.params, a.autopilot, a.showTitle)
		if err != nil {
			// A circuit that validated at startup cannot fail here; treat it
			// as a bug, log it and stay on the title screen.
			log.Error("ride setup failed: " + err.Error())
			return
		}
		a.currentScreen = ride
	})
}
