// Package hud renders the overlay: speed, gear, lap progress, the corner
// banner and the mini-map. It is a pure function of the vehicle state and the
// corner table, emitting draw commands for the canvas.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/samber/lo"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/render"
	"github.com/slipstream-dev/hotlap/pkg/sim"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// gearBands are the lower speed bounds of each gear, as fractions of max
// speed. Monotonic, so the derived gear is a step function of speed.
var gearBands = []float64{0, 0.12, 0.25, 0.42, 0.60, 0.80}

var (
	panelColor  = color.RGBA{20, 20, 30, 200}
	textColor   = color.RGBA{230, 230, 230, 255}
	dimColor    = color.RGBA{160, 160, 170, 255}
	accentColor = color.RGBA{255, 200, 50, 255}
	barColor    = color.RGBA{100, 255, 100, 255}
	dotColor    = color.RGBA{200, 200, 210, 255}
	carDotColor = color.RGBA{255, 60, 60, 255}
)

type mapDot struct {
	x, y float64
	num  int
}

// Renderer draws the HUD for a fixed viewport and corner table.
type Renderer struct {
	width, height int
	params        config.Params
	corners       map[int]track.Corner
	dots          []mapDot

	mapX, mapY, mapW, mapH float64
}

// New builds a HUD renderer. The corner table is read-only for the renderer's
// lifetime.
func New(width, height int, params config.Params, circuit *track.Circuit) *Renderer {
	mapW, mapH := 150.0, 110.0
	mapX, mapY := float64(width)-mapW-16, 16.0
	return &Renderer{
		width:   width,
		height:  height,
		params:  params,
		corners: circuit.CornerLookup(),
		dots: lo.Map(circuit.Corners, func(c track.Corner, _ int) mapDot {
			return mapDot{x: mapX + c.MapX*mapW, y: mapY + c.MapY*mapH, num: c.Number}
		}),
		mapX: mapX, mapY: mapY, mapW: mapW, mapH: mapH,
	}
}

// Gear derives the gear number from a speed fraction of max.
func Gear(frac float64) int {
	g := 1
	for i, lower := range gearBands {
		if frac >= lower {
			g = i + 1
		}
	}
	return g
}

// Commands emits the overlay for one frame.
func (r *Renderer) Commands(s sim.State, trackLength float64) []render.Command {
	cmds := make([]render.Command, 0, 24)
	cmds = append(cmds, r.speedPanel(s)...)
	cmds = append(cmds, r.progressBar(s, trackLength)...)
	if s.Corner != 0 {
		if meta, ok := r.corners[s.Corner]; ok {
			cmds = append(cmds, r.cornerBanner(meta)...)
		}
	}
	cmds = append(cmds, r.miniMap(s, trackLength)...)
	return cmds
}

func (r *Renderer) speedPanel(s sim.State) []render.Command {
	display := s.Speed * r.params.SpeedDisplayFactor
	gear := Gear(s.Speed / r.params.MaxSpeed)

	mode := ""
	if s.Autopilot {
		mode = "AUTO"
	}
	return []render.Command{
		render.RectCmd{X: 16, Y: 16, W: 150, H: 74, Color: panelColor},
		render.TextCmd{S: fmt.Sprintf("%3.0f", display), X: 28, Y: 24, Scale: 3, Color: textColor},
		render.TextCmd{S: "MPH", X: 108, Y: 40, Scale: 1.5, Color: dimColor},
		render.TextCmd{S: fmt.Sprintf("GEAR %d", gear), X: 28, Y: 66, Scale: 1.5, Color: dimColor},
		render.TextCmd{S: mode, X: 108, Y: 66, Scale: 1.5, Color: accentColor},
	}
}

func (r *Renderer) progressBar(s sim.State, trackLength float64) []render.Command {
	progress := s.Position / trackLength
	w := float64(r.width) - 240
	return []render.Command{
		render.RectCmd{X: 190, Y: 24, W: w, H: 10, Color: panelColor},
		render.RectCmd{X: 190, Y: 24, W: w * progress, H: 10, Color: barColor},
		render.TextCmd{S: fmt.Sprintf("LAP %d  %4.1f%%", s.Lap+1, progress*100), X: 190, Y: 38, Scale: 1, Color: dimColor},
	}
}

func (r *Renderer) cornerBanner(meta track.Corner) []render.Command {
	w := 360.0
	x := float64(r.width)/2 - w/2
	y := float64(r.height) - 118.0
	return []render.Command{
		render.RectCmd{X: x, Y: y, W: w, H: 58, Color: panelColor},
		render.TextCmd{S: fmt.Sprintf("T%d  %s (%s)", meta.Number, meta.Name, meta.Direction), X: x + 12, Y: y + 8, Scale: 1.5, Color: accentColor},
		render.TextCmd{
			S:     fmt.Sprintf("IN %d  OUT %d  GEAR %d  BRAKE %d/10", meta.EntrySpeed, meta.ExitSpeed, meta.Gear, meta.Braking),
			X:     x + 12, Y: y + 34, Scale: 1, Color: textColor,
		},
	}
}

// miniMap plots the corner dots from their fixed normalized coordinates and
// the live car marker from lap progress mapped onto an ellipse approximating
// the lap outline.
func (r *Renderer) miniMap(s sim.State, trackLength float64) []render.Command {
	cmds := []render.Command{
		render.RectCmd{X: r.mapX - 8, Y: r.mapY - 8, W: r.mapW + 16, H: r.mapH + 16, Color: panelColor},
	}
	for _, d := range r.dots {
		cmds = append(cmds, render.RectCmd{X: d.x - 2, Y: d.y - 2, W: 4, H: 4, Color: dotColor})
	}

	progress := s.Position / trackLength
	angle := progress*2*math.Pi - math.Pi/2
	cx, cy := r.mapX+r.mapW/2, r.mapY+r.mapH/2
	carX := cx + math.Cos(angle)*r.mapW*0.42
	carY := cy + math.Sin(angle)*r.mapH*0.42
	cmds = append(cmds, render.RectCmd{X: carX - 3, Y: carY - 3, W: 6, H: 6, Color: carDotColor})
	return cmds
}
