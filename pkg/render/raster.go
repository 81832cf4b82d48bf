package render

import (
	"image/color"
	"math"

	"github.com/slipstream-dev/hotlap/pkg/config"
)

// Band palettes, indexed by segment color band.
var (
	grassColors  = [2]color.RGBA{{16, 170, 16, 255}, {0, 154, 0, 255}}
	rumbleColors = [2]color.RGBA{{255, 255, 255, 255}, {187, 48, 48, 255}}
	roadColors   = [2]color.RGBA{{107, 107, 107, 255}, {100, 100, 100, 255}}
	laneColor    = color.RGBA{204, 204, 204, 255}
	skyColor     = color.RGBA{114, 215, 238, 255}
	fogColor     = color.RGBA{0, 108, 0, 255}
)

const (
	rumbleWidthFactor = 1.18
	laneWidthFactor   = 0.04
	spriteScaleDiv    = 100.0
)

// Rasterizer turns projected frames into an ordered command list. It owns no
// surface; occlusion comes purely from back-to-front emission order.
type Rasterizer struct {
	width, height int
	fogThreshold  float64
}

// NewRasterizer builds a rasterizer for the given viewport.
func NewRasterizer(width, height int, p config.Params) *Rasterizer {
	return &Rasterizer{width: width, height: height, fogThreshold: p.FogThreshold}
}

// Backdrop paints the sky and the base ground plane below the horizon.
func (r *Rasterizer) Backdrop() []Command {
	w, h := float64(r.width), float64(r.height)
	return []Command{
		RectCmd{X: 0, Y: 0, W: w, H: h / 2, Color: skyColor},
		RectCmd{X: 0, Y: h / 2, W: w, H: h / 2, Color: grassColors[0]},
	}
}

// Road emits the per-segment-pair commands for one projected window,
// strictly far-to-near. For each visible pair: ground, rumble, road surface,
// lane line (even band only), roadside objects anchored at the near frame,
// then the fog overlay. Pairs whose near edge sits above the horizon, or
// whose far edge projects at or below the near edge, are skipped entirely.
func (r *Rasterizer) Road(frames []Frame) []Command {
	cmds := make([]Command, 0, len(frames)*4)
	horizon := float64(r.height) / 2
	span := float64(len(frames) - 1)

	for i := len(frames) - 2; i >= 0; i-- {
		near, far := frames[i], frames[i+1]
		if near.Y <= far.Y {
			continue // back-facing or degenerate after projection
		}
		if near.Y < horizon {
			continue
		}

		band := near.Seg.Band()
		fullW := float64(r.width) / 2
		center := float64(r.width) / 2

		cmds = append(cmds,
			QuadCmd{X1: center, Y1: near.Y, W1: fullW, X2: center, Y2: far.Y, W2: fullW, Color: grassColors[band]},
			QuadCmd{X1: near.X, Y1: near.Y, W1: near.HalfW * rumbleWidthFactor, X2: far.X, Y2: far.Y, W2: far.HalfW * rumbleWidthFactor, Color: rumbleColors[band]},
			QuadCmd{X1: near.X, Y1: near.Y, W1: near.HalfW, X2: far.X, Y2: far.Y, W2: far.HalfW, Color: roadColors[band]},
		)
		if band == 0 {
			cmds = append(cmds, QuadCmd{
				X1: near.X, Y1: near.Y, W1: near.HalfW * laneWidthFactor,
				X2: far.X, Y2: far.Y, W2: far.HalfW * laneWidthFactor,
				Color: laneColor,
			})
		}

		for _, obj := range near.Seg.Objects {
			cmds = append(cmds, SpriteCmd{
				Kind:  obj.Kind,
				X:     near.X + obj.Offset*near.HalfW,
				Y:     near.Y,
				Scale: near.HalfW / spriteScaleDiv,
			})
		}

		if a := r.fogAlpha(float64(i) / span); a > 0 {
			c := fogColor
			c.A = uint8(math.Round(a * 255))
			cmds = append(cmds, QuadCmd{X1: center, Y1: near.Y, W1: fullW, X2: center, Y2: far.Y, W2: fullW, Color: c})
		}
	}
	return cmds
}

// Car places the player car sprite at the bottom of the viewport. The small
// lateral shift against the steering direction sells the counter-steer feel.
func (r *Rasterizer) Car(steer float64) Command {
	return CarCmd{
		X:     float64(r.width)/2 - steer*12,
		Y:     float64(r.height) - 72,
		Steer: steer,
	}
}

// fogAlpha maps a window-depth fraction to fog opacity: zero below the near
// threshold, then monotonically increasing with distance.
func (r *Rasterizer) fogAlpha(d float64) float64 {
	if d <= r.fogThreshold {
		return 0
	}
	t := (d - r.fogThreshold) / (1 - r.fogThreshold)
	return t * t
}
