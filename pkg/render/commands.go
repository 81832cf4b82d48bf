// Package render holds the projection and rasterization core. The rasterizer
// emits plain draw commands instead of touching a surface directly, so the
// whole pipeline runs headless under test; the Canvas applies commands to an
// Ebiten image.
package render

import (
	"image/color"

	"github.com/slipstream-dev/hotlap/pkg/track"
)

// Command is one paint operation. Commands are applied strictly in slice
// order; ordering is how the painter's algorithm expresses occlusion.
type Command interface {
	isCommand()
}

// QuadCmd fills a vertically-stacked trapezoid: centered at X1 with half
// width W1 on the near edge (Y1), X2/W2 on the far edge (Y2).
type QuadCmd struct {
	X1, Y1, W1 float64
	X2, Y2, W2 float64
	Color      color.RGBA
}

// RectCmd fills an axis-aligned rectangle.
type RectCmd struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// SpriteCmd draws a roadside object anchored at its baseline center.
type SpriteCmd struct {
	Kind  track.ObjectKind
	X, Y  float64
	Scale float64
}

// CarCmd draws the player car, tilted by the current steering input.
type CarCmd struct {
	X, Y  float64
	Steer float64 // -1..1
}

// TextCmd draws HUD text with the bitmap face.
type TextCmd struct {
	S     string
	X, Y  float64
	Scale float64
	Color color.RGBA
}

func (QuadCmd) isCommand()   {}
func (RectCmd) isCommand()   {}
func (SpriteCmd) isCommand() {}
func (CarCmd) isCommand()    {}
func (TextCmd) isCommand()   {}
