package render

import (
	"math"

	"github.com/slipstream-dev/hotlap/pkg/config"
	"github.com/slipstream-dev/hotlap/pkg/track"
)

// minDepth is the clamp applied to the perspective divide; projection never
// divides by anything smaller.
const minDepth = 1.0

// curveScale converts segment curvature into the per-segment growth of the
// projected road's lateral drift, in world units.
const curveScale = 8.0

// Frame is the screen-space projection of one segment boundary.
type Frame struct {
	X     float64 // screen x of the road center
	Y     float64 // screen y of the road surface
	HalfW float64 // road half width in pixels
	Scale float64
	Seg   *track.Segment
}

// Projector maps world geometry to screen space for a fixed viewport.
type Projector struct {
	width, height int
	depth         float64 // 1 / tan(fov/2)
	camHeight     float64
	roadHalf      float64
	drawDistance  int
}

// NewProjector builds a projector for the given viewport and tuning.
func NewProjector(width, height int, p config.Params) *Projector {
	return &Projector{
		width:        width,
		height:       height,
		depth:        1.0 / math.Tan(p.CameraFOVDeg/2*math.Pi/180),
		camHeight:    p.CameraHeight,
		roadHalf:     p.RoadWidth / 2,
		drawDistance: p.DrawDistance,
	}
}

// Project maps a road-center point at lateral offset worldX (world units,
// relative to the camera) and distance dz ahead of the camera. Scale strictly
// decreases as dz grows; dz is clamped to a positive epsilon so a degenerate
// zero distance never divides by zero.
func (p *Projector) Project(worldX, dz float64) Frame {
	if dz < minDepth {
		dz = minDepth
	}
	scale := p.depth / dz
	halfW := float64(p.width) / 2
	halfH := float64(p.height) / 2
	return Frame{
		X:     halfW + scale*worldX*halfW,
		Y:     halfH + scale*p.camHeight*halfH,
		HalfW: scale * p.roadHalf * halfW,
		Scale: scale,
	}
}

// Window projects the segment window ahead of the camera, back of the slice
// being the farthest frame. Curvature accumulates additively across the
// window: each segment's curve bends the remaining road further toward its
// sign, which is what makes the road visibly snake ahead of a fixed camera.
// lateral is the camera lateral offset in road half-width units.
func (p *Projector) Window(t *track.Track, position, lateral float64) []Frame {
	position = t.Wrap(position)
	base := int(position / track.SegmentLength)
	frac := position/track.SegmentLength - float64(base)

	camX := lateral * p.roadHalf
	frames := make([]Frame, 0, p.drawDistance)

	x := 0.0
	dx := -t.AtIndex(base).Curve * frac * curveScale
	for n := 0; n < p.drawDistance; n++ {
		seg := t.AtIndex(base + n)
		dz := (float64(n) + 1 - frac) * track.SegmentLength
		f := p.Project(x-camX, dz)
		f.Seg = seg
		frames = append(frames, f)

		x += dx
		dx += seg.Curve * curveScale
	}
	return frames
}

// Horizon returns the screen y of the horizon line.
func (p *Projector) Horizon() float64 {
	return float64(p.height) / 2
}
