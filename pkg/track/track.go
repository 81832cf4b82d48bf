package track

import (
	"fmt"
	"math"
)

// SegmentLength is the fixed length of one track segment in world units.
const SegmentLength = 200.0

// rumbleLength is the number of consecutive segments sharing one color band.
const rumbleLength = 3

// ObjectKind identifies a roadside object type.
type ObjectKind int

const (
	ObjectTree ObjectKind = iota
	ObjectStand
	ObjectBoard
	ObjectBarrier
)

// Placement positions one roadside object relative to the road. Offset is in
// road half-width units; |offset| > 1 is beyond the tarmac edge.
type Placement struct {
	Kind   ObjectKind
	Offset float64
}

// Segment is the atomic unit of track. Curvature sign convention: positive
// curve bends the road toward +x (a right-hander on screen).
type Segment struct {
	Index   int
	Curve   float64
	Corner  int // 1-based corner number, 0 on straights
	Objects []Placement
}

// Band returns the rumble color band (0 or 1) for this segment. Derived from
// the index so it is stable across runs.
func (s *Segment) Band() int {
	return (s.Index / rumbleLength) % 2
}

// Zone describes one contiguous run of segments: a straight (Curve == 0) or a
// corner (signed peak curvature plus the corner number it belongs to).
type Zone struct {
	Length int     `yaml:"length"`
	Curve  float64 `yaml:"curve,omitempty"`
	Corner int     `yaml:"corner,omitempty"`
}

// Track is an ordered cyclic sequence of segments. Geometry is fixed at build
// time; only the scenery populator mutates segments, and only before a ride.
type Track struct {
	segments []Segment
}

// Build constructs the segment sequence from an ordered zone list. Corner
// zones ramp curvature sinusoidally: zero at both zone boundaries, peak at
// the midpoint, so crossing a zone edge never snaps.
func Build(zones []Zone) (*Track, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("track: empty zone list")
	}
	total := 0
	for i, z := range zones {
		if z.Length <= 0 {
			return nil, fmt.Errorf("track: zone %d has non-positive length %d", i, z.Length)
		}
		if z.Curve != 0 && z.Corner < 1 {
			return nil, fmt.Errorf("track: corner zone %d has no corner number", i)
		}
		total += z.Length
	}

	segments := make([]Segment, 0, total)
	for _, z := range zones {
		for j := 0; j < z.Length; j++ {
			seg := Segment{Index: len(segments)}
			if z.Curve != 0 {
				t := float64(j) / float64(z.Length)
				seg.Curve = z.Curve * math.Sin(t*math.Pi)
				seg.Corner = z.Corner
			}
			segments = append(segments, seg)
		}
	}
	return &Track{segments: segments}, nil
}

// Segments exposes the ordered segment slice.
func (t *Track) Segments() []Segment { return t.segments }

// Length returns the total track length in world units.
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * SegmentLength
}

// Wrap normalizes a position into [0, Length).
func (t *Track) Wrap(position float64) float64 {
	l := t.Length()
	position = math.Mod(position, l)
	if position < 0 {
		position += l
	}
	return position
}

// At returns the segment under the given track position.
func (t *Track) At(position float64) *Segment {
	i := int(t.Wrap(position) / SegmentLength)
	if i >= len(t.segments) {
		i = len(t.segments) - 1
	}
	return &t.segments[i]
}

// AtIndex returns the segment at index i, wrapping cyclically.
func (t *Track) AtIndex(i int) *Segment {
	n := len(t.segments)
	i %= n
	if i < 0 {
		i += n
	}
	return &t.segments[i]
}
