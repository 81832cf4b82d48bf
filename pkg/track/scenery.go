package track

import "math/rand"

// Scenery placement tuning. Offsets are in road half-width units.
const (
	treeEvery      = 5
	boardEvery     = 6
	standEvery     = 4
	startStandSpan = 16
	treeBaseOffset = 1.9
	treeJitter     = 1.3
	standOffset    = 2.4
	boardOffset    = 1.55
)

// Populate decorates the track's segments with roadside objects. Placement is
// a pure function of segment index and zone context: the jitter source is
// seeded from the index, so two runs over the same track produce identical
// layouts.
func Populate(t *Track) {
	segs := t.segments
	for i := range segs {
		seg := &segs[i]
		rng := rand.New(rand.NewSource(int64(seg.Index)*7919 + 13))

		switch {
		case seg.Index < startStandSpan:
			// Grandstands flank the start/finish straight.
			if seg.Index%standEvery == 0 {
				seg.Objects = append(seg.Objects,
					Placement{Kind: ObjectStand, Offset: -standOffset},
					Placement{Kind: ObjectStand, Offset: standOffset},
				)
			}
		case seg.Corner != 0:
			// Sponsor boards line the inside of corner zones, barriers the outside.
			side := 1.0
			if seg.Curve < 0 {
				side = -1.0
			}
			if seg.Index%boardEvery == 0 {
				seg.Objects = append(seg.Objects, Placement{Kind: ObjectBoard, Offset: side * boardOffset})
			}
			if seg.Index%standEvery == 0 {
				seg.Objects = append(seg.Objects, Placement{Kind: ObjectBarrier, Offset: -side * standOffset})
			}
		default:
			if seg.Index%treeEvery == 0 {
				left := treeBaseOffset + rng.Float64()*treeJitter
				right := treeBaseOffset + rng.Float64()*treeJitter
				seg.Objects = append(seg.Objects,
					Placement{Kind: ObjectTree, Offset: -left},
					Placement{Kind: ObjectTree, Offset: right},
				)
			}
		}
	}
}
