package track

import (
	"fmt"

	"github.com/samber/lo"
)

// Corner is one record of the circuit's static corner table. The engine
// treats these as read-only for its lifetime; they are keyed by the 1-based
// corner number referenced from segments.
type Corner struct {
	Number     int     `yaml:"number"`
	Name       string  `yaml:"name"`
	Direction  string  `yaml:"direction"` // "L" or "R"
	EntrySpeed int     `yaml:"entrySpeed"`
	ExitSpeed  int     `yaml:"exitSpeed"`
	Gear       int     `yaml:"gear"`
	Braking    int     `yaml:"braking"` // braking difficulty, 0-10
	Note       string  `yaml:"note,omitempty"`
	MapX       float64 `yaml:"mapX"` // normalized [0,1] mini-map coordinates
	MapY       float64 `yaml:"mapY"`
}

// Circuit bundles a zone layout with its corner metadata table.
type Circuit struct {
	Name    string   `yaml:"name"`
	Zones   []Zone   `yaml:"zones"`
	Corners []Corner `yaml:"corners"`
}

// Validate checks the circuit invariants: a non-empty zone list with positive
// lengths, unique corner numbers, and every corner zone referencing an
// existing corner record.
func (c *Circuit) Validate() error {
	if len(c.Zones) == 0 {
		return fmt.Errorf("circuit %q: no zones", c.Name)
	}
	byNumber := lo.KeyBy(c.Corners, func(cr Corner) int { return cr.Number })
	if len(byNumber) != len(c.Corners) {
		return fmt.Errorf("circuit %q: duplicate corner numbers", c.Name)
	}
	for i, z := range c.Zones {
		if z.Length <= 0 {
			return fmt.Errorf("circuit %q: zone %d has non-positive length", c.Name, i)
		}
		if z.Curve != 0 {
			if _, ok := byNumber[z.Corner]; !ok {
				return fmt.Errorf("circuit %q: zone %d references unknown corner %d", c.Name, i, z.Corner)
			}
		}
	}
	return nil
}

// CornerLookup returns the corner table keyed by corner number.
func (c *Circuit) CornerLookup() map[int]Corner {
	return lo.KeyBy(c.Corners, func(cr Corner) int { return cr.Number })
}
