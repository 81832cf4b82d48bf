// Package data ships circuit definitions: a built-in royal-park style layout
// and a YAML loader for external ones.
package data

import "github.com/slipstream-dev/hotlap/pkg/track"

// Monza returns the built-in circuit: an 11-corner high-speed layout with two
// chicanes, a linked right-right pair and one long final right-hander.
func Monza() *track.Circuit {
	return &track.Circuit{
		Name: "Monza",
		Zones: []track.Zone{
			{Length: 70},                            // start/finish straight
			{Length: 12, Curve: 3.4, Corner: 1},     // Variante del Rettifilo, first element
			{Length: 10, Curve: -3.0, Corner: 2},    // Variante del Rettifilo, second element
			{Length: 8},                             //
			{Length: 40, Curve: 0.9, Corner: 3},     // Curva Grande
			{Length: 30},                            //
			{Length: 10, Curve: -3.2, Corner: 4},    // Variante della Roggia, first element
			{Length: 8, Curve: 2.8, Corner: 5},      // Variante della Roggia, second element
			{Length: 20},                            //
			{Length: 16, Curve: 2.0, Corner: 6},     // Lesmo 1
			{Length: 10},                            //
			{Length: 14, Curve: 2.2, Corner: 7},     // Lesmo 2
			{Length: 45},                            // Serraglio run
			{Length: 10, Curve: -2.6, Corner: 8},    // Variante Ascari, entry
			{Length: 10, Curve: 2.4, Corner: 9},     // Variante Ascari, middle
			{Length: 10, Curve: -2.0, Corner: 10},   // Variante Ascari, exit
			{Length: 25},                            // back straight
			{Length: 30, Curve: 1.6, Corner: 11},    // Parabolica
			{Length: 60},                            // run to the line
		},
		Corners: []track.Corner{
			{Number: 1, Name: "Variante del Rettifilo", Direction: "R", EntrySpeed: 58, ExitSpeed: 72, Gear: 1, Braking: 10,
				Note: "Hardest stop of the lap, from top speed down to first gear.", MapX: 0.50, MapY: 0.88},
			{Number: 2, Name: "Rettifilo, second apex", Direction: "L", EntrySpeed: 62, ExitSpeed: 85, Gear: 2, Braking: 3,
				Note: "Ride the inside kerb and open the wheel early.", MapX: 0.53, MapY: 0.84},
			{Number: 3, Name: "Curva Grande", Direction: "R", EntrySpeed: 165, ExitSpeed: 178, Gear: 6, Braking: 1,
				Note: "Flat in top gear once the car is settled.", MapX: 0.62, MapY: 0.70},
			{Number: 4, Name: "Variante della Roggia", Direction: "L", EntrySpeed: 72, ExitSpeed: 80, Gear: 2, Braking: 9,
				Note: "Braking zone hidden by the trees; commit to the first kerb.", MapX: 0.70, MapY: 0.52},
			{Number: 5, Name: "Roggia, second apex", Direction: "R", EntrySpeed: 75, ExitSpeed: 95, Gear: 3, Braking: 2,
				Note: "Exit speed here carries all the way to Lesmo 1.", MapX: 0.72, MapY: 0.48},
			{Number: 6, Name: "Lesmo 1", Direction: "R", EntrySpeed: 105, ExitSpeed: 112, Gear: 3, Braking: 6,
				Note: "Late apex, let the car run out to the exit kerb.", MapX: 0.78, MapY: 0.36},
			{Number: 7, Name: "Lesmo 2", Direction: "R", EntrySpeed: 112, ExitSpeed: 125, Gear: 4, Braking: 5,
				Note: "Faster than it looks; a clean exit matters for the long run down.", MapX: 0.80, MapY: 0.24},
			{Number: 8, Name: "Variante Ascari, entry", Direction: "L", EntrySpeed: 98, ExitSpeed: 104, Gear: 3, Braking: 8,
				Note: "Brake on the approach crest, turn in blind.", MapX: 0.48, MapY: 0.14},
			{Number: 9, Name: "Ascari, middle", Direction: "R", EntrySpeed: 104, ExitSpeed: 110, Gear: 4, Braking: 2,
				Note: "The whole complex is one rhythm; this apex sets the exit.", MapX: 0.42, MapY: 0.12},
			{Number: 10, Name: "Ascari, exit", Direction: "L", EntrySpeed: 110, ExitSpeed: 130, Gear: 4, Braking: 1,
				Note: "Use every inch of road on the way out.", MapX: 0.36, MapY: 0.14},
			{Number: 11, Name: "Parabolica", Direction: "R", EntrySpeed: 120, ExitSpeed: 160, Gear: 4, Braking: 7,
				Note: "Long, opening radius; feed the power in from the apex.", MapX: 0.22, MapY: 0.45},
		},
	}
}
