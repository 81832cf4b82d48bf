package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCircuit() *Circuit {
	return &Circuit{
		Name:  "Test Ring",
		Zones: testZones(),
		Corners: []Corner{
			{Number: 1, Name: "First", Direction: "R", EntrySpeed: 80, ExitSpeed: 95, Gear: 3, Braking: 6, MapX: 0.7, MapY: 0.2},
			{Number: 2, Name: "Second", Direction: "L", EntrySpeed: 95, ExitSpeed: 120, Gear: 4, Braking: 4, MapX: 0.3, MapY: 0.7},
		},
	}
}

func TestCircuitValidate(t *testing.T) {
	require.NoError(t, testCircuit().Validate())

	t.Run("no zones", func(t *testing.T) {
		c := testCircuit()
		c.Zones = nil
		assert.Error(t, c.Validate())
	})
	t.Run("unknown corner reference", func(t *testing.T) {
		c := testCircuit()
		c.Zones = append(c.Zones, Zone{Length: 5, Curve: 1.0, Corner: 9})
		assert.Error(t, c.Validate())
	})
	t.Run("duplicate corner numbers", func(t *testing.T) {
		c := testCircuit()
		c.Corners = append(c.Corners, Corner{Number: 1, Name: "Dup"})
		assert.Error(t, c.Validate())
	})
	t.Run("non-positive zone length", func(t *testing.T) {
		c := testCircuit()
		c.Zones[0].Length = 0
		assert.Error(t, c.Validate())
	})
}

func TestCornerLookup(t *testing.T) {
	c := testCircuit()
	byNum := c.CornerLookup()
	require.Len(t, byNum, 2)
	assert.Equal(t, "First", byNum[1].Name)
	assert.Equal(t, "Second", byNum[2].Name)
}
