package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipstream-dev/hotlap/pkg/track"
)

func TestMonzaIsValid(t *testing.T) {
	c := Monza()
	require.NoError(t, c.Validate())

	trk, err := track.Build(c.Zones)
	require.NoError(t, err)
	assert.Equal(t, 438, len(trk.Segments()))

	// Every corner record is reachable from some zone and vice versa.
	referenced := map[int]bool{}
	for _, z := range c.Zones {
		if z.Corner != 0 {
			referenced[z.Corner] = true
		}
	}
	assert.Len(t, referenced, len(c.Corners))

	for _, cr := range c.Corners {
		assert.GreaterOrEqual(t, cr.Braking, 0, "corner %d", cr.Number)
		assert.LessOrEqual(t, cr.Braking, 10, "corner %d", cr.Number)
		assert.InDelta(t, 0.5, cr.MapX, 0.5, "corner %d map x out of range", cr.Number)
		assert.InDelta(t, 0.5, cr.MapY, 0.5, "corner %d map y out of range", cr.Number)
	}
}

func TestLoadCircuit(t *testing.T) {
	src := `
name: Mini Ring
zones:
  - length: 30
  - length: 10
    curve: 2.5
    corner: 1
  - length: 20
corners:
  - number: 1
    name: Hairpin
    direction: R
    entrySpeed: 45
    exitSpeed: 60
    gear: 2
    braking: 8
    mapX: 0.5
    mapY: 0.2
`
	path := filepath.Join(t.TempDir(), "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := LoadCircuit(path)
	require.NoError(t, err)
	assert.Equal(t, "Mini Ring", c.Name)
	require.Len(t, c.Zones, 3)
	assert.Equal(t, 2.5, c.Zones[1].Curve)
	require.Len(t, c.Corners, 1)
	assert.Equal(t, "Hairpin", c.Corners[0].Name)
	assert.Equal(t, 8, c.Corners[0].Braking)
}

func TestLoadCircuitErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCircuit(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("invalid circuit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: Bad\nzones: []\n"), 0o644))
		_, err := LoadCircuit(path)
		assert.Error(t, err)
	})
}
