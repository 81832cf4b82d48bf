package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slipstream-dev/hotlap/pkg/track"
)

// LoadCircuit reads a circuit definition from a YAML file and validates it.
// Any failure here is a configuration error and should abort startup.
func LoadCircuit(path string) (*track.Circuit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("circuit file: %w", err)
	}
	var c track.Circuit
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("circuit file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
