// Package presets ships named tessellation quality profiles so CLI users do
// not have to remember tolerance numbers.
package presets

import (
	_ "embed"
	"encoding/json"
)

//go:embed presets.json
var presets []byte

// Preset is one named tessellation profile.
type Preset struct {
	Name        string
	Description string

	// Tolerance is the curve flattening tolerance in document units.
	Tolerance float64
	Scale     float64
}

func decodePresets() ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(presets, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns the preset with the given name, or nil when there is none.
func Get(name string) (*Preset, error) {
	all, err := decodePresets()
	if err != nil {
		return nil, err
	}

	for _, preset := range all {
		if preset.Name == name {
			return &preset, nil
		}
	}

	return nil, nil
}

// Names lists the shipped preset names.
func Names() ([]string, error) {
	all, err := decodePresets()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(all))
	for _, preset := range all {
		names = append(names, preset.Name)
	}

	return names, nil
}
