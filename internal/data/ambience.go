package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AmbiencePreset is the soundscape sent to a client when it crosses into a
// biome. The server never mixes audio; it only names the preset.
type AmbiencePreset struct {
	Biome     string  `yaml:"biome"`
	Track     string  `yaml:"track"`
	Volume    float64 `yaml:"volume"`
	Reverb    float64 `yaml:"reverb"`
	WindLevel float64 `yaml:"wind_level"`
}

type ambienceListFile struct {
	Presets []AmbiencePreset `yaml:"presets"`
}

// AmbienceTable maps biome names to their ambience presets.
type AmbienceTable struct {
	presets map[string]*AmbiencePreset
}

// LoadAmbienceTable loads ambience presets from a YAML file.
func LoadAmbienceTable(path string) (*AmbienceTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ambience_list: %w", err)
	}
	var f ambienceListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse ambience_list: %w", err)
	}
	t := &AmbienceTable{presets: make(map[string]*AmbiencePreset, len(f.Presets))}
	for i := range f.Presets {
		p := &f.Presets[i]
		t.presets[p.Biome] = p
	}
	return t, nil
}

// Get returns the preset for a biome name, or nil when none is defined.
func (t *AmbienceTable) Get(biome string) *AmbiencePreset {
	return t.presets[biome]
}

// Count returns the number of presets.
func (t *AmbienceTable) Count() int { return len(t.presets) }
