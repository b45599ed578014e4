package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvEntry is one environment catalog row loaded from YAML. Kind selects the
// variant; only the fields for that kind are meaningful.
type EnvEntry struct {
	ID   int32   `yaml:"id"`
	Kind string  `yaml:"kind"` // village, forest, mountain, temple, market
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Z    float64 `yaml:"z"`

	// village
	Houses     int `yaml:"houses"`
	Population int `yaml:"population"`

	// forest
	TreeCount int     `yaml:"tree_count"`
	Density   float64 `yaml:"density"`

	// mountain
	PeakHeight float64 `yaml:"peak_height"`
	Snowline   float64 `yaml:"snowline"`

	// temple
	Deity string `yaml:"deity"`
	Lit   bool   `yaml:"lit"`

	// market
	Stalls   int `yaml:"stalls"`
	OpenFrom int `yaml:"open_from"`
	OpenTo   int `yaml:"open_to"`
}

type envListFile struct {
	Objects []EnvEntry `yaml:"objects"`
}

var envKinds = map[string]bool{
	"village": true, "forest": true, "mountain": true,
	"temple": true, "market": true,
}

// EnvTable holds the environment catalog indexed by ID.
type EnvTable struct {
	entries map[int32]*EnvEntry
	order   []int32
}

// LoadEnvTable loads the environment catalog from a YAML file.
func LoadEnvTable(path string) (*EnvTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read environment_list: %w", err)
	}
	var f envListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse environment_list: %w", err)
	}
	t := &EnvTable{entries: make(map[int32]*EnvEntry, len(f.Objects))}
	for i := range f.Objects {
		e := &f.Objects[i]
		if !envKinds[e.Kind] {
			return nil, fmt.Errorf("environment_list: object %d has unknown kind %q", e.ID, e.Kind)
		}
		if _, dup := t.entries[e.ID]; dup {
			return nil, fmt.Errorf("environment_list: duplicate object id %d", e.ID)
		}
		t.entries[e.ID] = e
		t.order = append(t.order, e.ID)
	}
	return t, nil
}

// Get returns the entry with the given ID, or nil.
func (t *EnvTable) Get(id int32) *EnvEntry {
	return t.entries[id]
}

// Each calls fn for every entry in file order.
func (t *EnvTable) Each(fn func(*EnvEntry)) {
	for _, id := range t.order {
		fn(t.entries[id])
	}
}

// Count returns the number of catalog entries.
func (t *EnvTable) Count() int { return len(t.entries) }
