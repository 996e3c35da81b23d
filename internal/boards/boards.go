// Package boards holds the registry of embedded business-intelligence
// boards. Each board is just an iframe target URL with display metadata;
// the embedding provider is opaque and no data crosses the boundary.
package boards

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Board is one embeddable BI report.
type Board struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	URL      string `yaml:"url" json:"url"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Registry is the loaded board list, in file order.
type Registry struct {
	Boards []Board `yaml:"boards" json:"boards"`
}

// Load reads a registry from a YAML file. A missing path yields an empty
// registry; the dashboard simply shows no embeds.
func Load(path string) (*Registry, error) {
	if path == "" {
		return &Registry{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{}, nil
		}
		return nil, fmt.Errorf("boards: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a registry from YAML and validates it.
func Parse(data []byte) (*Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("boards: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(reg.Boards))
	for i, b := range reg.Boards {
		if b.ID == "" || b.URL == "" {
			return nil, fmt.Errorf("boards: entry %d: id and url are required", i)
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("boards: duplicate id %q", b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return &reg, nil
}

// Get returns the board with the given id.
func (r *Registry) Get(id string) (Board, bool) {
	for _, b := range r.Boards {
		if b.ID == id {
			return b, true
		}
	}
	return Board{}, false
}
