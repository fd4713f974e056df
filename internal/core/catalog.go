package core

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the catalog's name inside the templates filesystem.
const CatalogFile = "catalog.yaml"

// CatalogEntry describes one bundled agent.
type CatalogEntry struct {
	Name        string `yaml:"name"`
	Summary     string `yaml:"summary"`     // short label for prompts and tables
	Description string `yaml:"description"` // longer text for list
	Color       string `yaml:"color"`
	Model       string `yaml:"model"`
}

// Catalog is the ordered list of bundled agents.
type Catalog []CatalogEntry

// LoadCatalog parses the catalog from fsys.
func LoadCatalog(fsys fs.FS) (Catalog, error) {
	data, err := fs.ReadFile(fsys, CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var doc struct {
		Agents Catalog `yaml:"agents"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Agents))
	for _, e := range doc.Agents {
		if _, err := SanitizeAgentName(e.Name); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("catalog: duplicate agent %q", e.Name)
		}
		seen[e.Name] = true
	}
	return doc.Agents, nil
}

// Names returns the agent names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// Has reports whether name is a bundled agent.
func (c Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Get returns the entry for name.
func (c Catalog) Get(name string) (CatalogEntry, bool) {
	for _, e := range c {
		if e.Name == name {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Summary returns the short description for name, or "Custom agent" for
// anything not in the catalog.
func (c Catalog) Summary(name string) string {
	if e, ok := c.Get(name); ok {
		return e.Summary
	}
	return DefaultDescription
}

// Filter splits names into catalog members and unknown names, preserving
// order.
func (c Catalog) Filter(names []string) (known, unknown []string) {
	for _, n := range names {
		if c.Has(n) {
			known = append(known, n)
		} else {
			unknown = append(unknown, n)
		}
	}
	return known, unknown
}
