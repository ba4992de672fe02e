package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seeds.yaml
var defaultSeeds []byte

// DefaultSeeds returns the built-in constellation items
func DefaultSeeds() ([]Item, error) {
	return ParseSeeds(bytes.NewReader(defaultSeeds))
}

// LoadSeeds reads a YAML list of items from path
func LoadSeeds(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seeds: %w", err)
	}
	defer f.Close()

	items, err := ParseSeeds(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseSeeds decodes, normalizes and validates a YAML list of items
// Every item needs a unique non-empty id
func ParseSeeds(r io.Reader) ([]Item, error) {
	var raw []Item
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seeds: %w", err)
	}

	seen := make(map[string]struct{}, len(raw))
	items := make([]Item, 0, len(raw))
	for i, it := range raw {
		it = it.Normalize()
		if it.ID == "" {
			return nil, fmt.Errorf("%w: seed %d has no id", ErrInvalidItem, i)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate seed id %q", ErrInvalidItem, it.ID)
		}
		if err := Validate(it); err != nil {
			return nil, fmt.Errorf("seed %q: %w", it.ID, err)
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}
