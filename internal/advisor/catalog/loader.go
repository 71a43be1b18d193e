package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"room-planner/internal/advisor/models"
)

// ============================================================
// YAML catalog files
// ============================================================

type catalogFile struct {
	Name  string                  `yaml:"name"`
	Items []models.FurnitureModel `yaml:"items"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML parses and validates a catalog document.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog file is empty")
		}
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}

	seen := make(map[string]bool, len(file.Items))
	for i, item := range file.Items {
		if err := Validate(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true
	}

	return New(file.Items), nil
}

// Validate checks a single archetype definition.
func Validate(item models.FurnitureModel) error {
	if item.ID == "" {
		return fmt.Errorf("furniture id is required")
	}
	if !item.Category.Valid() {
		return fmt.Errorf("furniture %s: unknown category %q", item.ID, item.Category)
	}

	d := item.Dimensions
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 || d.Scale <= 0 {
		return fmt.Errorf("furniture %s: dimensions and scale must be positive", item.ID)
	}

	rules := item.PlacementRules
	if !rules.PrimaryZone.Valid() {
		return fmt.Errorf("furniture %s: unknown primary zone %q", item.ID, rules.PrimaryZone)
	}
	for _, z := range rules.SecondaryZones {
		if !z.Valid() {
			return fmt.Errorf("furniture %s: unknown secondary zone %q", item.ID, z)
		}
	}
	if !rules.Orientation.Valid() {
		return fmt.Errorf("furniture %s: unknown orientation %q", item.ID, rules.Orientation)
	}
	if rules.MinDistanceFromWall < 0 || rules.MinDistanceFromWall > rules.MaxDistanceFromWall {
		return fmt.Errorf("furniture %s: wall distance band [%g, %g] is invalid",
			item.ID, rules.MinDistanceFromWall, rules.MaxDistanceFromWall)
	}
	return nil
}
