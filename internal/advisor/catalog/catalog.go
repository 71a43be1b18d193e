package catalog

import (
	"fmt"

	"room-planner/internal/advisor/models"
)

// ============================================================
// Catalog
// ============================================================

// Catalog is a read-only, ordered table of furniture archetypes.
// It is safe for concurrent use: nothing mutates it after New.
type Catalog struct {
	items []models.FurnitureModel
	index map[string]int
}

// New copies items into a catalog, keeping declaration order.
// Later entries with a duplicate id are ignored by ByID but still listed.
func New(items []models.FurnitureModel) *Catalog {
	c := &Catalog{
		items: make([]models.FurnitureModel, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, ok := c.index[item.ID]; !ok {
			c.index[item.ID] = len(c.items)
		}
		c.items = append(c.items, item.Clone())
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns every entry in declaration order.
func (c *Catalog) All() []models.FurnitureModel {
	return c.filter(func(models.FurnitureModel) bool { return true })
}

// ByID looks up an archetype by its id.
func (c *Catalog) ByID(id string) (models.FurnitureModel, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.FurnitureModel{}, false
	}
	return c.items[i].Clone(), true
}

// ByCategory returns the entries of the given category.
func (c *Catalog) ByCategory(category models.Category) []models.FurnitureModel {
	return c.filter(func(item models.FurnitureModel) bool {
		return item.Category == category
	})
}

// ForZone returns the entries whose primary or secondary zones include zone.
func (c *Catalog) ForZone(zone models.Zone) []models.FurnitureModel {
	return c.filter(func(item models.FurnitureModel) bool {
		return item.PlacementRules.AllowsZone(zone)
	})
}

// Filter returns the entries matching both criteria; an empty category or
// zone matches everything. Unknown values are an error.
func (c *Catalog) Filter(category models.Category, zone models.Zone) ([]models.FurnitureModel, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	if zone != "" && !zone.Valid() {
		return nil, fmt.Errorf("unknown zone %q", zone)
	}
	return c.filter(func(item models.FurnitureModel) bool {
		return (category == "" || item.Category == category) &&
			(zone == "" || item.PlacementRules.AllowsZone(zone))
	}), nil
}

func (c *Catalog) filter(keep func(models.FurnitureModel) bool) []models.FurnitureModel {
	out := []models.FurnitureModel{}
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}
