package models

import advisor "room-planner/internal/advisor/models"

// ============================================================
// Layout Models
// ============================================================

// Layout is a saved room together with the furniture placed in it.
type Layout struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Room      advisor.RoomDimensions `json:"room"`
	CreatedAt string                 `json:"created_at"`
	Items     []Item                 `json:"items,omitempty"`
}

// Item is one furniture archetype placed in a layout.
type Item struct {
	ID          string           `json:"id"`
	LayoutID    string           `json:"layout_id"`
	FurnitureID string           `json:"furnitureId"`
	Position    advisor.Position `json:"position"`
	Rotation    float64          `json:"rotation"`
	CreatedAt   string           `json:"created_at"`
}

// Ref converts the item to the reference form the advisor understands.
func (i Item) Ref() advisor.PlacedRef {
	return advisor.PlacedRef{
		FurnitureID: i.FurnitureID,
		Position:    i.Position,
		Rotation:    i.Rotation,
	}
}
