package placement

import (
	"fmt"

	"room-planner/internal/advisor/models"
)

const (
	IssueBeyondWidth = "Furniture extends beyond room width"
	IssueBeyondDepth = "Furniture extends beyond room depth"
)

// Validate checks a concrete placement against the room bounds and, for items
// that avoid overlap, against every existing item that also avoids overlap.
// All rules are evaluated; height against the room is not checked.
func Validate(furniture models.FurnitureModel, position models.Position, room models.RoomDimensions, existing []models.PlacedFurniture) models.ValidationResult {
	issues := []string{}
	fp := FootprintOf(furniture)

	if position.X-fp.HalfWidth < 0 || position.X+fp.HalfWidth > room.Width {
		issues = append(issues, IssueBeyondWidth)
	}
	if position.Z-fp.HalfDepth < 0 || position.Z+fp.HalfDepth > room.Depth {
		issues = append(issues, IssueBeyondDepth)
	}

	if furniture.PlacementRules.AvoidOverlap {
		for _, item := range existing {
			if !item.Model.PlacementRules.AvoidOverlap {
				continue
			}
			if CheckCollision(furniture, position, item.Model, item.Position) {
				issues = append(issues, fmt.Sprintf("Overlaps with %s", item.Model.Name))
			}
		}
	}

	return models.ValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}
