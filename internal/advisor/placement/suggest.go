package placement

import (
	"sort"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/models"
)

// ============================================================
// Heuristic priors
// ============================================================

// Relative ordering matters, the exact values do not:
// corner = sofa-relative > wall = floor > room center > forced fallback.
const (
	CornerConfidence       = 0.95
	SofaRelativeConfidence = 0.95
	WallConfidence         = 0.9
	FloorConfidence        = 0.9
	CenterConfidence       = 0.8
	FallbackConfidence     = 0.5
)

const (
	// DefaultEyeLevel is used for items that do not touch the floor and declare no height.
	DefaultEyeLevel = 1.5
	// CornerClearance is kept between a corner item and both walls.
	CornerClearance = 0.2
	// SofaLegroom is the distance from a seating item to the table in front of it.
	SofaLegroom = 1.2
)

// ============================================================
// Suggestion engine
// ============================================================

// Suggest proposes placements for furniture in room given what is already
// placed. Results are ordered by confidence, ties keep generation order.
// An empty result means no heuristic applies and the caller must choose.
func Suggest(furniture models.FurnitureModel, room models.RoomDimensions, existing []models.PlacedFurniture) []models.PlacementSuggestion {
	rules := furniture.PlacementRules
	baseY := baseHeight(rules)

	var suggestions []models.PlacementSuggestion
	switch rules.PrimaryZone {
	case models.ZoneWall:
		suggestions = wallCandidates(rules, room, baseY)
	case models.ZoneCorner:
		suggestions = cornerCandidates(furniture, room, baseY)
	case models.ZoneCenter:
		suggestions = centerCandidates(furniture, room, existing, baseY)
	case models.ZoneFloor:
		suggestions = floorCandidates(furniture, existing)
	}

	if suggestions == nil {
		return []models.PlacementSuggestion{}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions
}

func baseHeight(rules models.PlacementRules) float64 {
	if rules.RequiresFloorContact {
		return 0
	}
	if rules.PreferredHeight != nil && *rules.PreferredHeight != 0 {
		return *rules.PreferredHeight
	}
	return DefaultEyeLevel
}

func wallCandidates(rules models.PlacementRules, room models.RoomDimensions, baseY float64) []models.PlacementSuggestion {
	offset := rules.MinDistanceFromWall
	walls := []struct {
		x, z, rotation float64
	}{
		{room.Width / 2, offset, 0},                // back
		{room.Width / 2, room.Depth - offset, 180}, // front
		{offset, room.Depth / 2, 90},               // left
		{room.Width - offset, room.Depth / 2, 270}, // right
	}

	out := make([]models.PlacementSuggestion, 0, len(walls))
	for _, wall := range walls {
		out = append(out, models.PlacementSuggestion{
			Position:   models.Position{X: wall.x, Y: baseY, Z: wall.z},
			Rotation:   wall.rotation,
			Confidence: WallConfidence,
			Reason:     "Placed against wall with proper orientation",
		})
	}
	return out
}

func cornerCandidates(furniture models.FurnitureModel, room models.RoomDimensions, baseY float64) []models.PlacementSuggestion {
	insetX := furniture.Dimensions.ScaledWidth()/2 + CornerClearance
	insetZ := furniture.Dimensions.ScaledDepth()/2 + CornerClearance

	corners := [][2]float64{
		{insetX, insetZ},
		{room.Width - insetX, insetZ},
		{insetX, room.Depth - insetZ},
		{room.Width - insetX, room.Depth - insetZ},
	}

	out := make([]models.PlacementSuggestion, 0, len(corners))
	for _, c := range corners {
		out = append(out, models.PlacementSuggestion{
			Position:   models.Position{X: c[0], Y: baseY, Z: c[1]},
			Rotation:   0,
			Confidence: CornerConfidence,
			Reason:     "Placed in room corner for optimal space usage",
		})
	}
	return out
}

func centerCandidates(furniture models.FurnitureModel, room models.RoomDimensions, existing []models.PlacedFurniture, baseY float64) []models.PlacementSuggestion {
	var out []models.PlacementSuggestion

	if isCoffeeTable(furniture) {
		if sofa, ok := firstSeating(existing); ok {
			dz := SofaLegroom
			if sofa.Rotation != 0 {
				dz = -SofaLegroom
			}
			out = append(out, models.PlacementSuggestion{
				Position:   models.Position{X: sofa.Position.X, Y: baseY, Z: sofa.Position.Z + dz},
				Rotation:   sofa.Rotation,
				Confidence: SofaRelativeConfidence,
				Reason:     "Placed in front of sofa with matching orientation",
			})
		}
	}

	out = append(out, models.PlacementSuggestion{
		Position:   models.Position{X: room.Width / 2, Y: baseY, Z: room.Depth / 2},
		Rotation:   0,
		Confidence: CenterConfidence,
		Reason:     "Centered in room for balanced layout",
	})
	return out
}

func floorCandidates(furniture models.FurnitureModel, existing []models.PlacedFurniture) []models.PlacementSuggestion {
	if furniture.Category != models.CategoryFloorDecor {
		return nil
	}

	var sumX, sumZ float64
	var n int
	for _, item := range existing {
		if item.Model.Category == models.CategorySeating || isCoffeeTable(item.Model) {
			sumX += item.Position.X
			sumZ += item.Position.Z
			n++
		}
	}
	if n == 0 {
		return nil
	}

	return []models.PlacementSuggestion{{
		Position:   models.Position{X: sumX / float64(n), Y: 0, Z: sumZ / float64(n)},
		Rotation:   0,
		Confidence: FloorConfidence,
		Reason:     "Placed under seating arrangement to define the space",
	}}
}

func isCoffeeTable(f models.FurnitureModel) bool {
	return f.Category == models.CategoryTable && f.ID == catalog.CoffeeTableID
}

func firstSeating(existing []models.PlacedFurniture) (models.PlacedFurniture, bool) {
	for _, item := range existing {
		if item.Model.Category == models.CategorySeating {
			return item, true
		}
	}
	return models.PlacedFurniture{}, false
}
