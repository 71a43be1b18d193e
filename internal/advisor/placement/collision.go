package placement

import (
	"math"

	"room-planner/internal/advisor/models"
)

// ============================================================
// Floor-plan footprints
// ============================================================

// Footprint is the axis-aligned half extent of an item on the floor plane.
// Rotation is not applied.
type Footprint struct {
	HalfWidth float64
	HalfDepth float64
}

func FootprintOf(f models.FurnitureModel) Footprint {
	return Footprint{
		HalfWidth: f.Dimensions.ScaledWidth() / 2,
		HalfDepth: f.Dimensions.ScaledDepth() / 2,
	}
}

// CheckCollision reports whether two items' footprints overlap on both the
// X and Z axes. Touching edges do not collide; Y is ignored.
func CheckCollision(a models.FurnitureModel, posA models.Position, b models.FurnitureModel, posB models.Position) bool {
	fa, fb := FootprintOf(a), FootprintOf(b)

	return math.Abs(posA.X-posB.X) < fa.HalfWidth+fb.HalfWidth &&
		math.Abs(posA.Z-posB.Z) < fa.HalfDepth+fb.HalfDepth
}
