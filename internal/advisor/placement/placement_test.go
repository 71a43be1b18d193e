package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/models"
)

const eps = 1e-9

func mustModel(t *testing.T, id string) models.FurnitureModel {
	t.Helper()
	m, ok := catalog.Default().ByID(id)
	require.True(t, ok, "catalog entry %s", id)
	return m
}

// box is a dyadic-sized test archetype so boundary comparisons are exact.
func box(id string, width, depth float64, avoid bool) models.FurnitureModel {
	return models.FurnitureModel{
		ID:       id,
		Name:     id,
		Category: models.CategoryDecor,
		Dimensions: models.FurnitureDimensions{
			Width: width, Height: 1, Depth: depth, Scale: 1,
		},
		PlacementRules: models.PlacementRules{
			PrimaryZone:          models.ZoneAnywhere,
			MaxDistanceFromWall:  10,
			Orientation:          models.OrientationFixed,
			RequiresFloorContact: true,
			AvoidOverlap:         avoid,
		},
	}
}

func room4x4() models.RoomDimensions {
	return models.RoomDimensions{Width: 4, Depth: 4, Height: 2.5}
}

// ============================================================
// Suggestions
// ============================================================

func TestSuggestWall(t *testing.T) {
	sofa := mustModel(t, catalog.SofaID)
	room := models.RoomDimensions{Width: 4, Depth: 5, Height: 2.5}

	got := Suggest(sofa, room, nil)
	require.Len(t, got, 4)

	want := []struct {
		x, z, rot float64
	}{
		{2, 0.1, 0},
		{2, 4.9, 180},
		{0.1, 2.5, 90},
		{3.9, 2.5, 270},
	}
	for i, w := range want {
		assert.InDelta(t, w.x, got[i].Position.X, eps, "wall %d x", i)
		assert.InDelta(t, w.z, got[i].Position.Z, eps, "wall %d z", i)
		assert.Equal(t, 0.0, got[i].Position.Y)
		assert.Equal(t, w.rot, got[i].Rotation)
		assert.Equal(t, WallConfidence, got[i].Confidence)
	}
}

func TestSuggestWallMountedUsesPreferredHeight(t *testing.T) {
	painting := mustModel(t, catalog.PaintingID)

	got := Suggest(painting, room4x4(), nil)
	require.Len(t, got, 4)
	for _, s := range got {
		assert.Equal(t, 1.5, s.Position.Y)
	}
	assert.Equal(t, models.Position{X: 2, Y: 1.5, Z: 0}, got[0].Position)

	noHeight := painting.Clone()
	noHeight.PlacementRules.PreferredHeight = nil
	assert.Equal(t, DefaultEyeLevel, Suggest(noHeight, room4x4(), nil)[0].Position.Y)
}

func TestSuggestCorner(t *testing.T) {
	pot := mustModel(t, "pot-1")
	got := Suggest(pot, room4x4(), nil)
	require.Len(t, got, 4)

	insetX := 0.973*0.4/2 + CornerClearance
	insetZ := 0.994*0.4/2 + CornerClearance
	want := [][2]float64{
		{insetX, insetZ},
		{4 - insetX, insetZ},
		{insetX, 4 - insetZ},
		{4 - insetX, 4 - insetZ},
	}
	for i, w := range want {
		assert.InDelta(t, w[0], got[i].Position.X, eps)
		assert.InDelta(t, w[1], got[i].Position.Z, eps)
		assert.Equal(t, 0.0, got[i].Rotation)
		assert.Equal(t, CornerConfidence, got[i].Confidence)
	}
}

func TestSuggestCoffeeTableInFrontOfSofa(t *testing.T) {
	sofa := mustModel(t, catalog.SofaID)
	table := mustModel(t, catalog.CoffeeTableID)
	existing := []models.PlacedFurniture{
		{Model: sofa, Position: models.Position{X: 2, Y: 0, Z: 0.5}, Rotation: 0},
	}

	got := Suggest(table, room4x4(), existing)
	require.Len(t, got, 2)

	top := got[0]
	assert.Equal(t, SofaRelativeConfidence, top.Confidence)
	assert.InDelta(t, 2, top.Position.X, eps)
	assert.InDelta(t, 0, top.Position.Y, eps)
	assert.InDelta(t, 1.7, top.Position.Z, eps)
	assert.Equal(t, 0.0, top.Rotation)

	assert.Equal(t, CenterConfidence, got[1].Confidence)
	assert.Equal(t, models.Position{X: 2, Y: 0, Z: 2}, got[1].Position)
	assert.Greater(t, top.Confidence, got[1].Confidence)
}

func TestSuggestCoffeeTableFacingAway(t *testing.T) {
	sofa := mustModel(t, catalog.SofaID)
	table := mustModel(t, catalog.CoffeeTableID)
	existing := []models.PlacedFurniture{
		{Model: sofa, Position: models.Position{X: 1, Z: 3}, Rotation: 90},
	}

	got := Suggest(table, room4x4(), existing)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.8, got[0].Position.Z, eps)
	assert.Equal(t, 90.0, got[0].Rotation)
}

func TestSuggestCenterWithoutSeating(t *testing.T) {
	table := mustModel(t, catalog.CoffeeTableID)
	dining := mustModel(t, "table-1")
	sofa := mustModel(t, catalog.SofaID)

	got := Suggest(table, room4x4(), nil)
	require.Len(t, got, 1)
	assert.Equal(t, CenterConfidence, got[0].Confidence)

	// Only the coffee table is placed relative to seating.
	existing := []models.PlacedFurniture{{Model: sofa, Position: models.Position{X: 2, Z: 0.5}}}
	got = Suggest(dining, room4x4(), existing)
	require.Len(t, got, 1)
	assert.Equal(t, models.Position{X: 2, Y: 0, Z: 2}, got[0].Position)
}

func TestSuggestFloorUnderSeating(t *testing.T) {
	rug := mustModel(t, catalog.RugID)
	rug.PlacementRules.PrimaryZone = models.ZoneFloor

	sofa := mustModel(t, catalog.SofaID)
	table := mustModel(t, catalog.CoffeeTableID)
	pot := mustModel(t, "pot-1")

	assert.Empty(t, Suggest(rug, room4x4(), nil))
	assert.Empty(t, Suggest(rug, room4x4(), []models.PlacedFurniture{
		{Model: pot, Position: models.Position{X: 0.4, Z: 0.4}},
	}))

	existing := []models.PlacedFurniture{
		{Model: sofa, Position: models.Position{X: 2, Z: 1}},
		{Model: table, Position: models.Position{X: 2, Z: 2.2}},
		{Model: pot, Position: models.Position{X: 0.4, Z: 0.4}},
	}
	got := Suggest(rug, room4x4(), existing)
	require.Len(t, got, 1)
	assert.InDelta(t, 2, got[0].Position.X, eps)
	assert.InDelta(t, 1.6, got[0].Position.Z, eps)
	assert.Equal(t, 0.0, got[0].Position.Y)
	assert.Equal(t, FloorConfidence, got[0].Confidence)

	// Floor zone is reserved for floor decor.
	notDecor := pot.Clone()
	notDecor.PlacementRules.PrimaryZone = models.ZoneFloor
	assert.Empty(t, Suggest(notDecor, room4x4(), existing))
}

func TestSuggestAnywhereIsEmpty(t *testing.T) {
	got := Suggest(box("crate", 1, 1, true), room4x4(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestNeverFailsForTinyRooms(t *testing.T) {
	tiny := models.RoomDimensions{Width: 0.1, Depth: 0.1, Height: 0.1}
	for _, item := range catalog.Default().All() {
		assert.NotPanics(t, func() { Suggest(item, tiny, nil) }, item.ID)
	}
}

func TestConfidenceOrdering(t *testing.T) {
	assert.GreaterOrEqual(t, CornerConfidence, SofaRelativeConfidence)
	assert.Greater(t, SofaRelativeConfidence, WallConfidence)
	assert.Greater(t, WallConfidence, CenterConfidence)
	assert.Greater(t, CenterConfidence, FallbackConfidence)
}

// ============================================================
// Collision
// ============================================================

func TestCheckCollision(t *testing.T) {
	a := box("a", 2, 2, true) // half extents 1 x 1
	b := box("b", 1, 1, true) // half extents 0.5 x 0.5

	tests := []struct {
		name       string
		posA, posB models.Position
		want       bool
	}{
		{"same position", models.Position{X: 2, Z: 2}, models.Position{X: 2, Z: 2}, true},
		{"overlap both axes", models.Position{X: 2, Z: 2}, models.Position{X: 3, Z: 2.5}, true},
		{"touching on x", models.Position{X: 0, Z: 0}, models.Position{X: 1.5, Z: 0}, false},
		{"touching on z", models.Position{X: 0, Z: 0}, models.Position{X: 0, Z: 1.5}, false},
		{"separated on x only", models.Position{X: 0, Z: 0}, models.Position{X: 2, Z: 0.25}, false},
		{"separated on z only", models.Position{X: 0, Z: 0}, models.Position{X: 0.25, Z: -3}, false},
		{"height ignored", models.Position{X: 1, Y: 0, Z: 1}, models.Position{X: 1, Y: 5, Z: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCollision(a, tt.posA, b, tt.posB))
			assert.Equal(t, tt.want, CheckCollision(b, tt.posB, a, tt.posA), "symmetry")
		})
	}
}

func TestCheckCollisionUsesScale(t *testing.T) {
	small := box("small", 2, 2, true)
	small.Dimensions.Scale = 0.5 // half extents 0.5 x 0.5
	other := box("other", 2, 2, true)

	assert.False(t, CheckCollision(small, models.Position{}, other, models.Position{X: 1.5}))
	assert.True(t, CheckCollision(small, models.Position{}, other, models.Position{X: 1.25}))
}

// ============================================================
// Validation
// ============================================================

func TestValidateInsideRoom(t *testing.T) {
	sofa := mustModel(t, catalog.SofaID)
	table := mustModel(t, catalog.CoffeeTableID)
	existing := []models.PlacedFurniture{
		{Model: sofa, Position: models.Position{X: 2, Z: 0.8}},
	}

	got := Validate(table, models.Position{X: 2, Z: 3}, room4x4(), existing)
	assert.True(t, got.Valid)
	assert.NotNil(t, got.Issues)
	assert.Empty(t, got.Issues)
}

func TestValidateBounds(t *testing.T) {
	a := box("a", 2, 2, true)

	tests := []struct {
		name string
		pos  models.Position
		want []string
	}{
		{"flush with walls", models.Position{X: 1, Z: 1}, []string{}},
		{"right edge", models.Position{X: 3.5, Z: 2}, []string{IssueBeyondWidth}},
		{"left edge", models.Position{X: 0.5, Z: 2}, []string{IssueBeyondWidth}},
		{"front edge", models.Position{X: 2, Z: 3.25}, []string{IssueBeyondDepth}},
		{"both", models.Position{X: -1, Z: 10}, []string{IssueBeyondWidth, IssueBeyondDepth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(a, tt.pos, room4x4(), nil)
			assert.Equal(t, tt.want, got.Issues)
			assert.Equal(t, len(tt.want) == 0, got.Valid)
		})
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	sofa := mustModel(t, catalog.SofaID)
	shelf := mustModel(t, "shelf-1")
	existing := []models.PlacedFurniture{
		{Model: shelf, Position: models.Position{X: 3.5, Z: 2}},
	}

	got := Validate(sofa, models.Position{X: 3.5, Z: 2}, room4x4(), existing)
	assert.False(t, got.Valid)
	assert.Equal(t, []string{IssueBeyondWidth, "Overlaps with Storage Shelf"}, got.Issues)
}

func TestValidateOverlapRules(t *testing.T) {
	sofa := mustModel(t, catalog.SofaID)
	table := mustModel(t, catalog.CoffeeTableID)
	rug := mustModel(t, catalog.RugID)
	center := models.Position{X: 2, Z: 2}

	withSofa := []models.PlacedFurniture{{Model: sofa, Position: center}}
	got := Validate(table, models.Position{X: 2, Z: 2.5}, room4x4(), withSofa)
	assert.Equal(t, []string{"Overlaps with Living Room Sofa"}, got.Issues)

	// Rugs neither block nor get blocked.
	withRug := []models.PlacedFurniture{{Model: rug, Position: center}}
	assert.True(t, Validate(table, center, room4x4(), withRug).Valid)
	assert.True(t, Validate(rug, center, room4x4(), withSofa).Valid)

	twoSofas := []models.PlacedFurniture{
		{Model: sofa, Position: models.Position{X: 1.5, Z: 2}},
		{Model: sofa, Position: models.Position{X: 2.5, Z: 2}},
	}
	got = Validate(table, center, room4x4(), twoSofas)
	assert.Len(t, got.Issues, 2)
}

func TestValidateWallPainting(t *testing.T) {
	painting := mustModel(t, catalog.PaintingID)

	got := Validate(painting, models.Position{X: 1, Y: 1.5, Z: 0.06}, room4x4(), nil)
	assert.True(t, got.Valid, got.Issues)

	// The footprint is 0.0565 m deep, so a center 2 cm off the wall pokes through it.
	got = Validate(painting, models.Position{X: 1, Y: 1.5, Z: 0.02}, room4x4(), nil)
	assert.Equal(t, []string{IssueBeyondDepth}, got.Issues)

	// Height is never checked against the room.
	got = Validate(painting, models.Position{X: 1, Y: 40, Z: 0.06}, room4x4(), nil)
	assert.True(t, got.Valid)
}
