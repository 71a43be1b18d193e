package placement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAdvisorResolve(t *testing.T) {
	a := NewAdvisor(nil)

	sofa, err := a.Resolve(catalog.SofaID)
	require.NoError(t, err)
	assert.Equal(t, "Living Room Sofa", sofa.Name)

	_, err = a.Resolve("bean-bag")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFurniture))
	assert.Contains(t, err.Error(), "bean-bag")

	placed, err := a.ResolvePlaced([]models.PlacedRef{
		{FurnitureID: catalog.SofaID, Position: models.Position{X: 2, Z: 0.5}, Rotation: 180},
	})
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, 180.0, placed[0].Rotation)

	_, err = a.ResolvePlaced([]models.PlacedRef{{FurnitureID: "nope"}})
	assert.ErrorIs(t, err, ErrUnknownFurniture)
}

func TestAdvisorSuggestByID(t *testing.T) {
	a := NewAdvisor(catalog.Default())

	got, err := a.SuggestByID("shelf-1", room4x4(), nil)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = a.SuggestByID("missing", room4x4(), nil)
	assert.ErrorIs(t, err, ErrUnknownFurniture)
}

func TestAdvisorBest(t *testing.T) {
	a := NewAdvisor(nil)
	sofa := mustModel(t, catalog.SofaID)
	table := mustModel(t, catalog.CoffeeTableID)

	existing := []models.PlacedFurniture{{Model: sofa, Position: models.Position{X: 2, Z: 2}}}
	best := a.Best(table, room4x4(), existing)
	assert.Equal(t, SofaRelativeConfidence, best.Confidence)
	assert.InDelta(t, 3.2, best.Position.Z, eps)

	tiny := models.RoomDimensions{Width: 1, Depth: 1, Height: 2}
	best = a.Best(sofa, tiny, nil)
	assert.Equal(t, FallbackConfidence, best.Confidence)
	assert.Equal(t, models.Position{X: 0.5, Y: 0, Z: 0.5}, best.Position)

	painting := mustModel(t, catalog.PaintingID)
	best = a.Best(painting, models.RoomDimensions{Width: 0.5, Depth: 0.5, Height: 2}, nil)
	assert.Equal(t, FallbackConfidence, best.Confidence)
	assert.Equal(t, 1.5, best.Position.Y)
}

func TestAdvisorArrange(t *testing.T) {
	a := NewAdvisor(nil)
	room := models.RoomDimensions{Width: 5, Depth: 4, Height: 2.5}

	placed, err := a.Arrange(context.Background(), []string{catalog.SofaID, catalog.CoffeeTableID, catalog.RugID}, room, nil)
	require.NoError(t, err)
	require.Len(t, placed, 3)

	// No wall spot fits a 1.55 m deep sofa at 0.1 m clearance, so it goes to the center.
	assert.Equal(t, catalog.SofaID, placed[0].Model.ID)
	assert.Equal(t, models.Position{X: 2.5, Y: 0, Z: 2}, placed[0].Position)

	assert.Equal(t, catalog.CoffeeTableID, placed[1].Model.ID)
	assert.InDelta(t, 2.5, placed[1].Position.X, eps)
	assert.InDelta(t, 3.2, placed[1].Position.Z, eps)

	assert.Equal(t, catalog.RugID, placed[2].Model.ID)
	assert.Equal(t, models.Position{X: 2.5, Y: 0, Z: 2}, placed[2].Position)

	for i, item := range placed {
		others := append(append([]models.PlacedFurniture{}, placed[:i]...), placed[i+1:]...)
		assert.True(t, Validate(item.Model, item.Position, room, others).Valid, item.Model.ID)
	}
}

func TestAdvisorArrangeKeepsExisting(t *testing.T) {
	a := NewAdvisor(nil)
	sofa := mustModel(t, catalog.SofaID)
	existing := []models.PlacedFurniture{{Model: sofa, Position: models.Position{X: 2, Z: 1}}}

	placed, err := a.Arrange(context.Background(), []string{catalog.CoffeeTableID}, room4x4(), existing)
	require.NoError(t, err)
	require.Len(t, placed, 2)
	assert.Equal(t, existing[0], placed[0])
	assert.InDelta(t, 2.2, placed[1].Position.Z, eps)

	_, err = a.Arrange(context.Background(), []string{"unknown"}, room4x4(), nil)
	assert.ErrorIs(t, err, ErrUnknownFurniture)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Arrange(ctx, []string{catalog.SofaID}, room4x4(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdvisorSuggestMany(t *testing.T) {
	a := NewAdvisor(nil)
	ids := []string{"painting-1", "pot-1", "rug-1", "shelf-1", "sofa-1", "table-1", "table-2"}

	got, err := a.SuggestMany(context.Background(), ids, room4x4(), nil)
	require.NoError(t, err)
	require.Len(t, got, len(ids))

	for _, id := range ids {
		model := mustModel(t, id)
		assert.Equal(t, Suggest(model, room4x4(), nil), got[id], id)
	}

	_, err = a.SuggestMany(context.Background(), []string{"sofa-1", "ghost"}, room4x4(), nil)
	assert.ErrorIs(t, err, ErrUnknownFurniture)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.SuggestMany(ctx, ids, room4x4(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
