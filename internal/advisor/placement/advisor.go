package placement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/models"
)

// ============================================================
// Advisor
// ============================================================

var ErrUnknownFurniture = errors.New("unknown furniture id")

// Advisor binds the placement heuristics to a catalog so callers can work
// with archetype ids. It holds no state besides the read-only catalog.
type Advisor struct {
	catalog *catalog.Catalog
}

func NewAdvisor(c *catalog.Catalog) *Advisor {
	if c == nil {
		c = catalog.Default()
	}
	return &Advisor{catalog: c}
}

func (a *Advisor) Catalog() *catalog.Catalog {
	return a.catalog
}

// Resolve looks up an archetype, wrapping ErrUnknownFurniture with the id.
func (a *Advisor) Resolve(id string) (models.FurnitureModel, error) {
	model, ok := a.catalog.ByID(id)
	if !ok {
		return models.FurnitureModel{}, fmt.Errorf("%w: %q", ErrUnknownFurniture, id)
	}
	return model, nil
}

// ResolvePlaced turns wire references into placed furniture records.
func (a *Advisor) ResolvePlaced(refs []models.PlacedRef) ([]models.PlacedFurniture, error) {
	out := make([]models.PlacedFurniture, 0, len(refs))
	for _, ref := range refs {
		model, err := a.Resolve(ref.FurnitureID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.PlacedFurniture{
			Model:    model,
			Position: ref.Position,
			Rotation: ref.Rotation,
		})
	}
	return out, nil
}

func (a *Advisor) Suggest(furniture models.FurnitureModel, room models.RoomDimensions, existing []models.PlacedFurniture) []models.PlacementSuggestion {
	return Suggest(furniture, room, existing)
}

func (a *Advisor) Validate(furniture models.FurnitureModel, position models.Position, room models.RoomDimensions, existing []models.PlacedFurniture) models.ValidationResult {
	return Validate(furniture, position, room, existing)
}

// SuggestByID resolves id against the catalog before suggesting.
func (a *Advisor) SuggestByID(id string, room models.RoomDimensions, existing []models.PlacedFurniture) ([]models.PlacementSuggestion, error) {
	model, err := a.Resolve(id)
	if err != nil {
		return nil, err
	}
	return Suggest(model, room, existing), nil
}

// Best returns the highest ranked suggestion that validates. When nothing
// validates it falls back to the room center with FallbackConfidence.
func (a *Advisor) Best(furniture models.FurnitureModel, room models.RoomDimensions, existing []models.PlacedFurniture) models.PlacementSuggestion {
	for _, s := range Suggest(furniture, room, existing) {
		if Validate(furniture, s.Position, room, existing).Valid {
			return s
		}
	}

	center := room.Center()
	center.Y = baseHeight(furniture.PlacementRules)
	return models.PlacementSuggestion{
		Position:   center,
		Rotation:   0,
		Confidence: FallbackConfidence,
		Reason:     "No rule produced a valid spot; defaulting to room center",
	}
}

// SuggestMany evaluates several archetypes concurrently against the same room.
func (a *Advisor) SuggestMany(ctx context.Context, ids []string, room models.RoomDimensions, existing []models.PlacedFurniture) (map[string][]models.PlacementSuggestion, error) {
	var mu sync.Mutex
	results := make(map[string][]models.PlacementSuggestion, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			suggestions, err := a.SuggestByID(id, room, existing)
			if err != nil {
				return err
			}
			mu.Lock()
			results[id] = suggestions
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Arrange places ids in order, each at its best spot given everything placed
// before it. The returned slice starts with existing.
func (a *Advisor) Arrange(ctx context.Context, ids []string, room models.RoomDimensions, existing []models.PlacedFurniture) ([]models.PlacedFurniture, error) {
	placed := append([]models.PlacedFurniture(nil), existing...)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		model, err := a.Resolve(id)
		if err != nil {
			return nil, err
		}
		best := a.Best(model, room, placed)
		placed = append(placed, models.PlacedFurniture{
			Model:    model,
			Position: best.Position,
			Rotation: best.Rotation,
		})
	}
	return placed, nil
}
