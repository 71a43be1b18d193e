package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	advisor "room-planner/internal/advisor/models"
	"room-planner/internal/advisor/placement"
	"room-planner/internal/advisor/planner"
	"room-planner/internal/layouts/models"
)

// ============================================================
// Layout Service
// ============================================================

var ErrInvalidLayout = errors.New("invalid layout")

// Store is the persistence the service needs; *repository.Repository implements it.
type Store interface {
	CreateLayout(ctx context.Context, name string, room advisor.RoomDimensions) (*models.Layout, error)
	GetLayout(ctx context.Context, id string) (*models.Layout, error)
	ListLayouts(ctx context.Context) ([]models.Layout, error)
	DeleteLayout(ctx context.Context, id string) error
	AddItem(ctx context.Context, layoutID, furnitureID string, pos advisor.Position, rotation float64) (*models.Item, error)
	ListItems(ctx context.Context, layoutID string) ([]models.Item, error)
	RemoveItem(ctx context.Context, layoutID, itemID string) error
}

// PlacementError reports a placement refused because it failed validation.
type PlacementError struct {
	FurnitureID string
	Issues      []string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement of %q rejected: %s", e.FurnitureID, strings.Join(e.Issues, "; "))
}

type Service struct {
	store   Store
	advisor *placement.Advisor
	log     *zap.Logger
	locks   layoutLocks
}

func New(store Store, adv *placement.Advisor, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, advisor: adv, log: log.Named("layouts")}
}

// PlaceRequest describes an item to add to a layout. With Auto set the
// position and rotation are ignored and the best suggestion is used.
type PlaceRequest struct {
	FurnitureID string           `json:"furnitureId"`
	Position    advisor.Position `json:"position"`
	Rotation    float64          `json:"rotation"`
	Auto        bool             `json:"auto"`
	Force       bool             `json:"force"`
}

// ============================================================
// Layouts
// ============================================================

func (s *Service) CreateLayout(ctx context.Context, name string, room advisor.RoomDimensions) (*models.Layout, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidLayout)
	}
	if room.Width <= 0 || room.Depth <= 0 || room.Height <= 0 {
		return nil, fmt.Errorf("%w: room width, depth and height must be positive", ErrInvalidLayout)
	}

	l, err := s.store.CreateLayout(ctx, name, room)
	if err != nil {
		return nil, err
	}
	s.log.Info("layout created", zap.String("id", l.ID), zap.String("name", name))
	return l, nil
}

// GetLayout returns the layout with its items.
func (s *Service) GetLayout(ctx context.Context, id string) (*models.Layout, error) {
	l, err := s.store.GetLayout(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Items = items
	return l, nil
}

func (s *Service) ListLayouts(ctx context.Context) ([]models.Layout, error) {
	return s.store.ListLayouts(ctx)
}

func (s *Service) DeleteLayout(ctx context.Context, id string) error {
	if err := s.store.DeleteLayout(ctx, id); err != nil {
		return err
	}
	s.log.Info("layout deleted", zap.String("id", id))
	return nil
}

// ============================================================
// Items
// ============================================================

// PlaceItem validates the placement against the items already in the layout
// and stores it. Invalid placements are refused with *PlacementError unless
// req.Force is set; the validation result is returned either way.
func (s *Service) PlaceItem(ctx context.Context, layoutID string, req PlaceRequest) (*models.Item, advisor.ValidationResult, error) {
	// validation must see every item stored before the insert below
	unlock := s.locks.lock(layoutID)
	defer unlock()

	l, placed, err := s.context(ctx, layoutID)
	if err != nil {
		return nil, advisor.ValidationResult{}, err
	}

	model, err := s.advisor.Resolve(req.FurnitureID)
	if err != nil {
		return nil, advisor.ValidationResult{}, err
	}

	pos, rotation := req.Position, req.Rotation
	if req.Auto {
		best := s.advisor.Best(model, l.Room, placed)
		pos, rotation = best.Position, best.Rotation
	}

	result := s.advisor.Validate(model, pos, l.Room, placed)
	if !result.Valid && !req.Force {
		s.log.Info("placement rejected",
			zap.String("layout", layoutID),
			zap.String("furniture", model.ID),
			zap.Strings("issues", result.Issues))
		return nil, result, &PlacementError{FurnitureID: model.ID, Issues: result.Issues}
	}

	item, err := s.store.AddItem(ctx, layoutID, model.ID, pos, rotation)
	if err != nil {
		return nil, result, err
	}
	s.log.Debug("item placed",
		zap.String("layout", layoutID),
		zap.String("item", item.ID),
		zap.Bool("valid", result.Valid))
	return item, result, nil
}

func (s *Service) RemoveItem(ctx context.Context, layoutID, itemID string) error {
	return s.store.RemoveItem(ctx, layoutID, itemID)
}

// Suggest proposes placements for furnitureID in the stored room, using
// the stored items as context.
func (s *Service) Suggest(ctx context.Context, layoutID, furnitureID string) ([]advisor.PlacementSuggestion, error) {
	l, placed, err := s.context(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	return s.advisor.SuggestByID(furnitureID, l.Room, placed)
}

// Export renders the layout as a react-planner scene.
func (s *Service) Export(ctx context.Context, layoutID string) (*planner.Scene, error) {
	l, placed, err := s.context(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	return planner.Export(l.Name, l.Room, placed), nil
}

// context loads a layout and resolves its items through the catalog.
func (s *Service) context(ctx context.Context, layoutID string) (*models.Layout, []advisor.PlacedFurniture, error) {
	l, err := s.GetLayout(ctx, layoutID)
	if err != nil {
		return nil, nil, err
	}

	refs := make([]advisor.PlacedRef, 0, len(l.Items))
	for _, it := range l.Items {
		refs = append(refs, it.Ref())
	}
	placed, err := s.advisor.ResolvePlaced(refs)
	if err != nil {
		return nil, nil, fmt.Errorf("layout %q: %w", layoutID, err)
	}
	return l, placed, nil
}

// ============================================================
// Per-layout locks
// ============================================================

// layoutLocks serializes placements per layout id. Entries are reference
// counted and dropped when no caller holds or waits for them.
type layoutLocks struct {
	mu sync.Mutex
	m  map[string]*layoutLock
}

type layoutLock struct {
	mu   sync.Mutex
	refs int
}

func (l *layoutLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*layoutLock)
	}
	e, ok := l.m[id]
	if !ok {
		e = &layoutLock{}
		l.m[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}
