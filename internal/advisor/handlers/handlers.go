package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"room-planner/internal/advisor/models"
	"room-planner/internal/advisor/placement"
)

// ============================================================
// Advisor Handler
// ============================================================

type Handler struct {
	advisor *placement.Advisor
	log     *zap.Logger
}

func New(advisor *placement.Advisor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{advisor: advisor, log: log.Named("advisor")}
}

// Register mounts the advisor routes on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/catalog", h.ListCatalog)
	r.Get("/catalog/:id", h.GetFurniture)
	r.Post("/suggest", h.Suggest)
	r.Post("/suggest/batch", h.SuggestBatch)
	r.Post("/validate", h.Validate)
	r.Post("/best", h.Best)
	r.Post("/arrange", h.Arrange)
	r.Post("/floorplan/room", h.FloorplanRoom)
	r.Post("/export", h.Export)
}

// ============================================================
// Requests
// ============================================================

type suggestRequest struct {
	FurnitureID string                `json:"furnitureId"`
	Room        models.RoomDimensions `json:"room"`
	Existing    []models.PlacedRef    `json:"existing"`
}

type batchRequest struct {
	FurnitureIDs []string              `json:"furnitureIds"`
	Room         models.RoomDimensions `json:"room"`
	Existing     []models.PlacedRef    `json:"existing"`
}

type validateRequest struct {
	FurnitureID string                `json:"furnitureId"`
	Position    models.Position       `json:"position"`
	Room        models.RoomDimensions `json:"room"`
	Existing    []models.PlacedRef    `json:"existing"`
}

type exportRequest struct {
	Name     string                `json:"name"`
	Room     models.RoomDimensions `json:"room"`
	Existing []models.PlacedRef    `json:"existing"`
}

// ============================================================
// Helpers
// ============================================================

// badRequest is returned by decode for client mistakes.
type badRequest struct {
	msg string
}

func (e *badRequest) Error() string { return e.msg }

func decode(c fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return &badRequest{msg: "body required"}
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return &badRequest{msg: "invalid JSON payload"}
	}
	return nil
}

func checkRoom(room models.RoomDimensions) error {
	if room.Width <= 0 || room.Depth <= 0 || room.Height <= 0 {
		return &badRequest{msg: "room width, depth and height must be positive"}
	}
	return nil
}

func (h *Handler) fail(c fiber.Ctx, err error) error {
	var bad *badRequest
	switch {
	case errors.As(err, &bad):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": bad.msg})
	case errors.Is(err, placement.ErrUnknownFurniture):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// context resolves the archetype and the existing furniture of a request.
func (h *Handler) context(id string, room models.RoomDimensions, refs []models.PlacedRef) (models.FurnitureModel, []models.PlacedFurniture, error) {
	if err := checkRoom(room); err != nil {
		return models.FurnitureModel{}, nil, err
	}
	if id == "" {
		return models.FurnitureModel{}, nil, &badRequest{msg: "furnitureId required"}
	}
	model, err := h.advisor.Resolve(id)
	if err != nil {
		return models.FurnitureModel{}, nil, err
	}
	existing, err := h.advisor.ResolvePlaced(refs)
	if err != nil {
		return models.FurnitureModel{}, nil, err
	}
	return model, existing, nil
}

// ============================================================
// Catalog
// ============================================================

// ListCatalog returns the catalog, optionally filtered by category and zone.
func (h *Handler) ListCatalog(c fiber.Ctx) error {
	items, err := h.advisor.Catalog().Filter(models.Category(c.Query("category")), models.Zone(c.Query("zone")))
	if err != nil {
		return h.fail(c, &badRequest{msg: err.Error()})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) GetFurniture(c fiber.Ctx) error {
	model, err := h.advisor.Resolve(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(model)
}

// ============================================================
// Placement
// ============================================================

func (h *Handler) Suggest(c fiber.Ctx) error {
	var req suggestRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}

	model, existing, err := h.context(req.FurnitureID, req.Room, req.Existing)
	if err != nil {
		return h.fail(c, err)
	}

	suggestions := h.advisor.Suggest(model, req.Room, existing)
	h.log.Debug("suggested placements",
		zap.String("furniture", model.ID),
		zap.Int("existing", len(existing)),
		zap.Int("suggestions", len(suggestions)))

	return c.JSON(fiber.Map{"furnitureId": model.ID, "suggestions": suggestions})
}

// SuggestBatch evaluates several archetypes against the same room in parallel.
func (h *Handler) SuggestBatch(c fiber.Ctx) error {
	var req batchRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := checkRoom(req.Room); err != nil {
		return h.fail(c, err)
	}
	if len(req.FurnitureIDs) == 0 {
		return h.fail(c, &badRequest{msg: "furnitureIds required"})
	}

	existing, err := h.advisor.ResolvePlaced(req.Existing)
	if err != nil {
		return h.fail(c, err)
	}

	results, err := h.advisor.SuggestMany(c.Context(), req.FurnitureIDs, req.Room, existing)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": results})
}

func (h *Handler) Validate(c fiber.Ctx) error {
	var req validateRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}

	model, existing, err := h.context(req.FurnitureID, req.Room, req.Existing)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(h.advisor.Validate(model, req.Position, req.Room, existing))
}

// Best returns the top valid suggestion, or the room-center fallback.
func (h *Handler) Best(c fiber.Ctx) error {
	var req suggestRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}

	model, existing, err := h.context(req.FurnitureID, req.Room, req.Existing)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(h.advisor.Best(model, req.Room, existing))
}

// Arrange places the requested archetypes one after another.
func (h *Handler) Arrange(c fiber.Ctx) error {
	var req batchRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := checkRoom(req.Room); err != nil {
		return h.fail(c, err)
	}

	existing, err := h.advisor.ResolvePlaced(req.Existing)
	if err != nil {
		return h.fail(c, err)
	}

	placed, err := h.advisor.Arrange(c.Context(), req.FurnitureIDs, req.Room, existing)
	if err != nil {
		return h.fail(c, err)
	}

	out := make([]models.PlacedRef, 0, len(placed))
	for _, p := range placed {
		out = append(out, models.PlacedRef{FurnitureID: p.Model.ID, Position: p.Position, Rotation: p.Rotation})
	}
	return c.JSON(fiber.Map{"placed": out})
}
