package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	advisor "room-planner/internal/advisor/models"
	"room-planner/internal/advisor/placement"
	"room-planner/internal/layouts/models"
	"room-planner/internal/layouts/repository"
	"room-planner/internal/layouts/service"
)

// ============================================================
// Layouts Handler
// ============================================================

type LayoutHandler struct {
	svc *service.Service
	log *zap.Logger
}

func NewLayoutHandler(svc *service.Service, log *zap.Logger) *LayoutHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LayoutHandler{svc: svc, log: log.Named("layouts.http")}
}

func (h *LayoutHandler) Register(r fiber.Router) {
	r.Post("/layouts", h.CreateLayout)
	r.Get("/layouts", h.ListLayouts)
	r.Get("/layouts/:id", h.GetLayout)
	r.Delete("/layouts/:id", h.DeleteLayout)
	r.Post("/layouts/:id/items", h.PlaceItem)
	r.Delete("/layouts/:id/items/:itemId", h.RemoveItem)
	r.Get("/layouts/:id/suggest", h.Suggest)
	r.Get("/layouts/:id/planner", h.Planner)
}

// layoutResponse always carries the items key, even for an empty layout.
type layoutResponse struct {
	*models.Layout
	Items []models.Item `json:"items"`
}

type createLayoutRequest struct {
	Name string                 `json:"name"`
	Room advisor.RoomDimensions `json:"room"`
}

// respond maps service errors onto status codes.
func (h *LayoutHandler) respond(c fiber.Ctx, err error) error {
	var perr *service.PlacementError
	switch {
	case errors.As(err, &perr):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": perr.Error(), "issues": perr.Issues})
	case errors.Is(err, service.ErrInvalidLayout):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, placement.ErrUnknownFurniture):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// decode reads a JSON body into dst and returns a client error message, or "".
func decode(c fiber.Ctx, dst any) string {
	if len(c.Body()) == 0 {
		return "empty body"
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return "invalid json"
	}
	return ""
}

// ============================================================
// Layouts
// ============================================================

func (h *LayoutHandler) CreateLayout(c fiber.Ctx) error {
	var req createLayoutRequest
	if msg := decode(c, &req); msg != "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	l, err := h.svc.CreateLayout(c.Context(), req.Name, req.Room)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(http.StatusCreated).JSON(l)
}

func (h *LayoutHandler) ListLayouts(c fiber.Ctx) error {
	layouts, err := h.svc.ListLayouts(c.Context())
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(fiber.Map{"layouts": layouts})
}

// GetLayout returns the layout with its items.
func (h *LayoutHandler) GetLayout(c fiber.Ctx) error {
	l, err := h.svc.GetLayout(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(layoutResponse{Layout: l, Items: l.Items})
}

func (h *LayoutHandler) DeleteLayout(c fiber.Ctx) error {
	if err := h.svc.DeleteLayout(c.Context(), c.Params("id")); err != nil {
		return h.respond(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ============================================================
// Items
// ============================================================

// PlaceItem stores a furniture placement. A placement that fails validation
// answers 409 with the issues unless "force" is set in the body.
func (h *LayoutHandler) PlaceItem(c fiber.Ctx) error {
	var req service.PlaceRequest
	if msg := decode(c, &req); msg != "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.FurnitureID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "furnitureId required"})
	}

	item, result, err := h.svc.PlaceItem(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"item": item, "validation": result})
}

func (h *LayoutHandler) RemoveItem(c fiber.Ctx) error {
	if err := h.svc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return h.respond(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Suggest proposes placements for ?furnitureId= given what the layout holds.
func (h *LayoutHandler) Suggest(c fiber.Ctx) error {
	furnitureID := c.Query("furnitureId")
	if furnitureID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "furnitureId query parameter required"})
	}

	suggestions, err := h.svc.Suggest(c.Context(), c.Params("id"), furnitureID)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(fiber.Map{"furnitureId": furnitureID, "suggestions": suggestions})
}

// Planner exports the layout as react-planner JSON.
func (h *LayoutHandler) Planner(c fiber.Ctx) error {
	scene, err := h.svc.Export(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(scene)
}
