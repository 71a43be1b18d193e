package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"room-planner/internal/advisor/floorplan"
	"room-planner/internal/advisor/planner"
)

// ============================================================
// Floor plan & export
// ============================================================

// FloorplanRoom derives room dimensions from an uploaded SVG floor plan.
func (h *Handler) FloorplanRoom(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return h.fail(c, &badRequest{msg: "file required in multipart/form-data"})
	}

	unitsPerMeter := floorplan.DefaultUnitsPerMeter
	if raw := c.FormValue("unitsPerMeter"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return h.fail(c, &badRequest{msg: "unitsPerMeter must be a positive number"})
		}
		unitsPerMeter = v
	}

	f, err := file.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()

	room, err := floorplan.ParseRoom(f, unitsPerMeter)
	if err != nil {
		h.log.Info("floor plan rejected", zap.String("file", file.Filename), zap.Error(err))
		status := http.StatusBadRequest
		if errors.Is(err, floorplan.ErrNoRoom) || errors.Is(err, floorplan.ErrDegenerateBounds) {
			status = http.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Debug("floor plan parsed",
		zap.String("file", file.Filename),
		zap.Float64("width", room.Width),
		zap.Float64("depth", room.Depth))
	return c.JSON(room)
}

// Export converts a room and its furniture into react-planner JSON.
func (h *Handler) Export(c fiber.Ctx) error {
	var req exportRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := checkRoom(req.Room); err != nil {
		return h.fail(c, err)
	}

	placed, err := h.advisor.ResolvePlaced(req.Existing)
	if err != nil {
		return h.fail(c, err)
	}

	name := req.Name
	if name == "" {
		name = "room"
	}
	return c.JSON(planner.Export(name, req.Room, placed))
}
