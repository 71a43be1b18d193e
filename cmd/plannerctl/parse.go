package main

import (
	"fmt"
	"strconv"
	"strings"

	"room-planner/internal/advisor/models"
)

// ============================================================
// Flag parsing
// ============================================================

// parseRoom reads "WxDxH" in meters, for example "5x4x2.5".
func parseRoom(s string) (models.RoomDimensions, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 3 {
		return models.RoomDimensions{}, fmt.Errorf("room %q: want WIDTHxDEPTHxHEIGHT", s)
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return models.RoomDimensions{}, fmt.Errorf("room %q: %w", s, err)
	}
	room := models.RoomDimensions{Width: vals[0], Depth: vals[1], Height: vals[2]}
	if room.Width <= 0 || room.Depth <= 0 || room.Height <= 0 {
		return models.RoomDimensions{}, fmt.Errorf("room %q: dimensions must be positive", s)
	}
	return room, nil
}

// parsePosition reads "x,y,z".
func parsePosition(s string) (models.Position, error) {
	vals, err := parseFloats(strings.Split(s, ","))
	if err != nil {
		return models.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	if len(vals) != 3 {
		return models.Position{}, fmt.Errorf("position %q: want x,y,z", s)
	}
	return models.Position{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// parsePlaced reads "id@x,y,z" with an optional ",rotation" suffix.
func parsePlaced(s string) (models.PlacedRef, error) {
	id, coords, ok := strings.Cut(s, "@")
	if !ok || id == "" {
		return models.PlacedRef{}, fmt.Errorf("existing %q: want id@x,y,z[,rotation]", s)
	}
	vals, err := parseFloats(strings.Split(coords, ","))
	if err != nil {
		return models.PlacedRef{}, fmt.Errorf("existing %q: %w", s, err)
	}
	if len(vals) != 3 && len(vals) != 4 {
		return models.PlacedRef{}, fmt.Errorf("existing %q: want id@x,y,z[,rotation]", s)
	}

	ref := models.PlacedRef{
		FurnitureID: id,
		Position:    models.Position{X: vals[0], Y: vals[1], Z: vals[2]},
	}
	if len(vals) == 4 {
		ref.Rotation = vals[3]
	}
	return ref, nil
}

func parseFloats(parts []string) ([]float64, error) {
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		out = append(out, v)
	}
	return out, nil
}
