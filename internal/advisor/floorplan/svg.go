package floorplan

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"room-planner/internal/advisor/models"
)

// ============================================================
// XML Structures
// ============================================================

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	svgNode
}

// svgNode holds the drawable children of <svg> or <g>.
type svgNode struct {
	Rects  []svgRect `xml:"rect"`
	Paths  []svgPath `xml:"path"`
	Groups []svgNode `xml:"g"`
}

type svgRect struct {
	ID     string  `xml:"id,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type svgPath struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

// ============================================================
// Room extraction
// ============================================================

const (
	DefaultUnitsPerMeter = 100.0 // plans are drawn in centimeters
	DefaultRoomHeight    = 2.5
)

var (
	ErrNoRoom           = errors.New("floor plan has no room or wall elements")
	ErrDegenerateBounds = errors.New("floor plan room has zero area")
)

// Bounds is an axis-aligned rectangle in plan units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func emptyBounds() Bounds {
	return Bounds{MinX: math.MaxFloat64, MinY: math.MaxFloat64, MaxX: -math.MaxFloat64, MaxY: -math.MaxFloat64}
}

func (b *Bounds) add(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

func (b Bounds) empty() bool {
	return b.MinX > b.MaxX
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ParseRoom reads a floor-plan SVG and returns the room dimensions in meters.
// Room elements take precedence; walls are used when the plan has no rooms.
// The plan's Y axis maps to room depth.
func ParseRoom(r io.Reader, unitsPerMeter float64) (models.RoomDimensions, error) {
	if unitsPerMeter <= 0 {
		unitsPerMeter = DefaultUnitsPerMeter
	}

	b, err := PlanBounds(r)
	if err != nil {
		return models.RoomDimensions{}, err
	}

	return models.RoomDimensions{
		Width:  b.Width() / unitsPerMeter,
		Depth:  b.Height() / unitsPerMeter,
		Height: DefaultRoomHeight,
	}, nil
}

// PlanBounds returns the bounding box of the room elements (or walls) in plan units.
func PlanBounds(r io.Reader) (Bounds, error) {
	var doc svgDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Bounds{}, fmt.Errorf("parse SVG: %w", err)
	}

	rooms, walls := emptyBounds(), emptyBounds()
	if err := collect(doc.svgNode, &rooms, &walls); err != nil {
		return Bounds{}, err
	}

	b := rooms
	if b.empty() {
		b = walls
	}
	if b.empty() {
		return Bounds{}, ErrNoRoom
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		return Bounds{}, ErrDegenerateBounds
	}
	return b, nil
}

func collect(node svgNode, rooms, walls *Bounds) error {
	for _, rect := range node.Rects {
		target := pick(classifyElementByID(rect.ID), rooms, walls)
		if target == nil {
			continue
		}
		target.add(Point{X: rect.X, Y: rect.Y})
		target.add(Point{X: rect.X + rect.Width, Y: rect.Y + rect.Height})
	}

	for _, path := range node.Paths {
		target := pick(classifyElementByID(path.ID), rooms, walls)
		if target == nil {
			continue
		}
		points, err := ParsePath(path.D)
		if err != nil {
			return fmt.Errorf("element %s: %w", path.ID, err)
		}
		for _, p := range points {
			target.add(p)
		}
	}

	for _, g := range node.Groups {
		if err := collect(g, rooms, walls); err != nil {
			return err
		}
	}
	return nil
}

func pick(kind string, rooms, walls *Bounds) *Bounds {
	switch kind {
	case "room":
		return rooms
	case "wall":
		return walls
	}
	return nil
}

func classifyElementByID(id string) string {
	switch {
	case strings.HasPrefix(id, "Wall_"), strings.HasPrefix(id, "Hui_Wall_"):
		return "wall"
	case strings.HasPrefix(id, "Room_"), strings.HasSuffix(id, "_room"), strings.HasSuffix(id, "_Room"):
		return "room"
	}
	return ""
}
