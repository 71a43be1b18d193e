package models

// ============================================================
// Enumerations
// ============================================================

type Category string

const (
	CategorySeating    Category = "seating"
	CategoryTable      Category = "table"
	CategoryStorage    Category = "storage"
	CategoryDecor      Category = "decor"
	CategoryFloorDecor Category = "floor_decor"
	CategoryWallDecor  Category = "wall_decor"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySeating, CategoryTable, CategoryStorage, CategoryDecor, CategoryFloorDecor, CategoryWallDecor:
		return true
	}
	return false
}

type Zone string

const (
	ZoneFloor    Zone = "floor"
	ZoneWall     Zone = "wall"
	ZoneCorner   Zone = "corner"
	ZoneCenter   Zone = "center"
	ZoneAnywhere Zone = "anywhere"
)

func (z Zone) Valid() bool {
	switch z {
	case ZoneFloor, ZoneWall, ZoneCorner, ZoneCenter, ZoneAnywhere:
		return true
	}
	return false
}

type Orientation string

const (
	OrientationFixed       Orientation = "fixed"
	OrientationRotatable   Orientation = "rotatable"
	OrientationWallAligned Orientation = "wall_aligned"
)

func (o Orientation) Valid() bool {
	switch o {
	case OrientationFixed, OrientationRotatable, OrientationWallAligned:
		return true
	}
	return false
}

// ============================================================
// Furniture archetypes
// ============================================================

// FurnitureDimensions are model-space extents; Scale converts them to meters.
type FurnitureDimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Depth  float64 `json:"depth" yaml:"depth"`
	Scale  float64 `json:"scale" yaml:"scale"`
}

// ScaledWidth returns the room-space extent along X.
func (d FurnitureDimensions) ScaledWidth() float64 {
	return d.Width * d.Scale
}

// ScaledDepth returns the room-space extent along Z.
func (d FurnitureDimensions) ScaledDepth() float64 {
	return d.Depth * d.Scale
}

func (d FurnitureDimensions) ScaledHeight() float64 {
	return d.Height * d.Scale
}

type PlacementRules struct {
	PrimaryZone          Zone        `json:"primaryZone" yaml:"primaryZone"`
	SecondaryZones       []Zone      `json:"secondaryZones" yaml:"secondaryZones"`
	MinDistanceFromWall  float64     `json:"minDistanceFromWall" yaml:"minDistanceFromWall"`
	MaxDistanceFromWall  float64     `json:"maxDistanceFromWall" yaml:"maxDistanceFromWall"`
	Orientation          Orientation `json:"orientation" yaml:"orientation"`
	CanStack             bool        `json:"canStack" yaml:"canStack"`
	RequiresFloorContact bool        `json:"requiresFloorContact" yaml:"requiresFloorContact"`
	PreferredHeight      *float64    `json:"preferredHeight,omitempty" yaml:"preferredHeight,omitempty"`
	AvoidOverlap         bool        `json:"avoidOverlap" yaml:"avoidOverlap"`
}

// AllowsZone reports whether zone is the primary zone or one of the fallbacks.
func (r PlacementRules) AllowsZone(zone Zone) bool {
	if r.PrimaryZone == zone {
		return true
	}
	for _, z := range r.SecondaryZones {
		if z == zone {
			return true
		}
	}
	return false
}

type FurnitureModel struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name" yaml:"name"`
	FileName       string              `json:"fileName" yaml:"fileName"`
	Category       Category            `json:"category" yaml:"category"`
	Dimensions     FurnitureDimensions `json:"dimensions" yaml:"dimensions"`
	PlacementRules PlacementRules      `json:"placementRules" yaml:"placementRules"`
	Tags           []string            `json:"tags" yaml:"tags"`
	Description    string              `json:"description" yaml:"description"`
}

// Clone returns a deep copy so catalog entries never share slices with callers.
func (f FurnitureModel) Clone() FurnitureModel {
	out := f
	out.Tags = append([]string(nil), f.Tags...)
	out.PlacementRules.SecondaryZones = append([]Zone(nil), f.PlacementRules.SecondaryZones...)
	if f.PlacementRules.PreferredHeight != nil {
		h := *f.PlacementRules.PreferredHeight
		out.PlacementRules.PreferredHeight = &h
	}
	return out
}

// ============================================================
// Room geometry
// ============================================================

// Position is room-local: origin at a room corner, X along width, Z along depth.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type RoomDimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Center returns the floor-level center of the room.
func (r RoomDimensions) Center() Position {
	return Position{X: r.Width / 2, Y: 0, Z: r.Depth / 2}
}

// PlacedFurniture is a caller-owned instance of an archetype in a room.
type PlacedFurniture struct {
	Model    FurnitureModel `json:"model"`
	Position Position       `json:"position"`
	Rotation float64        `json:"rotation"` // degrees around Y
}

// ============================================================
// Advisor results
// ============================================================

type PlacementSuggestion struct {
	Position   Position `json:"position"`
	Rotation   float64  `json:"rotation"`
	Confidence float64  `json:"confidence"`
	Reason     string   `json:"reason"`
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// PlacedRef identifies a placed item by archetype id, as sent over the wire.
type PlacedRef struct {
	FurnitureID string   `json:"furnitureId"`
	Position    Position `json:"position"`
	Rotation    float64  `json:"rotation"`
}
