package planner

import (
	"fmt"
	"math"

	"room-planner/internal/advisor/models"
)

// ============================================================
// Export
// ============================================================

const (
	cmPerMeter = 100.0
	layerID    = "layer-1"
	areaID     = "room"
	// Margin around the room on the planner canvas, in centimeters.
	canvasMargin = 100.0
)

// Export builds a react-planner scene for a rectangular room and the
// furniture placed in it. The room's X axis maps to plan X and its Z axis
// to plan Y; all lengths are converted to centimeters.
func Export(name string, room models.RoomDimensions, placed []models.PlacedFurniture) *Scene {
	w := room.Width * cmPerMeter
	d := room.Depth * cmPerMeter
	wallHeight := room.Height * cmPerMeter

	corners := []struct {
		id   string
		x, y float64
	}{
		{"v1", 0, 0},
		{"v2", w, 0},
		{"v3", w, d},
		{"v4", 0, d},
	}

	vertices := make(map[string]Vertex, len(corners))
	vertexIDs := make([]string, 0, len(corners))
	for _, c := range corners {
		vertices[c.id] = Vertex{
			ID:        c.id,
			Name:      "Vertex",
			Type:      "vertex",
			Prototype: "vertices",
			X:         c.x,
			Y:         c.y,
			Lines:     []string{},
			Areas:     []string{areaID},
		}
		vertexIDs = append(vertexIDs, c.id)
	}

	lines := make(map[string]Line, len(corners))
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		id := fmt.Sprintf("wall-%d", i+1)
		lines[id] = Line{
			ID:         id,
			Name:       "Wall",
			Type:       "wall",
			Prototype:  "lines",
			Vertices:   []string{c.id, next.id},
			Holes:      []string{},
			Properties: defaultWallProperties(wallHeight),
		}
		for _, vid := range []string{c.id, next.id} {
			v := vertices[vid]
			v.Lines = append(v.Lines, id)
			vertices[vid] = v
		}
	}

	items := make(map[string]Item, len(placed))
	for i, p := range placed {
		id := fmt.Sprintf("item-%d", i+1)
		items[id] = Item{
			ID:         id,
			Name:       p.Model.Name,
			Type:       p.Model.ID,
			Prototype:  "items",
			X:          round(p.Position.X * cmPerMeter),
			Y:          round(p.Position.Z * cmPerMeter),
			Rotation:   p.Rotation,
			Properties: itemProperties(p),
		}
	}

	layer := Layer{
		ID:       layerID,
		Altitude: 0,
		Order:    0,
		Opacity:  1,
		Name:     "default",
		Visible:  true,
		Vertices: vertices,
		Lines:    lines,
		Holes:    map[string]any{},
		Areas: map[string]Area{
			areaID: {
				ID:         areaID,
				Name:       name,
				Type:       "area",
				Prototype:  "areas",
				Vertices:   vertexIDs,
				Holes:      []string{},
				Properties: defaultAreaProperties(),
			},
		},
		Items:    items,
		Selected: ElementsSet{Vertices: []string{}, Lines: []string{}, Holes: []string{}, Areas: []string{}, Items: []string{}},
	}

	return &Scene{
		Unit:          "cm",
		Layers:        map[string]Layer{layerID: layer},
		SelectedLayer: layerID,
		Grids:         defaultGrids(),
		Groups:        map[string]any{},
		Width:         w + 2*canvasMargin,
		Height:        d + 2*canvasMargin,
		Meta:          map[string]any{"name": name},
		Guides:        defaultGuides(),
	}
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}

func itemProperties(p models.PlacedFurniture) map[string]any {
	dims := p.Model.Dimensions
	return map[string]any{
		"width":    LengthValue{Length: round(dims.ScaledWidth() * cmPerMeter)},
		"depth":    LengthValue{Length: round(dims.ScaledDepth() * cmPerMeter)},
		"height":   LengthValue{Length: round(dims.ScaledHeight() * cmPerMeter)},
		"altitude": LengthValue{Length: round(p.Position.Y * cmPerMeter)},
		"fileName": p.Model.FileName,
	}
}

// ============================================================
// Defaults
// ============================================================

func defaultWallProperties(height float64) map[string]any {
	return map[string]any{
		"height":    LengthValue{Length: height},
		"thickness": LengthValue{Length: 20},
		"textureA":  "bricks",
		"textureB":  "bricks",
	}
}

func defaultAreaProperties() map[string]any {
	return map[string]any{
		"patternColor": "#F5F5F5",
		"thickness":    LengthValue{Length: 0},
	}
}

func defaultGrids() map[string]Grid {
	streak := map[string]any{
		"step":   20,
		"colors": []string{"#808080", "#ddd", "#ddd", "#ddd", "#ddd"},
	}
	return map[string]Grid{
		"h1": {ID: "h1", Type: "horizontal-streak", Properties: streak},
		"v1": {ID: "v1", Type: "vertical-streak", Properties: streak},
	}
}

func defaultGuides() Guides {
	return Guides{
		Horizontal: map[string]any{},
		Vertical:   map[string]any{},
		Circular:   map[string]any{},
	}
}
