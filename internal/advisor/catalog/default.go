package catalog

import "room-planner/internal/advisor/models"

// Archetype ids that the placement heuristics refer to by name.
const (
	CoffeeTableID = "table-2"
	SofaID        = "sofa-1"
	RugID         = "rug-1"
	PaintingID    = "painting-1"
)

func height(m float64) *float64 {
	return &m
}

// Default returns the seeded product catalog. Dimensions are the analysed
// model extents; Scale brings them to approximately real-world meters.
func Default() *Catalog {
	return New(defaultItems())
}

func defaultItems() []models.FurnitureModel {
	return []models.FurnitureModel{
		{
			ID:       PaintingID,
			Name:     "Wall Painting",
			FileName: "painting-1.obj",
			Category: models.CategoryWallDecor,
			Dimensions: models.FurnitureDimensions{
				Width: 2.003, Height: 1.578, Depth: 0.113, Scale: 0.5,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneWall,
				SecondaryZones:       []models.Zone{},
				MinDistanceFromWall:  0,
				MaxDistanceFromWall:  0.05, // flush with the wall
				Orientation:          models.OrientationWallAligned,
				RequiresFloorContact: false,
				PreferredHeight:      height(1.5),
				AvoidOverlap:         true,
			},
			Tags:        []string{"art", "decoration", "wall-mounted"},
			Description: "Large wall painting for decoration. Should be centered on wall at eye level.",
		},
		{
			ID:       "pot-1",
			Name:     "Decorative Pot",
			FileName: "pot-1.obj",
			Category: models.CategoryDecor,
			Dimensions: models.FurnitureDimensions{
				Width: 0.973, Height: 1.997, Depth: 0.994, Scale: 0.4,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneCorner,
				SecondaryZones:       []models.Zone{models.ZoneFloor, models.ZoneAnywhere},
				MinDistanceFromWall:  0.1,
				MaxDistanceFromWall:  0.5,
				Orientation:          models.OrientationRotatable,
				RequiresFloorContact: true,
				AvoidOverlap:         true,
			},
			Tags:        []string{"decoration", "vase", "plant-holder"},
			Description: "Large decorative pot or vase. Ideal for corners or beside furniture.",
		},
		{
			ID:       RugID,
			Name:     "Area Rug",
			FileName: "rug-1.obj",
			Category: models.CategoryFloorDecor,
			Dimensions: models.FurnitureDimensions{
				Width: 1.991, Height: 0.055, Depth: 1.424, Scale: 1.5,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneCenter,
				SecondaryZones:       []models.Zone{models.ZoneFloor},
				MinDistanceFromWall:  0.5,
				MaxDistanceFromWall:  10,
				Orientation:          models.OrientationRotatable,
				RequiresFloorContact: true,
				AvoidOverlap:         false, // furniture stands on top of it
			},
			Tags:        []string{"carpet", "floor-covering", "textile"},
			Description: "Area rug for floor coverage. Typically placed under seating arrangements.",
		},
		{
			ID:       "shelf-1",
			Name:     "Storage Shelf",
			FileName: "shelf-1.obj",
			Category: models.CategoryStorage,
			Dimensions: models.FurnitureDimensions{
				Width: 0.615, Height: 1.993, Depth: 0.356, Scale: 1.0,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneWall,
				SecondaryZones:       []models.Zone{models.ZoneCorner},
				MinDistanceFromWall:  0,
				MaxDistanceFromWall:  0.1,
				Orientation:          models.OrientationWallAligned,
				RequiresFloorContact: true,
				AvoidOverlap:         true,
			},
			Tags:        []string{"storage", "bookshelf", "organizer"},
			Description: "Tall storage shelf unit. Must be placed against a wall for stability.",
		},
		{
			ID:       SofaID,
			Name:     "Living Room Sofa",
			FileName: "sofa-1.obj",
			Category: models.CategorySeating,
			Dimensions: models.FurnitureDimensions{
				Width: 2.000, Height: 0.704, Depth: 1.550, Scale: 1.0,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneWall,
				SecondaryZones:       []models.Zone{models.ZoneCenter, models.ZoneAnywhere},
				MinDistanceFromWall:  0.1,
				MaxDistanceFromWall:  1.0,
				Orientation:          models.OrientationRotatable,
				RequiresFloorContact: true,
				AvoidOverlap:         true,
			},
			Tags:        []string{"seating", "living-room", "couch"},
			Description: "Three-seater sofa. Typically placed against wall or floating with back to room divider.",
		},
		{
			ID:       "table-1",
			Name:     "Round Dining Table",
			FileName: "table-1.obj",
			Category: models.CategoryTable,
			Dimensions: models.FurnitureDimensions{
				Width: 1.180, Height: 1.998, Depth: 1.178, Scale: 0.75,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneCenter,
				SecondaryZones:       []models.Zone{models.ZoneAnywhere},
				MinDistanceFromWall:  0.8, // room for chairs
				MaxDistanceFromWall:  10,
				Orientation:          models.OrientationRotatable,
				RequiresFloorContact: true,
				AvoidOverlap:         true,
			},
			Tags:        []string{"dining", "round-table", "furniture"},
			Description: "Round dining table. Requires clearance around all sides for seating.",
		},
		{
			ID:       CoffeeTableID,
			Name:     "Coffee Table",
			FileName: "table-2.obj",
			Category: models.CategoryTable,
			Dimensions: models.FurnitureDimensions{
				Width: 2.000, Height: 1.012, Depth: 1.649, Scale: 0.4,
			},
			PlacementRules: models.PlacementRules{
				PrimaryZone:          models.ZoneCenter,
				SecondaryZones:       []models.Zone{models.ZoneFloor},
				MinDistanceFromWall:  0.5,
				MaxDistanceFromWall:  10,
				Orientation:          models.OrientationRotatable,
				RequiresFloorContact: true,
				AvoidOverlap:         true,
			},
			Tags:        []string{"coffee-table", "living-room", "low-table"},
			Description: "Rectangular coffee table. Place in front of sofa with adequate legroom.",
		},
	}
}
