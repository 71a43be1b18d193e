package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-planner/internal/advisor/models"
	"room-planner/internal/advisor/placement"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseRoom(t *testing.T) {
	room, err := parseRoom("5x4X2.5")
	require.NoError(t, err)
	assert.Equal(t, models.RoomDimensions{Width: 5, Depth: 4, Height: 2.5}, room)

	for _, bad := range []string{"", "5x4", "5x4x0", "ax4x2", "5x4x2x1"} {
		_, err := parseRoom(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePlaced(t *testing.T) {
	tests := []struct {
		in   string
		want models.PlacedRef
	}{
		{"sofa-1@2,0,0.5", models.PlacedRef{FurnitureID: "sofa-1", Position: models.Position{X: 2, Z: 0.5}}},
		{"sofa-1@2, 0, 3.5,180", models.PlacedRef{FurnitureID: "sofa-1", Position: models.Position{X: 2, Z: 3.5}, Rotation: 180}},
	}
	for _, tt := range tests {
		got, err := parsePlaced(tt.in)
		require.NoError(t, err, tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parsePlaced(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	for _, bad := range []string{"sofa-1", "@1,2,3", "sofa-1@1,2", "sofa-1@1,2,3,4,5", "sofa-1@a,b,c"} {
		_, err := parsePlaced(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition("1,1.5,0.06")
	require.NoError(t, err)
	assert.Equal(t, models.Position{X: 1, Y: 1.5, Z: 0.06}, pos)

	_, err = parsePosition("1,2")
	assert.Error(t, err)
}

func TestCatalogCmd(t *testing.T) {
	out, err := run(t, "catalog", "--zone", "wall")
	require.NoError(t, err)

	var items []models.FurnitureModel
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 3)

	_, err = run(t, "catalog", "--category", "beds")
	assert.Error(t, err)
}

func TestSuggestCmd(t *testing.T) {
	out, err := run(t, "suggest", "table-2", "--room", "4x4x2.5", "--existing", "sofa-1@2,0,0.5")
	require.NoError(t, err)

	var suggestions []models.PlacementSuggestion
	require.NoError(t, json.Unmarshal([]byte(out), &suggestions))
	require.Len(t, suggestions, 2)
	assert.InDelta(t, 1.7, suggestions[0].Position.Z, 1e-9)

	out, err = run(t, "suggest", "sofa-1", "--room", "1x1x2", "--best")
	require.NoError(t, err)
	var best models.PlacementSuggestion
	require.NoError(t, json.Unmarshal([]byte(out), &best))
	assert.Equal(t, placement.FallbackConfidence, best.Confidence)

	_, err = run(t, "suggest", "table-2")
	assert.Error(t, err, "--room is required")

	_, err = run(t, "suggest", "hammock", "--room", "4x4x2.5")
	assert.ErrorIs(t, err, placement.ErrUnknownFurniture)
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate", "painting-1", "--at", "1,1.5,0.02", "--room", "4x4x2.5")
	require.NoError(t, err)

	var result models.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, []string{placement.IssueBeyondDepth}, result.Issues)
}

func TestArrangeCmdWithCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `name: mini
items:
  - id: bench
    name: Bench
    category: seating
    dimensions: {width: 1.2, height: 0.5, depth: 0.4, scale: 1}
    placementRules:
      primaryZone: wall
      minDistanceFromWall: 0.3
      maxDistanceFromWall: 0.5
      orientation: wall_aligned
      requiresFloorContact: true
      avoidOverlap: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := run(t, "arrange", "bench", "bench", "--room", "4x3x2.5", "--catalog", path)
	require.NoError(t, err)

	var placed []models.PlacedRef
	require.NoError(t, json.Unmarshal([]byte(out), &placed))
	require.Len(t, placed, 2)
	assert.Equal(t, models.Position{X: 2, Y: 0, Z: 0.3}, placed[0].Position)
	assert.Equal(t, models.Position{X: 2, Y: 0, Z: 2.7}, placed[1].Position)
	assert.Equal(t, 180.0, placed[1].Rotation)

	_, err = run(t, "catalog", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
