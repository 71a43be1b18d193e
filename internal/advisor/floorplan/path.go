package floorplan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ============================================================
// Path Parser
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	pathCommand = regexp.MustCompile(`([MmLlHhVvZz])([^MmLlHhVvZz]*)`)
	// pathNumber splits compact data such as "500-300" or "0.5.5" into numbers.
	pathNumber = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

// ParsePath reads the straight-line subset of SVG path data (M, L, H, V, Z
// and their relative forms). Extra coordinate pairs after M/L are treated
// as implicit line-to commands.
func ParsePath(d string) ([]Point, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var points []Point
	var cur Point

	for _, match := range pathCommand.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		args, err := parseCoords(match[2])
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", d, err)
		}
		relative := cmd == strings.ToLower(cmd)

		switch strings.ToUpper(cmd) {
		case "M", "L":
			for i := 0; i+1 < len(args); i += 2 {
				if relative {
					cur = Point{X: cur.X + args[i], Y: cur.Y + args[i+1]}
				} else {
					cur = Point{X: args[i], Y: args[i+1]}
				}
				points = append(points, cur)
			}
		case "H":
			for _, x := range args {
				if relative {
					cur.X += x
				} else {
					cur.X = x
				}
				points = append(points, cur)
			}
		case "V":
			for _, y := range args {
				if relative {
					cur.Y += y
				} else {
					cur.Y = y
				}
				points = append(points, cur)
			}
		case "Z":
			if len(points) > 0 {
				cur = points[0]
				points = append(points, cur)
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("path %q has no points", d)
	}
	return points, nil
}

func parseCoords(s string) ([]float64, error) {
	var coords []float64
	for _, loc := range pathNumber.FindAllStringIndex(s, -1) {
		v, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", s[loc[0]:loc[1]])
		}
		coords = append(coords, v)
	}

	// anything left besides separators is a command this parser does not know
	if rest := strings.Trim(pathNumber.ReplaceAllString(s, ""), " \t\r\n,"); rest != "" {
		return nil, fmt.Errorf("unsupported path data %q", strings.TrimSpace(s))
	}
	return coords, nil
}
