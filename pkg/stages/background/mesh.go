package background

import (
	"regexp"
	"strconv"

	"github.com/user/mockshot/pkg/pipeline"
)

// meshClause matches radial-gradient(at X% Y%, #color 0px, transparent S%).
var meshClause = regexp.MustCompile(
	`radial-gradient\(\s*at\s+(-?[\d.]+)%\s+(-?[\d.]+)%\s*,\s*(#[0-9a-fA-F]{3,8})\s+0(?:px|%)?\s*,\s*transparent\s+([\d.]+)%\s*\)`,
)

// meshBase is painted under every mesh.
var meshBase = MustParseHexColor("#0f0f1a")

// FallbackMesh is used when the mesh CSS yields no points.
var FallbackMesh = []pipeline.MeshPoint{
	{X: 0.40, Y: 0.20, Size: 0.50, Color: MustParseHexColor("#7c3aed")},
	{X: 0.80, Y: 0.00, Size: 0.50, Color: MustParseHexColor("#db2777")},
	{X: 0.00, Y: 0.50, Size: 0.50, Color: MustParseHexColor("#2563eb")},
	{X: 0.80, Y: 0.50, Size: 0.50, Color: MustParseHexColor("#0891b2")},
	{X: 0.00, Y: 1.00, Size: 0.50, Color: MustParseHexColor("#ea580c")},
	{X: 0.80, Y: 1.00, Size: 0.50, Color: MustParseHexColor("#16a34a")},
}

// ParseMesh extracts mesh points from a CSS background-image value.
// Clauses that do not match are skipped; the result may be empty.
func ParseMesh(css string) []pipeline.MeshPoint {
	matches := meshClause.FindAllStringSubmatch(css, -1)
	points := make([]pipeline.MeshPoint, 0, len(matches))
	for _, m := range matches {
		x, errX := strconv.ParseFloat(m[1], 64)
		y, errY := strconv.ParseFloat(m[2], 64)
		size, errS := strconv.ParseFloat(m[4], 64)
		c, errC := ParseHexColor(m[3])
		if errX != nil || errY != nil || errS != nil || errC != nil {
			continue
		}
		points = append(points, pipeline.MeshPoint{
			X:     x / 100,
			Y:     y / 100,
			Size:  size / 100,
			Color: c,
		})
	}
	return points
}
