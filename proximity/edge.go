// Package proximity derives the connective lines of the constellation from node positions
package proximity

import (
	"math"

	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/vmath"
)

// Edge is a transient connection between two nearby nodes, recomputed every frame
type Edge struct {
	A, B     string
	From, To vmath.Vec2
	Distance float64

	// Strength is the raw falloff (1 - d/threshold)^1.5, in (0, 1]
	Strength float64

	// Opacity and Weight are the rendered stroke properties
	Opacity     float64
	Weight      float64
	Highlighted bool // Touches the hovered node
	Dashed      bool
}

// BuildEdges returns an edge for every unordered pair closer than threshold
// Edges touching hoveredID are highlighted at a fixed opacity, the rest are dimmed
// O(n²), the constellation holds tens of nodes
func BuildEdges(nodes []physics.Node, hoveredID string, threshold float64) []Edge {
	if threshold <= 0 || len(nodes) < 2 {
		return nil
	}

	edges := make([]Edge, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := &nodes[i], &nodes[j]

			distance := vmath.V2Dist(a.Pos, b.Pos)
			if !(distance < threshold) {
				continue
			}

			strength := Falloff(distance, threshold)
			e := Edge{
				A:        a.ID,
				B:        b.ID,
				From:     a.Pos,
				To:       b.Pos,
				Distance: distance,
				Strength: strength,
			}

			if hoveredID != "" && (a.ID == hoveredID || b.ID == hoveredID) {
				e.Highlighted = true
				e.Opacity = parameter.EdgeHighlightOpacity
				e.Weight = parameter.EdgeHighlightWeight
			} else {
				e.Opacity = strength * parameter.EdgeIdleOpacityScale
				e.Weight = parameter.EdgeIdleWeight
				e.Dashed = true
			}

			edges = append(edges, e)
		}
	}
	return edges
}

// Falloff returns (1 - distance/threshold)^1.5, zero at or past the threshold
func Falloff(distance, threshold float64) float64 {
	if threshold <= 0 || distance >= threshold {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return math.Pow(1-distance/threshold, parameter.EdgeFalloffExponent)
}
