package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV2Normalize_ZeroSafe(t *testing.T) {
	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}))

	n := V2Normalize(V2(3, 4))
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, V2Mag(n), 1e-12)
}

func TestV2Dist(t *testing.T) {
	assert.Equal(t, 5.0, V2Dist(V2(1, 1), V2(4, 5)))
	assert.Equal(t, 0.0, V2Dist(V2(2, 2), V2(2, 2)))
}

func TestV2Finite(t *testing.T) {
	assert.True(t, V2Finite(V2(1, -1)))
	assert.False(t, V2Finite(V2(math.NaN(), 0)))
	assert.False(t, V2Finite(V2(0, math.Inf(-1))))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
	// Inverted range resolves to the lower bound
	assert.Equal(t, 4.0, Clamp(1, 4, 2))
}

func TestTraverse_CoversEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"horizontal", 0.5, 0.5, 9.5, 0.5},
		{"vertical", 2.5, 8.5, 2.5, 1.5},
		{"diagonal", 0.5, 0.5, 6.5, 6.5},
		{"steep", 1.2, 0.1, 3.7, 12.9},
		{"single cell", 4.2, 4.8, 4.9, 4.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cells [][2]int
			Traverse(tt.x1, tt.y1, tt.x2, tt.y2, func(x, y int) bool {
				cells = append(cells, [2]int{x, y})
				return true
			})

			if assert.NotEmpty(t, cells) {
				assert.Equal(t, [2]int{int(math.Floor(tt.x1)), int(math.Floor(tt.y1))}, cells[0])
				assert.Equal(t, [2]int{int(math.Floor(tt.x2)), int(math.Floor(tt.y2))}, cells[len(cells)-1])
			}

			// Consecutive cells are 8-connected
			for i := 1; i < len(cells); i++ {
				dx := cells[i][0] - cells[i-1][0]
				dy := cells[i][1] - cells[i-1][1]
				assert.LessOrEqual(t, dx*dx, 1)
				assert.LessOrEqual(t, dy*dy, 1)
			}
		})
	}
}

func TestTraverse_EarlyStop(t *testing.T) {
	count := 0
	Traverse(0.5, 0.5, 20.5, 0.5, func(x, y int) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}
