package voxel

import "math"

// Terrain wave frequencies along each horizontal axis
const (
	terrainFreqX = 0.32
	terrainFreqZ = 0.29
)

// Generator produces deterministic terrain heights and layer types from
// column coordinates alone. It holds no state, so the same coordinates always
// yield the same result; respawn logic relies on this to recompute ground
// height for columns that were never stored.
type Generator struct {
	BaseHeight      int
	HeightVariation int
	MaxHeight       int
}

// NewGenerator creates a terrain generator with the given shape parameters
func NewGenerator(baseHeight, heightVariation, maxHeight int) *Generator {
	return &Generator{
		BaseHeight:      baseHeight,
		HeightVariation: heightVariation,
		MaxHeight:       maxHeight,
	}
}

// Height returns the number of block layers in the column at (x, z),
// always within [1, MaxHeight]. The scaled wave value is truncated toward
// zero, not rounded to nearest.
func (g *Generator) Height(x, z int) int {
	wave := math.Sin(float64(x)*terrainFreqX) + math.Cos(float64(z)*terrainFreqZ)
	height := int(float64(g.BaseHeight) + wave*float64(g.HeightVariation))
	if height < 1 {
		return 1
	}
	if height > g.MaxHeight {
		return g.MaxHeight
	}
	return height
}

// LayerType returns the block type for layer y of a column whose surface
// layer is top-1: grass on the surface, dirt for the three layers beneath it,
// stone below that.
func (g *Generator) LayerType(y, top int) BlockType {
	if y == top-1 {
		return Grass
	}
	if y >= top-3 {
		return Dirt
	}
	return Stone
}
