package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ChunkSize is the number of columns along each horizontal axis of a chunk
const ChunkSize = 8

// BlockKey identifies a block cell on the unit grid. Y is the vertical axis.
// A block exists iff its key is present in the Store.
type BlockKey struct {
	X, Y, Z int
}

// ColumnKey identifies a vertical column of blocks sharing the same X and Z
type ColumnKey struct {
	X, Z int
}

// ChunkKey identifies an 8x8-column chunk of the world
type ChunkKey struct {
	X, Z int
}

// NeighborOffsets are the six axis-aligned neighbor directions of a block
var NeighborOffsets = [6]BlockKey{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// BlockKeyAt returns the key of the block cell containing the world position
func BlockKeyAt(pos mgl64.Vec3) BlockKey {
	return BlockKey{
		X: int(math.Floor(pos.X())),
		Y: int(math.Floor(pos.Y())),
		Z: int(math.Floor(pos.Z())),
	}
}

// Column returns the column this block belongs to
func (k BlockKey) Column() ColumnKey {
	return ColumnKey{X: k.X, Z: k.Z}
}

// Chunk returns the chunk this block belongs to. Chunk coordinates use floor
// division so that negative block coordinates map to the correct chunk.
func (k BlockKey) Chunk() ChunkKey {
	return ChunkKey{X: floorDiv(k.X, ChunkSize), Z: floorDiv(k.Z, ChunkSize)}
}

// Offset returns the key displaced by the given deltas
func (k BlockKey) Offset(dx, dy, dz int) BlockKey {
	return BlockKey{X: k.X + dx, Y: k.Y + dy, Z: k.Z + dz}
}

// Origin returns the world position of the block's minimum corner.
// The block occupies [Origin, Origin+1) along each axis.
func (k BlockKey) Origin() mgl64.Vec3 {
	return mgl64.Vec3{float64(k.X), float64(k.Y), float64(k.Z)}
}

// Neighbors returns the six axis-adjacent block keys
func (k BlockKey) Neighbors() [6]BlockKey {
	var out [6]BlockKey
	for i, d := range NeighborOffsets {
		out[i] = k.Offset(d.X, d.Y, d.Z)
	}
	return out
}

// floorDiv divides a by b rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
