package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"craftbox/pkg/voxel"
)

// NoSupport is returned by GroundHeight when no column under the player has
// a layer within the support window. Any feet position compares above it.
const NoSupport = -9999.0

// Resolver performs discrete collision queries against the block store. The
// player is approximated by an axis-aligned box: half-width Radius on X/Z,
// Height tall, anchored at the feet. Sampling is pointwise, not swept, so
// tunneling is possible at extreme per-tick displacements; at the tick rates
// and speeds used here displacement stays well under one block.
type Resolver struct {
	store  *voxel.Store
	height float64
	radius float64
}

// NewResolver creates a collision resolver for a player box of the given
// dimensions
func NewResolver(store *voxel.Store, height, radius float64) *Resolver {
	return &Resolver{store: store, height: height, radius: radius}
}

// cornerOffsets returns the four horizontal corner offsets of the player box
func (r *Resolver) cornerOffsets() [4][2]float64 {
	return [4][2]float64{
		{-r.radius, -r.radius},
		{r.radius, -r.radius},
		{-r.radius, r.radius},
		{r.radius, r.radius},
	}
}

// Collides reports whether the player box at pos (top-of-head position)
// overlaps any stored block. Each of the four horizontal corners is sampled
// at three heights (near the feet, mid-body, near the head), giving twelve
// probe points.
func (r *Resolver) Collides(pos mgl64.Vec3) bool {
	feetY := pos.Y() - r.height
	bodySamples := [3]float64{0.08, r.height * 0.55, r.height * 0.95}

	for _, corner := range r.cornerOffsets() {
		sampleX := pos.X() + corner[0]
		sampleZ := pos.Z() + corner[1]
		for _, sampleHeight := range bodySamples {
			sample := mgl64.Vec3{sampleX, feetY + sampleHeight, sampleZ}
			if r.store.Contains(voxel.BlockKeyAt(sample)) {
				return true
			}
		}
	}
	return false
}

// GroundHeight returns the Y coordinate the player's feet would rest on: the
// highest layer at or below feetY+supportTolerance-1 under any of the four
// corners, plus one. Returns NoSupport when no corner column has a layer in
// range. The column-top index answers most queries without scanning layers.
func (r *Resolver) GroundHeight(x, z, feetY, supportTolerance float64) float64 {
	maxSupportLayer := feetY + supportTolerance - 1.0
	highest := NoSupport

	for _, corner := range r.cornerOffsets() {
		column := voxel.BlockKeyAt(mgl64.Vec3{x + corner[0], 0, z + corner[1]}).Column()
		layer, ok := r.store.HighestLayerAtOrBelow(column, maxSupportLayer)
		if !ok {
			continue
		}
		if ground := float64(layer) + 1.0; ground > highest {
			highest = ground
		}
	}
	return highest
}
