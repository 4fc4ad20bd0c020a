package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"craftbox/pkg/voxel"
)

// rayStep is the fixed sampling interval of the block-targeting ray, in
// world units. Small relative to a block so thin diagonal gaps are not
// skipped over within reach distance.
const rayStep = 0.1

// RayHit is the result of a block-targeting raycast: the first occupied cell
// along the ray, and the last empty cell sampled before it, which is where a
// new block would be placed. HasPlace is false when the very first sample
// already hit (the ray started inside a block).
type RayHit struct {
	Block    voxel.BlockKey
	Place    voxel.BlockKey
	HasPlace bool
}

// Raycaster marches rays through the block store to find what the player is
// aiming at
type Raycaster struct {
	store *voxel.Store
	reach float64
}

// NewRaycaster creates a raycaster with the given reach distance
func NewRaycaster(store *voxel.Store, reach float64) *Raycaster {
	return &Raycaster{store: store, reach: reach}
}

// Cast marches from origin along dir (assumed unit length) in fixed steps up
// to the reach distance. It returns the first occupied block and the
// preceding empty cell, or ok=false when nothing is hit within reach.
func (rc *Raycaster) Cast(origin, dir mgl64.Vec3) (RayHit, bool) {
	steps := int(rc.reach / rayStep)

	var previous voxel.BlockKey
	hasPrevious := false

	for i := 0; i < steps; i++ {
		sample := origin.Add(dir.Mul(float64(i) * rayStep))
		key := voxel.BlockKeyAt(sample)

		if rc.store.Contains(key) {
			return RayHit{Block: key, Place: previous, HasPlace: hasPrevious}, true
		}

		previous = key
		hasPrevious = true
	}

	return RayHit{}, false
}
