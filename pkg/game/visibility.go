package game

import (
	"craftbox/pkg/render"
	"craftbox/pkg/voxel"
)

// Visibility decides which blocks carry render geometry. A block is exposed
// iff at least one of its six axis-neighbors is absent from the store; only
// exposed blocks get geometry, so fully buried blocks cost nothing to draw.
type Visibility struct {
	store   *voxel.Store
	batcher *render.ChunkBatcher
}

// NewVisibility creates a visibility engine over the given store and batcher
func NewVisibility(store *voxel.Store, batcher *render.ChunkBatcher) *Visibility {
	return &Visibility{store: store, batcher: batcher}
}

// Exposed reports whether the block at key has at least one empty neighbor
func (v *Visibility) Exposed(key voxel.BlockKey) bool {
	for _, neighbor := range key.Neighbors() {
		if !v.store.Contains(neighbor) {
			return true
		}
	}
	return false
}

// Refresh reconciles one block's render geometry with the store: absent or
// buried blocks lose their geometry, exposed blocks gain it.
func (v *Visibility) Refresh(key voxel.BlockKey) {
	blockType, exists := v.store.Get(key)
	if !exists {
		v.batcher.RemoveBlockRender(key)
		return
	}

	if v.Exposed(key) {
		if !v.batcher.HasRender(key) {
			v.batcher.CreateBlockRender(key, blockType)
		}
		return
	}

	v.batcher.RemoveBlockRender(key)
}

// RefreshAround refreshes a block and its six neighbors. This is the whole
// propagation step after a mutation: removing a block un-hides the blocks
// that were buried behind it, adding one may bury its neighbors. The update
// touches exactly seven keys regardless of world size.
func (v *Visibility) RefreshAround(key voxel.BlockKey) {
	v.Refresh(key)
	for _, neighbor := range key.Neighbors() {
		v.Refresh(neighbor)
	}
}
