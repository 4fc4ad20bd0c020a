package render

import (
	"craftbox/pkg/voxel"
)

// ChunkBatcher groups per-block render geometry into fixed-size spatial
// chunks and defers the expensive per-chunk combine operation through a dirty
// set. Creating or destroying block geometry only marks the owning chunk
// dirty; CollectDirty performs the combine on a bounded number of chunks so
// bursts of block mutations spread their render cost across frames.
type ChunkBatcher struct {
	host GeometryHost

	chunks      map[voxel.ChunkKey]*chunkBatch
	blockChunks map[voxel.BlockKey]voxel.ChunkKey
	dirty       map[voxel.ChunkKey]struct{}
}

// chunkBatch is one chunk's batching root and the block handles it owns
type chunkBatch struct {
	root    BatchHandle
	handles map[voxel.BlockKey]BlockHandle
}

// NewChunkBatcher creates a batcher that submits geometry to the given host
func NewChunkBatcher(host GeometryHost) *ChunkBatcher {
	return &ChunkBatcher{
		host:        host,
		chunks:      make(map[voxel.ChunkKey]*chunkBatch),
		blockChunks: make(map[voxel.BlockKey]voxel.ChunkKey),
		dirty:       make(map[voxel.ChunkKey]struct{}),
	}
}

// ensureChunk returns the batch for a chunk, lazily creating its root on
// first use. Roots persist for the lifetime of the process even when the
// chunk later becomes empty.
func (cb *ChunkBatcher) ensureChunk(key voxel.ChunkKey) *chunkBatch {
	if chunk, ok := cb.chunks[key]; ok {
		return chunk
	}
	chunk := &chunkBatch{
		root:    cb.host.CreateBatch(key),
		handles: make(map[voxel.BlockKey]BlockHandle),
	}
	cb.chunks[key] = chunk
	return chunk
}

// CreateBlockRender attaches block geometry under the owning chunk and marks
// the chunk dirty. Creating a render for a block that already has one is a
// no-op.
func (cb *ChunkBatcher) CreateBlockRender(key voxel.BlockKey, blockType voxel.BlockType) {
	if _, exists := cb.blockChunks[key]; exists {
		return
	}

	chunkKey := key.Chunk()
	chunk := cb.ensureChunk(chunkKey)

	handle := cb.host.Instantiate(chunk.root)
	cb.host.SetPosition(handle, key.Origin())
	cb.host.SetTexture(handle, blockType)

	chunk.handles[key] = handle
	cb.blockChunks[key] = chunkKey
	cb.dirty[chunkKey] = struct{}{}
}

// RemoveBlockRender detaches block geometry and marks the owning chunk
// dirty. Removing a render for a block that has none is a no-op.
func (cb *ChunkBatcher) RemoveBlockRender(key voxel.BlockKey) {
	chunkKey, exists := cb.blockChunks[key]
	if !exists {
		return
	}
	delete(cb.blockChunks, key)

	chunk := cb.chunks[chunkKey]
	if handle, ok := chunk.handles[key]; ok {
		cb.host.Destroy(handle)
		delete(chunk.handles, key)
	}
	cb.dirty[chunkKey] = struct{}{}
}

// HasRender reports whether the block currently has render geometry
func (cb *ChunkBatcher) HasRender(key voxel.BlockKey) bool {
	_, exists := cb.blockChunks[key]
	return exists
}

// CollectDirty combines up to maxChunks dirty chunks and clears their dirty
// flag, returning how many were processed. Which dirty chunks are picked
// within one call is unspecified; every dirty chunk is eventually processed
// by repeated calls.
func (cb *ChunkBatcher) CollectDirty(maxChunks int) int {
	processed := 0
	for chunkKey := range cb.dirty {
		if processed >= maxChunks {
			break
		}
		cb.host.Combine(cb.chunks[chunkKey].root)
		delete(cb.dirty, chunkKey)
		processed++
	}
	return processed
}

// CollectAll combines every dirty chunk. Used during the initial world build
// where deferring would only delay the first frame.
func (cb *ChunkBatcher) CollectAll() int {
	return cb.CollectDirty(len(cb.dirty))
}

// DirtyCount returns the number of chunks awaiting a combine pass
func (cb *ChunkBatcher) DirtyCount() int {
	return len(cb.dirty)
}

// ChunkCount returns the number of chunk roots created so far
func (cb *ChunkBatcher) ChunkCount() int {
	return len(cb.chunks)
}
