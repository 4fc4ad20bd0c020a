// Package render contains everything between the voxel world and the screen:
// the GeometryHost boundary the game core talks to, the chunk batcher that
// amortizes expensive geometry rebuilds, the first-person camera, and the
// OpenGL renderer that implements the host.
package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"craftbox/pkg/voxel"
)

// BatchHandle identifies a chunk batching root owned by the geometry host
type BatchHandle uint64

// BlockHandle identifies one block's render geometry owned by the geometry
// host. A handle is owned by exactly one chunk and destroyed explicitly.
type BlockHandle uint64

// GeometryHost is the rendering collaborator the voxel core drives. The
// batcher instantiates per-block geometry under a batch root and asks the
// host to combine a root's geometry after its blocks changed; combining is
// the expensive operation the dirty-chunk queue exists to amortize.
type GeometryHost interface {
	// CreateBatch creates a batching root for a chunk
	CreateBatch(key voxel.ChunkKey) BatchHandle

	// Instantiate creates block geometry from the cube prototype under the
	// given batch root
	Instantiate(batch BatchHandle) BlockHandle

	// SetPosition places block geometry at a world position (minimum corner)
	SetPosition(handle BlockHandle, pos mgl64.Vec3)

	// SetTexture assigns the block type's texture to block geometry
	SetTexture(handle BlockHandle, blockType voxel.BlockType)

	// Destroy releases block geometry
	Destroy(handle BlockHandle)

	// Combine rebuilds the batched geometry of a root from its live blocks
	Combine(batch BatchHandle)
}
