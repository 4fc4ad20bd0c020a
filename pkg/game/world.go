// Package game implements the voxel sandbox simulation: the world state and
// its mutation rules, player movement with collision, and the block
// targeting interactions. Rendering is reached only through the
// render.GeometryHost boundary.
package game

import (
	"craftbox/pkg/render"
	"craftbox/pkg/voxel"
)

// World owns the block store, the visibility engine and the chunk batcher,
// and enforces the mutation ordering between them: the store changes first,
// then visibility propagates, because the exposure tests of the six
// neighbors must observe the post-mutation store.
type World struct {
	Store   *voxel.Store
	Batcher *render.ChunkBatcher
	Vis     *Visibility

	gen *voxel.Generator
}

// NewWorld creates an empty world that batches geometry through the given
// batcher
func NewWorld(gen *voxel.Generator, batcher *render.ChunkBatcher) *World {
	store := voxel.NewStore()
	return &World{
		Store:   store,
		Batcher: batcher,
		Vis:     NewVisibility(store, batcher),
		gen:     gen,
	}
}

// AddBlock places a block and propagates visibility around it. Adding to an
// occupied cell is a no-op.
func (w *World) AddBlock(key voxel.BlockKey, blockType voxel.BlockType) {
	if w.Store.Contains(key) {
		return
	}
	w.Store.Insert(key, blockType)
	w.Vis.RefreshAround(key)
}

// RemoveBlock removes a block and propagates visibility around it. Removing
// from an empty cell is a no-op.
func (w *World) RemoveBlock(key voxel.BlockKey) {
	if !w.Store.Contains(key) {
		return
	}
	w.Store.Remove(key)
	w.Vis.RefreshAround(key)
}

// Generate fills a size x size world from the terrain generator. Blocks are
// inserted straight into the store, then a single pass creates geometry for
// the exposed ones, then every dirty chunk is combined at once so the first
// frame starts complete.
func (w *World) Generate(size int) {
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			top := w.gen.Height(x, z)
			for y := 0; y < top; y++ {
				w.Store.Insert(voxel.BlockKey{X: x, Y: y, Z: z}, w.gen.LayerType(y, top))
			}
		}
	}

	w.Store.ForEach(func(key voxel.BlockKey, blockType voxel.BlockType) {
		if w.Vis.Exposed(key) {
			w.Batcher.CreateBlockRender(key, blockType)
		}
	})
	w.Batcher.CollectAll()
}

// GroundLevel returns the Y coordinate of the walkable surface of a column:
// one above its highest stored block, or the generator's height for the
// column when nothing is stored there (the generator being pure makes this
// well-defined for columns that were never materialized).
func (w *World) GroundLevel(column voxel.ColumnKey) float64 {
	if top, ok := w.Store.TopAt(column); ok {
		return float64(top + 1)
	}
	return float64(w.gen.Height(column.X, column.Z))
}
