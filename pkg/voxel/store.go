package voxel

import "sort"

// Store is the sparse block map: the single source of truth for which blocks
// exist in the world. Alongside the block map it maintains two derived
// per-column indices used by the physics fast paths:
//
//   - the set of occupied layers (Y values) in each column
//   - the highest occupied layer in each column
//
// Both indices are kept exactly consistent with the block map on every
// mutation; a column has entries in both or in neither.
type Store struct {
	blocks       map[BlockKey]BlockType
	columnLayers map[ColumnKey]map[int]struct{}
	columnTops   map[ColumnKey]int
}

// NewStore creates an empty block store
func NewStore() *Store {
	return &Store{
		blocks:       make(map[BlockKey]BlockType),
		columnLayers: make(map[ColumnKey]map[int]struct{}),
		columnTops:   make(map[ColumnKey]int),
	}
}

// Insert adds a block to the store and updates the column indices.
// Inserting a key that is already present is a no-op.
func (s *Store) Insert(key BlockKey, blockType BlockType) {
	if _, exists := s.blocks[key]; exists {
		return
	}
	s.blocks[key] = blockType

	column := key.Column()
	layers, ok := s.columnLayers[column]
	if !ok {
		layers = make(map[int]struct{})
		s.columnLayers[column] = layers
	}
	layers[key.Y] = struct{}{}

	top, ok := s.columnTops[column]
	if !ok || key.Y > top {
		s.columnTops[column] = key.Y
	}
}

// Remove deletes a block from the store and updates the column indices.
// Removing an absent key is a no-op. The column top is recomputed from the
// remaining layers of that column only, never by scanning the whole world.
func (s *Store) Remove(key BlockKey) {
	if _, exists := s.blocks[key]; !exists {
		return
	}
	delete(s.blocks, key)

	column := key.Column()
	layers := s.columnLayers[column]
	delete(layers, key.Y)

	if len(layers) == 0 {
		delete(s.columnLayers, column)
		delete(s.columnTops, column)
		return
	}

	if s.columnTops[column] == key.Y {
		top := 0
		first := true
		for layer := range layers {
			if first || layer > top {
				top = layer
				first = false
			}
		}
		s.columnTops[column] = top
	}
}

// Contains reports whether a block exists at the given key
func (s *Store) Contains(key BlockKey) bool {
	_, exists := s.blocks[key]
	return exists
}

// Get returns the block type at the given key and whether the block exists
func (s *Store) Get(key BlockKey) (BlockType, bool) {
	blockType, exists := s.blocks[key]
	return blockType, exists
}

// TopAt returns the highest occupied layer of a column and whether the
// column has any blocks at all
func (s *Store) TopAt(column ColumnKey) (int, bool) {
	top, ok := s.columnTops[column]
	return top, ok
}

// Layers returns the occupied layers of a column in ascending order.
// The returned slice is a copy and safe to retain.
func (s *Store) Layers(column ColumnKey) []int {
	layers := s.columnLayers[column]
	if len(layers) == 0 {
		return nil
	}
	out := make([]int, 0, len(layers))
	for layer := range layers {
		out = append(out, layer)
	}
	sort.Ints(out)
	return out
}

// HighestLayerAtOrBelow returns the highest occupied layer of a column that
// does not exceed limit. When the column top itself satisfies the limit it is
// returned directly; otherwise the column's layers are scanned.
func (s *Store) HighestLayerAtOrBelow(column ColumnKey, limit float64) (int, bool) {
	layers := s.columnLayers[column]
	if len(layers) == 0 {
		return 0, false
	}

	if top, ok := s.columnTops[column]; ok && float64(top) <= limit {
		return top, true
	}

	best := 0
	found := false
	for layer := range layers {
		if float64(layer) > limit {
			continue
		}
		if !found || layer > best {
			best = layer
			found = true
		}
	}
	return best, found
}

// Len returns the number of blocks in the store
func (s *Store) Len() int {
	return len(s.blocks)
}

// ForEach calls fn for every block in the store. Iteration order is
// unspecified. The store must not be mutated during iteration.
func (s *Store) ForEach(fn func(key BlockKey, blockType BlockType)) {
	for key, blockType := range s.blocks {
		fn(key, blockType)
	}
}
