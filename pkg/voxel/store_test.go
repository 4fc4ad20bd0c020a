package voxel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkColumnInvariant verifies that the derived column indices exactly
// reflect the block map for every column touched by keys
func checkColumnInvariant(t *testing.T, store *Store, keys []BlockKey) {
	t.Helper()

	columns := make(map[ColumnKey]struct{})
	for _, key := range keys {
		columns[key.Column()] = struct{}{}
	}

	for column := range columns {
		layers := store.Layers(column)
		top, hasTop := store.TopAt(column)

		if len(layers) == 0 {
			assert.False(t, hasTop, "column %v has a top but no layers", column)
			continue
		}

		require.True(t, hasTop, "column %v has layers but no top", column)
		assert.Equal(t, layers[len(layers)-1], top, "column %v top is not max layer", column)

		for _, layer := range layers {
			assert.True(t, store.Contains(BlockKey{X: column.X, Y: layer, Z: column.Z}),
				"layer %d of column %v not in block map", layer, column)
		}
	}
}

func TestStoreInsertRemove(t *testing.T) {
	store := NewStore()
	key := BlockKey{X: 1, Y: 2, Z: 3}

	store.Insert(key, Grass)
	require.True(t, store.Contains(key))
	blockType, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, Grass, blockType)

	top, ok := store.TopAt(key.Column())
	require.True(t, ok)
	assert.Equal(t, 2, top)

	store.Remove(key)
	assert.False(t, store.Contains(key))
	_, ok = store.TopAt(key.Column())
	assert.False(t, ok)
	assert.Empty(t, store.Layers(key.Column()))
}

func TestStoreInsertExistingIsNoop(t *testing.T) {
	store := NewStore()
	key := BlockKey{X: 0, Y: 5, Z: 0}

	store.Insert(key, Stone)
	store.Insert(key, Grass) // must not overwrite

	blockType, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, Stone, blockType)
	assert.Equal(t, 1, store.Len())
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	store := NewStore()
	store.Insert(BlockKey{X: 0, Y: 0, Z: 0}, Dirt)

	store.Remove(BlockKey{X: 9, Y: 9, Z: 9})
	store.Remove(BlockKey{X: 9, Y: 9, Z: 9})

	assert.Equal(t, 1, store.Len())
	top, ok := store.TopAt(ColumnKey{X: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, 0, top)
}

func TestStoreTopRecomputedOnRemove(t *testing.T) {
	store := NewStore()
	column := ColumnKey{X: 2, Z: 2}
	for _, y := range []int{0, 3, 7} {
		store.Insert(BlockKey{X: 2, Y: y, Z: 2}, Stone)
	}

	store.Remove(BlockKey{X: 2, Y: 7, Z: 2})
	top, ok := store.TopAt(column)
	require.True(t, ok)
	assert.Equal(t, 3, top)

	// Removing a non-top layer leaves the top alone
	store.Remove(BlockKey{X: 2, Y: 0, Z: 2})
	top, ok = store.TopAt(column)
	require.True(t, ok)
	assert.Equal(t, 3, top)

	store.Remove(BlockKey{X: 2, Y: 3, Z: 2})
	_, ok = store.TopAt(column)
	assert.False(t, ok)
}

func TestStoreColumnInvariantUnderRandomMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	store := NewStore()

	var keys []BlockKey
	for i := 0; i < 3000; i++ {
		key := BlockKey{
			X: rng.Intn(6) - 3,
			Y: rng.Intn(10),
			Z: rng.Intn(6) - 3,
		}
		keys = append(keys, key)

		if rng.Float64() < 0.6 {
			store.Insert(key, Stone)
		} else {
			store.Remove(key)
		}
	}

	checkColumnInvariant(t, store, keys)
}

func TestHighestLayerAtOrBelow(t *testing.T) {
	store := NewStore()
	column := ColumnKey{X: 0, Z: 0}
	for _, y := range []int{0, 2, 5} {
		store.Insert(BlockKey{X: 0, Y: y, Z: 0}, Stone)
	}

	// Fast path: the column top already satisfies the limit
	layer, ok := store.HighestLayerAtOrBelow(column, 5.0)
	require.True(t, ok)
	assert.Equal(t, 5, layer)

	// Scan path: the top is above the limit
	layer, ok = store.HighestLayerAtOrBelow(column, 4.9)
	require.True(t, ok)
	assert.Equal(t, 2, layer)

	layer, ok = store.HighestLayerAtOrBelow(column, 1.0)
	require.True(t, ok)
	assert.Equal(t, 0, layer)

	_, ok = store.HighestLayerAtOrBelow(column, -0.5)
	assert.False(t, ok)

	_, ok = store.HighestLayerAtOrBelow(ColumnKey{X: 9, Z: 9}, 100.0)
	assert.False(t, ok)
}
