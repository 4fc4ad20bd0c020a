package voxel

// BlockType represents the different types of blocks in the game
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone
)

// blockNames maps block types to their display names
var blockNames = map[BlockType]string{
	Air:   "air",
	Grass: "grass",
	Dirt:  "dirt",
	Stone: "stone",
}

// textureFiles maps solid block types to their texture asset file names
var textureFiles = map[BlockType]string{
	Grass: "grass_block.png",
	Dirt:  "dirt_block.png",
	Stone: "stone_block.png",
}

// String returns the display name of the block type
func (b BlockType) String() string {
	name, ok := blockNames[b]
	if !ok {
		return "unknown"
	}
	return name
}

// TextureFile returns the texture asset file name for the block type.
// Air has no texture and returns an empty string.
func (b BlockType) TextureFile() string {
	return textureFiles[b]
}

// SolidTypes returns all block types that occupy space in the world
func SolidTypes() []BlockType {
	return []BlockType{Grass, Dirt, Stone}
}
