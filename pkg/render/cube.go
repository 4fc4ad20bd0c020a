package render

// Prototype cube geometry used for every block. The cube spans [0,1] on each
// axis so a block placed at its key's origin exactly fills its grid cell.
// Each vertex carries position (3), normal (3) and texture coordinates (2).

const cubeVertexStride = 8

var cubeVertices = []float32{
	// Front face (+Z)
	0, 0, 1, 0, 0, 1, 0, 0,
	1, 0, 1, 0, 0, 1, 1, 0,
	1, 1, 1, 0, 0, 1, 1, 1,
	0, 1, 1, 0, 0, 1, 0, 1,

	// Back face (-Z)
	0, 0, 0, 0, 0, -1, 1, 0,
	0, 1, 0, 0, 0, -1, 1, 1,
	1, 1, 0, 0, 0, -1, 0, 1,
	1, 0, 0, 0, 0, -1, 0, 0,

	// Top face (+Y)
	0, 1, 0, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 0,
	1, 1, 1, 0, 1, 0, 1, 0,
	1, 1, 0, 0, 1, 0, 1, 1,

	// Bottom face (-Y)
	0, 0, 0, 0, -1, 0, 0, 0,
	1, 0, 0, 0, -1, 0, 1, 0,
	1, 0, 1, 0, -1, 0, 1, 1,
	0, 0, 1, 0, -1, 0, 0, 1,

	// Right face (+X)
	1, 0, 0, 1, 0, 0, 1, 0,
	1, 1, 0, 1, 0, 0, 1, 1,
	1, 1, 1, 1, 0, 0, 0, 1,
	1, 0, 1, 1, 0, 0, 0, 0,

	// Left face (-X)
	0, 0, 0, -1, 0, 0, 0, 0,
	0, 0, 1, -1, 0, 0, 1, 0,
	0, 1, 1, -1, 0, 0, 1, 1,
	0, 1, 0, -1, 0, 0, 0, 1,
}

var cubeIndices = []uint32{
	0, 1, 2, 2, 3, 0, // Front face
	4, 5, 6, 6, 7, 4, // Back face
	8, 9, 10, 10, 11, 8, // Top face
	12, 13, 14, 14, 15, 12, // Bottom face
	16, 17, 18, 18, 19, 16, // Right face
	20, 21, 22, 22, 23, 20, // Left face
}

// cubeVertexCount is the number of vertices one block instance contributes
const cubeVertexCount = 24
