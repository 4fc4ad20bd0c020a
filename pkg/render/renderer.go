package render

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"craftbox/internal/openglhelper"
	"craftbox/pkg/voxel"
)

// skyColor is the clear color behind the world
var skyColor = mgl32.Vec4{0.49, 0.72, 0.98, 1.0}

// Renderer is the OpenGL implementation of the GeometryHost. Each batch root
// owns one vertex/index buffer pair holding the combined geometry of all its
// live block instances; Combine rebuilds that buffer from scratch, which is
// the expensive operation the ChunkBatcher rations per frame.
type Renderer struct {
	window *openglhelper.Window
	camera *Camera

	blockShader   *openglhelper.Shader
	overlayShader *openglhelper.Shader
	textures      map[voxel.BlockType]*openglhelper.Texture

	nextHandle uint64
	batches    map[BatchHandle]*batchGeometry
	blocks     map[BlockHandle]*blockInstance

	crosshairVAO *openglhelper.VertexArrayObject
	crosshairVBO *openglhelper.BufferObject
}

// blockInstance is one block's pending geometry: position and texture as
// last set by the batcher, folded into the batch buffer on the next combine
type blockInstance struct {
	batch     BatchHandle
	pos       mgl64.Vec3
	blockType voxel.BlockType
}

// batchGeometry is one chunk's combined mesh on the GPU
type batchGeometry struct {
	blocks map[BlockHandle]*blockInstance

	vao *openglhelper.VertexArrayObject
	vbo *openglhelper.BufferObject
	ebo *openglhelper.BufferObject

	ranges []drawRange
}

// drawRange is a contiguous index span of a batch buffer sharing one texture
type drawRange struct {
	blockType  voxel.BlockType
	firstIndex int
	indexCount int32
}

// NewRenderer creates a window with an OpenGL context and loads the block
// textures from textureDir. A missing texture is a fatal startup error: the
// world cannot be drawn without it.
func NewRenderer(width, height int, title, textureDir string) (*Renderer, error) {
	window, err := openglhelper.NewWindow(width, height, title, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	blockShader, err := openglhelper.NewShader(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to build block shader: %w", err)
	}
	overlayShader, err := openglhelper.NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to build overlay shader: %w", err)
	}

	textures := make(map[voxel.BlockType]*openglhelper.Texture)
	for _, blockType := range voxel.SolidTypes() {
		path := filepath.Join(textureDir, blockType.TextureFile())
		texture, err := openglhelper.LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s texture: %w", blockType, err)
		}
		textures[blockType] = texture
	}

	r := &Renderer{
		window:        window,
		camera:        NewCamera(width, height),
		blockShader:   blockShader,
		overlayShader: overlayShader,
		textures:      textures,
		batches:       make(map[BatchHandle]*batchGeometry),
		blocks:        make(map[BlockHandle]*blockInstance),
	}
	r.initCrosshair()

	return r, nil
}

// Window returns the renderer's window for input wiring
func (r *Renderer) Window() *openglhelper.Window {
	return r.window
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// OnFramebufferResize adjusts the viewport and projection to a new size
func (r *Renderer) OnFramebufferResize(width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}

// CreateBatch implements GeometryHost
func (r *Renderer) CreateBatch(_ voxel.ChunkKey) BatchHandle {
	r.nextHandle++
	handle := BatchHandle(r.nextHandle)

	vao := openglhelper.NewVAO()
	vao.Bind()
	vbo := openglhelper.NewVBO(nil, openglhelper.DynamicDraw)
	ebo := openglhelper.NewEBO(nil, openglhelper.DynamicDraw)
	stride := int32(cubeVertexStride * 4)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, stride, 6*4)
	vao.Unbind()

	r.batches[handle] = &batchGeometry{
		blocks: make(map[BlockHandle]*blockInstance),
		vao:    vao,
		vbo:    vbo,
		ebo:    ebo,
	}
	return handle
}

// Instantiate implements GeometryHost
func (r *Renderer) Instantiate(batch BatchHandle) BlockHandle {
	r.nextHandle++
	handle := BlockHandle(r.nextHandle)

	instance := &blockInstance{batch: batch}
	r.blocks[handle] = instance
	if bg, ok := r.batches[batch]; ok {
		bg.blocks[handle] = instance
	}
	return handle
}

// SetPosition implements GeometryHost
func (r *Renderer) SetPosition(handle BlockHandle, pos mgl64.Vec3) {
	if instance, ok := r.blocks[handle]; ok {
		instance.pos = pos
	}
}

// SetTexture implements GeometryHost
func (r *Renderer) SetTexture(handle BlockHandle, blockType voxel.BlockType) {
	if instance, ok := r.blocks[handle]; ok {
		instance.blockType = blockType
	}
}

// Destroy implements GeometryHost
func (r *Renderer) Destroy(handle BlockHandle) {
	instance, ok := r.blocks[handle]
	if !ok {
		return
	}
	delete(r.blocks, handle)
	if bg, ok := r.batches[instance.batch]; ok {
		delete(bg.blocks, handle)
	}
}

// Combine implements GeometryHost. It rewrites the batch's vertex and index
// buffers from its live block instances, grouped by texture so the draw loop
// can bind each texture once per batch.
func (r *Renderer) Combine(batch BatchHandle) {
	bg, ok := r.batches[batch]
	if !ok {
		return
	}

	handles := make([]BlockHandle, 0, len(bg.blocks))
	for handle := range bg.blocks {
		handles = append(handles, handle)
	}
	sort.Slice(handles, func(i, j int) bool {
		a, b := bg.blocks[handles[i]], bg.blocks[handles[j]]
		if a.blockType != b.blockType {
			return a.blockType < b.blockType
		}
		return handles[i] < handles[j]
	})

	vertices := make([]float32, 0, len(handles)*len(cubeVertices))
	indices := make([]uint32, 0, len(handles)*len(cubeIndices))
	bg.ranges = bg.ranges[:0]

	for _, handle := range handles {
		instance := bg.blocks[handle]

		if n := len(bg.ranges); n == 0 || bg.ranges[n-1].blockType != instance.blockType {
			bg.ranges = append(bg.ranges, drawRange{
				blockType:  instance.blockType,
				firstIndex: len(indices),
			})
		}

		base := uint32(len(vertices) / cubeVertexStride)
		ox := float32(instance.pos.X())
		oy := float32(instance.pos.Y())
		oz := float32(instance.pos.Z())
		for v := 0; v < cubeVertexCount; v++ {
			i := v * cubeVertexStride
			vertices = append(vertices,
				cubeVertices[i]+ox, cubeVertices[i+1]+oy, cubeVertices[i+2]+oz,
				cubeVertices[i+3], cubeVertices[i+4], cubeVertices[i+5],
				cubeVertices[i+6], cubeVertices[i+7],
			)
		}
		for _, index := range cubeIndices {
			indices = append(indices, base+index)
		}
		bg.ranges[len(bg.ranges)-1].indexCount += int32(len(cubeIndices))
	}

	bg.vbo.SetData(vertices)
	bg.ebo.SetIndexData(indices)
}

// Draw renders one frame: the combined chunk meshes, then the crosshair
func (r *Renderer) Draw() {
	r.window.Clear(skyColor)

	r.blockShader.Use()
	r.blockShader.SetMat4("view", r.camera.ViewMatrix())
	r.blockShader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.blockShader.SetInt("blockTexture", 0)

	for _, bg := range r.batches {
		if len(bg.ranges) == 0 {
			continue
		}
		bg.vao.Bind()
		for _, span := range bg.ranges {
			r.textures[span.blockType].Bind(0)
			gl.DrawElements(gl.TRIANGLES, span.indexCount, gl.UNSIGNED_INT,
				gl.PtrOffset(span.firstIndex*4))
		}
		bg.vao.Unbind()
	}

	r.drawCrosshair()
}

// initCrosshair builds the static line geometry around screen center
func (r *Renderer) initCrosshair() {
	const gap = float32(0.015)
	const segment = float32(0.025)

	width, height := r.window.Size()
	aspect := float32(width) / float32(height)

	// Horizontal extents are divided by the aspect ratio so the segments
	// have equal on-screen length.
	lines := []float32{
		-(gap + segment) / aspect, 0, -gap / aspect, 0,
		gap / aspect, 0, (gap + segment) / aspect, 0,
		0, -(gap + segment), 0, -gap,
		0, gap, 0, gap + segment,
	}

	r.crosshairVAO = openglhelper.NewVAO()
	r.crosshairVAO.Bind()
	r.crosshairVBO = openglhelper.NewVBO(lines, openglhelper.StaticDraw)
	r.crosshairVAO.SetVertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, 0)
	r.crosshairVAO.Unbind()
}

// drawCrosshair draws the crosshair overlay with depth testing off
func (r *Renderer) drawCrosshair() {
	gl.Disable(gl.DEPTH_TEST)
	r.overlayShader.Use()
	r.crosshairVAO.Bind()
	gl.LineWidth(2.0)
	gl.DrawArrays(gl.LINES, 0, 8)
	r.crosshairVAO.Unbind()
	gl.Enable(gl.DEPTH_TEST)
}

// Close releases GPU resources and the window
func (r *Renderer) Close() {
	for _, bg := range r.batches {
		bg.vao.Delete()
		bg.vbo.Delete()
		bg.ebo.Delete()
	}
	for _, texture := range r.textures {
		texture.Delete()
	}
	r.crosshairVAO.Delete()
	r.crosshairVBO.Delete()
	r.blockShader.Delete()
	r.overlayShader.Delete()
	r.window.Close()
}
