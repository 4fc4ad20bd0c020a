package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera implements the first-person camera. It does not move on its own:
// the game session feeds it the player's eye position and orientation each
// tick and the renderer reads back matrices.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Projection
	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera with the block-world projection defaults
func NewCamera(width, height int) *Camera {
	camera := &Camera{
		worldUp: mgl32.Vec3{0, 1, 0},
		fov:     DefaultFOV,
		width:   width,
		height:  height,
	}
	camera.updateCameraVectors()
	camera.updateProjectionMatrix()
	return camera
}

// Follow places the camera at the given eye position with the given
// orientation. Pitch is clamped to the camera constraints.
func (c *Camera) Follow(eye mgl64.Vec3, yaw, pitch float64) {
	c.position = mgl32.Vec3{float32(eye.X()), float32(eye.Y()), float32(eye.Z())}
	c.yaw = float32(yaw)
	c.pitch = float32(mgl64.Clamp(pitch, MinPitch, MaxPitch))
	c.updateCameraVectors()
}

// updateCameraVectors recalculates camera vectors from the Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearClip, FarClip)
}

// UpdateProjectionMatrix updates the projection matrix for new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}
