package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyW         = glfw.KeyW
	KeyA         = glfw.KeyA
	KeyS         = glfw.KeyS
	KeyD         = glfw.KeyD
	KeySpace     = glfw.KeySpace
	KeyEscape    = glfw.KeyEscape
	KeyLeftShift = glfw.KeyLeftShift
)

// Mouse button constants
const (
	MouseLeft  = glfw.MouseButtonLeft
	MouseRight = glfw.MouseButtonRight
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Field of view
	DefaultFOV = 70.0

	// Near/far clip planes. The near plane is tight so standing one block
	// from a wall does not clip into it.
	NearClip = 0.05
	FarClip  = 500.0

	// Pitch constraints to avoid gimbal lock
	MaxPitch = 89.0
	MinPitch = -89.0
)
