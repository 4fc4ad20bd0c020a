package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"craftbox/internal/config"
	"craftbox/pkg/voxel"
)

// Player Y coordinate below which the fall-through safety net teleports the
// player back above the world center
const fallThroughY = -25.0

// Spawn drop height above the ground, so the player visibly falls in
const spawnDropHeight = 6.0

// MoveInput is the player's horizontal movement intent for one tick
type MoveInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool
}

// MouseDelta is the pointer movement since the previous tick
type MouseDelta struct {
	DX float64
	DY float64
}

// Player holds the player state. Pos is the top of the player's head; the
// feet are Height below it. Only the Controller mutates a Player.
type Player struct {
	Pos      mgl64.Vec3
	VelY     float64
	Grounded bool
	Yaw      float64 // degrees
	Pitch    float64 // degrees, clamped to [-89, 89]
}

// FeetY returns the player's feet Y coordinate for the given body height
func (p *Player) FeetY(height float64) float64 {
	return p.Pos.Y() - height
}

// Controller advances the player state machine each tick: mouse look,
// per-axis horizontal movement, then vertical physics with ground snapping.
// The grounded/airborne state lives in the Player it owns exclusively.
type Controller struct {
	cfg       config.PlayerConfig
	player    *Player
	world     *World
	resolver  *Resolver
	worldSize int
}

// NewController creates a controller for the given player in the given world
func NewController(cfg config.PlayerConfig, player *Player, world *World, worldSize int) *Controller {
	return &Controller{
		cfg:       cfg,
		player:    player,
		world:     world,
		resolver:  NewResolver(world.Store, cfg.Height, cfg.Radius),
		worldSize: worldSize,
	}
}

// Spawn places the player above the world-center column, dropping in from
// spawnDropHeight, facing into the world.
func (c *Controller) Spawn() {
	c.respawn()
	c.player.Yaw = 45.0
	c.player.Pitch = -18.0
}

// respawn moves the player back above the world center without touching the
// orientation. This is the safety net against falling out of the terrain.
func (c *Controller) respawn() {
	center := c.worldSize / 2
	ground := c.world.GroundLevel(voxel.ColumnKey{X: center, Z: center})

	c.player.Pos = mgl64.Vec3{
		float64(center) + 0.5,
		ground + c.cfg.Height + spawnDropHeight,
		float64(center) + 0.5,
	}
	c.player.VelY = 0
	c.player.Grounded = false
}

// Look applies a pointer delta to the player orientation. Moving the mouse
// right turns right; moving it forward (screen up, negative DY) pitches up.
func (c *Controller) Look(delta MouseDelta) {
	c.player.Yaw += delta.DX * c.cfg.MouseSensitivity
	c.player.Pitch -= delta.DY * c.cfg.MouseSensitivity
	c.player.Pitch = mgl64.Clamp(c.player.Pitch, -89.0, 89.0)
}

// LookDirection returns the unit vector the player is looking along
func (c *Controller) LookDirection() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.player.Yaw)
	pitch := mgl64.DegToRad(c.player.Pitch)
	return mgl64.Vec3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		math.Sin(yaw) * math.Cos(pitch),
	}.Normalize()
}

// EyePosition returns the camera anchor, slightly below the top of the head
func (c *Controller) EyePosition() mgl64.Vec3 {
	return mgl64.Vec3{c.player.Pos.X(), c.player.Pos.Y() - c.cfg.EyeOffset, c.player.Pos.Z()}
}

// StepHorizontal applies WASD intent projected onto the camera's horizontal
// plane. The X and Z displacements are tested and committed independently so
// the player slides along walls: a blocked diagonal still advances along
// whichever axis is clear.
func (c *Controller) StepHorizontal(dt float64, input MoveInput) {
	inputRight := boolToAxis(input.Right) - boolToAxis(input.Left)
	inputForward := boolToAxis(input.Forward) - boolToAxis(input.Backward)
	if inputRight == 0 && inputForward == 0 {
		return
	}

	yaw := mgl64.DegToRad(c.player.Yaw)
	forward := mgl64.Vec3{math.Cos(yaw), 0, math.Sin(yaw)}
	right := mgl64.Vec3{-math.Sin(yaw), 0, math.Cos(yaw)}

	move := forward.Mul(inputForward).Add(right.Mul(inputRight))
	if move.LenSqr() == 0 {
		return
	}
	move = move.Normalize()

	speed := c.cfg.WalkSpeed
	if input.Sprint {
		speed = c.cfg.SprintSpeed
	}
	movement := move.Mul(speed * dt)

	next := mgl64.Vec3{c.player.Pos.X() + movement.X(), c.player.Pos.Y(), c.player.Pos.Z()}
	if !c.resolver.Collides(next) {
		c.player.Pos[0] = next.X()
	}

	next = mgl64.Vec3{c.player.Pos.X(), c.player.Pos.Y(), c.player.Pos.Z() + movement.Z()}
	if !c.resolver.Collides(next) {
		c.player.Pos[2] = next.Z()
	}
}

// StepVertical integrates gravity and resolves ground contact. The support
// window widens with fall speed so fast falls cannot tunnel through thin
// ledges, while slow descents do not snap onto blocks from far above.
func (c *Controller) StepVertical(dt float64) {
	c.player.VelY -= c.cfg.Gravity * dt
	c.player.Pos[1] += c.player.VelY * dt

	feetY := c.player.FeetY(c.cfg.Height)
	supportTolerance := mgl64.Clamp(-c.player.VelY*dt+0.05, 0.3, 1.5)
	ground := c.resolver.GroundHeight(c.player.Pos.X(), c.player.Pos.Z(), feetY, supportTolerance)

	if feetY < ground {
		c.player.Pos[1] = ground + c.cfg.Height
		c.player.VelY = 0
		c.player.Grounded = true
	} else {
		c.player.Grounded = false
	}

	if c.player.Pos.Y() < fallThroughY {
		c.respawn()
	}
}

// TryJump starts a jump if the player is grounded; airborne it does nothing
func (c *Controller) TryJump() {
	if !c.player.Grounded {
		return
	}
	c.player.VelY = c.cfg.JumpSpeed
	c.player.Grounded = false
}

// OverlapsPlayer reports whether the given block cell intersects the
// player's bounding box. Used to refuse placements that would trap the
// player inside a block.
func (c *Controller) OverlapsPlayer(key voxel.BlockKey) bool {
	blockMin := key.Origin()
	blockMax := blockMin.Add(mgl64.Vec3{1, 1, 1})

	playerMin := mgl64.Vec3{
		c.player.Pos.X() - c.cfg.Radius,
		c.player.Pos.Y() - c.cfg.Height,
		c.player.Pos.Z() - c.cfg.Radius,
	}
	playerMax := mgl64.Vec3{
		c.player.Pos.X() + c.cfg.Radius,
		c.player.Pos.Y(),
		c.player.Pos.Z() + c.cfg.Radius,
	}

	for axis := 0; axis < 3; axis++ {
		if blockMin[axis] >= playerMax[axis] || blockMax[axis] <= playerMin[axis] {
			return false
		}
	}
	return true
}

// boolToAxis converts a key state to its contribution on a movement axis
func boolToAxis(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
