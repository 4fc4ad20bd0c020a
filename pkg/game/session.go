package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"craftbox/internal/config"
	"craftbox/pkg/render"
	"craftbox/pkg/voxel"
)

// Session wires the world, the player and the interaction model together and
// drives them through one tick per rendered frame. All state mutation is
// synchronous inside Step, in a fixed order (mouse look, horizontal movement,
// vertical physics, then the bounded chunk-combine drain), so there is
// exactly one writer and no locking anywhere in the simulation.
type Session struct {
	World  *World
	Player *Player

	cfg        config.Config
	controller *Controller
	raycaster  *Raycaster
}

// NewSession builds the world from the terrain generator, spawns the player
// above the world center and returns the ready-to-tick session. All geometry
// for the generated world is created and combined before this returns.
func NewSession(cfg config.Config, host render.GeometryHost) *Session {
	gen := voxel.NewGenerator(cfg.World.BaseHeight, cfg.World.HeightVariation, cfg.World.MaxHeight)
	batcher := render.NewChunkBatcher(host)

	world := NewWorld(gen, batcher)
	world.Generate(cfg.World.Size)

	player := &Player{}
	controller := NewController(cfg.Player, player, world, cfg.World.Size)
	controller.Spawn()

	return &Session{
		World:      world,
		Player:     player,
		cfg:        cfg,
		controller: controller,
		raycaster:  NewRaycaster(world.Store, cfg.Player.ReachDistance),
	}
}

// Step advances the simulation by dt seconds
func (s *Session) Step(dt float64, look MouseDelta, move MoveInput) {
	s.controller.Look(look)
	s.controller.StepHorizontal(dt, move)
	s.controller.StepVertical(dt)
	s.World.Batcher.CollectDirty(s.cfg.Render.ChunkCollectsPerFrame)
}

// TryJump makes the player jump if grounded
func (s *Session) TryJump() {
	s.controller.TryJump()
}

// PlaceBlock puts a grass block into the empty cell in front of the targeted
// block face. It reports whether a block was placed; placement is refused
// when nothing is targeted within reach, when the candidate cell is occupied
// or when the new block would overlap the player.
func (s *Session) PlaceBlock() bool {
	hit, ok := s.raycaster.Cast(s.controller.EyePosition(), s.controller.LookDirection())
	if !ok || !hit.HasPlace {
		return false
	}
	if s.World.Store.Contains(hit.Place) {
		return false
	}
	if s.controller.OverlapsPlayer(hit.Place) {
		return false
	}
	s.World.AddBlock(hit.Place, voxel.Grass)
	return true
}

// BreakBlock removes the targeted block, reporting whether one was hit
func (s *Session) BreakBlock() bool {
	hit, ok := s.raycaster.Cast(s.controller.EyePosition(), s.controller.LookDirection())
	if !ok {
		return false
	}
	s.World.RemoveBlock(hit.Block)
	return true
}

// EyePosition returns the camera anchor position
func (s *Session) EyePosition() mgl64.Vec3 {
	return s.controller.EyePosition()
}

// Orientation returns the player's yaw and pitch in degrees
func (s *Session) Orientation() (yaw, pitch float64) {
	return s.Player.Yaw, s.Player.Pitch
}
