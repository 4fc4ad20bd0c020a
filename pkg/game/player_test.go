package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftbox/internal/config"
	"craftbox/pkg/voxel"
)

const tickDt = 1.0 / 60.0

// newTestController wires a controller with the reference physics parameters
// around the given world
func newTestController(world *World, worldSize int) (*Controller, *Player) {
	player := &Player{}
	return NewController(config.Default().Player, player, world, worldSize), player
}

// standPlayerAt puts the player grounded with feet on top of layer 0
func standPlayerAt(player *Player, x, z float64) {
	player.Pos = mgl64.Vec3{x, 3.0, z}
	player.VelY = 0
	player.Grounded = true
}

func TestIdlePlayerRestsOnPlatform(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 7, 0, 0, 0, 7, voxel.Grass)

	ctrl, player := newTestController(world, 8)
	standPlayerAt(player, 4.5, 4.5)

	for i := 0; i < 120; i++ {
		ctrl.StepHorizontal(tickDt, MoveInput{})
		ctrl.StepVertical(tickDt)

		require.True(t, player.Grounded, "tick %d: player left the ground", i)
		require.Equal(t, 3.0, player.Pos.Y(), "tick %d: snap must restore the resting height", i)
	}

	assert.Equal(t, 4.5, player.Pos.X())
	assert.Equal(t, 4.5, player.Pos.Z())
	assert.Equal(t, 1.0, player.FeetY(2.0))
}

func TestWalkIntoWallStops(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 11, 0, 0, 0, 5, voxel.Grass)
	fillBox(world, 6, 6, 1, 2, 0, 5, voxel.Stone)

	ctrl, player := newTestController(world, 12)
	standPlayerAt(player, 3.5, 2.5)
	player.Yaw = 0 // facing +X, straight at the wall

	for i := 0; i < 240; i++ {
		ctrl.StepHorizontal(tickDt, MoveInput{Forward: true})
		ctrl.StepVertical(tickDt)

		require.True(t, player.Grounded, "tick %d: walking must not unground", i)
		require.Equal(t, 3.0, player.Pos.Y(), "tick %d: must not climb the wall", i)
	}

	// The body is 0.49 wide around the center: the closest standable center is
	// just short of 6 - 0.49 = 5.51
	assert.Less(t, player.Pos.X(), 5.51)
	assert.Greater(t, player.Pos.X(), 5.41, "player should end pressed against the wall")
	assert.Equal(t, 2.5, player.Pos.Z())
}

func TestWalkUnderOverhang(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 11, 0, 0, 0, 5, voxel.Grass)
	fillBox(world, 5, 8, 3, 3, 0, 5, voxel.Stone) // ceiling one block above the head

	ctrl, player := newTestController(world, 12)
	standPlayerAt(player, 2.5, 2.5)
	player.Yaw = 0

	for i := 0; i < 60; i++ {
		ctrl.StepHorizontal(tickDt, MoveInput{Forward: true})
		ctrl.StepVertical(tickDt)

		require.Equal(t, 3.0, player.Pos.Y(),
			"tick %d: feet must stay on the floor, never snap up to the overhang", i)
		require.True(t, player.Grounded, "tick %d", i)
	}

	assert.Greater(t, player.Pos.X(), 6.5, "player should have passed under the overhang")
}

func TestRemovingSupportDropsPlayer(t *testing.T) {
	world, _ := newTestWorld()
	support := voxel.BlockKey{X: 4, Y: 0, Z: 4}
	world.AddBlock(support, voxel.Stone)

	ctrl, player := newTestController(world, 8)
	standPlayerAt(player, 4.5, 4.5)

	ctrl.StepVertical(tickDt)
	require.True(t, player.Grounded)

	world.RemoveBlock(support)
	ctrl.StepVertical(tickDt)

	assert.False(t, player.Grounded)
	assert.Negative(t, player.VelY)
	assert.Less(t, player.Pos.Y(), 3.0)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 7, 0, 0, 0, 7, voxel.Grass)

	ctrl, player := newTestController(world, 8)
	standPlayerAt(player, 4.5, 4.5)

	ctrl.TryJump()
	assert.Equal(t, 8.5, player.VelY)
	assert.False(t, player.Grounded)

	// Airborne jumps do nothing
	ctrl.TryJump()
	assert.Equal(t, 8.5, player.VelY)

	player.VelY = -3.0
	ctrl.TryJump()
	assert.Equal(t, -3.0, player.VelY)
}

func TestJumpArcReturnsToGround(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 7, 0, 0, 0, 7, voxel.Grass)

	ctrl, player := newTestController(world, 8)
	standPlayerAt(player, 4.5, 4.5)

	ctrl.TryJump()

	maxFeet := player.FeetY(2.0)
	landed := false
	for i := 0; i < 120; i++ {
		ctrl.StepVertical(tickDt)
		if feet := player.FeetY(2.0); feet > maxFeet {
			maxFeet = feet
		}
		if player.Grounded {
			landed = true
			break
		}
	}

	require.True(t, landed, "jump must end back on the ground")
	assert.Equal(t, 3.0, player.Pos.Y())
	assert.Greater(t, maxFeet, 2.0, "jump should clear at least one block")
	assert.InDelta(t, 1.0+8.5*8.5/(2*24.0), maxFeet, 0.25, "apex should match the ballistic arc")
}

func TestFallThroughRespawnsAboveCenter(t *testing.T) {
	world, _ := newTestWorld()

	ctrl, player := newTestController(world, 8)
	player.Pos = mgl64.Vec3{1.5, -26.0, 1.5}
	player.VelY = -20.0
	player.Yaw = 10.0
	player.Pitch = -5.0

	ctrl.StepVertical(tickDt)

	// Empty world: the ground level of the center column (4,4) comes from the
	// pure generator, int(3 + (sin(1.28)+cos(1.16))*2) = 5
	assert.Equal(t, mgl64.Vec3{4.5, 5.0 + 2.0 + 6.0, 4.5}, player.Pos)
	assert.Equal(t, 0.0, player.VelY)
	assert.False(t, player.Grounded)
	assert.Equal(t, 10.0, player.Yaw, "respawn keeps the orientation")
	assert.Equal(t, -5.0, player.Pitch)
}

func TestSpawnFacesIntoWorld(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 7, 0, 2, 0, 7, voxel.Grass)

	ctrl, player := newTestController(world, 8)
	ctrl.Spawn()

	assert.Equal(t, 45.0, player.Yaw)
	assert.Equal(t, -18.0, player.Pitch)
	assert.Equal(t, 4.5, player.Pos.X())
	assert.Equal(t, 4.5, player.Pos.Z())
	// Column top is layer 2, ground 3, plus body height plus the drop
	assert.Equal(t, 3.0+2.0+6.0, player.Pos.Y())
	assert.False(t, player.Grounded)
}

func TestLookClampsPitch(t *testing.T) {
	world, _ := newTestWorld()
	ctrl, player := newTestController(world, 8)

	ctrl.Look(MouseDelta{DX: 100, DY: 0})
	assert.InDelta(t, 12.0, player.Yaw, 1e-9)

	ctrl.Look(MouseDelta{DX: 0, DY: -10000})
	assert.Equal(t, 89.0, player.Pitch)

	ctrl.Look(MouseDelta{DX: 0, DY: 10000})
	assert.Equal(t, -89.0, player.Pitch)
}

func TestSprintMovesFaster(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 15, 0, 0, 0, 15, voxel.Grass)

	ctrl, player := newTestController(world, 16)
	standPlayerAt(player, 2.5, 2.5)
	player.Yaw = 0

	ctrl.StepHorizontal(tickDt, MoveInput{Forward: true})
	walked := player.Pos.X() - 2.5
	assert.InDelta(t, 5.0*tickDt, walked, 1e-9)

	standPlayerAt(player, 2.5, 2.5)
	ctrl.StepHorizontal(tickDt, MoveInput{Forward: true, Sprint: true})
	sprinted := player.Pos.X() - 2.5
	assert.InDelta(t, 8.0*tickDt, sprinted, 1e-9)
}

func TestDiagonalMoveIsNormalized(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 15, 0, 0, 0, 15, voxel.Grass)

	ctrl, player := newTestController(world, 16)
	standPlayerAt(player, 7.5, 7.5)
	player.Yaw = 0

	ctrl.StepHorizontal(tickDt, MoveInput{Forward: true, Right: true})

	dx := player.Pos.X() - 7.5
	dz := player.Pos.Z() - 7.5
	assert.InDelta(t, 5.0*tickDt, math.Hypot(dx, dz), 1e-9,
		"diagonal input must not move faster than straight input")
}

func TestSlideAlongWall(t *testing.T) {
	world, _ := newTestWorld()
	fillBox(world, 0, 11, 0, 0, 0, 11, voxel.Grass)
	fillBox(world, 6, 6, 1, 2, 0, 11, voxel.Stone) // wall across the path

	ctrl, player := newTestController(world, 12)
	standPlayerAt(player, 5.45, 2.5)
	player.Yaw = 0

	startZ := player.Pos.Z()
	for i := 0; i < 60; i++ {
		ctrl.StepHorizontal(tickDt, MoveInput{Forward: true, Right: true})
		ctrl.StepVertical(tickDt)
	}

	assert.Less(t, player.Pos.X(), 5.51, "the wall keeps blocking X")
	assert.Greater(t, player.Pos.Z(), startZ+2.0, "Z movement must survive the blocked X axis")
}

func TestOverlapsPlayer(t *testing.T) {
	world, _ := newTestWorld()
	ctrl, player := newTestController(world, 8)
	standPlayerAt(player, 4.5, 4.5) // box spans x,z [4.01, 4.99], y [1, 3]

	assert.True(t, ctrl.OverlapsPlayer(voxel.BlockKey{X: 4, Y: 1, Z: 4}))
	assert.True(t, ctrl.OverlapsPlayer(voxel.BlockKey{X: 4, Y: 2, Z: 4}))
	assert.False(t, ctrl.OverlapsPlayer(voxel.BlockKey{X: 4, Y: 0, Z: 4}), "block under the feet does not overlap")
	assert.False(t, ctrl.OverlapsPlayer(voxel.BlockKey{X: 5, Y: 1, Z: 4}), "adjacent column does not overlap")
	assert.False(t, ctrl.OverlapsPlayer(voxel.BlockKey{X: 4, Y: 3, Z: 4}), "block above the head does not overlap")
}
