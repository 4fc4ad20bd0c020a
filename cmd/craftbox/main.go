package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"craftbox/internal/config"
	"craftbox/pkg/game"
	"craftbox/pkg/render"
)

func init() {
	// OpenGL functions must be called from the thread that owns the context
	runtime.LockOSThread()
}

// input accumulates events between ticks
type input struct {
	lastCursorX float64
	lastCursorY float64
	firstCursor bool
	look        game.MouseDelta
}

func main() {
	configPath := flag.String("config", "", "Path to yaml config file (defaults apply when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	renderer, err := render.NewRenderer(cfg.Render.WindowWidth, cfg.Render.WindowHeight,
		"Craftbox", cfg.Render.TextureDir)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	defer renderer.Close()

	fmt.Println("Generating world...")
	start := time.Now()
	session := game.NewSession(cfg, renderer)
	fmt.Printf("Generated %d blocks in %s\n", session.World.Store.Len(), time.Since(start).Round(time.Millisecond))
	fmt.Println("WASD move | Mouse look | Shift sprint | Space jump | LMB place | RMB remove | Esc quit")

	window := renderer.Window()
	window.SetMouseCaptured(true)

	in := &input{firstCursor: true}

	window.GLFWWindow().SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != render.Press {
			return
		}
		switch key {
		case render.KeySpace:
			session.TryJump()
		case render.KeyEscape:
			window.RequestClose()
		}
	})

	window.GLFWWindow().SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != render.Press {
			return
		}
		switch button {
		case render.MouseLeft:
			session.PlaceBlock()
		case render.MouseRight:
			session.BreakBlock()
		}
	})

	window.GLFWWindow().SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if in.firstCursor {
			in.lastCursorX, in.lastCursorY = x, y
			in.firstCursor = false
			return
		}
		in.look.DX += x - in.lastCursorX
		in.look.DY += y - in.lastCursorY
		in.lastCursorX, in.lastCursorY = x, y
	})

	window.GLFWWindow().SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		renderer.OnFramebufferResize(width, height)
	})

	lastFrame := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - lastFrame
		lastFrame = now

		move := game.MoveInput{
			Forward:  window.GetKeyState(render.KeyW) == render.Press,
			Backward: window.GetKeyState(render.KeyS) == render.Press,
			Left:     window.GetKeyState(render.KeyA) == render.Press,
			Right:    window.GetKeyState(render.KeyD) == render.Press,
			Sprint:   window.GetKeyState(render.KeyLeftShift) == render.Press,
		}

		look := in.look
		in.look = game.MouseDelta{}

		session.Step(dt, look, move)

		yaw, pitch := session.Orientation()
		renderer.Camera().Follow(session.EyePosition(), yaw, pitch)
		renderer.Draw()

		window.SwapBuffers()
		window.PollEvents()
	}
}
