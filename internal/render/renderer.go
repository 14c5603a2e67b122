package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Scene and entity code only talks to this interface so the
// drag logic can be exercised without a window.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the scene listens to
const (
	KeyR Key = iota // Reload scene
	KeyF            // Toggle fixed flag on hovered entity
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the scene logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errQuit{}

type errQuit struct{}

func (errQuit) Error() string { return "render: quit requested" }
