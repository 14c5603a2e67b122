// Package rendertest provides in-memory Renderer, Image and InputManager
// implementations that record what was drawn, for use in tests.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/dragbox/internal/render"
)

// Call is one recorded draw operation.
type Call struct {
	Op                  string // "stroke_rect", "fill_rect", "fill_circle", "stroke_circle", "text"
	X, Y, W, H          float32
	Radius, StrokeWidth float32
	Text                string
	Color               color.Color
}

// Renderer records every draw call.
type Renderer struct {
	Calls []Call
}

// NewImage returns a blank fake image.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{W: width, H: height}
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "stroke_rect", X: x, Y: y, W: width, H: height, StrokeWidth: strokeWidth, Color: clr})
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill_rect", X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill_circle", X: x, Y: y, Radius: radius, Color: clr})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "stroke_circle", X: x, Y: y, Radius: radius, StrokeWidth: strokeWidth, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Calls = append(r.Calls, Call{Op: "text", X: float32(x), Y: float32(y), Text: text, Color: clr})
}

// MeasureText uses a fixed 6x13 cell per character.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 6 * scale), int(13 * scale)
}

// Ops returns the Op of every recorded call in order.
func (r *Renderer) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() {
	r.Calls = nil
}

// Image is a sized surface that remembers its last fill colour.
type Image struct {
	W, H     int
	Filled   color.Color
	Disposed bool
}

func (i *Image) Bounds() image.Rectangle   { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (width, height int) { return i.W, i.H }
func (i *Image) Fill(clr color.Color)      { i.Filled = clr }
func (i *Image) Clear()                    { i.Filled = nil }
func (i *Image) Dispose()                  { i.Disposed = true }

// Input is a scriptable InputManager. Tests set the fields between frames.
type Input struct {
	CursorX, CursorY int
	Buttons          map[render.MouseButton]bool
	Held             map[render.Key]bool
	JustPressed      map[render.Key]bool
}

// NewInput returns an Input with no buttons or keys down.
func NewInput() *Input {
	return &Input{
		Buttons:     make(map[render.MouseButton]bool),
		Held:        make(map[render.Key]bool),
		JustPressed: make(map[render.Key]bool),
	}
}

// MoveTo sets the cursor position.
func (in *Input) MoveTo(x, y int) {
	in.CursorX, in.CursorY = x, y
}

// Press holds the button down.
func (in *Input) Press(b render.MouseButton) { in.Buttons[b] = true }

// Release lets the button go.
func (in *Input) Release(b render.MouseButton) { in.Buttons[b] = false }

// Tap marks key as just pressed for the next frame only; call ClearKeys after it.
func (in *Input) Tap(k render.Key) { in.JustPressed[k] = true }

// ClearKeys resets just-pressed keys.
func (in *Input) ClearKeys() {
	for k := range in.JustPressed {
		delete(in.JustPressed, k)
	}
}

func (in *Input) IsKeyPressed(key render.Key) bool               { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool           { return in.JustPressed[key] }
func (in *Input) GetCursorPosition() (x, y int)                  { return in.CursorX, in.CursorY }
func (in *Input) IsMouseButtonPressed(b render.MouseButton) bool { return in.Buttons[b] }

var (
	_ render.Renderer     = (*Renderer)(nil)
	_ render.Image        = (*Image)(nil)
	_ render.InputManager = (*Input)(nil)
)
