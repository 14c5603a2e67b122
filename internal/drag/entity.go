// Package drag implements a rectangular entity that a pointer can pick up,
// move and release. The entity owns its drag state; choosing which entity
// receives a press when several overlap is left to the caller.
package drag

import (
	"fmt"

	"chosenoffset.com/dragbox/internal/core/geom"
	"chosenoffset.com/dragbox/internal/render"
)

// Draggable is implemented by anything the scene can pick up with the pointer.
// Concrete kinds embed *Entity and override Render or PointerDown.
type Draggable interface {
	// PointerDown starts a drag if cursor hits the entity and reports whether it did.
	PointerDown(cursor geom.Point) bool
	// PointerUp ends any drag in progress.
	PointerUp(cursor geom.Point)
	// PointerMove follows the cursor while dragging.
	PointerMove(cursor geom.Point)
	// Render draws the entity onto dst.
	Render(dst render.Image, r render.Renderer)

	Position() geom.Point
	Hitbox() geom.Rect
	IsMoving() bool
	IsFixed() bool
}

// DragState is either Idle or Dragging.
type DragState interface {
	dragState()
}

// Idle is the resting state.
type Idle struct{}

// Dragging holds the pointer offset captured when the entity was picked up.
type Dragging struct {
	GrabOffset geom.Point
}

func (Idle) dragState()     {}
func (Dragging) dragState() {}

// Entity is the base draggable: a position, a fixed-size hitbox that follows
// it, and the current drag state.
type Entity struct {
	position geom.Point
	width    float64
	height   float64
	hitbox   geom.Rect
	state    DragState
	fixed    bool
	style    Style
}

// NewEntity creates an idle entity at pos. Width and height are not validated;
// negative values give a degenerate hitbox that nothing hits.
func NewEntity(pos geom.Point, width, height float64) *Entity {
	return &Entity{
		position: pos,
		width:    width,
		height:   height,
		hitbox:   geom.RectFrom(pos, width, height),
		state:    Idle{},
		style:    DefaultStyle,
	}
}

// Position returns the entity's top-left anchor.
func (e *Entity) Position() geom.Point {
	return e.position
}

// Hitbox returns the collision rectangle. Its origin always equals Position.
func (e *Entity) Hitbox() geom.Rect {
	return e.hitbox
}

// Size returns the width and height fixed at construction.
func (e *Entity) Size() (width, height float64) {
	return e.width, e.height
}

// State returns the current drag state.
func (e *Entity) State() DragState {
	if e.state == nil {
		return Idle{}
	}
	return e.state
}

// IsMoving reports whether a drag gesture is in progress.
func (e *Entity) IsMoving() bool {
	_, ok := e.state.(Dragging)
	return ok
}

// GrabOffset returns the pick-up offset while dragging.
func (e *Entity) GrabOffset() (geom.Point, bool) {
	d, ok := e.state.(Dragging)
	return d.GrabOffset, ok
}

// IsFixed reports the fixed flag.
func (e *Entity) IsFixed() bool {
	return e.fixed
}

// SetFixed sets the fixed flag. The flag is informational: PointerDown and
// PointerMove do not consult it.
func (e *Entity) SetFixed(fixed bool) {
	e.fixed = fixed
}

// Style returns the style used by Render.
func (e *Entity) Style() Style {
	return e.style
}

// SetStyle replaces the style used by Render.
func (e *Entity) SetStyle(s Style) {
	e.style = s
}

// PointerDown starts a drag when cursor lies inside the hitbox (edges
// included). The grab offset is the per-axis distance between the anchor and
// the cursor. A press outside the hitbox leaves the entity idle.
func (e *Entity) PointerDown(cursor geom.Point) bool {
	if !e.hitbox.Contains(cursor) {
		e.state = Idle{}
		return false
	}
	e.state = Dragging{GrabOffset: e.position.Sub(cursor).Abs()}
	return true
}

// PointerUp ends the drag. The cursor is not used; the entity stays where the
// last PointerMove left it.
func (e *Entity) PointerUp(geom.Point) {
	e.state = Idle{}
}

// PointerMove moves the anchor so the cursor keeps its grab offset. While idle
// it only resyncs the hitbox.
func (e *Entity) PointerMove(cursor geom.Point) {
	switch s := e.state.(type) {
	case nil, Idle:
	case Dragging:
		e.position = cursor.Sub(s.GrabOffset)
	default:
		panic(fmt.Sprintf("drag: entity in unknown state %T", s))
	}
	e.syncHitbox()
}

// MoveTo repositions the entity from outside a drag gesture.
func (e *Entity) MoveTo(pos geom.Point) {
	e.position = pos
	e.syncHitbox()
}

func (e *Entity) syncHitbox() {
	e.hitbox = geom.RectFrom(e.position, e.width, e.height)
}

// Render draws the hitbox outline.
func (e *Entity) Render(dst render.Image, r render.Renderer) {
	h := e.hitbox
	r.StrokeRect(dst, float32(h.X), float32(h.Y), float32(h.Width), float32(h.Height), e.style.StrokeWidth, e.style.Outline)
}
