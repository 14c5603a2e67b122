package drag

import (
	"chosenoffset.com/dragbox/internal/core/geom"
	"chosenoffset.com/dragbox/internal/render"
)

// Box is the plain draggable: base pick-up rules, hitbox outline.
type Box struct {
	*Entity
}

// NewBox creates a Box at pos.
func NewBox(pos geom.Point, width, height float64) *Box {
	return &Box{Entity: NewEntity(pos, width, height)}
}

// DefaultHandleHeight is the height of a Card's grab strip when none is given.
const DefaultHandleHeight = 16

// Card is a filled, labelled rectangle that can only be grabbed by the strip
// along its top edge.
type Card struct {
	*Entity
	Label        string
	HandleHeight float64
}

// NewCard creates a Card at pos. A non-positive handleHeight selects
// DefaultHandleHeight.
func NewCard(pos geom.Point, width, height float64, label string, handleHeight float64) *Card {
	if handleHeight <= 0 {
		handleHeight = DefaultHandleHeight
	}
	return &Card{
		Entity:       NewEntity(pos, width, height),
		Label:        label,
		HandleHeight: handleHeight,
	}
}

// Handle returns the grab strip. It never extends below the hitbox.
func (c *Card) Handle() geom.Rect {
	h := c.Hitbox()
	hh := c.HandleHeight
	if hh > h.Height {
		hh = h.Height
	}
	return geom.Rect{X: h.X, Y: h.Y, Width: h.Width, Height: hh}
}

// PointerDown only starts a drag from the handle strip. A press on the body
// is treated like a press outside.
func (c *Card) PointerDown(cursor geom.Point) bool {
	if !c.Handle().Contains(cursor) {
		c.Entity.PointerUp(cursor)
		return false
	}
	return c.Entity.PointerDown(cursor)
}

// Render fills the card, shades the handle and draws the label under it.
func (c *Card) Render(dst render.Image, r render.Renderer) {
	s := c.Style()
	h := c.Hitbox()
	r.FillRect(dst, float32(h.X), float32(h.Y), float32(h.Width), float32(h.Height), s.Fill)

	hd := c.Handle()
	r.FillRect(dst, float32(hd.X), float32(hd.Y), float32(hd.Width), float32(hd.Height), s.Outline)

	if c.Label != "" {
		_, th := r.MeasureText(c.Label, 1)
		ty := int(hd.Y+hd.Height) + 4
		if float64(ty+th) <= h.Y+h.Height {
			r.DrawText(dst, c.Label, int(h.X)+4, ty, s.Text, 1)
		}
	}

	c.Entity.Render(dst, r)
}

// Token draws as a circle inscribed in its hitbox. Picking still uses the
// rectangle.
type Token struct {
	*Entity
}

// NewToken creates a square Token of the given diameter at pos.
func NewToken(pos geom.Point, diameter float64) *Token {
	return &Token{Entity: NewEntity(pos, diameter, diameter)}
}

// Render draws the token, outlined more heavily while it is being dragged.
func (t *Token) Render(dst render.Image, r render.Renderer) {
	s := t.Style()
	h := t.Hitbox()
	c := h.Center()
	radius := float32(min(h.Width, h.Height) / 2)
	if radius <= 0 {
		return
	}
	r.FillCircle(dst, float32(c.X), float32(c.Y), radius, s.Fill)
	stroke := s.StrokeWidth
	if t.IsMoving() {
		stroke *= 2
	}
	r.StrokeCircle(dst, float32(c.X), float32(c.Y), radius, stroke, s.Outline)
}

var (
	_ Draggable = (*Entity)(nil)
	_ Draggable = (*Box)(nil)
	_ Draggable = (*Card)(nil)
	_ Draggable = (*Token)(nil)
)
