package drag

import (
	"reflect"
	"testing"

	"chosenoffset.com/dragbox/internal/render/rendertest"
)

func TestBoxUsesBaseBehaviour(t *testing.T) {
	b := NewBox(pt(10, 10), 20, 20)
	var d Draggable = b

	if !d.PointerDown(pt(15, 15)) {
		t.Fatal("Expected box to be grabbed inside its hitbox")
	}
	d.PointerMove(pt(30, 30))
	if d.Position() != pt(25, 25) {
		t.Errorf("Expected (25, 25), got %v", d.Position())
	}
	d.PointerUp(pt(30, 30))
	if d.IsMoving() {
		t.Error("Expected box to be released")
	}
}

func TestCardHandle(t *testing.T) {
	c := NewCard(pt(0, 0), 100, 60, "notes", 10)

	tests := []struct {
		name   string
		x, y   float64
		grabs  bool
		moving bool
	}{
		{"handle", 50, 5, true, true},
		{"handle bottom edge", 50, 10, true, true},
		{"body", 50, 30, false, false},
		{"outside", 150, 5, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.PointerUp(pt(0, 0))
			if got := c.PointerDown(pt(tt.x, tt.y)); got != tt.grabs {
				t.Errorf("Expected PointerDown = %v, got %v", tt.grabs, got)
			}
			if c.IsMoving() != tt.moving {
				t.Errorf("Expected IsMoving = %v, got %v", tt.moving, c.IsMoving())
			}
		})
	}
}

func TestCardBodyPressCancelsDrag(t *testing.T) {
	c := NewCard(pt(0, 0), 100, 60, "", 10)
	c.PointerDown(pt(5, 5))
	if c.PointerDown(pt(5, 40)) {
		t.Fatal("Expected body press to be rejected")
	}
	if c.IsMoving() {
		t.Error("Expected body press to leave the card idle")
	}
}

func TestCardDragKeepsOffset(t *testing.T) {
	c := NewCard(pt(20, 20), 100, 60, "", 0)
	if c.HandleHeight != DefaultHandleHeight {
		t.Errorf("Expected default handle height %d, got %v", DefaultHandleHeight, c.HandleHeight)
	}
	c.PointerDown(pt(30, 25))
	c.PointerMove(pt(130, 225))
	if c.Position() != pt(120, 220) {
		t.Errorf("Expected (120, 220), got %v", c.Position())
	}
	if c.Handle().Origin() != pt(120, 220) {
		t.Errorf("Expected handle to follow the card, got %v", c.Handle())
	}
}

func TestCardHandleClampedToHeight(t *testing.T) {
	c := NewCard(pt(0, 0), 40, 8, "", 30)
	if c.Handle().Height != 8 {
		t.Errorf("Expected handle clamped to 8, got %v", c.Handle().Height)
	}
}

func TestCardRender(t *testing.T) {
	r := &rendertest.Renderer{}
	c := NewCard(pt(0, 0), 100, 60, "notes", 10)
	c.Render(r.NewImage(200, 200), r)

	want := []string{"fill_rect", "fill_rect", "text", "stroke_rect"}
	if !reflect.DeepEqual(r.Ops(), want) {
		t.Fatalf("Expected ops %v, got %v", want, r.Ops())
	}
	if r.Calls[2].Text != "notes" {
		t.Errorf("Expected label 'notes', got '%s'", r.Calls[2].Text)
	}
}

func TestCardRenderSkipsLabelThatDoesNotFit(t *testing.T) {
	r := &rendertest.Renderer{}
	c := NewCard(pt(0, 0), 100, 20, "notes", 10)
	c.Render(r.NewImage(200, 200), r)

	for _, op := range r.Ops() {
		if op == "text" {
			t.Fatal("Expected label to be skipped on a short card")
		}
	}
}

func TestTokenRender(t *testing.T) {
	r := &rendertest.Renderer{}
	tok := NewToken(pt(10, 10), 20)
	tok.Render(r.NewImage(100, 100), r)

	if !reflect.DeepEqual(r.Ops(), []string{"fill_circle", "stroke_circle"}) {
		t.Fatalf("Expected circle ops, got %v", r.Ops())
	}
	c := r.Calls[1]
	if c.X != 20 || c.Y != 20 || c.Radius != 10 {
		t.Errorf("Expected circle at (20, 20) r=10, got %+v", c)
	}
	idle := c.StrokeWidth

	r.Reset()
	tok.PointerDown(pt(12, 12))
	tok.Render(r.NewImage(100, 100), r)
	if r.Calls[1].StrokeWidth != idle*2 {
		t.Errorf("Expected doubled stroke while dragging, got %v", r.Calls[1].StrokeWidth)
	}
}

func TestTokenDegenerateDrawsNothing(t *testing.T) {
	r := &rendertest.Renderer{}
	NewToken(pt(0, 0), 0).Render(r.NewImage(10, 10), r)
	if len(r.Calls) != 0 {
		t.Errorf("Expected no draw calls, got %v", r.Ops())
	}
}
