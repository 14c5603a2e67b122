package drag

import (
	"testing"

	"chosenoffset.com/dragbox/internal/core/geom"
	"chosenoffset.com/dragbox/internal/render/rendertest"
)

func pt(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}
}

func assertHitboxSynced(t *testing.T, d Draggable) {
	t.Helper()
	if d.Hitbox().Origin() != d.Position() {
		t.Fatalf("Expected hitbox origin %v to equal position %v", d.Hitbox().Origin(), d.Position())
	}
}

func TestNewEntity(t *testing.T) {
	e := NewEntity(pt(3, 4), 10, 20)

	if e.Position() != pt(3, 4) {
		t.Errorf("Expected position (3, 4), got %v", e.Position())
	}
	want := geom.Rect{X: 3, Y: 4, Width: 10, Height: 20}
	if e.Hitbox() != want {
		t.Errorf("Expected hitbox %v, got %v", want, e.Hitbox())
	}
	if e.IsMoving() {
		t.Error("Expected new entity to be idle")
	}
	if e.IsFixed() {
		t.Error("Expected new entity not to be fixed")
	}
	if _, ok := e.GrabOffset(); ok {
		t.Error("Expected no grab offset on a new entity")
	}
	if _, ok := e.State().(Idle); !ok {
		t.Errorf("Expected Idle state, got %T", e.State())
	}
}

// Scenarios A through C: pick up, drag, release.
func TestDragGesture(t *testing.T) {
	e := NewEntity(pt(10, 10), 20, 20)

	if !e.PointerDown(pt(15, 15)) {
		t.Fatal("Expected press inside hitbox to start a drag")
	}
	if !e.IsMoving() {
		t.Error("Expected entity to be moving after pick-up")
	}
	off, ok := e.GrabOffset()
	if !ok || off != pt(5, 5) {
		t.Errorf("Expected grab offset (5, 5), got %v (ok=%v)", off, ok)
	}
	assertHitboxSynced(t, e)

	e.PointerMove(pt(30, 30))
	if e.Position() != pt(25, 25) {
		t.Errorf("Expected position (25, 25), got %v", e.Position())
	}
	if e.Hitbox().Origin() != pt(25, 25) {
		t.Errorf("Expected hitbox origin (25, 25), got %v", e.Hitbox().Origin())
	}

	e.PointerUp(pt(30, 30))
	if e.IsMoving() {
		t.Error("Expected entity to be idle after release")
	}
	if e.Position() != pt(25, 25) {
		t.Errorf("Expected position to stay at (25, 25), got %v", e.Position())
	}
	if _, ok := e.GrabOffset(); ok {
		t.Error("Expected grab offset to be cleared on release")
	}
	assertHitboxSynced(t, e)
}

// Scenario D.
func TestPointerDownOutside(t *testing.T) {
	e := NewEntity(pt(0, 0), 5, 5)

	if e.PointerDown(pt(100, 100)) {
		t.Error("Expected press outside hitbox to return false")
	}
	if e.IsMoving() {
		t.Error("Expected entity to stay idle")
	}
}

func TestPointerDownOutsideCancelsDrag(t *testing.T) {
	e := NewEntity(pt(0, 0), 10, 10)
	e.PointerDown(pt(5, 5))

	if e.PointerDown(pt(50, 50)) {
		t.Fatal("Expected second press outside to return false")
	}
	if e.IsMoving() {
		t.Error("Expected press outside to end the drag")
	}
	if _, ok := e.GrabOffset(); ok {
		t.Error("Expected grab offset to be cleared")
	}
}

func TestPointerDownOnEdge(t *testing.T) {
	tests := []struct {
		name   string
		cursor geom.Point
		offset geom.Point
	}{
		{"top-left corner", pt(10, 10), pt(0, 0)},
		{"bottom-right corner", pt(30, 30), pt(20, 20)},
		{"right edge", pt(30, 12), pt(20, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntity(pt(10, 10), 20, 20)
			if !e.PointerDown(tt.cursor) {
				t.Fatalf("Expected press on edge %v to count as inside", tt.cursor)
			}
			if off, _ := e.GrabOffset(); off != tt.offset {
				t.Errorf("Expected offset %v, got %v", tt.offset, off)
			}
		})
	}
}

func TestOffsetPreservedThroughDrag(t *testing.T) {
	e := NewEntity(pt(100, 50), 40, 30)
	cursor := pt(112, 71)
	e.PointerDown(cursor)
	want := e.Position().Sub(cursor)

	for _, c := range []geom.Point{pt(0, 0), pt(-40, 300), pt(512.5, 7.25), pt(113, 72)} {
		e.PointerMove(c)
		if got := e.Position().Sub(c); got != want {
			t.Errorf("Expected anchor-cursor vector %v after move to %v, got %v", want, c, got)
		}
		assertHitboxSynced(t, e)
	}
}

// Scenario P5: moving an idle entity leaves it in place.
func TestIdleMoveIsNoop(t *testing.T) {
	e := NewEntity(pt(7, 8), 5, 5)
	e.PointerMove(pt(200, 200))

	if e.Position() != pt(7, 8) {
		t.Errorf("Expected idle entity to stay at (7, 8), got %v", e.Position())
	}
	if e.IsMoving() {
		t.Error("Expected PointerMove never to start a drag")
	}
	assertHitboxSynced(t, e)

	e.PointerDown(pt(8, 9))
	e.PointerUp(pt(8, 9))
	e.PointerMove(pt(300, 300))
	if e.Position() != pt(7, 8) {
		t.Errorf("Expected released entity to ignore moves, got %v", e.Position())
	}
}

func TestPointerUpIdempotent(t *testing.T) {
	e := NewEntity(pt(0, 0), 10, 10)

	e.PointerUp(pt(1, 1))
	e.PointerUp(pt(1, 1))
	if e.IsMoving() {
		t.Error("Expected release while idle to keep entity idle")
	}

	e.PointerDown(pt(1, 1))
	e.PointerUp(pt(999, 999))
	e.PointerUp(pt(999, 999))
	if e.IsMoving() {
		t.Error("Expected repeated release to keep entity idle")
	}
	if e.Position() != pt(0, 0) {
		t.Errorf("Expected release not to snap position, got %v", e.Position())
	}
}

// Scenario E: the fixed flag is stored but does not block dragging.
func TestFixedEntityStillDrags(t *testing.T) {
	e := NewEntity(pt(0, 0), 10, 10)
	e.SetFixed(true)

	if !e.PointerDown(pt(5, 5)) {
		t.Fatal("Expected fixed entity to accept a press inside its hitbox")
	}
	if !e.IsMoving() {
		t.Error("Expected fixed entity to start dragging")
	}
	e.PointerMove(pt(15, 15))
	if e.Position() != pt(10, 10) {
		t.Errorf("Expected fixed entity to move to (10, 10), got %v", e.Position())
	}
	if !e.IsFixed() {
		t.Error("Expected fixed flag to survive the drag")
	}
}

// Pressing up-left of the anchor flips the offset sign; only the
// lower-right quadrant round-trips.
func TestAbsoluteOffsetOutsideQuadrant(t *testing.T) {
	e := NewEntity(pt(10, 10), 20, 20)
	e.state = Dragging{GrabOffset: pt(10, 10).Sub(pt(5, 5)).Abs()}

	e.PointerMove(pt(5, 5))
	if e.Position() != pt(0, 0) {
		t.Errorf("Expected absolute offset to place anchor at (0, 0), got %v", e.Position())
	}
}

func TestMoveTo(t *testing.T) {
	e := NewEntity(pt(0, 0), 10, 10)
	e.MoveTo(pt(40, 60))
	if e.Position() != pt(40, 60) {
		t.Errorf("Expected (40, 60), got %v", e.Position())
	}
	assertHitboxSynced(t, e)
}

type bogusState struct{}

func (bogusState) dragState() {}

func TestUnknownStatePanics(t *testing.T) {
	e := NewEntity(pt(0, 0), 10, 10)
	e.state = bogusState{}

	defer func() {
		if recover() == nil {
			t.Error("Expected PointerMove to panic on an unknown state")
		}
	}()
	e.PointerMove(pt(1, 1))
}

func TestZeroValueEntityIsIdle(t *testing.T) {
	var e Entity
	if e.IsMoving() {
		t.Error("Expected zero entity to be idle")
	}
	if _, ok := e.State().(Idle); !ok {
		t.Errorf("Expected Idle, got %T", e.State())
	}
	e.PointerMove(pt(3, 3))
	if e.Position() != pt(0, 0) {
		t.Errorf("Expected zero entity to stay put, got %v", e.Position())
	}
}

func TestEntityRenderDrawsHitbox(t *testing.T) {
	r := &rendertest.Renderer{}
	dst := r.NewImage(100, 100)
	e := NewEntity(pt(10, 20), 30, 40)

	e.Render(dst, r)

	if len(r.Calls) != 1 {
		t.Fatalf("Expected 1 draw call, got %d", len(r.Calls))
	}
	c := r.Calls[0]
	if c.Op != "stroke_rect" || c.X != 10 || c.Y != 20 || c.W != 30 || c.H != 40 {
		t.Errorf("Expected stroke_rect at (10, 20) 30x40, got %+v", c)
	}
	if c.Color != DefaultStyle.Outline || c.StrokeWidth != DefaultStyle.StrokeWidth {
		t.Errorf("Expected default style, got color %v width %v", c.Color, c.StrokeWidth)
	}
	if e.Position() != pt(10, 20) || e.IsMoving() {
		t.Error("Expected Render not to mutate the entity")
	}
}
