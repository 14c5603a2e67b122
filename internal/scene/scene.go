// Package scene owns a set of draggables and feeds them pointer events from
// an InputManager. It decides which single entity a press goes to: the
// topmost one (last drawn) whose PointerDown accepts it. That entity is raised
// to the top for the rest of the gesture.
package scene

import (
	"image/color"
	"log"

	"chosenoffset.com/dragbox/internal/config"
	"chosenoffset.com/dragbox/internal/core/geom"
	"chosenoffset.com/dragbox/internal/drag"
	"chosenoffset.com/dragbox/internal/render"
)

// fixable is implemented by draggables whose fixed flag can be toggled.
type fixable interface {
	SetFixed(bool)
}

// Scene holds the entities and the input edge state.
type Scene struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Background   color.Color

	entities   []drag.Draggable
	active     drag.Draggable
	wasPressed bool
	lastCursor geom.Point
	hasCursor  bool

	configPath string
	watcher    *config.Watcher
}

// New creates a scene from cfg. configPath is remembered for Reload and may
// be empty.
func New(cfg *config.Config, configPath string, renderer render.Renderer, inputMgr render.InputManager) (*Scene, error) {
	s := &Scene{
		Renderer:   renderer,
		InputMgr:   inputMgr,
		configPath: configPath,
	}
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) apply(cfg *config.Config) error {
	entities, err := BuildEntities(cfg)
	if err != nil {
		return err
	}
	bg, err := config.ParseColor(cfg.Window.Background)
	if err != nil {
		return err
	}
	s.entities = entities
	s.active = nil
	s.ScreenWidth = cfg.Window.Width
	s.ScreenHeight = cfg.Window.Height
	s.Background = bg
	return nil
}

// Entities returns the entities in draw order, bottom first.
func (s *Scene) Entities() []drag.Draggable {
	return s.entities
}

// Add puts d on top of the scene.
func (s *Scene) Add(d drag.Draggable) {
	s.entities = append(s.entities, d)
}

// Active returns the entity being dragged, or nil.
func (s *Scene) Active() drag.Draggable {
	return s.active
}

// Watch reloads the scene whenever w reports a change. The scene takes
// ownership of w and closes it in Close.
func (s *Scene) Watch(w *config.Watcher) {
	s.watcher = w
}

// Close stops any file watcher.
func (s *Scene) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// Reload rebuilds the entities from the config file. On error the current
// entities are kept.
func (s *Scene) Reload() error {
	if s.configPath == "" {
		return nil
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		return err
	}
	if err := s.apply(cfg); err != nil {
		return err
	}
	log.Printf("Reloaded scene from %s (%d entities)", s.configPath, len(s.entities))
	return nil
}

// Update polls input and dispatches pointer events.
func (s *Scene) Update() error {
	s.pollWatcher()

	if s.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	if s.InputMgr.IsKeyJustPressed(render.KeyR) {
		if err := s.Reload(); err != nil {
			log.Printf("Warning: reload failed: %v", err)
		}
	}

	cx, cy := s.InputMgr.GetCursorPosition()
	cursor := geom.Point{X: float64(cx), Y: float64(cy)}

	if s.InputMgr.IsKeyJustPressed(render.KeyF) {
		s.ToggleFixed(cursor)
	}

	pressed := s.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	switch {
	case pressed && !s.wasPressed:
		s.PointerDown(cursor)
	case !pressed && s.wasPressed:
		s.PointerUp(cursor)
	}
	s.wasPressed = pressed

	if !s.hasCursor || cursor != s.lastCursor {
		s.PointerMove(cursor)
		s.lastCursor = cursor
		s.hasCursor = true
	}
	return nil
}

func (s *Scene) pollWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if err := s.Reload(); err != nil {
				log.Printf("Warning: reload failed: %v", err)
			}
		case err, ok := <-s.watcher.Errors:
			if ok {
				log.Printf("Warning: scene watcher: %v", err)
			}
		default:
			return
		}
	}
}

// PointerDown offers the press to entities from the top down and stops at
// the first that accepts it. It returns that entity, or nil.
func (s *Scene) PointerDown(cursor geom.Point) drag.Draggable {
	s.active = nil
	for i := len(s.entities) - 1; i >= 0; i-- {
		d := s.entities[i]
		if !d.PointerDown(cursor) {
			continue
		}
		s.raise(i)
		s.active = d
		log.Printf("Drag started at (%.0f, %.0f) on entity at (%.0f, %.0f)", cursor.X, cursor.Y, d.Position().X, d.Position().Y)
		return d
	}
	return nil
}

// PointerUp releases every entity.
func (s *Scene) PointerUp(cursor geom.Point) {
	for _, d := range s.entities {
		d.PointerUp(cursor)
	}
	if s.active != nil {
		p := s.active.Position()
		log.Printf("Drag ended with entity at (%.0f, %.0f)", p.X, p.Y)
		s.active = nil
	}
}

// PointerMove forwards cursor motion to every entity. Only a dragging entity
// actually moves.
func (s *Scene) PointerMove(cursor geom.Point) {
	for _, d := range s.entities {
		d.PointerMove(cursor)
	}
}

// EntityAt returns the topmost entity whose hitbox contains p.
func (s *Scene) EntityAt(p geom.Point) drag.Draggable {
	for i := len(s.entities) - 1; i >= 0; i-- {
		if s.entities[i].Hitbox().Contains(p) {
			return s.entities[i]
		}
	}
	return nil
}

// ToggleFixed flips the fixed flag of the entity under p.
func (s *Scene) ToggleFixed(p geom.Point) {
	d := s.EntityAt(p)
	f, ok := d.(fixable)
	if !ok {
		return
	}
	f.SetFixed(!d.IsFixed())
	log.Printf("Entity at (%.0f, %.0f) fixed=%v", d.Position().X, d.Position().Y, d.IsFixed())
}

// raise moves entity i to the top of the draw order.
func (s *Scene) raise(i int) {
	d := s.entities[i]
	copy(s.entities[i:], s.entities[i+1:])
	s.entities[len(s.entities)-1] = d
}

// Draw clears the screen and renders entities bottom to top.
func (s *Scene) Draw(screen render.Image) {
	if s.Background != nil {
		screen.Fill(s.Background)
	}
	for _, d := range s.entities {
		d.Render(screen, s.Renderer)
	}
}

// Layout returns the scene's logical screen size.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.ScreenWidth, s.ScreenHeight
}

var _ render.Game = (*Scene)(nil)
