package scene

import (
	"fmt"

	"chosenoffset.com/dragbox/internal/config"
	"chosenoffset.com/dragbox/internal/core/geom"
	"chosenoffset.com/dragbox/internal/drag"
)

// BuildStyle converts the configured colours into a drag.Style.
func BuildStyle(sc config.StyleConfig) (drag.Style, error) {
	outline, err := config.ParseColor(sc.Outline)
	if err != nil {
		return drag.Style{}, fmt.Errorf("outline: %w", err)
	}
	fill, err := config.ParseColor(sc.Fill)
	if err != nil {
		return drag.Style{}, fmt.Errorf("fill: %w", err)
	}
	text, err := config.ParseColor(sc.Text)
	if err != nil {
		return drag.Style{}, fmt.Errorf("text: %w", err)
	}
	return drag.Style{
		Outline:     outline,
		Fill:        fill,
		Text:        text,
		StrokeWidth: sc.StrokeWidth,
	}, nil
}

// BuildEntities creates one draggable per configured entity, in file order.
func BuildEntities(cfg *config.Config) ([]drag.Draggable, error) {
	style, err := BuildStyle(cfg.Style)
	if err != nil {
		return nil, err
	}

	entities := make([]drag.Draggable, 0, len(cfg.Entities))
	for i, ec := range cfg.Entities {
		pos := geom.Point{X: ec.X, Y: ec.Y}

		var base *drag.Entity
		var d drag.Draggable
		switch ec.Kind {
		case config.KindBox:
			b := drag.NewBox(pos, ec.Width, ec.Height)
			base, d = b.Entity, b
		case config.KindCard:
			c := drag.NewCard(pos, ec.Width, ec.Height, ec.Label, ec.HandleHeight)
			base, d = c.Entity, c
		case config.KindToken:
			// Tokens are round; the smaller side sets the diameter.
			tk := drag.NewToken(pos, min(ec.Width, ec.Height))
			base, d = tk.Entity, tk
		default:
			return nil, fmt.Errorf("entity %d: unknown kind %q", i, ec.Kind)
		}

		base.SetStyle(style)
		base.SetFixed(ec.Fixed)
		entities = append(entities, d)
	}
	return entities, nil
}
