package drag

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Style is the fixed visual style an entity is drawn with.
type Style struct {
	Outline     color.Color
	Fill        color.Color
	Text        color.Color
	StrokeWidth float32
}

// DefaultStyle draws a 1px red outline.
var DefaultStyle = Style{
	Outline:     colornames.Red,
	Fill:        colornames.Darkslategray,
	Text:        colornames.White,
	StrokeWidth: 1,
}
