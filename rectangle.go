package ili9325

import (
	"fmt"
	"image"
)

// Rectangle is an addressing window in logical coordinates.
//
// Nothing is validated: a negative size or an origin outside the panel
// produces a wrapped window on the controller.
type Rectangle struct {
	X, Y          int16
	Width, Height int16
}

// Rect converts an image.Rectangle to a Rectangle.
func Rect(r image.Rectangle) Rectangle {
	return Rectangle{
		X:      int16(r.Min.X),
		Y:      int16(r.Min.Y),
		Width:  int16(r.Dx()),
		Height: int16(r.Dy()),
	}
}

// Image returns r as an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", r.X, r.Y, r.Width, r.Height)
}
