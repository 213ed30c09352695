// Package testcard paints a test card used by the example programs.
package testcard

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Bars are the eight classic color bars, left to right.
var Bars = [8]color.RGBA{
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0x00, 0xFF, 0xFF, 0xFF}, // cyan
	{0x00, 0xFF, 0x00, 0xFF}, // green
	{0xFF, 0x00, 0xFF, 0xFF}, // magenta
	{0xFF, 0x00, 0x00, 0xFF}, // red
	{0x00, 0x00, 0xFF, 0xFF}, // blue
	{0x00, 0x00, 0x00, 0xFF}, // black
}

// Paint fills dst with color bars over the top two thirds, a grayscale
// ramp below them, and title in the top-left corner.
func Paint(dst draw.Image, title string) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	rampTop := b.Min.Y + h*2/3

	for i, c := range Bars {
		r := image.Rect(b.Min.X+i*w/len(Bars), b.Min.Y, b.Min.X+(i+1)*w/len(Bars), rampTop)
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		g := color.Gray{Y: uint8((x - b.Min.X) * 255 / max(w-1, 1))}
		for y := rampTop; y < b.Max.Y; y++ {
			dst.Set(x, y, g)
		}
	}
	Text(dst, image.Pt(b.Min.X+4, b.Min.Y+4), title, color.Black)
}

// Text draws s with its top-left corner at pt in the 7x13 fixed font.
func Text(dst draw.Image, pt image.Point, s string, c color.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextSize returns the pixel size of s in the font used by Text.
func TextSize(s string) image.Point {
	face := basicfont.Face7x13
	return image.Pt(font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil())
}
