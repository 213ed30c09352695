package testcard

import (
	"image"
	"image/color"
	"testing"

	"periph.io/x/devices/v3/ili9325/rgb565"
)

func TestPaintBars(t *testing.T) {
	img := rgb565.NewImage(image.Rect(0, 0, 320, 240))
	Paint(img, "")

	for i, c := range Bars {
		x := i*40 + 20
		want := rgb565.Model.Convert(c).(rgb565.RGB565)
		if got := img.RGB565At(x, 100); got != want {
			t.Errorf("bar %d at x=%d: %#04x, want %#04x", i, x, got, want)
		}
	}
}

func TestPaintRamp(t *testing.T) {
	img := rgb565.NewImage(image.Rect(0, 0, 320, 240))
	Paint(img, "")

	if got := img.RGB565At(0, 200); got != 0 {
		t.Errorf("ramp start = %#04x, want black", got)
	}
	if got := img.RGB565At(319, 200); got != 0xFFFF {
		t.Errorf("ramp end = %#04x, want white", got)
	}
	prev := uint32(0)
	for x := 0; x < 320; x++ {
		_, g, _, _ := img.At(x, 239).RGBA()
		if g < prev {
			t.Fatalf("ramp decreases at x=%d", x)
		}
		prev = g
	}
}

func TestText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 20))
	Text(img, image.Pt(2, 2), "Hi", color.White)

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 64; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				lit++
				if x < 2 || y < 2 {
					t.Errorf("pixel (%d, %d) drawn before the origin", x, y)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("no glyph pixels drawn")
	}
	if got, want := TextSize("Hi"), image.Pt(14, 13); got != want {
		t.Errorf("TextSize() = %v, want %v", got, want)
	}
}

func TestPaintOffsetBounds(t *testing.T) {
	img := rgb565.NewImage(image.Rect(100, 50, 116, 62))
	Paint(img, "x")
	if got := img.RGB565At(100, 50); got != 0xFFFF {
		t.Errorf("top-left = %#04x, want white bar", got)
	}
}
