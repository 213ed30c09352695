package ili9325

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ili9325/rgb565"
)

// Opts is the configuration for the ILI9325 display.
type Opts struct {
	// Portrait selects the native 240x320 orientation instead of the
	// default 320x240 landscape one.
	Portrait bool
	// RGB selects RGB subpixel order instead of BGR, which most ILI9325
	// modules are wired for.
	RGB bool

	// Optional hardware reset pin
	RST gpio.PinIO
}

// Dev is the device handle for the ILI9325 display.
//
// Dev performs no locking; calls from several goroutines must be
// serialized by the caller.
type Dev struct {
	bus Bus
	o   Orientation
	rst gpio.PinIO

	rect image.Rectangle
	buf  []byte // pixel conversion buffer, reused between calls

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

var errHalted = errors.New("ili9325: halted")

// sleep is replaced in tests.
var sleep = time.Sleep

// NewSPI creates a new ILI9325 device connected through its serial
// interface.
//
// The SPI port is configured for 10MHz, Mode3 (CPOL=1, CPHA=1), 8-bit
// transfers. The register select line is not used: the serial start byte
// carries it.
//
// opts can be nil to use defaults (landscape, BGR).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9325: %w", err)
	}
	return New(NewSerial(c), opts)
}

// New creates a device over an already connected Bus and runs the power-on
// sequence.
func New(b Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	var o Orientation
	if opts.Portrait {
		o = NewPortrait(b)
	} else {
		o = NewLandscape(b)
	}
	d := &Dev{
		bus:  b,
		o:    o,
		rst:  opts.RST,
		rect: image.Rect(0, 0, int(o.Width()), int(o.Height())),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the power-on sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ili9325: failed to pull RST low: %w", err)
		}
		sleep(10 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9325: failed to pull RST high: %w", err)
		}
		sleep(50 * time.Millisecond)
	}

	entry := d.o.EntryMode()
	if !opts.RGB {
		entry |= BGR
	}

	steps := []struct {
		cmds  []regValue
		delay time.Duration
	}{
		{cmds: []regValue{
			{DriverOutputControl, 0x0100}, // SS: source output shift S720 to S1
			{LCDDrivingControl, 0x0700},   // line inversion
			{EntryMode, entry},
			{ResizeControl, 0x0000},
			{DisplayControl2, 0x0207}, // front and back porch
			{DisplayControl3, 0x0000},
			{DisplayControl4, 0x0000},
			{RGBDisplayInterfaceControl1, 0x0000},
			{FrameMarkerPosition, 0x0000},
			{RGBDisplayInterfaceControl2, 0x0000},
			{PowerControl1, 0x0000},
			{PowerControl2, 0x0007},
			{PowerControl3, 0x0000},
			{PowerControl4, 0x0000},
			{DisplayControl1, 0x0001},
		}, delay: 200 * time.Millisecond},
		{cmds: []regValue{
			{PowerControl1, 0x1690},
			{PowerControl2, 0x0227},
		}, delay: 50 * time.Millisecond},
		{cmds: []regValue{
			{PowerControl3, 0x000D},
		}, delay: 50 * time.Millisecond},
		{cmds: []regValue{
			{PowerControl4, 0x1200},
			{PowerControl7, 0x000A},
			{FrameRateAndColorControl, 0x000D},
		}, delay: 50 * time.Millisecond},
		{cmds: []regValue{
			{Gamma1, 0x0000},
			{Gamma2, 0x0404},
			{Gamma3, 0x0003},
			{Gamma4, 0x0405},
			{Gamma5, 0x0808},
			{Gamma6, 0x0407},
			{Gamma7, 0x0303},
			{Gamma8, 0x0707},
			{Gamma9, 0x0504},
			{Gamma10, 0x0808},
			{GateScanControl, 0xA700}, // 320 lines, scan from G320
			{BaseImageDisplayControl, BaseImageREV | BaseImageVLE},
			{GateScanControlScroll, 0x0000},
			{PanelInterfaceControl1, 0x0010},
			{PanelInterfaceControl2, 0x0600},
			{DisplayControl1, 0x0133}, // display on
		}},
	}
	for _, s := range steps {
		if err := d.sendCommands(s.cmds); err != nil {
			return err
		}
		if s.delay != 0 {
			sleep(s.delay)
		}
	}
	if err := d.o.MoveToRect(Rect(d.rect)); err != nil {
		return fmt.Errorf("ili9325: %w", err)
	}
	return nil
}

type regValue struct {
	r Register
	v uint16
}

// sendCommands writes a sequence of register values.
func (d *Dev) sendCommands(cmds []regValue) error {
	for _, c := range cmds {
		if err := d.bus.WriteCommand(c.r, c.v); err != nil {
			return fmt.Errorf("ili9325: write R%02Xh: %w", uint16(c.r), err)
		}
	}
	return nil
}

// writeRect sets the window to r and streams pixels into it.
func (d *Dev) writeRect(r image.Rectangle, pixels []byte) error {
	if err := d.o.MoveToRect(Rect(r)); err != nil {
		return fmt.Errorf("ili9325: %w", err)
	}
	if err := d.bus.WriteGRAM(pixels); err != nil {
		return fmt.Errorf("ili9325: %w", err)
	}
	return nil
}

// Orientation returns the coordinate transform selected at creation.
func (d *Dev) Orientation() Orientation {
	return d.o
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display in its orientation.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws src onto the display. Only the part of dst inside the display
// is sent; the window is set to exactly that part.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))

	// Fast path: the source rows are already packed RGB565.
	if img, ok := src.(*rgb565.Image); ok {
		srcRect := clipped.Sub(clipped.Min).Add(sp)
		if srcRect.In(img.Rect) {
			if sub := img.SubImage(srcRect).(*rgb565.Image); sub.Contiguous() {
				return d.writeRect(clipped, sub.Pix[:sub.Stride*sub.Rect.Dy()])
			}
		}
	}

	n := 2 * clipped.Dx() * clipped.Dy()
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	tmp := &rgb565.Image{
		Pix:    d.buf[:n],
		Stride: 2 * clipped.Dx(),
		Rect:   clipped.Sub(clipped.Min),
	}
	draw.Draw(tmp, tmp.Rect, src, sp, draw.Src)
	return d.writeRect(clipped, tmp.Pix)
}

// Fill paints r with a single color.
func (d *Dev) Fill(r image.Rectangle, c color.Color) error {
	if d.halted {
		return errHalted
	}
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	v := rgb565.Model.Convert(c).(rgb565.RGB565)
	n := 2 * r.Dx() * r.Dy()
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	pix := d.buf[:n]
	for i := 0; i < n; i += 2 {
		pix[i] = byte(v >> 8)
		pix[i+1] = byte(v)
	}
	return d.writeRect(r, pix)
}

// Scroll moves the scan origin to pos along the long axis of the panel:
// logical X in landscape, logical Y in portrait.
func (d *Dev) Scroll(pos int) error {
	if d.halted {
		return errHalted
	}
	if err := d.o.SetScrollPosition(int16(pos)); err != nil {
		return fmt.Errorf("ili9325: %w", err)
	}
	return nil
}

// Halt turns the display off.
// After calling Halt, drawing calls fail until a new Dev is created.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommands([]regValue{{DisplayControl1, 0x0000}})
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9325.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
