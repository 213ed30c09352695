// Package panelsim emulates the addressing logic of an ILI9325 controller.
//
// A Panel keeps the register file and the 240x320 GRAM in memory and moves
// its address counter the way the controller does, so the register writes
// issued by an ili9325.Orientation can be checked against where pixels
// actually land. It implements ili9325.Bus.
package panelsim

import (
	"fmt"
	"image"

	"periph.io/x/devices/v3/ili9325"
	"periph.io/x/devices/v3/ili9325/rgb565"
)

const (
	width  = ili9325.PhysicalWidth
	height = ili9325.PhysicalHeight
)

// Write is one register write as seen by the controller.
type Write struct {
	Reg   ili9325.Register
	Value uint16
}

func (w Write) String() string {
	return fmt.Sprintf("R%02Xh=%#04x", uint16(w.Reg), w.Value)
}

// Panel is an emulated controller. The zero value is not usable; call New.
type Panel struct {
	regs [256]uint16
	gram [width * height]rgb565.RGB565

	// address counter: ha is the physical column, va the physical row
	ha, va int

	log    []Write
	pixels int

	failIn  int
	failErr error
}

var _ ili9325.Bus = (*Panel)(nil)

// New returns a Panel in its reset state: full-screen window, horizontal
// increment, vertical increment, GRAM cleared.
func New() *Panel {
	p := &Panel{}
	p.regs[ili9325.EntryMode] = ili9325.IDHIncVInc
	p.regs[ili9325.HorizontalRAMPositionEnd] = width - 1
	p.regs[ili9325.VerticalRAMPositionEnd] = height - 1
	return p
}

// WriteCommand implements ili9325.AccessMode. A write to WriteDataToGRAM
// stores one pixel.
func (p *Panel) WriteCommand(r ili9325.Register, v uint16) error {
	if err := p.fail(); err != nil {
		return err
	}
	if int(r) >= len(p.regs) {
		return fmt.Errorf("panelsim: no register R%02Xh", uint16(r))
	}
	p.log = append(p.log, Write{Reg: r, Value: v})
	switch r {
	case ili9325.HorizontalAddress:
		p.ha = int(v)
	case ili9325.VerticalAddress:
		p.va = int(v)
	case ili9325.WriteDataToGRAM:
		p.put(rgb565.RGB565(v))
		return nil
	}
	p.regs[r] = v
	return nil
}

// WriteGRAM implements ili9325.Bus.
func (p *Panel) WriteGRAM(pix []byte) error {
	if err := p.fail(); err != nil {
		return err
	}
	if len(pix)%2 != 0 {
		return fmt.Errorf("panelsim: odd GRAM write of %d bytes", len(pix))
	}
	for i := 0; i < len(pix); i += 2 {
		p.put(rgb565.RGB565(pix[i])<<8 | rgb565.RGB565(pix[i+1]))
	}
	return nil
}

// FailAfter makes the n-th write from now (1 based) return err without
// being applied. Writes after it succeed again.
func (p *Panel) FailAfter(n int, err error) {
	p.failIn = n
	p.failErr = err
}

func (p *Panel) fail() error {
	if p.failIn == 0 {
		return nil
	}
	p.failIn--
	if p.failIn == 0 {
		return p.failErr
	}
	return nil
}

// Log returns the register writes received since New or the last Reset.
func (p *Panel) Log() []Write {
	return append([]Write(nil), p.log...)
}

// Reset clears the write log and the pixel count.
func (p *Panel) Reset() {
	p.log = p.log[:0]
	p.pixels = 0
}

// Pixels returns the number of pixels written since New or the last Reset.
func (p *Panel) Pixels() int {
	return p.pixels
}

// Register returns the last value written to r.
func (p *Panel) Register(r ili9325.Register) uint16 {
	if int(r) >= len(p.regs) {
		return 0
	}
	return p.regs[r]
}

// Counter returns the address counter as (column, row).
func (p *Panel) Counter() (col, row int) {
	return p.ha, p.va
}

// Pixel returns the GRAM word at the physical column and row.
func (p *Panel) Pixel(col, row int) rgb565.RGB565 {
	if col < 0 || col >= width || row < 0 || row >= height {
		return 0
	}
	return p.gram[row*width+col]
}

// Frame returns a copy of GRAM as a 240x320 image.
func (p *Panel) Frame() *rgb565.Image {
	img := rgb565.NewImage(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			img.SetRGB565(col, row, p.gram[row*width+col])
		}
	}
	return img
}

// Scanout returns what the glass shows in physical orientation. When
// vertical scrolling is enabled, display line n shows GRAM row n+VL.
func (p *Panel) Scanout() *rgb565.Image {
	shift := 0
	if p.regs[ili9325.BaseImageDisplayControl]&ili9325.BaseImageVLE != 0 {
		shift = int(p.regs[ili9325.GateScanControlScroll]) % height
	}
	img := rgb565.NewImage(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		src := (row + shift) % height
		for col := 0; col < width; col++ {
			img.SetRGB565(col, row, p.gram[src*width+col])
		}
	}
	return img
}

// Landscape returns the scan-out as a 320x240 image in the coordinates of
// ili9325.Landscape.
func (p *Panel) Landscape() *rgb565.Image {
	phys := p.Scanout()
	img := rgb565.NewImage(image.Rect(0, 0, height, width))
	for y := 0; y < width; y++ {
		for x := 0; x < height; x++ {
			img.SetRGB565(x, y, phys.RGB565At(y, height-1-x))
		}
	}
	return img
}

// Portrait returns the scan-out in the coordinates of ili9325.Portrait.
func (p *Panel) Portrait() *rgb565.Image {
	return p.Scanout()
}

// put stores c at the address counter and advances it.
func (p *Panel) put(c rgb565.RGB565) {
	if p.ha >= 0 && p.ha < width && p.va >= 0 && p.va < height {
		p.gram[p.va*width+p.ha] = c
	}
	p.pixels++
	p.advance()
}

// advance moves the counter one step inside the window. The primary axis
// wraps to the opposite window edge, carrying one step into the other axis.
func (p *Panel) advance() {
	em := p.regs[ili9325.EntryMode]
	hInc := em&0x0010 != 0
	vInc := em&0x0020 != 0
	hsa, hea := int(p.regs[ili9325.HorizontalRAMPositionStart]), int(p.regs[ili9325.HorizontalRAMPositionEnd])
	vsa, vea := int(p.regs[ili9325.VerticalRAMPositionStart]), int(p.regs[ili9325.VerticalRAMPositionEnd])

	var carry bool
	if em&ili9325.AMVertical != 0 {
		if p.va, carry = step(p.va, vsa, vea, vInc); carry {
			p.ha, _ = step(p.ha, hsa, hea, hInc)
		}
		return
	}
	if p.ha, carry = step(p.ha, hsa, hea, hInc); carry {
		p.va, _ = step(p.va, vsa, vea, vInc)
	}
}

func step(pos, lo, hi int, inc bool) (int, bool) {
	if inc {
		if pos >= hi {
			return lo, true
		}
		return pos + 1, false
	}
	if pos <= lo {
		return hi, true
	}
	return pos - 1, false
}
