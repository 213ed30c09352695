package ili9325

// AccessMode writes a value to a controller register.
//
// Writes must reach the controller in call order. Errors are returned to
// the caller of the orientation method unchanged.
type AccessMode interface {
	WriteCommand(r Register, v uint16) error
}

// Bus is an AccessMode that can also stream pixel data into GRAM at the
// current address counter.
type Bus interface {
	AccessMode
	// WriteGRAM selects WriteDataToGRAM and sends pix, two big-endian bytes
	// per pixel.
	WriteGRAM(pix []byte) error
}

// Orientation translates logical drawing coordinates into physical register
// writes for one fixed display orientation.
//
// Implementations hold no window state and perform no locking: callers
// sharing one controller must serialize their calls, otherwise register
// writes interleave and corrupt the window.
type Orientation interface {
	Width() int16
	Height() int16
	// EntryMode is the R03h value that makes the address counter walk the
	// window in logical row-major order.
	EntryMode() uint16

	MoveTo(xstart, ystart, xend, yend int16) error
	MoveToRect(rc Rectangle) error
	MoveX(xstart, xend int16) error
	MoveY(ystart, yend int16) error
	SetScrollPosition(pos int16) error
}

var (
	_ Orientation = (*Landscape[AccessMode])(nil)
	_ Orientation = (*Portrait[AccessMode])(nil)
)

// regWriter issues register writes until the first failure.
type regWriter[A AccessMode] struct {
	am  A
	err error
}

func (w *regWriter[A]) write(r Register, v int16) {
	if w.err == nil {
		w.err = w.am.WriteCommand(r, uint16(v))
	}
}

// wrapScroll folds pos into [0, PhysicalHeight) with a single step in either
// direction. Values more than one period away stay out of range.
func wrapScroll(pos int16) int16 {
	if pos < 0 {
		pos += PhysicalHeight
	} else if pos > PhysicalHeight-1 {
		pos -= PhysicalHeight
	}
	return pos
}
