package ili9325

// Landscape presents the panel as 320x240.
//
// Logical Y maps straight onto the physical column axis. Logical X maps onto
// the physical row axis read backwards, so every X coordinate is written as
// 319-x and the start/end roles of the row registers swap.
type Landscape[A AccessMode] struct {
	am A
}

// NewLandscape returns a landscape orientation writing through am. am stays
// owned by the caller.
func NewLandscape[A AccessMode](am A) *Landscape[A] {
	return &Landscape[A]{am: am}
}

// Width returns 320.
func (l *Landscape[A]) Width() int16 {
	return 320
}

// Height returns 240.
func (l *Landscape[A]) Height() int16 {
	return 240
}

// EntryMode returns vertical-first addressing, horizontal increment,
// vertical decrement.
func (l *Landscape[A]) EntryMode() uint16 {
	return AMVertical | IDHIncVDec
}

// MoveToRect sets the addressing window to rc.
func (l *Landscape[A]) MoveToRect(rc Rectangle) error {
	return l.MoveTo(rc.X, rc.Y, rc.X+rc.Width-1, rc.Y+rc.Height-1)
}

// MoveTo sets the addressing window to the inclusive logical corners and
// puts the address counter on the top-left logical pixel.
//
// It issues exactly six writes: column start/end, row end/start, column
// address, row address.
func (l *Landscape[A]) MoveTo(xstart, ystart, xend, yend int16) error {
	w := regWriter[A]{am: l.am}
	w.write(HorizontalRAMPositionStart, ystart)
	w.write(HorizontalRAMPositionEnd, yend)

	w.write(VerticalRAMPositionEnd, PhysicalHeight-1-xstart)
	w.write(VerticalRAMPositionStart, PhysicalHeight-1-xend)

	w.write(HorizontalAddress, ystart)
	w.write(VerticalAddress, PhysicalHeight-1-xstart)
	return w.err
}

// MoveX updates the logical X range only.
func (l *Landscape[A]) MoveX(xstart, xend int16) error {
	w := regWriter[A]{am: l.am}
	w.write(VerticalRAMPositionEnd, PhysicalHeight-1-xstart)
	w.write(VerticalRAMPositionStart, PhysicalHeight-1-xend)
	w.write(VerticalAddress, PhysicalHeight-1-xstart)
	return w.err
}

// MoveY updates the logical Y range only.
func (l *Landscape[A]) MoveY(ystart, yend int16) error {
	w := regWriter[A]{am: l.am}
	w.write(HorizontalRAMPositionStart, ystart)
	w.write(HorizontalRAMPositionEnd, yend)
	w.write(HorizontalAddress, ystart)
	return w.err
}

// SetScrollPosition shifts the scan origin along logical X.
//
// pos is wrapped once: -1 becomes 319 and 320 becomes 0. Values further
// than one period outside [0, 319] are written wrapped once only.
func (l *Landscape[A]) SetScrollPosition(pos int16) error {
	return l.am.WriteCommand(GateScanControlScroll, uint16(wrapScroll(pos)))
}
