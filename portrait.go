package ili9325

// Portrait presents the panel in its native 240x320 orientation. Logical
// coordinates are physical coordinates.
type Portrait[A AccessMode] struct {
	am A
}

// NewPortrait returns a portrait orientation writing through am.
func NewPortrait[A AccessMode](am A) *Portrait[A] {
	return &Portrait[A]{am: am}
}

func (p *Portrait[A]) Width() int16 {
	return PhysicalWidth
}

func (p *Portrait[A]) Height() int16 {
	return PhysicalHeight
}

func (p *Portrait[A]) EntryMode() uint16 {
	return IDHIncVInc
}

func (p *Portrait[A]) MoveToRect(rc Rectangle) error {
	return p.MoveTo(rc.X, rc.Y, rc.X+rc.Width-1, rc.Y+rc.Height-1)
}

func (p *Portrait[A]) MoveTo(xstart, ystart, xend, yend int16) error {
	w := regWriter[A]{am: p.am}
	w.write(HorizontalRAMPositionStart, xstart)
	w.write(HorizontalRAMPositionEnd, xend)
	w.write(VerticalRAMPositionStart, ystart)
	w.write(VerticalRAMPositionEnd, yend)
	w.write(HorizontalAddress, xstart)
	w.write(VerticalAddress, ystart)
	return w.err
}

func (p *Portrait[A]) MoveX(xstart, xend int16) error {
	w := regWriter[A]{am: p.am}
	w.write(HorizontalRAMPositionStart, xstart)
	w.write(HorizontalRAMPositionEnd, xend)
	w.write(HorizontalAddress, xstart)
	return w.err
}

func (p *Portrait[A]) MoveY(ystart, yend int16) error {
	w := regWriter[A]{am: p.am}
	w.write(VerticalRAMPositionStart, ystart)
	w.write(VerticalRAMPositionEnd, yend)
	w.write(VerticalAddress, ystart)
	return w.err
}

// SetScrollPosition shifts the scan origin along logical Y, with the same
// single-step wraparound as Landscape.
func (p *Portrait[A]) SetScrollPosition(pos int16) error {
	return p.am.WriteCommand(GateScanControlScroll, uint16(wrapScroll(pos)))
}
