package ili9325

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"periph.io/x/conn/v3/conntest"
	"tinygo.org/x/drivers"
)

// limitedConn reports a small MaxTxSize like a constrained spidev would.
type limitedConn struct {
	conntest.Record
	max int
}

func (l *limitedConn) MaxTxSize() int {
	return l.max
}

// tinySPI stands in for machine.SPI.
type tinySPI struct {
	conntest.Record
}

func (s *tinySPI) Transfer(b byte) (byte, error) {
	return 0, nil
}

var _ drivers.SPI = (*tinySPI)(nil)

type failConn struct {
	calls int
	err   error
}

func (f *failConn) Tx(w, r []byte) error {
	f.calls++
	return f.err
}

func opsW(ops []conntest.IO) [][]byte {
	var out [][]byte
	for _, op := range ops {
		out = append(out, op.W)
	}
	return out
}

func TestSerialWriteCommand(t *testing.T) {
	rec := &conntest.Record{}
	s := NewSerial(rec)
	if err := s.WriteCommand(VerticalAddress, 0x013F); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{0x70, 0x00, 0x21},
		{0x72, 0x01, 0x3F},
	}
	if got := opsW(rec.Ops); !reflect.DeepEqual(got, want) {
		t.Errorf("ops = % X, want % X", got, want)
	}
}

func TestSerialPlayback(t *testing.T) {
	p := &conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x70, 0x00, 0x50}},
			{W: []byte{0x72, 0x00, 0x14}},
			{W: []byte{0x70, 0x00, 0x22}},
			{W: []byte{0x72, 0xF8, 0x00, 0x07, 0xE0}},
		},
	}
	s := NewSerial(p)
	if err := s.WriteCommand(HorizontalRAMPositionStart, 20); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteGRAM([]byte{0xF8, 0x00, 0x07, 0xE0}); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSerialWriteGRAMChunks(t *testing.T) {
	tests := []struct {
		name  string
		max   int
		n     int
		sizes []int
	}{
		{"fits", 64, 10, []int{3, 11}},
		{"even limit", 8, 10, []int{3, 7, 5}},
		{"odd limit", 5, 10, []int{3, 5, 5, 3}},
		{"tiny limit", 3, 4, []int{3, 3, 3}},
		{"empty", 64, 0, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &limitedConn{max: tt.max}
			pix := make([]byte, tt.n)
			for i := range pix {
				pix[i] = byte(i)
			}
			if err := NewSerial(c).WriteGRAM(pix); err != nil {
				t.Fatal(err)
			}
			var sizes []int
			var data []byte
			for i, op := range c.Ops {
				sizes = append(sizes, len(op.W))
				if i == 0 {
					if !bytes.Equal(op.W, []byte{0x70, 0x00, 0x22}) {
						t.Errorf("index op = % X", op.W)
					}
					continue
				}
				if op.W[0] != 0x72 {
					t.Errorf("op %d start byte = %#x, want 0x72", i, op.W[0])
				}
				data = append(data, op.W[1:]...)
			}
			if !reflect.DeepEqual(sizes, tt.sizes) {
				t.Errorf("transaction sizes = %v, want %v", sizes, tt.sizes)
			}
			if !bytes.Equal(data, pix) {
				t.Errorf("data = % X, want % X", data, pix)
			}
		})
	}
}

func TestSerialDefaultLimit(t *testing.T) {
	rec := &conntest.Record{}
	if err := NewSerial(rec).WriteGRAM(make([]byte, 10000)); err != nil {
		t.Fatal(err)
	}
	var sizes []int
	for _, op := range rec.Ops {
		sizes = append(sizes, len(op.W))
	}
	want := []int{3, 4095, 4095, 1813}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("transaction sizes = %v, want %v", sizes, want)
	}
}

func TestSerialErrors(t *testing.T) {
	errBus := errors.New("spi: broken")

	f := &failConn{err: errBus}
	if err := NewSerial(f).WriteCommand(EntryMode, 0); err != errBus {
		t.Errorf("WriteCommand err = %v, want %v", err, errBus)
	}
	if f.calls != 1 {
		t.Errorf("data transaction sent after failed index: %d calls", f.calls)
	}

	f = &failConn{err: errBus}
	if err := NewSerial(f).WriteGRAM(make([]byte, 8)); err != errBus {
		t.Errorf("WriteGRAM err = %v, want %v", err, errBus)
	}
	if f.calls != 1 {
		t.Errorf("GRAM data sent after failed index: %d calls", f.calls)
	}

	p := &conntest.Playback{DontPanic: true}
	if err := NewSerial(p).WriteCommand(EntryMode, 0); err == nil {
		t.Error("expected playback error")
	}
}

func TestTinyGoSerial(t *testing.T) {
	bus := &tinySPI{}
	var cs []bool
	s := NewTinyGoSerial(bus, func(high bool) { cs = append(cs, high) })
	if err := s.WriteCommand(GateScanControlScroll, 319); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{0x70, 0x00, 0x6A},
		{0x72, 0x01, 0x3F},
	}
	if got := opsW(bus.Ops); !reflect.DeepEqual(got, want) {
		t.Errorf("ops = % X, want % X", got, want)
	}
	if wantCS := []bool{false, true, false, true}; !reflect.DeepEqual(cs, wantCS) {
		t.Errorf("chip select = %v, want %v", cs, wantCS)
	}
}

func TestSerialString(t *testing.T) {
	if got, want := NewSerial(&conntest.Record{}).String(), "ili9325.Serial{record}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NewSerial(&failConn{}).String(), "ili9325.Serial"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
