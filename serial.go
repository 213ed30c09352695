package ili9325

import (
	"periph.io/x/conn/v3"
)

// Txer is the half of a bus connection the serial interface needs.
// periph.io conn.Conn and tinygo drivers.SPI both satisfy it.
type Txer interface {
	Tx(w, r []byte) error
}

// Start bytes of the ILI9325 serial interface: 0b01110, ID, RS, RW.
const (
	startIndex = 0x70 // RS=0, write index register
	startData  = 0x72 // RS=1, write register or GRAM data
)

// defaultMaxTxSize bounds one data transaction when the connection does not
// report its own limit. It matches the Linux spidev default.
const defaultMaxTxSize = 4096

// Serial is a Bus over the ILI9325 synchronous serial interface.
//
// Every register access is an index transaction followed by a data
// transaction, each opened by a start byte. The chip select line must frame
// each Tx: spidev does that on its own, tinygo buses need a cs callback.
type Serial struct {
	c     Txer
	cs    func(high bool)
	maxTx int
	buf   []byte
}

// NewSerial returns a Serial over c. If c implements conn.Limits its
// MaxTxSize bounds the GRAM transactions.
func NewSerial(c Txer) *Serial {
	limit := defaultMaxTxSize
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 2 {
		limit = l.MaxTxSize()
	}
	return &Serial{c: c, maxTx: limit}
}

// WriteCommand implements AccessMode.
func (s *Serial) WriteCommand(r Register, v uint16) error {
	if err := s.writeIndex(r); err != nil {
		return err
	}
	return s.tx([]byte{startData, byte(v >> 8), byte(v)})
}

// WriteGRAM implements Bus. pix is split into as many data transactions as
// the connection limit requires; a transaction never splits a pixel.
func (s *Serial) WriteGRAM(pix []byte) error {
	if err := s.writeIndex(WriteDataToGRAM); err != nil {
		return err
	}
	chunk := (s.maxTx - 1) &^ 1
	if cap(s.buf) < chunk+1 {
		s.buf = make([]byte, 0, chunk+1)
	}
	for len(pix) > 0 {
		n := min(chunk, len(pix))
		b := append(s.buf[:0], startData)
		b = append(b, pix[:n]...)
		if err := s.tx(b); err != nil {
			return err
		}
		pix = pix[n:]
	}
	return nil
}

func (s *Serial) writeIndex(r Register) error {
	return s.tx([]byte{startIndex, byte(r >> 8), byte(r)})
}

func (s *Serial) tx(w []byte) error {
	if s.cs == nil {
		return s.c.Tx(w, nil)
	}
	s.cs(false)
	err := s.c.Tx(w, nil)
	s.cs(true)
	return err
}

func (s *Serial) String() string {
	if st, ok := s.c.(interface{ String() string }); ok {
		return "ili9325.Serial{" + st.String() + "}"
	}
	return "ili9325.Serial"
}
