package ili9325

import (
	"tinygo.org/x/drivers"
)

// NewTinyGoSerial returns a Serial over a TinyGo SPI bus. machine.SPI does
// not drive chip select, so cs is called with false before and true after
// every transaction; pass a closure over the CS pin, e.g. pin.Set.
func NewTinyGoSerial(bus drivers.SPI, cs func(high bool)) *Serial {
	s := NewSerial(bus)
	s.cs = cs
	return s
}
