// Package ili9325 controls an ILI9325 TFT controller.
//
// The ILI9325 drives a 240x320 RGB565 panel. Its graphics RAM is addressed
// by a column (0-239) and a row (0-319) counter that walk a rectangular
// window. This package translates logical drawing coordinates in a chosen
// orientation into those physical register writes, and implements the
// display.Drawer interface from periph.io on top of it.
//
// # Orientations
//
// An Orientation is bound once, when the device is created:
//
//	Landscape  320x240  logical Y = physical column, logical X = 319 - physical row
//	Portrait   240x320  logical = physical
//
// Landscape is the default. Every window operation is a fixed sequence of
// register writes; the controller holds the only copy of the window.
//
// # Access Modes
//
// Register writes go through an AccessMode. Serial implements it over the
// controller's synchronous serial interface, where each transaction starts
// with a start byte carrying the register select bit:
//
//	Index write:  0x70 0x00 <register>
//	Data write:   0x72 <high> <low>
//
// Serial works with any periph.io SPI connection and with TinyGo SPI buses
// through NewTinyGoSerial.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDI         → SPI Data (MOSI)
//	SDO         → SPI Data (MISO), optional
//	CS          → SPI Chip Select
//	RESET       → Optional: GPIO for hardware reset
//	IM[3:0]     → 0b0110 (serial interface, ID=0)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//		"image/color"
//
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9325"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		dev, _ := ili9325.NewSPI(p, nil)
//		defer dev.Halt()
//
//		dev.Fill(dev.Bounds(), color.Black)
//		dev.Fill(image.Rect(10, 10, 110, 60), color.RGBA{R: 0xFF, A: 0xFF})
//	}
//
// # Scrolling
//
// The controller can shift the scan origin along its 320 line axis:
//
//	dev.Scroll(40)  // landscape: content moves 40 pixels along X
//
// Positions are wrapped once into [0, 319]: -1 becomes 319 and 320 becomes
// 0. Positions more than one period away are not folded further.
//
// # Concurrency
//
// Nothing in this package locks. A window is set by several register writes
// and pixels follow it, so concurrent callers must serialize access to one
// controller themselves.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ILI9325.pdf
package ili9325
