package ili9325

// Register is an ILI9325 register index (opcode).
type Register uint16

// Controller registers.
const (
	DriverCodeRead              Register = 0x00
	DriverOutputControl         Register = 0x01
	LCDDrivingControl           Register = 0x02
	EntryMode                   Register = 0x03
	ResizeControl               Register = 0x04
	DisplayControl1             Register = 0x07
	DisplayControl2             Register = 0x08
	DisplayControl3             Register = 0x09
	DisplayControl4             Register = 0x0A
	RGBDisplayInterfaceControl1 Register = 0x0C
	FrameMarkerPosition         Register = 0x0D
	RGBDisplayInterfaceControl2 Register = 0x0F
	PowerControl1               Register = 0x10
	PowerControl2               Register = 0x11
	PowerControl3               Register = 0x12
	PowerControl4               Register = 0x13
	PowerControl7               Register = 0x29
	FrameRateAndColorControl    Register = 0x2B

	// Address counter. HorizontalAddress selects the physical column
	// (0-239), VerticalAddress the physical row (0-319).
	HorizontalAddress Register = 0x20
	VerticalAddress   Register = 0x21
	WriteDataToGRAM   Register = 0x22

	Gamma1  Register = 0x30
	Gamma2  Register = 0x31
	Gamma3  Register = 0x32
	Gamma4  Register = 0x35
	Gamma5  Register = 0x36
	Gamma6  Register = 0x37
	Gamma7  Register = 0x38
	Gamma8  Register = 0x39
	Gamma9  Register = 0x3C
	Gamma10 Register = 0x3D

	// Window address. The horizontal pair bounds physical columns, the
	// vertical pair bounds physical rows.
	HorizontalRAMPositionStart Register = 0x50
	HorizontalRAMPositionEnd   Register = 0x51
	VerticalRAMPositionStart   Register = 0x52
	VerticalRAMPositionEnd     Register = 0x53

	GateScanControl         Register = 0x60
	BaseImageDisplayControl Register = 0x61
	GateScanControlScroll   Register = 0x6A

	PanelInterfaceControl1 Register = 0x90
	PanelInterfaceControl2 Register = 0x92
)

// Entry mode (R03h) bits.
const (
	// AMVertical makes the address counter advance along the vertical
	// (row) axis first.
	AMVertical uint16 = 0x0008

	IDHDecVDec uint16 = 0x0000
	IDHIncVDec uint16 = 0x0010
	IDHDecVInc uint16 = 0x0020
	IDHIncVInc uint16 = 0x0030

	OriginRespect uint16 = 0x0080
	BGR           uint16 = 0x1000
)

// Base image display control (R61h) bits.
const (
	BaseImageREV uint16 = 0x0001 // grayscale inversion
	BaseImageVLE uint16 = 0x0002 // vertical scroll enable
)

// Physical GRAM geometry.
const (
	PhysicalWidth  = 240 // columns
	PhysicalHeight = 320 // rows
)
