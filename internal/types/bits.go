package types

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000

	// LowNibble masks bits 0-3.
	LowNibble = 0x0F
	// HighNibble masks bits 4-7.
	HighNibble = 0xF0
)
