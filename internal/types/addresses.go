package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// IF is the address of the IF hardware register. It is not
	// mapped on the bus; peripherals raise requests directly.
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26
	// WaveRAM is the first of the 16 bytes of wave pattern storage
	// used by channel 3.
	WaveRAM HardwareAddress = 0xFF30

	// LCDC is the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register.
	STAT HardwareAddress = 0xFF41
	SCY  HardwareAddress = 0xFF42
	SCX  HardwareAddress = 0xFF43
	// LY is the current scanline.
	LY  HardwareAddress = 0xFF44
	LYC HardwareAddress = 0xFF45
	// DMA holds the source page of an OAM DMA transfer. The transfer
	// itself is not emulated.
	DMA  HardwareAddress = 0xFF46
	BGP  HardwareAddress = 0xFF47
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	WY   HardwareAddress = 0xFF4A
	WX   HardwareAddress = 0xFF4B

	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

// Memory region bounds, inclusive.
const (
	BootROMStart uint16 = 0x0000
	BootROMEnd   uint16 = 0x00FF
	VRAMStart    uint16 = 0x8000
	VRAMEnd      uint16 = 0x9FFF
	WRAMStart    uint16 = 0xC000
	WRAMEnd      uint16 = 0xDFFF
	OAMStart     uint16 = 0xFE00
	OAMEnd       uint16 = 0xFE9F
	AudioStart   uint16 = NR10
	AudioEnd     uint16 = 0xFF3F
	VideoRegEnd  uint16 = WX
	HRAMStart    uint16 = 0xFF80
	HRAMEnd      uint16 = 0xFFFE
)
