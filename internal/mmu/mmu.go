// Package mmu provides the memory bus for the Game Boy. The MMU owns
// the boot ROM, working RAM and high RAM, and delegates every other
// mapped address to the peripheral that owns it.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// IOBus is the interface that the MMU uses to communicate with
// peripherals that expose a flat register space.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Video is the graphics unit as seen from the bus.
type Video interface {
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, value uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, value uint8)
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
}

// Interrupts is the interrupt controller as seen from the bus.
type Interrupts interface {
	IOBus
	Pending() bool
}

// Region is a contiguous, inclusive range of addresses owned by a
// single component.
type Region struct {
	Name  string
	Start uint16
	End   uint16

	read  func(address uint16) uint8
	write func(address uint16, value uint8)
}

// Contains reports whether address lies in the region.
func (r *Region) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// MMU is the memory bus. It handles all memory reads and writes to
// the 64kB address space by dispatching on address range.
type MMU struct {
	// 64kB address space, nil entries are unmapped
	raw     [0x10000]*Region
	regions []*Region

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM *boot.ROM

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	// 0xFF40 - 0xFF4B - LCD registers
	Video Video

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM *ram.RAM

	// 0xFF00 - Joypad
	Input IOBus

	// 0xFF10 - 0xFF3F - Sound registers & Wave Pattern RAM
	Sound IOBus

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	// 0xFFFF - interrupt enable register
	IRQ Interrupts
}

// NewMMU returns a new MMU with the given boot ROM and peripherals
// attached.
func NewMMU(bootROM *boot.ROM, video Video, sound, input IOBus, irq Interrupts) *MMU {
	m := &MMU{
		bootROM: bootROM,
		Video:   video,
		wRAM:    ram.NewRAM(uint32(types.WRAMEnd-types.WRAMStart) + 1),
		Input:   input,
		Sound:   sound,
		zRAM:    ram.NewRAM(uint32(types.HRAMEnd-types.HRAMStart) + 1),
		IRQ:     irq,
	}
	m.init()

	return m
}

func (m *MMU) init() {
	m.mapRegion(Region{Name: "boot rom", Start: types.BootROMStart, End: types.BootROMEnd,
		read: m.bootROM.Read})
	m.mapRegion(Region{Name: "vram", Start: types.VRAMStart, End: types.VRAMEnd,
		read: m.Video.ReadVRAM, write: m.Video.WriteVRAM})
	m.mapRegion(Region{Name: "wram", Start: types.WRAMStart, End: types.WRAMEnd,
		read: readOffset(m.wRAM.Read, types.WRAMStart), write: writeOffset(m.wRAM.Write, types.WRAMStart)})
	m.mapRegion(Region{Name: "oam", Start: types.OAMStart, End: types.OAMEnd,
		read: m.Video.ReadOAM, write: m.Video.WriteOAM})
	m.mapRegion(Region{Name: "joypad", Start: types.P1, End: types.P1,
		read: m.Input.Read, write: m.Input.Write})
	m.mapRegion(Region{Name: "audio", Start: types.AudioStart, End: types.AudioEnd,
		read: m.Sound.Read, write: m.Sound.Write})
	m.mapRegion(Region{Name: "video registers", Start: types.LCDC, End: types.VideoRegEnd,
		read: m.Video.ReadRegister, write: m.Video.WriteRegister})
	m.mapRegion(Region{Name: "hram", Start: types.HRAMStart, End: types.HRAMEnd,
		read: readOffset(m.zRAM.Read, types.HRAMStart), write: writeOffset(m.zRAM.Write, types.HRAMStart)})
	m.mapRegion(Region{Name: "interrupt enable", Start: types.IE, End: types.IE,
		read: m.IRQ.Read, write: m.IRQ.Write})
}

// mapRegion claims every address of r. Claiming an address twice is a
// programming error in the memory map.
func (m *MMU) mapRegion(r Region) {
	region := &r
	for i := uint32(r.Start); i <= uint32(r.End); i++ {
		if owner := m.raw[i]; owner != nil {
			panic(fmt.Sprintf("mmu: address %04X of %s has already been reserved by %s", i, r.Name, owner.Name))
		}
		m.raw[i] = region
	}
	m.regions = append(m.regions, region)
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

// Regions returns the memory map in ascending address order.
func (m *MMU) Regions() []Region {
	out := make([]Region, len(m.regions))
	for i, r := range m.regions {
		out[i] = *r
	}
	return out
}

// RegionOf returns the region that owns address.
func (m *MMU) RegionOf(address uint16) (Region, bool) {
	if r := m.raw[address]; r != nil {
		return *r, true
	}
	return Region{}, false
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	r := m.raw[address]
	if r == nil || r.read == nil {
		return 0, &UnmappedAddressError{Address: address}
	}
	return r.read(address), nil
}

// Write writes value to the given address. The boot ROM has no write
// mapping.
func (m *MMU) Write(address uint16, value uint8) error {
	r := m.raw[address]
	if r == nil || r.write == nil {
		return &UnmappedAddressError{Address: address, Write: true}
	}
	r.write(address, value)
	return nil
}

// InterruptPending reports whether IME is set and an enabled interrupt
// has been requested.
func (m *MMU) InterruptPending() bool {
	return m.IRQ.Pending()
}

// BootROM returns the mapped boot ROM.
func (m *MMU) BootROM() *boot.ROM {
	return m.bootROM
}

var _ types.Stater = (*MMU)(nil)

// Load restores the RAM owned by the MMU. Peripherals save their own
// memory.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.wRAM.Bytes())
	s.ReadData(m.zRAM.Bytes())
}

// Save writes the RAM owned by the MMU.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.wRAM.Bytes())
	s.WriteData(m.zRAM.Bytes())
}
