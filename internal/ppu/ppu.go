// Package ppu holds the memory owned by the Game Boy's picture
// processing unit: video RAM, object attribute memory and the LCD
// control registers. Rendering is not performed.
package ppu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// PPU is the graphics unit as seen from the bus.
type PPU struct {
	vRAM [0x2000]uint8 // 8000..9FFF
	oam  *OAM          // FE00..FE9F
	regs [0x0C]uint8   // FF40..FF4B
}

// New returns a new PPU with all memory cleared.
func New() *PPU {
	return &PPU{
		oam: NewOAM(),
	}
}

// ReadVRAM returns the byte of video RAM at addr (0x8000 - 0x9FFF).
func (p *PPU) ReadVRAM(addr uint16) uint8 {
	return p.vRAM[addr-types.VRAMStart]
}

// WriteVRAM sets the byte of video RAM at addr (0x8000 - 0x9FFF).
func (p *PPU) WriteVRAM(addr uint16, value uint8) {
	p.vRAM[addr-types.VRAMStart] = value
}

// ReadOAM returns the byte of OAM at addr (0xFE00 - 0xFE9F).
func (p *PPU) ReadOAM(addr uint16) uint8 {
	return p.oam.Read(addr - types.OAMStart)
}

// WriteOAM sets the byte of OAM at addr (0xFE00 - 0xFE9F).
func (p *PPU) WriteOAM(addr uint16, value uint8) {
	p.oam.Write(addr-types.OAMStart, value)
}

// ReadRegister returns an LCD register (0xFF40 - 0xFF4B).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	if addr < types.LCDC || addr > types.WX {
		panic(fmt.Sprintf("ppu: register read out of range: %04X", addr))
	}
	return p.regs[addr-types.LCDC]
}

// WriteRegister sets an LCD register (0xFF40 - 0xFF4B). A write to DMA
// only records the source page.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	if addr < types.LCDC || addr > types.WX {
		panic(fmt.Sprintf("ppu: register write out of range: %04X", addr))
	}
	p.regs[addr-types.LCDC] = value
}

// Sprite returns the i'th OAM entry.
func (p *PPU) Sprite(i int) Sprite {
	return p.oam.Sprites[i]
}

var _ types.Stater = (*PPU)(nil)

func (p *PPU) Load(s *types.State) {
	s.ReadData(p.vRAM[:])
	p.oam.Load(s)
	s.ReadData(p.regs[:])
}

func (p *PPU) Save(s *types.State) {
	s.WriteData(p.vRAM[:])
	p.oam.Save(s)
	s.WriteData(p.regs[:])
}
