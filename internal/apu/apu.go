// Package apu holds the registers and wave RAM of the Game Boy's audio
// processing unit. Sound generation is not performed.
package apu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// APU represents the GameBoy's audio processing unit. It comprises 4
// channels: 2 pulse channels, a wave channel and a noise channel. Each
// channel is controlled by a set of registers in 0xFF10 - 0xFF26, and
// channel 3 plays the 16 bytes of wave RAM at 0xFF30 - 0xFF3F.
type APU struct {
	memory  [0x17]uint8 // FF10..FF26
	waveRAM [0x10]uint8 // FF30..FF3F

	cycleCount uint64
}

// New returns a new APU with all registers cleared.
func New() *APU {
	return &APU{}
}

// unused reports whether addr falls in one of the holes of the
// register block. Holes read 0xFF and ignore writes.
func unused(addr uint16) bool {
	switch {
	case addr == 0xFF15, addr == 0xFF1F:
		return true
	case addr > types.NR52 && addr < types.WaveRAM:
		return true
	}
	return false
}

// Read returns the register or wave RAM byte at addr.
func (a *APU) Read(addr uint16) uint8 {
	switch {
	case addr >= types.WaveRAM && addr <= types.AudioEnd:
		return a.waveRAM[addr-types.WaveRAM]
	case addr < types.NR10 || addr > types.AudioEnd:
		panic(fmt.Sprintf("apu: invalid register address %04X", addr))
	case unused(addr):
		return 0xFF
	}
	return a.memory[addr-types.NR10]
}

// Write sets the register or wave RAM byte at addr.
func (a *APU) Write(addr uint16, value uint8) {
	switch {
	case addr >= types.WaveRAM && addr <= types.AudioEnd:
		a.waveRAM[addr-types.WaveRAM] = value
	case addr < types.NR10 || addr > types.AudioEnd:
		panic(fmt.Sprintf("apu: invalid register address %04X", addr))
	case unused(addr):
	default:
		a.memory[addr-types.NR10] = value
	}
}

// Tick advances the APU by the given number of clock ticks.
func (a *APU) Tick(cycles uint8) {
	a.cycleCount += uint64(cycles)
}

// Cycles returns the number of clock ticks seen so far.
func (a *APU) Cycles() uint64 {
	return a.cycleCount
}

var _ types.Stater = (*APU)(nil)

func (a *APU) Load(s *types.State) {
	s.ReadData(a.memory[:])
	s.ReadData(a.waveRAM[:])
}

func (a *APU) Save(s *types.State) {
	s.WriteData(a.memory[:])
	s.WriteData(a.waveRAM[:])
}
