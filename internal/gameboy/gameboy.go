// Package gameboy wires the CPU, memory bus and peripherals into a
// machine that can be stepped one M-cycle at a time.
package gameboy

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/apu"
	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/joypad"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// ErrBreakpoint is returned by Run when PC reaches the breakpoint set
// with WithBreakpoint.
var ErrBreakpoint = errors.New("gameboy: breakpoint reached")

// ErrStateSize is returned when a save state does not match the size
// of the machine it is loaded into.
var ErrStateSize = errors.New("gameboy: save state has the wrong size")

// GameBoy represents a Game Boy. It contains all the components of the
// Game Boy and is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	APU        *apu.APU
	Joypad     *joypad.State
	Interrupts *interrupts.Service

	log.Logger

	currentCycle uint64
	initialState []byte

	tracing    bool
	traceAfter uint16

	breakpoint    uint16
	hasBreakpoint bool
}

// New returns a GameBoy that executes the given boot ROM from 0x0000,
// with every register cleared.
func New(bootROM []byte, opts ...Opt) (*GameBoy, error) {
	rom, err := boot.LoadBootROM(bootROM)
	if err != nil {
		return nil, errors.Wrap(err, "gameboy: loading boot rom")
	}

	irq := interrupts.NewService()
	pad := joypad.New(irq)
	sound := apu.New()
	video := ppu.New()

	g := &GameBoy{
		CPU: cpu.NewCPU(),
		MMU: mmu.NewMMU(rom, video, sound, pad, irq),
		PPU: video,

		APU:        sound,
		Joypad:     pad,
		Interrupts: irq,

		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.Debugf("boot rom %s (%s)", rom.Model(), rom.Checksum())
	if g.initialState != nil {
		if err := g.loadState(types.StateFromBytes(g.initialState)); err != nil {
			return nil, err
		}
		g.initialState = nil
	}
	return g, nil
}

// Step advances the machine by one M-cycle. The cycle counter only
// advances when the CPU does.
func (g *GameBoy) Step() error {
	if err := g.CPU.Step(g.MMU); err != nil {
		return err
	}
	g.APU.Tick(cpu.TicksPerCycle)

	if g.tracing && g.CPU.Get16(cpu.PC) > g.traceAfter {
		g.Debugf("%d: %s", g.currentCycle, g.CPU)
	}
	g.currentCycle++

	return nil
}

// Run steps the machine up to n cycles. It stops early on the first
// error, or with ErrBreakpoint when the next instruction to fetch is at
// the breakpoint. It returns the number of cycles completed.
func (g *GameBoy) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := g.Step(); err != nil {
			return i, err
		}
		if g.hasBreakpoint && g.CPU.Stage().Kind == cpu.StageFetch && g.CPU.Get16(cpu.PC) == g.breakpoint {
			return i + 1, ErrBreakpoint
		}
	}
	return n, nil
}

// Cycle returns the number of M-cycles executed.
func (g *GameBoy) Cycle() uint64 {
	return g.currentCycle
}

// Model returns the hardware model identified by the boot ROM, or
// types.Unset when the image is not a known dump.
func (g *GameBoy) Model() types.Model {
	return g.MMU.BootROM().Model()
}

// Digest returns a hash of the machine state: registers, the current
// stage and all memory on the bus. Two machines that executed the same
// program for the same number of cycles have the same digest.
func (g *GameBoy) Digest() uint64 {
	s := types.NewState()
	g.saveComponents(s)
	return xxhash.Sum64(s.Bytes())
}

var _ types.Stater = (*GameBoy)(nil)

// Load restores the machine from s.
func (g *GameBoy) Load(s *types.State) {
	g.CPU.Load(s)
	g.MMU.Load(s)
	g.PPU.Load(s)
	g.APU.Load(s)
	g.Joypad.Load(s)
	g.Interrupts.Load(s)

	var cycle [8]byte
	s.ReadData(cycle[:])
	g.currentCycle = binary.LittleEndian.Uint64(cycle[:])
}

// Save writes the machine to s.
func (g *GameBoy) Save(s *types.State) {
	g.saveComponents(s)

	var cycle [8]byte
	binary.LittleEndian.PutUint64(cycle[:], g.currentCycle)
	s.WriteData(cycle[:])
}

func (g *GameBoy) saveComponents(s *types.State) {
	g.CPU.Save(s)
	g.MMU.Save(s)
	g.PPU.Save(s)
	g.APU.Save(s)
	g.Joypad.Save(s)
	g.Interrupts.Save(s)
}

// SaveStateFile writes a compressed save state to filename.
func (g *GameBoy) SaveStateFile(filename string) error {
	s := types.NewState()
	g.Save(s)
	if err := s.SaveToFile(filename); err != nil {
		return errors.Wrap(err, "gameboy: saving state")
	}
	g.Infof("saved state at cycle %d to %s", g.currentCycle, filename)
	return nil
}

// LoadStateFile restores a save state written by SaveStateFile.
func (g *GameBoy) LoadStateFile(filename string) error {
	s, err := types.LoadStateFile(filename)
	if err != nil {
		return errors.Wrap(err, "gameboy: loading state")
	}
	if err := g.loadState(s); err != nil {
		return errors.Wrap(err, filename)
	}
	g.Infof("loaded state at cycle %d from %s", g.currentCycle, filename)
	return nil
}

// loadState restores s after checking that it fits this machine. A
// state holding a CPU stage that cannot be resumed is rejected and the
// machine is left as it was.
func (g *GameBoy) loadState(s *types.State) error {
	current := types.NewState()
	g.Save(current)
	if len(s.Bytes()) != len(current.Bytes()) {
		return errors.Wrapf(ErrStateSize, "state has %d bytes, want %d", len(s.Bytes()), len(current.Bytes()))
	}

	g.Load(s)
	if err := g.CPU.Validate(); err != nil {
		g.Load(types.StateFromBytes(current.Bytes()))
		return errors.Wrap(err, "gameboy: loading state")
	}
	return nil
}
