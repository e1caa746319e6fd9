// Package cpu implements the Sharp LR35902 execution engine, advanced
// one M-cycle (4 clock ticks) at a time. Each Step performs at most one
// bus access; all progress within an instruction is held in the Stage,
// so stepping can stop and resume after any cycle.
package cpu

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// TicksPerCycle is the number of clock ticks in one M-cycle.
	TicksPerCycle = 4
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 16-bit registers and their 8-bit halves.
	Registers

	stage Stage

	// opcode is the most recently fetched instruction byte, kept
	// across the stages of its instruction.
	opcode   uint8
	prefixed bool
}

// NewCPU returns a CPU with every register cleared, ready to fetch
// from 0x0000.
func NewCPU() *CPU {
	return &CPU{stage: fetchStage()}
}

// Stage returns the stage the next Step will perform.
func (c *CPU) Stage() Stage {
	return c.stage
}

// Opcode returns the current instruction byte and whether it followed
// the 0xCB prefix.
func (c *CPU) Opcode() (uint8, bool) {
	return c.opcode, c.prefixed
}

// Step advances the CPU by one M-cycle, performing at most one bus
// read or write.
//
// On error the stage and registers are left as they were before the
// step, so calling Step again reproduces the same error.
func (c *CPU) Step(b Bus) error {
	switch c.stage.Kind {
	case StageFetch:
		pc := c.Get16(PC)
		// interrupts are only considered between instructions
		if b.InterruptPending() {
			return &InterruptDispatchError{PC: pc}
		}
		opcode, err := b.Read(pc)
		if err != nil {
			return errors.Wrapf(err, "cpu: fetching opcode at %04X", pc)
		}
		if opcode == 0xCB {
			c.opcode, c.prefixed = opcode, false
			c.Add16(PC, 1)
			c.stage = fetchPrefixedStage()
			return nil
		}
		return c.dispatch(opcode, false)
	case StageFetchPrefixed:
		pc := c.Get16(PC)
		opcode, err := b.Read(pc)
		if err != nil {
			return errors.Wrapf(err, "cpu: fetching prefixed opcode at %04X", pc)
		}
		return c.dispatch(opcode, true)
	case StageRead:
		src := c.stage.src
		if !src.Ready() {
			next, err := src.Step(b)
			if err != nil {
				return errors.Wrapf(err, "cpu: reading operand of %s", c.instructionName())
			}
			src = next
		}
		if !src.Ready() {
			c.stage.src = src
			return nil
		}
		next, err := c.decodePhase(phaseReady, src.Value())
		if err != nil {
			return err
		}
		c.stage = next
	case StageWait:
		c.stage = writeStage(c.stage.dst)
	case StageWrite:
		next, err := c.stage.dst.Step(b)
		if err != nil {
			return errors.Wrapf(err, "cpu: writing result of %s", c.instructionName())
		}
		if next.Done() {
			c.stage = fetchStage()
		} else {
			c.stage.dst = next
		}
	default:
		return errors.Errorf("cpu: invalid stage %d", c.stage.Kind)
	}
	return nil
}

// dispatch starts executing a freshly fetched opcode.
func (c *CPU) dispatch(opcode uint8, prefixed bool) error {
	prevOpcode, prevPrefixed := c.opcode, c.prefixed
	c.opcode, c.prefixed = opcode, prefixed
	next, err := c.decodePhase(phaseFetched, 0)
	if err != nil {
		c.opcode, c.prefixed = prevOpcode, prevPrefixed
		return err
	}
	c.stage = next
	return nil
}

func (c *CPU) decodePhase(p phase, v uint16) (Stage, error) {
	if c.prefixed {
		return c.decodeCB(c.opcode, p, v)
	}
	return c.decode(c.opcode, p, v)
}

func (c *CPU) instructionName() string {
	if c.prefixed {
		return fmt.Sprintf("CB %02X", c.opcode)
	}
	return fmt.Sprintf("%02X", c.opcode)
}

// String renders the registers and stage, one line, for traces.
func (c *CPU) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X [%s]",
		c.Get8(A), c.Get8(F), c.Get8(B), c.Get8(C), c.Get8(D), c.Get8(E), c.Get8(H), c.Get8(L),
		c.Get16(SP), c.Get16(PC), c.stage)
}

var _ types.Stater = (*CPU)(nil)

// Load restores the CPU, including a partially executed instruction.
func (c *CPU) Load(s *types.State) {
	c.Registers.Load(s)
	c.opcode = s.Read8()
	c.prefixed = s.ReadBool()
	c.stage.Kind = StageKind(s.Read8())
	c.stage.src = Source{kind: sourceKind(s.Read8()), address: s.Read16(), value: s.Read16()}
	c.stage.dst = Destination{kind: destinationKind(s.Read8()), address: s.Read16(), value: s.Read16()}
}

// Validate reports whether the stage restored by Load is one Step can
// resume. It returns an error wrapping ErrInvalidState otherwise.
func (c *CPU) Validate() error {
	switch {
	case c.stage.Kind > StageWrite:
		return errors.Wrapf(ErrInvalidState, "stage kind %d", c.stage.Kind)
	case c.stage.src.kind > sourceValue16:
		return errors.Wrapf(ErrInvalidState, "source kind %d", c.stage.src.kind)
	case c.stage.dst.kind > destinationDone:
		return errors.Wrapf(ErrInvalidState, "destination kind %d", c.stage.dst.kind)
	}
	return nil
}

// Save writes the CPU, including a partially executed instruction.
func (c *CPU) Save(s *types.State) {
	c.Registers.Save(s)
	s.Write8(c.opcode)
	s.WriteBool(c.prefixed)
	s.Write8(uint8(c.stage.Kind))
	s.Write8(uint8(c.stage.src.kind))
	s.Write16(c.stage.src.address)
	s.Write16(c.stage.src.value)
	s.Write8(uint8(c.stage.dst.kind))
	s.Write16(c.stage.dst.address)
	s.Write16(c.stage.dst.value)
}
