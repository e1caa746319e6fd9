package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/utils"

// phase is the point within an instruction at which decode is called.
type phase uint8

const (
	// phaseFetched is entered once, straight after the opcode is read.
	// Immediate operands are accounted for by advancing PC here.
	phaseFetched phase = iota
	// phaseReady is entered once the instruction's Source has resolved.
	phaseReady
)

// decode executes one phase of an unprefixed instruction and returns
// the stage to continue with. Families are matched by bit mask and the
// first match wins. If nothing matches, the CPU is left untouched.
func (c *CPU) decode(instr uint8, p phase, v uint16) (Stage, error) {
	switch {
	case instr&0xCF == 0x01: // LD r16, n16
		dst, err := r16(instr >> 4 & 3)
		if err != nil {
			return Stage{}, err
		}
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 3)
			return c.load(Read16(pc + 1))
		}
		c.Set16(dst, v)
		return fetchStage(), nil
	case instr&0xCF == 0x02: // LD [r16mem], A
		address, err := c.indirect(instr >> 4 & 3)
		if err != nil {
			return Stage{}, err
		}
		c.Add16(PC, 1)
		return c.store(Write8(address, c.Get8(A))), nil
	case instr&0xCF == 0x0A: // LD A, [r16mem]
		if p == phaseFetched {
			address, err := c.indirect(instr >> 4 & 3)
			if err != nil {
				return Stage{}, err
			}
			c.Add16(PC, 1)
			return c.load(Read8(address))
		}
		c.Set8(A, uint8(v))
		return fetchStage(), nil
	case instr&0xF8 == 0xA8: // XOR A, r/m8
		return c.decodeALU(instr, aluXor, p, v)
	case instr&0xC0 == 0x40 && instr != 0x76: // LD r/m8, r/m8
		dst, err := slot(instr >> 3 & 7)
		if err != nil {
			return Stage{}, err
		}
		src, err := slot(instr & 7)
		if err != nil {
			return Stage{}, err
		}
		if p == phaseFetched {
			c.Add16(PC, 1)
			return c.load(c.operand(src))
		}
		return c.store(c.result(dst, uint8(v))), nil
	case instr == 0xE0: // LDH [n8], A
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 2)
			return c.load(Read8(pc + 1))
		}
		return c.store(Write8(0xFF00|v&0xFF, c.Get8(A))), nil
	case instr == 0xE2: // LDH [C], A
		c.Add16(PC, 1)
		return c.store(Write8(0xFF00|uint16(c.Get8(C)), c.Get8(A))), nil
	case instr&0xC7 == 0x06: // LD r/m8, n8
		dst, err := slot(instr >> 3 & 7)
		if err != nil {
			return Stage{}, err
		}
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 2)
			return c.load(Read8(pc + 1))
		}
		return c.store(c.result(dst, uint8(v))), nil
	case instr&0xC7 == 0x04: // INC r/m8
		return c.decodeIncDec(instr, 1, p, v)
	case instr&0xCF == 0x03: // INC r16
		pair, err := r16(instr >> 4 & 3)
		if err != nil {
			return Stage{}, err
		}
		c.Add16(pair, 1)
		c.Add16(PC, 1)
		return idleStage(), nil
	case instr&0xE7 == 0x20, instr == 0x18: // JR cc, e8 / JR e8
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 2)
			return c.load(Read8(pc + 1))
		}
		if instr == 0x18 || c.flagCondition(instr) {
			c.Add16(PC, uint16(int8(uint8(v))))
			return idleStage(), nil
		}
		return fetchStage(), nil
	case instr&0xCF == 0xC5: // PUSH r16stk
		pair, err := r16stk(instr >> 4 & 3)
		if err != nil {
			return Stage{}, err
		}
		value := c.Get16(pair)
		_, sp := c.Sub16(SP, 2)
		c.Add16(PC, 1)
		return waitStage(Write16(sp, value)), nil

	case instr == 0x00: // NOP
		c.Add16(PC, 1)
		return fetchStage(), nil
	case instr&0xC7 == 0x05: // DEC r/m8
		return c.decodeIncDec(instr, 0xFF, p, v)
	case instr&0xCF == 0x0B: // DEC r16
		pair, err := r16(instr >> 4 & 3)
		if err != nil {
			return Stage{}, err
		}
		c.Sub16(pair, 1)
		c.Add16(PC, 1)
		return idleStage(), nil
	case instr&0xE7 == 0x07: // RLCA, RRCA, RLA, RRA
		c.Set8(A, c.rotate(instr>>3&3, c.Get8(A)))
		c.Set8(F, c.Get8(F)&^FlagZero)
		c.Add16(PC, 1)
		return fetchStage(), nil
	case instr&0xC0 == 0x80: // ALU A, r/m8
		return c.decodeALU(instr, instr>>3&7, p, v)
	case instr&0xC7 == 0xC6: // ALU A, n8
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 2)
			return c.load(Read8(pc + 1))
		}
		c.alu(instr>>3&7, uint8(v))
		return fetchStage(), nil
	case instr&0xCF == 0xC1: // POP r16stk
		pair, err := r16stk(instr >> 4 & 3)
		if err != nil {
			return Stage{}, err
		}
		if p == phaseFetched {
			sp, _ := c.Add16(SP, 2)
			c.Add16(PC, 1)
			return c.load(Read16(sp))
		}
		c.Set16(pair, v)
		return fetchStage(), nil
	case instr == 0xC9: // RET
		if p == phaseFetched {
			sp, _ := c.Add16(SP, 2)
			return c.load(Read16(sp))
		}
		c.Set16(PC, v)
		return idleStage(), nil
	case instr == 0xCD: // CALL n16
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 3)
			return c.load(Read16(pc + 1))
		}
		ret := c.Get16(PC)
		_, sp := c.Sub16(SP, 2)
		c.Set16(PC, v)
		return waitStage(Write16(sp, ret)), nil
	case instr == 0xEA: // LD [n16], A
		if p == phaseFetched {
			pc, _ := c.Add16(PC, 3)
			return c.load(Read16(pc + 1))
		}
		return c.store(Write8(v, c.Get8(A))), nil
	}

	return Stage{}, &UnimplementedOpcodeError{Opcode: instr, PC: c.Get16(PC)}
}

// decodeCB executes one phase of a 0xCB prefixed instruction. PC has
// already been advanced past the prefix.
func (c *CPU) decodeCB(instr uint8, p phase, v uint16) (Stage, error) {
	o, err := slot(instr & 7)
	if err != nil {
		return Stage{}, err
	}
	bit := instr >> 3 & 7

	switch instr >> 6 {
	case 0: // RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL r/m8
		if p == phaseFetched {
			c.Add16(PC, 1)
			return c.load(c.operand(o))
		}
		return c.store(c.result(o, c.rotate(bit, uint8(v)))), nil
	case 1: // BIT n3, r/m8
		if p == phaseFetched {
			c.Add16(PC, 1)
			return c.load(c.operand(o))
		}
		c.setFlags(!utils.TestBit(uint8(v), bit), false, true, c.isFlagSet(FlagCarry))
		return fetchStage(), nil
	case 2: // RES n3, r/m8
		if p == phaseFetched {
			c.Add16(PC, 1)
			return c.load(c.operand(o))
		}
		return c.store(c.result(o, utils.ClearBit(uint8(v), bit))), nil
	case 3: // SET n3, r/m8
		if p == phaseFetched {
			c.Add16(PC, 1)
			return c.load(c.operand(o))
		}
		return c.store(c.result(o, utils.SetBit(uint8(v), bit))), nil
	}

	return Stage{}, &UnimplementedOpcodeError{Opcode: instr, Prefixed: true, PC: c.Get16(PC) - 1}
}

// decodeALU handles the single byte ALU A, r/m8 instructions.
func (c *CPU) decodeALU(instr, op uint8, p phase, v uint16) (Stage, error) {
	src, err := slot(instr & 7)
	if err != nil {
		return Stage{}, err
	}
	if p == phaseFetched {
		c.Add16(PC, 1)
		return c.load(c.operand(src))
	}
	c.alu(op, uint8(v))
	return fetchStage(), nil
}

// decodeIncDec handles INC and DEC r/m8, which differ only in delta
// and in how the half carry and subtract flags are derived.
func (c *CPU) decodeIncDec(instr, delta uint8, p phase, v uint16) (Stage, error) {
	o, err := slot(instr >> 3 & 7)
	if err != nil {
		return Stage{}, err
	}
	if p == phaseFetched {
		c.Add16(PC, 1)
		return c.load(c.operand(o))
	}
	value := uint8(v)
	result := value + delta
	if delta == 1 {
		c.setFlags(result == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	} else {
		c.setFlags(result == 0, true, value&0xF == 0, c.isFlagSet(FlagCarry))
	}
	return c.store(c.result(o, result)), nil
}

// load continues an instruction with src. A ready source is consumed
// immediately, in the same cycle.
func (c *CPU) load(src Source) (Stage, error) {
	if !src.Ready() {
		return readStage(src), nil
	}
	return c.decodePhase(phaseReady, src.Value())
}

// store finishes an instruction with dst. A done destination ends the
// instruction in the current cycle.
func (c *CPU) store(dst Destination) Stage {
	if dst.Done() {
		return fetchStage()
	}
	return writeStage(dst)
}

// operand8 is an r/m8 operand: one of B, C, D, E, H, L, A or the byte
// at [HL].
type operand8 struct {
	reg    Register
	memory bool
}

// slotRegisters is indexed by the 3-bit r/m8 field; index 6 is [HL].
var slotRegisters = [8]Register{B, C, D, E, H, L, 0, A}

func slot(index uint8) (operand8, error) {
	if index > 7 {
		return operand8{}, &InvalidOperandIndexError{Kind: "r/m8", Index: index}
	}
	if index == 6 {
		return operand8{memory: true}, nil
	}
	return operand8{reg: slotRegisters[index]}, nil
}

// operand returns the Source that reads o.
func (c *CPU) operand(o operand8) Source {
	if o.memory {
		return Read8(c.Get16(HL))
	}
	return Value8(c.Get8(o.reg))
}

// result writes v to o. Registers are written immediately, memory
// returns the Destination that will write it.
func (c *CPU) result(o operand8, v uint8) Destination {
	if o.memory {
		return Write8(c.Get16(HL), v)
	}
	c.Set8(o.reg, v)
	return NoDestination()
}

var (
	r16Pairs    = [4]Pair{BC, DE, HL, SP}
	r16stkPairs = [4]Pair{BC, DE, HL, AF}
)

func r16(index uint8) (Pair, error) {
	if index > 3 {
		return 0, &InvalidOperandIndexError{Kind: "r16", Index: index}
	}
	return r16Pairs[index], nil
}

func r16stk(index uint8) (Pair, error) {
	if index > 3 {
		return 0, &InvalidOperandIndexError{Kind: "r16stk", Index: index}
	}
	return r16stkPairs[index], nil
}

// indirect resolves an r16mem selector to an address: [BC], [DE],
// [HL+] or [HL-]. The HL forms yield HL before it is adjusted.
func (c *CPU) indirect(index uint8) (uint16, error) {
	switch index {
	case 0:
		return c.Get16(BC), nil
	case 1:
		return c.Get16(DE), nil
	case 2:
		pre, _ := c.Add16(HL, 1)
		return pre, nil
	case 3:
		pre, _ := c.Sub16(HL, 1)
		return pre, nil
	}
	return 0, &InvalidOperandIndexError{Kind: "r16mem", Index: index}
}
