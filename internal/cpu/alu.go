package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/utils"

// ALU operations, in the order they are encoded in bits 5:3 of the
// 0x80-0xBF block and of the ALU A,n8 instructions.
const (
	aluAdd uint8 = iota
	aluAdc
	aluSub
	aluSbc
	aluAnd
	aluXor
	aluOr
	aluCp
)

// alu applies op to A and value, setting all four flags. CP only sets
// the flags.
func (c *CPU) alu(op, value uint8) {
	a := c.Get8(A)
	var carry uint8
	if op < aluAnd && op&1 == 1 && c.isFlagSet(FlagCarry) {
		carry = 1
	}

	switch op {
	case aluAdd, aluAdc:
		sum := uint16(a) + uint16(value) + uint16(carry)
		c.setFlags(uint8(sum) == 0, false, a&0xF+value&0xF+carry > 0xF, sum > 0xFF)
		c.Set8(A, uint8(sum))
	case aluSub, aluSbc, aluCp:
		diff := int(a) - int(value) - int(carry)
		c.setFlags(uint8(diff) == 0, true, int(a&0xF)-int(value&0xF)-int(carry) < 0, diff < 0)
		if op != aluCp {
			c.Set8(A, uint8(diff))
		}
	case aluAnd:
		a &= value
		c.setFlags(a == 0, false, true, false)
		c.Set8(A, a)
	case aluXor:
		a ^= value
		c.setFlags(a == 0, false, false, false)
		c.Set8(A, a)
	case aluOr:
		a |= value
		c.setFlags(a == 0, false, false, false)
		c.Set8(A, a)
	}
}

// Rotate and shift operations, in the order they are encoded in bits
// 5:3 of the 0xCB 0x00-0x3F block. The first four are also the
// accumulator rotates RLCA, RRCA, RLA and RRA.
const (
	rotRLC uint8 = iota
	rotRRC
	rotRL
	rotRR
	rotSLA
	rotSRA
	rotSWAP
	rotSRL
)

// rotate returns value rotated or shifted by kind, setting Z from the
// result and C from the bit shifted out.
func (c *CPU) rotate(kind, value uint8) uint8 {
	var result uint8
	var carry bool
	switch kind {
	case rotRLC:
		carry = utils.TestBit(value, 7)
		result = value<<1 | value>>7
	case rotRRC:
		carry = utils.TestBit(value, 0)
		result = value>>1 | value<<7
	case rotRL:
		carry = utils.TestBit(value, 7)
		result = value << 1
		if c.isFlagSet(FlagCarry) {
			result |= 1
		}
	case rotRR:
		carry = utils.TestBit(value, 0)
		result = value >> 1
		if c.isFlagSet(FlagCarry) {
			result |= 0x80
		}
	case rotSLA:
		carry = utils.TestBit(value, 7)
		result = value << 1
	case rotSRA:
		carry = utils.TestBit(value, 0)
		result = value>>1 | value&0x80
	case rotSWAP:
		result = value<<4 | value>>4
	case rotSRL:
		carry = utils.TestBit(value, 0)
		result = value >> 1
	}
	c.setFlags(result == 0, false, false, carry)
	return result
}
