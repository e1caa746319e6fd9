package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// Flag is a bit of the F register.
type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4
)

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.Get8(F)&flag != 0
}

// setFlags replaces all four flags.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= FlagZero
	}
	if subtract {
		f |= FlagSubtract
	}
	if halfCarry {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	c.Set8(F, f)
}

// flagCondition evaluates the condition encoded in bits 4:3 of a
// conditional jump: bit 4 selects carry over zero, bit 3 clear negates.
func (c *CPU) flagCondition(opcode uint8) bool {
	f := c.isFlagSet(FlagZero)
	if opcode&types.Bit4 != 0 {
		f = c.isFlagSet(FlagCarry)
	}
	if opcode&types.Bit3 == 0 {
		f = !f
	}
	return f
}
