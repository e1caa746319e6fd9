package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// Pair names one of the six 16-bit registers.
type Pair uint8

const (
	BC Pair = iota
	DE
	HL
	AF
	SP
	PC
	pairCount
)

var pairNames = [pairCount]string{"BC", "DE", "HL", "AF", "SP", "PC"}

func (p Pair) String() string {
	if p >= pairCount {
		return "??"
	}
	return pairNames[p]
}

// Register names one of the eight 8-bit registers. Each is the high
// or low half of a Pair.
type Register uint8

const (
	B Register = iota
	C
	D
	E
	H
	L
	A
	F
)

// half maps a Register onto the pair that stores it, and whether it
// is the high byte.
var half = [...]struct {
	pair Pair
	high bool
}{
	B: {BC, true},
	C: {BC, false},
	D: {DE, true},
	E: {DE, false},
	H: {HL, true},
	L: {HL, false},
	A: {AF, true},
	F: {AF, false},
}

// Registers is the register file: six 16-bit words, with the 8-bit
// registers derived from their halves. A write through either view is
// immediately visible through the other.
type Registers struct {
	words [pairCount]uint16
}

// Get16 returns the value of a 16-bit register.
func (r *Registers) Get16(p Pair) uint16 {
	return r.words[p]
}

// Set16 sets a 16-bit register. The low nibble of F always reads as 0.
func (r *Registers) Set16(p Pair, v uint16) {
	if p == AF {
		v &= 0xFFF0
	}
	r.words[p] = v
}

// Get8 returns the value of an 8-bit register.
func (r *Registers) Get8(id Register) uint8 {
	h := half[id]
	if h.high {
		return uint8(r.words[h.pair] >> 8)
	}
	return uint8(r.words[h.pair])
}

// Set8 sets an 8-bit register, leaving the other half of its pair
// untouched.
func (r *Registers) Set8(id Register, v uint8) {
	h := half[id]
	w := r.words[h.pair]
	if h.high {
		w = w&0x00FF | uint16(v)<<8
	} else {
		w = w&0xFF00 | uint16(v)
	}
	r.Set16(h.pair, w)
}

// Add16 adds delta to a 16-bit register, wrapping, and returns the
// values before and after the update.
func (r *Registers) Add16(p Pair, delta uint16) (pre, post uint16) {
	pre = r.words[p]
	post = pre + delta
	r.Set16(p, post)
	return pre, r.words[p]
}

// Sub16 subtracts delta from a 16-bit register, wrapping, and returns
// the values before and after the update.
func (r *Registers) Sub16(p Pair, delta uint16) (pre, post uint16) {
	return r.Add16(p, -delta)
}

var _ types.Stater = (*Registers)(nil)

// Load restores the register file, BC first and PC last.
func (r *Registers) Load(s *types.State) {
	for p := BC; p < pairCount; p++ {
		r.Set16(p, s.Read16())
	}
}

// Save writes the register file, BC first and PC last.
func (r *Registers) Save(s *types.State) {
	for p := BC; p < pairCount; p++ {
		s.Write16(r.words[p])
	}
}
