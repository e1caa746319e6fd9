package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// Bus is the memory bus as seen by the CPU. Every Read or Write is one
// bus transaction, and the CPU performs at most one per Step.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
	// InterruptPending reports IME && IE&IF != 0.
	InterruptPending() bool
}

type sourceKind uint8

const (
	sourceNone sourceKind = iota
	sourceRead8
	sourceValue8
	sourceRead16
	sourceRead16High
	sourceValue16
)

// Source describes where an instruction's input comes from. A pending
// source needs one bus read per Step before its value is known; a
// ready source carries the value.
type Source struct {
	kind    sourceKind
	address uint16
	value   uint16
}

// NoSource is a source with no value. It is ready and reads as 0.
func NoSource() Source { return Source{} }

// Read8 is a source that reads one byte from address.
func Read8(address uint16) Source { return Source{kind: sourceRead8, address: address} }

// Value8 is a source whose byte is already known.
func Value8(v uint8) Source { return Source{kind: sourceValue8, value: uint16(v)} }

// Read16 is a source that reads a little-endian word from address,
// low byte first.
func Read16(address uint16) Source { return Source{kind: sourceRead16, address: address} }

// Value16 is a source whose word is already known.
func Value16(v uint16) Source { return Source{kind: sourceValue16, value: v} }

// Ready reports whether the value is available without bus access.
func (s Source) Ready() bool {
	switch s.kind {
	case sourceRead8, sourceRead16, sourceRead16High:
		return false
	}
	return true
}

// Value returns the resolved value. It is only meaningful once Ready.
func (s Source) Value() uint16 {
	return s.value
}

// Step performs at most one bus read and returns the next state of the
// source. Stepping a ready source does nothing.
func (s Source) Step(b Bus) (Source, error) {
	switch s.kind {
	case sourceRead8:
		v, err := b.Read(s.address)
		if err != nil {
			return s, err
		}
		return Value8(v), nil
	case sourceRead16:
		lo, err := b.Read(s.address)
		if err != nil {
			return s, err
		}
		return Source{kind: sourceRead16High, address: s.address + 1, value: uint16(lo)}, nil
	case sourceRead16High:
		hi, err := b.Read(s.address)
		if err != nil {
			return s, err
		}
		return Value16(utils.BytesToUint16(hi, uint8(s.value))), nil
	}
	return s, nil
}

func (s Source) String() string {
	switch s.kind {
	case sourceRead8:
		return fmt.Sprintf("read8[%04X]", s.address)
	case sourceValue8:
		return fmt.Sprintf("value8(%02X)", s.value)
	case sourceRead16:
		return fmt.Sprintf("read16[%04X]", s.address)
	case sourceRead16High:
		return fmt.Sprintf("read16hi[%04X] lo=%02X", s.address, s.value)
	case sourceValue16:
		return fmt.Sprintf("value16(%04X)", s.value)
	}
	return "none"
}

type destinationKind uint8

const (
	destinationNone destinationKind = iota
	destinationWrite8
	destinationWrite16
	destinationWrite16High
	destinationDone
)

// Destination describes where an instruction's result goes. Each Step
// of a pending destination performs one bus write.
type Destination struct {
	kind    destinationKind
	address uint16
	value   uint16
}

// NoDestination is a destination that writes nothing.
func NoDestination() Destination { return Destination{} }

// Write8 is a destination that writes v to address.
func Write8(address uint16, v uint8) Destination {
	return Destination{kind: destinationWrite8, address: address, value: uint16(v)}
}

// Write16 is a destination that writes v little-endian to address, low
// byte first.
func Write16(address uint16, v uint16) Destination {
	return Destination{kind: destinationWrite16, address: address, value: v}
}

// Done reports whether no bus writes remain.
func (d Destination) Done() bool {
	return d.kind == destinationNone || d.kind == destinationDone
}

// Step performs at most one bus write and returns the next state of the
// destination. Stepping a done destination does nothing.
func (d Destination) Step(b Bus) (Destination, error) {
	switch d.kind {
	case destinationWrite8:
		if err := b.Write(d.address, uint8(d.value)); err != nil {
			return d, err
		}
		return Destination{kind: destinationDone}, nil
	case destinationWrite16:
		hi, lo := utils.Uint16ToBytes(d.value)
		if err := b.Write(d.address, lo); err != nil {
			return d, err
		}
		return Destination{kind: destinationWrite16High, address: d.address + 1, value: uint16(hi)}, nil
	case destinationWrite16High:
		if err := b.Write(d.address, uint8(d.value)); err != nil {
			return d, err
		}
		return Destination{kind: destinationDone}, nil
	}
	return d, nil
}

func (d Destination) String() string {
	switch d.kind {
	case destinationWrite8:
		return fmt.Sprintf("write8[%04X]=%02X", d.address, d.value)
	case destinationWrite16:
		return fmt.Sprintf("write16[%04X]=%04X", d.address, d.value)
	case destinationWrite16High:
		return fmt.Sprintf("write16hi[%04X]=%02X", d.address, d.value)
	case destinationDone:
		return "done"
	}
	return "none"
}
