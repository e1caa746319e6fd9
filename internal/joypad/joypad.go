// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State holds one bit per button, set while the button is held.
	// The lower nibble holds the action buttons, the upper nibble the
	// direction buttons. It is inverted on read.
	State    Button
	selected uint8
	irq      *interrupts.Service
}

// New returns a new joypad state with nothing selected.
func New(irq *interrupts.Service) *State {
	return &State{
		selected: types.Bit4 | types.Bit5,
		irq:      irq,
	}
}

// Read returns the P1 register.
func (s *State) Read(uint16) uint8 {
	d := uint8(0xC0) | s.selected
	if s.selected&types.Bit4 == 0 {
		d |= s.State >> 4 & types.LowNibble
	}
	if s.selected&types.Bit5 == 0 {
		d |= s.State & types.LowNibble
	}

	// active low
	return d ^ types.LowNibble
}

// Write selects the action and/or direction nibble. Only bits 4 and 5
// are writable.
func (s *State) Write(_ uint16, value uint8) {
	s.selected = value & (types.Bit4 | types.Bit5)
}

// Press presses a button and requests the joypad interrupt.
func (s *State) Press(button Button) {
	s.State = utils.SetBit(s.State, button)
	if s.irq != nil {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State = utils.ClearBit(s.State, button)
}

var _ types.Stater = (*State)(nil)

func (s *State) Load(st *types.State) {
	s.State = st.Read8()
	s.selected = st.Read8()
}

func (s *State) Save(st *types.State) {
	st.Write8(s.State)
	st.Write8(s.selected)
}
