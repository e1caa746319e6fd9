package gameboy

import "github.com/thelolagemann/gomeboy-core/pkg/log"

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithTrace logs the CPU at debug level after every cycle, once PC has
// moved past after. The DMG boot ROM spends its first 0x0B bytes
// clearing VRAM, which is rarely worth tracing.
func WithTrace(after uint16) Opt {
	return func(gb *GameBoy) {
		gb.tracing = true
		gb.traceAfter = after
	}
}

// WithBreakpoint makes Run stop when the next instruction is at pc.
func WithBreakpoint(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.breakpoint = pc
		gb.hasBreakpoint = true
	}
}

// WithState restores a state written by Save once the machine is
// built. New fails with ErrStateSize if b does not fit the machine.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.initialState = b
	}
}
