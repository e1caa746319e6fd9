package cpu

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errTestUnmapped = errors.New("unmapped")

// testBus is a flat 64 KiB bus that records every access.
type testBus struct {
	memory   [0x10000]uint8
	unmapped map[uint16]bool
	pending  bool

	reads  []uint16
	writes []uint16
}

func newTestBus(program ...uint8) *testBus {
	b := &testBus{unmapped: map[uint16]bool{}}
	copy(b.memory[:], program)
	return b
}

func (b *testBus) Read(address uint16) (uint8, error) {
	if b.unmapped[address] {
		return 0, errTestUnmapped
	}
	b.reads = append(b.reads, address)
	return b.memory[address], nil
}

func (b *testBus) Write(address uint16, value uint8) error {
	if b.unmapped[address] {
		return errTestUnmapped
	}
	b.writes = append(b.writes, address)
	b.memory[address] = value
	return nil
}

func (b *testBus) InterruptPending() bool {
	return b.pending
}

func (b *testBus) accesses() int {
	return len(b.reads) + len(b.writes)
}

// execute steps c until it returns to the fetch stage and reports the
// number of cycles the instruction took.
func execute(t *testing.T, c *CPU, b *testBus) int {
	t.Helper()
	for cycles := 1; cycles <= 16; cycles++ {
		before := b.accesses()
		require.NoError(t, c.Step(b))
		require.LessOrEqual(t, b.accesses()-before, 1, "more than one bus access in cycle %d", cycles)
		if c.Stage().Kind == StageFetch {
			return cycles
		}
	}
	t.Fatalf("instruction did not complete: %s", c)
	return 0
}
