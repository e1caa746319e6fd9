package gameboy

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidHandle is returned when a Handle does not refer to an open
// machine.
var ErrInvalidHandle = errors.New("gameboy: invalid handle")

// Handle is an opaque reference to a GameBoy held by a Registry. A
// host embedding the emulator keeps the handle rather than a pointer.
type Handle uint32

// Registry owns the machines opened through it. It is safe for
// concurrent use; a single machine is not.
type Registry struct {
	mu       sync.Mutex
	next     Handle
	machines map[Handle]*GameBoy
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{machines: make(map[Handle]*GameBoy)}
}

// Open creates a machine and returns its handle. Handles are never
// reused and are never 0.
func (r *Registry) Open(bootROM []byte, opts ...Opt) (Handle, error) {
	gb, err := New(bootROM, opts...)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.machines[r.next] = gb
	return r.next, nil
}

// Lookup returns the machine for h.
func (r *Registry) Lookup(h Handle) (*GameBoy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	gb, ok := r.machines[h]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHandle, "handle %d", h)
	}
	return gb, nil
}

// Close releases the machine for h. Closing a handle twice is an
// error.
func (r *Registry) Close(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.machines[h]; !ok {
		return errors.Wrapf(ErrInvalidHandle, "handle %d", h)
	}
	delete(r.machines, h)
	return nil
}

// Len returns the number of open machines.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.machines)
}
