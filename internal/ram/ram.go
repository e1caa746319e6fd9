// Package ram provides a basic RAM implementation.
package ram

// RAM represents a flat block of RAM. Addresses passed to Read and
// Write are offsets from the start of the block.
type RAM struct {
	data []uint8
}

// NewRAM returns a new zero-filled RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given offset.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given offset.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Size returns the size of the RAM in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Bytes exposes the backing array, for snapshots.
func (r *RAM) Bytes() []uint8 {
	return r.data
}
