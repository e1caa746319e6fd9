package mmu

import "fmt"

// UnmappedAddressError is returned when a read or write targets an
// address that no region owns, or a region without that access.
type UnmappedAddressError struct {
	Address uint16
	Write   bool
}

func (e *UnmappedAddressError) Error() string {
	if e.Write {
		return fmt.Sprintf("mmu: write to unmapped address 0x%04X", e.Address)
	}
	return fmt.Sprintf("mmu: read from unmapped address 0x%04X", e.Address)
}
