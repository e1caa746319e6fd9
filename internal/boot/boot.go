// Package boot validates and identifies boot ROM images. The boot ROM
// is mapped to 0x0000 - 0x00FF and is the first program the CPU runs.
package boot

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Size is the exact length of a DMG-class boot image.
const Size = 0x100

// ErrInvalidLength is returned when a boot image is not exactly Size bytes.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM for the Game Boy. From the CPU's point of
// view it is read-only.
type ROM struct {
	raw      [Size]byte // the raw boot rom
	checksum string     // the MD5 checksum of the boot rom
}

// LoadBootROM copies b into a new ROM. The image must be exactly 256
// bytes long; the MD5 checksum is recorded for model identification.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d bytes, want %d", len(b), Size)
	}

	r := &ROM{}
	copy(r.raw[:], b)
	bootChecksum := md5.Sum(b)
	r.checksum = hex.EncodeToString(bootChecksum[:])

	return r, nil
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr]
}

// Bytes returns a copy of the image.
func (b *ROM) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, b.raw[:])
	return out
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	return knownBootROMChecksums[b.checksum]
}

// knownBootROMChecksums maps the checksums of the 256-byte boot
// images to the hardware they shipped with.
var knownBootROMChecksums = map[string]types.Model{
	DMG0: types.DMG0,
	DMG:  types.DMGABC,
	MGB:  types.MGB,
	SGB:  types.SGB,
	SGB2: types.SGB2,
}

const (
	// DMG0 is the checksum of the early DMG boot ROM found only in
	// Japanese launch units. It flashes the screen on a failed logo
	// check instead of hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG-01 boot ROM.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by one byte: it loads 0xFF into A instead
	// of 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES instead of scrolling
	// the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB the same way MGB differs from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
