package mmu

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/apu"
	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/joypad"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func newTestMMU(t *testing.T) (*MMU, *interrupts.Service) {
	t.Helper()
	image := make([]byte, boot.Size)
	for i := range image {
		image[i] = uint8(i)
	}
	rom, err := boot.LoadBootROM(image)
	require.NoError(t, err)

	irq := interrupts.NewService()
	return NewMMU(rom, ppu.New(), apu.New(), joypad.New(irq), irq), irq
}

func TestMMU_Partition(t *testing.T) {
	m, _ := newTestMMU(t)
	regions := m.Regions()

	for addr := 0; addr <= 0xFFFF; addr++ {
		owners := 0
		for i := range regions {
			if regions[i].Contains(uint16(addr)) {
				owners++
			}
		}
		if owners > 1 {
			t.Fatalf("address %04X claimed by %d regions", addr, owners)
		}

		_, mapped := m.RegionOf(uint16(addr))
		if mapped != (owners == 1) {
			t.Fatalf("address %04X: table says mapped=%v, region list says %d owners", addr, mapped, owners)
		}
		if !mapped {
			_, err := m.Read(uint16(addr))
			var unmapped *UnmappedAddressError
			if !errors.As(err, &unmapped) || unmapped.Address != uint16(addr) || unmapped.Write {
				t.Fatalf("address %04X: expected UnmappedAddressError, got %v", addr, err)
			}
		}
	}
}

func TestMMU_Regions(t *testing.T) {
	m, _ := newTestMMU(t)
	expected := []struct {
		name       string
		start, end uint16
	}{
		{"boot rom", 0x0000, 0x00FF},
		{"vram", 0x8000, 0x9FFF},
		{"wram", 0xC000, 0xDFFF},
		{"oam", 0xFE00, 0xFE9F},
		{"joypad", 0xFF00, 0xFF00},
		{"audio", 0xFF10, 0xFF3F},
		{"video registers", 0xFF40, 0xFF4B},
		{"hram", 0xFF80, 0xFFFE},
		{"interrupt enable", 0xFFFF, 0xFFFF},
	}
	regions := m.Regions()
	require.Len(t, regions, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.name, regions[i].Name)
		assert.Equal(t, e.start, regions[i].Start, e.name)
		assert.Equal(t, e.end, regions[i].End, e.name)
	}
}

func TestMMU_ReadWrite(t *testing.T) {
	m, irq := newTestMMU(t)

	t.Run("boot rom", func(t *testing.T) {
		v, err := m.Read(0x00FF)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xFF), v)

		err = m.Write(0x0000, 0x12)
		var unmapped *UnmappedAddressError
		require.True(t, errors.As(err, &unmapped))
		assert.True(t, unmapped.Write)
	})

	for _, addr := range []uint16{0x8000, 0x9FFF, 0xC000, 0xDFFF, 0xFE00, 0xFE9F, 0xFF10, 0xFF30, 0xFF3F, 0xFF40, 0xFF4B, 0xFF80, 0xFFFE} {
		require.NoError(t, m.Write(addr, 0x5A))
		v, err := m.Read(addr)
		require.NoError(t, err)
		assert.Equalf(t, uint8(0x5A), v, "address %04X", addr)
	}

	t.Run("joypad", func(t *testing.T) {
		require.NoError(t, m.Write(types.P1, 0x30))
		v, err := m.Read(types.P1)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xFF), v)
	})

	t.Run("interrupt enable", func(t *testing.T) {
		require.NoError(t, m.Write(types.IE, interrupts.JoypadFlag))
		assert.Equal(t, uint8(interrupts.JoypadFlag), irq.Enable)
		assert.False(t, m.InterruptPending())

		irq.Request(interrupts.JoypadFlag)
		irq.IME = true
		assert.True(t, m.InterruptPending())
	})

	t.Run("unmapped write", func(t *testing.T) {
		for _, addr := range []uint16{0x0100, 0xA000, 0xE000, 0xFEA0, 0xFF01, 0xFF0F, 0xFF4C, 0xFF7F} {
			err := m.Write(addr, 0)
			var unmapped *UnmappedAddressError
			require.Truef(t, errors.As(err, &unmapped), "address %04X", addr)
			assert.Equal(t, addr, unmapped.Address)
		}
	})
}

func TestMMU_Overlap(t *testing.T) {
	m := &MMU{}
	m.mapRegion(Region{Name: "a", Start: 0xC000, End: 0xC0FF})
	assert.Panics(t, func() {
		m.mapRegion(Region{Name: "b", Start: 0xC0FF, End: 0xC1FF})
	})
}

func TestMMU_State(t *testing.T) {
	m, _ := newTestMMU(t)
	require.NoError(t, m.Write(0xC123, 0x42))
	require.NoError(t, m.Write(0xFF90, 0x24))

	s := types.NewState()
	m.Save(s)

	loaded, _ := newTestMMU(t)
	loaded.Load(types.StateFromBytes(s.Bytes()))
	v, _ := loaded.Read(0xC123)
	assert.Equal(t, uint8(0x42), v)
	v, _ = loaded.Read(0xFF90)
	assert.Equal(t, uint8(0x24), v)
	assert.Equal(t, m.BootROM().Checksum(), loaded.BootROM().Checksum())
}

func TestUnmappedAddressError(t *testing.T) {
	assert.Equal(t, "mmu: read from unmapped address 0xA000", (&UnmappedAddressError{Address: 0xA000}).Error())
	assert.Equal(t, "mmu: write to unmapped address 0x0000", (&UnmappedAddressError{Write: true}).Error())
}
