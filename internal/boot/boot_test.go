package boot

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestLoadBootROM(t *testing.T) {
	image := make([]byte, Size)
	image[0], image[0xFF] = 0x31, 0x50

	rom, err := LoadBootROM(image)
	require.NoError(t, err)
	assert.Equal(t, byte(0x31), rom.Read(0))
	assert.Equal(t, byte(0x50), rom.Read(0xFF))

	// the ROM owns its copy
	image[0] = 0x00
	assert.Equal(t, byte(0x31), rom.Read(0))
	assert.Equal(t, byte(0x31), rom.Bytes()[0])

	sum := md5.Sum(rom.Bytes())
	assert.Equal(t, hex.EncodeToString(sum[:]), rom.Checksum())
	assert.Equal(t, types.Unset, rom.Model())
}

func TestLoadBootROM_Length(t *testing.T) {
	for _, n := range []int{0, 255, 257, 2304} {
		_, err := LoadBootROM(make([]byte, n))
		assert.Truef(t, errors.Is(err, ErrInvalidLength), "length %d: expected ErrInvalidLength, got %v", n, err)
	}
}

func TestROM_Nil(t *testing.T) {
	var rom *ROM
	assert.Equal(t, "", rom.Checksum())
	assert.Equal(t, types.Unset, rom.Model())
}

func TestModel_String(t *testing.T) {
	assert.Equal(t, "DMG", types.DMGABC.String())
	assert.Equal(t, types.SGB2, types.StringToModel("sgb2"))
	assert.Equal(t, types.Unset, types.StringToModel("cgb"))
	assert.Equal(t, "Unset", types.Model(42).String())
}
