package ppu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// OAM (Object Attribute Memory) is the memory used to store the
// attributes of the sprites. It is 160 bytes long and is located at
// 0xFE00-0xFE9F in the memory map. It is divided in 40 entries of 4 bytes
// each, each entry representing a sprite.
type OAM struct {
	Sprites [40]Sprite // 40 sprites
}

// NewOAM returns a cleared OAM.
func NewOAM() *OAM {
	return &OAM{}
}

// Read returns the value at the given offset into OAM.
func (o *OAM) Read(offset uint16) uint8 {
	return o.Sprites[offset>>2][offset&3]
}

// Write writes the given value at the given offset into OAM.
func (o *OAM) Write(offset uint16, value uint8) {
	o.Sprites[offset>>2][offset&3] = value
}

func (o *OAM) Load(s *types.State) {
	for i := range o.Sprites {
		s.ReadData(o.Sprites[i][:])
	}
}

func (o *OAM) Save(s *types.State) {
	for i := range o.Sprites {
		s.WriteData(o.Sprites[i][:])
	}
}
