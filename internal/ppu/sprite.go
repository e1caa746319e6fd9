package ppu

// Sprite is a raw 4-byte OAM entry.
//
//	Byte 0 - Y Position
//	Byte 1 - X Position
//	Byte 2 - Tile Index
//	Byte 3 - Attributes/Flags
type Sprite [4]uint8

// Y returns the sprite's vertical position plus 16.
func (s Sprite) Y() uint8 { return s[0] }

// X returns the sprite's horizontal position plus 8.
func (s Sprite) X() uint8 { return s[1] }

// Tile returns the tile index.
func (s Sprite) Tile() uint8 { return s[2] }

// Flags returns the attribute byte.
func (s Sprite) Flags() uint8 { return s[3] }
