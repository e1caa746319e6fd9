package types

import "strings"

type Model int // The Model a boot ROM was built for.

const (
	Unset Model = iota // Unset - the boot ROM is not one we recognise
	DMG0               // DMG0 - early Game Boy, only released in Japan
	DMGABC             // DMGABC - Standard Game Boy
	MGB                // MGB - Pocket Game Boy
	SGB                // SGB - Super Game Boy
	SGB2               // SGB2 - Super Game Boy 2
)

var ModelNames = map[Model]string{
	DMG0:   "DMG0",
	DMGABC: "DMG",
	MGB:    "MGB",
	SGB:    "SGB",
	SGB2:   "SGB2",
	Unset:  "Unset",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	if n, ok := ModelNames[m]; ok {
		return n
	}
	return ModelNames[Unset]
}
