package types

import (
	"bytes"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
)

// State holds a serialized machine snapshot. Values are appended with
// the Write methods and consumed in the same order with the Read methods.
// Multi-byte values are little-endian.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read position to the start of the state.
func (s *State) ResetPosition() {
	s.readPosition = 0
}

// Remaining returns the number of bytes not yet read.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

func (s *State) ReadData(p []byte) {
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}

// SaveToFile writes the state brotli-compressed to filename.
func (s *State) SaveToFile(filename string) error {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, 7)
	if _, err := w.Write(s.raw); err != nil {
		return errors.Wrap(err, "types: compressing state")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "types: compressing state")
	}
	return errors.Wrap(os.WriteFile(filename, buf.Bytes(), 0644), "types: writing state")
}

// LoadStateFile reads a state previously written by SaveToFile.
func LoadStateFile(filename string) (*State, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "types: opening state")
	}
	defer f.Close()

	raw, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "types: decompressing state")
	}
	return StateFromBytes(raw), nil
}
