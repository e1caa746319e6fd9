package ram

import "testing"

func TestRAM(t *testing.T) {
	r := NewRAM(0x7F)
	if r.Size() != 0x7F {
		t.Errorf("expected size 0x7F, got 0x%02X", r.Size())
	}
	for i := uint16(0); i < 0x7F; i++ {
		if r.Read(i) != 0 {
			t.Errorf("expected zero-fill at 0x%02X, got 0x%02X", i, r.Read(i))
		}
	}
	r.Write(0x10, 0x42)
	if r.Read(0x10) != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", r.Read(0x10))
	}
	if r.Bytes()[0x10] != 0x42 {
		t.Errorf("expected backing array to reflect write")
	}
}
