package pallet

import "testing"

func TestMask(t *testing.T) {
	var m Mask
	m.Mark(0)
	m.Mark(13)
	m.Mark(63)

	for _, bit := range []ComponentID{0, 13, 63} {
		if !m.ContainsBit(bit) {
			t.Errorf("bit %d not set", bit)
		}
	}
	if m.ContainsBit(1) {
		t.Error("bit 1 set unexpectedly")
	}

	sub := Factory.NewMask(0, 63)
	if !m.ContainsAll(sub) {
		t.Errorf("%b does not contain all of %b", m, sub)
	}
	if m.ContainsAll(Factory.NewMask(0, 1)) {
		t.Error("ContainsAll true for a mask with an unset bit")
	}
	if !m.ContainsAny(Factory.NewMask(1, 13)) {
		t.Error("ContainsAny false despite shared bit 13")
	}
	if !m.ContainsNone(Factory.NewMask(1, 2, 3)) {
		t.Error("ContainsNone false for disjoint mask")
	}

	m.Unmark(13)
	if m.ContainsBit(13) {
		t.Error("bit 13 still set after Unmark")
	}
}
