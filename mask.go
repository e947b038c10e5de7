package pallet

// Mask is a 64-bit component set, one bit per ComponentID. Records use one
// Mask for presence and one for dirty tracking.
type Mask uint64

// Mark sets the bit for the given component id.
func (m *Mask) Mark(bit ComponentID) {
	*m |= 1 << bit
}

// Unmark clears the bit for the given component id.
func (m *Mask) Unmark(bit ComponentID) {
	*m &^= 1 << bit
}

// ContainsBit reports whether the bit for the given component id is set.
func (m Mask) ContainsBit(bit ComponentID) bool {
	return m&(1<<bit) != 0
}

// ContainsAll reports whether every bit of sub is set in m.
func (m Mask) ContainsAll(sub Mask) bool {
	return m&sub == sub
}

// ContainsAny reports whether at least one bit of sub is set in m.
func (m Mask) ContainsAny(sub Mask) bool {
	return m&sub != 0
}

// ContainsNone reports whether no bit of sub is set in m.
func (m Mask) ContainsNone(sub Mask) bool {
	return m&sub == 0
}
