package pallet

import "encoding/binary"

// Boxed component values live in a storage-owned arena rather than in the
// record buffer itself; the buffer stores a fixed-size slot handle where a
// flat component would store its bytes. The arena plus the per-component
// clone/zero capabilities are the type-erasure boundary: nothing outside
// this file interprets a boxed slot.

type holder struct {
	value any
	comp  ComponentID
}

// newHolder boxes a value and returns its slot handle, reusing freed slots
// before growing the arena.
func (s *Storage) newHolder(comp ComponentID, value any) uint64 {
	if n := len(s.freeHolders); n > 0 {
		slot := s.freeHolders[n-1]
		s.freeHolders = s.freeHolders[:n-1]
		s.holders[slot] = holder{value: value, comp: comp}
		return slot
	}
	s.holders = append(s.holders, holder{value: value, comp: comp})
	return uint64(len(s.holders) - 1)
}

// freeHolder releases a slot. The boxed value is dropped for the collector
// and the slot goes back on the free list.
func (s *Storage) freeHolder(slot uint64) {
	s.holders[slot] = holder{}
	s.freeHolders = append(s.freeHolders, slot)
}

// cloneHolder boxes an independent copy of the value in slot, using the
// component's clone capability.
func (s *Storage) cloneHolder(slot uint64) uint64 {
	h := s.holders[slot]
	return s.newHolder(h.comp, s.components[h.comp].clone(h.value))
}

func (s *Storage) holderValue(slot uint64) any {
	return s.holders[slot].value
}

func handleAt(buf []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(buf[off:])
}

func putHandle(buf []byte, off int, slot uint64) {
	binary.LittleEndian.PutUint64(buf[off:], slot)
}
