package pallet

// The offset cache maps every subset of the first cacheSize component ids to
// the summed byte size of the components in that subset. A component's offset
// inside a record buffer is the total size of all present components with a
// lower id, so for low ids the offset is a single table lookup keyed by the
// low bits of the presence mask. Ids past the threshold pay a linear scan for
// the tail, which stays cheap as long as frequently accessed components are
// registered early.

// growOffsets doubles the cache when a component below the threshold is
// registered: the new half covers every existing subset plus the new
// component, so each new entry is its mirror entry plus the new size.
func (s *Storage) growOffsets(id ComponentID, size int) {
	if int(id) >= cacheSize {
		return
	}
	half := len(s.offsets)
	s.offsets = append(s.offsets, s.offsets...)
	for i := half; i < 2*half; i++ {
		s.offsets[i] = s.offsets[i-half] + size
	}
}

// offset returns the byte offset of component c inside a buffer whose
// presence mask is m. Only bits below c contribute.
func (s *Storage) offset(m Mask, c ComponentID) int {
	if int(c) <= cacheSize {
		return s.offsets[uint64(m)&(1<<c-1)]
	}
	off := s.offsets[uint64(m)&cacheMask]
	for id := ComponentID(cacheSize); id < c; id++ {
		if m.ContainsBit(id) {
			off += s.components[id].size
		}
	}
	return off
}
