package pallet

import "slices"

// Record is the data a Storage keeps per entity: which components are
// present, which have changed since they were last consumed, and the packed
// byte buffer holding the component values in ascending id order.
//
// Records are owned by their Storage. A *Record obtained from Find or an
// iteration callback stays valid until the entity is deleted, but the
// offsets inside its buffer shift whenever components are added or removed,
// so any Ref into it must be re-derived after such a change.
type Record struct {
	sto        *Storage
	en         Entity
	components Mask
	dirty      Mask
	data       []byte
}

// Entity returns the identifier this record belongs to.
func (r *Record) Entity() Entity {
	return r.en
}

// Has reports whether component c currently has a value on this record.
func (r *Record) Has(c ComponentID) bool {
	return r.components.ContainsBit(c)
}

// PresenceMask returns the record's presence bitmask.
func (r *Record) PresenceMask() Mask {
	return r.components
}

// Dirty reports whether any component was written since the dirty state was
// last cleared.
func (r *Record) Dirty() bool {
	return r.dirty != 0
}

// DirtyAndClear reports whether any component was written and resets the
// whole dirty mask, consuming the change notification.
func (r *Record) DirtyAndClear() bool {
	dirty := r.dirty != 0
	r.dirty = 0
	return dirty
}

// DirtyFlag reports whether component c was written since its flag was last
// cleared.
func (r *Record) DirtyFlag(c ComponentID) bool {
	return r.dirty.ContainsBit(c)
}

// DirtyFlagAndClear reports and consumes the dirty flag of component c.
func (r *Record) DirtyFlagAndClear(c ComponentID) bool {
	dirty := r.dirty.ContainsBit(c)
	r.dirty.Unmark(c)
	return dirty
}

// RawData returns the presence mask and a copy of the packed buffer, for
// bulk snapshot use. Boxed slots hold holder handles that are only
// meaningful inside the storage that issued them.
func (r *Record) RawData() (Mask, []byte) {
	return r.components, slices.Clone(r.data)
}

// SetRawData replaces the presence mask and buffer verbatim. No validation
// is performed: the caller must guarantee the data came from a compatible
// component layout, and holder lifetimes for boxed slots remain the
// caller's responsibility.
func (r *Record) SetRawData(components Mask, data []byte) {
	r.components = components
	r.data = slices.Clone(data)
}

// RemoveComponent clears component c from the record: the boxed holder is
// released if there is one, the freed span is cut out of the buffer so that
// every higher component shifts down to its new offset, and both the
// presence and dirty bits are cleared.
func (r *Record) RemoveComponent(c ComponentID) error {
	comp, err := r.sto.component(c)
	if err != nil {
		return err
	}
	if !r.components.ContainsBit(c) {
		return ComponentMissingError{Entity: r.en, Component: c}
	}

	off := r.sto.offset(r.components, c)
	if !comp.flat {
		r.sto.freeHolder(handleAt(r.data, off))
	}
	r.data = slices.Delete(r.data, off, off+comp.size)
	r.components.Unmark(c)
	r.dirty.Unmark(c)
	return nil
}

// releaseHolders frees every boxed slot the record currently owns. Called
// before the record is destroyed or its buffer replaced wholesale.
func (r *Record) releaseHolders() {
	boxed := r.components & r.sto.boxedMask
	if boxed == 0 {
		return
	}
	for c := ComponentID(0); c < ComponentID(len(r.sto.components)); c++ {
		if boxed.ContainsBit(c) {
			r.sto.freeHolder(handleAt(r.data, r.sto.offset(r.components, c)))
		}
	}
}
