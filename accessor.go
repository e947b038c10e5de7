package pallet

import (
	"fmt"
	"reflect"
)

// Ref is a typed view into one component's slot within one record. It is
// bound to a fixed byte offset, so it is only valid as long as the record's
// slot structure does not change: do not hold a Ref across a call that adds
// or removes components on the same entity, and do not let one escape the
// iteration callback that produced it.
type Ref[T any] struct {
	rec *Record
	off int
	id  ComponentID
}

// RefFor builds an accessor for component c on a record, outside of
// iteration. The component must be present and T must match the registered
// type.
func RefFor[T any](rec *Record, c ComponentID) (Ref[T], error) {
	comp, err := rec.sto.component(c)
	if err != nil {
		return Ref[T]{}, err
	}
	if err := checkType[T](comp, c); err != nil {
		return Ref[T]{}, err
	}
	if !rec.components.ContainsBit(c) {
		return Ref[T]{}, ComponentMissingError{Entity: rec.en, Component: c}
	}
	return Ref[T]{rec: rec, off: rec.sto.offset(rec.components, c), id: c}, nil
}

// Get returns the current value.
func (r Ref[T]) Get() T {
	s := r.rec.sto
	if s.components[r.id].flat {
		return readFlat[T](r.rec.data[r.off:])
	}
	return s.holderValue(handleAt(r.rec.data, r.off)).(T)
}

// Set replaces the value and marks the component dirty. A boxed slot
// releases its previous holder before boxing the new value.
func (r Ref[T]) Set(value T) {
	s := r.rec.sto
	comp := &s.components[r.id]
	if comp.flat {
		putFlat(r.rec.data[r.off:r.off+comp.size], value)
	} else {
		s.freeHolder(handleAt(r.rec.data, r.off))
		putHandle(r.rec.data, r.off, s.newHolder(r.id, value))
	}
	r.Touch()
}

// Update applies fn to the current value and stores the result, marking the
// component dirty. This is the general form of compound mutation.
func (r Ref[T]) Update(fn func(T) T) {
	r.Set(fn(r.Get()))
}

// Touch marks the component dirty without changing its value.
func (r Ref[T]) Touch() {
	r.rec.dirty.Mark(r.id)
}

// mustMatch panics unless T is the registered type of component c. Iteration
// binds type arguments to component ids at the call site; a mismatch there
// is a programming error, not a runtime condition to recover from.
func mustMatch[T any](s *Storage, c ComponentID) {
	if int(c) >= len(s.components) {
		panic(fmt.Sprintf("pallet: component id %d was never registered", c))
	}
	if typ := reflect.TypeOf((*T)(nil)).Elem(); typ != s.components[c].typ {
		panic(fmt.Sprintf("pallet: component %d holds %v, not %v", c, s.components[c].typ, typ))
	}
}
