package pallet

import "slices"

// Storage ties entities and components together. Each entity gets a Record:
// a 64-bit presence mask, a 64-bit dirty mask and a byte buffer that packs
// the present component values as tightly as possible. Flat values live in
// the buffer directly; boxed values live in the holder arena with a handle
// packed into the buffer.
//
// A Storage is single-threaded: no operation blocks, and no internal
// locking is provided.
type Storage struct {
	nextEntity Entity
	records    map[Entity]*Record

	components []component
	idsByName  map[string]ComponentID

	// Offset lookup table over subsets of the first cacheSize components,
	// indexed by the low bits of a presence mask.
	offsets []int

	// One bit per boxed (non-flat) component id.
	boxedMask Mask

	holders     []holder
	freeHolders []uint64
}

func newStorage() *Storage {
	return &Storage{
		records:   make(map[Entity]*Record),
		idsByName: make(map[string]ComponentID),
		offsets:   []int{0},
	}
}

// NewEntity creates one entity with an empty record and returns its id.
func (s *Storage) NewEntity() Entity {
	en := s.nextEntity
	s.nextEntity++
	s.records[en] = &Record{sto: s, en: en}
	return en
}

// NewEntities creates count entities with empty records and returns the
// half-open id range [first, end).
func (s *Storage) NewEntities(count int) (first, end Entity) {
	first = s.nextEntity
	for i := 0; i < count; i++ {
		s.NewEntity()
	}
	return first, s.nextEntity
}

// Make returns the record for en, creating an empty one if the entity does
// not exist yet. The id counter is bumped past en so that explicitly made
// ids are never handed out again by NewEntity.
func (s *Storage) Make(en Entity) *Record {
	if rec, ok := s.records[en]; ok {
		return rec
	}
	rec := &Record{sto: s, en: en}
	s.records[en] = rec
	if en >= s.nextEntity {
		s.nextEntity = en + 1
	}
	return rec
}

// Find returns the record for en, or ok=false if the entity does not exist.
func (s *Storage) Find(en Entity) (*Record, bool) {
	rec, ok := s.records[en]
	return rec, ok
}

// Exists reports whether en has a record.
func (s *Storage) Exists(en Entity) bool {
	_, ok := s.records[en]
	return ok
}

// Size returns the number of live entities.
func (s *Storage) Size() int {
	return len(s.records)
}

// CloneEntity creates a new entity whose record is a deep copy of the
// source: flat bytes are copied verbatim and boxed values are duplicated
// through their clone capability, never aliased.
func (s *Storage) CloneEntity(src Entity) (Entity, error) {
	srcRec, ok := s.records[src]
	if !ok {
		return 0, EntityNotFoundError{Entity: src}
	}

	en := s.NewEntity()
	rec := s.records[en]
	rec.components = srcRec.components
	rec.dirty = srcRec.dirty
	rec.data = slices.Clone(srcRec.data)

	boxed := rec.components & s.boxedMask
	for c := ComponentID(0); c < ComponentID(len(s.components)); c++ {
		if boxed.ContainsBit(c) {
			off := s.offset(rec.components, c)
			putHandle(rec.data, off, s.cloneHolder(handleAt(rec.data, off)))
		}
	}
	return en, nil
}

// DeleteEntity destroys the entity's record, releasing every boxed holder it
// owns. Reports whether the entity existed. Deleting the entity currently
// visited by a ForEach callback is safe; deleting any other entity during
// iteration is not.
func (s *Storage) DeleteEntity(en Entity) bool {
	rec, ok := s.records[en]
	if !ok {
		return false
	}
	rec.releaseHolders()
	delete(s.records, en)
	return true
}

// DeleteRecord destroys the entity behind an already-resolved record handle.
func (s *Storage) DeleteRecord(rec *Record) {
	s.DeleteEntity(rec.en)
}

// Set stores a value for component c on entity en, looking the record up
// first. See SetOn.
func Set[T any](s *Storage, en Entity, c ComponentID, value T) error {
	rec, ok := s.records[en]
	if !ok {
		return EntityNotFoundError{Entity: en}
	}
	return SetOn(rec, c, value)
}

// SetOn stores a value for component c on a record. If the component was
// absent, the buffer is spliced open at its computed offset and the presence
// bit set. Overwriting a boxed value releases the previous holder before
// boxing the new one, so every boxed slot owns exactly one live value. The
// dirty bit is set either way.
func SetOn[T any](rec *Record, c ComponentID, value T) error {
	s := rec.sto
	comp, err := s.component(c)
	if err != nil {
		return err
	}
	if err := checkType[T](comp, c); err != nil {
		return err
	}

	off := s.offset(rec.components, c)
	if !rec.components.ContainsBit(c) {
		rec.data = slices.Insert(rec.data, off, make([]byte, comp.size)...)
		rec.components.Mark(c)
	} else if !comp.flat {
		s.freeHolder(handleAt(rec.data, off))
	}

	if comp.flat {
		putFlat(rec.data[off:off+comp.size], value)
	} else {
		putHandle(rec.data, off, s.newHolder(c, value))
	}
	rec.dirty.Mark(c)
	return nil
}

// Get returns the value of component c on entity en. See GetFrom.
func Get[T any](s *Storage, en Entity, c ComponentID) (T, error) {
	var zero T
	rec, ok := s.records[en]
	if !ok {
		return zero, EntityNotFoundError{Entity: en}
	}
	return GetFrom[T](rec, c)
}

// GetFrom returns the value of component c on a record. The component must
// be present and T must be the registered type.
func GetFrom[T any](rec *Record, c ComponentID) (T, error) {
	var zero T
	s := rec.sto
	comp, err := s.component(c)
	if err != nil {
		return zero, err
	}
	if err := checkType[T](comp, c); err != nil {
		return zero, err
	}
	if !rec.components.ContainsBit(c) {
		return zero, ComponentMissingError{Entity: rec.en, Component: c}
	}

	off := s.offset(rec.components, c)
	if comp.flat {
		return readFlat[T](rec.data[off:]), nil
	}
	return s.holderValue(handleAt(rec.data, off)).(T), nil
}
