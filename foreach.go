package pallet

// ForEach calls fn for every entity that has component c, passing the
// record and a typed accessor for the component. The callback may read and
// write the component through the accessor, consume dirty state, and delete
// the current entity; structural changes to any other entity during
// iteration are not supported. Traversal order is unspecified and each
// qualifying entity is visited exactly once.
func ForEach[A any](s *Storage, c ComponentID, fn func(*Record, Ref[A])) {
	mustMatch[A](s, c)
	var required Mask
	required.Mark(c)

	for _, rec := range s.records {
		if !rec.components.ContainsAll(required) {
			continue
		}
		fn(rec, Ref[A]{rec: rec, off: s.offset(rec.components, c), id: c})
	}
}

// ForEach2 calls fn for every entity that has both components.
func ForEach2[A, B any](s *Storage, c1, c2 ComponentID, fn func(*Record, Ref[A], Ref[B])) {
	mustMatch[A](s, c1)
	mustMatch[B](s, c2)
	var required Mask
	required.Mark(c1)
	required.Mark(c2)

	for _, rec := range s.records {
		if !rec.components.ContainsAll(required) {
			continue
		}
		fn(rec,
			Ref[A]{rec: rec, off: s.offset(rec.components, c1), id: c1},
			Ref[B]{rec: rec, off: s.offset(rec.components, c2), id: c2})
	}
}

// ForEach3 calls fn for every entity that has all three components.
func ForEach3[A, B, C any](s *Storage, c1, c2, c3 ComponentID, fn func(*Record, Ref[A], Ref[B], Ref[C])) {
	mustMatch[A](s, c1)
	mustMatch[B](s, c2)
	mustMatch[C](s, c3)
	var required Mask
	required.Mark(c1)
	required.Mark(c2)
	required.Mark(c3)

	for _, rec := range s.records {
		if !rec.components.ContainsAll(required) {
			continue
		}
		fn(rec,
			Ref[A]{rec: rec, off: s.offset(rec.components, c1), id: c1},
			Ref[B]{rec: rec, off: s.offset(rec.components, c2), id: c2},
			Ref[C]{rec: rec, off: s.offset(rec.components, c3), id: c3})
	}
}
