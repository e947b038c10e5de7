/*
Package pallet is a compact entity/component data store.

Pallet associates any subset of registered component types with integer
entities and packs their values into one contiguous byte buffer per entity.
It targets simulations and agent systems that keep many heterogeneous,
sparsely populated records and update them at high frequency: field access
is offset arithmetic over a byte buffer, not a map lookup per component.

Core Concepts:

  - Entity: a unique identifier that represents one record.
  - Component: a registered value type, identified by a small integer id.
  - Record: an entity's presence mask, dirty mask and packed byte buffer.
  - Ref: a transient typed view into one component's slot in a record.

Flat component types (no pointers anywhere in their layout) are stored as raw
bytes directly in the buffer. Everything else is boxed: the buffer holds a
small handle to a storage-owned holder that knows how to clone and release
the value, so unsafe byte reinterpretation never applies to pointered types.

Basic Usage:

	storage := pallet.Factory.NewStorage()

	position, _ := pallet.RegisterComponent[Position](storage, "position")
	velocity, _ := pallet.RegisterComponent[Velocity](storage, "velocity")

	first, end := storage.NewEntities(100)
	for en := first; en < end; en++ {
		pallet.Set(storage, en, position, Position{X: 1})
		pallet.Set(storage, en, velocity, Velocity{X: 2})
	}

	pallet.ForEach2(storage, position, velocity,
		func(rec *pallet.Record, pos pallet.Ref[Position], vel pallet.Ref[Velocity]) {
			p, v := pos.Get(), vel.Get()
			p.X += v.X
			p.Y += v.Y
			pos.Set(p)
		})

Every write flips the component's dirty bit; consumers that only want changed
entities poll the dirty mask and clear it as they go. The storage is not safe
for concurrent use; callers that share one across goroutines must serialize
access themselves.
*/
package pallet
