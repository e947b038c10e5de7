package pallet

type factory struct{}

// Factory builds the package's top-level objects.
var Factory factory

func (f factory) NewStorage() *Storage {
	return newStorage()
}

// NewMask builds a Mask with the given component bits set.
func (f factory) NewMask(ids ...ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		m.Mark(id)
	}
	return m
}
