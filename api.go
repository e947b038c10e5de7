package pallet

// Entity is an opaque identifier for one record in a Storage. Identifiers are
// handed out by a strictly increasing counter and are never reused within the
// lifetime of the storage that created them.
type Entity uint32

// ComponentID identifies a registered component type within a Storage.
// IDs are assigned sequentially starting at zero.
type ComponentID uint8

const (
	// MaxComponents is the hard registration limit. Presence and dirty
	// state are tracked in 64-bit masks, one bit per component.
	MaxComponents = 64

	// The first cacheSize component ids get precomputed offsets; ids past
	// the threshold fall back to a linear scan.
	cacheSize = 12
	cacheMask = 1<<cacheSize - 1

	// Boxed components store an 8-byte holder handle in the record buffer.
	holderHandleSize = 8
)

// ComponentInfo is the read-only view of a registered component.
type ComponentInfo struct {
	ID   ComponentID
	Name string
	Size int
	Flat bool
}
