package pallet

import "reflect"

// component is the registration-time descriptor for one value type.
// Immutable after registration.
type component struct {
	name string
	typ  reflect.Type
	size int
	flat bool

	// Capabilities for boxed components. clone produces an independent
	// copy of a boxed value, zero produces an empty one. Nil for flat
	// components.
	clone func(any) any
	zero  func() any
}

// RegisterComponent registers T under the given name and returns its id.
// IDs are sequential starting at zero; at most MaxComponents can be
// registered per storage. Boxed components get a default clone capability
// that copies the value, which is a deep copy for value-only and
// string-bearing types. Types holding slices or maps should use
// RegisterComponentWithClone instead.
func RegisterComponent[T any](s *Storage, name string) (ComponentID, error) {
	return RegisterComponentWithClone[T](s, name, func(v T) T { return v })
}

// RegisterComponentWithClone registers T with an explicit clone function,
// used whenever a boxed value must be duplicated (entity cloning). The
// function is ignored for flat types.
func RegisterComponentWithClone[T any](s *Storage, name string, cloneFn func(T) T) (ComponentID, error) {
	if len(s.components) >= MaxComponents {
		return 0, ComponentLimitError{}
	}
	if _, taken := s.idsByName[name]; taken {
		return 0, DuplicateComponentError{Name: name}
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	id := ComponentID(len(s.components))
	comp := component{name: name, typ: typ}

	if isFlat(typ) {
		comp.flat = true
		comp.size = int(typ.Size())
	} else {
		s.boxedMask.Mark(id)
		comp.size = holderHandleSize
		comp.clone = func(v any) any { return cloneFn(v.(T)) }
		comp.zero = func() any { var z T; return z }
	}

	s.growOffsets(id, comp.size)
	s.components = append(s.components, comp)
	s.idsByName[name] = id
	return id, nil
}

// FindComponent returns the id registered under name.
func (s *Storage) FindComponent(name string) (ComponentID, error) {
	id, ok := s.idsByName[name]
	if !ok {
		return 0, ComponentNotFoundError{Name: name}
	}
	return id, nil
}

// ComponentInfo returns the read-only descriptor for a component id.
func (s *Storage) ComponentInfo(id ComponentID) (ComponentInfo, error) {
	comp, err := s.component(id)
	if err != nil {
		return ComponentInfo{}, err
	}
	return ComponentInfo{ID: id, Name: comp.name, Size: comp.size, Flat: comp.flat}, nil
}

// Components returns descriptors for every registered component, in id order.
func (s *Storage) Components() []ComponentInfo {
	infos := make([]ComponentInfo, len(s.components))
	for i, comp := range s.components {
		infos[i] = ComponentInfo{ID: ComponentID(i), Name: comp.name, Size: comp.size, Flat: comp.flat}
	}
	return infos
}

func (s *Storage) component(id ComponentID) (*component, error) {
	if int(id) >= len(s.components) {
		return nil, InvalidComponentError{Component: id}
	}
	return &s.components[id], nil
}

// checkType verifies that T is the type component id was registered with.
func checkType[T any](comp *component, id ComponentID) error {
	if typ := reflect.TypeOf((*T)(nil)).Elem(); typ != comp.typ {
		return TypeMismatchError{Component: id, Registered: comp.typ, Requested: typ}
	}
	return nil
}
