package pallet

import (
	"reflect"
	"unsafe"
)

// isFlat reports whether a type has a flat memory layout, meaning it can be
// copied in and out of a record buffer as raw bytes. Any type that carries a
// pointer (including strings, slices, maps and interfaces) is not flat and
// gets boxed instead.
func isFlat(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isFlat(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isFlat(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// putFlat copies the raw bytes of v into dst. Only valid for flat types.
func putFlat[T any](dst []byte, v T) {
	copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(&v)), int(unsafe.Sizeof(v))))
}

// readFlat reconstructs a flat value from the bytes at src. The value is
// copied out rather than aliased, so alignment of src does not matter.
func readFlat[T any](src []byte) T {
	var v T
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), int(unsafe.Sizeof(v))), src)
	return v
}
