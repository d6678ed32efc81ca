package xascii

import (
	"unsafe"
)

// UnsafeConstBytes's result internals must not be modified in any way.
// It must also not be saved to a context that outlives the string passed
// to this function, that includes any context that makes a sub-slice of
// the result without allocating a new slice.
//
// returns nil if the string is empty.
//
// This exists to facilitate the conversion of string types to byte slices
// without using an allocation and should be used with extreme care.
func UnsafeConstBytes[T ~string](s T) []byte {
	p := string(s)

	if len(p) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(p), len(p))
}

// UnsafeString is the inverse of UnsafeConstBytes: the returned string
// shares memory with b, so b must never be written to afterward.
//
// returns "" if b is empty.
func UnsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}

func EqualsIgnoreCase[T ~string | ~[]byte](s1, s2 T) bool {
	if len(s1) != len(s2) {
		return false
	}

	for i := range len(s1) {
		b1, b2 := s1[i], s2[i]
		if b1 == b2 {
			continue
		}

		if ToLower(b1) != ToLower(b2) {
			return false
		}
	}

	return true
}
