package xbytes

import (
	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
)

// bounds returns the [i, j) window of s left after dropping the leading
// (left) and trailing (right) run of bytes found in set.
func bounds(s []byte, set *xascii.Set, left, right bool) (int, int) {
	i, j := 0, len(s)

	if right {
		for j > 0 && set[s[j-1]] {
			j--
		}
	}

	if left {
		for i < j && set[s[i]] {
			i++
		}
	}

	return i, j
}

func trimCopy(s []byte, set *xascii.Set, left, right bool) []byte {
	i, j := bounds(s, set, left, right)
	return Clone(s[i:j])
}

func trimInPlace(s *[]byte, set *xascii.Set, left, right bool) {
	b := *s
	i, j := bounds(b, set, left, right)
	if i == 0 {
		*s = b[:j]
		return
	}

	n := copy(b, b[i:j])
	*s = b[:n]
}

// Trim returns a copy of s without the leading and trailing bytes found in
// cutset. A slice made only of cutset bytes trims to an empty slice.
func Trim(s []byte, cutset []byte) []byte {
	return trimCopy(s, xascii.NewSet(cutset), true, true)
}

// LTrim returns a copy of s without the leading bytes found in cutset.
func LTrim(s []byte, cutset []byte) []byte {
	return trimCopy(s, xascii.NewSet(cutset), true, false)
}

// RTrim returns a copy of s without the trailing bytes found in cutset.
func RTrim(s []byte, cutset []byte) []byte {
	return trimCopy(s, xascii.NewSet(cutset), false, true)
}

func TrimSpace(s []byte) []byte {
	return trimCopy(s, xascii.SpaceSet, true, true)
}

func LTrimSpace(s []byte) []byte {
	return trimCopy(s, xascii.SpaceSet, true, false)
}

func RTrimSpace(s []byte) []byte {
	return trimCopy(s, xascii.SpaceSet, false, true)
}

// TrimInPlace erases the leading and trailing bytes found in cutset from
// *s. The remaining bytes are moved to the front of the existing backing
// array; nothing is allocated.
func TrimInPlace(s *[]byte, cutset []byte) {
	trimInPlace(s, xascii.NewSet(cutset), true, true)
}

func LTrimInPlace(s *[]byte, cutset []byte) {
	trimInPlace(s, xascii.NewSet(cutset), true, false)
}

func RTrimInPlace(s *[]byte, cutset []byte) {
	trimInPlace(s, xascii.NewSet(cutset), false, true)
}

func TrimSpaceInPlace(s *[]byte) {
	trimInPlace(s, xascii.SpaceSet, true, true)
}

func LTrimSpaceInPlace(s *[]byte) {
	trimInPlace(s, xascii.SpaceSet, true, false)
}

func RTrimSpaceInPlace(s *[]byte) {
	trimInPlace(s, xascii.SpaceSet, false, true)
}
