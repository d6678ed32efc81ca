package xbytes

import (
	"bytes"
)

// ReplaceFirst returns a copy of s with the first occurrence of search
// replaced by replacement. If search does not occur the copy is identical
// to s.
func ReplaceFirst(s, search, replacement []byte) []byte {
	i := Index(s, 0, Literal(search))
	if i == -1 {
		return Clone(s)
	}

	dst := make([]byte, 0, len(s)-len(search)+len(replacement))
	dst = append(dst, s[:i]...)
	dst = append(dst, replacement...)
	dst = append(dst, s[i+len(search):]...)

	return dst
}

// ReplaceAll returns a copy of s with every occurrence of search replaced
// by replacement. Scanning resumes after each inserted replacement, so a
// replacement containing search is never matched again.
//
// search must not be empty; ReplaceAll panics with a *ContractError
// otherwise.
func ReplaceAll(s, search, replacement []byte) []byte {
	if len(search) == 0 {
		contractViolation("ReplaceAll", "empty search string would cause an infinite loop")
	}

	n := bytes.Count(s, search)
	if n == 0 {
		return Clone(s)
	}

	sep := Literal(search)
	dst := make([]byte, 0, len(s)+n*(len(replacement)-len(search)))
	var start int
	for {
		i := Index(s, start, sep)
		if i == -1 {
			break
		}

		dst = append(dst, s[start:i]...)
		dst = append(dst, replacement...)
		start = i + len(search)
	}

	return append(dst, s[start:]...)
}
