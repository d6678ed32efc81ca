package xbytes

import (
	"bytes"
)

// Index returns the offset of the first match of sep in s at or after
// from, or -1.
//
// from values outside [0, len(s)] are clamped.
func Index(s []byte, from int, sep Separator) int {
	if from < 0 {
		from = 0
	}
	if from >= len(s) || sep.Len() == 0 {
		return -1
	}

	var i int
	tail := s[from:]
	switch sep.kind {
	case SeparatorByte:
		i = bytes.IndexByte(tail, sep.b)
	case SeparatorLiteral:
		i = bytes.Index(tail, sep.seq)
	case SeparatorByteSet:
		i = indexSet(tail, sep)
	default:
		return -1
	}

	if i == -1 {
		return -1
	}

	return from + i
}

// LastIndex returns the offset of the last match of sep in s, or -1.
func LastIndex(s []byte, sep Separator) int {
	if len(s) == 0 || sep.Len() == 0 {
		return -1
	}

	switch sep.kind {
	case SeparatorByte:
		return bytes.LastIndexByte(s, sep.b)
	case SeparatorLiteral:
		return bytes.LastIndex(s, sep.seq)
	case SeparatorByteSet:
		for i := len(s) - 1; i >= 0; i-- {
			if sep.set[s[i]] {
				return i
			}
		}
	}

	return -1
}

func indexSet(s []byte, sep Separator) int {
	for i, b := range s {
		if sep.set[b] {
			return i
		}
	}

	return -1
}
