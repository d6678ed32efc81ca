package xbytes

import (
	"bytes"
	"iter"

	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
)

var spaceSeparator = ByteSet([]byte(xascii.Whitespace))

// Split cuts s at every occurrence of delim and returns the pieces as
// views into s, empty ones included. A delimiter at either end yields an
// empty leading or trailing piece.
//
// An empty s yields an empty result rather than one empty piece.
func Split(s []byte, delim byte) [][]byte {
	if len(s) == 0 {
		return nil
	}

	parts := make([][]byte, 0, bytes.Count(s, []byte{delim})+1)
	return appendSplit(parts, s, Byte(delim), true)
}

// SplitWithoutEmptyParts is like Split but never returns a zero-length
// piece.
func SplitWithoutEmptyParts(s []byte, delim byte) [][]byte {
	return appendSplit(nil, s, Byte(delim), false)
}

// SplitAnyWithoutEmptyParts cuts s at every byte that is a member of
// delims. Runs of consecutive delimiters collapse, so no piece is empty.
func SplitAnyWithoutEmptyParts(s []byte, delims []byte) [][]byte {
	return appendSplit(nil, s, ByteSet(delims), false)
}

// Fields is SplitAnyWithoutEmptyParts with xascii.Whitespace as the
// delimiter set.
func Fields(s []byte) [][]byte {
	return appendSplit(nil, s, spaceSeparator, false)
}

// AppendSplit appends the pieces Split would return to dst.
func AppendSplit(dst [][]byte, s []byte, delim byte) [][]byte {
	return appendSplit(dst, s, Byte(delim), true)
}

// AppendSplitWithoutEmptyParts appends the pieces SplitWithoutEmptyParts
// would return to dst.
func AppendSplitWithoutEmptyParts(dst [][]byte, s []byte, delim byte) [][]byte {
	return appendSplit(dst, s, Byte(delim), false)
}

// AppendSplitAnyWithoutEmptyParts appends the pieces
// SplitAnyWithoutEmptyParts would return to dst.
func AppendSplitAnyWithoutEmptyParts(dst [][]byte, s []byte, delims []byte) [][]byte {
	return appendSplit(dst, s, ByteSet(delims), false)
}

// AppendFields appends the pieces Fields would return to dst.
func AppendFields(dst [][]byte, s []byte) [][]byte {
	return appendSplit(dst, s, spaceSeparator, false)
}

// SplitSeq yields the same pieces as Split without building a slice.
func SplitSeq(s []byte, delim byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if len(s) == 0 {
			return
		}

		sep := Byte(delim)
		start := 0
		for {
			i := Index(s, start, sep)
			if i == -1 {
				break
			}

			if !yield(s[start:i:i]) {
				return
			}
			start = i + 1
		}

		yield(s[start:len(s):len(s)])
	}
}

func appendSplit(dst [][]byte, s []byte, sep Separator, keepEmpty bool) [][]byte {
	if len(s) == 0 {
		return dst
	}

	width := sep.Len()
	start := 0
	for start < len(s) {
		i := Index(s, start, sep)
		if i == -1 {
			break
		}

		if keepEmpty || i != start {
			dst = append(dst, s[start:i:i])
		}
		start = i + width
	}

	if keepEmpty || start < len(s) {
		dst = append(dst, s[start:len(s):len(s)])
	}

	return dst
}
