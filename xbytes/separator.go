package xbytes

import (
	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
)

type SeparatorKind uint8

const (
	// SeparatorByte matches one specific byte.
	SeparatorByte SeparatorKind = iota + 1
	// SeparatorLiteral matches a byte sequence contiguously.
	SeparatorLiteral
	// SeparatorByteSet matches any single byte drawn from a set.
	SeparatorByteSet
)

func (k SeparatorKind) String() string {
	if k < SeparatorByte || k > SeparatorByteSet {
		return ""
	}

	return []string{
		"byte",
		"literal",
		"byte-set",
	}[k-1]
}

// Separator describes what terminates a token. Build one with Byte,
// Literal or ByteSet; the zero value matches nothing.
type Separator struct {
	seq  []byte
	set  *xascii.Set
	kind SeparatorKind
	b    byte
}

func Byte(c byte) Separator {
	return Separator{kind: SeparatorByte, b: c}
}

// Literal matches seq as a whole. An empty seq is never found.
//
// seq is retained, not copied.
func Literal(seq []byte) Separator {
	return Separator{kind: SeparatorLiteral, seq: seq}
}

// ByteSet matches any one byte of set. An empty set is never found.
func ByteSet(set []byte) Separator {
	s := Separator{kind: SeparatorByteSet}
	if len(set) > 0 {
		s.set = xascii.NewSet(set)
	}

	return s
}

func (s Separator) Kind() SeparatorKind {
	return s.kind
}

// Len is the number of bytes a single match of s spans, or 0 when s can
// never match.
func (s Separator) Len() int {
	switch s.kind {
	case SeparatorByte:
		return 1
	case SeparatorLiteral:
		return len(s.seq)
	case SeparatorByteSet:
		if s.set == nil {
			return 0
		}
		return 1
	}

	return 0
}
