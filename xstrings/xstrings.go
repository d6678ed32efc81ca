// Package xstrings exposes the xbytes engines over Go strings. Results are
// substrings of the input, produced without copying.
package xstrings

import (
	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
	"github.com/josephcopenhaver/go-exp-bytestr/xbytes"
)

func EqualsIgnoreCaseASCII(s1, s2 string) bool {
	return xascii.EqualsIgnoreCase(s1, s2)
}

func HasSuffixIgnoreCaseASCII(s, suffix string) bool {
	return len(s) >= len(suffix) && xascii.EqualsIgnoreCase(s[len(s)-len(suffix):], suffix)
}

// views converts byte views that point into the memory of a string back
// into substrings of that string.
func views(parts [][]byte) []string {
	if parts == nil {
		return nil
	}

	r := make([]string, len(parts))
	for i, p := range parts {
		r[i] = xascii.UnsafeString(p)
	}

	return r
}

func Split(s string, delim byte) []string {
	return views(xbytes.Split(xascii.UnsafeConstBytes(s), delim))
}

func SplitWithoutEmptyParts(s string, delim byte) []string {
	return views(xbytes.SplitWithoutEmptyParts(xascii.UnsafeConstBytes(s), delim))
}

func SplitAnyWithoutEmptyParts(s, delims string) []string {
	return views(xbytes.SplitAnyWithoutEmptyParts(xascii.UnsafeConstBytes(s), xascii.UnsafeConstBytes(delims)))
}

func Fields(s string) []string {
	return views(xbytes.Fields(xascii.UnsafeConstBytes(s)))
}

// Partition splits s around the first occurrence of sep. When sep is
// empty or not found, head is s and the other two are empty.
func Partition(s, sep string) (head, match, tail string) {
	p := xbytes.Partition(xascii.UnsafeConstBytes(s), xbytes.Literal(xascii.UnsafeConstBytes(sep)))
	return xascii.UnsafeString(p.Head()), xascii.UnsafeString(p.Sep()), xascii.UnsafeString(p.Tail())
}

// RPartition splits s around the last occurrence of sep. When sep is
// empty or not found, tail is s and the other two are empty.
func RPartition(s, sep string) (head, match, tail string) {
	p := xbytes.RPartition(xascii.UnsafeConstBytes(s), xbytes.Literal(xascii.UnsafeConstBytes(sep)))
	return xascii.UnsafeString(p.Head()), xascii.UnsafeString(p.Sep()), xascii.UnsafeString(p.Tail())
}
