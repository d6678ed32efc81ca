package xbytes

import (
	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
)

// Lowercase returns a copy of s with 'A'-'Z' mapped to 'a'-'z'. All other
// bytes are copied unchanged.
func Lowercase(s []byte) []byte {
	dst := Clone(s)
	LowercaseInPlace(dst)
	return dst
}

// Uppercase returns a copy of s with 'a'-'z' mapped to 'A'-'Z'. All other
// bytes are copied unchanged.
func Uppercase(s []byte) []byte {
	dst := Clone(s)
	UppercaseInPlace(dst)
	return dst
}

func LowercaseInPlace(s []byte) {
	for i, b := range s {
		s[i] = xascii.ToLower(b)
	}
}

func UppercaseInPlace(s []byte) {
	for i, b := range s {
		s[i] = xascii.ToUpper(b)
	}
}
