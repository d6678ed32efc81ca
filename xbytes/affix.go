package xbytes

import (
	"bytes"
)

// BeginsWith reports whether s starts with prefix. An empty prefix always
// matches.
func BeginsWith(s, prefix []byte) bool {
	return len(s) >= len(prefix) && bytes.Equal(s[:len(prefix)], prefix)
}

// EndsWith reports whether s ends with suffix. An empty suffix always
// matches.
func EndsWith(s, suffix []byte) bool {
	return len(s) >= len(suffix) && bytes.Equal(s[len(s)-len(suffix):], suffix)
}

// StripPrefix returns the view of s that follows prefix.
//
// s must begin with prefix; StripPrefix panics with a *ContractError
// otherwise. Use BeginsWith first when the input is not trusted.
func StripPrefix(s, prefix []byte) []byte {
	if !BeginsWith(s, prefix) {
		contractViolation("StripPrefix", "string doesn't begin with given prefix")
	}

	n := len(s)
	return s[len(prefix):n:n]
}

// StripSuffix returns the view of s that precedes suffix.
//
// s must end with suffix; StripSuffix panics with a *ContractError
// otherwise.
func StripSuffix(s, suffix []byte) []byte {
	if !EndsWith(s, suffix) {
		contractViolation("StripSuffix", "string doesn't end with given suffix")
	}

	n := len(s) - len(suffix)
	return s[:n:n]
}
