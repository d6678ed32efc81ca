package xascii

const (
	upperToLower = 'a' - 'A'

	// Whitespace is the default cutset and delimiter set: space, tab,
	// form-feed, vertical-tab, carriage-return and newline.
	Whitespace = " \t\f\v\r\n"
)

// Set is a membership table over all 256 byte values.
//
// The zero value is the empty set.
type Set [256]bool

// SpaceSet contains exactly the bytes of Whitespace.
var SpaceSet = NewSet(Whitespace)

func NewSet[T ~string | ~[]byte](chars T) *Set {
	var s Set
	for i := range len(chars) {
		s[chars[i]] = true
	}

	return &s
}

func (s *Set) Contains(b byte) bool {
	return s[b]
}

func IsSpace(b byte) bool {
	return SpaceSet[b]
}

func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// ToLower maps 'A'-'Z' to 'a'-'z'; every other byte passes through.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + upperToLower
	}

	return b
}

// ToUpper maps 'a'-'z' to 'A'-'Z'; every other byte passes through.
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - upperToLower
	}

	return b
}
