package xbytes

// Join concatenates parts with delim placed strictly between neighbours,
// never leading or trailing. The result is allocated once at its exact
// final size.
func Join(parts [][]byte, delim []byte) []byte {
	if len(parts) == 0 {
		return []byte{}
	}

	size := len(delim) * (len(parts) - 1)
	for _, p := range parts {
		size += len(p)
	}

	dst := make([]byte, 0, size)
	dst = append(dst, parts[0]...)
	for _, p := range parts[1:] {
		dst = append(dst, delim...)
		dst = append(dst, p...)
	}

	return dst
}

// JoinWithoutEmptyParts is Join over only the non-empty elements of parts.
// If every element is empty the result is empty.
func JoinWithoutEmptyParts(parts [][]byte, delim []byte) []byte {
	var size, n int
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}

		size += len(p)
		n++
	}

	if n == 0 {
		return []byte{}
	}
	size += len(delim) * (n - 1)

	dst := make([]byte, 0, size)
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}

		if len(dst) != 0 {
			dst = append(dst, delim...)
		}
		dst = append(dst, p...)
	}

	return dst
}
