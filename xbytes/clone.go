package xbytes

// Clone returns an owned copy of s. The result is never nil, so an empty
// input still yields a usable, empty slice.
func Clone(s []byte) []byte {
	dst := make([]byte, len(s))
	copy(dst, s)
	return dst
}

// CloneAll returns owned copies of parts. All copies share one backing
// allocation but none can grow into its neighbour.
func CloneAll(parts [][]byte) [][]byte {
	if len(parts) == 0 {
		return nil
	}

	var size int
	for _, p := range parts {
		size += len(p)
	}

	buf := make([]byte, size)
	dst := make([][]byte, len(parts))
	var off int
	for i, p := range parts {
		end := off + copy(buf[off:], p)
		dst[i] = buf[off:end:end]
		off = end
	}

	return dst
}
