package xbytes

// Triple is the (head, separator, tail) result of Partition and RPartition.
// All three slots are always present; an empty separator slot means the
// separator was not found.
type Triple [3][]byte

func (t Triple) Head() []byte {
	return t[0]
}

func (t Triple) Sep() []byte {
	return t[1]
}

func (t Triple) Tail() []byte {
	return t[2]
}

// Found reports whether the separator matched.
func (t Triple) Found() bool {
	return len(t[1]) != 0
}

// Partition splits s around the first match of sep. When sep is not found
// the whole of s lands in the head slot.
//
// All three slots are views into s.
func Partition(s []byte, sep Separator) Triple {
	n := len(s)

	i := Index(s, 0, sep)
	if i == -1 {
		return Triple{s[:n:n], s[n:n:n], s[n:n:n]}
	}

	return cutAt(s, i, sep.Len())
}

// RPartition splits s around the last match of sep. When sep is not found
// the whole of s lands in the tail slot.
//
// All three slots are views into s.
func RPartition(s []byte, sep Separator) Triple {
	n := len(s)

	i := LastIndex(s, sep)
	if i == -1 {
		return Triple{s[:0:0], s[:0:0], s[:n:n]}
	}

	return cutAt(s, i, sep.Len())
}

func cutAt(s []byte, i, width int) Triple {
	j := i + width
	n := len(s)

	return Triple{s[:i:i], s[i:j:j], s[j:n:n]}
}
