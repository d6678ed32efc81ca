package xbytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	src := []byte("abc")
	dst := Clone(src)
	dst[0] = 'X'
	require.Equal(t, "abc", string(src))

	require.NotNil(t, Clone(nil))
}

func TestCloneAll(t *testing.T) {
	src := []byte("a,bb,,ccc")
	views := Split(src, ',')
	owned := CloneAll(views)
	require.Equal(t, strs(views), strs(owned))

	for i := range src {
		src[i] = '#'
	}
	require.Equal(t, []string{"a", "bb", "", "ccc"}, strs(owned))

	// neighbours cannot be overwritten through append
	for _, p := range owned {
		require.Equal(t, len(p), cap(p))
	}
	_ = append(owned[0], 'Z')
	require.Equal(t, "bb", string(owned[1]))

	require.Nil(t, CloneAll(nil))
}
