package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/wire"
)

func TestStringTable_Roundtrip(t *testing.T) {
	t1 := NewStringTable([]string{"", "hello", "world", "café"})

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteStringTable(w, t1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	t2, err := ReadStringTable(r)
	require.NoError(t, err)
	require.Equal(t, t1, t2)

	require.Equal(t, 4, t2.Len())
	s, ok := t2.Get(2)
	require.True(t, ok)
	require.Equal(t, "world", s)

	_, ok = t2.Get(4)
	require.False(t, ok)
}

func TestStringTable_Empty(t *testing.T) {
	t1 := NewStringTable(nil)
	require.Equal(t, 0, t1.Len())

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteStringTable(w, t1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	t2, err := ReadStringTable(r)
	require.NoError(t, err)
	require.Equal(t, 0, t2.Len())
}
