package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/wire"
)

func TestHeader_Roundtrip(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteHeader(w, Dart2151))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadHeader(r)
	require.NoError(t, err)
	require.Equal(t, Dart2151, got)
}

func TestHeader_WrongMagicRejected(t *testing.T) {
	buf := &seekBuf{data: []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}}
	r := wire.NewReader(buf)
	_, err := ReadHeader(r)
	require.Error(t, err)
}
