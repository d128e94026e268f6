package ref

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/wire"
)

type seekBuf struct {
	bytes.Buffer
	pos int64
}

func (s *seekBuf) Write(p []byte) (int, error) {
	n, err := s.Buffer.Write(p)
	s.pos += int64(n)
	return n, err
}

func (s *seekBuf) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(s.Buffer.Len()) + offset
	}
	return s.pos, nil
}

func TestCanonicalNameRef_UndefinedIsZero(t *testing.T) {
	require.True(t, Undefined.IsUndefined())
	require.False(t, CanonicalNameRefFromIndex(0).IsUndefined())
}

func TestCanonicalNameRef_ShiftByOne(t *testing.T) {
	r := CanonicalNameRefFromIndex(5)
	require.Equal(t, uint32(6), uint32(r))
	require.Equal(t, uint32(5), r.Index())
}

func TestStringRef_Roundtrip(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteStringRef(w, StringRef(42)))

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadStringRef(r)
	require.NoError(t, err)
	require.Equal(t, StringRef(42), got)
}

func TestCanonicalNameRef_Roundtrip(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteCanonicalNameRef(w, Undefined))

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadCanonicalNameRef(r)
	require.NoError(t, err)
	require.True(t, got.IsUndefined())
}
