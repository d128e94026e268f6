package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/component"
)

// seekBuf adapts an in-memory byte slice to io.WriteSeeker for round-trip
// tests that need a single buffer to both write into and read back from.
type seekBuf struct {
	data []byte
	pos  int64
}

func (b *seekBuf) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.pos:end], p)
	b.pos = end
	return n, nil
}

func (b *seekBuf) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		b.pos = offset
	case 1:
		b.pos += offset
	case 2:
		b.pos = int64(len(b.data)) + offset
	}
	return b.pos, nil
}

func TestWriteComponent_Roundtrip(t *testing.T) {
	comp := &component.Component{
		Strings: []string{"", "test😵"},
	}

	buf := &seekBuf{}
	require.NoError(t, WriteComponent(component.Dart2151, comp, buf))

	cf, err := component.Load(bytes.NewReader(buf.data))
	require.NoError(t, err)

	libs, err := cf.Libraries()
	require.NoError(t, err)
	require.Empty(t, libs)

	consts, err := cf.Constants()
	require.NoError(t, err)
	require.Empty(t, consts)

	st, err := cf.StringTable()
	require.NoError(t, err)
	require.Equal(t, 2, st.Len())
	s, ok := st.Get(1)
	require.True(t, ok)
	require.Equal(t, "test😵", s)
}

func TestWriteComponent_WithLibrary(t *testing.T) {
	lib := component.Library{
		VersionMajor: 2,
		VersionMinor: 15,
	}
	comp := &component.Component{
		Libraries: []component.Library{lib},
		Strings:   []string{""},
	}

	buf := &seekBuf{}
	require.NoError(t, WriteComponent(component.Dart2151, comp, buf))

	cf, err := component.Load(bytes.NewReader(buf.data))
	require.NoError(t, err)

	libs, err := cf.Libraries()
	require.NoError(t, err)
	require.Len(t, libs, 1)
	require.Equal(t, uint32(2), libs[0].VersionMajor)
	require.Equal(t, uint32(15), libs[0].VersionMinor)
}
