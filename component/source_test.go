package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

func TestCanonicalName_Roundtrip(t *testing.T) {
	c1 := CanonicalName{Parent: ref.CanonicalNameRefFromIndex(3), Name: ref.StringRef(7)}

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteCanonicalName(w, c1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	c2, err := ReadCanonicalName(r)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestSourceInfo_Roundtrip(t *testing.T) {
	s1 := SourceInfo{
		URI:                 "file:///a.dart",
		Source:              "void main() {}",
		LineStarts:          []uint32{0, 20},
		ImportURI:           "package:a/a.dart",
		ConstructorCoverage: []ref.CanonicalNameRef{ref.CanonicalNameRefFromIndex(1)},
	}

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteSourceInfo(w, s1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	s2, err := ReadSourceInfo(r)
	require.NoError(t, err)
	require.Equal(t, s1, s2)
}
