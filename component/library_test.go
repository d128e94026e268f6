package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

func TestCombinator_Roundtrip(t *testing.T) {
	c1 := Combinator{
		Flags: flags.CombinatorFlags(0).WithIsShow(true),
		Names: []ref.StringRef{1, 2, 3},
	}

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteCombinator(w, c1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	c2, err := ReadCombinator(r)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestLibraryPart_Roundtrip(t *testing.T) {
	p1 := LibraryPart{PartURI: ref.StringRef(4)}

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteLibraryPart(w, p1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	p2, err := ReadLibraryPart(r)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestLibraryDependency_Roundtrip(t *testing.T) {
	d1 := LibraryDependency{
		TargetLibrary: ref.CanonicalNameRefFromIndex(2),
		Name:          ref.StringRef(1),
		Combinators: []Combinator{
			{Flags: flags.CombinatorFlags(0).WithIsShow(true), Names: []ref.StringRef{3}},
		},
	}

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteLibraryDependency(w, d1))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	d2, err := ReadLibraryDependency(r)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}
