package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/wire"
)

func TestMetadata_Roundtrip(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	m := Metadata{LibraryCount: 3, FileSize: 1024}
	require.NoError(t, WriteMetadata(w, m))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadMetadata(r)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestIndex_Roundtrip(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	idx := Index{
		SourceTableOffset:        10,
		ConstantTableOffset:      20,
		ConstantTableIndexOffset: 30,
		CanonicalNamesOffset:     40,
		MetadataPayloadsOffset:   50,
		MetadataMappingsOffset:   60,
		StringTableOffset:        70,
		ComponentIndexOffset:     80,
		MainMethodReference:      5,
		CompilationMode:          NonNullableModeStrong,
		LibraryOffsets:           []uint32{0, 100, 200},
	}
	require.NoError(t, WriteIndex(w, idx))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadIndex(r, 2)
	require.NoError(t, err)
	require.Equal(t, idx, got)
}
