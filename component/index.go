package component

import "github.com/nullshade/dartkernel/wire"

// MetadataSize is the byte width of the trailing ComponentMetadata word.
const MetadataSize = 8

// Metadata is the fixed-size footer: how many libraries the file holds and
// the file's total byte length, which a reader uses to locate the Index
// that precedes it.
type Metadata struct {
	LibraryCount uint32
	FileSize     uint32
}

func ReadMetadata(r *wire.Reader) (Metadata, error) {
	var m Metadata
	var err error
	if m.LibraryCount, err = r.ReadU32(); err != nil {
		return Metadata{}, err
	}
	if m.FileSize, err = r.ReadU32(); err != nil {
		return Metadata{}, err
	}
	return m, nil
}

func WriteMetadata(w *wire.Writer, m Metadata) error {
	if err := w.WriteU32(m.LibraryCount); err != nil {
		return err
	}
	return w.WriteU32(m.FileSize)
}

// IndexMinimumSize is the Index's size with zero libraries: ten u32 fields
// plus the single sentinel library offset. Each library adds four bytes.
const IndexMinimumSize = 44

// Index is the tail record that makes every top-level section
// random-accessible: one absolute byte offset per section, plus one entry
// per library (and a final sentinel one past the last) so a reader can
// compute each library's byte length without walking the file.
type Index struct {
	SourceTableOffset        uint32
	ConstantTableOffset      uint32
	ConstantTableIndexOffset uint32
	CanonicalNamesOffset     uint32
	MetadataPayloadsOffset   uint32
	MetadataMappingsOffset   uint32
	StringTableOffset        uint32
	ComponentIndexOffset     uint32
	MainMethodReference      uint32
	CompilationMode          NonNullableMode
	LibraryOffsets           []uint32
}

func ReadIndex(r *wire.Reader, libraryCount uint32) (Index, error) {
	var idx Index
	var err error
	if idx.SourceTableOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.ConstantTableOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.ConstantTableIndexOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.CanonicalNamesOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.MetadataPayloadsOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.MetadataMappingsOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.StringTableOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.ComponentIndexOffset, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.MainMethodReference, err = r.ReadU32(); err != nil {
		return Index{}, err
	}
	if idx.CompilationMode, err = ReadNonNullableMode(r); err != nil {
		return Index{}, err
	}
	if idx.LibraryOffsets, err = wire.ReadU32Array(r, int(libraryCount)+1); err != nil {
		return Index{}, err
	}
	return idx, nil
}

func WriteIndex(w *wire.Writer, idx Index) error {
	if err := w.WriteU32(idx.SourceTableOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.ConstantTableOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.ConstantTableIndexOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.CanonicalNamesOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.MetadataPayloadsOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.MetadataMappingsOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.StringTableOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.ComponentIndexOffset); err != nil {
		return err
	}
	if err := w.WriteU32(idx.MainMethodReference); err != nil {
		return err
	}
	if err := WriteNonNullableMode(w, idx.CompilationMode); err != nil {
		return err
	}
	return wire.WriteU32Array(w, idx.LibraryOffsets)
}

// NonNullableMode is the component-wide null-safety compilation mode.
type NonNullableMode uint32

const (
	NonNullableModeDisabled NonNullableMode = iota
	NonNullableModeWeak
	NonNullableModeStrong
	NonNullableModeAgnostic
)

func ReadNonNullableMode(r *wire.Reader) (NonNullableMode, error) {
	v, err := r.ReadU32()
	return NonNullableMode(v), err
}

func WriteNonNullableMode(w *wire.Writer, v NonNullableMode) error {
	return w.WriteU32(uint32(v))
}
