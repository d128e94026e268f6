package component

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// Component holds the whole program in memory: every library plus the
// shared tables (strings, constants, canonical names, source info,
// metadata payloads) those libraries reference by index.
type Component struct {
	Problems         []string
	Libraries        []Library
	SourceMap        []SourceInfo
	Constants        []ast.Constant
	CanonicalNames   []CanonicalName
	Payloads         [][]byte
	Strings          []string
	MainMethod       ref.CanonicalNameRef
	NonNullableMode  NonNullableMode
}

// File is a random-access view over a container: it has parsed the tail
// Index once and seeks back into the source for each section a caller
// asks for, rather than eagerly materializing the whole Component.
type File struct {
	r     *wire.Reader
	index Index
}

// Open opens a random-access File over path using ordinary file I/O —
// every seek is a real syscall. Use OpenMmapped when path is read
// repeatedly and the cost of paging it in up front is worth paying once.
func Open(path string) (*File, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	cf, err := Load(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return cf, f, nil
}

// OpenMmapped memory-maps path read-only and opens a random-access File
// over the mapping, so repeated seeks hit paged-in memory instead of the
// filesystem.
func OpenMmapped(path string) (*File, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	cf, err := Load(newByteReader(m))
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, nil, err
	}
	return cf, closerFunc(func() error {
		if uerr := m.Unmap(); uerr != nil {
			f.Close()
			return uerr
		}
		return f.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// byteReader adapts a fixed in-memory byte slice (an mmap'd region, most
// commonly) to io.ReadSeeker.
type byteReader struct {
	data []byte
	pos  int64
}

func newByteReader(data []byte) *byteReader { return &byteReader{data: data} }

func (b *byteReader) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *byteReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	}
	b.pos = abs
	return abs, nil
}

// Load opens a random-access File over an already-seekable source (an
// *os.File without mmap, a bytes.Reader, ...).
func Load(src io.ReadSeeker) (*File, error) {
	r := wire.NewReader(src)

	if err := r.SeekFromEnd(-int64(MetadataSize)); err != nil {
		return nil, err
	}
	meta, err := ReadMetadata(r)
	if err != nil {
		return nil, err
	}

	indexOffset := int64(IndexMinimumSize) + int64(meta.LibraryCount)*4 + int64(MetadataSize)
	if err := r.SeekFromEnd(-indexOffset); err != nil {
		return nil, err
	}
	index, err := ReadIndex(r, meta.LibraryCount)
	if err != nil {
		return nil, err
	}

	return &File{r: r, index: index}, nil
}

// Libraries decodes every library the Index points at, in file order.
func (f *File) Libraries() ([]Library, error) {
	if len(f.index.LibraryOffsets) == 0 {
		return nil, nil
	}
	offsets := f.index.LibraryOffsets[:len(f.index.LibraryOffsets)-1]
	libs := make([]Library, 0, len(offsets))
	for _, off := range offsets {
		if err := f.r.SeekAbs(int64(off)); err != nil {
			return nil, err
		}
		lib, err := ReadLibrary(f.r)
		if err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	return libs, nil
}

// StringTable decodes the shared interned-string table.
func (f *File) StringTable() (StringTable, error) {
	if err := f.r.SeekAbs(int64(f.index.StringTableOffset)); err != nil {
		return StringTable{}, err
	}
	return ReadStringTable(f.r)
}

// Constants decodes the shared constant table.
func (f *File) Constants() ([]ast.Constant, error) {
	if err := f.r.SeekAbs(int64(f.index.ConstantTableOffset)); err != nil {
		return nil, err
	}
	return wire.ReadList(f.r, ast.ReadConstant)
}

// CanonicalNames decodes the shared canonical-name tree.
func (f *File) CanonicalNames() ([]CanonicalName, error) {
	if err := f.r.SeekAbs(int64(f.index.CanonicalNamesOffset)); err != nil {
		return nil, err
	}
	return wire.ReadList(f.r, ReadCanonicalName)
}

// SourceMap decodes the per-URI source/line-table entries.
func (f *File) SourceMap() ([]SourceInfo, error) {
	if err := f.r.SeekAbs(int64(f.index.SourceTableOffset)); err != nil {
		return nil, err
	}
	n, err := f.r.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]SourceInfo, n)
	for i := range out {
		out[i], err = ReadSourceInfo(f.r)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Index exposes the decoded tail index, mainly so callers can cross-check
// MainMethodReference and CompilationMode without redecoding libraries.
func (f *File) Index() Index { return f.index }
