package component

import (
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// CanonicalName is one entry of the canonical-name tree: a reference to its
// parent entry (Undefined for a root) plus the name segment it contributes.
// The full dotted path is the chain of Name segments from root to leaf.
type CanonicalName struct {
	Parent ref.CanonicalNameRef
	Name   ref.StringRef
}

func ReadCanonicalName(r *wire.Reader) (CanonicalName, error) {
	var c CanonicalName
	var err error
	if c.Parent, err = ref.ReadCanonicalNameRef(r); err != nil {
		return CanonicalName{}, err
	}
	if c.Name, err = ref.ReadStringRef(r); err != nil {
		return CanonicalName{}, err
	}
	return c, nil
}

func WriteCanonicalName(w *wire.Writer, c CanonicalName) error {
	if err := ref.WriteCanonicalNameRef(w, c.Parent); err != nil {
		return err
	}
	return ref.WriteStringRef(w, c.Name)
}

// SourceInfo is one entry of the source map: a URI's text, its line-start
// table for offset-to-line lookups, and which constructors' line coverage
// has already been recorded against it.
type SourceInfo struct {
	URI                  string
	Source               string
	LineStarts           []uint32
	ImportURI            string
	ConstructorCoverage  []ref.CanonicalNameRef
}

func ReadSourceInfo(r *wire.Reader) (SourceInfo, error) {
	var s SourceInfo
	var err error
	if s.URI, err = r.ReadUTF8(); err != nil {
		return SourceInfo{}, err
	}
	if s.Source, err = r.ReadUTF8(); err != nil {
		return SourceInfo{}, err
	}
	if s.LineStarts, err = wire.ReadList(r, readVarU32); err != nil {
		return SourceInfo{}, err
	}
	if s.ImportURI, err = r.ReadUTF8(); err != nil {
		return SourceInfo{}, err
	}
	if s.ConstructorCoverage, err = wire.ReadList(r, ref.ReadCanonicalNameRef); err != nil {
		return SourceInfo{}, err
	}
	return s, nil
}

func WriteSourceInfo(w *wire.Writer, s SourceInfo) error {
	if err := w.WriteUTF8(s.URI); err != nil {
		return err
	}
	if err := w.WriteUTF8(s.Source); err != nil {
		return err
	}
	if err := wire.WriteList(w, s.LineStarts, writeVarU32); err != nil {
		return err
	}
	if err := w.WriteUTF8(s.ImportURI); err != nil {
		return err
	}
	return wire.WriteList(w, s.ConstructorCoverage, ref.WriteCanonicalNameRef)
}
