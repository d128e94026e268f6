package component

import (
	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// Library is one compilation unit: its own declarations plus the
// dependencies, parts and re-exports that tie it to the rest of the
// component. Reading a Library also consumes the trailing class/procedure
// offset tables a writer leaves for random access; this package discards
// them once read, the way ReadClass discards its own index after
// validating it.
type Library struct {
	Flags              flags.LibraryFlags
	VersionMajor       uint32
	VersionMinor       uint32
	CanonicalName      ref.CanonicalNameRef
	Name               ref.StringRef
	FileURI            ref.UriRef
	Problems           []string
	Annotations        []ast.Expr
	Dependencies       []LibraryDependency
	AdditionalExports  []ref.CanonicalNameRef
	LibraryParts       []LibraryPart
	Typedefs           []Typedef
	Classes            []Class
	Extensions         []Extension
	Fields             []Field
	Procedures         []Procedure
	SourceRefs         []uint32
}

func ReadLibrary(r *wire.Reader) (Library, error) {
	var l Library
	var err error
	if l.Flags, err = flags.ReadLibraryFlags(r); err != nil {
		return Library{}, err
	}
	if l.VersionMajor, err = r.DecodeVarUint(); err != nil {
		return Library{}, err
	}
	if l.VersionMinor, err = r.DecodeVarUint(); err != nil {
		return Library{}, err
	}
	if l.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Library{}, err
	}
	if l.Name, err = ref.ReadStringRef(r); err != nil {
		return Library{}, err
	}
	if l.FileURI, err = ref.ReadUriRef(r); err != nil {
		return Library{}, err
	}
	if l.Problems, err = wire.ReadList(r, (*wire.Reader).ReadUTF8); err != nil {
		return Library{}, err
	}
	if l.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return Library{}, err
	}
	if l.Dependencies, err = wire.ReadList(r, ReadLibraryDependency); err != nil {
		return Library{}, err
	}
	if l.AdditionalExports, err = wire.ReadList(r, ref.ReadCanonicalNameRef); err != nil {
		return Library{}, err
	}
	if l.LibraryParts, err = wire.ReadList(r, ReadLibraryPart); err != nil {
		return Library{}, err
	}
	if l.Typedefs, err = wire.ReadList(r, ReadTypedef); err != nil {
		return Library{}, err
	}

	classCount, err := r.DecodeVarUint()
	if err != nil {
		return Library{}, err
	}
	l.Classes = make([]Class, classCount)
	for i := range l.Classes {
		c, err := ReadClass(r)
		if err != nil {
			return Library{}, err
		}
		l.Classes[i] = *c
	}

	if l.Extensions, err = wire.ReadList(r, ReadExtension); err != nil {
		return Library{}, err
	}
	if l.Fields, err = wire.ReadList(r, ReadField); err != nil {
		return Library{}, err
	}

	if l.Procedures, err = wire.ReadList(r, readProcedureValue); err != nil {
		return Library{}, err
	}
	procCount := uint32(len(l.Procedures))

	// source_refs_offset records where source_refs begins; a random-access
	// reader can seek straight there, a sequential one just reads through it.
	if l.SourceRefs, err = wire.ReadList(r, readVarU32); err != nil {
		return Library{}, err
	}
	if _, err := r.ReadU32(); err != nil { // source_refs_offset
		return Library{}, err
	}

	// Trailing class-offset and procedure-offset tables: each is a raw
	// (count+1)-entry u32 array for random access, followed by a u32 replay
	// of the element count. Neither is cross-checked the way ClassIndex's
	// embedded count is, so this package only needs to skip past them.
	if _, err := wire.ReadU32Array(r, int(classCount)+1); err != nil {
		return Library{}, err
	}
	if _, err := r.ReadU32(); err != nil {
		return Library{}, err
	}
	if _, err := wire.ReadU32Array(r, int(procCount)+1); err != nil {
		return Library{}, err
	}
	if _, err := r.ReadU32(); err != nil {
		return Library{}, err
	}
	return l, nil
}

// LibraryDependency is one import or export clause.
type LibraryDependency struct {
	Offset        ast.FileOffset
	Flags         flags.DependencyFlags
	Annotations   []ast.Expr
	TargetLibrary ref.CanonicalNameRef
	Name          ref.StringRef
	Combinators   []Combinator
}

func ReadLibraryDependency(r *wire.Reader) (LibraryDependency, error) {
	var d LibraryDependency
	var err error
	if d.Offset, err = ast.ReadFileOffset(r); err != nil {
		return LibraryDependency{}, err
	}
	if d.Flags, err = flags.ReadDependencyFlags(r); err != nil {
		return LibraryDependency{}, err
	}
	if d.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return LibraryDependency{}, err
	}
	if d.TargetLibrary, err = ref.ReadCanonicalNameRef(r); err != nil {
		return LibraryDependency{}, err
	}
	if d.Name, err = ref.ReadStringRef(r); err != nil {
		return LibraryDependency{}, err
	}
	if d.Combinators, err = wire.ReadList(r, ReadCombinator); err != nil {
		return LibraryDependency{}, err
	}
	return d, nil
}

func WriteLibraryDependency(w *wire.Writer, d LibraryDependency) error {
	if err := ast.WriteFileOffset(w, d.Offset); err != nil {
		return err
	}
	if err := flags.WriteDependencyFlags(w, d.Flags); err != nil {
		return err
	}
	if err := wire.WriteList(w, d.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, d.TargetLibrary); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, d.Name); err != nil {
		return err
	}
	return wire.WriteList(w, d.Combinators, WriteCombinator)
}

// LibraryPart is one `part` directive.
type LibraryPart struct {
	Annotations []ast.Expr
	PartURI     ref.StringRef
}

func ReadLibraryPart(r *wire.Reader) (LibraryPart, error) {
	var p LibraryPart
	var err error
	if p.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return LibraryPart{}, err
	}
	if p.PartURI, err = ref.ReadStringRef(r); err != nil {
		return LibraryPart{}, err
	}
	return p, nil
}

func WriteLibraryPart(w *wire.Writer, p LibraryPart) error {
	if err := wire.WriteList(w, p.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	return ref.WriteStringRef(w, p.PartURI)
}
