package component

import (
	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// ClassTag is the fixed magic byte preceding a Class record.
var ClassTag = []byte{0x02}

// Class is a library-level type declaration. Reading is the only direction
// this package implements directly — writing goes through the writer
// package, since a class's trailing procedure-offset index can only be
// filled in once every procedure has actually been written.
type Class struct {
	CanonicalName        ref.CanonicalNameRef
	FileURI              ref.UriRef
	StartOffset          ast.FileOffset
	DefinitionRange      ast.FileRange
	Flags                flags.ClassFlags
	Name                 ref.StringRef
	Annotations          []ast.Expr
	TypeParams           []ast.TypeParameter
	SuperClass           *ast.Type
	MixedInType          *ast.Type
	ImplementedClasses   []ast.Type
	Fields               []Field
	Constructors         []Constructor
	Procedures           []Procedure
	RedirectingFactories []RedirectingFactory
}

// ReadClass decodes a Class, validating its trailing procedure-offset index
// against the procedure count it actually read (the one check the wire
// format gives a reader for free: every other trailing offset table exists
// purely to support random access and is never cross-checked).
func ReadClass(r *wire.Reader) (*Class, error) {
	c := &Class{}
	if err := r.ReadMagic(ClassTag); err != nil {
		return nil, err
	}
	var err error
	if c.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return nil, err
	}
	if c.FileURI, err = ref.ReadUriRef(r); err != nil {
		return nil, err
	}
	if c.StartOffset, err = ast.ReadFileOffset(r); err != nil {
		return nil, err
	}
	if c.DefinitionRange, err = ast.ReadFileRange(r); err != nil {
		return nil, err
	}
	if c.Flags, err = flags.ReadClassFlags(r); err != nil {
		return nil, err
	}
	if c.Name, err = ref.ReadStringRef(r); err != nil {
		return nil, err
	}
	if c.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return nil, err
	}
	if c.TypeParams, err = wire.ReadList(r, ast.ReadTypeParameter); err != nil {
		return nil, err
	}
	if c.SuperClass, err = wire.ReadOption(r, ast.ReadType); err != nil {
		return nil, err
	}
	if c.MixedInType, err = wire.ReadOption(r, ast.ReadType); err != nil {
		return nil, err
	}
	if c.ImplementedClasses, err = wire.ReadList(r, ast.ReadType); err != nil {
		return nil, err
	}
	if c.Fields, err = wire.ReadList(r, ReadField); err != nil {
		return nil, err
	}
	if c.Constructors, err = wire.ReadList(r, ReadConstructor); err != nil {
		return nil, err
	}
	if c.Procedures, err = wire.ReadList(r, readProcedureValue); err != nil {
		return nil, err
	}
	procCount := uint32(len(c.Procedures))

	if c.RedirectingFactories, err = wire.ReadList(r, ReadRedirectingFactory); err != nil {
		return nil, err
	}

	for i := uint32(0); i < procCount+1; i++ {
		if _, err := r.ReadU32(); err != nil {
			return nil, err
		}
	}
	size, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if size != procCount {
		return nil, wire.ClassIndexMismatch(int(procCount), int(size))
	}
	return c, nil
}
