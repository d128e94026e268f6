package component

import (
	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

var (
	FieldTag       = []byte{0x04}
	ConstructorTag = []byte{0x05}
	ProcedureTag   = []byte{0x06}
	ExtensionTag   = []byte{0x73}
)

// Field is a class or top-level variable declaration.
type Field struct {
	CanonicalName       ref.CanonicalNameRef
	CanonicalNameGetter ref.CanonicalNameRef
	CanonicalNameSetter ref.CanonicalNameRef
	FileURI             ref.UriRef
	FileRange           ast.FileRange
	Flags               flags.FieldFlags
	Name                ref.StringRef
	Annotations         []ast.Expr
	Typ                 ast.Type
	Initializer         *ast.Expr
}

func ReadField(r *wire.Reader) (Field, error) {
	var f Field
	if err := r.ReadMagic(FieldTag); err != nil {
		return Field{}, err
	}
	var err error
	if f.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Field{}, err
	}
	if f.CanonicalNameGetter, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Field{}, err
	}
	if f.CanonicalNameSetter, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Field{}, err
	}
	if f.FileURI, err = ref.ReadUriRef(r); err != nil {
		return Field{}, err
	}
	if f.FileRange, err = ast.ReadFileRange(r); err != nil {
		return Field{}, err
	}
	if f.Flags, err = flags.ReadFieldFlags(r); err != nil {
		return Field{}, err
	}
	if f.Name, err = ref.ReadStringRef(r); err != nil {
		return Field{}, err
	}
	if f.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return Field{}, err
	}
	if f.Typ, err = ast.ReadType(r); err != nil {
		return Field{}, err
	}
	if f.Initializer, err = wire.ReadOption(r, ast.ReadExpr); err != nil {
		return Field{}, err
	}
	return f, nil
}

func WriteField(w *wire.Writer, f Field) error {
	if err := w.WriteMagic(FieldTag); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, f.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, f.CanonicalNameGetter); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, f.CanonicalNameSetter); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, f.FileURI); err != nil {
		return err
	}
	if err := ast.WriteFileRange(w, f.FileRange); err != nil {
		return err
	}
	if err := flags.WriteFieldFlags(w, f.Flags); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, f.Name); err != nil {
		return err
	}
	if err := wire.WriteList(w, f.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := ast.WriteType(w, f.Typ); err != nil {
		return err
	}
	return wire.WriteOption(w, f.Initializer, ast.WriteExpr)
}

// Constructor is a class constructor: its signature function plus the
// initializer list that runs before the body.
type Constructor struct {
	CanonicalName   ref.CanonicalNameRef
	FileURI         ref.UriRef
	Offset          ast.FileOffset
	DefinitionRange ast.FileRange
	Flags           flags.ConstructorFlags
	Name            ref.CanonicalNameRef
	Annotations     []ast.Expr
	Function        *ast.Function
	Initializers    []ast.Initializer
}

func ReadConstructor(r *wire.Reader) (Constructor, error) {
	var c Constructor
	if err := r.ReadMagic(ConstructorTag); err != nil {
		return Constructor{}, err
	}
	var err error
	if c.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Constructor{}, err
	}
	if c.FileURI, err = ref.ReadUriRef(r); err != nil {
		return Constructor{}, err
	}
	if c.Offset, err = ast.ReadFileOffset(r); err != nil {
		return Constructor{}, err
	}
	if c.DefinitionRange, err = ast.ReadFileRange(r); err != nil {
		return Constructor{}, err
	}
	if c.Flags, err = flags.ReadConstructorFlags(r); err != nil {
		return Constructor{}, err
	}
	if c.Name, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Constructor{}, err
	}
	if c.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return Constructor{}, err
	}
	if c.Function, err = ast.ReadFunction(r); err != nil {
		return Constructor{}, err
	}
	if c.Initializers, err = wire.ReadList(r, ast.ReadInitializer); err != nil {
		return Constructor{}, err
	}
	return c, nil
}

func WriteConstructor(w *wire.Writer, c Constructor) error {
	if err := w.WriteMagic(ConstructorTag); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, c.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, c.FileURI); err != nil {
		return err
	}
	if err := ast.WriteFileOffset(w, c.Offset); err != nil {
		return err
	}
	if err := ast.WriteFileRange(w, c.DefinitionRange); err != nil {
		return err
	}
	if err := flags.WriteConstructorFlags(w, c.Flags); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, c.Name); err != nil {
		return err
	}
	if err := wire.WriteList(w, c.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := ast.WriteFunction(w, c.Function); err != nil {
		return err
	}
	return wire.WriteList(w, c.Initializers, ast.WriteInitializer)
}

// RedirectingFactory is a constructor that redirects to another. Its body
// is undocumented upstream (marked TODO there too); this package preserves
// the wire slot without interpreting any payload.
type RedirectingFactory struct{}

func ReadRedirectingFactory(r *wire.Reader) (RedirectingFactory, error) {
	return RedirectingFactory{}, nil
}

func WriteRedirectingFactory(w *wire.Writer, v RedirectingFactory) error {
	return nil
}

// Procedure is a method, getter, setter, operator or factory.
type Procedure struct {
	CanonicalName   ref.CanonicalNameRef
	FileURI         ref.UriRef
	Offset          ast.FileOffset
	DefinitionRange ast.FileRange
	Kind            ast.ProcedureKind
	StubKind        ast.ProcedureStubKind
	Flags           flags.ProcedureFlags
	Name            ref.StringRef
	Annotations     []ast.Expr
	StubTarget      ref.CanonicalNameRef
	SignatureType   *ast.FunctionType
	Function        *ast.Function
}

func ReadProcedure(r *wire.Reader) (*Procedure, error) {
	p := &Procedure{}
	if err := r.ReadMagic(ProcedureTag); err != nil {
		return nil, err
	}
	var err error
	if p.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return nil, err
	}
	if p.FileURI, err = ref.ReadUriRef(r); err != nil {
		return nil, err
	}
	if p.Offset, err = ast.ReadFileOffset(r); err != nil {
		return nil, err
	}
	if p.DefinitionRange, err = ast.ReadFileRange(r); err != nil {
		return nil, err
	}
	if p.Kind, err = ast.ReadProcedureKind(r); err != nil {
		return nil, err
	}
	if p.StubKind, err = ast.ReadProcedureStubKind(r); err != nil {
		return nil, err
	}
	if p.Flags, err = flags.ReadProcedureFlags(r); err != nil {
		return nil, err
	}
	if p.Name, err = ref.ReadStringRef(r); err != nil {
		return nil, err
	}
	if p.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return nil, err
	}
	if p.StubTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
		return nil, err
	}
	if p.SignatureType, err = wire.ReadOption(r, readFunctionTypeValue); err != nil {
		return nil, err
	}
	if p.Function, err = ast.ReadFunction(r); err != nil {
		return nil, err
	}
	return p, nil
}

func readProcedureValue(r *wire.Reader) (Procedure, error) {
	p, err := ReadProcedure(r)
	if err != nil {
		return Procedure{}, err
	}
	return *p, nil
}

func WriteProcedure(w *wire.Writer, p Procedure) error {
	if err := w.WriteMagic(ProcedureTag); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, p.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, p.FileURI); err != nil {
		return err
	}
	if err := ast.WriteFileOffset(w, p.Offset); err != nil {
		return err
	}
	if err := ast.WriteFileRange(w, p.DefinitionRange); err != nil {
		return err
	}
	if err := ast.WriteProcedureKind(w, p.Kind); err != nil {
		return err
	}
	if err := ast.WriteProcedureStubKind(w, p.StubKind); err != nil {
		return err
	}
	if err := flags.WriteProcedureFlags(w, p.Flags); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, p.Name); err != nil {
		return err
	}
	if err := wire.WriteList(w, p.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, p.StubTarget); err != nil {
		return err
	}
	if err := wire.WriteOption(w, p.SignatureType, writeFunctionTypeValue); err != nil {
		return err
	}
	return ast.WriteFunction(w, p.Function)
}

func readFunctionTypeValue(r *wire.Reader) (ast.FunctionType, error) {
	v, err := ast.ReadFunctionType(r)
	if err != nil {
		return ast.FunctionType{}, err
	}
	return *v, nil
}

func writeFunctionTypeValue(w *wire.Writer, v ast.FunctionType) error {
	return ast.WriteFunctionType(w, &v)
}

// Extension declares an `extension` block's member set over an on-type.
type Extension struct {
	CanonicalName   ref.CanonicalNameRef
	Name            ref.StringRef
	Annotations     []ast.Expr
	FileURI         ref.UriRef
	Offset          ast.FileOffset
	Flags           uint8
	TypeParams      []ast.TypeParameter
	OnType          ast.Type
	ShowHideClause  *ExtensionShowClause
}

func ReadExtension(r *wire.Reader) (Extension, error) {
	var e Extension
	if err := r.ReadMagic(ExtensionTag); err != nil {
		return Extension{}, err
	}
	var err error
	if e.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Extension{}, err
	}
	if e.Name, err = ref.ReadStringRef(r); err != nil {
		return Extension{}, err
	}
	if e.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return Extension{}, err
	}
	if e.FileURI, err = ref.ReadUriRef(r); err != nil {
		return Extension{}, err
	}
	if e.Offset, err = ast.ReadFileOffset(r); err != nil {
		return Extension{}, err
	}
	if e.Flags, err = r.ReadU8(); err != nil {
		return Extension{}, err
	}
	if e.TypeParams, err = wire.ReadList(r, ast.ReadTypeParameter); err != nil {
		return Extension{}, err
	}
	if e.OnType, err = ast.ReadType(r); err != nil {
		return Extension{}, err
	}
	if e.ShowHideClause, err = wire.ReadOption(r, ReadExtensionShowClause); err != nil {
		return Extension{}, err
	}
	return e, nil
}

func WriteExtension(w *wire.Writer, e Extension) error {
	if err := w.WriteMagic(ExtensionTag); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, e.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, e.Name); err != nil {
		return err
	}
	if err := wire.WriteList(w, e.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, e.FileURI); err != nil {
		return err
	}
	if err := ast.WriteFileOffset(w, e.Offset); err != nil {
		return err
	}
	if err := w.WriteU8(e.Flags); err != nil {
		return err
	}
	if err := wire.WriteList(w, e.TypeParams, ast.WriteTypeParameter); err != nil {
		return err
	}
	if err := ast.WriteType(w, e.OnType); err != nil {
		return err
	}
	return wire.WriteOption(w, e.ShowHideClause, WriteExtensionShowClause)
}

// ExtensionShowClause restricts which members an extension exposes; the
// upstream format leaves this shape undocumented (also a TODO there), so
// this package preserves the wire slot without interpreting any payload.
type ExtensionShowClause struct{}

func ReadExtensionShowClause(r *wire.Reader) (ExtensionShowClause, error) {
	return ExtensionShowClause{}, nil
}

func WriteExtensionShowClause(w *wire.Writer, v ExtensionShowClause) error {
	return nil
}

// Typedef is a type alias declaration, possibly generic over its own type
// parameters and, for a function-type alias, the function's parameters.
type Typedef struct {
	CanonicalName          ref.CanonicalNameRef
	FileURI                ref.UriRef
	Offset                 ast.FileOffset
	Name                   ref.StringRef
	Annotations            []ast.Expr
	TypeParams             []ast.TypeParameter
	Typ                    ast.Type
	TypeParamsOfFunction   []ast.TypeParameter
	PositionalParams       []*ast.VarDecl
	NamedParams            []*ast.VarDecl
}

func ReadTypedef(r *wire.Reader) (Typedef, error) {
	var t Typedef
	var err error
	if t.CanonicalName, err = ref.ReadCanonicalNameRef(r); err != nil {
		return Typedef{}, err
	}
	if t.FileURI, err = ref.ReadUriRef(r); err != nil {
		return Typedef{}, err
	}
	if t.Offset, err = ast.ReadFileOffset(r); err != nil {
		return Typedef{}, err
	}
	if t.Name, err = ref.ReadStringRef(r); err != nil {
		return Typedef{}, err
	}
	if t.Annotations, err = wire.ReadList(r, ast.ReadExpr); err != nil {
		return Typedef{}, err
	}
	if t.TypeParams, err = wire.ReadList(r, ast.ReadTypeParameter); err != nil {
		return Typedef{}, err
	}
	if t.Typ, err = ast.ReadType(r); err != nil {
		return Typedef{}, err
	}
	if t.TypeParamsOfFunction, err = wire.ReadList(r, ast.ReadTypeParameter); err != nil {
		return Typedef{}, err
	}
	if t.PositionalParams, err = wire.ReadList(r, ast.ReadVarDecl); err != nil {
		return Typedef{}, err
	}
	if t.NamedParams, err = wire.ReadList(r, ast.ReadVarDecl); err != nil {
		return Typedef{}, err
	}
	return t, nil
}

func WriteTypedef(w *wire.Writer, t Typedef) error {
	if err := ref.WriteCanonicalNameRef(w, t.CanonicalName); err != nil {
		return err
	}
	if err := ref.WriteUriRef(w, t.FileURI); err != nil {
		return err
	}
	if err := ast.WriteFileOffset(w, t.Offset); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, t.Name); err != nil {
		return err
	}
	if err := wire.WriteList(w, t.Annotations, ast.WriteExpr); err != nil {
		return err
	}
	if err := wire.WriteList(w, t.TypeParams, ast.WriteTypeParameter); err != nil {
		return err
	}
	if err := ast.WriteType(w, t.Typ); err != nil {
		return err
	}
	if err := wire.WriteList(w, t.TypeParamsOfFunction, ast.WriteTypeParameter); err != nil {
		return err
	}
	if err := wire.WriteList(w, t.PositionalParams, ast.WriteVarDecl); err != nil {
		return err
	}
	return wire.WriteList(w, t.NamedParams, ast.WriteVarDecl)
}

// Combinator is one `show`/`hide` clause of an import or export.
type Combinator struct {
	Flags flags.CombinatorFlags
	Names []ref.StringRef
}

func ReadCombinator(r *wire.Reader) (Combinator, error) {
	var c Combinator
	var err error
	if c.Flags, err = flags.ReadCombinatorFlags(r); err != nil {
		return Combinator{}, err
	}
	if c.Names, err = wire.ReadList(r, ref.ReadStringRef); err != nil {
		return Combinator{}, err
	}
	return c, nil
}

func WriteCombinator(w *wire.Writer, c Combinator) error {
	if err := flags.WriteCombinatorFlags(w, c.Flags); err != nil {
		return err
	}
	return wire.WriteList(w, c.Names, ref.WriteStringRef)
}
