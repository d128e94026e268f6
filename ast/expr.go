package ast

import (
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// Expr is the sum type over every expression shape (expr.rs's Expr enum).
type Expr interface {
	isExpr()
}

const (
	exprTagInvalid                   = 19
	exprTagVarGet                    = 20
	exprTagSpecializedVarGet0        = 128
	exprTagSpecializedVarGet7        = 135
	exprTagVarSet                    = 21
	exprTagSpecializedVarSet0        = 136
	exprTagSpecializedVarSet7        = 143
	exprTagSuperProp                 = 24 // shared by SuperPropGet/SuperPropSet; SuperPropSet wins decode.
	exprTagInstanceGet               = 118
	exprTagInstanceSet               = 119
	exprTagInstanceTearOff           = 121
	exprTagDynamicGet                = 122
	exprTagDynamicSet                = 123
	exprTagStaticGet                 = 26
	exprTagStaticSet                 = 27
	exprTagStaticTearOff             = 17
	exprTagConstructorTearOff        = 60
	exprTagRedirectingFactoryTearOff = 84
	exprTagTypedefTearOff            = 83
	exprTagInstanceInvoke            = 120
	exprTagInstanceGetterInvoke      = 89
	exprTagDynamicInvoke             = 124
	exprTagFunctionInvoke            = 125
	exprTagFunctionTearOff           = 126
	exprTagLocalFunctionInvoke       = 127
	exprTagSuperMethodInvoke         = 29
	exprTagStaticInvoke              = 30
	exprTagConstStaticInvoke         = 18
	exprTagConstructorInvoke         = 31
	exprTagConstConstructorInvoke    = 32
	exprTagEqualsNull                = 15
	exprTagEquals                    = 16
	exprTagNot                       = 33
	exprTagNullCheck                 = 117
	exprTagLogicalOp                 = 34
	exprTagConditional               = 35
	exprTagStringConcat              = 36
	exprTagListConcat                = 111
	exprTagSetConcat                 = 112
	exprTagMapConcatOrInstanceCreate = 113 // shared; InstanceCreate wins decode.
	exprTagFileUriLit                = 116
	exprTagIsInstanceOf               = 37
	exprTagAsInstanceOf               = 38
	exprTagStringLit                  = 39
	exprTagDoubleLit                  = 40
	exprTagTrueLit                    = 41
	exprTagFalseLit                   = 42
	exprTagNullLit                    = 43
	exprTagSymbolLit                  = 44
	exprTagTypeLit                    = 45
	exprTagThis                       = 46
	exprTagRethrow                    = 47
	exprTagThrow                      = 48
	exprTagListLit                    = 49
	exprTagSetLit                     = 109
	exprTagMapLit                     = 50
	exprTagAwait                      = 51
	exprTagFunction                   = 52
	exprTagLet                        = 53
	exprTagBlockExpr                  = 82
	exprTagInstantiation              = 54
	exprTagLoadLibrary                = 14
	exprTagCheckLibraryIsLoaded       = 13
	exprTagConstant                   = 106
)

type ExprInvalid struct {
	Offset     FileOffset
	Message    ref.StringRef
	Expression *Expr
}

type ExprVarGet struct {
	Offset          FileOffset
	VarDeclPosition uint32
	Var             ref.VarRef
	PromotedType    *Type
}

type ExprVarSet struct {
	Offset          FileOffset
	VarDeclPosition uint32
	Var             ref.VarRef
	Value           Expr
}

// ExprSuperPropGet models the wire-colliding variant for completeness, even
// though decode of tag 24 always produces ExprSuperPropSet (see ReadExpr)
// and WriteExpr refuses to encode this variant at all.
type ExprSuperPropGet struct {
	Offset                 FileOffset
	Name                   ref.StringRef
	InterfaceTarget        ref.CanonicalNameRef
	InterfaceTargetOrigin  ref.CanonicalNameRef
}

type ExprSuperPropSet struct {
	Offset                FileOffset
	Name                  ref.StringRef
	Value                 Expr
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprInstanceGet struct {
	Kind                  InstanceAccessKind
	Offset                FileOffset
	Receiver              Expr
	Name                  ref.StringRef
	Typ                   Type
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprInstanceSet struct {
	Kind                  InstanceAccessKind
	Offset                FileOffset
	Receiver              Expr
	Name                  ref.StringRef
	Value                 Expr
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprInstanceTearOff struct {
	Kind                  InstanceAccessKind
	Offset                FileOffset
	Receiver              Expr
	Name                  ref.StringRef
	Typ                   Type
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprDynamicGet struct {
	Kind     DynamicAccessKind
	Offset   FileOffset
	Receiver Expr
	Name     ref.StringRef
}

type ExprDynamicSet struct {
	Kind     DynamicAccessKind
	Offset   FileOffset
	Receiver Expr
	Name     ref.StringRef
	Value    Expr
}

type ExprStaticGet struct {
	Offset FileOffset
	Target ref.CanonicalNameRef
}

type ExprStaticSet struct {
	Offset FileOffset
	Target ref.CanonicalNameRef
	Value  Expr
}

type ExprStaticTearOff struct {
	Offset FileOffset
	Target ref.CanonicalNameRef
}

type ExprConstructorTearOff struct {
	Offset FileOffset
	Target ref.CanonicalNameRef
}

type ExprRedirectingFactoryTearOff struct {
	Offset FileOffset
	Target ref.CanonicalNameRef
}

type ExprTypedefTearOff struct {
	TypeParams []TypeParameter
	Expr       Expr
	TypeArgs   []Type
}

type ExprInstanceInvoke struct {
	Kind                  InstanceAccessKind
	Flags                 flags.InvocationFlags
	Offset                FileOffset
	Receiver              Expr
	Name                  ref.StringRef
	Arguments             *Arguments
	FunctionType          Type
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprInstanceGetterInvoke struct {
	Kind                  InstanceAccessKind
	Flags                 flags.InvocationFlags
	Offset                FileOffset
	Receiver              Expr
	Name                  ref.StringRef
	Arguments             *Arguments
	FunctionType          Type
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprDynamicInvoke struct {
	Kind      DynamicAccessKind
	Offset    FileOffset
	Receiver  Expr
	Name      ref.StringRef
	Arguments *Arguments
}

type ExprFunctionInvoke struct {
	Kind         FunctionAccessKind
	Offset       FileOffset
	Receiver     Expr
	Arguments    *Arguments
	FunctionType Type
}

type ExprFunctionTearOff struct {
	Offset   FileOffset
	Receiver Expr
}

type ExprLocalFunctionInvoke struct {
	Offset          FileOffset
	VarDeclPosition uint32
	VarRef          ref.VarRef
	Arguments       *Arguments
	FunctionType    Type
}

type ExprSuperMethodInvoke struct {
	Offset                FileOffset
	Name                  ref.StringRef
	Arguments             *Arguments
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprStaticInvoke struct {
	Offset    FileOffset
	Target    ref.CanonicalNameRef
	Arguments *Arguments
}

type ExprConstStaticInvoke struct {
	Offset    FileOffset
	Target    ref.CanonicalNameRef
	Arguments *Arguments
}

type ExprConstructorInvoke struct {
	Offset      FileOffset
	Constructor ref.CanonicalNameRef
	Arguments   *Arguments
}

type ExprConstConstructorInvoke struct {
	Offset      FileOffset
	Constructor ref.CanonicalNameRef
	Arguments   *Arguments
}

type ExprEqualsNull struct {
	Offset FileOffset
	Expr   Expr
}

type ExprEquals struct {
	Offset                FileOffset
	Left                  Expr
	Right                 Expr
	FunctionType          Type
	InterfaceTarget       ref.CanonicalNameRef
	InterfaceTargetOrigin ref.CanonicalNameRef
}

type ExprNot struct{ Operand Expr }

type ExprNullCheck struct {
	Offset  FileOffset
	Operand Expr
}

type ExprLogicalOp struct {
	Left     Expr
	Operator LogicalOp
	Right    Expr
}

type ExprConditional struct {
	Condition  Expr
	Then       Expr
	Otherwise  Expr
	StaticType *Type
}

type ExprStringConcat struct {
	Offset      FileOffset
	Expressions []Expr
}

type ExprListConcat struct {
	Offset      FileOffset
	TypeArg     Type
	Expressions []Expr
}

type ExprSetConcat struct {
	Offset      FileOffset
	TypeArg     Type
	Expressions []Expr
}

// ExprMapConcat models the wire-colliding variant for completeness, even
// though decode of tag 113 always produces ExprInstanceCreate — see ReadExpr.
type ExprMapConcat struct {
	Offset      FileOffset
	KeyType     Type
	ValueType   Type
	Expressions []Expr
}

type ExprInstanceCreate struct{ Value *InstanceCreate }

type ExprFileUriLit struct {
	FileURI    ref.UriRef
	Offset     FileOffset
	Expression Expr
}

type ExprIsInstanceOf struct {
	Offset  FileOffset
	Flags   uint8
	Operand Expr
	Typ     Type
}

type ExprAsInstanceOf struct {
	Offset  FileOffset
	Flags   flags.DynamicCastFlags
	Operand Expr
	Typ     Type
}

type ExprStringLit struct{ Value ref.StringRef }
type ExprIntLit struct{ Value IntLit }
type ExprDoubleLit struct{ Value float64 }
type ExprTrueLit struct{}
type ExprFalseLit struct{}
type ExprNullLit struct{}
type ExprSymbolLit struct{ Value ref.StringRef }
type ExprTypeLit struct{ Value Type }
type ExprThis struct{}
type ExprRethrow struct{ Offset FileOffset }
type ExprThrow struct {
	Offset FileOffset
	Expr   Expr
}

type ExprListLit struct {
	Offset       FileOffset
	TypeArgument Type
	Values       []Expr
}

type ExprSetLit struct {
	Offset       FileOffset
	TypeArgument Type
	Values       []Expr
}

type ExprMapLit struct {
	Offset    FileOffset
	KeyType   Type
	ValueType Type
	Values    []LabeledExpr[Expr]
}

type ExprAwait struct{ Value Expr }

type ExprFunction struct {
	Offset FileOffset
	Func   *Function
}

type ExprLet struct {
	Offset FileOffset
	Var    *VarDecl
	Body   Expr
}

type ExprBlockExpr struct {
	Body  []Stmt
	Value Expr
}

type ExprInstantiation struct {
	Expr     Expr
	TypeArgs []Type
}

type ExprLoadLibrary struct{ Dependency ref.DependencyRef }
type ExprCheckLibraryIsLoaded struct{ Dependency ref.DependencyRef }

type ExprConstant struct {
	Offset   FileOffset
	Typ      Type
	Constant ref.ConstantRef
}

func (ExprInvalid) isExpr()                   {}
func (ExprVarGet) isExpr()                    {}
func (ExprVarSet) isExpr()                    {}
func (ExprSuperPropGet) isExpr()              {}
func (ExprSuperPropSet) isExpr()              {}
func (ExprInstanceGet) isExpr()               {}
func (ExprInstanceSet) isExpr()               {}
func (ExprInstanceTearOff) isExpr()           {}
func (ExprDynamicGet) isExpr()                {}
func (ExprDynamicSet) isExpr()                {}
func (ExprStaticGet) isExpr()                 {}
func (ExprStaticSet) isExpr()                 {}
func (ExprStaticTearOff) isExpr()             {}
func (ExprConstructorTearOff) isExpr()        {}
func (ExprRedirectingFactoryTearOff) isExpr() {}
func (ExprTypedefTearOff) isExpr()            {}
func (ExprInstanceInvoke) isExpr()            {}
func (ExprInstanceGetterInvoke) isExpr()      {}
func (ExprDynamicInvoke) isExpr()             {}
func (ExprFunctionInvoke) isExpr()            {}
func (ExprFunctionTearOff) isExpr()           {}
func (ExprLocalFunctionInvoke) isExpr()       {}
func (ExprSuperMethodInvoke) isExpr()         {}
func (ExprStaticInvoke) isExpr()              {}
func (ExprConstStaticInvoke) isExpr()         {}
func (ExprConstructorInvoke) isExpr()         {}
func (ExprConstConstructorInvoke) isExpr()    {}
func (ExprEqualsNull) isExpr()                {}
func (ExprEquals) isExpr()                    {}
func (ExprNot) isExpr()                       {}
func (ExprNullCheck) isExpr()                 {}
func (ExprLogicalOp) isExpr()                 {}
func (ExprConditional) isExpr()               {}
func (ExprStringConcat) isExpr()              {}
func (ExprListConcat) isExpr()                {}
func (ExprSetConcat) isExpr()                 {}
func (ExprMapConcat) isExpr()                 {}
func (ExprInstanceCreate) isExpr()            {}
func (ExprFileUriLit) isExpr()                {}
func (ExprIsInstanceOf) isExpr()              {}
func (ExprAsInstanceOf) isExpr()              {}
func (ExprStringLit) isExpr()                 {}
func (ExprIntLit) isExpr()                    {}
func (ExprDoubleLit) isExpr()                 {}
func (ExprTrueLit) isExpr()                   {}
func (ExprFalseLit) isExpr()                  {}
func (ExprNullLit) isExpr()                   {}
func (ExprSymbolLit) isExpr()                 {}
func (ExprTypeLit) isExpr()                   {}
func (ExprThis) isExpr()                      {}
func (ExprRethrow) isExpr()                   {}
func (ExprThrow) isExpr()                     {}
func (ExprListLit) isExpr()                   {}
func (ExprSetLit) isExpr()                    {}
func (ExprMapLit) isExpr()                    {}
func (ExprAwait) isExpr()                     {}
func (ExprFunction) isExpr()                  {}
func (ExprLet) isExpr()                       {}
func (ExprBlockExpr) isExpr()                 {}
func (ExprInstantiation) isExpr()             {}
func (ExprLoadLibrary) isExpr()               {}
func (ExprCheckLibraryIsLoaded) isExpr()      {}
func (ExprConstant) isExpr()                  {}

// ReadExpr decodes one Expr node, including its leading tag byte. The
// specialized var-get/var-set opcodes (128-143) canonicalize straight to
// ExprVarGet/ExprVarSet; the int-literal opcodes (specialized -3..4,
// Pos/Neg/Big) canonicalize to ExprIntLit.
func ReadExpr(r *wire.Reader) (Expr, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if IsIntLitTag(tag) {
		lit, err := ReadIntLitBody(r, tag)
		return ExprIntLit{Value: lit}, err
	}
	if tag >= exprTagSpecializedVarGet0 && tag <= exprTagSpecializedVarGet7 {
		offset, err := ReadFileOffset(r)
		if err != nil {
			return nil, err
		}
		declPos, err := r.DecodeVarUint()
		if err != nil {
			return nil, err
		}
		return ExprVarGet{Offset: offset, VarDeclPosition: declPos, Var: ref.VarRef(tag - exprTagSpecializedVarGet0)}, nil
	}
	if tag >= exprTagSpecializedVarSet0 && tag <= exprTagSpecializedVarSet7 {
		offset, err := ReadFileOffset(r)
		if err != nil {
			return nil, err
		}
		declPos, err := r.DecodeVarUint()
		if err != nil {
			return nil, err
		}
		value, err := ReadExpr(r)
		if err != nil {
			return nil, err
		}
		return ExprVarSet{Offset: offset, VarDeclPosition: declPos, Var: ref.VarRef(tag - exprTagSpecializedVarSet0), Value: value}, nil
	}

	switch tag {
	case exprTagInvalid:
		var v ExprInvalid
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Message, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Expression, err = wire.ReadOption(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagVarGet:
		var v ExprVarGet
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.VarDeclPosition, err = r.DecodeVarUint(); err != nil {
			return nil, err
		}
		if v.Var, err = ref.ReadVarRef(r); err != nil {
			return nil, err
		}
		if v.PromotedType, err = wire.ReadOption(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagVarSet:
		var v ExprVarSet
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.VarDeclPosition, err = r.DecodeVarUint(); err != nil {
			return nil, err
		}
		if v.Var, err = ref.ReadVarRef(r); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagSuperProp:
		// Wire collision (spec-documented): decode always resolves to the
		// last-declared Rust variant, SuperPropSet.
		var v ExprSuperPropSet
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagInstanceGet:
		var v ExprInstanceGet
		if v.Kind, err = ReadInstanceAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagInstanceSet:
		var v ExprInstanceSet
		if v.Kind, err = ReadInstanceAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagInstanceTearOff:
		var v ExprInstanceTearOff
		if v.Kind, err = ReadInstanceAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagDynamicGet:
		var v ExprDynamicGet
		if v.Kind, err = ReadDynamicAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagDynamicSet:
		var v ExprDynamicSet
		if v.Kind, err = ReadDynamicAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagStaticGet:
		var v ExprStaticGet
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagStaticSet:
		var v ExprStaticSet
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagStaticTearOff:
		var v ExprStaticTearOff
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagConstructorTearOff:
		var v ExprConstructorTearOff
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagRedirectingFactoryTearOff:
		var v ExprRedirectingFactoryTearOff
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagTypedefTearOff:
		var v ExprTypedefTearOff
		if v.TypeParams, err = wire.ReadList(r, ReadTypeParameter); err != nil {
			return nil, err
		}
		if v.Expr, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagInstanceInvoke:
		var v ExprInstanceInvoke
		if v.Kind, err = ReadInstanceAccessKind(r); err != nil {
			return nil, err
		}
		if v.Flags, err = flags.ReadInvocationFlags(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		if v.FunctionType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagInstanceGetterInvoke:
		var v ExprInstanceGetterInvoke
		if v.Kind, err = ReadInstanceAccessKind(r); err != nil {
			return nil, err
		}
		if v.Flags, err = flags.ReadInvocationFlags(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		if v.FunctionType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagDynamicInvoke:
		var v ExprDynamicInvoke
		if v.Kind, err = ReadDynamicAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagFunctionInvoke:
		var v ExprFunctionInvoke
		if v.Kind, err = ReadFunctionAccessKind(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		if v.FunctionType, err = ReadType(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagFunctionTearOff:
		var v ExprFunctionTearOff
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Receiver, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagLocalFunctionInvoke:
		var v ExprLocalFunctionInvoke
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.VarDeclPosition, err = r.DecodeVarUint(); err != nil {
			return nil, err
		}
		if v.VarRef, err = ref.ReadVarRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		if v.FunctionType, err = ReadType(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagSuperMethodInvoke:
		var v ExprSuperMethodInvoke
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagStaticInvoke:
		var v ExprStaticInvoke
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagConstStaticInvoke:
		var v ExprConstStaticInvoke
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Target, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagConstructorInvoke:
		var v ExprConstructorInvoke
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Constructor, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagConstConstructorInvoke:
		var v ExprConstConstructorInvoke
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Constructor, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Arguments, err = ReadArguments(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagEqualsNull:
		var v ExprEqualsNull
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Expr, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagEquals:
		var v ExprEquals
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Left, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Right, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.FunctionType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.InterfaceTarget, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.InterfaceTargetOrigin, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagNot:
		var v ExprNot
		if v.Operand, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagNullCheck:
		var v ExprNullCheck
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Operand, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagLogicalOp:
		var v ExprLogicalOp
		if v.Left, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Operator, err = ReadLogicalOp(r); err != nil {
			return nil, err
		}
		if v.Right, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagConditional:
		var v ExprConditional
		if v.Condition, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Then, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Otherwise, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.StaticType, err = wire.ReadOption(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagStringConcat:
		var v ExprStringConcat
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Expressions, err = wire.ReadList(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagListConcat:
		var v ExprListConcat
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.TypeArg, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Expressions, err = wire.ReadList(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagSetConcat:
		var v ExprSetConcat
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.TypeArg, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Expressions, err = wire.ReadList(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagMapConcatOrInstanceCreate:
		// Wire collision (spec-documented): decode always resolves to the
		// last-declared Rust variant, the boxed InstanceCreate.
		inner, err := ReadInstanceCreate(r)
		if err != nil {
			return nil, err
		}
		return ExprInstanceCreate{Value: inner}, nil
	case exprTagFileUriLit:
		var v ExprFileUriLit
		if v.FileURI, err = ref.ReadUriRef(r); err != nil {
			return nil, err
		}
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Expression, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagIsInstanceOf:
		var v ExprIsInstanceOf
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Flags, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Operand, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagAsInstanceOf:
		var v ExprAsInstanceOf
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Flags, err = flags.ReadDynamicCastFlags(r); err != nil {
			return nil, err
		}
		if v.Operand, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagStringLit:
		sr, err := ref.ReadStringRef(r)
		return ExprStringLit{Value: sr}, err
	case exprTagDoubleLit:
		f, err := r.ReadF64()
		return ExprDoubleLit{Value: f}, err
	case exprTagTrueLit:
		return ExprTrueLit{}, nil
	case exprTagFalseLit:
		return ExprFalseLit{}, nil
	case exprTagNullLit:
		return ExprNullLit{}, nil
	case exprTagSymbolLit:
		sr, err := ref.ReadStringRef(r)
		return ExprSymbolLit{Value: sr}, err
	case exprTagTypeLit:
		t, err := ReadType(r)
		return ExprTypeLit{Value: t}, err
	case exprTagThis:
		return ExprThis{}, nil
	case exprTagRethrow:
		o, err := ReadFileOffset(r)
		return ExprRethrow{Offset: o}, err
	case exprTagThrow:
		var v ExprThrow
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Expr, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagListLit:
		var v ExprListLit
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.TypeArgument, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagSetLit:
		var v ExprSetLit
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.TypeArgument, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagMapLit:
		var v ExprMapLit
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.KeyType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.ValueType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, func(r *wire.Reader) (LabeledExpr[Expr], error) {
			return ReadLabeledExpr(r, ReadExpr)
		}); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagAwait:
		inner, err := ReadExpr(r)
		return ExprAwait{Value: inner}, err
	case exprTagFunction:
		var v ExprFunction
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Func, err = ReadFunction(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagLet:
		var v ExprLet
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Var, err = ReadVarDecl(r); err != nil {
			return nil, err
		}
		if v.Body, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagBlockExpr:
		var v ExprBlockExpr
		if v.Body, err = wire.ReadList(r, ReadStmt); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagInstantiation:
		var v ExprInstantiation
		if v.Expr, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case exprTagLoadLibrary:
		d, err := ref.ReadDependencyRef(r)
		return ExprLoadLibrary{Dependency: d}, err
	case exprTagCheckLibraryIsLoaded:
		d, err := ref.ReadDependencyRef(r)
		return ExprCheckLibraryIsLoaded{Dependency: d}, err
	case exprTagConstant:
		var v ExprConstant
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Constant, err = ref.ReadConstantRef(r); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, wire.UnknownTag("Expr", tag)
	}
}

// WriteExpr encodes one Expr node, including its leading tag byte. Var set
// emits the specialized opcode when the variable index fits 0..7; var get
// does the same only when it carries no promoted type, matching this implementation's choice to keep writer output compact
// the way original_source's own examples rely on terse builder output.
func WriteExpr(w *wire.Writer, e Expr) error {
	switch v := e.(type) {
	case ExprInvalid:
		if err := w.WriteU8(exprTagInvalid); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Message); err != nil {
			return err
		}
		return wire.WriteOption(w, v.Expression, WriteExpr)
	case ExprVarGet:
		if v.PromotedType == nil && v.Var < 8 {
			if err := w.WriteU8(exprTagSpecializedVarGet0 + uint8(v.Var)); err != nil {
				return err
			}
			if err := WriteFileOffset(w, v.Offset); err != nil {
				return err
			}
			return w.EncodeVarUint(v.VarDeclPosition)
		}
		if err := w.WriteU8(exprTagVarGet); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := w.EncodeVarUint(v.VarDeclPosition); err != nil {
			return err
		}
		if err := ref.WriteVarRef(w, v.Var); err != nil {
			return err
		}
		return wire.WriteOption(w, v.PromotedType, WriteType)
	case ExprVarSet:
		if v.Var < 8 {
			if err := w.WriteU8(exprTagSpecializedVarSet0 + uint8(v.Var)); err != nil {
				return err
			}
			if err := WriteFileOffset(w, v.Offset); err != nil {
				return err
			}
			if err := w.EncodeVarUint(v.VarDeclPosition); err != nil {
				return err
			}
			return WriteExpr(w, v.Value)
		}
		if err := w.WriteU8(exprTagVarSet); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := w.EncodeVarUint(v.VarDeclPosition); err != nil {
			return err
		}
		if err := ref.WriteVarRef(w, v.Var); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case ExprSuperPropGet:
		// Tag 24 is shared with ExprSuperPropSet and decode always resolves it
		// to Set (see ReadExpr), so a Get written here could never be read
		// back as a Get — refuse rather than emit a container the reader
		// would silently misinterpret.
		return wire.Unrepresentable("ExprSuperPropGet shares tag 24 with ExprSuperPropSet, which always wins on decode")
	case ExprSuperPropSet:
		if err := w.WriteU8(exprTagSuperProp); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Value); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprInstanceGet:
		if err := w.WriteU8(exprTagInstanceGet); err != nil {
			return err
		}
		if err := WriteInstanceAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteType(w, v.Typ); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprInstanceSet:
		if err := w.WriteU8(exprTagInstanceSet); err != nil {
			return err
		}
		if err := WriteInstanceAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Value); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprInstanceTearOff:
		if err := w.WriteU8(exprTagInstanceTearOff); err != nil {
			return err
		}
		if err := WriteInstanceAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteType(w, v.Typ); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprDynamicGet:
		if err := w.WriteU8(exprTagDynamicGet); err != nil {
			return err
		}
		if err := WriteDynamicAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		return ref.WriteStringRef(w, v.Name)
	case ExprDynamicSet:
		if err := w.WriteU8(exprTagDynamicSet); err != nil {
			return err
		}
		if err := WriteDynamicAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case ExprStaticGet:
		if err := w.WriteU8(exprTagStaticGet); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.Target)
	case ExprStaticSet:
		if err := w.WriteU8(exprTagStaticSet); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Target); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case ExprStaticTearOff:
		if err := w.WriteU8(exprTagStaticTearOff); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.Target)
	case ExprConstructorTearOff:
		if err := w.WriteU8(exprTagConstructorTearOff); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.Target)
	case ExprRedirectingFactoryTearOff:
		if err := w.WriteU8(exprTagRedirectingFactoryTearOff); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.Target)
	case ExprTypedefTearOff:
		if err := w.WriteU8(exprTagTypedefTearOff); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.TypeParams, WriteTypeParameter); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Expr); err != nil {
			return err
		}
		return wire.WriteList(w, v.TypeArgs, WriteType)
	case ExprInstanceInvoke:
		if err := w.WriteU8(exprTagInstanceInvoke); err != nil {
			return err
		}
		if err := WriteInstanceAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := flags.WriteInvocationFlags(w, v.Flags); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteArguments(w, v.Arguments); err != nil {
			return err
		}
		if err := WriteType(w, v.FunctionType); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprInstanceGetterInvoke:
		if err := w.WriteU8(exprTagInstanceGetterInvoke); err != nil {
			return err
		}
		if err := WriteInstanceAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := flags.WriteInvocationFlags(w, v.Flags); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteArguments(w, v.Arguments); err != nil {
			return err
		}
		if err := WriteType(w, v.FunctionType); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprDynamicInvoke:
		if err := w.WriteU8(exprTagDynamicInvoke); err != nil {
			return err
		}
		if err := WriteDynamicAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case ExprFunctionInvoke:
		if err := w.WriteU8(exprTagFunctionInvoke); err != nil {
			return err
		}
		if err := WriteFunctionAccessKind(w, v.Kind); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Receiver); err != nil {
			return err
		}
		if err := WriteArguments(w, v.Arguments); err != nil {
			return err
		}
		return WriteType(w, v.FunctionType)
	case ExprFunctionTearOff:
		if err := w.WriteU8(exprTagFunctionTearOff); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return WriteExpr(w, v.Receiver)
	case ExprLocalFunctionInvoke:
		if err := w.WriteU8(exprTagLocalFunctionInvoke); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := w.EncodeVarUint(v.VarDeclPosition); err != nil {
			return err
		}
		if err := ref.WriteVarRef(w, v.VarRef); err != nil {
			return err
		}
		if err := WriteArguments(w, v.Arguments); err != nil {
			return err
		}
		return WriteType(w, v.FunctionType)
	case ExprSuperMethodInvoke:
		if err := w.WriteU8(exprTagSuperMethodInvoke); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteStringRef(w, v.Name); err != nil {
			return err
		}
		if err := WriteArguments(w, v.Arguments); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprStaticInvoke:
		if err := w.WriteU8(exprTagStaticInvoke); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Target); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case ExprConstStaticInvoke:
		if err := w.WriteU8(exprTagConstStaticInvoke); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Target); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case ExprConstructorInvoke:
		if err := w.WriteU8(exprTagConstructorInvoke); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Constructor); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case ExprConstConstructorInvoke:
		if err := w.WriteU8(exprTagConstConstructorInvoke); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Constructor); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case ExprEqualsNull:
		if err := w.WriteU8(exprTagEqualsNull); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return WriteExpr(w, v.Expr)
	case ExprEquals:
		if err := w.WriteU8(exprTagEquals); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Left); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Right); err != nil {
			return err
		}
		if err := WriteType(w, v.FunctionType); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.InterfaceTarget); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.InterfaceTargetOrigin)
	case ExprNot:
		if err := w.WriteU8(exprTagNot); err != nil {
			return err
		}
		return WriteExpr(w, v.Operand)
	case ExprNullCheck:
		if err := w.WriteU8(exprTagNullCheck); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return WriteExpr(w, v.Operand)
	case ExprLogicalOp:
		if err := w.WriteU8(exprTagLogicalOp); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Left); err != nil {
			return err
		}
		if err := WriteLogicalOp(w, v.Operator); err != nil {
			return err
		}
		return WriteExpr(w, v.Right)
	case ExprConditional:
		if err := w.WriteU8(exprTagConditional); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Condition); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Then); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Otherwise); err != nil {
			return err
		}
		return wire.WriteOption(w, v.StaticType, WriteType)
	case ExprStringConcat:
		if err := w.WriteU8(exprTagStringConcat); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return wire.WriteList(w, v.Expressions, WriteExpr)
	case ExprListConcat:
		if err := w.WriteU8(exprTagListConcat); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.TypeArg); err != nil {
			return err
		}
		return wire.WriteList(w, v.Expressions, WriteExpr)
	case ExprSetConcat:
		if err := w.WriteU8(exprTagSetConcat); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.TypeArg); err != nil {
			return err
		}
		return wire.WriteList(w, v.Expressions, WriteExpr)
	case ExprMapConcat:
		if err := w.WriteU8(exprTagMapConcatOrInstanceCreate); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.KeyType); err != nil {
			return err
		}
		if err := WriteType(w, v.ValueType); err != nil {
			return err
		}
		return wire.WriteList(w, v.Expressions, WriteExpr)
	case ExprInstanceCreate:
		if err := w.WriteU8(exprTagMapConcatOrInstanceCreate); err != nil {
			return err
		}
		return WriteInstanceCreate(w, v.Value)
	case ExprFileUriLit:
		if err := w.WriteU8(exprTagFileUriLit); err != nil {
			return err
		}
		if err := ref.WriteUriRef(w, v.FileURI); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return WriteExpr(w, v.Expression)
	case ExprIsInstanceOf:
		if err := w.WriteU8(exprTagIsInstanceOf); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := w.WriteU8(v.Flags); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Operand); err != nil {
			return err
		}
		return WriteType(w, v.Typ)
	case ExprAsInstanceOf:
		if err := w.WriteU8(exprTagAsInstanceOf); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := flags.WriteDynamicCastFlags(w, v.Flags); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Operand); err != nil {
			return err
		}
		return WriteType(w, v.Typ)
	case ExprStringLit:
		if err := w.WriteU8(exprTagStringLit); err != nil {
			return err
		}
		return ref.WriteStringRef(w, v.Value)
	case ExprIntLit:
		return WriteIntLit(w, v.Value)
	case ExprDoubleLit:
		if err := w.WriteU8(exprTagDoubleLit); err != nil {
			return err
		}
		return w.WriteF64(v.Value)
	case ExprTrueLit:
		return w.WriteU8(exprTagTrueLit)
	case ExprFalseLit:
		return w.WriteU8(exprTagFalseLit)
	case ExprNullLit:
		return w.WriteU8(exprTagNullLit)
	case ExprSymbolLit:
		if err := w.WriteU8(exprTagSymbolLit); err != nil {
			return err
		}
		return ref.WriteStringRef(w, v.Value)
	case ExprTypeLit:
		if err := w.WriteU8(exprTagTypeLit); err != nil {
			return err
		}
		return WriteType(w, v.Value)
	case ExprThis:
		return w.WriteU8(exprTagThis)
	case ExprRethrow:
		if err := w.WriteU8(exprTagRethrow); err != nil {
			return err
		}
		return WriteFileOffset(w, v.Offset)
	case ExprThrow:
		if err := w.WriteU8(exprTagThrow); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return WriteExpr(w, v.Expr)
	case ExprListLit:
		if err := w.WriteU8(exprTagListLit); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.TypeArgument); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, WriteExpr)
	case ExprSetLit:
		if err := w.WriteU8(exprTagSetLit); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.TypeArgument); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, WriteExpr)
	case ExprMapLit:
		if err := w.WriteU8(exprTagMapLit); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.KeyType); err != nil {
			return err
		}
		if err := WriteType(w, v.ValueType); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, func(w *wire.Writer, v LabeledExpr[Expr]) error {
			return WriteLabeledExpr(w, v, WriteExpr)
		})
	case ExprAwait:
		if err := w.WriteU8(exprTagAwait); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case ExprFunction:
		if err := w.WriteU8(exprTagFunction); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return WriteFunction(w, v.Func)
	case ExprLet:
		if err := w.WriteU8(exprTagLet); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteVarDecl(w, v.Var); err != nil {
			return err
		}
		return WriteExpr(w, v.Body)
	case ExprBlockExpr:
		if err := w.WriteU8(exprTagBlockExpr); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.Body, WriteStmt); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case ExprInstantiation:
		if err := w.WriteU8(exprTagInstantiation); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Expr); err != nil {
			return err
		}
		return wire.WriteList(w, v.TypeArgs, WriteType)
	case ExprLoadLibrary:
		if err := w.WriteU8(exprTagLoadLibrary); err != nil {
			return err
		}
		return ref.WriteDependencyRef(w, v.Dependency)
	case ExprCheckLibraryIsLoaded:
		if err := w.WriteU8(exprTagCheckLibraryIsLoaded); err != nil {
			return err
		}
		return ref.WriteDependencyRef(w, v.Dependency)
	case ExprConstant:
		if err := w.WriteU8(exprTagConstant); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteType(w, v.Typ); err != nil {
			return err
		}
		return ref.WriteConstantRef(w, v.Constant)
	default:
		return wire.UnknownTag("Expr", 0)
	}
}
