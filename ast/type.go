package ast

import (
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// Type is the sum type over every shape a static type can take (node.rs's
// Type enum). Each concrete type below implements it with a private marker
// method, so only this package's own variants satisfy it.
type Type interface {
	isType()
}

const (
	typeTagNever            = 98
	typeTagInvalid          = 90
	typeTagDynamic          = 91
	typeTagVoid             = 92
	typeTagGenericInterface = 93
	typeTagInterface        = 96
	typeTagGenericFunction  = 94
	typeTagFunction         = 97
	typeTagTypeParam        = 95
)

type TypeNever struct{ Nullable Nullable }
type TypeInvalid struct{}
type TypeDynamic struct{}
type TypeVoid struct{}

type TypeGenericInterface struct {
	Nullable Nullable
	Class    ref.CanonicalNameRef
	TypeArgs []Type
}

type TypeInterface struct {
	Nullable Nullable
	Class    ref.CanonicalNameRef
}

type TypeGenericFunction struct{ Func *FunctionType }

type TypeFunction struct {
	Nullable         Nullable
	PositionalParams []Type
	ReturnType       Type
}

type TypeParam struct {
	Nullable Nullable
	Index    uint32
	Bound    *Type
}

func (TypeNever) isType()            {}
func (TypeInvalid) isType()          {}
func (TypeDynamic) isType()          {}
func (TypeVoid) isType()             {}
func (TypeGenericInterface) isType() {}
func (TypeInterface) isType()        {}
func (TypeGenericFunction) isType()  {}
func (TypeFunction) isType()         {}
func (TypeParam) isType()            {}

// ReadType decodes one Type node, including its leading tag byte.
func ReadType(r *wire.Reader) (Type, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case typeTagNever:
		n, err := ReadNullable(r)
		return TypeNever{Nullable: n}, err
	case typeTagInvalid:
		return TypeInvalid{}, nil
	case typeTagDynamic:
		return TypeDynamic{}, nil
	case typeTagVoid:
		return TypeVoid{}, nil
	case typeTagGenericInterface:
		var v TypeGenericInterface
		if v.Nullable, err = ReadNullable(r); err != nil {
			return nil, err
		}
		if v.Class, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case typeTagInterface:
		var v TypeInterface
		if v.Nullable, err = ReadNullable(r); err != nil {
			return nil, err
		}
		if v.Class, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case typeTagGenericFunction:
		ft, err := ReadFunctionType(r)
		if err != nil {
			return nil, err
		}
		return TypeGenericFunction{Func: ft}, nil
	case typeTagFunction:
		var v TypeFunction
		if v.Nullable, err = ReadNullable(r); err != nil {
			return nil, err
		}
		if v.PositionalParams, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		if v.ReturnType, err = ReadType(r); err != nil {
			return nil, err
		}
		return v, nil
	case typeTagTypeParam:
		var v TypeParam
		if v.Nullable, err = ReadNullable(r); err != nil {
			return nil, err
		}
		idx, err := r.DecodeVarUint()
		if err != nil {
			return nil, err
		}
		v.Index = idx
		if v.Bound, err = wire.ReadOption(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, wire.UnknownTag("Type", tag)
	}
}

// WriteType encodes one Type node, including its leading tag byte.
func WriteType(w *wire.Writer, t Type) error {
	switch v := t.(type) {
	case TypeNever:
		if err := w.WriteU8(typeTagNever); err != nil {
			return err
		}
		return WriteNullable(w, v.Nullable)
	case TypeInvalid:
		return w.WriteU8(typeTagInvalid)
	case TypeDynamic:
		return w.WriteU8(typeTagDynamic)
	case TypeVoid:
		return w.WriteU8(typeTagVoid)
	case TypeGenericInterface:
		if err := w.WriteU8(typeTagGenericInterface); err != nil {
			return err
		}
		if err := WriteNullable(w, v.Nullable); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Class); err != nil {
			return err
		}
		return wire.WriteList(w, v.TypeArgs, WriteType)
	case TypeInterface:
		if err := w.WriteU8(typeTagInterface); err != nil {
			return err
		}
		if err := WriteNullable(w, v.Nullable); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.Class)
	case TypeGenericFunction:
		if err := w.WriteU8(typeTagGenericFunction); err != nil {
			return err
		}
		return WriteFunctionType(w, v.Func)
	case TypeFunction:
		if err := w.WriteU8(typeTagFunction); err != nil {
			return err
		}
		if err := WriteNullable(w, v.Nullable); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.PositionalParams, WriteType); err != nil {
			return err
		}
		return WriteType(w, v.ReturnType)
	case TypeParam:
		if err := w.WriteU8(typeTagTypeParam); err != nil {
			return err
		}
		if err := WriteNullable(w, v.Nullable); err != nil {
			return err
		}
		if err := w.EncodeVarUint(v.Index); err != nil {
			return err
		}
		return wire.WriteOption(w, v.Bound, WriteType)
	default:
		return wire.UnknownTag("Type", 0)
	}
}

// TypedefTypeTag is the fixed magic byte 0x57 preceding a TypedefType.
var TypedefTypeTag = []byte{0x57}

// TypedefType names a typedef reference used as a function's own type alias.
type TypedefType struct {
	Nullable  Nullable
	Reference ref.CanonicalNameRef
	TypeArgs  []Type
}

func ReadTypedefType(r *wire.Reader) (TypedefType, error) {
	var v TypedefType
	if err := r.ReadMagic(TypedefTypeTag); err != nil {
		return TypedefType{}, err
	}
	var err error
	if v.Nullable, err = ReadNullable(r); err != nil {
		return TypedefType{}, err
	}
	if v.Reference, err = ref.ReadCanonicalNameRef(r); err != nil {
		return TypedefType{}, err
	}
	if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
		return TypedefType{}, err
	}
	return v, nil
}

func WriteTypedefType(w *wire.Writer, v TypedefType) error {
	if err := w.WriteMagic(TypedefTypeTag); err != nil {
		return err
	}
	if err := WriteNullable(w, v.Nullable); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, v.Reference); err != nil {
		return err
	}
	return wire.WriteList(w, v.TypeArgs, WriteType)
}

// NamedType is one named parameter's type within a FunctionType.
type NamedType struct {
	Name  ref.StringRef
	Typ   Type
	Flags uint8
}

func ReadNamedType(r *wire.Reader) (NamedType, error) {
	var v NamedType
	var err error
	if v.Name, err = ref.ReadStringRef(r); err != nil {
		return NamedType{}, err
	}
	if v.Typ, err = ReadType(r); err != nil {
		return NamedType{}, err
	}
	if v.Flags, err = r.ReadU8(); err != nil {
		return NamedType{}, err
	}
	return v, nil
}

func WriteNamedType(w *wire.Writer, v NamedType) error {
	if err := ref.WriteStringRef(w, v.Name); err != nil {
		return err
	}
	if err := WriteType(w, v.Typ); err != nil {
		return err
	}
	return w.WriteU8(v.Flags)
}

// TypeParameter is a generic type parameter declaration.
type TypeParameter struct {
	Flags       uint8
	Annotations []Expr
	Variance    Variance
	Name        ref.StringRef
	Bound       Type
	DefaultType Type
}

func ReadTypeParameter(r *wire.Reader) (TypeParameter, error) {
	var v TypeParameter
	var err error
	if v.Flags, err = r.ReadU8(); err != nil {
		return TypeParameter{}, err
	}
	if v.Annotations, err = wire.ReadList(r, ReadExpr); err != nil {
		return TypeParameter{}, err
	}
	if v.Variance, err = ReadVariance(r); err != nil {
		return TypeParameter{}, err
	}
	if v.Name, err = ref.ReadStringRef(r); err != nil {
		return TypeParameter{}, err
	}
	if v.Bound, err = ReadType(r); err != nil {
		return TypeParameter{}, err
	}
	if v.DefaultType, err = ReadType(r); err != nil {
		return TypeParameter{}, err
	}
	return v, nil
}

func WriteTypeParameter(w *wire.Writer, v TypeParameter) error {
	if err := w.WriteU8(v.Flags); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.Annotations, WriteExpr); err != nil {
		return err
	}
	if err := WriteVariance(w, v.Variance); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, v.Name); err != nil {
		return err
	}
	if err := WriteType(w, v.Bound); err != nil {
		return err
	}
	return WriteType(w, v.DefaultType)
}

// FunctionType is the resolved shape of a function's static type.
type FunctionType struct {
	Nullable           Nullable
	TypeParams         []TypeParameter
	RequiredParamCount uint32
	TotalParamCount    uint32
	PositionalParams   []Type
	NamedParams        []NamedType
	Typedef            *TypedefType
	ReturnType         Type
}

func ReadFunctionType(r *wire.Reader) (*FunctionType, error) {
	v := &FunctionType{}
	var err error
	if v.Nullable, err = ReadNullable(r); err != nil {
		return nil, err
	}
	if v.TypeParams, err = wire.ReadList(r, ReadTypeParameter); err != nil {
		return nil, err
	}
	if v.RequiredParamCount, err = r.DecodeVarUint(); err != nil {
		return nil, err
	}
	if v.TotalParamCount, err = r.DecodeVarUint(); err != nil {
		return nil, err
	}
	if v.PositionalParams, err = wire.ReadList(r, ReadType); err != nil {
		return nil, err
	}
	if v.NamedParams, err = wire.ReadList(r, ReadNamedType); err != nil {
		return nil, err
	}
	if v.Typedef, err = wire.ReadOption(r, ReadTypedefType); err != nil {
		return nil, err
	}
	if v.ReturnType, err = ReadType(r); err != nil {
		return nil, err
	}
	return v, nil
}

func WriteFunctionType(w *wire.Writer, v *FunctionType) error {
	if err := WriteNullable(w, v.Nullable); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.TypeParams, WriteTypeParameter); err != nil {
		return err
	}
	if err := w.EncodeVarUint(v.RequiredParamCount); err != nil {
		return err
	}
	if err := w.EncodeVarUint(v.TotalParamCount); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.PositionalParams, WriteType); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.NamedParams, WriteNamedType); err != nil {
		return err
	}
	if err := wire.WriteOption(w, v.Typedef, WriteTypedefType); err != nil {
		return err
	}
	return WriteType(w, v.ReturnType)
}

// FunctionTag is the fixed magic byte 0x03 preceding a Function.
var FunctionTag = []byte{0x03}

// Function is a procedure/constructor/closure body.
type Function struct {
	FileRange          FileRange
	AsyncMarker        uint8
	DartAsyncMarker    uint8
	TypeParams         []TypeParameter
	ParamCount         uint32
	RequiredParamCount uint32
	PositionalParams   []*VarDecl
	NamedParams        []*VarDecl
	ReturnType         Type
	FutureValueType    *Type
	Body               *Stmt
}

func ReadFunction(r *wire.Reader) (*Function, error) {
	f := &Function{}
	if err := r.ReadMagic(FunctionTag); err != nil {
		return nil, err
	}
	var err error
	if f.FileRange, err = ReadFileRange(r); err != nil {
		return nil, err
	}
	if f.AsyncMarker, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if f.DartAsyncMarker, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if f.TypeParams, err = wire.ReadList(r, ReadTypeParameter); err != nil {
		return nil, err
	}
	if f.ParamCount, err = r.DecodeVarUint(); err != nil {
		return nil, err
	}
	if f.RequiredParamCount, err = r.DecodeVarUint(); err != nil {
		return nil, err
	}
	if f.PositionalParams, err = wire.ReadList(r, ReadVarDecl); err != nil {
		return nil, err
	}
	if f.NamedParams, err = wire.ReadList(r, ReadVarDecl); err != nil {
		return nil, err
	}
	if f.ReturnType, err = ReadType(r); err != nil {
		return nil, err
	}
	if f.FutureValueType, err = wire.ReadOption(r, ReadType); err != nil {
		return nil, err
	}
	if f.Body, err = wire.ReadOption(r, ReadStmt); err != nil {
		return nil, err
	}
	return f, nil
}

func WriteFunction(w *wire.Writer, f *Function) error {
	if err := w.WriteMagic(FunctionTag); err != nil {
		return err
	}
	if err := WriteFileRange(w, f.FileRange); err != nil {
		return err
	}
	if err := w.WriteU8(f.AsyncMarker); err != nil {
		return err
	}
	if err := w.WriteU8(f.DartAsyncMarker); err != nil {
		return err
	}
	if err := wire.WriteList(w, f.TypeParams, WriteTypeParameter); err != nil {
		return err
	}
	if err := w.EncodeVarUint(f.ParamCount); err != nil {
		return err
	}
	if err := w.EncodeVarUint(f.RequiredParamCount); err != nil {
		return err
	}
	if err := wire.WriteList(w, f.PositionalParams, WriteVarDecl); err != nil {
		return err
	}
	if err := wire.WriteList(w, f.NamedParams, WriteVarDecl); err != nil {
		return err
	}
	if err := WriteType(w, f.ReturnType); err != nil {
		return err
	}
	if err := wire.WriteOption(w, f.FutureValueType, WriteType); err != nil {
		return err
	}
	return wire.WriteOption(w, f.Body, WriteStmt)
}
