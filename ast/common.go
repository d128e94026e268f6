// Package ast implements the tagged-variant codec for the five sum types
// that make up a compiled function body and its surrounding type system:
// Expr, Stmt, Type, Constant and Initializer, plus the node shapes they
// embed (Function, Arguments, VarDecl, and friends). Every discriminator
// below is grounded on original_source/src/expr.rs and node.rs; the
// specialized short-form opcodes canonicalize on decode straight to their
// general in-memory shape, and the encoders re-emit them for values that
// qualify.
package ast

import (
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// FileOffset is a source position, encoded as a VarUint (0 meaning "no
// position", matching the kernel convention of biasing offsets by one).
type FileOffset uint32

func ReadFileOffset(r *wire.Reader) (FileOffset, error) {
	v, err := r.DecodeVarUint()
	return FileOffset(v), err
}

func WriteFileOffset(w *wire.Writer, v FileOffset) error {
	return w.EncodeVarUint(uint32(v))
}

// FileRange is a start/end pair of source positions.
type FileRange struct {
	Start FileOffset
	End   FileOffset
}

func ReadFileRange(r *wire.Reader) (FileRange, error) {
	start, err := ReadFileOffset(r)
	if err != nil {
		return FileRange{}, err
	}
	end, err := ReadFileOffset(r)
	if err != nil {
		return FileRange{}, err
	}
	return FileRange{Start: start, End: end}, nil
}

func WriteFileRange(w *wire.Writer, v FileRange) error {
	if err := WriteFileOffset(w, v.Start); err != nil {
		return err
	}
	return WriteFileOffset(w, v.End)
}

// Nullable is the per-type nullability marker.
type Nullable uint8

const (
	NullableTrue Nullable = iota
	NullableFalse
	NullableNeither
	NullableLegacy
)

func ReadNullable(r *wire.Reader) (Nullable, error) {
	b, err := r.ReadU8()
	return Nullable(b), err
}

func WriteNullable(w *wire.Writer, v Nullable) error { return w.WriteU8(uint8(v)) }

// ProcedureKind distinguishes a method from a getter/setter/operator/factory.
type ProcedureKind uint8

const (
	ProcedureKindMethod ProcedureKind = iota
	ProcedureKindGetter
	ProcedureKindSetter
	ProcedureKindOperator
	ProcedureKindFactory
)

func ReadProcedureKind(r *wire.Reader) (ProcedureKind, error) {
	b, err := r.ReadU8()
	return ProcedureKind(b), err
}

func WriteProcedureKind(w *wire.Writer, v ProcedureKind) error { return w.WriteU8(uint8(v)) }

// ProcedureStubKind distinguishes a regular procedure from a synthesized
// forwarder/mixin stub.
type ProcedureStubKind uint8

const (
	ProcedureStubKindRegular ProcedureStubKind = iota
	ProcedureStubKindAbstractForwarder
	ProcedureStubKindConcreteForwarder
	ProcedureStubKindNoSuchMethodForwarder
	ProcedureStubKindMemberSignature
	ProcedureStubKindAbstractMixin
	ProcedureStubKindConcreteMixin
)

func ReadProcedureStubKind(r *wire.Reader) (ProcedureStubKind, error) {
	b, err := r.ReadU8()
	return ProcedureStubKind(b), err
}

func WriteProcedureStubKind(w *wire.Writer, v ProcedureStubKind) error { return w.WriteU8(uint8(v)) }

// Variance is a type parameter's declared variance.
type Variance uint8

const (
	VarianceUnrelated Variance = iota
	VarianceCovariant
	VarianceContravariant
	VarianceInvariant
)

func ReadVariance(r *wire.Reader) (Variance, error) {
	b, err := r.ReadU8()
	return Variance(b), err
}

func WriteVariance(w *wire.Writer, v Variance) error { return w.WriteU8(uint8(v)) }

// InstanceAccessKind qualifies an InstanceGet/Set/TearOff/Invoke.
type InstanceAccessKind uint8

const (
	InstanceAccessInstance InstanceAccessKind = iota
	InstanceAccessObject
	InstanceAccessInapplicable
	InstanceAccessNullable
)

func ReadInstanceAccessKind(r *wire.Reader) (InstanceAccessKind, error) {
	b, err := r.ReadU8()
	return InstanceAccessKind(b), err
}

func WriteInstanceAccessKind(w *wire.Writer, v InstanceAccessKind) error { return w.WriteU8(uint8(v)) }

// DynamicAccessKind qualifies a DynamicGet/Set/Invoke.
type DynamicAccessKind uint8

const (
	DynamicAccessDynamic DynamicAccessKind = iota
	DynamicAccessNever
	DynamicAccessInvalid
	DynamicAccessUnresolved
)

func ReadDynamicAccessKind(r *wire.Reader) (DynamicAccessKind, error) {
	b, err := r.ReadU8()
	return DynamicAccessKind(b), err
}

func WriteDynamicAccessKind(w *wire.Writer, v DynamicAccessKind) error { return w.WriteU8(uint8(v)) }

// FunctionAccessKind qualifies a FunctionInvoke.
type FunctionAccessKind uint8

const (
	FunctionAccessFunction FunctionAccessKind = iota
	FunctionAccessFunctionType
	FunctionAccessInapplicable
	FunctionAccessNullable
)

func ReadFunctionAccessKind(r *wire.Reader) (FunctionAccessKind, error) {
	b, err := r.ReadU8()
	return FunctionAccessKind(b), err
}

func WriteFunctionAccessKind(w *wire.Writer, v FunctionAccessKind) error { return w.WriteU8(uint8(v)) }

// LogicalOp is the operator of a LogicalOp expression.
type LogicalOp uint8

const (
	LogicalOpAnd LogicalOp = iota
	LogicalOpOr
)

func ReadLogicalOp(r *wire.Reader) (LogicalOp, error) {
	b, err := r.ReadU8()
	return LogicalOp(b), err
}

func WriteLogicalOp(w *wire.Writer, v LogicalOp) error { return w.WriteU8(uint8(v)) }

// IntLit is an integer literal, represented either as a signed magnitude
// that fits a VarUint-backed Pos/Neg pair, or, for arbitrary precision, as a
// decimal digit string held in the string table. The specialized -3..4 tags
// collapse into the same Kind/Value pair that Pos/Neg would have produced,
// so callers never see the wire-level specialized/general distinction.
type IntLit struct {
	Big   ref.StringRef // valid only when IsBig
	Value int64         // valid only when !IsBig
	IsBig bool
}

const (
	intLitTagSpecializedMinus3 = 144
	intLitTagSpecializedMinus2 = 145
	intLitTagSpecializedMinus1 = 146
	intLitTagSpecialized0      = 147
	intLitTagSpecialized1      = 148
	intLitTagSpecialized2      = 149
	intLitTagSpecialized3      = 150
	intLitTagSpecialized4      = 151
	intLitTagPos               = 55
	intLitTagNeg               = 56
	intLitTagBig               = 57
)

// IsIntLitTag reports whether b is one of the discriminators this type owns,
// for use by a dispatching Expr/Constant decoder that hasn't yet consumed
// its own tag byte for this sub-value.
func IsIntLitTag(b byte) bool {
	switch b {
	case intLitTagSpecializedMinus3, intLitTagSpecializedMinus2, intLitTagSpecializedMinus1,
		intLitTagSpecialized0, intLitTagSpecialized1, intLitTagSpecialized2, intLitTagSpecialized3, intLitTagSpecialized4,
		intLitTagPos, intLitTagNeg, intLitTagBig:
		return true
	default:
		return false
	}
}

// ReadIntLitBody decodes an IntLit given its tag byte has already been read
// (the tag doubles as both Constant::Int's inner enum and several bare Expr
// variants).
func ReadIntLitBody(r *wire.Reader, tag byte) (IntLit, error) {
	switch tag {
	case intLitTagSpecializedMinus3:
		return IntLit{Value: -3}, nil
	case intLitTagSpecializedMinus2:
		return IntLit{Value: -2}, nil
	case intLitTagSpecializedMinus1:
		return IntLit{Value: -1}, nil
	case intLitTagSpecialized0:
		return IntLit{Value: 0}, nil
	case intLitTagSpecialized1:
		return IntLit{Value: 1}, nil
	case intLitTagSpecialized2:
		return IntLit{Value: 2}, nil
	case intLitTagSpecialized3:
		return IntLit{Value: 3}, nil
	case intLitTagSpecialized4:
		return IntLit{Value: 4}, nil
	case intLitTagPos:
		v, err := r.DecodeVarUint()
		return IntLit{Value: int64(v)}, err
	case intLitTagNeg:
		v, err := r.DecodeVarUint()
		return IntLit{Value: -int64(v)}, err
	case intLitTagBig:
		v, err := r.DecodeVarUint()
		return IntLit{IsBig: true, Big: ref.StringRef(v)}, err
	default:
		return IntLit{}, wire.UnknownTag("IntLit", tag)
	}
}

// WriteIntLit picks the shortest eligible wire form: a specialized opcode
// when the value is in -3..4, the Pos/Neg VarUint form otherwise, or the Big
// string-ref form when IsBig.
func WriteIntLit(w *wire.Writer, v IntLit) error {
	if v.IsBig {
		if err := w.WriteU8(intLitTagBig); err != nil {
			return err
		}
		return w.EncodeVarUint(uint32(v.Big))
	}
	switch v.Value {
	case -3:
		return w.WriteU8(intLitTagSpecializedMinus3)
	case -2:
		return w.WriteU8(intLitTagSpecializedMinus2)
	case -1:
		return w.WriteU8(intLitTagSpecializedMinus1)
	case 0:
		return w.WriteU8(intLitTagSpecialized0)
	case 1:
		return w.WriteU8(intLitTagSpecialized1)
	case 2:
		return w.WriteU8(intLitTagSpecialized2)
	case 3:
		return w.WriteU8(intLitTagSpecialized3)
	case 4:
		return w.WriteU8(intLitTagSpecialized4)
	}
	if v.Value >= 0 {
		if err := w.WriteU8(intLitTagPos); err != nil {
			return err
		}
		return w.EncodeVarUint(uint32(v.Value))
	}
	if err := w.WriteU8(intLitTagNeg); err != nil {
		return err
	}
	return w.EncodeVarUint(uint32(-v.Value))
}

// VarDecl is a local variable or parameter declaration.
type VarDecl struct {
	Offset           FileOffset
	EqualsSignOffset FileOffset
	Annotations      []Expr
	Flags            flags.VarDeclFlags
	Name             ref.StringRef
	Typ              Type
	Initializer      *Expr
}

func ReadVarDecl(r *wire.Reader) (*VarDecl, error) {
	v := &VarDecl{}
	var err error
	if v.Offset, err = ReadFileOffset(r); err != nil {
		return nil, err
	}
	if v.EqualsSignOffset, err = ReadFileOffset(r); err != nil {
		return nil, err
	}
	if v.Annotations, err = wire.ReadList(r, ReadExpr); err != nil {
		return nil, err
	}
	if v.Flags, err = flags.ReadVarDeclFlags(r); err != nil {
		return nil, err
	}
	if v.Name, err = ref.ReadStringRef(r); err != nil {
		return nil, err
	}
	if v.Typ, err = ReadType(r); err != nil {
		return nil, err
	}
	if v.Initializer, err = wire.ReadOption(r, ReadExpr); err != nil {
		return nil, err
	}
	return v, nil
}

func WriteVarDecl(w *wire.Writer, v *VarDecl) error {
	if err := WriteFileOffset(w, v.Offset); err != nil {
		return err
	}
	if err := WriteFileOffset(w, v.EqualsSignOffset); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.Annotations, WriteExpr); err != nil {
		return err
	}
	if err := flags.WriteVarDeclFlags(w, v.Flags); err != nil {
		return err
	}
	if err := ref.WriteStringRef(w, v.Name); err != nil {
		return err
	}
	if err := WriteType(w, v.Typ); err != nil {
		return err
	}
	return wire.WriteOption(w, v.Initializer, WriteExpr)
}

// Assert holds a condition, source range and optional failure message,
// shared by Stmt::Assert, Initializer::Assert and InstanceCreate's asserts.
type Assert struct {
	Condition Expr
	FileRange FileRange
	Message   *Expr
}

func ReadAssert(r *wire.Reader) (Assert, error) {
	var a Assert
	var err error
	if a.Condition, err = ReadExpr(r); err != nil {
		return Assert{}, err
	}
	if a.FileRange, err = ReadFileRange(r); err != nil {
		return Assert{}, err
	}
	if a.Message, err = wire.ReadOption(r, ReadExpr); err != nil {
		return Assert{}, err
	}
	return a, nil
}

func WriteAssert(w *wire.Writer, a Assert) error {
	if err := WriteExpr(w, a.Condition); err != nil {
		return err
	}
	if err := WriteFileRange(w, a.FileRange); err != nil {
		return err
	}
	return wire.WriteOption(w, a.Message, WriteExpr)
}

// Catch is one clause of a TryCatch statement.
type Catch struct {
	Offset     FileOffset
	Guard      Type
	Exception  *VarDecl
	StackTrace *VarDecl
	Body       Stmt
}

func ReadCatch(r *wire.Reader) (Catch, error) {
	var c Catch
	var err error
	if c.Offset, err = ReadFileOffset(r); err != nil {
		return Catch{}, err
	}
	if c.Guard, err = ReadType(r); err != nil {
		return Catch{}, err
	}
	if c.Exception, err = wire.ReadOption(r, func(r *wire.Reader) (VarDecl, error) {
		v, err := ReadVarDecl(r)
		if err != nil {
			return VarDecl{}, err
		}
		return *v, nil
	}); err != nil {
		return Catch{}, err
	}
	if c.StackTrace, err = wire.ReadOption(r, func(r *wire.Reader) (VarDecl, error) {
		v, err := ReadVarDecl(r)
		if err != nil {
			return VarDecl{}, err
		}
		return *v, nil
	}); err != nil {
		return Catch{}, err
	}
	if c.Body, err = ReadStmt(r); err != nil {
		return Catch{}, err
	}
	return c, nil
}

func WriteCatch(w *wire.Writer, c Catch) error {
	if err := WriteFileOffset(w, c.Offset); err != nil {
		return err
	}
	if err := WriteType(w, c.Guard); err != nil {
		return err
	}
	if err := wire.WriteOption(w, c.Exception, func(w *wire.Writer, v VarDecl) error {
		return WriteVarDecl(w, &v)
	}); err != nil {
		return err
	}
	if err := wire.WriteOption(w, c.StackTrace, func(w *wire.Writer, v VarDecl) error {
		return WriteVarDecl(w, &v)
	}); err != nil {
		return err
	}
	return WriteStmt(w, c.Body)
}

// LabeledExpr pairs an expression with a label of arbitrary wire type A —
// a StringRef for named arguments, a CanonicalNameRef for field values, a
// FileOffset for switch-case expressions.
type LabeledExpr[A any] struct {
	Label A
	Value Expr
}

func ReadLabeledExpr[A any](r *wire.Reader, readLabel func(*wire.Reader) (A, error)) (LabeledExpr[A], error) {
	label, err := readLabel(r)
	if err != nil {
		return LabeledExpr[A]{}, err
	}
	value, err := ReadExpr(r)
	if err != nil {
		return LabeledExpr[A]{}, err
	}
	return LabeledExpr[A]{Label: label, Value: value}, nil
}

func WriteLabeledExpr[A any](w *wire.Writer, v LabeledExpr[A], writeLabel func(*wire.Writer, A) error) error {
	if err := writeLabel(w, v.Label); err != nil {
		return err
	}
	return WriteExpr(w, v.Value)
}

// SwitchCase is one arm of a Switch statement.
type SwitchCase struct {
	Exprs     []LabeledExpr[FileOffset]
	IsDefault bool
	Body      Stmt
}

func ReadSwitchCase(r *wire.Reader) (SwitchCase, error) {
	var c SwitchCase
	var err error
	if c.Exprs, err = wire.ReadList(r, func(r *wire.Reader) (LabeledExpr[FileOffset], error) {
		return ReadLabeledExpr(r, ReadFileOffset)
	}); err != nil {
		return SwitchCase{}, err
	}
	isDefault, err := r.ReadU8()
	if err != nil {
		return SwitchCase{}, err
	}
	c.IsDefault = isDefault != 0
	if c.Body, err = ReadStmt(r); err != nil {
		return SwitchCase{}, err
	}
	return c, nil
}

func WriteSwitchCase(w *wire.Writer, c SwitchCase) error {
	if err := wire.WriteList(w, c.Exprs, func(w *wire.Writer, v LabeledExpr[FileOffset]) error {
		return WriteLabeledExpr(w, v, WriteFileOffset)
	}); err != nil {
		return err
	}
	var b uint8
	if c.IsDefault {
		b = 1
	}
	if err := w.WriteU8(b); err != nil {
		return err
	}
	return WriteStmt(w, c.Body)
}

// Arguments is a call's type/positional/named argument list.
type Arguments struct {
	Types      []Type
	Positional []Expr
	Named      []LabeledExpr[ref.StringRef]
}

func ReadArguments(r *wire.Reader) (*Arguments, error) {
	numArgs, err := r.DecodeVarUint()
	if err != nil {
		return nil, err
	}
	a := &Arguments{}
	if a.Types, err = wire.ReadList(r, ReadType); err != nil {
		return nil, err
	}
	if a.Positional, err = wire.ReadList(r, ReadExpr); err != nil {
		return nil, err
	}
	if uint32(len(a.Positional)) > numArgs {
		return nil, wire.IndexOutOfRange(numArgs, uint32(len(a.Positional)))
	}
	if a.Named, err = wire.ReadList(r, func(r *wire.Reader) (LabeledExpr[ref.StringRef], error) {
		return ReadLabeledExpr(r, ref.ReadStringRef)
	}); err != nil {
		return nil, err
	}
	return a, nil
}

func WriteArguments(w *wire.Writer, a *Arguments) error {
	if err := w.EncodeVarUint(uint32(len(a.Positional))); err != nil {
		return err
	}
	if err := wire.WriteList(w, a.Types, WriteType); err != nil {
		return err
	}
	if err := wire.WriteList(w, a.Positional, WriteExpr); err != nil {
		return err
	}
	return wire.WriteList(w, a.Named, func(w *wire.Writer, v LabeledExpr[ref.StringRef]) error {
		return WriteLabeledExpr(w, v, ref.WriteStringRef)
	})
}

// NewPositionalArguments mirrors the original's Arguments::positional
// convenience constructor used throughout hand-authored component trees.
func NewPositionalArguments(types []Type, values []Expr) *Arguments {
	return &Arguments{Types: types, Positional: values}
}

// InstanceCreate is the resolved payload of the boxed InstanceCreate
// expression variant (tag 113, which collides with MapConcat — see
// ReadExpr).
type InstanceCreate struct {
	Offset      FileOffset
	Class       ref.CanonicalNameRef
	TypeArgs    []Type
	FieldValues []LabeledExpr[ref.CanonicalNameRef]
	Asserts     []Assert
	UnusedArgs  []Expr
}

func ReadInstanceCreate(r *wire.Reader) (*InstanceCreate, error) {
	v := &InstanceCreate{}
	var err error
	if v.Offset, err = ReadFileOffset(r); err != nil {
		return nil, err
	}
	if v.Class, err = ref.ReadCanonicalNameRef(r); err != nil {
		return nil, err
	}
	if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
		return nil, err
	}
	if v.FieldValues, err = wire.ReadList(r, func(r *wire.Reader) (LabeledExpr[ref.CanonicalNameRef], error) {
		return ReadLabeledExpr(r, ref.ReadCanonicalNameRef)
	}); err != nil {
		return nil, err
	}
	if v.Asserts, err = wire.ReadList(r, ReadAssert); err != nil {
		return nil, err
	}
	if v.UnusedArgs, err = wire.ReadList(r, ReadExpr); err != nil {
		return nil, err
	}
	return v, nil
}

func WriteInstanceCreate(w *wire.Writer, v *InstanceCreate) error {
	if err := WriteFileOffset(w, v.Offset); err != nil {
		return err
	}
	if err := ref.WriteCanonicalNameRef(w, v.Class); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.TypeArgs, WriteType); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.FieldValues, func(w *wire.Writer, v LabeledExpr[ref.CanonicalNameRef]) error {
		return WriteLabeledExpr(w, v, ref.WriteCanonicalNameRef)
	}); err != nil {
		return err
	}
	if err := wire.WriteList(w, v.Asserts, WriteAssert); err != nil {
		return err
	}
	return wire.WriteList(w, v.UnusedArgs, WriteExpr)
}

// LabeledConstant pairs a constant with a label of arbitrary wire type A — a
// ConstantRef for map entries, a CanonicalNameRef for instance field values.
type LabeledConstant[A any] struct {
	Key   A
	Value ref.ConstantRef
}

func ReadLabeledConstant[A any](r *wire.Reader, readKey func(*wire.Reader) (A, error)) (LabeledConstant[A], error) {
	key, err := readKey(r)
	if err != nil {
		return LabeledConstant[A]{}, err
	}
	value, err := ref.ReadConstantRef(r)
	if err != nil {
		return LabeledConstant[A]{}, err
	}
	return LabeledConstant[A]{Key: key, Value: value}, nil
}

func WriteLabeledConstant[A any](w *wire.Writer, v LabeledConstant[A], writeKey func(*wire.Writer, A) error) error {
	if err := writeKey(w, v.Key); err != nil {
		return err
	}
	return ref.WriteConstantRef(w, v.Value)
}
