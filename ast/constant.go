package ast

import (
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// Constant is the sum type over every compile-time constant shape stored in
// the constant table (expr.rs's Constant enum).
type Constant interface {
	isConstant()
}

const (
	constantTagNull                      = 0
	constantTagBool                      = 1
	constantTagInt                       = 2
	constantTagDouble                    = 3
	constantTagString                    = 4
	constantTagSymbol                    = 5
	constantTagMap                       = 6
	constantTagList                      = 7
	constantTagInstance                  = 8
	constantTagInstantiation             = 9
	constantTagStaticTearOff             = 10
	constantTagTypeLiteral               = 11
	constantTagUnevaluated               = 12
	constantTagSet                       = 13
	constantTagTypedefTearOff            = 14
	constantTagConstructorTearOff        = 15
	constantTagRedirectingFactoryTearOff = 16
)

type ConstantNull struct{}
type ConstantBool struct{ Value uint8 }
type ConstantInt struct{ Value IntLit }
type ConstantDouble struct{ Value float64 }
type ConstantString struct{ Value ref.StringRef }

type ConstantSymbol struct {
	Class ref.CanonicalNameRef
	Name  ref.StringRef
}

type ConstantMap struct {
	KeyType   Type
	ValueType Type
	Values    []LabeledConstant[ref.ConstantRef]
}

type ConstantList struct {
	Typ    Type
	Values []ref.ConstantRef
}

type ConstantSet struct {
	Typ    Type
	Values []ref.ConstantRef
}

type ConstantInstance struct {
	Class    ref.CanonicalNameRef
	TypeArgs []Type
	Values   []LabeledConstant[ref.CanonicalNameRef]
}

type ConstantInstantiation struct {
	TearOffConstant ref.ConstantRef
	TypeArgs        []Type
}

type ConstantStaticTearOff struct{ StaticProcedure ref.CanonicalNameRef }
type ConstantTypeLiteral struct{ Value Type }
type ConstantUnevaluated struct{ Value Expr }

type ConstantTypedefTearOff struct {
	Parameters      []Type
	StaticProcedure ref.CanonicalNameRef
	Types           []Type
}

type ConstantConstructorTearOff struct{ StaticProcedure ref.CanonicalNameRef }
type ConstantRedirectingFactoryTearOff struct{ StaticProcedure ref.CanonicalNameRef }

func (ConstantNull) isConstant()                      {}
func (ConstantBool) isConstant()                      {}
func (ConstantInt) isConstant()                       {}
func (ConstantDouble) isConstant()                    {}
func (ConstantString) isConstant()                    {}
func (ConstantSymbol) isConstant()                    {}
func (ConstantMap) isConstant()                       {}
func (ConstantList) isConstant()                      {}
func (ConstantSet) isConstant()                       {}
func (ConstantInstance) isConstant()                  {}
func (ConstantInstantiation) isConstant()             {}
func (ConstantStaticTearOff) isConstant()             {}
func (ConstantTypeLiteral) isConstant()               {}
func (ConstantUnevaluated) isConstant()               {}
func (ConstantTypedefTearOff) isConstant()            {}
func (ConstantConstructorTearOff) isConstant()        {}
func (ConstantRedirectingFactoryTearOff) isConstant() {}

func ReadConstant(r *wire.Reader) (Constant, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case constantTagNull:
		return ConstantNull{}, nil
	case constantTagBool:
		b, err := r.ReadU8()
		return ConstantBool{Value: b}, err
	case constantTagInt:
		intTag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		lit, err := ReadIntLitBody(r, intTag)
		return ConstantInt{Value: lit}, err
	case constantTagDouble:
		f, err := r.ReadF64()
		return ConstantDouble{Value: f}, err
	case constantTagString:
		s, err := ref.ReadStringRef(r)
		return ConstantString{Value: s}, err
	case constantTagSymbol:
		var v ConstantSymbol
		if v.Class, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Name, err = ref.ReadStringRef(r); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagMap:
		var v ConstantMap
		if v.KeyType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.ValueType, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, func(r *wire.Reader) (LabeledConstant[ref.ConstantRef], error) {
			return ReadLabeledConstant(r, ref.ReadConstantRef)
		}); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagList:
		var v ConstantList
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, ref.ReadConstantRef); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagSet:
		var v ConstantSet
		if v.Typ, err = ReadType(r); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, ref.ReadConstantRef); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagInstance:
		var v ConstantInstance
		if v.Class, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		if v.Values, err = wire.ReadList(r, func(r *wire.Reader) (LabeledConstant[ref.CanonicalNameRef], error) {
			return ReadLabeledConstant(r, ref.ReadCanonicalNameRef)
		}); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagInstantiation:
		var v ConstantInstantiation
		if v.TearOffConstant, err = ref.ReadConstantRef(r); err != nil {
			return nil, err
		}
		if v.TypeArgs, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagStaticTearOff:
		p, err := ref.ReadCanonicalNameRef(r)
		return ConstantStaticTearOff{StaticProcedure: p}, err
	case constantTagTypeLiteral:
		t, err := ReadType(r)
		return ConstantTypeLiteral{Value: t}, err
	case constantTagUnevaluated:
		e, err := ReadExpr(r)
		return ConstantUnevaluated{Value: e}, err
	case constantTagTypedefTearOff:
		var v ConstantTypedefTearOff
		if v.Parameters, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		if v.StaticProcedure, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Types, err = wire.ReadList(r, ReadType); err != nil {
			return nil, err
		}
		return v, nil
	case constantTagConstructorTearOff:
		p, err := ref.ReadCanonicalNameRef(r)
		return ConstantConstructorTearOff{StaticProcedure: p}, err
	case constantTagRedirectingFactoryTearOff:
		p, err := ref.ReadCanonicalNameRef(r)
		return ConstantRedirectingFactoryTearOff{StaticProcedure: p}, err
	default:
		return nil, wire.UnknownTag("Constant", tag)
	}
}

func WriteConstant(w *wire.Writer, c Constant) error {
	switch v := c.(type) {
	case ConstantNull:
		return w.WriteU8(constantTagNull)
	case ConstantBool:
		if err := w.WriteU8(constantTagBool); err != nil {
			return err
		}
		return w.WriteU8(v.Value)
	case ConstantInt:
		if err := w.WriteU8(constantTagInt); err != nil {
			return err
		}
		return WriteIntLit(w, v.Value)
	case ConstantDouble:
		if err := w.WriteU8(constantTagDouble); err != nil {
			return err
		}
		return w.WriteF64(v.Value)
	case ConstantString:
		if err := w.WriteU8(constantTagString); err != nil {
			return err
		}
		return ref.WriteStringRef(w, v.Value)
	case ConstantSymbol:
		if err := w.WriteU8(constantTagSymbol); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Class); err != nil {
			return err
		}
		return ref.WriteStringRef(w, v.Name)
	case ConstantMap:
		if err := w.WriteU8(constantTagMap); err != nil {
			return err
		}
		if err := WriteType(w, v.KeyType); err != nil {
			return err
		}
		if err := WriteType(w, v.ValueType); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, func(w *wire.Writer, e LabeledConstant[ref.ConstantRef]) error {
			return WriteLabeledConstant(w, e, ref.WriteConstantRef)
		})
	case ConstantList:
		if err := w.WriteU8(constantTagList); err != nil {
			return err
		}
		if err := WriteType(w, v.Typ); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, ref.WriteConstantRef)
	case ConstantSet:
		if err := w.WriteU8(constantTagSet); err != nil {
			return err
		}
		if err := WriteType(w, v.Typ); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, ref.WriteConstantRef)
	case ConstantInstance:
		if err := w.WriteU8(constantTagInstance); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Class); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.TypeArgs, WriteType); err != nil {
			return err
		}
		return wire.WriteList(w, v.Values, func(w *wire.Writer, e LabeledConstant[ref.CanonicalNameRef]) error {
			return WriteLabeledConstant(w, e, ref.WriteCanonicalNameRef)
		})
	case ConstantInstantiation:
		if err := w.WriteU8(constantTagInstantiation); err != nil {
			return err
		}
		if err := ref.WriteConstantRef(w, v.TearOffConstant); err != nil {
			return err
		}
		return wire.WriteList(w, v.TypeArgs, WriteType)
	case ConstantStaticTearOff:
		if err := w.WriteU8(constantTagStaticTearOff); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.StaticProcedure)
	case ConstantTypeLiteral:
		if err := w.WriteU8(constantTagTypeLiteral); err != nil {
			return err
		}
		return WriteType(w, v.Value)
	case ConstantUnevaluated:
		if err := w.WriteU8(constantTagUnevaluated); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case ConstantTypedefTearOff:
		if err := w.WriteU8(constantTagTypedefTearOff); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.Parameters, WriteType); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.StaticProcedure); err != nil {
			return err
		}
		return wire.WriteList(w, v.Types, WriteType)
	case ConstantConstructorTearOff:
		if err := w.WriteU8(constantTagConstructorTearOff); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.StaticProcedure)
	case ConstantRedirectingFactoryTearOff:
		if err := w.WriteU8(constantTagRedirectingFactoryTearOff); err != nil {
			return err
		}
		return ref.WriteCanonicalNameRef(w, v.StaticProcedure)
	default:
		return wire.UnknownTag("Constant", 0)
	}
}
