package ast

import (
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// Initializer is the sum type over a constructor's initializer-list entries
// (node.rs's Initializer enum).
type Initializer interface {
	isInitializer()
}

const (
	initTagInvalid = 7
	initTagField   = 8
	initTagSuper   = 9
	initTagRedirect = 10
	initTagLocal   = 11
	initTagAssert  = 12
)

type InitializerInvalid struct{ IsSynthetic uint8 }

type InitializerField struct {
	IsSynthetic uint8
	Field       ref.CanonicalNameRef
	Value       Expr
}

type InitializerSuper struct {
	IsSynthetic uint8
	Offset      FileOffset
	Target      ref.CanonicalNameRef
	Arguments   *Arguments
}

type InitializerRedirect struct {
	IsSynthetic uint8
	Offset      FileOffset
	Target      ref.CanonicalNameRef
	Arguments   *Arguments
}

type InitializerLocal struct {
	IsSynthetic uint8
	Var         VarDecl
}

type InitializerAssert struct {
	IsSynthetic uint8
	Stmt        Assert
}

func (InitializerInvalid) isInitializer()  {}
func (InitializerField) isInitializer()    {}
func (InitializerSuper) isInitializer()    {}
func (InitializerRedirect) isInitializer() {}
func (InitializerLocal) isInitializer()    {}
func (InitializerAssert) isInitializer()   {}

func ReadInitializer(r *wire.Reader) (Initializer, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case initTagInvalid:
		s, err := r.ReadU8()
		return InitializerInvalid{IsSynthetic: s}, err
	case initTagField:
		var v InitializerField
		if v.IsSynthetic, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Field, err = ref.ReadCanonicalNameRef(r); err != nil {
			return nil, err
		}
		if v.Value, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case initTagSuper:
		var v InitializerSuper
		if v.IsSynthetic, err = r.ReadU8(); err != nil {
			return nil, err
		}
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
	case initTagRedirect:
		var v InitializerRedirect
		if v.IsSynthetic, err = r.ReadU8(); err != nil {
			return nil, err
		}
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
	case initTagLocal:
		var v InitializerLocal
		if v.IsSynthetic, err = r.ReadU8(); err != nil {
			return nil, err
		}
		decl, err := ReadVarDecl(r)
		if err != nil {
			return nil, err
		}
		v.Var = *decl
		return v, nil
	case initTagAssert:
		var v InitializerAssert
		if v.IsSynthetic, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Stmt, err = ReadAssert(r); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, wire.UnknownTag("Initializer", tag)
	}
}

func WriteInitializer(w *wire.Writer, init Initializer) error {
	switch v := init.(type) {
	case InitializerInvalid:
		if err := w.WriteU8(initTagInvalid); err != nil {
			return err
		}
		return w.WriteU8(v.IsSynthetic)
	case InitializerField:
		if err := w.WriteU8(initTagField); err != nil {
			return err
		}
		if err := w.WriteU8(v.IsSynthetic); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Field); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case InitializerSuper:
		if err := w.WriteU8(initTagSuper); err != nil {
			return err
		}
		if err := w.WriteU8(v.IsSynthetic); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Target); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case InitializerRedirect:
		if err := w.WriteU8(initTagRedirect); err != nil {
			return err
		}
		if err := w.WriteU8(v.IsSynthetic); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := ref.WriteCanonicalNameRef(w, v.Target); err != nil {
			return err
		}
		return WriteArguments(w, v.Arguments)
	case InitializerLocal:
		if err := w.WriteU8(initTagLocal); err != nil {
			return err
		}
		if err := w.WriteU8(v.IsSynthetic); err != nil {
			return err
		}
		decl := v.Var
		return WriteVarDecl(w, &decl)
	case InitializerAssert:
		if err := w.WriteU8(initTagAssert); err != nil {
			return err
		}
		if err := w.WriteU8(v.IsSynthetic); err != nil {
			return err
		}
		return WriteAssert(w, v.Stmt)
	default:
		return wire.UnknownTag("Initializer", 0)
	}
}
