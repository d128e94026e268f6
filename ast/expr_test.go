package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

type seekBuf struct {
	data []byte
	pos  int64
}

func (b *seekBuf) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.pos:end], p)
	b.pos = end
	return n, nil
}

func (b *seekBuf) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		b.pos = offset
	case 1:
		b.pos += offset
	case 2:
		b.pos = int64(len(b.data)) + offset
	}
	return b.pos, nil
}

func roundtripExpr(t *testing.T, e Expr) Expr {
	t.Helper()
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteExpr(w, e))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadExpr(r)
	require.NoError(t, err)
	return got
}

func TestExprStringLit_Roundtrip(t *testing.T) {
	e := ExprStringLit{Value: ref.StringRef(5)}
	require.Equal(t, e, roundtripExpr(t, e))
}

func TestExprIntLit_SpecializedForm(t *testing.T) {
	for _, v := range []int64{-3, -2, -1, 0, 1, 2, 3, 4} {
		e := ExprIntLit{Value: IntLit{Value: v}}
		require.Equal(t, e, roundtripExpr(t, e))
	}
}

func TestExprIntLit_GeneralForm(t *testing.T) {
	e := ExprIntLit{Value: IntLit{Value: 12345}}
	require.Equal(t, e, roundtripExpr(t, e))

	neg := ExprIntLit{Value: IntLit{Value: -99999}}
	require.Equal(t, neg, roundtripExpr(t, neg))
}

func TestExprIntLit_BigForm(t *testing.T) {
	e := ExprIntLit{Value: IntLit{IsBig: true, Big: ref.StringRef(9)}}
	require.Equal(t, e, roundtripExpr(t, e))
}

func TestExprVarGet_SpecializedOpcodeCanonicalizes(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, w.WriteU8(exprTagSpecializedVarGet0+3))
	require.NoError(t, WriteFileOffset(w, FileOffset(7)))
	require.NoError(t, w.EncodeVarUint(42))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadExpr(r)
	require.NoError(t, err)
	require.Equal(t, ExprVarGet{Offset: FileOffset(7), VarDeclPosition: 42, Var: ref.VarRef(3)}, got)
}

func TestExprVarGet_SpecializedForm_DistinctVarAndDeclPosition(t *testing.T) {
	e := ExprVarGet{Offset: FileOffset(2), VarDeclPosition: 42, Var: ref.VarRef(3)}
	require.Equal(t, e, roundtripExpr(t, e))
}

func TestExprVarSet_SpecializedForm_DistinctVarAndDeclPosition(t *testing.T) {
	e := ExprVarSet{Offset: FileOffset(2), VarDeclPosition: 42, Var: ref.VarRef(3), Value: ExprNullLit{}}
	require.Equal(t, e, roundtripExpr(t, e))
}

func TestExprVarGet_GeneralFormRoundtrips(t *testing.T) {
	e := ExprVarGet{Offset: FileOffset(1), VarDeclPosition: 99, Var: ref.VarRef(99)}
	require.Equal(t, e, roundtripExpr(t, e))
}

func TestExprSuperPropGet_RejectedByWriter(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	err := WriteExpr(w, ExprSuperPropGet{Name: ref.StringRef(1)})
	require.Error(t, err, "tag 24 always decodes to SuperPropSet, so a written Get is unreadable and must be rejected")
}

func TestExprSuperProp_CollisionAlwaysDecodesToSet(t *testing.T) {
	set := ExprSuperPropSet{Name: ref.StringRef(1), Value: ExprNullLit{}}
	got := roundtripExpr(t, set)
	_, isSet := got.(ExprSuperPropSet)
	require.True(t, isSet, "tag 24 must always decode to SuperPropSet")
}

func TestExprSuperPropSet_Roundtrips(t *testing.T) {
	e := ExprSuperPropSet{Name: ref.StringRef(2), Value: ExprNullLit{}}
	require.Equal(t, e, roundtripExpr(t, e))
}

func TestExprInstanceCreate_WinsTag113(t *testing.T) {
	e := ExprInstanceCreate{Value: &InstanceCreate{Class: ref.CanonicalNameRefFromIndex(1)}}
	got := roundtripExpr(t, e)
	_, isCreate := got.(ExprInstanceCreate)
	require.True(t, isCreate)
}

func TestExprStaticInvoke_Roundtrip(t *testing.T) {
	e := ExprStaticInvoke{
		Offset: FileOffset(3),
		Target: ref.CanonicalNameRefFromIndex(4),
		Arguments: &Arguments{
			Positional: []Expr{ExprStringLit{Value: ref.StringRef(1)}},
		},
	}
	require.Equal(t, e, roundtripExpr(t, e))
}
