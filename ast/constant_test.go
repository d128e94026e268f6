package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

func roundtripConstant(t *testing.T, c Constant) Constant {
	t.Helper()
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteConstant(w, c))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadConstant(r)
	require.NoError(t, err)
	return got
}

func TestConstantNull_Roundtrip(t *testing.T) {
	require.Equal(t, ConstantNull{}, roundtripConstant(t, ConstantNull{}))
}

func TestConstantBool_Roundtrip(t *testing.T) {
	c := ConstantBool{Value: 1}
	require.Equal(t, c, roundtripConstant(t, c))
}

func TestConstantInt_Roundtrip(t *testing.T) {
	c := ConstantInt{Value: IntLit{Value: -42}}
	require.Equal(t, c, roundtripConstant(t, c))
}

func TestConstantDouble_Roundtrip(t *testing.T) {
	c := ConstantDouble{Value: 3.5}
	require.Equal(t, c, roundtripConstant(t, c))
}

func TestConstantString_Roundtrip(t *testing.T) {
	c := ConstantString{Value: ref.StringRef(7)}
	require.Equal(t, c, roundtripConstant(t, c))
}

func TestConstantSymbol_Roundtrip(t *testing.T) {
	c := ConstantSymbol{Class: ref.CanonicalNameRefFromIndex(2), Name: ref.StringRef(3)}
	require.Equal(t, c, roundtripConstant(t, c))
}

func TestConstantList_Roundtrip(t *testing.T) {
	c := ConstantList{
		Typ:    TypeDynamic{},
		Values: []ref.ConstantRef{ref.ConstantRef(0), ref.ConstantRef(1)},
	}
	require.Equal(t, c, roundtripConstant(t, c))
}

func TestConstantInstance_Roundtrip(t *testing.T) {
	c := ConstantInstance{
		Class:    ref.CanonicalNameRefFromIndex(5),
		TypeArgs: []Type{TypeDynamic{}},
		Values: []LabeledConstant[ref.CanonicalNameRef]{
			{Key: ref.CanonicalNameRefFromIndex(1), Value: ref.ConstantRef(0)},
		},
	}
	require.Equal(t, c, roundtripConstant(t, c))
}
