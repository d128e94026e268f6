package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

func roundtripType(t *testing.T, typ Type) Type {
	t.Helper()
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteType(w, typ))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadType(r)
	require.NoError(t, err)
	return got
}

func TestTypeVoid_Roundtrip(t *testing.T) {
	require.Equal(t, TypeVoid{}, roundtripType(t, TypeVoid{}))
}

func TestTypeInterface_Roundtrip(t *testing.T) {
	typ := TypeInterface{Class: ref.CanonicalNameRefFromIndex(3)}
	require.Equal(t, typ, roundtripType(t, typ))
}

func TestTypeGenericInterface_Roundtrip(t *testing.T) {
	typ := TypeGenericInterface{
		Class:    ref.CanonicalNameRefFromIndex(1),
		TypeArgs: []Type{TypeDynamic{}, TypeVoid{}},
	}
	require.Equal(t, typ, roundtripType(t, typ))
}
