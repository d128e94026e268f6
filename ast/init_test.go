package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

func roundtripInit(t *testing.T, init Initializer) Initializer {
	t.Helper()
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteInitializer(w, init))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadInitializer(r)
	require.NoError(t, err)
	return got
}

func TestInitializerInvalid_Roundtrip(t *testing.T) {
	v := InitializerInvalid{IsSynthetic: 1}
	require.Equal(t, v, roundtripInit(t, v))
}

func TestInitializerField_Roundtrip(t *testing.T) {
	v := InitializerField{
		IsSynthetic: 0,
		Field:       ref.CanonicalNameRefFromIndex(2),
		Value:       ExprIntLit{Value: IntLit{Value: 1}},
	}
	require.Equal(t, v, roundtripInit(t, v))
}

func TestInitializerSuper_Roundtrip(t *testing.T) {
	v := InitializerSuper{
		IsSynthetic: 1,
		Offset:      FileOffset(3),
		Target:      ref.CanonicalNameRefFromIndex(1),
		Arguments:   &Arguments{},
	}
	require.Equal(t, v, roundtripInit(t, v))
}

func TestInitializerRedirect_Roundtrip(t *testing.T) {
	v := InitializerRedirect{
		IsSynthetic: 0,
		Offset:      FileOffset(5),
		Target:      ref.CanonicalNameRefFromIndex(4),
		Arguments:   &Arguments{},
	}
	require.Equal(t, v, roundtripInit(t, v))
}

func TestInitializerLocal_Roundtrip(t *testing.T) {
	v := InitializerLocal{
		IsSynthetic: 1,
		Var: VarDecl{
			Name: ref.StringRef(2),
			Typ:  TypeDynamic{},
		},
	}
	require.Equal(t, v, roundtripInit(t, v))
}

func TestInitializerAssert_Roundtrip(t *testing.T) {
	v := InitializerAssert{
		IsSynthetic: 0,
		Stmt: Assert{
			Condition: ExprNullLit{},
		},
	}
	require.Equal(t, v, roundtripInit(t, v))
}
