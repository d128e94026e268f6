package flags

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/wire"
)

type seekBuf struct {
	bytes.Buffer
	pos int64
}

func (s *seekBuf) Write(p []byte) (int, error) {
	n, err := s.Buffer.Write(p)
	s.pos += int64(n)
	return n, err
}

func (s *seekBuf) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(s.Buffer.Len()) + offset
	}
	return s.pos, nil
}

func TestClassFlags_NamedBits(t *testing.T) {
	f := ClassFlags(0).WithIsAbstract(true).WithIsEnum(true).WithIsMacro(true)
	require.True(t, f.IsAbstract())
	require.True(t, f.IsEnum())
	require.True(t, f.IsMacro())
	require.False(t, f.IsMixinDeclaration())
	require.Equal(t, uint8(0b0100_0011), f.Raw())
}

func TestClassFlags_PreservesReservedBit(t *testing.T) {
	f := ClassFlagsFromRaw(0x80) // reserved top bit set
	f = f.WithIsAbstract(true)
	require.Equal(t, uint8(0x81), f.Raw())
}

func TestLibraryFlags_NNBMode(t *testing.T) {
	f := LibraryFlags(0).WithNNBMode(0b11).WithIsSynthetic(true)
	require.Equal(t, uint8(0b11), f.NNBMode())
	require.True(t, f.IsSynthetic())
	require.Equal(t, uint8(0b0000_1101), f.Raw())
}

func TestFieldFlags_RoundtripPreservesGap(t *testing.T) {
	raw := uint16(0b1010_1010_0100_0001) // arbitrary bits including the reserved gap
	f := FieldFlagsFromRaw(raw)

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteFieldFlags(w, f))
	require.Len(t, buf.Bytes(), 2)

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadFieldFlags(r)
	require.NoError(t, err)
	require.Equal(t, raw, got.Raw())
}

func TestFieldFlags_NamedBits(t *testing.T) {
	f := FieldFlags(0).WithIsFinal(true).WithIsStatic(true).WithIsNonNullableByDefault(true)
	require.True(t, f.IsFinal())
	require.True(t, f.IsStatic())
	require.True(t, f.IsNonNullableByDefault())
	require.False(t, f.IsConst())
}

func TestVarDeclFlags_AllBitsNamed(t *testing.T) {
	f := VarDeclFlags(0).
		WithIsFinal(true).
		WithIsConst(true).
		WithIsInitializingFormal(true).
		WithIsCovariantByDecl(true).
		WithIsCovariantByClass(true).
		WithIsLate(true).
		WithIsRequired(true).
		WithIsLowered(true)
	require.Equal(t, uint8(0xFF), f.Raw())
}

func TestProcedureFlags_Roundtrip(t *testing.T) {
	f := ProcedureFlags(0).WithIsStatic(true).WithIsExternal(true)

	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteProcedureFlags(w, f))

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadProcedureFlags(r)
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestDynamicCastFlags_NamedBits(t *testing.T) {
	f := DynamicCastFlags(0).WithIsTypeError(true).WithIsForNonNullableByDefault(true)
	require.True(t, f.IsTypeError())
	require.True(t, f.IsForNonNullableByDefault())
	require.False(t, f.IsCovarianceCheck())
}
