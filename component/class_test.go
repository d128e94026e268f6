package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ast"
	"github.com/nullshade/dartkernel/flags"
	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

// writeMinimalClass emits a Class with no procedures, letting the caller
// control the trailing size word the real writer package always sets
// correctly — here we can deliberately break it to exercise ReadClass's
// validation.
func writeMinimalClass(t *testing.T, w *wire.Writer, trailingSize uint32) {
	t.Helper()
	require.NoError(t, w.WriteMagic(ClassTag))
	require.NoError(t, ref.WriteCanonicalNameRef(w, ref.Undefined))
	require.NoError(t, ref.WriteUriRef(w, ref.UriRef(0)))
	require.NoError(t, ast.WriteFileOffset(w, ast.FileOffset(0)))
	require.NoError(t, ast.WriteFileRange(w, ast.FileRange{}))
	require.NoError(t, flags.WriteClassFlags(w, flags.ClassFlags(0)))
	require.NoError(t, ref.WriteStringRef(w, ref.StringRef(0)))
	require.NoError(t, wire.WriteList(w, []ast.Expr{}, ast.WriteExpr))
	require.NoError(t, wire.WriteList(w, []ast.TypeParameter{}, ast.WriteTypeParameter))
	require.NoError(t, wire.WriteOption[ast.Type](w, nil, ast.WriteType))
	require.NoError(t, wire.WriteOption[ast.Type](w, nil, ast.WriteType))
	require.NoError(t, wire.WriteList(w, []ast.Type{}, ast.WriteType))
	require.NoError(t, wire.WriteList(w, []Field{}, WriteField))
	require.NoError(t, wire.WriteList(w, []Constructor{}, WriteConstructor))
	require.NoError(t, wire.WriteList(w, []Procedure{}, WriteProcedure)) // 0 procedures
	require.NoError(t, wire.WriteList(w, []RedirectingFactory{}, WriteRedirectingFactory))
	// Trailing procedure-offset table: 1 raw offset (procCount+1) then the
	// size word ReadClass cross-checks against the decoded procedure count.
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteU32(trailingSize))
}

func TestReadClass_ValidIndex(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	writeMinimalClass(t, w, 0)

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	c, err := ReadClass(r)
	require.NoError(t, err)
	require.Empty(t, c.Procedures)
}

func TestReadClass_IndexMismatch(t *testing.T) {
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	writeMinimalClass(t, w, 7)

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	_, err := ReadClass(r)
	require.Error(t, err)
}
