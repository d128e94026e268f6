package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullshade/dartkernel/ref"
	"github.com/nullshade/dartkernel/wire"
)

func roundtripStmt(t *testing.T, s Stmt) Stmt {
	t.Helper()
	buf := &seekBuf{}
	w := wire.NewWriter(buf)
	require.NoError(t, WriteStmt(w, s))

	r := wire.NewReader(buf)
	require.NoError(t, r.SeekAbs(0))
	got, err := ReadStmt(r)
	require.NoError(t, err)
	return got
}

func TestStmtBlock_Roundtrip(t *testing.T) {
	s := StmtBlock{
		Statements: []Stmt{
			StmtExprStmt{Value: ExprStringLit{Value: ref.StringRef(1)}},
			StmtEmpty{},
		},
	}
	require.Equal(t, s, roundtripStmt(t, s))
}

func TestStmtReturn_Roundtrip(t *testing.T) {
	var e Expr = ExprNullLit{}
	s := StmtReturn{Offset: FileOffset(4), Expr: &e}
	require.Equal(t, s, roundtripStmt(t, s))
}

func TestStmtEmpty_Roundtrip(t *testing.T) {
	require.Equal(t, StmtEmpty{}, roundtripStmt(t, StmtEmpty{}))
}
