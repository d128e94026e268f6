package ast

import (
	"github.com/nullshade/dartkernel/wire"
)

// Stmt is the sum type over every statement shape (expr.rs's Stmt enum).
type Stmt interface {
	isStmt()
}

const (
	stmtTagExprStmt      = 61
	stmtTagBlock         = 62
	stmtTagAssertBlock   = 81
	stmtTagEmpty         = 63
	stmtTagAssert        = 64
	stmtTagLabeled       = 65
	stmtTagBreak         = 66
	stmtTagWhile         = 67
	stmtTagDoWhile       = 68
	stmtTagFor           = 69
	stmtTagForIn         = 70
	stmtTagAsyncForIn    = 80
	stmtTagSwitch        = 71
	stmtTagContinueSwitch = 72
	stmtTagIf            = 73
	stmtTagReturn        = 74
	stmtTagTryCatch      = 75
	stmtTagTryFinally    = 76
	stmtTagYield         = 77
	stmtTagVarDeclStmt   = 78
	stmtTagFunctionDecl  = 79
)

type StmtExprStmt struct{ Value Expr }

type StmtBlock struct {
	Range      FileRange
	Statements []Stmt
}

type StmtAssertBlock struct{ Statements []Stmt }
type StmtEmpty struct{}
type StmtAssert struct{ Value Assert }
type StmtLabeled struct{ Body Stmt }

type StmtBreak struct {
	Offset FileOffset
	Label  uint32
}

type StmtWhile struct {
	Offset    FileOffset
	Condition Expr
	Body      Stmt
}

type StmtDoWhile struct {
	Offset    FileOffset
	Body      Stmt
	Condition Expr
}

type StmtFor struct {
	Offset    FileOffset
	Vars      []*VarDecl
	Condition *Expr
	Updates   []Expr
	Body      Stmt
}

// StmtForIn is the synchronous for-in form (tag 70); StmtAsyncForIn (tag 80)
// is the same shape for an `await for` loop. Kept as distinct Go types
// because the wire tag — not a flag — is what distinguishes them.
type StmtForIn struct {
	Offset     FileOffset
	BodyOffset FileOffset
	Var        *VarDecl
	Iterable   Expr
	Body       Stmt
}

type StmtAsyncForIn struct {
	Offset     FileOffset
	BodyOffset FileOffset
	Var        *VarDecl
	Iterable   Expr
	Body       Stmt
}

type StmtSwitch struct {
	Offset FileOffset
	Expr   Expr
	Cases  []SwitchCase
}

type StmtContinueSwitch struct {
	Offset    FileOffset
	CaseIndex uint32
}

type StmtIf struct {
	Offset    FileOffset
	Condition Expr
	Then      Stmt
	Otherwise Stmt
}

type StmtReturn struct {
	Offset FileOffset
	Expr   *Expr
}

type StmtTryCatch struct {
	Body    Stmt
	Flags   uint8
	Catches []Catch
}

type StmtTryFinally struct {
	Body      Stmt
	Finalizer Stmt
}

type StmtYield struct {
	Offset FileOffset
	Flags  uint8
	Expr   Expr
}

type StmtVarDeclStmt struct{ Var *VarDecl }

type StmtFunctionDecl struct {
	Offset   FileOffset
	Var      *VarDecl
	Function *Function
}

func (StmtExprStmt) isStmt()       {}
func (StmtBlock) isStmt()          {}
func (StmtAssertBlock) isStmt()    {}
func (StmtEmpty) isStmt()          {}
func (StmtAssert) isStmt()         {}
func (StmtLabeled) isStmt()        {}
func (StmtBreak) isStmt()          {}
func (StmtWhile) isStmt()          {}
func (StmtDoWhile) isStmt()        {}
func (StmtFor) isStmt()            {}
func (StmtForIn) isStmt()          {}
func (StmtAsyncForIn) isStmt()     {}
func (StmtSwitch) isStmt()         {}
func (StmtContinueSwitch) isStmt() {}
func (StmtIf) isStmt()             {}
func (StmtReturn) isStmt()         {}
func (StmtTryCatch) isStmt()       {}
func (StmtTryFinally) isStmt()     {}
func (StmtYield) isStmt()          {}
func (StmtVarDeclStmt) isStmt()    {}
func (StmtFunctionDecl) isStmt()   {}

func ReadStmt(r *wire.Reader) (Stmt, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case stmtTagExprStmt:
		e, err := ReadExpr(r)
		return StmtExprStmt{Value: e}, err
	case stmtTagBlock:
		var v StmtBlock
		if v.Range, err = ReadFileRange(r); err != nil {
			return nil, err
		}
		if v.Statements, err = wire.ReadList(r, ReadStmt); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagAssertBlock:
		stmts, err := wire.ReadList(r, ReadStmt)
		return StmtAssertBlock{Statements: stmts}, err
	case stmtTagEmpty:
		return StmtEmpty{}, nil
	case stmtTagAssert:
		a, err := ReadAssert(r)
		return StmtAssert{Value: a}, err
	case stmtTagLabeled:
		body, err := ReadStmt(r)
		return StmtLabeled{Body: body}, err
	case stmtTagBreak:
		var v StmtBreak
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Label, err = r.DecodeVarUint(); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagWhile:
		var v StmtWhile
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Condition, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagDoWhile:
		var v StmtDoWhile
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		if v.Condition, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagFor:
		var v StmtFor
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Vars, err = wire.ReadList(r, ReadVarDecl); err != nil {
			return nil, err
		}
		if v.Condition, err = wire.ReadOption(r, ReadExpr); err != nil {
			return nil, err
		}
		if v.Updates, err = wire.ReadList(r, ReadExpr); err != nil {
			return nil, err
		}
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagForIn:
		var v StmtForIn
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.BodyOffset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Var, err = ReadVarDecl(r); err != nil {
			return nil, err
		}
		if v.Iterable, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagAsyncForIn:
		var v StmtAsyncForIn
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.BodyOffset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Var, err = ReadVarDecl(r); err != nil {
			return nil, err
		}
		if v.Iterable, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagSwitch:
		var v StmtSwitch
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Expr, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Cases, err = wire.ReadList(r, ReadSwitchCase); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagContinueSwitch:
		var v StmtContinueSwitch
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.CaseIndex, err = r.DecodeVarUint(); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagIf:
		var v StmtIf
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Condition, err = ReadExpr(r); err != nil {
			return nil, err
		}
		if v.Then, err = ReadStmt(r); err != nil {
			return nil, err
		}
		if v.Otherwise, err = ReadStmt(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagReturn:
		var v StmtReturn
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Expr, err = wire.ReadOption(r, ReadExpr); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagTryCatch:
		var v StmtTryCatch
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		if v.Flags, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Catches, err = wire.ReadList(r, ReadCatch); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagTryFinally:
		var v StmtTryFinally
		if v.Body, err = ReadStmt(r); err != nil {
			return nil, err
		}
		if v.Finalizer, err = ReadStmt(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagYield:
		var v StmtYield
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Flags, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if v.Expr, err = ReadExpr(r); err != nil {
			return nil, err
		}
		return v, nil
	case stmtTagVarDeclStmt:
		v, err := ReadVarDecl(r)
		return StmtVarDeclStmt{Var: v}, err
	case stmtTagFunctionDecl:
		var v StmtFunctionDecl
		if v.Offset, err = ReadFileOffset(r); err != nil {
			return nil, err
		}
		if v.Var, err = ReadVarDecl(r); err != nil {
			return nil, err
		}
		if v.Function, err = ReadFunction(r); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, wire.UnknownTag("Stmt", tag)
	}
}

func WriteStmt(w *wire.Writer, s Stmt) error {
	switch v := s.(type) {
	case StmtExprStmt:
		if err := w.WriteU8(stmtTagExprStmt); err != nil {
			return err
		}
		return WriteExpr(w, v.Value)
	case StmtBlock:
		if err := w.WriteU8(stmtTagBlock); err != nil {
			return err
		}
		if err := WriteFileRange(w, v.Range); err != nil {
			return err
		}
		return wire.WriteList(w, v.Statements, WriteStmt)
	case StmtAssertBlock:
		if err := w.WriteU8(stmtTagAssertBlock); err != nil {
			return err
		}
		return wire.WriteList(w, v.Statements, WriteStmt)
	case StmtEmpty:
		return w.WriteU8(stmtTagEmpty)
	case StmtAssert:
		if err := w.WriteU8(stmtTagAssert); err != nil {
			return err
		}
		return WriteAssert(w, v.Value)
	case StmtLabeled:
		if err := w.WriteU8(stmtTagLabeled); err != nil {
			return err
		}
		return WriteStmt(w, v.Body)
	case StmtBreak:
		if err := w.WriteU8(stmtTagBreak); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return w.EncodeVarUint(v.Label)
	case StmtWhile:
		if err := w.WriteU8(stmtTagWhile); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Condition); err != nil {
			return err
		}
		return WriteStmt(w, v.Body)
	case StmtDoWhile:
		if err := w.WriteU8(stmtTagDoWhile); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteStmt(w, v.Body); err != nil {
			return err
		}
		return WriteExpr(w, v.Condition)
	case StmtFor:
		if err := w.WriteU8(stmtTagFor); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.Vars, WriteVarDecl); err != nil {
			return err
		}
		if err := wire.WriteOption(w, v.Condition, WriteExpr); err != nil {
			return err
		}
		if err := wire.WriteList(w, v.Updates, WriteExpr); err != nil {
			return err
		}
		return WriteStmt(w, v.Body)
	case StmtForIn:
		if err := w.WriteU8(stmtTagForIn); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.BodyOffset); err != nil {
			return err
		}
		if err := WriteVarDecl(w, v.Var); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Iterable); err != nil {
			return err
		}
		return WriteStmt(w, v.Body)
	case StmtAsyncForIn:
		if err := w.WriteU8(stmtTagAsyncForIn); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.BodyOffset); err != nil {
			return err
		}
		if err := WriteVarDecl(w, v.Var); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Iterable); err != nil {
			return err
		}
		return WriteStmt(w, v.Body)
	case StmtSwitch:
		if err := w.WriteU8(stmtTagSwitch); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Expr); err != nil {
			return err
		}
		return wire.WriteList(w, v.Cases, WriteSwitchCase)
	case StmtContinueSwitch:
		if err := w.WriteU8(stmtTagContinueSwitch); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return w.EncodeVarUint(v.CaseIndex)
	case StmtIf:
		if err := w.WriteU8(stmtTagIf); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteExpr(w, v.Condition); err != nil {
			return err
		}
		if err := WriteStmt(w, v.Then); err != nil {
			return err
		}
		return WriteStmt(w, v.Otherwise)
	case StmtReturn:
		if err := w.WriteU8(stmtTagReturn); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		return wire.WriteOption(w, v.Expr, WriteExpr)
	case StmtTryCatch:
		if err := w.WriteU8(stmtTagTryCatch); err != nil {
			return err
		}
		if err := WriteStmt(w, v.Body); err != nil {
			return err
		}
		if err := w.WriteU8(v.Flags); err != nil {
			return err
		}
		return wire.WriteList(w, v.Catches, WriteCatch)
	case StmtTryFinally:
		if err := w.WriteU8(stmtTagTryFinally); err != nil {
			return err
		}
		if err := WriteStmt(w, v.Body); err != nil {
			return err
		}
		return WriteStmt(w, v.Finalizer)
	case StmtYield:
		if err := w.WriteU8(stmtTagYield); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := w.WriteU8(v.Flags); err != nil {
			return err
		}
		return WriteExpr(w, v.Expr)
	case StmtVarDeclStmt:
		if err := w.WriteU8(stmtTagVarDeclStmt); err != nil {
			return err
		}
		return WriteVarDecl(w, v.Var)
	case StmtFunctionDecl:
		if err := w.WriteU8(stmtTagFunctionDecl); err != nil {
			return err
		}
		if err := WriteFileOffset(w, v.Offset); err != nil {
			return err
		}
		if err := WriteVarDecl(w, v.Var); err != nil {
			return err
		}
		return WriteFunction(w, v.Function)
	default:
		return wire.UnknownTag("Stmt", 0)
	}
}
