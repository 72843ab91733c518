package ast

import (
	"strconv"

	"github.com/soypat/go-locobasic/token"
)

type Node interface {
	AppendTokenLiteral(dst []byte) []byte
	// AppendString appends the BASIC source form of the node.
	AppendString(dst []byte) []byte
	Pos() int // position of first character belonging to the node in source.
	End() int // position of first character immediately after the node in source.
}

type Expression interface {
	Node
	expressionNode()
}

type Statement interface {
	Node
	statementNode()
}

// Line is one program line: an optional line number followed by statements.
// The direct (unnumbered) line has Number 0 and an empty Label.
type Line struct {
	Number int
	Label  string
	// NumLen is the source length of the line number, used by source maps.
	NumLen   int
	Stmts    []Statement
	StartPos int
	EndPos   int
}

func (l *Line) AppendTokenLiteral(dst []byte) []byte { return append(dst, l.Label...) }
func (l *Line) AppendString(dst []byte) []byte {
	dst = append(dst, l.Label...)
	for i, stmt := range l.Stmts {
		switch {
		case i > 0:
			dst = append(dst, ": "...)
		case l.Label != "":
			dst = append(dst, ' ')
		}
		dst = stmt.AppendString(dst)
	}
	return dst
}
func (l *Line) Pos() int { return l.StartPos }
func (l *Line) End() int { return l.EndPos }

// IsDirect reports whether the line carries no line number.
func (l *Line) IsDirect() bool { return l.Label == "" }

//
// Statements
//

// Command is a keyword statement whose arguments follow the keyword signature,
// e.g. CLS #1, PLOT 10,20 or GOTO 100. Composite keywords such as ON BREAK GOSUB
// are single Commands with the composite token.
type Command struct {
	Kw   token.Token
	Args []Expression
	// Implicit is set for a GOTO written as a bare line number after THEN or ELSE.
	Implicit bool
	StartPos int
	EndPos   int
}

func (c *Command) statementNode() {}
func (c *Command) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, c.Kw.Source()...)
}
func (c *Command) AppendString(dst []byte) []byte {
	if c.Implicit && len(c.Args) == 1 {
		return c.Args[0].AppendString(dst)
	}
	if c.Kw == token.ONSQGOSUB && len(c.Args) == 2 {
		dst = append(dst, "ON SQ("...)
		dst = c.Args[0].AppendString(dst)
		dst = append(dst, ") GOSUB "...)
		return c.Args[1].AppendString(dst)
	}
	dst = c.AppendTokenLiteral(dst)
	switch c.Kw {
	case token.EVERY, token.AFTER:
		if n := len(c.Args); n > 0 {
			dst = appendArgs(dst, c.Args[:n-1], " ")
			dst = append(dst, " GOSUB "...)
			return c.Args[n-1].AppendString(dst)
		}
	case token.CHAINMERGE:
		if n := len(c.Args); n > 0 {
			if _, ok := c.Args[n-1].(*LineRange); ok {
				dst = appendArgs(dst, c.Args[:n-1], " ")
				dst = append(dst, ", DELETE "...)
				return c.Args[n-1].AppendString(dst)
			}
		}
	}
	return appendArgs(dst, c.Args, " ")
}
func (c *Command) Pos() int { return c.StartPos }
func (c *Command) End() int { return c.EndPos }

// appendArgs appends a comma separated argument list. Synthetic stream
// arguments print nothing.
func appendArgs(dst []byte, args []Expression, lead string) []byte {
	first := true
	for _, arg := range args {
		if n, ok := arg.(*NullArg); ok && n.Stream {
			continue
		}
		if first {
			dst = append(dst, lead...)
			first = false
		} else {
			dst = append(dst, ", "...)
		}
		dst = arg.AppendString(dst)
	}
	return dst
}

// Assign is a variable assignment with or without LET.
type Assign struct {
	Target   *Ident
	Value    Expression
	Let      bool
	StartPos int
	EndPos   int
}

func (a *Assign) statementNode() {}
func (a *Assign) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, '=')
}
func (a *Assign) AppendString(dst []byte) []byte {
	if a.Let {
		dst = append(dst, "LET "...)
	}
	dst = a.Target.AppendString(dst)
	dst = append(dst, " = "...)
	return a.Value.AppendString(dst)
}
func (a *Assign) Pos() int { return a.StartPos }
func (a *Assign) End() int { return a.EndPos }

// MidAssign is the MID$(s$,start[,len])=x statement.
type MidAssign struct {
	Target   *Ident
	Start    Expression
	Len      Expression // nil if omitted.
	Value    Expression
	StartPos int
	EndPos   int
}

func (m *MidAssign) statementNode() {}
func (m *MidAssign) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "MID$"...)
}
func (m *MidAssign) AppendString(dst []byte) []byte {
	dst = append(dst, "MID$("...)
	dst = m.Target.AppendString(dst)
	dst = append(dst, ", "...)
	dst = m.Start.AppendString(dst)
	if m.Len != nil {
		dst = append(dst, ", "...)
		dst = m.Len.AppendString(dst)
	}
	dst = append(dst, ") = "...)
	return m.Value.AppendString(dst)
}
func (m *MidAssign) Pos() int { return m.StartPos }
func (m *MidAssign) End() int { return m.EndPos }

// IfStmt is a single line IF cond THEN ... [ELSE ...].
type IfStmt struct {
	Cond     Expression
	Then     []Statement
	Else     []Statement
	HasElse  bool
	StartPos int
	EndPos   int
}

func (s *IfStmt) statementNode() {}
func (s *IfStmt) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "IF"...)
}
func (s *IfStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "IF "...)
	dst = s.Cond.AppendString(dst)
	dst = append(dst, " THEN "...)
	dst = appendStmts(dst, s.Then)
	if s.HasElse {
		dst = append(dst, " ELSE "...)
		dst = appendStmts(dst, s.Else)
	}
	return dst
}
func (s *IfStmt) Pos() int { return s.StartPos }
func (s *IfStmt) End() int { return s.EndPos }

func appendStmts(dst []byte, stmts []Statement) []byte {
	for i, stmt := range stmts {
		if i > 0 {
			dst = append(dst, ": "...)
		}
		dst = stmt.AppendString(dst)
	}
	return dst
}

// ForStmt is FOR v = start TO end [STEP step].
type ForStmt struct {
	Var      *Ident
	Start    Expression
	Stop     Expression
	Step     Expression // nil when no STEP.
	StartPos int
	EndPos   int
}

func (s *ForStmt) statementNode() {}
func (s *ForStmt) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "FOR"...)
}
func (s *ForStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "FOR "...)
	dst = s.Var.AppendString(dst)
	dst = append(dst, " = "...)
	dst = s.Start.AppendString(dst)
	dst = append(dst, " TO "...)
	dst = s.Stop.AppendString(dst)
	if s.Step != nil {
		dst = append(dst, " STEP "...)
		dst = s.Step.AppendString(dst)
	}
	return dst
}
func (s *ForStmt) Pos() int { return s.StartPos }
func (s *ForStmt) End() int { return s.EndPos }

// OnJump is ON n GOTO|GOSUB line, line...
type OnJump struct {
	Kw       token.Token // ONGOTO or ONGOSUB.
	Index    Expression
	Targets  []*LineRef
	StartPos int
	EndPos   int
}

func (s *OnJump) statementNode() {}
func (s *OnJump) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "ON"...)
}
func (s *OnJump) AppendString(dst []byte) []byte {
	dst = append(dst, "ON "...)
	dst = s.Index.AppendString(dst)
	dst = append(dst, ' ')
	dst = append(dst, s.Kw.Source()...)
	for i, t := range s.Targets {
		if i == 0 {
			dst = append(dst, ' ')
		} else {
			dst = append(dst, ", "...)
		}
		dst = t.AppendString(dst)
	}
	return dst
}
func (s *OnJump) Pos() int { return s.StartPos }
func (s *OnJump) End() int { return s.EndPos }

// DataStmt holds DATA items: *StringLit, *Unquoted or *NullArg for empty slots.
type DataStmt struct {
	Items    []Expression
	StartPos int
	EndPos   int
}

func (s *DataStmt) statementNode() {}
func (s *DataStmt) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "DATA"...)
}
func (s *DataStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "DATA"...)
	for i, item := range s.Items {
		if i == 0 {
			dst = append(dst, ' ')
		} else {
			dst = append(dst, ',')
		}
		dst = item.AppendString(dst)
	}
	return dst
}
func (s *DataStmt) Pos() int { return s.StartPos }
func (s *DataStmt) End() int { return s.EndPos }

// DefFn is DEF FNname[(params)] = body.
type DefFn struct {
	Name     *Ident // name without the FN prefix.
	Params   []*Ident
	Body     Expression
	StartPos int
	EndPos   int
}

func (s *DefFn) statementNode() {}
func (s *DefFn) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "DEF"...)
}
func (s *DefFn) AppendString(dst []byte) []byte {
	dst = append(dst, "DEF FN"...)
	dst = s.Name.AppendString(dst)
	if len(s.Params) > 0 {
		dst = append(dst, '(')
		for i, p := range s.Params {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = p.AppendString(dst)
		}
		dst = append(dst, ')')
	}
	dst = append(dst, " = "...)
	return s.Body.AppendString(dst)
}
func (s *DefFn) Pos() int { return s.StartPos }
func (s *DefFn) End() int { return s.EndPos }

// Remark is a REM or apostrophe comment. Text keeps everything after the keyword.
type Remark struct {
	Kw       token.Token // REM, Apostrophe or ELSE for a stray ELSE.
	Text     string
	StartPos int
	EndPos   int
}

func (s *Remark) statementNode() {}
func (s *Remark) AppendTokenLiteral(dst []byte) []byte {
	if s.Kw == token.Apostrophe {
		return append(dst, '\'')
	}
	return append(dst, s.Kw.Source()...)
}
func (s *Remark) AppendString(dst []byte) []byte {
	dst = s.AppendTokenLiteral(dst)
	return append(dst, s.Text...)
}
func (s *Remark) Pos() int { return s.StartPos }
func (s *Remark) End() int { return s.EndPos }

// PrintStmt is PRINT [#s,] items. Items keep *Separator nodes.
type PrintStmt struct {
	Stream   Expression // *Stream or synthetic *NullArg.
	Items    []Expression
	StartPos int
	EndPos   int
}

func (s *PrintStmt) statementNode() {}
func (s *PrintStmt) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "PRINT"...)
}
func (s *PrintStmt) AppendString(dst []byte) []byte {
	dst = append(dst, "PRINT"...)
	lead := " "
	if st, ok := s.Stream.(*Stream); ok {
		dst = append(dst, ' ')
		dst = st.AppendString(dst)
		lead = ", "
	}
	if len(s.Items) > 0 {
		dst = append(dst, lead...)
		dst = appendItems(dst, s.Items)
	}
	return dst
}
func (s *PrintStmt) Pos() int { return s.StartPos }
func (s *PrintStmt) End() int { return s.EndPos }

// appendItems writes PRINT items. Separators are written tight to the
// preceding item, adjacent expressions are separated by a space.
func appendItems(dst []byte, items []Expression) []byte {
	for i, item := range items {
		_, isSep := item.(*Separator)
		if i > 0 && !isSep {
			dst = append(dst, ' ')
		}
		dst = item.AppendString(dst)
	}
	return dst
}

// InputStmt is INPUT or LINE INPUT.
type InputStmt struct {
	Kw     token.Token // INPUT or LINEINPUT.
	Stream Expression
	// NoCRLF is set by a semicolon right after the keyword or stream.
	NoCRLF    bool
	Prompt    *StringLit  // nil if absent.
	PromptSep token.Token // Semicolon or Comma after the prompt.
	Vars      []*Ident
	StartPos  int
	EndPos    int
}

func (s *InputStmt) statementNode() {}
func (s *InputStmt) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, s.Kw.Source()...)
}
func (s *InputStmt) AppendString(dst []byte) []byte {
	dst = append(dst, s.Kw.Source()...)
	dst = append(dst, ' ')
	if st, ok := s.Stream.(*Stream); ok {
		dst = st.AppendString(dst)
		dst = append(dst, ", "...)
	}
	if s.NoCRLF {
		dst = append(dst, ';')
	}
	if s.Prompt != nil {
		dst = s.Prompt.AppendString(dst)
		dst = append(dst, s.PromptSep.String()...)
		dst = append(dst, ' ')
	}
	for i, v := range s.Vars {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = v.AppendString(dst)
	}
	return dst
}
func (s *InputStmt) Pos() int { return s.StartPos }
func (s *InputStmt) End() int { return s.EndPos }

// RsxStmt is a resident system extension call: |NAME[,args].
type RsxStmt struct {
	Name     string // without the bar.
	Args     []Expression
	StartPos int
	EndPos   int
}

func (s *RsxStmt) statementNode() {}
func (s *RsxStmt) AppendTokenLiteral(dst []byte) []byte {
	dst = append(dst, '|')
	return append(dst, s.Name...)
}
func (s *RsxStmt) AppendString(dst []byte) []byte {
	dst = s.AppendTokenLiteral(dst)
	return appendArgs(dst, s.Args, ", ")
}
func (s *RsxStmt) Pos() int { return s.StartPos }
func (s *RsxStmt) End() int { return s.EndPos }

//
// Expressions
//

// NumberLit is a decimal, &H hex or &X binary literal.
type NumberLit struct {
	Tok      token.Token // Number, HexNumber or BinNumber.
	Lit      string
	Value    float64
	StartPos int
	EndPos   int
}

func (e *NumberLit) expressionNode() {}
func (e *NumberLit) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Lit...)
}
func (e *NumberLit) AppendString(dst []byte) []byte { return e.AppendTokenLiteral(dst) }
func (e *NumberLit) Pos() int                       { return e.StartPos }
func (e *NumberLit) End() int                       { return e.EndPos }

// IsInteger reports whether the literal is written without fraction or exponent.
func (e *NumberLit) IsInteger() bool {
	if e.Tok != token.Number {
		return true
	}
	for i := 0; i < len(e.Lit); i++ {
		if c := e.Lit[i]; c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

type StringLit struct {
	Value string
	// Unterminated is set when the closing quote was missing at end of line.
	Unterminated bool
	StartPos     int
	EndPos       int
}

func (e *StringLit) expressionNode() {}
func (e *StringLit) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Value...)
}
func (e *StringLit) AppendString(dst []byte) []byte {
	dst = append(dst, '"')
	dst = append(dst, e.Value...)
	if !e.Unterminated {
		dst = append(dst, '"')
	}
	return dst
}
func (e *StringLit) Pos() int { return e.StartPos }
func (e *StringLit) End() int { return e.EndPos }

// Unquoted is an unquoted DATA item.
type Unquoted struct {
	Value    string
	StartPos int
	EndPos   int
}

func (e *Unquoted) expressionNode() {}
func (e *Unquoted) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Value...)
}
func (e *Unquoted) AppendString(dst []byte) []byte { return e.AppendTokenLiteral(dst) }
func (e *Unquoted) Pos() int                       { return e.StartPos }
func (e *Unquoted) End() int                       { return e.EndPos }

// Ident is a variable reference, possibly an indexed array element.
// Name keeps the source spelling including a type suffix ($, % or !).
type Ident struct {
	Name  string
	Index []Expression
	// Bracket is set when the index used square brackets.
	Bracket  bool
	StartPos int
	EndPos   int
}

func (e *Ident) expressionNode() {}
func (e *Ident) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Name...)
}
func (e *Ident) AppendString(dst []byte) []byte {
	dst = append(dst, e.Name...)
	if e.Index != nil {
		open, close := byte('('), byte(')')
		if e.Bracket {
			open, close = '[', ']'
		}
		dst = append(dst, open)
		dst = appendArgs(dst, e.Index, "")
		dst = append(dst, close)
	}
	return dst
}
func (e *Ident) Pos() int { return e.StartPos }
func (e *Ident) End() int { return e.EndPos }

// IsArray reports whether the identifier is indexed.
func (e *Ident) IsArray() bool { return e.Index != nil }

type BinaryExpr struct {
	Op       token.Token
	Left     Expression
	Right    Expression
	StartPos int
	EndPos   int
}

func (e *BinaryExpr) expressionNode() {}
func (e *BinaryExpr) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Op.Source()...)
}
func (e *BinaryExpr) AppendString(dst []byte) []byte {
	dst = e.Left.AppendString(dst)
	dst = append(dst, ' ')
	dst = e.AppendTokenLiteral(dst)
	dst = append(dst, ' ')
	return e.Right.AppendString(dst)
}
func (e *BinaryExpr) Pos() int { return e.StartPos }
func (e *BinaryExpr) End() int { return e.EndPos }

// UnaryExpr is unary plus, minus or NOT.
type UnaryExpr struct {
	Op       token.Token
	X        Expression
	StartPos int
	EndPos   int
}

func (e *UnaryExpr) expressionNode() {}
func (e *UnaryExpr) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Op.Source()...)
}
func (e *UnaryExpr) AppendString(dst []byte) []byte {
	dst = e.AppendTokenLiteral(dst)
	if e.Op == token.NOT {
		dst = append(dst, ' ')
	}
	return e.X.AppendString(dst)
}
func (e *UnaryExpr) Pos() int { return e.StartPos }
func (e *UnaryExpr) End() int { return e.EndPos }

type ParenExpr struct {
	X        Expression
	StartPos int
	EndPos   int
}

func (e *ParenExpr) expressionNode() {}
func (e *ParenExpr) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, '(')
}
func (e *ParenExpr) AppendString(dst []byte) []byte {
	dst = append(dst, '(')
	dst = e.X.AppendString(dst)
	return append(dst, ')')
}
func (e *ParenExpr) Pos() int { return e.StartPos }
func (e *ParenExpr) End() int { return e.EndPos }

// FuncCall is a built-in function call such as LEFT$(a$,2) or PI.
type FuncCall struct {
	Fn   token.Token
	Args []Expression
	// Parens is false for argument-less calls written without parentheses.
	Parens   bool
	Bracket  bool
	StartPos int
	EndPos   int
}

func (e *FuncCall) expressionNode() {}
func (e *FuncCall) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Fn.Source()...)
}
func (e *FuncCall) AppendString(dst []byte) []byte {
	dst = e.AppendTokenLiteral(dst)
	if e.Parens {
		open, close := byte('('), byte(')')
		if e.Bracket {
			open, close = '[', ']'
		}
		dst = append(dst, open)
		dst = appendArgs(dst, e.Args, "")
		dst = append(dst, close)
	}
	return dst
}
func (e *FuncCall) Pos() int { return e.StartPos }
func (e *FuncCall) End() int { return e.EndPos }

// FnCall is a call of a user function defined by DEF FN.
type FnCall struct {
	Name     string // without the FN prefix.
	Args     []Expression
	Parens   bool
	StartPos int
	EndPos   int
}

func (e *FnCall) expressionNode() {}
func (e *FnCall) AppendTokenLiteral(dst []byte) []byte {
	dst = append(dst, "FN"...)
	return append(dst, e.Name...)
}
func (e *FnCall) AppendString(dst []byte) []byte {
	dst = e.AppendTokenLiteral(dst)
	if e.Parens {
		dst = append(dst, '(')
		dst = appendArgs(dst, e.Args, "")
		dst = append(dst, ')')
	}
	return dst
}
func (e *FnCall) Pos() int { return e.StartPos }
func (e *FnCall) End() int { return e.EndPos }

// LineRef is a line number used as a jump target or argument.
type LineRef struct {
	Number   int
	StartPos int
	EndPos   int
}

func (e *LineRef) expressionNode() {}
func (e *LineRef) AppendTokenLiteral(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(e.Number), 10)
}
func (e *LineRef) AppendString(dst []byte) []byte { return e.AppendTokenLiteral(dst) }
func (e *LineRef) Pos() int                       { return e.StartPos }
func (e *LineRef) End() int                       { return e.EndPos }

// LineRange is a line number range as in LIST 10-50. Either bound may be nil.
type LineRange struct {
	From     *LineRef
	To       *LineRef
	Dash     bool
	StartPos int
	EndPos   int
}

func (e *LineRange) expressionNode() {}
func (e *LineRange) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, '-')
}
func (e *LineRange) AppendString(dst []byte) []byte {
	if e.From != nil {
		dst = e.From.AppendString(dst)
	}
	if e.Dash {
		dst = append(dst, '-')
	}
	if e.To != nil {
		dst = e.To.AppendString(dst)
	}
	return dst
}
func (e *LineRange) Pos() int { return e.StartPos }
func (e *LineRange) End() int { return e.EndPos }

// LetterRange is a DEFINT-style letter or letter range, lower case.
type LetterRange struct {
	From     byte
	To       byte
	StartPos int
	EndPos   int
}

func (e *LetterRange) expressionNode() {}
func (e *LetterRange) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.From)
}
func (e *LetterRange) AppendString(dst []byte) []byte {
	dst = append(dst, e.From)
	if e.To != e.From {
		dst = append(dst, '-', e.To)
	}
	return dst
}
func (e *LetterRange) Pos() int { return e.StartPos }
func (e *LetterRange) End() int { return e.EndPos }

// Stream is a #n stream selector.
type Stream struct {
	X        Expression
	StartPos int
	EndPos   int
}

func (e *Stream) expressionNode() {}
func (e *Stream) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, '#')
}
func (e *Stream) AppendString(dst []byte) []byte {
	dst = append(dst, '#')
	return e.X.AppendString(dst)
}
func (e *Stream) Pos() int { return e.StartPos }
func (e *Stream) End() int { return e.EndPos }

// NullArg is a synthesized empty argument. A Stream null stands for #0.
type NullArg struct {
	Stream   bool
	StartPos int
}

func (e *NullArg) expressionNode()                      {}
func (e *NullArg) AppendTokenLiteral(dst []byte) []byte { return dst }
func (e *NullArg) AppendString(dst []byte) []byte       { return dst }
func (e *NullArg) Pos() int                             { return e.StartPos }
func (e *NullArg) End() int                             { return e.StartPos }

// Separator is a ';' or ',' between PRINT items.
type Separator struct {
	Tok      token.Token
	StartPos int
}

func (e *Separator) expressionNode() {}
func (e *Separator) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, e.Tok.String()...)
}
func (e *Separator) AppendString(dst []byte) []byte { return e.AppendTokenLiteral(dst) }
func (e *Separator) Pos() int                       { return e.StartPos }
func (e *Separator) End() int                       { return e.StartPos + 1 }

// AddressOf is @var, the address of a variable.
type AddressOf struct {
	X        *Ident
	StartPos int
	EndPos   int
}

func (e *AddressOf) expressionNode() {}
func (e *AddressOf) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, '@')
}
func (e *AddressOf) AppendString(dst []byte) []byte {
	dst = append(dst, '@')
	return e.X.AppendString(dst)
}
func (e *AddressOf) Pos() int { return e.StartPos }
func (e *AddressOf) End() int { return e.EndPos }

// Using is USING fmt; items inside a PRINT statement.
type Using struct {
	Format   Expression
	Items    []Expression
	StartPos int
	EndPos   int
}

func (e *Using) expressionNode() {}
func (e *Using) AppendTokenLiteral(dst []byte) []byte {
	return append(dst, "USING"...)
}
func (e *Using) AppendString(dst []byte) []byte {
	dst = append(dst, "USING "...)
	dst = e.Format.AppendString(dst)
	dst = append(dst, ';')
	if len(e.Items) > 0 {
		dst = append(dst, ' ')
		dst = appendItems(dst, e.Items)
	}
	return dst
}
func (e *Using) Pos() int { return e.StartPos }
func (e *Using) End() int { return e.EndPos }
