package locobasic

import (
	"strconv"
	"strings"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/intrinsic"
	"github.com/soypat/go-locobasic/token"
)

// Pratt parsing functions. a.k.a: Semantic Code.
type (
	statementParseFn func() ast.Statement // For statement-level constructs
)

// Binding powers of the expression grammar. All binary operators are left associative.
const (
	bpNone    = 0
	bpXOR     = 20
	bpOR      = 21
	bpAND     = 22
	bpNOT     = 23
	bpCompare = 30
	bpAdd     = 40
	bpMOD     = 50
	bpIntDiv  = 60
	bpMul     = 70
	bpUnary   = 80
	bpPow     = 90
	bpAddress = 95
)

// lbp returns the left binding power of tok as an infix operator.
func lbp(tok token.Token) int {
	switch tok {
	case token.XOR:
		return bpXOR
	case token.OR:
		return bpOR
	case token.AND:
		return bpAND
	case token.Equals, token.Less, token.Greater, token.LessEq, token.GreaterEq, token.NotEquals:
		return bpCompare
	case token.Plus, token.Minus:
		return bpAdd
	case token.MOD:
		return bpMOD
	case token.Backslash:
		return bpIntDiv
	case token.Asterisk, token.Slash:
		return bpMul
	case token.Caret:
		return bpPow
	}
	return bpNone
}

// bailout is raised by fatal and recovered by Parse.
type bailout struct{}

// Parser builds one [ast.Line] per BASIC line out of lexemes. A Parser is
// reset at the start of every Parse call and may be reused, but not concurrently.
type Parser struct {
	lx      []Lexeme
	idx     int
	current Lexeme
	peek    Lexeme
	// prevEnd is the source offset after the last consumed lexeme.
	prevEnd int

	label     string // label of the line being parsed.
	lastLine  int
	sawDirect bool

	stmtFns  map[token.Token]statementParseFn
	warnings []*Error
	err      *Error
}

// Reset discards all state and positions the parser at the first lexeme.
func (p *Parser) Reset(lexemes []Lexeme) {
	if p.stmtFns == nil {
		p.stmtFns = make(map[token.Token]statementParseFn)
		p.registerStatements()
	}
	*p = Parser{
		lx:      lexemes,
		idx:     -1,
		stmtFns: p.stmtFns,
	}
	p.nextToken()
}

// Parse returns the lines of the program, or the first syntax error.
func (p *Parser) Parse(lexemes []Lexeme) (lines []*ast.Line, err error) {
	p.Reset(lexemes)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			lines, err = nil, p.err
		}
	}()
	for {
		p.skipBlankLines()
		if p.currentTokenIs(token.EOS) {
			break
		}
		lines = append(lines, p.parseLine())
	}
	return lines, nil
}

// Warnings returns the non-fatal diagnostics of the last Parse call.
func (p *Parser) Warnings() []*Error { return p.warnings }

// Err returns the parse error of the last Parse call.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

func (p *Parser) registerStatement(tokenType token.Token, fn statementParseFn) {
	p.stmtFns[tokenType] = fn
}

func (p *Parser) registerStatements() {
	p.registerStatement(token.Identifier, p.parseAssignment)
	p.registerStatement(token.LET, p.parseLet)
	p.registerStatement(token.RSX, p.parseRsx)
	p.registerStatement(token.REM, p.parseRemark)
	p.registerStatement(token.Apostrophe, p.parseRemark)
	p.registerStatement(token.ELSE, p.parseStrayElse)
	p.registerStatement(token.DATA, p.parseData)
	p.registerStatement(token.DEF, p.parseDefFn)
	p.registerStatement(token.IF, p.parseIf)
	p.registerStatement(token.FOR, p.parseFor)
	p.registerStatement(token.ON, p.parseOn)
	p.registerStatement(token.PRINT, p.parsePrint)
	p.registerStatement(token.INPUT, p.parseInput)
	p.registerStatement(token.LINE, p.parseInput)
	p.registerStatement(token.MIDSTR, p.parseMidAssign)
	p.registerStatement(token.RUN, p.parseRun)
	p.registerStatement(token.EVERY, p.parseTimer)
	p.registerStatement(token.AFTER, p.parseTimer)
	p.registerStatement(token.CHAIN, p.parseChain)
	// Keywords that start multi-word commands.
	p.registerStatement(token.CLEAR, p.parseComposite)
	p.registerStatement(token.GRAPHICS, p.parseComposite)
	p.registerStatement(token.KEY, p.parseComposite)
	p.registerStatement(token.RESUME, p.parseComposite)
	p.registerStatement(token.SPEED, p.parseComposite)
	p.registerStatement(token.SYMBOL, p.parseComposite)
	p.registerStatement(token.WINDOW, p.parseComposite)
}

// Helper methods

func (p *Parser) nextToken() {
	if p.idx >= 0 && p.idx < len(p.lx) {
		p.prevEnd = p.lx[p.idx].End()
	}
	if p.idx < len(p.lx) {
		p.idx++
	}
	p.current = p.lexemeAt(p.idx)
	p.peek = p.lexemeAt(p.idx + 1)
}

func (p *Parser) lexemeAt(i int) Lexeme {
	if i < len(p.lx) {
		return p.lx[i]
	}
	if len(p.lx) > 0 {
		last := p.lx[len(p.lx)-1]
		return Lexeme{Tok: token.EOS, Lit: token.EOS.String(), Pos: last.End()}
	}
	return Lexeme{Tok: token.EOS, Lit: token.EOS.String()}
}

func (p *Parser) currentTokenIs(t token.Token) bool { return p.current.Tok == t }

func (p *Parser) peekTokenIs(t token.Token) bool { return p.peek.Tok == t }

// consumeIf consumes the current token if it matches t.
func (p *Parser) consumeIf(t token.Token) bool {
	if p.currentTokenIs(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches t and fails otherwise.
func (p *Parser) expect(t token.Token) Lexeme {
	if !p.currentTokenIs(t) {
		p.fatal("Expected "+t.Source(), p.current)
	}
	lx := p.current
	p.nextToken()
	return lx
}

// atStatementEnd reports whether the current token ends a statement.
func (p *Parser) atStatementEnd() bool { return p.current.Tok.IsStatementEnd() }

func (p *Parser) skipBlankLines() {
	for p.consumeIf(token.EOL) {
	}
}

func (p *Parser) fatal(msg string, lx Lexeme) {
	p.err = p.diag(KindSyntax, msg, lx)
	panic(bailout{})
}

func (p *Parser) warn(msg string, lx Lexeme) {
	p.warnings = append(p.warnings, p.diag(KindWarning, msg, lx))
}

func (p *Parser) diag(kind ErrorKind, msg string, lx Lexeme) *Error {
	e := &Error{Kind: kind, Msg: msg, Pos: lx.Pos, Len: lx.Len, Line: p.label}
	if lx.Tok != token.EOS && lx.Tok != token.EOL {
		e.Value = lx.Raw()
	}
	return e
}

// parseLine parses an optionally numbered line up to and including its EOL.
func (p *Parser) parseLine() *ast.Line {
	line := &ast.Line{StartPos: p.current.Pos}
	if p.sawDirect {
		p.fatal("Direct command must be the last line", p.current)
	}
	if p.currentTokenIs(token.Number) {
		numLx := p.current
		n, err := strconv.Atoi(numLx.Lit)
		if err != nil || n < 1 || n > 65535 {
			p.fatal("Bad line number", numLx)
		}
		p.label = strconv.Itoa(n)
		if n <= p.lastLine {
			p.fatal("Expected increasing line number", numLx)
		}
		p.lastLine = n
		line.Number, line.Label, line.NumLen = n, p.label, numLx.Len
		p.nextToken()
	} else {
		p.label = ""
		p.sawDirect = true
	}
	line.Stmts = p.parseStatements(false)
	line.EndPos = p.prevEnd
	if line.EndPos < line.StartPos {
		line.EndPos = line.StartPos
	}
	if !p.currentTokenIs(token.EOS) {
		p.expect(token.EOL)
	}
	return line
}

// parseStatements parses colon separated statements up to the end of the line.
// In a branch of IF the list also ends before ELSE.
func (p *Parser) parseStatements(inBranch bool) []ast.Statement {
	var stmts []ast.Statement
	for {
		switch p.current.Tok {
		case token.EOL, token.EOS:
			return stmts
		case token.ELSE:
			if inBranch {
				return stmts
			}
		case token.Colon:
			p.nextToken() // empty statement.
			continue
		}
		stmts = append(stmts, p.parseStatement())
		switch p.current.Tok {
		case token.Colon:
			p.nextToken()
		case token.EOL, token.EOS, token.ELSE, token.Apostrophe:
		default:
			p.fatal("Expected end of statement", p.current)
		}
	}
}

func (p *Parser) parseStatement() ast.Statement {
	if fn := p.stmtFns[p.current.Tok]; fn != nil {
		return fn()
	}
	if p.current.Tok.IsCommand() {
		kw := p.current
		p.nextToken()
		return p.parseCommandArgs(kw.Tok, kw.Pos)
	}
	// Only assignments and commands may start a statement.
	x := p.expression(bpNone)
	p.fatal("Bad expression statement", Lexeme{Tok: token.Illegal, Pos: x.Pos(), Len: x.End() - x.Pos()})
	return nil
}

// parseCommandArgs parses the arguments of kw following its signature.
func (p *Parser) parseCommandArgs(kw token.Token, start int) *ast.Command {
	args := p.parseArgs(kw.Signature().Args, false)
	return &ast.Command{Kw: kw, Args: args, StartPos: start, EndPos: p.prevEnd}
}

// atArgsEnd reports whether an argument list ends at the current token.
func (p *Parser) atArgsEnd(inParens bool) bool {
	if inParens && (p.currentTokenIs(token.RParen) || p.currentTokenIs(token.RBracket)) {
		return true
	}
	return p.atStatementEnd()
}

// parseArgs parses a comma separated argument list driven by a keyword
// signature. Omitted null slots and the default stream become *ast.NullArg.
func (p *Parser) parseArgs(specs []token.ArgSpec, inParens bool) []ast.Expression {
	var args []ast.Expression
	first := true // no argument consumed yet.
	i := 0
	for ; i < len(specs); i++ {
		spec := specs[i]
		if spec.Cat == token.CatStream {
			switch {
			case first && p.currentTokenIs(token.Hash):
				args = append(args, p.parseStream())
				first = false
			case !first && p.currentTokenIs(token.Comma) && p.peekTokenIs(token.Hash):
				p.nextToken()
				args = append(args, p.parseStream())
			case spec.Null:
				args = append(args, &ast.NullArg{Stream: true, StartPos: p.current.Pos})
			case spec.Optional:
			default:
				p.fatal("Expected #", p.current)
			}
			continue
		}
		if !first {
			if !p.currentTokenIs(token.Comma) {
				break
			}
			p.nextToken()
			if spec.Null && (p.currentTokenIs(token.Comma) || p.atArgsEnd(inParens)) {
				args = append(args, &ast.NullArg{StartPos: p.current.Pos})
				if spec.Repeat {
					i--
				}
				continue
			}
			if p.atArgsEnd(inParens) {
				p.fatal("Expected "+spec.Cat.Describe(), p.current)
			}
		} else {
			if spec.Null && p.currentTokenIs(token.Comma) {
				args = append(args, &ast.NullArg{StartPos: p.current.Pos})
				first = false
				continue
			}
			if spec.Optional && p.currentTokenIs(token.Hash) && hasStreamAfter(specs[i+1:]) {
				// LIST #8: the optional slot before the stream is empty.
				args = append(args, &ast.NullArg{StartPos: p.current.Pos})
				continue
			}
			if p.atArgsEnd(inParens) {
				break
			}
		}
		args = append(args, p.parseArg(spec))
		first = false
		if spec.Repeat {
			i--
		}
	}
	for ; i < len(specs); i++ {
		if spec := specs[i]; !spec.Optional && !spec.Repeat {
			p.fatal("Expected "+spec.Cat.Describe(), p.current)
		}
	}
	return args
}

func hasStreamAfter(specs []token.ArgSpec) bool {
	for _, spec := range specs {
		if spec.Cat == token.CatStream {
			return true
		}
	}
	return false
}

// parseArg parses one argument and checks it against the expected category.
func (p *Parser) parseArg(spec token.ArgSpec) ast.Expression {
	switch spec.Cat {
	case token.CatLine:
		return p.parseLineRef()
	case token.CatLineRange:
		return p.parseLineRange()
	case token.CatLetter:
		return p.parseLetterRange()
	case token.CatVariable:
		return p.parseVariable()
	}
	start := p.current
	x := p.expression(bpNone)
	switch spec.Cat {
	case token.CatNumber:
		if _, ok := x.(*ast.StringLit); ok {
			p.fatal("Expected number", start)
		}
	case token.CatString:
		if _, ok := x.(*ast.NumberLit); ok {
			p.fatal("Expected string", start)
		}
	}
	return x
}

func (p *Parser) parseStream() *ast.Stream {
	hash := p.expect(token.Hash)
	x := p.expression(bpNone)
	return &ast.Stream{X: x, StartPos: hash.Pos, EndPos: p.prevEnd}
}

// parseLineRef parses a line number used as jump target or argument.
func (p *Parser) parseLineRef() *ast.LineRef {
	lx := p.current
	if lx.Tok != token.Number {
		p.fatal("Expected line number", lx)
	}
	n, err := strconv.Atoi(lx.Lit)
	if err != nil || n > 65535 {
		p.fatal("Bad line number", lx)
	}
	p.nextToken()
	return &ast.LineRef{Number: n, StartPos: lx.Pos, EndPos: lx.End()}
}

// parseLineRange parses [from][-[to]].
func (p *Parser) parseLineRange() *ast.LineRange {
	r := &ast.LineRange{StartPos: p.current.Pos}
	if p.currentTokenIs(token.Number) {
		r.From = p.parseLineRef()
	}
	if p.currentTokenIs(token.Minus) {
		r.Dash = true
		p.nextToken()
		if p.currentTokenIs(token.Number) {
			r.To = p.parseLineRef()
		}
	}
	if r.From == nil && !r.Dash {
		p.fatal("Expected line range", p.current)
	}
	if r.From != nil && r.To != nil && r.To.Number < r.From.Number {
		p.fatal("Undefined range", Lexeme{Tok: token.Illegal, Lit: "", Pos: r.StartPos, Len: r.To.EndPos - r.StartPos})
	}
	r.EndPos = p.prevEnd
	return r
}

// parseLetterRange parses a letter or letter range as in DEFINT a-c.
func (p *Parser) parseLetterRange() *ast.LetterRange {
	start := p.current.Pos
	from := p.parseLetter()
	r := &ast.LetterRange{From: from, To: from, StartPos: start}
	if p.consumeIf(token.Minus) {
		r.To = p.parseLetter()
	}
	r.EndPos = p.prevEnd
	return r
}

func (p *Parser) parseLetter() byte {
	lx := p.current
	if lx.Tok != token.Identifier || len(lx.Lit) != 1 {
		p.fatal("Expected letter", lx)
	}
	p.nextToken()
	return strings.ToLower(lx.Lit)[0]
}

// parseVariable parses a plain or indexed variable reference.
func (p *Parser) parseVariable() *ast.Ident {
	lx := p.current
	if lx.Tok != token.Identifier {
		p.fatal("Expected variable", lx)
	}
	p.nextToken()
	return p.parseIdent(lx)
}

// parseIdent parses the optional index of an identifier already consumed.
func (p *Parser) parseIdent(lx Lexeme) *ast.Ident {
	id := &ast.Ident{Name: lx.Lit, StartPos: lx.Pos, EndPos: lx.End()}
	if !p.currentTokenIs(token.LParen) && !p.currentTokenIs(token.LBracket) {
		return id
	}
	id.Bracket = p.currentTokenIs(token.LBracket)
	open := p.current
	p.nextToken()
	for {
		id.Index = append(id.Index, p.expression(bpNone))
		if !p.consumeIf(token.Comma) {
			break
		}
	}
	p.expectClose(open)
	id.EndPos = p.prevEnd
	return id
}

// expectClose consumes the bracket closing open. A mismatched closing
// bracket is accepted with a warning.
func (p *Parser) expectClose(open Lexeme) {
	want, other := token.RParen, token.RBracket
	if open.Tok == token.LBracket {
		want, other = token.RBracket, token.RParen
	}
	switch p.current.Tok {
	case want:
	case other:
		p.warn("Inconsistent bracket style", p.current)
	default:
		p.fatal("Expected "+want.Source(), p.current)
	}
	p.nextToken()
}

// expression is the Pratt parser core.
func (p *Parser) expression(rbp int) ast.Expression {
	t := p.current
	p.nextToken()
	left := p.nud(t)
	for rbp < lbp(p.current.Tok) {
		t = p.current
		p.nextToken()
		left = p.led(t, left)
	}
	return left
}

// led combines left with the operand following the infix operator t.
func (p *Parser) led(t Lexeme, left ast.Expression) ast.Expression {
	right := p.expression(lbp(t.Tok))
	return &ast.BinaryExpr{Op: t.Tok, Left: left, Right: right, StartPos: left.Pos(), EndPos: right.End()}
}

// nud parses a literal, prefix operator or function call starting with t.
func (p *Parser) nud(t Lexeme) ast.Expression {
	switch t.Tok {
	case token.Number, token.HexNumber, token.BinNumber:
		return p.parseNumber(t)
	case token.String:
		return &ast.StringLit{
			Value:        t.Lit,
			Unterminated: len(t.Orig) < 2 || !strings.HasSuffix(t.Orig, `"`),
			StartPos:     t.Pos,
			EndPos:       t.End(),
		}
	case token.Identifier:
		return p.parseIdent(t)
	case token.FN:
		return p.parseFnCall(t)
	case token.Minus, token.Plus:
		x := p.expression(bpUnary)
		return &ast.UnaryExpr{Op: t.Tok, X: x, StartPos: t.Pos, EndPos: x.End()}
	case token.NOT:
		x := p.expression(bpNOT)
		return &ast.UnaryExpr{Op: t.Tok, X: x, StartPos: t.Pos, EndPos: x.End()}
	case token.At:
		if !p.currentTokenIs(token.Identifier) {
			p.fatal("Expected variable", p.current)
		}
		id := p.parseVariable()
		return &ast.AddressOf{X: id, StartPos: t.Pos, EndPos: id.End()}
	case token.LParen:
		x := p.expression(bpNone)
		p.expect(token.RParen)
		return &ast.ParenExpr{X: x, StartPos: t.Pos, EndPos: p.prevEnd}
	}
	if t.Tok.IsFunction() {
		return p.parseFuncCall(t)
	}
	switch t.Tok {
	case token.EOS, token.EOL:
		p.fatal("Unexpected end of line", t)
	}
	p.fatal("Unexpected token", t)
	return nil
}

func (p *Parser) parseNumber(t Lexeme) *ast.NumberLit {
	n := &ast.NumberLit{Tok: t.Tok, Lit: t.Raw(), StartPos: t.Pos, EndPos: t.End()}
	var err error
	switch t.Tok {
	case token.HexNumber:
		var v int16
		v, err = intrinsic.ParseHex(strings.TrimLeft(t.Lit[1:], "hH"))
		n.Value = float64(v)
	case token.BinNumber:
		var v int16
		v, err = intrinsic.ParseBin(t.Lit[2:])
		n.Value = float64(v)
	default:
		n.Lit = t.Lit
		n.Value, err = intrinsic.ParseDecimal(t.Lit)
	}
	if err != nil {
		p.fatal(err.Error(), t)
	}
	return n
}

// parseFuncCall parses the arguments of a built-in function. Parentheses
// may be omitted when every argument is optional, as in PI or RND.
func (p *Parser) parseFuncCall(t Lexeme) *ast.FuncCall {
	call := &ast.FuncCall{Fn: t.Tok, StartPos: t.Pos, EndPos: t.End()}
	specs := t.Tok.Signature().Args
	if !p.currentTokenIs(token.LParen) && !p.currentTokenIs(token.LBracket) {
		if len(specs) > 0 && !specs[0].Optional {
			p.fatal("Expected (", p.current)
		}
		return call
	}
	open := p.current
	p.nextToken()
	call.Parens, call.Bracket = true, open.Tok == token.LBracket
	call.Args = p.parseArgs(specs, true)
	p.expectClose(open)
	call.EndPos = p.prevEnd
	return call
}

// parseFnCall parses FNname[(args)].
func (p *Parser) parseFnCall(t Lexeme) *ast.FnCall {
	if !p.currentTokenIs(token.Identifier) {
		p.fatal("Expected function name", p.current)
	}
	name := p.current
	p.nextToken()
	call := &ast.FnCall{Name: name.Lit, StartPos: t.Pos, EndPos: name.End()}
	if !p.currentTokenIs(token.LParen) {
		return call
	}
	p.nextToken()
	call.Parens = true
	if !p.currentTokenIs(token.RParen) {
		for {
			call.Args = append(call.Args, p.expression(bpNone))
			if !p.consumeIf(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen)
	call.EndPos = p.prevEnd
	return call
}
