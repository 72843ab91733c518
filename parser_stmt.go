package locobasic

import (
	"strings"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/token"
)

func (p *Parser) parseAssignment() ast.Statement {
	target := p.parseVariable()
	if !p.currentTokenIs(token.Equals) {
		p.fatal("Bad expression statement", p.current)
	}
	p.nextToken()
	value := p.expression(bpNone)
	return &ast.Assign{Target: target, Value: value, StartPos: target.Pos(), EndPos: p.prevEnd}
}

func (p *Parser) parseLet() ast.Statement {
	let := p.expect(token.LET)
	target := p.parseVariable()
	p.expect(token.Equals)
	value := p.expression(bpNone)
	return &ast.Assign{Target: target, Value: value, Let: true, StartPos: let.Pos, EndPos: p.prevEnd}
}

func (p *Parser) parseRsx() ast.Statement {
	name := p.expect(token.RSX)
	stmt := &ast.RsxStmt{Name: name.Lit, StartPos: name.Pos}
	for p.consumeIf(token.Comma) {
		stmt.Args = append(stmt.Args, p.expression(bpNone))
	}
	stmt.EndPos = p.prevEnd
	return stmt
}

func (p *Parser) parseRemark() ast.Statement {
	kw := p.current
	p.nextToken()
	rem := &ast.Remark{Kw: kw.Tok, StartPos: kw.Pos, EndPos: kw.End()}
	if p.currentTokenIs(token.Unquoted) {
		rem.Text = p.current.Lit
		p.nextToken()
		rem.EndPos = p.prevEnd
	}
	return rem
}

// parseStrayElse turns an ELSE without IF and the rest of its line into a comment.
func (p *Parser) parseStrayElse() ast.Statement {
	kw := p.expect(token.ELSE)
	p.warn("Unexpected ELSE", kw)
	var sb strings.Builder
	for !p.currentTokenIs(token.EOL) && !p.currentTokenIs(token.EOS) {
		sb.WriteByte(' ')
		if p.currentTokenIs(token.Unquoted) {
			sb.WriteString(strings.TrimLeft(p.current.Lit, " \t"))
		} else {
			sb.WriteString(p.current.Raw())
		}
		p.nextToken()
	}
	return &ast.Remark{Kw: token.ELSE, Text: sb.String(), StartPos: kw.Pos, EndPos: p.prevEnd}
}

// parseData parses DATA items. Empty slots between commas are kept as *ast.NullArg.
func (p *Parser) parseData() ast.Statement {
	kw := p.expect(token.DATA)
	stmt := &ast.DataStmt{StartPos: kw.Pos}
	wantItem := true
	for !p.currentTokenIs(token.EOL) && !p.currentTokenIs(token.EOS) {
		lx := p.current
		switch lx.Tok {
		case token.Comma:
			if wantItem {
				stmt.Items = append(stmt.Items, &ast.NullArg{StartPos: lx.Pos})
			}
			wantItem = true
			p.nextToken()
			continue
		}
		if !wantItem {
			p.fatal("Expected ,", lx)
		}
		switch lx.Tok {
		case token.String:
			stmt.Items = append(stmt.Items, p.nud(p.advance()))
		case token.Unquoted:
			stmt.Items = append(stmt.Items, &ast.Unquoted{Value: lx.Lit, StartPos: lx.Pos, EndPos: lx.End()})
			p.nextToken()
		default:
			p.fatal("Unexpected token", lx)
		}
		wantItem = false
	}
	if wantItem {
		stmt.Items = append(stmt.Items, &ast.NullArg{StartPos: p.current.Pos})
	}
	stmt.EndPos = p.prevEnd
	return stmt
}

// advance consumes and returns the current lexeme.
func (p *Parser) advance() Lexeme {
	lx := p.current
	p.nextToken()
	return lx
}

// parseDefFn parses DEF FNname[(params)] = body.
func (p *Parser) parseDefFn() ast.Statement {
	kw := p.expect(token.DEF)
	p.expect(token.FN)
	if !p.currentTokenIs(token.Identifier) {
		p.fatal("Expected function name", p.current)
	}
	nameLx := p.advance()
	stmt := &ast.DefFn{
		Name:     &ast.Ident{Name: nameLx.Lit, StartPos: nameLx.Pos, EndPos: nameLx.End()},
		StartPos: kw.Pos,
	}
	if p.consumeIf(token.LParen) {
		for !p.currentTokenIs(token.RParen) {
			lx := p.current
			if lx.Tok != token.Identifier {
				p.fatal("Expected variable", lx)
			}
			p.nextToken()
			stmt.Params = append(stmt.Params, &ast.Ident{Name: lx.Lit, StartPos: lx.Pos, EndPos: lx.End()})
			if !p.consumeIf(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)
	}
	p.expect(token.Equals)
	stmt.Body = p.expression(bpNone)
	stmt.EndPos = p.prevEnd
	return stmt
}

// parseIf parses IF cond THEN|GOTO ... [ELSE ...]. Both branches run to
// the end of the line.
func (p *Parser) parseIf() ast.Statement {
	kw := p.expect(token.IF)
	stmt := &ast.IfStmt{StartPos: kw.Pos}
	stmt.Cond = p.expression(bpNone)
	switch {
	case p.consumeIf(token.THEN):
	case p.currentTokenIs(token.GOTO):
	default:
		p.fatal("Expected THEN", p.current)
	}
	stmt.Then = p.parseBranch()
	if p.consumeIf(token.ELSE) {
		stmt.HasElse = true
		stmt.Else = p.parseBranch()
	}
	stmt.EndPos = p.prevEnd
	return stmt
}

// parseBranch parses the statements of a THEN or ELSE branch. A leading
// line number is a GOTO shorthand.
func (p *Parser) parseBranch() []ast.Statement {
	var stmts []ast.Statement
	if p.currentTokenIs(token.Number) {
		ref := p.parseLineRef()
		stmts = append(stmts, &ast.Command{
			Kw: token.GOTO, Args: []ast.Expression{ref}, Implicit: true,
			StartPos: ref.Pos(), EndPos: ref.End(),
		})
		switch p.current.Tok {
		case token.Colon:
			p.nextToken()
		case token.EOL, token.EOS, token.ELSE, token.Apostrophe:
		default:
			p.fatal("Expected end of statement", p.current)
		}
	}
	stmts = append(stmts, p.parseStatements(true)...)
	p.checkReachable(stmts)
	return stmts
}

// checkReachable warns about statements following an unconditional jump.
func (p *Parser) checkReachable(stmts []ast.Statement) {
	for i, stmt := range stmts[:max(len(stmts)-1, 0)] {
		cmd, ok := stmt.(*ast.Command)
		if !ok {
			continue
		}
		switch cmd.Kw {
		case token.GOTO, token.STOP, token.END, token.RESUME, token.RESUMENEXT:
		default:
			continue
		}
		for _, next := range stmts[i+1:] {
			if _, isRem := next.(*ast.Remark); !isRem {
				p.warn("Unreachable code", Lexeme{Tok: token.Illegal, Pos: next.Pos(), Len: next.End() - next.Pos()})
				return
			}
		}
		return
	}
}

// parseFor parses FOR v = start TO stop [STEP step].
func (p *Parser) parseFor() ast.Statement {
	kw := p.expect(token.FOR)
	lx := p.current
	if lx.Tok != token.Identifier {
		p.fatal("Expected variable", lx)
	}
	p.nextToken()
	stmt := &ast.ForStmt{
		Var:      &ast.Ident{Name: lx.Lit, StartPos: lx.Pos, EndPos: lx.End()},
		StartPos: kw.Pos,
	}
	p.expect(token.Equals)
	stmt.Start = p.expression(bpNone)
	p.expect(token.TO)
	stmt.Stop = p.expression(bpNone)
	if p.consumeIf(token.STEP) {
		stmt.Step = p.expression(bpNone)
	}
	stmt.EndPos = p.prevEnd
	return stmt
}

// parseOn parses the ON statement family: ON BREAK, ON ERROR GOTO,
// ON SQ(n) GOSUB and ON n GOTO|GOSUB.
func (p *Parser) parseOn() ast.Statement {
	kw := p.expect(token.ON)
	switch p.current.Tok {
	case token.BREAK:
		p.nextToken()
		switch p.current.Tok {
		case token.CONT:
			p.nextToken()
			return &ast.Command{Kw: token.ONBREAKCONT, StartPos: kw.Pos, EndPos: p.prevEnd}
		case token.STOP:
			p.nextToken()
			return &ast.Command{Kw: token.ONBREAKSTOP, StartPos: kw.Pos, EndPos: p.prevEnd}
		case token.GOSUB:
			p.nextToken()
			return p.parseCommandArgs(token.ONBREAKGOSUB, kw.Pos)
		}
		p.fatal("Expected CONT, GOSUB or STOP", p.current)
	case token.ERROR:
		p.nextToken()
		p.expect(token.GOTO)
		return p.parseCommandArgs(token.ONERRORGOTO, kw.Pos)
	case token.SQ:
		p.nextToken()
		p.expect(token.LParen)
		channel := p.expression(bpNone)
		p.expect(token.RParen)
		p.expect(token.GOSUB)
		ref := p.parseLineRef()
		return &ast.Command{Kw: token.ONSQGOSUB, Args: []ast.Expression{channel, ref}, StartPos: kw.Pos, EndPos: p.prevEnd}
	}
	stmt := &ast.OnJump{StartPos: kw.Pos}
	stmt.Index = p.expression(bpNone)
	switch p.current.Tok {
	case token.GOTO:
		stmt.Kw = token.ONGOTO
	case token.GOSUB:
		stmt.Kw = token.ONGOSUB
	default:
		p.fatal("Expected GOTO or GOSUB", p.current)
	}
	p.nextToken()
	for {
		stmt.Targets = append(stmt.Targets, p.parseLineRef())
		if !p.consumeIf(token.Comma) {
			break
		}
	}
	stmt.EndPos = p.prevEnd
	return stmt
}

// parsePrint parses PRINT [#s,] items, keeping separators as items.
func (p *Parser) parsePrint() ast.Statement {
	kw := p.expect(token.PRINT)
	stmt := &ast.PrintStmt{StartPos: kw.Pos}
	stmt.Stream = p.parseOptionalStream()
	stmt.Items = p.parsePrintItems(true)
	stmt.EndPos = p.prevEnd
	return stmt
}

// parseOptionalStream parses "#s," or returns the default stream.
func (p *Parser) parseOptionalStream() ast.Expression {
	if !p.currentTokenIs(token.Hash) {
		return &ast.NullArg{Stream: true, StartPos: p.current.Pos}
	}
	st := p.parseStream()
	if !p.atStatementEnd() {
		p.expect(token.Comma)
	}
	return st
}

func (p *Parser) parsePrintItems(allowUsing bool) []ast.Expression {
	var items []ast.Expression
	for !p.atStatementEnd() {
		lx := p.current
		switch lx.Tok {
		case token.Semicolon, token.Comma:
			items = append(items, &ast.Separator{Tok: lx.Tok, StartPos: lx.Pos})
			p.nextToken()
		case token.USING:
			if !allowUsing {
				p.fatal("Unexpected USING", lx)
			}
			p.nextToken()
			using := &ast.Using{StartPos: lx.Pos}
			using.Format = p.expression(bpNone)
			if !p.consumeIf(token.Semicolon) && !p.consumeIf(token.Comma) {
				p.fatal("Expected ;", p.current)
			}
			using.Items = p.parsePrintItems(false)
			using.EndPos = p.prevEnd
			items = append(items, using)
		default:
			items = append(items, p.expression(bpNone))
		}
	}
	return items
}

// parseInput parses INPUT and LINE INPUT.
func (p *Parser) parseInput() ast.Statement {
	kw := p.current
	stmt := &ast.InputStmt{Kw: token.INPUT, StartPos: kw.Pos}
	if p.consumeIf(token.LINE) {
		stmt.Kw = token.LINEINPUT
	}
	p.expect(token.INPUT)
	stmt.Stream = p.parseOptionalStream()
	if p.consumeIf(token.Semicolon) {
		stmt.NoCRLF = true
	}
	if p.currentTokenIs(token.String) {
		stmt.Prompt = p.nud(p.advance()).(*ast.StringLit)
		switch p.current.Tok {
		case token.Semicolon, token.Comma:
			stmt.PromptSep = p.advance().Tok
		default:
			p.fatal("Expected ;", p.current)
		}
	}
	for {
		stmt.Vars = append(stmt.Vars, p.parseVariable())
		if stmt.Kw == token.LINEINPUT || !p.consumeIf(token.Comma) {
			break
		}
	}
	stmt.EndPos = p.prevEnd
	return stmt
}

// parseMidAssign parses MID$(s$, start[, len]) = value.
func (p *Parser) parseMidAssign() ast.Statement {
	kw := p.expect(token.MIDSTR)
	p.expect(token.LParen)
	stmt := &ast.MidAssign{Target: p.parseVariable(), StartPos: kw.Pos}
	p.expect(token.Comma)
	stmt.Start = p.expression(bpNone)
	if p.consumeIf(token.Comma) {
		stmt.Len = p.expression(bpNone)
	}
	p.expect(token.RParen)
	p.expect(token.Equals)
	stmt.Value = p.expression(bpNone)
	stmt.EndPos = p.prevEnd
	return stmt
}

// parseRun parses RUN [line | file].
func (p *Parser) parseRun() ast.Statement {
	kw := p.expect(token.RUN)
	cmd := &ast.Command{Kw: token.RUN, StartPos: kw.Pos}
	switch {
	case p.atStatementEnd():
	case p.currentTokenIs(token.Number):
		cmd.Args = append(cmd.Args, p.parseLineRef())
	default:
		cmd.Args = append(cmd.Args, p.parseArg(token.ArgSpec{Cat: token.CatString}))
	}
	cmd.EndPos = p.prevEnd
	return cmd
}

// parseTimer parses EVERY|AFTER interval[, timer] GOSUB line.
func (p *Parser) parseTimer() ast.Statement {
	kw := p.advance()
	cmd := &ast.Command{Kw: kw.Tok, StartPos: kw.Pos}
	cmd.Args = append(cmd.Args, p.parseArg(token.ArgSpec{Cat: token.CatNumber}))
	if p.consumeIf(token.Comma) {
		cmd.Args = append(cmd.Args, p.parseArg(token.ArgSpec{Cat: token.CatNumber}))
	}
	p.expect(token.GOSUB)
	cmd.Args = append(cmd.Args, p.parseLineRef())
	cmd.EndPos = p.prevEnd
	return cmd
}

// parseChain parses CHAIN file[, line] and CHAIN MERGE file[, line][, DELETE range].
func (p *Parser) parseChain() ast.Statement {
	kw := p.expect(token.CHAIN)
	if !p.consumeIf(token.MERGE) {
		return p.parseCommandArgs(token.CHAIN, kw.Pos)
	}
	cmd := &ast.Command{Kw: token.CHAINMERGE, StartPos: kw.Pos}
	cmd.Args = append(cmd.Args, p.parseArg(token.ArgSpec{Cat: token.CatString}))
	if p.consumeIf(token.Comma) {
		switch p.current.Tok {
		case token.Comma:
			cmd.Args = append(cmd.Args, &ast.NullArg{StartPos: p.current.Pos})
		case token.DELETE:
		default:
			cmd.Args = append(cmd.Args, p.parseArg(token.ArgSpec{Cat: token.CatNumber}))
		}
		if p.consumeIf(token.Comma) || p.currentTokenIs(token.DELETE) {
			if len(cmd.Args) == 1 {
				cmd.Args = append(cmd.Args, &ast.NullArg{StartPos: p.current.Pos})
			}
			p.expect(token.DELETE)
			cmd.Args = append(cmd.Args, p.parseLineRange())
		}
	}
	cmd.EndPos = p.prevEnd
	return cmd
}

// compositeWords maps a keyword and the keyword following it to the
// composite command they form.
var compositeWords = map[[2]token.Token]token.Token{
	{token.CLEAR, token.INPUT}:    token.CLEARINPUT,
	{token.GRAPHICS, token.PAPER}: token.GRAPHICSPAPER,
	{token.GRAPHICS, token.PEN}:   token.GRAPHICSPEN,
	{token.KEY, token.DEF}:        token.KEYDEF,
	{token.RESUME, token.NEXT}:    token.RESUMENEXT,
	{token.SPEED, token.INK}:      token.SPEEDINK,
	{token.SPEED, token.KEY}:      token.SPEEDKEY,
	{token.SPEED, token.WRITE}:    token.SPEEDWRITE,
	{token.SYMBOL, token.AFTER}:   token.SYMBOLAFTER,
	{token.WINDOW, token.SWAP}:    token.WINDOWSWAP,
}

// parseComposite parses a command that may combine with the following
// keyword into a multi-word command such as WINDOW SWAP.
func (p *Parser) parseComposite() ast.Statement {
	kw := p.advance()
	if composite, ok := compositeWords[[2]token.Token{kw.Tok, p.current.Tok}]; ok {
		p.nextToken()
		return p.parseCommandArgs(composite, kw.Pos)
	}
	if !kw.Tok.IsCommand() {
		// GRAPHICS and SPEED only exist as multi-word commands.
		p.fatal("Unexpected token", p.current)
	}
	return p.parseCommandArgs(kw.Tok, kw.Pos)
}
