package locobasic

import (
	"math"
	"strconv"
	"strings"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/symbol"
	"github.com/soypat/go-locobasic/token"
)

// gotoAfterCall lists the commands after which the runtime regains control
// before the next statement runs: they may wait for input, load programs or
// take a long time.
var gotoAfterCall = map[token.Token]bool{
	token.CALL:       true,
	token.CAT:        true,
	token.CHAIN:      true,
	token.CHAINMERGE: true,
	token.CLEAR:      true,
	token.CLOSEOUT:   true,
	token.CONT:       true,
	token.DELETE:     true,
	token.EDIT:       true,
	token.FRAME:      true,
	token.LIST:       true,
	token.LOAD:       true,
	token.MERGE:      true,
	token.NEW:        true,
	token.OPENIN:     true,
	token.OPENOUT:    true,
	token.RENUM:      true,
	token.SAVE:       true,
	token.SOUND:      true,
	token.WAIT:       true,
}

// breakAfterCall lists the commands that always transfer control.
var breakAfterCall = map[token.Token]bool{
	token.ERROR:      true,
	token.RESUME:     true,
	token.RESUMENEXT: true,
	token.RETURN:     true,
	token.RUN:        true,
}

func (g *CodeGenJS) stmts(list []ast.Statement) {
	for _, s := range list {
		g.stmt(s)
	}
}

func (g *CodeGenJS) stmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.Remark:
		return
	case *ast.DataStmt:
		g.data(n)
		return
	}
	if g.trace {
		label := g.labels.nextTrace()
		g.sourceMap[label] = Span{Pos: s.Pos(), Len: s.End() - s.Pos()}
		g.out(" o.vmTrace(\"", label, "\");")
	}
	switch n := s.(type) {
	case *ast.Command:
		g.command(n)
	case *ast.Assign:
		lhs := g.variable(n.Target, symbol.FlagAssigned)
		rhs := g.expr(n.Value)
		g.out(" ", lhs.code, " = ", g.coerce(runtimeName(n.Target), lhs.typ, rhs, n.Value), ";")
	case *ast.MidAssign:
		g.midAssign(n)
	case *ast.IfStmt:
		g.ifStmt(n)
	case *ast.ForStmt:
		g.forStmt(n)
	case *ast.OnJump:
		idx := g.integer(n.Index)
		label := g.labels.next('g')
		args := []string{quoteJS(label), idx.code}
		for _, t := range n.Targets {
			args = append(args, g.jump(t))
		}
		g.out(" o.", n.Kw.String(), "(", strings.Join(args, ", "), "); break;")
		g.openCase(label)
	case *ast.DefFn:
		g.defFn(n)
	case *ast.PrintStmt:
		g.print(n)
	case *ast.InputStmt:
		g.input(n)
	case *ast.RsxStmt:
		args := []string{quoteJS(n.Name)}
		for _, arg := range n.Args {
			args = append(args, g.expr(arg).code)
		}
		g.out(" o.rsx(", strings.Join(args, ", "), ");")
		g.gotoNext()
	default:
		g.fatal(KindSyntax, "Unexpected statement", s)
	}
}

// runtimeName returns the runtime property name of a variable.
func runtimeName(id *ast.Ident) string { return symbol.JSName(id.Name, id.IsArray()) }

func (g *CodeGenJS) command(n *ast.Command) {
	name := n.Kw.String()
	switch n.Kw {
	case token.GOTO:
		g.out(" o.goto(", g.jump(n.Args[0].(*ast.LineRef)), "); break;")
		return
	case token.GOSUB:
		label := g.labels.next('g')
		g.out(" o.gosub(", quoteJS(label), ", ", g.jump(n.Args[0].(*ast.LineRef)), "); break;")
		g.openCase(label)
		return
	case token.END, token.STOP:
		label := g.labels.next('s')
		g.out(" o.", name, "(", quoteJS(label), "); break;")
		g.openCase(label)
		return
	case token.NEXT:
		g.next(n)
		return
	case token.WHILE:
		label := g.labels.next('w')
		g.openCase(label)
		cond := g.condition(n.Args[0])
		g.out(" if (", not(cond), ") { o.goto(\"", label, "e\"); break; }")
		g.whileStack = append(g.whileStack, whileLoop{label: label, line: g.label, stmt: n})
		return
	case token.WEND:
		if len(g.whileStack) == 0 {
			g.fatal(KindSyntax, "Unexpected WEND", n)
		}
		loop := g.whileStack[len(g.whileStack)-1]
		g.whileStack = g.whileStack[:len(g.whileStack)-1]
		g.out(" o.goto(\"", loop.label, "\"); break;")
		g.openCase(loop.label + "e")
		return
	case token.DIM:
		for _, arg := range n.Args {
			id := arg.(*ast.Ident)
			v := g.vars.Use(id.Name, g.rules.TypeOf(id.Name), symbol.FlagArray, id.Pos())
			v.SetDims(len(id.Index))
			args := []string{quoteJS(v.Name())}
			for _, ix := range id.Index {
				args = append(args, g.integer(ix).code)
			}
			g.out(" o.dim(", strings.Join(args, ", "), ");")
		}
		return
	case token.ERASE:
		var args []string
		for _, arg := range n.Args {
			id := arg.(*ast.Ident)
			v := g.vars.Use(id.Name, g.rules.TypeOf(id.Name), symbol.FlagArray, id.Pos())
			args = append(args, quoteJS(v.Name()))
		}
		g.out(" o.erase(", strings.Join(args, ", "), ");")
		return
	case token.READ:
		for _, arg := range n.Args {
			id := arg.(*ast.Ident)
			lhs := g.variable(id, symbol.FlagAssigned)
			g.out(" ", lhs.code, " = o.read(", quoteJS(runtimeName(id)), ");")
		}
		return
	case token.DEFINT, token.DEFREAL, token.DEFSTR:
		g.defineLetters(n)
	}

	args := g.commandArgs(n)
	g.out(" o.", name, "(", strings.Join(args, ", "), ");")
	switch {
	case breakAfterCall[n.Kw]:
		g.out(" break;")
	case gotoAfterCall[n.Kw], n.Kw == token.RANDOMIZE && len(n.Args) == 0:
		g.gotoNext()
	}
}

func (g *CodeGenJS) commandArgs(n *ast.Command) []string {
	specs := n.Kw.Signature().Args
	si := 0
	args := make([]string, 0, len(n.Args)+1)
	for _, arg := range n.Args {
		args = append(args, g.arg(n.Kw, specFor(specs, &si, arg), arg))
	}
	if (n.Kw == token.EVERY || n.Kw == token.AFTER) && len(args) == 2 {
		// Timer 0 is the default.
		args = append(args[:1], "0", args[1])
	}
	return args
}

func (g *CodeGenJS) defineLetters(n *ast.Command) {
	typ := symbol.Int
	switch n.Kw {
	case token.DEFREAL:
		typ = symbol.Real
	case token.DEFSTR:
		typ = symbol.String
	}
	for _, arg := range n.Args {
		lr := arg.(*ast.LetterRange)
		if err := g.rules.Define(lr.From, lr.To, typ); err != nil {
			g.fatal(KindSyntax, "Bad letter range", lr)
		}
	}
}

// forStmt emits the loop initialization, the increment label and the test
// label. Literal bounds and steps are used directly when no rounding is
// needed.
func (g *CodeGenJS) forStmt(n *ast.ForStmt) {
	typ := g.rules.TypeOf(n.Var.Name)
	if typ == symbol.String {
		g.typeMismatch(n.Var)
	}
	v := g.vars.Use(n.Var.Name, typ, symbol.FlagAssigned, n.Var.Pos())
	name := v.Name()
	loopVar := "v." + name
	label := g.labels.next('f')

	start := g.numeric(n.Start)
	g.out(" ", loopVar, " = ", g.coerce(name, typ, start, n.Start), ";")

	end := loopVar + "$end"
	if lit, ok := g.literal(n.Stop, typ); ok {
		end = lit
	} else {
		stop := g.numeric(n.Stop)
		g.out(" ", end, " = ", g.coerce(name, typ, stop, n.Stop), ";")
	}

	step, sign := "1", 1
	if n.Step != nil {
		if lit, ok := g.literal(n.Step, typ); ok {
			step, sign = lit, literalSign(n.Step)
		} else {
			step, sign = loopVar+"$step", 2
			x := g.numeric(n.Step)
			g.out(" ", step, " = ", g.coerce(name, typ, x, n.Step), ";")
		}
	}
	g.out(" o.goto(\"", label, "b\"); break;")
	g.openCase(label)
	g.out(" ", loopVar, " += ", step, ";")
	g.openCase(label + "b")
	exit := " { o.goto(\"" + label + "e\"); break; }"
	switch sign {
	case 1:
		g.out(" if (", loopVar, " > ", end, ")", exit)
	case -1:
		g.out(" if (", loopVar, " < ", end, ")", exit)
	case 0:
		// STEP 0 loops until the program is interrupted.
	default:
		g.out(" if (", step, " > 0 && ", loopVar, " > ", end, " || ", step, " < 0 && ", loopVar, " < ", end, ")", exit)
	}
	g.forStack = append(g.forStack, forLoop{label: label, name: name, line: g.label, stmt: n})
}

// literal returns the code of a numeric literal that needs no rounding for
// a variable of type typ.
func (g *CodeGenJS) literal(x ast.Expression, typ symbol.Type) (string, bool) {
	v, ok := literalValue(x)
	if !ok || (typ != symbol.Real && v != math.Trunc(v)) {
		return "", false
	}
	e := g.numeric(x)
	return e.code, true
}

func literalValue(x ast.Expression) (float64, bool) {
	switch n := x.(type) {
	case *ast.NumberLit:
		return n.Value, true
	case *ast.ParenExpr:
		return literalValue(n.X)
	case *ast.UnaryExpr:
		v, ok := literalValue(n.X)
		switch n.Op {
		case token.Minus:
			return -v, ok
		case token.Plus:
			return v, ok
		}
	}
	return 0, false
}

func literalSign(x ast.Expression) int {
	v, _ := literalValue(x)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// next closes FOR loops. A bare NEXT closes the innermost loop, NEXT with
// variables closes one loop per variable, innermost first.
func (g *CodeGenJS) next(n *ast.Command) {
	if len(n.Args) == 0 {
		g.closeFor(n, "")
		return
	}
	for _, arg := range n.Args {
		id := arg.(*ast.Ident)
		g.closeFor(id, runtimeName(id))
	}
}

func (g *CodeGenJS) closeFor(n ast.Node, name string) {
	if len(g.forStack) == 0 {
		g.fatal(KindSyntax, "Unexpected NEXT", n)
	}
	loop := g.forStack[len(g.forStack)-1]
	if name != "" && name != loop.name {
		g.fatal(KindSyntax, "Unexpected NEXT", n)
	}
	g.forStack = g.forStack[:len(g.forStack)-1]
	g.out(" o.goto(\"", loop.label, "\"); break;")
	g.openCase(loop.label + "e")
}

// ifStmt emits a plain JavaScript if when neither branch opens a case
// label. Otherwise the branches are lowered to jumps between IF labels.
func (g *CodeGenJS) ifStmt(n *ast.IfStmt) {
	cond := g.condition(n.Cond)
	cases := g.cases
	saved := g.buf
	g.buf = nil
	g.stmts(n.Then)
	thenCode := g.buf
	g.buf = nil
	g.stmts(n.Else)
	elseCode := g.buf
	g.buf = saved

	if g.cases == cases {
		g.out(" if (", cond.code, ") {")
		g.buf = append(g.buf, thenCode...)
		g.out(" }")
		if len(elseCode) > 0 {
			g.out(" else {")
			g.buf = append(g.buf, elseCode...)
			g.out(" }")
		}
		return
	}
	if len(elseCode) == 0 {
		skip := g.labels.next('i')
		g.out(" if (", not(cond), ") { o.goto(\"", skip, "\"); break; }")
		g.buf = append(g.buf, thenCode...)
		g.openCase(skip)
		return
	}
	then, join := g.labels.next('i'), g.labels.next('i')
	g.out(" if (", cond.code, ") { o.goto(\"", then, "\"); break; }")
	g.buf = append(g.buf, elseCode...)
	g.out(" o.goto(\"", join, "\"); break;")
	g.openCase(then)
	g.buf = append(g.buf, thenCode...)
	g.openCase(join)
}

func (g *CodeGenJS) midAssign(n *ast.MidAssign) {
	lhs := g.variable(n.Target, symbol.FlagAssigned)
	if lhs.typ.IsNumeric() {
		g.typeMismatch(n.Target)
	}
	args := []string{lhs.code, g.integer(n.Start).code, "undefined", g.str(n.Value).code}
	if n.Len != nil {
		args[2] = g.integer(n.Len).code
	}
	g.out(" ", lhs.code, " = o.", token.MIDASSIGN.String(), "(", strings.Join(args, ", "), ");")
}

func (g *CodeGenJS) defFn(n *ast.DefFn) {
	typ := g.rules.TypeOf(n.Name.Name)
	fn := g.vars.Use(n.Name.Name, typ, symbol.FlagFunction|symbol.FlagAssigned, n.Name.Pos())
	g.params = make(map[string]string, len(n.Params))
	params := make([]string, 0, len(n.Params))
	for _, p := range n.Params {
		name := "$" + symbol.JSName(p.Name, false)
		g.params[symbol.JSName(p.Name, false)] = name
		params = append(params, name)
	}
	body := g.expr(n.Body)
	g.params = nil
	g.out(" v.", fn.Name(), " = function (", strings.Join(params, ", "), ") { return ",
		g.coerce(fn.Name(), typ, body, n.Body), "; };")
}

// data records a DATA statement for the initialization case.
func (g *CodeGenJS) data(n *ast.DataStmt) {
	args := []string{caseLabelOf(g.labels.line)}
	for _, item := range n.Items {
		args = append(args, g.expr(item).code)
	}
	g.dataList = append(g.dataList, "o.data("+strings.Join(args, ", ")+")")
}

// caseLabelOf quotes synthetic labels and leaves line numbers bare.
func caseLabelOf(label string) string {
	if _, err := strconv.Atoi(label); err == nil {
		return label
	}
	return quoteJS(label)
}

// print emits one o.print call. Commas become tab objects, SPC and TAB
// become position objects and a missing trailing separator adds CRLF.
func (g *CodeGenJS) print(n *ast.PrintStmt) {
	args := []string{g.expr(n.Stream).code}
	args = g.printItems(args, n.Items)
	if !endsWithSeparator(n.Items) {
		args = append(args, `"\r\n"`)
	}
	g.out(" o.print(", strings.Join(args, ", "), ");")
}

func (g *CodeGenJS) printItems(dst []string, items []ast.Expression) []string {
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Separator:
			if it.Tok == token.Comma {
				dst = append(dst, `{type: "commaTab", args: []}`)
			}
		case *ast.Using:
			args := []string{g.str(it.Format).code}
			for _, u := range it.Items {
				if _, ok := u.(*ast.Separator); !ok {
					args = append(args, g.expr(u).code)
				}
			}
			dst = append(dst, "o.using("+strings.Join(args, ", ")+")")
		case *ast.FuncCall:
			if (it.Fn == token.SPC || it.Fn == token.TAB) && len(it.Args) == 1 {
				dst = append(dst, `{type: "`+it.Fn.String()+`", args: [`+g.integer(it.Args[0]).code+`]}`)
				continue
			}
			dst = append(dst, g.expr(item).code)
		default:
			dst = append(dst, g.expr(item).code)
		}
	}
	return dst
}

func endsWithSeparator(items []ast.Expression) bool {
	if len(items) == 0 {
		return false
	}
	switch last := items[len(items)-1].(type) {
	case *ast.Separator:
		return true
	case *ast.Using:
		return endsWithSeparator(last.Items)
	}
	return false
}

// input emits the INPUT or LINE INPUT call and, after the runtime has
// collected the values, one assignment per variable.
func (g *CodeGenJS) input(n *ast.InputStmt) {
	noCRLF := `""`
	if n.NoCRLF {
		noCRLF = `";"`
	}
	prompt := "? "
	if n.Prompt != nil {
		prompt = n.Prompt.Value
		if n.PromptSep == token.Semicolon {
			prompt += "? "
		}
	}
	args := []string{g.expr(n.Stream).code, noCRLF, quoteJS(prompt)}
	for _, id := range n.Vars {
		args = append(args, quoteJS(runtimeName(id)))
	}
	g.out(" o.", n.Kw.String(), "(", strings.Join(args, ", "), ");")
	g.gotoNext()
	for _, id := range n.Vars {
		lhs := g.variable(id, symbol.FlagAssigned)
		if n.Kw == token.LINEINPUT && lhs.typ.IsNumeric() {
			g.typeMismatch(id)
		}
		g.out(" ", lhs.code, " = o.vmGetNextInput();")
	}
}
