package locobasic

import (
	"strconv"
	"strings"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/intrinsic"
	"github.com/soypat/go-locobasic/symbol"
	"github.com/soypat/go-locobasic/token"
)

// Precedence of the outermost JavaScript operator of generated code.
const (
	precBitOr = iota + 1
	precBitXor
	precBitAnd
	precAdd
	precMul
	precUnary
	precAtom
)

// jsExpr is generated expression code with its static BASIC type.
type jsExpr struct {
	code string
	typ  symbol.Type
	prec int
	// test is the boolean JavaScript of a comparison, without the -1/0
	// conversion.
	test string
}

func atom(code string, typ symbol.Type) jsExpr {
	return jsExpr{code: code, typ: typ, prec: precAtom}
}

// Built-in functions with an integer result. Functions ending in $ return
// strings, all others reals.
var intFuncs = map[token.Token]bool{
	token.ASC:    true,
	token.CINT:   true,
	token.DERR:   true,
	token.EOF:    true,
	token.ERL:    true,
	token.ERR:    true,
	token.FRE:    true,
	token.HIMEM:  true,
	token.INKEY:  true,
	token.INP:    true,
	token.INSTR:  true,
	token.JOY:    true,
	token.LEN:    true,
	token.PEEK:   true,
	token.POS:    true,
	token.REMAIN: true,
	token.SGN:    true,
	token.SQ:     true,
	token.TEST:   true,
	token.TESTR:  true,
	token.UNT:    true,
	token.VPOS:   true,
	token.XPOS:   true,
	token.YPOS:   true,
}

// expr generates x and propagates its static type.
func (g *CodeGenJS) expr(x ast.Expression) jsExpr {
	switch n := x.(type) {
	case *ast.NumberLit:
		return g.number(n)
	case *ast.StringLit:
		return atom(quoteJS(n.Value), symbol.String)
	case *ast.Unquoted:
		return atom(quoteJS(n.Value), symbol.String)
	case *ast.Ident:
		return g.variable(n, 0)
	case *ast.BinaryExpr:
		return g.binary(n)
	case *ast.UnaryExpr:
		return g.unary(n)
	case *ast.ParenExpr:
		inner := g.expr(n.X)
		return atom("("+inner.code+")", inner.typ)
	case *ast.FuncCall:
		return g.funcCall(n)
	case *ast.FnCall:
		return g.fnCall(n)
	case *ast.AddressOf:
		name := symbol.JSName(n.X.Name, n.X.IsArray())
		g.vars.Use(n.X.Name, g.rules.TypeOf(n.X.Name), arrayFlag(n.X), n.X.Pos())
		args := []string{quoteJS(name)}
		for _, ix := range n.X.Index {
			args = append(args, g.integer(ix).code)
		}
		return atom("o.addressOf("+strings.Join(args, ", ")+")", symbol.Int)
	case *ast.Stream:
		return g.integer(n.X)
	case *ast.NullArg:
		if n.Stream {
			return atom("0", symbol.Int)
		}
		return atom("undefined", symbol.Unknown)
	case *ast.LineRef:
		return atom(strconv.Itoa(n.Number), symbol.Int)
	case *ast.LineRange:
		return atom(lineRange(n), symbol.Unknown)
	case *ast.LetterRange:
		return atom(quoteJS(ast.FormatNode(n)), symbol.String)
	}
	g.fatal(KindSyntax, "Unexpected expression", x)
	return jsExpr{}
}

func (g *CodeGenJS) number(n *ast.NumberLit) jsExpr {
	code := intrinsic.FormatJS(n.Value)
	typ := symbol.Real
	if n.Tok != token.Number || (n.IsInteger() && intrinsic.IsInt16(n.Value)) {
		typ = symbol.Int
	}
	if n.Value < 0 {
		// Hex and binary literals above &7FFF are negative.
		return jsExpr{code: code, typ: typ, prec: precUnary}
	}
	return atom(code, typ)
}

// lineRange returns the first and last line of a LIST style range.
func lineRange(r *ast.LineRange) string {
	from, to := "1", "65535"
	if r.From != nil {
		from = strconv.Itoa(r.From.Number)
		if !r.Dash {
			to = from
		}
	}
	if r.To != nil {
		to = strconv.Itoa(r.To.Number)
	}
	return from + ", " + to
}

func arrayFlag(id *ast.Ident) symbol.Flags {
	if id.IsArray() {
		return symbol.FlagArray
	}
	return 0
}

// variable generates a variable or array element reference.
func (g *CodeGenJS) variable(id *ast.Ident, flags symbol.Flags) jsExpr {
	typ := g.rules.TypeOf(id.Name)
	if !id.IsArray() && g.params != nil {
		if p, ok := g.params[symbol.JSName(id.Name, false)]; ok {
			return atom(p, typ)
		}
	}
	if typ != symbol.Unknown && symbol.SuffixType(id.Name) == symbol.Unknown {
		flags |= symbol.FlagImplicit
	}
	v := g.vars.Use(id.Name, typ, flags|arrayFlag(id), id.Pos())
	var sb strings.Builder
	sb.WriteString("v.")
	sb.WriteString(v.Name())
	for _, ix := range id.Index {
		sb.WriteByte('[')
		sb.WriteString(g.integer(ix).code)
		sb.WriteByte(']')
	}
	if id.IsArray() {
		v.SetDims(len(id.Index))
	}
	return atom(sb.String(), typ)
}

// numeric generates x and fails if it is statically a string.
func (g *CodeGenJS) numeric(x ast.Expression) jsExpr {
	e := g.expr(x)
	if e.typ == symbol.String {
		g.typeMismatch(x)
	}
	return e
}

// str generates x and fails if it is statically a number.
func (g *CodeGenJS) str(x ast.Expression) jsExpr {
	e := g.expr(x)
	if e.typ.IsNumeric() {
		g.typeMismatch(x)
	}
	return e
}

// integer generates x rounded to an integer.
func (g *CodeGenJS) integer(x ast.Expression) jsExpr {
	return toInt(g.numeric(x))
}

// toInt rounds e at run time unless it is statically an integer.
func toInt(e jsExpr) jsExpr {
	if e.typ == symbol.Int {
		return e
	}
	return atom("o.vmRound("+e.code+")", symbol.Int)
}

// arithType is the result type of + - * on numeric operands.
func arithType(lt, rt symbol.Type) symbol.Type {
	switch {
	case lt == symbol.Unknown || rt == symbol.Unknown:
		return symbol.Unknown
	case lt == symbol.Int && rt == symbol.Int:
		return symbol.Int
	}
	return symbol.Real
}

// infix joins two operands, adding parentheses where JavaScript precedence
// would otherwise regroup the BASIC tree. All operators are left associative.
func infix(l jsExpr, op string, r jsExpr, prec int, typ symbol.Type) jsExpr {
	lc, rc := l.code, r.code
	if l.prec < prec {
		lc = "(" + lc + ")"
	}
	if r.prec <= prec {
		rc = "(" + rc + ")"
	}
	return jsExpr{code: lc + " " + op + " " + rc, typ: typ, prec: prec}
}

var jsComparison = map[token.Token]string{
	token.Equals:    "===",
	token.NotEquals: "!==",
	token.Less:      "<",
	token.Greater:   ">",
	token.LessEq:    "<=",
	token.GreaterEq: ">=",
}

func (g *CodeGenJS) binary(n *ast.BinaryExpr) jsExpr {
	l := g.expr(n.Left)
	r := g.expr(n.Right)
	mixed := (l.typ == symbol.String && r.typ.IsNumeric()) || (r.typ == symbol.String && l.typ.IsNumeric())
	if mixed {
		g.typeMismatch(n)
	}
	if n.Op.IsComparison() {
		test := l.code + " " + jsComparison[n.Op] + " " + r.code
		e := atom("("+test+" ? -1 : 0)", symbol.Int)
		e.test = test
		return e
	}
	if n.Op == token.Plus && (l.typ == symbol.String || r.typ == symbol.String) {
		return infix(l, "+", r, precAdd, symbol.String)
	}
	if l.typ == symbol.String || r.typ == symbol.String {
		g.typeMismatch(n)
	}
	switch n.Op {
	case token.Plus, token.Minus:
		return infix(l, n.Op.String(), r, precAdd, arithType(l.typ, r.typ))
	case token.Asterisk:
		return infix(l, "*", r, precMul, arithType(l.typ, r.typ))
	case token.Slash:
		return infix(l, "/", r, precMul, symbol.Real)
	case token.Caret:
		return atom("Math.pow("+l.code+", "+r.code+")", symbol.Real)
	case token.Backslash:
		e := infix(toInt(l), "/", toInt(r), precMul, symbol.Int)
		return atom("("+e.code+" | 0)", symbol.Int)
	case token.MOD:
		return infix(toInt(l), "%", toInt(r), precMul, symbol.Int)
	case token.AND:
		return infix(toInt(l), "&", toInt(r), precBitAnd, symbol.Int)
	case token.OR:
		return infix(toInt(l), "|", toInt(r), precBitOr, symbol.Int)
	case token.XOR:
		return infix(toInt(l), "^", toInt(r), precBitXor, symbol.Int)
	}
	g.fatal(KindSyntax, "Unexpected operator", n)
	return jsExpr{}
}

func (g *CodeGenJS) unary(n *ast.UnaryExpr) jsExpr {
	x := g.numeric(n.X)
	switch n.Op {
	case token.Plus:
		return x
	case token.NOT:
		x = toInt(x)
	}
	op := "-"
	if n.Op == token.NOT {
		op = "~"
	}
	code := x.code
	if x.prec < precUnary || strings.HasPrefix(code, "-") {
		code = "(" + code + ")"
	}
	return jsExpr{code: op + code, typ: x.typ, prec: precUnary}
}

// funcCall generates a built-in function call, checking argument types
// against the keyword signature.
func (g *CodeGenJS) funcCall(n *ast.FuncCall) jsExpr {
	specs := n.Fn.Signature().Args
	si := 0
	args := make([]string, 0, len(n.Args))
	for _, arg := range n.Args {
		args = append(args, g.arg(n.Fn, specFor(specs, &si, arg), arg))
	}
	typ := symbol.Real
	switch {
	case n.Fn.IsStringFunc():
		typ = symbol.String
	case intFuncs[n.Fn]:
		typ = symbol.Int
	}
	return atom("o."+n.Fn.String()+"("+strings.Join(args, ", ")+")", typ)
}

// fnCall generates a call of a DEF FN function.
func (g *CodeGenJS) fnCall(n *ast.FnCall) jsExpr {
	typ := g.rules.TypeOf(n.Name)
	fn := g.vars.Use(n.Name, typ, symbol.FlagFunction, n.Pos())
	args := make([]string, 0, len(n.Args))
	for _, arg := range n.Args {
		args = append(args, g.expr(arg).code)
	}
	return atom("v."+fn.Name()+"("+strings.Join(args, ", ")+")", typ)
}

// specFor returns the signature slot arg fills and advances *i past it.
// Omitted optional streams are skipped, repeated slots are never left.
func specFor(specs []token.ArgSpec, i *int, arg ast.Expression) token.ArgSpec {
	for *i < len(specs) {
		spec := specs[*i]
		if spec.Cat == token.CatStream && !isStreamArg(arg) {
			*i++
			continue
		}
		if !spec.Repeat {
			*i++
		}
		return spec
	}
	return token.ArgSpec{Cat: token.CatAny}
}

func isStreamArg(arg ast.Expression) bool {
	switch a := arg.(type) {
	case *ast.Stream:
		return true
	case *ast.NullArg:
		return a.Stream
	}
	return false
}

// arg generates one keyword argument. Line numbers of commands count as
// jump targets, except for EDIT and the ON ERROR GOTO 0 reset.
func (g *CodeGenJS) arg(kw token.Token, spec token.ArgSpec, arg ast.Expression) string {
	switch a := arg.(type) {
	case *ast.LineRef:
		if kw == token.EDIT || (kw == token.ONERRORGOTO && a.Number == 0) {
			return strconv.Itoa(a.Number)
		}
		return g.jump(a)
	case *ast.NullArg, *ast.Stream, *ast.LineRange, *ast.LetterRange:
		return g.expr(arg).code
	}
	switch spec.Cat {
	case token.CatNumber:
		return g.numeric(arg).code
	case token.CatString:
		return g.str(arg).code
	}
	return g.expr(arg).code
}

// coerce converts x for assignment to a variable of type to whose runtime
// name is name. Unknown types defer the conversion to o.vmAssign, which
// receives the variable name instead of a type tag: the runtime derives the
// type from the name's suffix and the DEFINT/DEFREAL/DEFSTR rules in force.
func (g *CodeGenJS) coerce(name string, to symbol.Type, x jsExpr, n ast.Node) string {
	switch {
	case (to == symbol.String && x.typ.IsNumeric()) || (to.IsNumeric() && x.typ == symbol.String):
		g.typeMismatch(n)
	case to == symbol.Unknown || x.typ == symbol.Unknown:
		return "o.vmAssign(" + quoteJS(name) + ", " + x.code + ")"
	case to == symbol.Int && x.typ == symbol.Real:
		if lit, ok := n.(*ast.NumberLit); ok {
			if _, err := intrinsic.CINT(lit.Value); err != nil {
				g.warn(err.Error(), n)
			}
		}
		return "o.vmRound(" + x.code + ")"
	}
	return x.code
}

// condition generates the numeric condition of IF or WHILE.
func (g *CodeGenJS) condition(x ast.Expression) jsExpr {
	return g.numeric(x)
}

// not negates a condition.
func not(e jsExpr) string {
	if e.test != "" {
		return "!(" + e.test + ")"
	}
	if e.prec < precUnary {
		return "!(" + e.code + ")"
	}
	return "!" + e.code
}

const hexDigits = "0123456789abcdef"

// quoteJS returns s as a double quoted JavaScript string literal. BASIC
// strings are byte strings, so bytes outside printable ASCII are escaped
// one by one.
func quoteJS(s string) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b = append(b, '\\', c)
		case c == '\n':
			b = append(b, '\\', 'n')
		case c == '\r':
			b = append(b, '\\', 'r')
		case c == '\t':
			b = append(b, '\\', 't')
		case c < 0x20 || c >= 0x7f:
			b = append(b, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			b = append(b, c)
		}
	}
	return string(append(b, '"'))
}
