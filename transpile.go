package locobasic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/symbol"
	"github.com/soypat/go-locobasic/token"
)

// Options configures a compilation.
type Options struct {
	// Trace emits an o.vmTrace call before every statement. Programs using
	// TRON, RESUME NEXT or a bare RESUME are always traced.
	Trace bool
	// KeepWhitespace records leading whitespace on every lexeme.
	KeepWhitespace bool
	// Variables prepends the v = o.vmGetAllVariables() prologue.
	Variables bool
}

// Span locates the source text of a label.
type Span struct {
	Pos int
	Len int
}

// Output is the result of compiling one program. When Err is set only
// Warnings may be non-empty.
type Output struct {
	// Text is the JavaScript dispatch loop. It expects the runtime in o
	// and the variables in v.
	Text string
	// SourceMap maps line labels and trace labels to source spans.
	SourceMap map[string]Span
	// DataList holds one o.data call per DATA statement in program order.
	DataList []string
	// LabelList holds every line number in program order.
	LabelList []int
	// Vars holds the variables, arrays and functions the program uses.
	Vars     *symbol.Table
	Warnings []*Error
	Err      *Error
}

// Compile lexes, parses and generates src with a fresh [CodeGenJS].
func Compile(src string, opts Options) Output {
	g := CodeGenJS{Options: opts}
	return g.Generate(src, nil)
}

// CodeGenJS lowers a BASIC program into a single JavaScript dispatch loop:
// one switch case per line plus synthetic labels for control constructs.
// A CodeGenJS may be reused for successive programs but not concurrently.
type CodeGenJS struct {
	Options

	lexer  Lexer
	parser Parser

	src    string
	vars   *symbol.Table
	rules  symbol.LetterRules
	labels labelAllocator
	label  string // label of the line being generated.

	buf   []byte // code of the line being generated.
	cases int    // case labels emitted so far.

	forStack   []forLoop
	whileStack []whileLoop
	// params maps DEF FN parameters to their JavaScript names while a
	// function body is generated.
	params map[string]string

	lines    map[int]bool
	refs     map[int]int
	jumps    []jumpRef
	keepDead bool
	trace    bool

	sourceMap map[string]Span
	dataList  []string
	warnings  []*Error
	err       *Error
}

type forLoop struct {
	label string
	name  string // runtime name of the loop variable.
	line  string
	stmt  ast.Node
}

type whileLoop struct {
	label string
	line  string
	stmt  ast.Node
}

// jumpRef is a line reference checked once all line numbers are known.
type jumpRef struct {
	ref  *ast.LineRef
	line string
}

// labelKinds are the synthetic label kinds: FOR loops, GOSUB returns, IF
// branches, stop points after calls and WHILE loops.
const labelKinds = "fgisw"

// labelAllocator hands out synthetic case labels of the form
// <line><kind><ordinal>. Ordinals restart on every line so labels only
// depend on the line they belong to.
type labelAllocator struct {
	line  string
	count [len(labelKinds)]int
	trace int
}

func (la *labelAllocator) reset(line string) { *la = labelAllocator{line: line} }

func (la *labelAllocator) next(kind byte) string {
	i := strings.IndexByte(labelKinds, kind)
	if i < 0 {
		panic("invalid label kind " + string(kind))
	}
	n := la.count[i]
	la.count[i]++
	return la.line + string(kind) + strconv.Itoa(n)
}

// nextTrace returns the label of the next traced statement.
func (la *labelAllocator) nextTrace() string {
	n := la.trace
	la.trace++
	return la.line + "#" + strconv.Itoa(n)
}

func (g *CodeGenJS) reset(src string, vars *symbol.Table) {
	if vars == nil {
		vars = symbol.NewTable()
	}
	g.src = src
	g.vars = vars
	g.rules.Reset()
	g.labels.reset("")
	g.label = ""
	g.buf = nil
	g.cases = 0
	g.forStack = g.forStack[:0]
	g.whileStack = g.whileStack[:0]
	g.params = nil
	g.lines = make(map[int]bool)
	g.refs = make(map[int]int)
	g.jumps = g.jumps[:0]
	g.keepDead = false
	g.trace = g.Trace
	g.sourceMap = make(map[string]Span)
	g.dataList = nil
	g.warnings = nil
	g.err = nil
}

// Generate compiles src. vars receives the variables found in the program;
// it may be nil. Failures of any stage are returned in Output.Err.
func (g *CodeGenJS) Generate(src string, vars *symbol.Table) Output {
	g.reset(src, vars)
	g.lexer.KeepWhitespace = g.KeepWhitespace
	lexemes, err := g.lexer.Lex(src)
	g.warnings = append(g.warnings, g.lexer.Warnings()...)
	if err != nil {
		return Output{Warnings: g.warnings, Err: g.lexer.err}
	}
	lines, err := g.parser.Parse(lexemes)
	g.warnings = append(g.warnings, g.parser.Warnings()...)
	if err != nil {
		return Output{Warnings: g.warnings, Err: g.parser.err}
	}
	return g.generateGuarded(lines)
}

// GenerateLines compiles already parsed lines. src must be the text the
// lines were parsed from; it is used for diagnostics.
func (g *CodeGenJS) GenerateLines(src string, lines []*ast.Line, vars *symbol.Table) Output {
	g.reset(src, vars)
	return g.generateGuarded(lines)
}

// generateGuarded turns fatal diagnostics and unexpected panics of the
// tree walk into Output.Err.
func (g *CodeGenJS) generateGuarded(lines []*ast.Line) (out Output) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				g.err = &Error{Kind: KindSyntax, Msg: fmt.Sprint("Internal error: ", r), Line: g.label}
			}
			out = Output{Warnings: g.warnings, Err: g.err}
		}
	}()
	return g.generate(lines)
}

func (g *CodeGenJS) generate(lines []*ast.Line) Output {
	var labelList []int
	for _, l := range lines {
		if !l.IsDirect() {
			g.lines[l.Number] = true
			labelList = append(labelList, l.Number)
		}
	}
	g.scanProgram(lines)

	bodies := make([][]byte, len(lines))
	for i, l := range lines {
		g.generateLine(l)
		bodies[i] = g.buf
	}
	g.checkLoopsClosed()
	g.checkJumps()

	var b []byte
	if g.Variables {
		b = append(b, "v = o.vmGetAllVariables();\n"...)
	}
	b = append(b, "while (o.vmLoopCondition()) {\nswitch (o.line) {\ncase 0:\n"...)
	for _, data := range g.dataList {
		b = append(b, data...)
		b = append(b, ";\n"...)
	}
	b = append(b, "o.goto(o.startLine ? o.startLine : \"start\"); break;\ncase \"start\":\n"...)
	for i, l := range lines {
		label := caseLabel(l)
		if l.IsDirect() || g.keepDead || g.refs[l.Number] > 0 {
			b = append(b, "case "...)
			b = append(b, label...)
			b = append(b, ':')
		} else {
			b = append(b, "/* case "...)
			b = append(b, label...)
			b = append(b, ": */"...)
		}
		b = append(b, bodies[i]...)
		b = append(b, '\n')
	}
	b = append(b, "case \"end\": o.vmStop(\"end\", 90); break;\n"...)
	b = append(b, "default: o.error(8); o.goto(\"end\"); break;\n}}\n"...)
	return Output{
		Text:      string(b),
		SourceMap: g.sourceMap,
		DataList:  g.dataList,
		LabelList: labelList,
		Vars:      g.vars,
		Warnings:  g.warnings,
	}
}

// scanProgram looks for statements that change how the whole program is
// generated. MERGE and RESUME NEXT may jump to lines no GOTO names, so
// every line label is kept; RESUME NEXT and TRON need trace labels.
func (g *CodeGenJS) scanProgram(lines []*ast.Line) {
	ast.InspectLines(lines, func(n ast.Node) bool {
		cmd, ok := n.(*ast.Command)
		if !ok {
			return true
		}
		switch cmd.Kw {
		case token.MERGE, token.CHAINMERGE:
			g.keepDead = true
		case token.RESUMENEXT:
			g.keepDead, g.trace = true, true
		case token.RESUME:
			if len(cmd.Args) == 0 {
				g.keepDead, g.trace = true, true
			}
		case token.TRON:
			g.trace = true
		}
		return true
	})
}

// lineName returns the label prefix of a line: its number or "direct".
func lineName(l *ast.Line) string {
	if l.IsDirect() {
		return "direct"
	}
	return l.Label
}

// caseLabel returns the case expression of a line.
func caseLabel(l *ast.Line) string {
	if l.IsDirect() {
		return `"direct"`
	}
	return l.Label
}

func (g *CodeGenJS) generateLine(l *ast.Line) {
	g.label = l.Label
	g.labels.reset(lineName(l))
	g.buf = nil
	g.sourceMap[lineName(l)] = Span{Pos: l.StartPos, Len: l.NumLen}
	g.stmts(l.Stmts)
}

// checkLoopsClosed fails when a FOR or WHILE has no matching NEXT or WEND:
// its exit label would never be emitted.
func (g *CodeGenJS) checkLoopsClosed() {
	if len(g.forStack) > 0 {
		loop := g.forStack[len(g.forStack)-1]
		g.label = loop.line
		g.fatal(KindSyntax, "NEXT missing", loop.stmt)
	}
	if len(g.whileStack) > 0 {
		loop := g.whileStack[len(g.whileStack)-1]
		g.label = loop.line
		g.fatal(KindSyntax, "WEND missing", loop.stmt)
	}
}

// checkJumps warns about references to lines the program does not have.
func (g *CodeGenJS) checkJumps() {
	for _, j := range g.jumps {
		if g.lines[j.ref.Number] {
			continue
		}
		g.warnings = append(g.warnings, &Error{
			Kind:  KindWarning,
			Msg:   "Line does not exist",
			Value: strconv.Itoa(j.ref.Number),
			Pos:   j.ref.Pos(),
			Len:   j.ref.End() - j.ref.Pos(),
			Line:  j.line,
		})
	}
}

// jump records ref as a jump target and returns its case expression.
func (g *CodeGenJS) jump(ref *ast.LineRef) string {
	g.refs[ref.Number]++
	g.jumps = append(g.jumps, jumpRef{ref: ref, line: g.label})
	return strconv.Itoa(ref.Number)
}

func (g *CodeGenJS) out(s ...string) {
	for _, str := range s {
		g.buf = append(g.buf, str...)
	}
}

// openCase ends the code of the previous case and opens a synthetic label.
func (g *CodeGenJS) openCase(label string) {
	g.out("\ncase \"", label, "\":")
	g.cases++
}

// gotoNext ends the current case and opens the next stop label so the
// runtime regains control after a call.
func (g *CodeGenJS) gotoNext() {
	label := g.labels.next('s')
	g.out(" o.goto(\"", label, "\"); break;")
	g.openCase(label)
}

func (g *CodeGenJS) fatal(kind ErrorKind, msg string, n ast.Node) {
	g.err = g.diag(kind, msg, n)
	panic(bailout{})
}

func (g *CodeGenJS) warn(msg string, n ast.Node) {
	g.warnings = append(g.warnings, g.diag(KindWarning, msg, n))
}

func (g *CodeGenJS) diag(kind ErrorKind, msg string, n ast.Node) *Error {
	e := &Error{Kind: kind, Msg: msg, Line: g.label}
	if n != nil {
		e.Pos, e.Len = n.Pos(), n.End()-n.Pos()
		if e.Pos >= 0 && e.Pos+e.Len <= len(g.src) {
			e.Value = g.src[e.Pos : e.Pos+e.Len]
		}
	}
	return e
}

func (g *CodeGenJS) typeMismatch(n ast.Node) {
	g.fatal(KindType, "Type mismatch", n)
}
