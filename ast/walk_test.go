package ast

import (
	"testing"

	"github.com/soypat/go-locobasic/token"
)

// countVisitor counts how many times Visit is called
type countVisitor struct {
	count int
}

func (v *countVisitor) Visit(node Node) Visitor {
	if node != nil {
		v.count++
	}
	return v
}

func num(lit string, v float64) *NumberLit {
	return &NumberLit{Tok: token.Number, Lit: lit, Value: v}
}

func TestWalkLine(t *testing.T) {
	// 10 IF a > 1 THEN PRINT a; ELSE 20
	line := &Line{
		Number: 10,
		Label:  "10",
		Stmts: []Statement{
			&IfStmt{
				Cond: &BinaryExpr{Op: token.Greater, Left: &Ident{Name: "a"}, Right: num("1", 1)},
				Then: []Statement{&PrintStmt{
					Stream: &NullArg{Stream: true},
					Items:  []Expression{&Ident{Name: "a"}, &Separator{Tok: token.Semicolon}},
				}},
				Else:    []Statement{&Command{Kw: token.GOTO, Implicit: true, Args: []Expression{&LineRef{Number: 20}}}},
				HasElse: true,
			},
		},
	}
	v := &countVisitor{}
	Walk(v, line)
	// Line, If, Binary, Ident, Number, Print, NullArg, Ident, Separator, Command, LineRef.
	if v.count != 11 {
		t.Errorf("expected 11 visits, got %d", v.count)
	}
}

func TestInspectStops(t *testing.T) {
	fn := &FuncCall{Fn: token.LEFTSTR, Parens: true, Args: []Expression{
		&Ident{Name: "a$"},
		&BinaryExpr{Op: token.Plus, Left: num("1", 1), Right: num("2", 2)},
	}}
	var visited int
	Inspect(fn, func(n Node) bool {
		if n == nil {
			return false
		}
		visited++
		_, isBinary := n.(*BinaryExpr)
		return !isBinary
	})
	// FuncCall, Ident, BinaryExpr; the literals below BinaryExpr are skipped.
	if visited != 3 {
		t.Errorf("expected 3 visits, got %d", visited)
	}
}

func TestInspectLinesFindsIdents(t *testing.T) {
	lines := []*Line{
		{Label: "10", Number: 10, Stmts: []Statement{&Assign{Target: &Ident{Name: "a%"}, Value: num("1", 1)}}},
		{Label: "20", Number: 20, Stmts: []Statement{&ForStmt{Var: &Ident{Name: "i"}, Start: num("1", 1), Stop: &Ident{Name: "n"}}}},
	}
	var names []string
	InspectLines(lines, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	want := []string{"a%", "i", "n"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ident %d: got %q, want %q", i, names[i], want[i])
		}
	}
}
