package symbol

import (
	"fmt"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/token"
)

// DeclarationCollector traverses parsed lines and populates a Table with
// every variable, array and DEF FN function, applying DEFINT, DEFREAL and
// DEFSTR rules in source order.
type DeclarationCollector struct {
	table  *Table
	rules  LetterRules
	params map[string]bool // DEF FN parameters while walking a body.
	errors []error
}

// NewDeclarationCollector creates a new collector for building a symbol table.
func NewDeclarationCollector() *DeclarationCollector {
	return &DeclarationCollector{table: NewTable()}
}

// Collect processes lines and returns the errors found, nil if none.
func (dc *DeclarationCollector) Collect(lines []*ast.Line) []error {
	dc.errors = nil
	dc.rules.Reset()
	for _, l := range lines {
		ast.Walk(dc, l)
	}
	return dc.errors
}

// SymbolTable returns the populated table.
func (dc *DeclarationCollector) SymbolTable() *Table { return dc.table }

// Rules returns the letter rules in effect after the last collected line.
func (dc *DeclarationCollector) Rules() *LetterRules { return &dc.rules }

// Visit implements the ast.Visitor interface.
func (dc *DeclarationCollector) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.Command:
		switch n.Kw {
		case token.DEFINT, token.DEFREAL, token.DEFSTR:
			dc.defineLetters(n)
			return nil
		case token.DIM, token.ERASE:
			for _, arg := range n.Args {
				if id, ok := arg.(*ast.Ident); ok {
					v := dc.use(id, FlagArray)
					v.SetDims(len(id.Index))
					for _, ix := range id.Index {
						ast.Walk(dc, ix)
					}
				}
			}
			return nil
		}
	case *ast.DefFn:
		dc.table.Use(n.Name.Name, dc.rules.TypeOf(n.Name.Name), FlagFunction|FlagAssigned, n.Name.Pos())
		dc.params = make(map[string]bool, len(n.Params))
		for _, p := range n.Params {
			dc.params[JSName(p.Name, false)] = true
		}
		ast.Walk(dc, n.Body)
		dc.params = nil
		return nil
	case *ast.FnCall:
		dc.table.Use(n.Name, dc.rules.TypeOf(n.Name), FlagFunction, n.Pos())
	case *ast.Assign:
		dc.use(n.Target, FlagAssigned)
		for _, ix := range n.Target.Index {
			ast.Walk(dc, ix)
		}
		ast.Walk(dc, n.Value)
		return nil
	case *ast.Ident:
		if n.Index == nil && dc.params[JSName(n.Name, false)] {
			return nil
		}
		dc.use(n, 0)
	}
	return dc
}

func (dc *DeclarationCollector) use(id *ast.Ident, flags Flags) *Var {
	if id.IsArray() {
		flags |= FlagArray
	}
	typ := SuffixType(id.Name)
	if typ == Unknown {
		typ = dc.rules.TypeOf(id.Name)
		if typ != Unknown {
			flags |= FlagImplicit
		}
	}
	return dc.table.Use(id.Name, typ, flags, id.Pos())
}

func (dc *DeclarationCollector) defineLetters(cmd *ast.Command) {
	typ := Int
	switch cmd.Kw {
	case token.DEFREAL:
		typ = Real
	case token.DEFSTR:
		typ = String
	}
	for _, arg := range cmd.Args {
		lr, ok := arg.(*ast.LetterRange)
		if !ok {
			dc.errors = append(dc.errors, fmt.Errorf("%d: %s expects letters", cmd.Pos(), cmd.Kw.Source()))
			continue
		}
		if err := dc.rules.Define(lr.From, lr.To, typ); err != nil {
			dc.errors = append(dc.errors, fmt.Errorf("%d: %w", lr.Pos(), err))
		}
	}
}
