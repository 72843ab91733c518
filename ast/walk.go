package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor
// w for each of the non-nil children of node, followed by a call of
// w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Line:
		walkStmts(v, n.Stmts)

	// Statements
	case *Command:
		walkExprs(v, n.Args)
	case *Assign:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *MidAssign:
		Walk(v, n.Target)
		Walk(v, n.Start)
		walkOpt(v, n.Len)
		Walk(v, n.Value)
	case *IfStmt:
		Walk(v, n.Cond)
		walkStmts(v, n.Then)
		walkStmts(v, n.Else)
	case *ForStmt:
		Walk(v, n.Var)
		Walk(v, n.Start)
		Walk(v, n.Stop)
		walkOpt(v, n.Step)
	case *OnJump:
		Walk(v, n.Index)
		for _, t := range n.Targets {
			Walk(v, t)
		}
	case *DataStmt:
		walkExprs(v, n.Items)
	case *DefFn:
		Walk(v, n.Name)
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)
	case *PrintStmt:
		walkOpt(v, n.Stream)
		walkExprs(v, n.Items)
	case *InputStmt:
		walkOpt(v, n.Stream)
		if n.Prompt != nil {
			Walk(v, n.Prompt)
		}
		for _, id := range n.Vars {
			Walk(v, id)
		}
	case *RsxStmt:
		walkExprs(v, n.Args)
	case *Remark:
		// no children

	// Expressions
	case *Ident:
		walkExprs(v, n.Index)
	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryExpr:
		Walk(v, n.X)
	case *ParenExpr:
		Walk(v, n.X)
	case *FuncCall:
		walkExprs(v, n.Args)
	case *FnCall:
		walkExprs(v, n.Args)
	case *LineRange:
		if n.From != nil {
			Walk(v, n.From)
		}
		if n.To != nil {
			Walk(v, n.To)
		}
	case *Stream:
		Walk(v, n.X)
	case *AddressOf:
		Walk(v, n.X)
	case *Using:
		Walk(v, n.Format)
		walkExprs(v, n.Items)
	case *NumberLit, *StringLit, *Unquoted, *LineRef, *LetterRange, *NullArg, *Separator:
		// leaves
	}
	v.Visit(nil)
}

func walkStmts(v Visitor, stmts []Statement) {
	for _, s := range stmts {
		Walk(v, s)
	}
}

func walkExprs(v Visitor, exprs []Expression) {
	for _, e := range exprs {
		Walk(v, e)
	}
}

func walkOpt(v Visitor, e Expression) {
	if e != nil {
		Walk(v, e)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// InspectLines calls Inspect for every line in order.
func InspectLines(lines []*Line, f func(Node) bool) {
	for _, l := range lines {
		Inspect(l, f)
	}
}
