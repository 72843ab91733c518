package locobasic

import (
	"testing"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/token"
)

// TestStatementParsing verifies that the statement parser constructs the
// node type and fields expected for each Locomotive BASIC statement form.
func TestStatementParsing(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		validate func(t *testing.T, stmt ast.Statement)
	}{
		// ===== Assignment =====
		{
			name: "implicit assignment",
			src:  "a%=1",
			validate: func(t *testing.T, stmt ast.Statement) {
				a, ok := stmt.(*ast.Assign)
				if !ok {
					t.Fatalf("Expected *ast.Assign, got %T", stmt)
				}
				if a.Let || a.Target.Name != "a%" {
					t.Errorf("unexpected assignment %+v", a)
				}
			},
		},
		{
			name: "LET array element",
			src:  "LET b$(i,2)=\"x\"",
			validate: func(t *testing.T, stmt ast.Statement) {
				a := stmt.(*ast.Assign)
				if !a.Let || !a.Target.IsArray() || len(a.Target.Index) != 2 {
					t.Errorf("unexpected assignment %+v", a)
				}
			},
		},
		{
			name: "MID$ assignment",
			src:  "MID$(a$,2,3)=\"xy\"",
			validate: func(t *testing.T, stmt ast.Statement) {
				m, ok := stmt.(*ast.MidAssign)
				if !ok {
					t.Fatalf("Expected *ast.MidAssign, got %T", stmt)
				}
				if m.Target.Name != "a$" || m.Len == nil {
					t.Errorf("unexpected MID$ assignment %+v", m)
				}
			},
		},

		// ===== Control flow =====
		{
			name: "IF THEN line ELSE statements",
			src:  "IF a THEN 100 ELSE PRINT 1: CLS",
			validate: func(t *testing.T, stmt ast.Statement) {
				s, ok := stmt.(*ast.IfStmt)
				if !ok {
					t.Fatalf("Expected *ast.IfStmt, got %T", stmt)
				}
				if len(s.Then) != 1 || !s.HasElse || len(s.Else) != 2 {
					t.Fatalf("unexpected branches then=%d else=%d", len(s.Then), len(s.Else))
				}
				jump := s.Then[0].(*ast.Command)
				if jump.Kw != token.GOTO || !jump.Implicit || jump.Args[0].(*ast.LineRef).Number != 100 {
					t.Errorf("THEN 100 should be an implicit GOTO, got %+v", jump)
				}
			},
		},
		{
			name: "IF GOTO",
			src:  "IF a GOTO 20",
			validate: func(t *testing.T, stmt ast.Statement) {
				s := stmt.(*ast.IfStmt)
				if len(s.Then) != 1 || s.HasElse {
					t.Fatalf("unexpected IF %+v", s)
				}
				if cmd := s.Then[0].(*ast.Command); cmd.Kw != token.GOTO || cmd.Implicit {
					t.Errorf("expected explicit GOTO, got %+v", cmd)
				}
			},
		},
		{
			name: "FOR with STEP",
			src:  "FOR i=10 TO 1 STEP -2",
			validate: func(t *testing.T, stmt ast.Statement) {
				f, ok := stmt.(*ast.ForStmt)
				if !ok {
					t.Fatalf("Expected *ast.ForStmt, got %T", stmt)
				}
				if f.Var.Name != "i" || f.Step == nil {
					t.Errorf("unexpected FOR %+v", f)
				}
				if _, ok := f.Step.(*ast.UnaryExpr); !ok {
					t.Errorf("expected negated step, got %T", f.Step)
				}
			},
		},
		{
			name: "NEXT with variables",
			src:  "NEXT j,i",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.NEXT || len(cmd.Args) != 2 {
					t.Errorf("unexpected NEXT %+v", cmd)
				}
			},
		},
		{
			name: "ON GOSUB",
			src:  "ON x+1 GOSUB 100,200",
			validate: func(t *testing.T, stmt ast.Statement) {
				on, ok := stmt.(*ast.OnJump)
				if !ok {
					t.Fatalf("Expected *ast.OnJump, got %T", stmt)
				}
				if on.Kw != token.ONGOSUB || len(on.Targets) != 2 || on.Targets[1].Number != 200 {
					t.Errorf("unexpected ON GOSUB %+v", on)
				}
			},
		},
		{
			name: "ON ERROR GOTO",
			src:  "ON ERROR GOTO 0",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.ONERRORGOTO || len(cmd.Args) != 1 {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},
		{
			name: "ON BREAK STOP",
			src:  "ON BREAK STOP",
			validate: func(t *testing.T, stmt ast.Statement) {
				if cmd := stmt.(*ast.Command); cmd.Kw != token.ONBREAKSTOP {
					t.Errorf("unexpected command %v", cmd.Kw)
				}
			},
		},
		{
			name: "ON SQ GOSUB",
			src:  "ON SQ(2) GOSUB 50",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.ONSQGOSUB || len(cmd.Args) != 2 {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},
		{
			name: "EVERY timer",
			src:  "EVERY 50,1 GOSUB 10",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.EVERY || len(cmd.Args) != 3 {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},
		{
			name: "RESUME NEXT",
			src:  "RESUME NEXT",
			validate: func(t *testing.T, stmt ast.Statement) {
				if cmd := stmt.(*ast.Command); cmd.Kw != token.RESUMENEXT {
					t.Errorf("unexpected command %v", cmd.Kw)
				}
			},
		},
		{
			name: "CHAIN MERGE",
			src:  "CHAIN MERGE \"b\",100",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.CHAINMERGE || len(cmd.Args) != 2 {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},

		// ===== Input and output =====
		{
			name: "PRINT with stream and separators",
			src:  "PRINT #1,a;b,",
			validate: func(t *testing.T, stmt ast.Statement) {
				pr, ok := stmt.(*ast.PrintStmt)
				if !ok {
					t.Fatalf("Expected *ast.PrintStmt, got %T", stmt)
				}
				if _, ok := pr.Stream.(*ast.Stream); !ok {
					t.Errorf("expected stream, got %T", pr.Stream)
				}
				if len(pr.Items) != 4 {
					t.Fatalf("expected 4 items, got %d", len(pr.Items))
				}
				if sep, ok := pr.Items[3].(*ast.Separator); !ok || sep.Tok != token.Comma {
					t.Errorf("expected trailing comma, got %T", pr.Items[3])
				}
			},
		},
		{
			name: "question mark PRINT USING",
			src:  "?USING \"##.#\";x",
			validate: func(t *testing.T, stmt ast.Statement) {
				pr := stmt.(*ast.PrintStmt)
				if len(pr.Items) != 1 {
					t.Fatalf("expected 1 item, got %d", len(pr.Items))
				}
				using, ok := pr.Items[0].(*ast.Using)
				if !ok || len(using.Items) != 1 {
					t.Errorf("unexpected USING %+v", pr.Items[0])
				}
			},
		},
		{
			name: "INPUT with prompt",
			src:  "INPUT \"name\",n$,a",
			validate: func(t *testing.T, stmt ast.Statement) {
				in, ok := stmt.(*ast.InputStmt)
				if !ok {
					t.Fatalf("Expected *ast.InputStmt, got %T", stmt)
				}
				if in.Kw != token.INPUT || in.Prompt == nil || in.Prompt.Value != "name" || in.PromptSep != token.Comma {
					t.Errorf("unexpected INPUT %+v", in)
				}
				if len(in.Vars) != 2 {
					t.Errorf("expected 2 variables, got %d", len(in.Vars))
				}
			},
		},
		{
			name: "LINE INPUT without CRLF",
			src:  "LINE INPUT #9,;a$",
			validate: func(t *testing.T, stmt ast.Statement) {
				in := stmt.(*ast.InputStmt)
				if in.Kw != token.LINEINPUT || !in.NoCRLF || len(in.Vars) != 1 {
					t.Errorf("unexpected LINE INPUT %+v", in)
				}
			},
		},

		// ===== Declarations and data =====
		{
			name: "DATA with empty items",
			src:  "DATA 1, two ,\"3,4\",",
			validate: func(t *testing.T, stmt ast.Statement) {
				d, ok := stmt.(*ast.DataStmt)
				if !ok {
					t.Fatalf("Expected *ast.DataStmt, got %T", stmt)
				}
				if len(d.Items) != 4 {
					t.Fatalf("expected 4 items, got %d", len(d.Items))
				}
				if u := d.Items[1].(*ast.Unquoted); u.Value != "two" {
					t.Errorf("expected trimmed item, got %q", u.Value)
				}
				if s := d.Items[2].(*ast.StringLit); s.Value != "3,4" {
					t.Errorf("expected quoted item, got %q", s.Value)
				}
				if _, ok := d.Items[3].(*ast.NullArg); !ok {
					t.Errorf("expected empty item, got %T", d.Items[3])
				}
			},
		},
		{
			name: "DEF FN",
			src:  "DEF FNarea(w,h)=w*h",
			validate: func(t *testing.T, stmt ast.Statement) {
				fn, ok := stmt.(*ast.DefFn)
				if !ok {
					t.Fatalf("Expected *ast.DefFn, got %T", stmt)
				}
				if fn.Name.Name != "area" || len(fn.Params) != 2 {
					t.Errorf("unexpected DEF FN %+v", fn)
				}
			},
		},
		{
			name: "DEFINT ranges",
			src:  "DEFINT a-c,x",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.DEFINT || len(cmd.Args) != 2 {
					t.Fatalf("unexpected DEFINT %+v", cmd)
				}
				lr := cmd.Args[0].(*ast.LetterRange)
				if lr.From != 'a' || lr.To != 'c' {
					t.Errorf("unexpected range %c-%c", lr.From, lr.To)
				}
			},
		},
		{
			name: "DIM",
			src:  "DIM a(10),b$(2,3)",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.DIM || len(cmd.Args) != 2 {
					t.Fatalf("unexpected DIM %+v", cmd)
				}
				if id := cmd.Args[1].(*ast.Ident); len(id.Index) != 2 {
					t.Errorf("expected 2 dimensions, got %d", len(id.Index))
				}
			},
		},

		// ===== Remarks and RSX =====
		{
			name: "apostrophe remark",
			src:  "' hello: world",
			validate: func(t *testing.T, stmt ast.Statement) {
				rem, ok := stmt.(*ast.Remark)
				if !ok {
					t.Fatalf("Expected *ast.Remark, got %T", stmt)
				}
				if rem.Kw != token.Apostrophe || rem.Text != " hello: world" {
					t.Errorf("unexpected remark %q", rem.Text)
				}
			},
		},
		{
			name: "RSX with arguments",
			src:  "|ERA,\"*.BAK\"",
			validate: func(t *testing.T, stmt ast.Statement) {
				rsx, ok := stmt.(*ast.RsxStmt)
				if !ok {
					t.Fatalf("Expected *ast.RsxStmt, got %T", stmt)
				}
				if rsx.Name != "era" || len(rsx.Args) != 1 {
					t.Errorf("unexpected RSX %+v", rsx)
				}
			},
		},

		// ===== Generic commands =====
		{
			name: "composite keyword",
			src:  "GRAPHICS PEN 1",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.GRAPHICSPEN || len(cmd.Args) != 1 {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},
		{
			name: "omitted arguments",
			src:  "SOUND 1,200,,,,1",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				if cmd.Kw != token.SOUND || len(cmd.Args) != 6 {
					t.Fatalf("unexpected command %+v", cmd)
				}
				if _, ok := cmd.Args[2].(*ast.NullArg); !ok {
					t.Errorf("expected omitted argument, got %T", cmd.Args[2])
				}
			},
		},
		{
			name: "LIST range",
			src:  "LIST 10-",
			validate: func(t *testing.T, stmt ast.Statement) {
				cmd := stmt.(*ast.Command)
				lr := cmd.Args[0].(*ast.LineRange)
				if lr.From == nil || lr.From.Number != 10 || lr.To != nil || !lr.Dash {
					t.Errorf("unexpected range %+v", lr)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := mustParse(t, "10 "+tt.src)
			if len(lines) != 1 || len(lines[0].Stmts) == 0 {
				t.Fatalf("expected one line with statements, got %d lines", len(lines))
			}
			tt.validate(t, lines[0].Stmts[0])
		})
	}
}
