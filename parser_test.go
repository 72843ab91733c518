package locobasic

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/soypat/go-locobasic/ast"
	"github.com/soypat/go-locobasic/token"
)

//go:embed testdata
var testdatadir embed.FS

func TestData_valid(t *testing.T) {
	entries, err := fs.ReadDir(testdatadir, "testdata")
	if err != nil || len(entries) == 0 {
		t.Fatal(err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "valid_") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			path := "testdata/" + name
			src, err := fs.ReadFile(testdatadir, path)
			if err != nil {
				t.Fatal(err)
			}
			out := Compile(string(src), Options{})
			if out.Err != nil {
				t.Fatalf("%s: %v", out.Err.Where(path, string(src)), out.Err)
			}
			if err := compareDiagnostics(path, string(src), "WARNING", out.Warnings); err != nil {
				t.Error(err)
			}
			checkRoundTrip(t, string(src))
		})
	}
}

// Blocks separated by an empty line are compiled independently and each must
// fail with the error annotated on one of its lines.
func TestData_invalid(t *testing.T) {
	entries, err := fs.ReadDir(testdatadir, "testdata")
	if err != nil || len(entries) == 0 {
		t.Fatal(err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "invalid_") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			srcpath := "testdata/" + name
			src, err := fs.ReadFile(testdatadir, srcpath)
			if err != nil {
				t.Fatal(err)
			}
			for i, block := range strings.Split(string(src), "\n\n") {
				out := Compile(block, Options{})
				if out.Err == nil {
					t.Errorf("%s block %d: expected error, got none", srcpath, i)
					continue
				}
				if err := compareDiagnostics(srcpath, block, "ERROR", []*Error{out.Err}); err != nil {
					t.Errorf("block %d: %v", i, err)
				}
			}
		})
	}
}

var diagCommentRx = regexp.MustCompile(`'\s*(ERROR|WARNING)\s+"([^"]*)"`)

// expectedDiagnostics scans the source for annotations of the given kind and
// returns a map of 1-based text line numbers to expected message patterns.
func expectedDiagnostics(src, kind string) map[int]string {
	expected := make(map[int]string)
	for lineNum, line := range strings.Split(src, "\n") {
		if m := diagCommentRx.FindStringSubmatch(line); len(m) == 3 && m[1] == kind {
			expected[lineNum+1] = m[2]
		}
	}
	return expected
}

// compareDiagnostics checks that every annotation is matched by a diagnostic
// on its line and that no diagnostic is left unannotated.
func compareDiagnostics(srcpath, src, kind string, actual []*Error) error {
	expected := expectedDiagnostics(src, kind)
	matched := make([]bool, len(actual))
	for line, pattern := range expected {
		rx, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid regex pattern %q: %v", srcpath, line, pattern, err)
		}
		found := ""
		for i, diag := range actual {
			if positionOf(srcpath, src, diag.Pos).Line != line {
				continue
			}
			found = diag.ShortMessage()
			if rx.MatchString(diag.Msg) {
				matched[i] = true
				found = ""
				break
			}
		}
		if found != "" {
			return fmt.Errorf("%s:%d: expected %s matching %q, got %q", srcpath, line, kind, pattern, found)
		}
	}
	for i, ok := range matched {
		if !ok {
			return fmt.Errorf("%s: unexpected %s: %v", actual[i].Where(srcpath, src), kind, actual[i])
		}
	}
	for line, pattern := range expected {
		hit := false
		for i, diag := range actual {
			hit = hit || (matched[i] && positionOf(srcpath, src, diag.Pos).Line == line)
		}
		if !hit {
			return fmt.Errorf("%s:%d: expected %s matching %q, none found", srcpath, line, kind, pattern)
		}
	}
	return nil
}

// checkRoundTrip formats the parsed program and verifies that reparsing the
// text yields the same tree.
func checkRoundTrip(t *testing.T, src string) {
	t.Helper()
	lines := mustParse(t, src)
	formatted := ast.Format(lines)
	again := mustParse(t, formatted)
	if got, want := ast.Sprint(again), ast.Sprint(lines); got != want {
		t.Errorf("round trip changed the tree.\nformatted:\n%s\ngot:\n%s\nwant:\n%s", formatted, got, want)
	}
}

func mustParse(t *testing.T, src string) []*ast.Line {
	t.Helper()
	var l Lexer
	lexemes, err := l.Lex(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	var p Parser
	lines, err := p.Parse(lexemes)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return lines
}

func parseError(t *testing.T, src string) *Error {
	t.Helper()
	var l Lexer
	lexemes, err := l.Lex(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	var p Parser
	_, err = p.Parse(lexemes)
	if err == nil {
		t.Fatalf("parse %q: expected error", src)
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("parse %q: expected *Error, got %T", src, err)
	}
	return perr
}

func TestParseLines(t *testing.T) {
	lines := mustParse(t, "\n10 CLS\n\n20 PRINT 1:PRINT 2\r\nPRINT 3")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	expect := []struct {
		label  string
		nstmts int
	}{
		0: {label: "10", nstmts: 1},
		1: {label: "20", nstmts: 2},
		2: {label: "", nstmts: 1},
	}
	for i, want := range expect {
		if lines[i].Label != want.label || len(lines[i].Stmts) != want.nstmts {
			t.Errorf("line %d: got label %q with %d statements, want %q with %d",
				i, lines[i].Label, len(lines[i].Stmts), want.label, want.nstmts)
		}
	}
	if !lines[2].IsDirect() {
		t.Error("unnumbered line should be direct")
	}
	if lines[1].NumLen != 2 || lines[1].Number != 20 {
		t.Errorf("unexpected line number info %+v", lines[1])
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		src     string
		wantMsg string
		wantPos int
	}{
		0: {src: "20 CLS\n10 CLS", wantMsg: "Expected increasing line number", wantPos: 7},
		1: {src: "10 CLS\n10 CLS", wantMsg: "Expected increasing line number", wantPos: 7},
		2: {src: "0 CLS", wantMsg: "Bad line number", wantPos: 0},
		3: {src: "CLS\n10 CLS", wantMsg: "Direct command must be the last line", wantPos: 4},
		4: {src: "10 GOSUB", wantMsg: "Expected line number", wantPos: 8},
		5: {src: "10 PRINT a b c )", wantMsg: "Unexpected token", wantPos: 15},
	}
	for i, tc := range cases {
		perr := parseError(t, tc.src)
		if perr.Msg != tc.wantMsg || perr.Pos != tc.wantPos {
			t.Errorf("case %d %q: got %q at %d, want %q at %d", i, tc.src, perr.Msg, perr.Pos, tc.wantMsg, tc.wantPos)
		}
		if perr.Kind != KindSyntax {
			t.Errorf("case %d: expected syntax error, got %v", i, perr.Kind)
		}
	}
}

func TestParseWarnings(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		0: {src: "10 IF a THEN 20: PRINT", want: []string{"Unreachable code"}},
		1: {src: "10 IF a THEN STOP ELSE END: 'fine\n20 END", want: nil},
		2: {src: "10 x=a[1)", want: []string{"Inconsistent bracket style"}},
		3: {src: "10 PRINT: ELSE x", want: []string{"Unexpected ELSE"}},
		4: {src: "10 IF a THEN PRINT ELSE GOTO 10: CLS", want: []string{"Unreachable code"}},
	}
	for i, tc := range cases {
		var l Lexer
		lexemes, err := l.Lex(tc.src)
		if err != nil {
			t.Fatal(err)
		}
		var p Parser
		if _, err := p.Parse(lexemes); err != nil {
			t.Errorf("case %d: %v", i, err)
			continue
		}
		var got []string
		for _, w := range p.Warnings() {
			got = append(got, w.Msg)
			if w.Kind != KindWarning {
				t.Errorf("case %d: warning with kind %v", i, w.Kind)
			}
		}
		if strings.Join(got, "|") != strings.Join(tc.want, "|") {
			t.Errorf("case %d: got warnings %q, want %q", i, got, tc.want)
		}
	}
}

func TestParserReuse(t *testing.T) {
	var l Lexer
	var p Parser
	lexemes, _ := l.Lex("10 x=1\n20 GOTO")
	if _, err := p.Parse(lexemes); err == nil {
		t.Fatal("expected error")
	}
	lexemes, _ = l.Lex("5 x=1")
	lines, err := p.Parse(lexemes)
	if err != nil {
		t.Fatalf("state leaked across Parse calls: %v", err)
	}
	if len(lines) != 1 || lines[0].Number != 5 {
		t.Fatalf("unexpected lines %v", ast.Format(lines))
	}
	if p.Err() != nil {
		t.Error("Err should be cleared by Parse")
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		0:  `10 a=1+2*3-(4/5)^2 MOD 3\7`,
		1:  `10 IF a=1 OR b<>2 AND NOT c THEN 100 ELSE PRINT "x";y,z;`,
		2:  `10 PRINT #2,USING "##.#";a;b: INPUT #1,;"x",a$,b`,
		3:  "10 DATA 1,,\"a,b\", c d ,\n20 DATA",
		4:  `10 ON BREAK GOSUB 100: ON ERROR GOTO 0: ON SQ(2) GOSUB 30: ON x GOSUB 1,2`,
		5:  `10 EVERY 50 GOSUB 100: AFTER 10,2 GOSUB 200: CHAIN MERGE "f",,DELETE 10-`,
		6:  `10 PEN ,2: LIST #8: LIST -50,#8: CURSOR ,1: MOVE 1,2,,3`,
		7:  `10 DEF FNf(x,y$)=x+LEN(y$): a=FNf(1,"ab")+FNg`,
		8:  `10 MID$(a$(1),2)=b$: LINE INPUT "?",l$: DEFINT a-c,z: DIM a(1,2),b[3]`,
		9:  `10 |DIR,@a%: CALL &BD19: x=-2^-1: y=+z: s$="open`,
		10: `10 REM hi there: not a statement` + "\n20 ' comment\n30 CLS 'tail",
		11: `10 WINDOW SWAP 0: SPEED WRITE 1: SYMBOL AFTER 240: KEY DEF 1,1: RESUME NEXT`,
		12: `10 RUN: RUN 100: RUN "disc": RESTORE: RESUME 20: CLEAR INPUT: GRAPHICS PAPER 3`,
	}
	for i, src := range sources {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			checkRoundTrip(t, src)
		})
	}
}

func TestParsePositions(t *testing.T) {
	const src = "10 PRINT a+1:GOTO 10"
	lines := mustParse(t, src)
	stmts := lines[0].Stmts
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	for i, want := range []string{"PRINT a+1", "GOTO 10"} {
		if got := src[stmts[i].Pos():stmts[i].End()]; got != want {
			t.Errorf("statement %d spans %q, want %q", i, got, want)
		}
	}
	if lines[0].Pos() != 0 || lines[0].End() != len(src) {
		t.Errorf("line spans %d-%d, want 0-%d", lines[0].Pos(), lines[0].End(), len(src))
	}
	cmd := stmts[1].(*ast.Command)
	if cmd.Kw != token.GOTO {
		t.Errorf("expected GOTO, got %s", cmd.Kw)
	}
}
