package locobasic

import (
	"errors"
	"strings"
	"testing"
)

func TestREPL_Edit(t *testing.T) {
	r := NewREPL(Options{})
	for _, input := range []string{"20 PRINT \"b\"", "10 PRINT \"a\"", "", "30 GOTO 10"} {
		out, compiled, err := r.Eval(input)
		if err != nil || compiled {
			t.Fatalf("%q: compiled=%v err=%v", input, compiled, err)
		}
		if len(out.Warnings) != 0 {
			t.Errorf("%q: unexpected warnings %v", input, out.Warnings)
		}
	}
	got, err := r.List("")
	if err != nil {
		t.Fatal(err)
	}
	if want := "10 PRINT \"a\"\n20 PRINT \"b\"\n30 GOTO 10\n"; got != want {
		t.Errorf("listing %q, want %q", got, want)
	}
	if _, _, err := r.Eval("20"); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.List("10-20"); got != "10 PRINT \"a\"\n" {
		t.Errorf("listing after delete %q", got)
	}
}

func TestREPL_EvalDirect(t *testing.T) {
	r := NewREPL(Options{})
	r.Eval("10 a%=1")
	out, compiled, err := r.Eval("GOTO 10")
	if err != nil || !compiled {
		t.Fatalf("compiled=%v err=%v", compiled, err)
	}
	for _, want := range []string{"\ncase 10: v.aI = 1;", `case "direct": o.goto(10); break;`} {
		if !strings.Contains(out.Text, want) {
			t.Errorf("missing %q in\n%s", want, out.Text)
		}
	}
	if r.Last().Text != out.Text {
		t.Error("Last must return the last compiled output")
	}
}

func TestREPL_EvalErrors(t *testing.T) {
	r := NewREPL(Options{})
	var tests = []struct {
		input   string
		wantErr error
		stored  bool
	}{
		0: {input: "10 PRINT (", wantErr: ErrSyntax},
		1: {input: "10 a$=1", stored: true}, // types are checked when compiling.
		2: {input: "PRINT a$+1", wantErr: ErrType},
		3: {input: "10 PRINT \"x", stored: true},
		4: {input: "70000 CLS", wantErr: ErrSyntax},
	}
	for i, tt := range tests {
		r.Program().New()
		_, _, err := r.Eval(tt.input)
		if !errors.Is(err, tt.wantErr) && (err != nil || tt.wantErr != nil) {
			t.Errorf("%d: %q: got error %v, want %v", i, tt.input, err, tt.wantErr)
		}
		if stored := r.Program().Len() > 0; stored != tt.stored {
			t.Errorf("%d: %q: stored=%v, want %v", i, tt.input, stored, tt.stored)
		}
	}

	// A stored line with a type error fails every direct line.
	r.Program().New()
	r.Eval("10 a$=1")
	if _, _, err := r.Eval("RUN"); !errors.Is(err, ErrType) {
		t.Errorf("expected type error from stored line, got %v", err)
	}
}

func TestREPL_Load(t *testing.T) {
	r := NewREPL(Options{Trace: true})
	out, err := r.Load("20 PRINT 2\n10 PRINT 1\nRUN 10")
	if err != nil {
		t.Fatal(err)
	}
	if r.Program().Len() != 2 {
		t.Errorf("expected 2 lines, got %d", r.Program().Len())
	}
	for _, want := range []string{`o.vmTrace("direct#0"); o.run(10); break;`, "\ncase 10:"} {
		if !strings.Contains(out.Text, want) {
			t.Errorf("missing %q in\n%s", want, out.Text)
		}
	}
}
