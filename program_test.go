package locobasic

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestProgramLoad(t *testing.T) {
	p := NewProgram()
	direct, err := p.Load("30 END\r\n10 PRINT \"a\"\n\n20 GOTO 10\n10 CLS\nRUN\n")
	if err != nil {
		t.Fatal(err)
	}
	if direct != "RUN" {
		t.Errorf("direct line %q", direct)
	}
	if got := p.Lines(); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("lines %v", got)
	}
	const want = "10 CLS\n20 GOTO 10\n30 END\n"
	if got := p.Source(); got != want {
		t.Errorf("source %q, want %q", got, want)
	}
}

func TestProgramLoadContinuation(t *testing.T) {
	p := NewProgram()
	direct, err := p.Load("10 DATA \"abc\ndef\n20 END")
	if err != nil {
		t.Fatal(err)
	}
	if direct != "" || p.Len() != 2 {
		t.Fatalf("direct %q, %d lines", direct, p.Len())
	}
	if text, _ := p.Get(10); text != "10 DATA \"abc\ndef" {
		t.Errorf("continued line %q", text)
	}
}

func TestProgramLoadErrors(t *testing.T) {
	var tests = []struct {
		src     string
		wantMsg string
		wantPos int
	}{
		0: {src: "CLS\n10 END", wantMsg: "Direct command must be the last line", wantPos: 0},
		1: {src: "10 CLS\n70000 END", wantMsg: "Bad line number", wantPos: 7},
		2: {src: "10 CLS\n  0 END", wantMsg: "Bad line number", wantPos: 9},
	}
	for i, tt := range tests {
		_, err := NewProgram().Load(tt.src)
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("%d: expected *Error, got %v", i, err)
			continue
		}
		if perr.Msg != tt.wantMsg || perr.Pos != tt.wantPos {
			t.Errorf("%d: got %q at %d, want %q at %d", i, perr.Msg, perr.Pos, tt.wantMsg, tt.wantPos)
		}
	}
}

func TestProgramEdit(t *testing.T) {
	p := NewProgram()
	for _, line := range []string{"20 PRINT 2", "10 PRINT 1", "30 PRINT 3", "20 PRINT \"two\""} {
		if _, err := p.Set(line); err != nil {
			t.Fatal(err)
		}
	}
	if text, ok := p.Get(20); !ok || text != "20 PRINT \"two\"" {
		t.Errorf("line 20 = %q, %v", text, ok)
	}
	if n, err := p.Set("30 "); err != nil || n != 30 {
		t.Fatalf("delete by number: %d, %v", n, err)
	}
	if _, ok := p.Get(30); ok {
		t.Error("line 30 not deleted")
	}
	if p.Delete(30) {
		t.Error("deleting a missing line must report false")
	}
	if _, err := p.Set("PRINT"); err == nil {
		t.Error("expected error for unnumbered line")
	}
	p.Set("40 END")
	if n := p.DeleteRange(15, 40); n != 2 {
		t.Errorf("DeleteRange removed %d lines, want 2", n)
	}
	if got := p.Source(); got != "10 PRINT 1\n" {
		t.Errorf("source %q", got)
	}
	p.New()
	if p.Len() != 0 || p.Source() != "" {
		t.Error("New must clear the program")
	}
}

// Every line Range emits lies within the range and every line within the
// range is emitted.
func TestProgramRangeExtraction(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p := NewProgram()
	var numbers []int
	for len(numbers) < 200 {
		n := 1 + rng.IntN(MaxLine)
		if _, ok := p.Get(n); ok {
			continue
		}
		p.Set(strconv.Itoa(n) + " PRINT " + strconv.Itoa(n))
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	for i := 0; i < 100; i++ {
		a, b := 1+rng.IntN(MaxLine), 1+rng.IntN(MaxLine)
		if a > b {
			a, b = b, a
		}
		var got []int
		for _, line := range strings.Split(strings.TrimSuffix(p.Range(a, b), "\n"), "\n") {
			if line == "" {
				continue
			}
			n, _, ok, _ := lineNumber(line)
			if !ok || n < a || n > b {
				t.Fatalf("Range(%d,%d) emitted %q", a, b, line)
			}
			got = append(got, n)
		}
		var want []int
		for _, n := range numbers {
			if n >= a && n <= b {
				want = append(want, n)
			}
		}
		if !slices.Equal(got, want) {
			t.Fatalf("Range(%d,%d) = %v, want %v", a, b, got, want)
		}
	}
}

func TestParseRange(t *testing.T) {
	var tests = []struct {
		s        string
		from, to int
		wantErr  bool
	}{
		0: {s: "", from: MinLine, to: MaxLine},
		1: {s: "100", from: 100, to: 100},
		2: {s: "100-", from: 100, to: MaxLine},
		3: {s: "-200", from: MinLine, to: 200},
		4: {s: " 10 - 20 ", from: 10, to: 20},
		5: {s: "20-10", wantErr: true},
		6: {s: "0-10", wantErr: true},
		7: {s: "a-b", wantErr: true},
	}
	for i, tt := range tests {
		from, to, err := ParseRange(tt.s)
		if (err != nil) != tt.wantErr {
			t.Errorf("%d: %q: unexpected error %v", i, tt.s, err)
			continue
		}
		if !tt.wantErr && (from != tt.from || to != tt.to) {
			t.Errorf("%d: %q: got %d-%d, want %d-%d", i, tt.s, from, to, tt.from, tt.to)
		}
	}
}
