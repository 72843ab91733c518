package locobasic

import (
	"strings"
)

// REPL is an interactive BASIC session. Numbered input edits the program;
// any other input is compiled as the direct line of the current program.
type REPL struct {
	prog *Program
	gen  CodeGenJS
	// last holds the output of the last compiled direct line.
	last Output
}

func NewREPL(opts Options) *REPL {
	return &REPL{prog: NewProgram(), gen: CodeGenJS{Options: opts}}
}

// Program returns the program being edited.
func (r *REPL) Program() *Program { return r.prog }

// Last returns the output of the last compiled direct line.
func (r *REPL) Last() Output { return r.last }

// Eval handles one line of input. Numbered lines are checked and stored, a
// bare line number deletes its line and blank input does nothing. For
// other input compiled is true and out holds the program compiled with
// input as its direct line. err is the first fatal diagnostic.
func (r *REPL) Eval(input string) (out Output, compiled bool, err error) {
	input = strings.TrimRight(input, "\r\n")
	if strings.TrimSpace(input) == "" {
		return Output{}, false, nil
	}
	_, _, numbered, lerr := lineNumber(input)
	if lerr != nil {
		return Output{}, false, lerr
	}
	if numbered {
		return r.edit(input)
	}
	src := r.prog.Source() + input
	out = r.gen.Generate(src, nil)
	r.last = out
	if out.Err != nil {
		return out, true, out.Err
	}
	return out, true, nil
}

// edit stores a numbered line once it lexes and parses on its own.
func (r *REPL) edit(line string) (Output, bool, error) {
	var (
		lx Lexer
		p  Parser
	)
	lexemes, err := lx.Lex(line)
	if err == nil {
		_, err = p.Parse(lexemes)
	}
	if err != nil {
		return Output{Warnings: append(lx.Warnings(), p.Warnings()...)}, false, err
	}
	if _, err := r.prog.Set(line); err != nil {
		return Output{}, false, err
	}
	return Output{Warnings: append(lx.Warnings(), p.Warnings()...)}, false, nil
}

// Load replaces the program with src. A trailing direct line is compiled
// as if typed after loading.
func (r *REPL) Load(src string) (Output, error) {
	direct, err := r.prog.Load(src)
	if err != nil {
		return Output{}, err
	}
	out := r.gen.Generate(r.prog.Source()+direct, nil)
	r.last = out
	if out.Err != nil {
		return out, out.Err
	}
	return out, nil
}

// List returns the program lines in the LIST style range rng.
func (r *REPL) List(rng string) (string, error) {
	from, to, err := ParseRange(rng)
	if err != nil {
		return "", err
	}
	return r.prog.Range(from, to), nil
}
