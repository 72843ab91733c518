// cpcbasic compiles Locomotive BASIC programs into JavaScript.
//
// Usage:
//
//	cpcbasic [flags] [file.bas]
//
// With a file argument, or with standard input redirected, the program is
// compiled and the JavaScript written to standard output or the -o file.
// Diagnostics go to standard error as file:line:col: message. Without a
// file and on a terminal an interactive session starts: numbered lines
// edit the program and any other line is compiled as a direct command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goforj/godump"
	"github.com/peterh/liner"
	"golang.org/x/term"

	locobasic "github.com/soypat/go-locobasic"
)

const historyFile = ".cpcbasic_history"

var (
	flagTrace    = flag.Bool("trace", false, "emit o.vmTrace before every statement")
	flagWS       = flag.Bool("ws", false, "keep whitespace of lexemes")
	flagVars     = flag.Bool("vars", false, "prepend the v = o.vmGetAllVariables() prologue")
	flagRange    = flag.String("range", "", "compile only BASIC lines a-b, a-, -b or a")
	flagAST      = flag.Bool("ast", false, "dump the syntax tree instead of compiling")
	flagOutput   = flag.String("o", "", "write JavaScript to file instead of standard output")
	flagQuiet    = flag.Bool("q", false, "do not print warnings")
	flagListVars = flag.Bool("list-vars", false, "print the variable names after the program as a comment")
)

func main() {
	flag.Parse()
	opts := locobasic.Options{Trace: *flagTrace, KeepWhitespace: *flagWS, Variables: *flagVars}
	switch {
	case flag.NArg() > 1:
		fmt.Fprintln(os.Stderr, "usage: cpcbasic [flags] [file.bas]")
		flag.PrintDefaults()
		os.Exit(1)
	case flag.NArg() == 1:
		os.Exit(compileFile(flag.Arg(0), opts))
	case term.IsTerminal(int(os.Stdin.Fd())):
		os.Exit(repl(opts))
	default:
		os.Exit(compileFile("-", opts))
	}
}

func compileFile(filename string, opts locobasic.Options) int {
	var (
		src []byte
		err error
	)
	if filename == "-" {
		src, err = io.ReadAll(os.Stdin)
		filename = "<stdin>"
	} else {
		src, err = os.ReadFile(filename)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	text, err := selectRange(string(src), *flagRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}

	var lexer locobasic.Lexer
	lexer.KeepWhitespace = opts.KeepWhitespace
	lexemes, err := lexer.Lex(text)
	printWarnings(filename, text, lexer.Warnings())
	if err != nil {
		printError(filename, text, err)
		return 1
	}
	var parser locobasic.Parser
	lines, err := parser.Parse(lexemes)
	printWarnings(filename, text, parser.Warnings())
	if err != nil {
		printError(filename, text, err)
		return 1
	}
	if *flagAST {
		godump.Dump(lines)
		return 0
	}

	gen := locobasic.CodeGenJS{Options: opts}
	out := gen.GenerateLines(text, lines, nil)
	printWarnings(filename, text, out.Warnings)
	if out.Err != nil {
		printError(filename, text, out.Err)
		return 1
	}
	js := out.Text
	if *flagListVars {
		js += "// vars: " + strings.Join(out.Vars.Names(), " ") + "\n"
	}
	if *flagOutput == "" {
		fmt.Print(js)
		return 0
	}
	if err := os.WriteFile(*flagOutput, []byte(js), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// selectRange restricts src to the numbered lines in rng, keeping a
// trailing direct command.
func selectRange(src, rng string) (string, error) {
	if rng == "" {
		return src, nil
	}
	from, to, err := locobasic.ParseRange(rng)
	if err != nil {
		return "", err
	}
	prog := locobasic.NewProgram()
	direct, err := prog.Load(src)
	if err != nil {
		return "", fmt.Errorf("loading program: %w", err)
	}
	return prog.Range(from, to) + direct, nil
}

func printWarnings(filename, src string, warnings []*locobasic.Error) {
	if *flagQuiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", w.Where(filename, src), w.ShortMessage())
	}
}

func printError(filename, src string, err error) {
	var e *locobasic.Error
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", e.Where(filename, src), e.Kind, e.ShortMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
}

func repl(opts locobasic.Options) int {
	fmt.Println("Locomotive BASIC to JavaScript. Type :help for commands.")
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	session := locobasic.NewREPL(opts)
	for {
		input, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(input)
		if strings.HasPrefix(strings.TrimSpace(input), ":") {
			if quit := replCommand(session, strings.TrimSpace(input)); quit {
				return 0
			}
			continue
		}
		src := session.Program().Source() + input
		out, compiled, err := session.Eval(input)
		printWarnings("input", src, out.Warnings)
		if err != nil {
			var e *locobasic.Error
			if errors.As(err, &e) {
				fmt.Fprintln(os.Stderr, e.ShortMessage())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		if compiled {
			fmt.Print(out.Text)
		}
	}
}

// replCommand runs a session command and reports whether to quit.
func replCommand(session *locobasic.REPL, cmd string) (quit bool) {
	name, arg, _ := strings.Cut(cmd, " ")
	switch strings.ToLower(name) {
	case ":quit", ":q":
		return true
	case ":list":
		listing, err := session.List(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		fmt.Print(listing)
	case ":new":
		session.Program().New()
	case ":load":
		src, err := os.ReadFile(strings.TrimSpace(arg))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		if _, err := session.Load(string(src)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case ":save":
		if err := os.WriteFile(strings.TrimSpace(arg), []byte(session.Program().Source()), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case ":vars":
		if vars := session.Last().Vars; vars != nil {
			godump.Dump(vars.Vars())
		}
	default:
		fmt.Println(":list [a-b]  :load file  :save file  :new  :vars  :quit")
	}
	return false
}
