// basvar prints the variables, arrays and DEF FN functions of Locomotive
// BASIC programs.
//
// Usage:
//
//	basvar [flags] file.bas [file2.bas ...]
//
// Output format:
//
//	KIND(TYPE:name[dims]): decl=file:line:col [flags]
//
// Example output:
//
//	VAR(I:i): decl=game.bas:3:8 ASSIGNED
//	ARRAY($:names$(1)): decl=game.bas:1:8 UNASSIGNED
//	FN(?:fnarea): decl=game.bas:2:8 ASSIGNED
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	locobasic "github.com/soypat/go-locobasic"
	"github.com/soypat/go-locobasic/symbol"
)

var (
	flagVerbose = flag.Bool("v", false, "verbose output (show all flags)")
	flagFilter  = flag.String("filter", "", "filter variables by name (case-insensitive substring)")
	flagType    = flag.String("type", "", "filter by type (I, R, $ or ? for unknown)")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: basvar [flags] file.bas [file2.bas ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	for _, filename := range flag.Args() {
		if err := processFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", filename, err)
			os.Exit(1)
		}
	}
}

func processFile(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var lexer locobasic.Lexer
	lexemes, err := lexer.Lex(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", where(err, filename, string(src)), err)
	}
	var parser locobasic.Parser
	lines, err := parser.Parse(lexemes)
	if err != nil {
		return fmt.Errorf("%s: %w", where(err, filename, string(src)), err)
	}

	collector := symbol.NewDeclarationCollector()
	for _, e := range collector.Collect(lines) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, e)
	}
	for _, v := range collector.SymbolTable().Vars() {
		if *flagFilter != "" && !strings.Contains(strings.ToUpper(v.Source()), strings.ToUpper(*flagFilter)) {
			continue
		}
		if *flagType != "" && v.Type().String() != *flagType {
			continue
		}
		fmt.Printf("%s(%s): decl=%s%s\n", kindString(v), formatType(v), declPos(filename, string(src), v.Pos()), formatFlags(v))
	}
	return nil
}

func where(err error, filename, src string) string {
	if e, ok := err.(*locobasic.Error); ok {
		return e.Where(filename, src)
	}
	return filename
}

func kindString(v *symbol.Var) string {
	switch {
	case v.Flags().HasAny(symbol.FlagFunction):
		return "FN"
	case v.Flags().HasAny(symbol.FlagArray):
		return "ARRAY"
	default:
		return "VAR"
	}
}

func formatType(v *symbol.Var) string {
	name := v.Name()
	if v.Flags().HasAny(symbol.FlagArray) {
		// Arrays carry an A suffix at run time; show the BASIC name.
		name = strings.ToLower(v.Source())
		return fmt.Sprintf("%s:%s(%d)", v.Type(), name, v.Dims())
	}
	return fmt.Sprintf("%s:%s", v.Type(), name)
}

// declPos returns the file:line:col of the byte offset pos in src.
func declPos(filename, src string, pos int) string {
	line, col := 1, 1
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%s:%d:%d", filename, line, col)
}

func formatFlags(v *symbol.Var) string {
	flags := v.Flags()
	var parts []string
	if flags.HasAny(symbol.FlagAssigned) {
		parts = append(parts, "ASSIGNED")
	} else {
		parts = append(parts, "UNASSIGNED")
	}
	if *flagVerbose {
		if flags.HasAny(symbol.FlagImplicit) {
			parts = append(parts, "IMPLICIT")
		}
		parts = append(parts, fmt.Sprintf("REFS=%d", v.Refs()))
	}
	return " " + strings.Join(parts, " ")
}
