// basgrep searches Locomotive BASIC programs with remark awareness.
//
// Usage:
//
//	basgrep [flags] pattern file.bas [file2.bas ...]
//
// Flags:
//
//	-i          case-insensitive matching
//	-c          exclude lines holding only REM or ' remarks
//	-A num      show num lines after match
//	-B num      show num lines before match
//	-C num      show num lines before and after match
//	-l          only print filenames with matches
//	-v          invert match (show non-matching lines)
//	-range a-b  restrict the search to BASIC lines a..b
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	locobasic "github.com/soypat/go-locobasic"
	"github.com/soypat/go-locobasic/ast"
)

var (
	flagIgnoreCase    = flag.Bool("i", false, "case-insensitive matching")
	flagNoComments    = flag.Bool("c", false, "exclude remark-only lines from search")
	flagAfterContext  = flag.Int("A", 0, "show num lines after match")
	flagBeforeContext = flag.Int("B", 0, "show num lines before match")
	flagContext       = flag.Int("C", 0, "show num lines before and after match (overrides -A and -B)")
	flagFilesOnly     = flag.Bool("l", false, "only print filenames with matches")
	flagInvert        = flag.Bool("v", false, "invert match (show non-matching lines)")
	flagRange         = flag.String("range", "", "BASIC line range a-b, a-, -b or a")
	flagNoSeparators  = flag.Bool("no-sep", false, "suppress -- separators between non-contiguous matches")
)

func main() {
	flag.Parse()
	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: basgrep [flags] pattern file.bas [file2.bas ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	pattern := flag.Arg(0)
	if *flagIgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid pattern: %v\n", err)
		os.Exit(1)
	}
	from, to, err := locobasic.ParseRange(*flagRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid range: %v\n", err)
		os.Exit(1)
	}

	beforeCtx := *flagBeforeContext
	afterCtx := *flagAfterContext
	if *flagContext > 0 {
		beforeCtx = *flagContext
		afterCtx = *flagContext
	}

	files := flag.Args()[1:]
	multipleFiles := len(files) > 1
	exitCode := 1
	for _, filename := range files {
		matched, err := searchFile(filename, re, from, to, beforeCtx, afterCtx, multipleFiles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", filename, err)
			continue
		}
		if matched {
			exitCode = 0
		}
	}
	os.Exit(exitCode)
}

// lineInfo holds one BASIC line of the searched range.
type lineInfo struct {
	text       string
	remarkOnly bool
}

// readLines loads the program lines within from..to and marks the lines
// whose statements are all remarks.
func readLines(filename string, from, to int) ([]lineInfo, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	prog := locobasic.NewProgram()
	if _, err := prog.Load(string(src)); err != nil {
		return nil, err
	}
	var (
		lines  []lineInfo
		lexer  locobasic.Lexer
		parser locobasic.Parser
	)
	for _, n := range prog.Lines() {
		if n < from || n > to {
			continue
		}
		text, _ := prog.Get(n)
		ln := lineInfo{text: text}
		// Lines that do not parse are searched as code.
		if lexemes, err := lexer.Lex(text); err == nil {
			if parsed, err := parser.Parse(lexemes); err == nil && len(parsed) == 1 {
				ln.remarkOnly = isRemarkOnly(parsed[0])
			}
		}
		lines = append(lines, ln)
	}
	return lines, nil
}

func isRemarkOnly(line *ast.Line) bool {
	if len(line.Stmts) == 0 {
		return false
	}
	for _, stmt := range line.Stmts {
		if _, ok := stmt.(*ast.Remark); !ok {
			return false
		}
	}
	return true
}

func searchFile(filename string, re *regexp.Regexp, from, to, beforeCtx, afterCtx int, showFilename bool) (bool, error) {
	lines, err := readLines(filename, from, to)
	if err != nil {
		return false, err
	}

	var matches []int
	for i, ln := range lines {
		if *flagNoComments && ln.remarkOnly {
			continue
		}
		found := re.MatchString(ln.text)
		if *flagInvert {
			found = !found
		}
		if found {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return false, nil
	}
	if *flagFilesOnly {
		fmt.Println(filename)
		return true, nil
	}

	printLines := make(map[int]bool)
	contextLines := make(map[int]bool) // lines that are context, not matches
	for _, idx := range matches {
		printLines[idx] = true
		contextLines[idx] = false
	}
	for _, m := range matches {
		for j := 1; j <= beforeCtx && m-j >= 0; j++ {
			if !printLines[m-j] {
				contextLines[m-j] = true
			}
			printLines[m-j] = true
		}
		for j := 1; j <= afterCtx && m+j < len(lines); j++ {
			if !printLines[m+j] {
				contextLines[m+j] = true
			}
			printLines[m+j] = true
		}
	}

	lastPrinted := -2
	for i := range lines {
		if !printLines[i] {
			continue
		}
		if lastPrinted >= 0 && i > lastPrinted+1 {
			gapIsOnlyRemarks := *flagNoComments
			if gapIsOnlyRemarks {
				for j := lastPrinted + 1; j < i; j++ {
					if !lines[j].remarkOnly {
						gapIsOnlyRemarks = false
						break
					}
				}
			}
			if !gapIsOnlyRemarks && !*flagNoSeparators {
				fmt.Println("--")
			}
		}
		lastPrinted = i

		// Lines carry their BASIC number so only the filename is prefixed.
		ln := lines[i]
		if showFilename {
			separator := ":"
			if contextLines[i] {
				separator = "-"
			}
			fmt.Printf("%s%s%s\n", filename, separator, ln.text)
		} else {
			fmt.Println(ln.text)
		}
	}
	return true, nil
}
