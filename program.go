package locobasic

import (
	"strconv"
	"strings"

	"github.com/google/btree"
)

// Line numbers accepted by Locomotive BASIC.
const (
	MinLine = 1
	MaxLine = 65535
)

// Program is the source of a BASIC program kept as numbered lines in line
// number order. Lines are stored as typed so listing preserves spelling
// and whitespace.
type Program struct {
	code *btree.BTree
}

type progLine struct {
	number int
	text   string // whole line including the number, without line ending.
}

func (l progLine) Less(than btree.Item) bool {
	return l.number < than.(progLine).number
}

func NewProgram() *Program {
	return &Program{code: btree.New(4)}
}

// New removes all lines.
func (p *Program) New() { p.code.Clear(false) }

// Len returns the number of lines.
func (p *Program) Len() int { return p.code.Len() }

// Load replaces the program with the lines of src. Lines may come in any
// order; a repeated number replaces the earlier line. A line without a
// number continues the previous line, as an unterminated DATA string
// does, unless it is the last one: then it is returned as the direct
// command.
func (p *Program) Load(src string) (direct string, err error) {
	p.New()
	raw := strings.Split(src, "\n")
	last := -1
	for i, text := range raw {
		if strings.TrimSpace(text) != "" {
			last = i
		}
	}
	var pending *progLine
	pos := 0
	for i, text := range raw {
		start := pos
		pos += len(text) + 1
		text = strings.TrimSuffix(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		n, _, ok, lerr := lineNumber(text)
		if lerr != nil {
			lerr.Pos += start
			return "", lerr
		}
		switch {
		case ok:
			if pending != nil {
				p.code.ReplaceOrInsert(*pending)
			}
			pending = &progLine{number: n, text: text}
		case i == last:
			direct = text
		case pending != nil:
			pending.text += "\n" + text
		default:
			return "", &Error{Kind: KindSyntax, Msg: "Direct command must be the last line", Value: text, Pos: start, Len: len(text)}
		}
	}
	if pending != nil {
		p.code.ReplaceOrInsert(*pending)
	}
	return direct, nil
}

// Set stores a numbered line, replacing any line with the same number.
// A line holding only its number deletes that line. Set returns the line
// number.
func (p *Program) Set(line string) (int, error) {
	line = strings.TrimRight(line, "\r\n")
	n, rest, ok, err := lineNumber(line)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &Error{Kind: KindSyntax, Msg: "Expected line number", Value: line, Len: len(line)}
	}
	if strings.TrimSpace(rest) == "" {
		p.Delete(n)
		return n, nil
	}
	p.code.ReplaceOrInsert(progLine{number: n, text: line})
	return n, nil
}

// Delete removes line n and reports whether it existed.
func (p *Program) Delete(n int) bool {
	return p.code.Delete(progLine{number: n}) != nil
}

// DeleteRange removes the lines numbered from..to inclusive and returns
// how many were removed.
func (p *Program) DeleteRange(from, to int) int {
	var doomed []btree.Item
	p.code.AscendRange(progLine{number: from}, progLine{number: to + 1}, func(item btree.Item) bool {
		doomed = append(doomed, item)
		return true
	})
	for _, item := range doomed {
		p.code.Delete(item)
	}
	return len(doomed)
}

// Get returns the text of line n.
func (p *Program) Get(n int) (string, bool) {
	item := p.code.Get(progLine{number: n})
	if item == nil {
		return "", false
	}
	return item.(progLine).text, true
}

// Lines returns the line numbers in ascending order.
func (p *Program) Lines() []int {
	numbers := make([]int, 0, p.code.Len())
	p.code.Ascend(func(item btree.Item) bool {
		numbers = append(numbers, item.(progLine).number)
		return true
	})
	return numbers
}

// Range returns the source of the lines numbered from..to inclusive, one
// per line and each ending in a newline.
func (p *Program) Range(from, to int) string {
	var sb strings.Builder
	p.code.AscendGreaterOrEqual(progLine{number: from}, func(item btree.Item) bool {
		line := item.(progLine)
		if line.number > to {
			return false
		}
		sb.WriteString(line.text)
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// Source returns the whole program.
func (p *Program) Source() string { return p.Range(MinLine, MaxLine) }

// ParseRange parses a LIST style range "a-b", "a-", "-b", "a" or "" into
// inclusive line bounds.
func ParseRange(s string) (from, to int, err error) {
	s = strings.TrimSpace(s)
	from, to = MinLine, MaxLine
	if s == "" {
		return from, to, nil
	}
	lo, hi, dash := strings.Cut(s, "-")
	if lo = strings.TrimSpace(lo); lo != "" {
		if from, err = parseLineNumber(lo); err != nil {
			return 0, 0, err
		}
		if !dash {
			to = from
		}
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		if to, err = parseLineNumber(hi); err != nil {
			return 0, 0, err
		}
	}
	if from > to {
		return 0, 0, &Error{Kind: KindSyntax, Msg: "Bad line range", Value: s, Len: len(s)}
	}
	return from, to, nil
}

func parseLineNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < MinLine || n > MaxLine {
		return 0, &Error{Kind: KindSyntax, Msg: "Bad line number", Value: s, Len: len(s)}
	}
	return n, nil
}

// lineNumber reads the line number at the start of text. ok is false if
// text does not start with a digit after leading blanks.
func lineNumber(text string) (n int, rest string, ok bool, err *Error) {
	start := len(text) - len(strings.TrimLeft(text, " \t"))
	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == start {
		return 0, text, false, nil
	}
	n, convErr := strconv.Atoi(text[start:end])
	if convErr != nil || n < MinLine || n > MaxLine {
		return 0, "", false, &Error{Kind: KindSyntax, Msg: "Bad line number", Value: text[start:end], Pos: start, Len: end - start}
	}
	return n, text[end:], true, nil
}
