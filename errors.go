package locobasic

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a diagnostic.
type ErrorKind uint8

const (
	KindLexical ErrorKind = iota + 1
	KindSyntax
	KindType
	KindWarning
)

var (
	ErrLexical = errors.New("lexical error")
	ErrSyntax  = errors.New("syntax error")
	ErrType    = errors.New("type error")
	ErrWarning = errors.New("warning")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindLexical:
		return ErrLexical
	case KindSyntax:
		return ErrSyntax
	case KindType:
		return ErrType
	case KindWarning:
		return ErrWarning
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a positioned diagnostic of the lexer, parser or code generator.
// Use errors.Is with ErrLexical, ErrSyntax, ErrType or ErrWarning to
// classify it.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Value string // offending source text, may be empty.
	Pos   int    // byte offset into the source.
	Len   int
	Line  string // BASIC line label, empty for the direct line.
}

func (e *Error) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, e.Kind.String()...)
	b = append(b, ": "...)
	b = append(b, e.Msg...)
	if e.Line != "" {
		b = append(b, " in "...)
		b = append(b, e.Line...)
	}
	b = append(b, " at pos "...)
	b = strconv.AppendInt(b, int64(e.Pos), 10)
	if e.Len > 0 {
		b = append(b, '-')
		b = strconv.AppendInt(b, int64(e.Pos+e.Len), 10)
	}
	if e.Value != "" {
		b = append(b, ": "...)
		b = append(b, e.Value...)
	}
	return string(b)
}

// ShortMessage returns the message and offending value without position.
func (e *Error) ShortMessage() string {
	if e.Value == "" {
		return e.Msg
	}
	return e.Msg + ": " + e.Value
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// Where returns the "source:line:col" location of the error within src.
func (e *Error) Where(source, src string) string {
	sp := positionOf(source, src, e.Pos)
	return sp.String()
}

type sourcePos struct {
	Source string
	Line   int
	Col    int
	Pos    int
}

func (l *sourcePos) String() string {
	return string(l.AppendString(nil))
}

func (l *sourcePos) AppendString(b []byte) []byte {
	if b == nil {
		b = make([]byte, 0, len(l.Source)+3+3)
	}
	b = append(b, l.Source...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(l.Line), 10)
	if l.Col > 0 {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(l.Col), 10)
	}
	return b
}

// positionOf converts a byte offset into 1-based text line and column.
func positionOf(source, src string, pos int) sourcePos {
	if pos > len(src) {
		pos = len(src)
	}
	sp := sourcePos{Source: source, Line: 1, Col: 1, Pos: pos}
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			sp.Line++
			sp.Col = 1
		} else {
			sp.Col++
		}
	}
	return sp
}
