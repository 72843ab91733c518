package locobasic

import (
	"errors"
	"strings"

	"github.com/soypat/go-locobasic/intrinsic"
	"github.com/soypat/go-locobasic/token"
)

// Lexeme is one token of BASIC source.
type Lexeme struct {
	Tok token.Token
	// Lit is the normalized text: lower case keywords and exponents,
	// string contents without quotes.
	Lit string
	Pos int // byte offset into the source.
	Len int // length in the source.
	// Orig holds the raw source text when normalization changed it.
	Orig string
	// Ws holds preceding whitespace when the lexer keeps whitespace.
	Ws string
}

// Raw returns the lexeme as written in the source.
func (lx Lexeme) Raw() string {
	if lx.Orig != "" {
		return lx.Orig
	}
	return lx.Lit
}

// End returns the offset immediately after the lexeme.
func (lx Lexeme) End() int { return lx.Pos + lx.Len }

// Lexer splits Locomotive BASIC source into lexemes. A Lexer is reset at
// the start of every Lex call and may be reused, but not concurrently.
type Lexer struct {
	// KeepWhitespace attaches whitespace to the following lexeme's Ws field.
	KeepWhitespace bool

	input string
	ch    byte // current character, 0 at end of input.
	pos   int  // byte position of ch.

	dataMode  bool // inside a DATA statement.
	restMode  bool // next lexeme is the rest of the line after REM or '.
	lineStart bool
	label     string   // label of the line being lexed, for diagnostics.
	pending   []Lexeme // lexemes split off the last scanned word.
	warnings  []*Error
	err       *Error
}

// Reset discards all state and begins lexing src.
func (l *Lexer) Reset(src string) {
	*l = Lexer{
		KeepWhitespace: l.KeepWhitespace,
		input:          src,
		lineStart:      true,
		pending:        l.pending[:0],
	}
	if len(src) > 0 {
		l.ch = src[0]
	}
}

// Lex returns all lexemes of src terminated by an [token.EOS] lexeme,
// or the first lexical error.
func (l *Lexer) Lex(src string) ([]Lexeme, error) {
	l.Reset(src)
	var out []Lexeme
	for {
		lx := l.NextToken()
		if l.err != nil {
			return nil, l.err
		}
		out = append(out, lx)
		if lx.Tok == token.EOS {
			return out, nil
		}
	}
}

// Warnings returns the non-fatal diagnostics of the last Lex call.
func (l *Lexer) Warnings() []*Error { return l.warnings }

// Err returns the lexer error.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// IsDone reports whether lexing failed.
func (l *Lexer) IsDone() bool { return l.err != nil }

// NextToken scans the next lexeme. After the end of input it keeps
// returning [token.EOS]; after an error it returns [token.Illegal].
func (l *Lexer) NextToken() (lx Lexeme) {
	if l.err != nil {
		return Lexeme{Tok: token.Illegal, Pos: l.pos}
	}
	if len(l.pending) > 0 {
		lx = l.pending[0]
		l.pending = l.pending[:copy(l.pending, l.pending[1:])]
		return lx
	}
	if l.restMode {
		l.restMode = false
		if !l.atEOL() {
			start := l.pos
			for !l.atEOL() {
				l.readChar()
			}
			return Lexeme{Tok: token.Unquoted, Lit: l.input[start:l.pos], Pos: start, Len: l.pos - start}
		}
	}
	ws := l.skipWhitespace()
	lx.Pos = l.pos
	if l.KeepWhitespace {
		lx.Ws = ws
	}
	wasLineStart := l.lineStart
	l.lineStart = false
	if l.pos >= len(l.input) {
		lx.Tok = token.EOS
		lx.Lit = token.EOS.String()
		return lx
	}
	if l.dataMode && !l.atEOL() {
		return l.nextData(lx)
	}
	ch := l.ch
	switch ch {
	case '\r', '\n':
		l.readChar()
		if ch == '\r' && l.ch == '\n' {
			l.readChar()
		}
		lx.Tok, lx.Lit = token.EOL, "\n"
		if raw := l.input[lx.Pos:l.pos]; raw != "\n" {
			lx.Orig = raw
		}
		l.dataMode = false
		l.lineStart = true
		l.label = ""
	case '"':
		return l.readString(lx, false)
	case '&':
		return l.readHex(lx)
	case '|':
		l.readChar()
		name := l.readName()
		if name == "" {
			return l.fatal("Expected RSX name", "|", lx.Pos)
		}
		lx.Tok, lx.Lit = token.RSX, strings.ToLower(name)
		lx.Orig = l.input[lx.Pos:l.pos]
	case '\'':
		l.readChar()
		lx.Tok, lx.Lit = token.Apostrophe, "'"
		l.restMode = true
	case '?':
		l.readChar()
		lx.Tok, lx.Lit, lx.Orig = token.PRINT, token.PRINT.String(), "?"
	case '<':
		l.readChar()
		lx.Tok = token.Less
		switch l.ch {
		case '=':
			lx.Tok = token.LessEq
			l.readChar()
		case '>':
			lx.Tok = token.NotEquals
			l.readChar()
		}
	case '>':
		l.readChar()
		lx.Tok = token.Greater
		switch l.ch {
		case '=':
			lx.Tok = token.GreaterEq
			l.readChar()
		case '<':
			lx.Tok = token.NotEquals
			l.readChar()
		}
	case '=':
		l.readChar()
		lx.Tok = token.Equals
		switch l.ch {
		case '<':
			lx.Tok = token.LessEq
			l.readChar()
		case '>':
			lx.Tok = token.GreaterEq
			l.readChar()
		}
	case '+', '-', '*', '/', '\\', '^', '@', '(', ')', '[', ']', ',', ':', ';', '#':
		l.readChar()
		lx.Tok = singleCharTokens[ch]
	default:
		switch {
		case isDigit(ch) || (ch == '.' && isDigit(l.peekChar())):
			return l.readNumber(lx, wasLineStart)
		case isLetter(ch):
			return l.readWord(lx)
		}
		return l.fatal("Unrecognized token", string(ch), lx.Pos)
	}
	if lx.Lit == "" {
		lx.Lit = lx.Tok.String()
	}
	lx.Len = l.pos - lx.Pos
	if raw := l.input[lx.Pos:l.pos]; lx.Tok.IsOperator() && raw != lx.Lit {
		lx.Orig = raw
	}
	return lx
}

var singleCharTokens = [256]token.Token{
	'+': token.Plus, '-': token.Minus, '*': token.Asterisk, '/': token.Slash,
	'\\': token.Backslash, '^': token.Caret, '@': token.At,
	'(': token.LParen, ')': token.RParen, '[': token.LBracket, ']': token.RBracket,
	',': token.Comma, ':': token.Colon, ';': token.Semicolon, '#': token.Hash,
}

// readNumber scans a decimal number. An exponent is only taken when the
// E is followed by a digit or by a sign and a digit, so 1ELSE stays 1 ELSE.
func (l *Lexer) readNumber(lx Lexeme, lineStart bool) Lexeme {
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	raw := l.input[lx.Pos:l.pos]
	if _, err := intrinsic.ParseDecimal(raw); err != nil {
		if errors.Is(err, intrinsic.ErrOverflow) {
			return l.fatal("Number too large", raw, lx.Pos)
		}
		return l.fatal("Bad number", raw, lx.Pos)
	}
	lx.Tok, lx.Lit, lx.Len = token.Number, strings.ToLower(raw), len(raw)
	if lx.Lit != raw {
		lx.Orig = raw
	}
	if lineStart {
		l.label = raw
	}
	return lx
}

// readHex scans &, &H hex and &X binary literals. Digits are validated by the parser.
func (l *Lexer) readHex(lx Lexeme) Lexeme {
	l.readChar() // skip '&'
	lx.Tok = token.HexNumber
	isDigitFn := isHexDigit
	switch l.ch {
	case 'h', 'H':
		l.readChar()
	case 'x', 'X':
		l.readChar()
		lx.Tok = token.BinNumber
		isDigitFn = isBinDigit
	}
	digitStart := l.pos
	for isDigitFn(l.ch) {
		l.readChar()
	}
	raw := l.input[lx.Pos:l.pos]
	if l.pos == digitStart {
		return l.fatal("Expected number", raw, lx.Pos)
	}
	lx.Lit, lx.Len = raw, len(raw)
	return lx
}

// readString scans a quoted string. Strings end at the line end; a
// missing closing quote is a warning. In DATA statements a line break
// followed by something other than a digit continues the string.
func (l *Lexer) readString(lx Lexeme, inData bool) Lexeme {
	l.readChar() // opening quote.
	var sb strings.Builder
	segStart := l.pos
	for {
		switch {
		case l.ch == '"':
			sb.WriteString(l.input[segStart:l.pos])
			l.readChar()
			return l.finishString(lx, sb.String())
		case l.pos >= len(l.input):
			sb.WriteString(l.input[segStart:l.pos])
			l.warn("Unterminated string", l.input[lx.Pos:l.pos], lx.Pos, l.pos-lx.Pos)
			return l.finishString(lx, sb.String())
		case l.ch == '\r' || l.ch == '\n':
			if !inData || isDigit(l.peekAfterEOL()) {
				sb.WriteString(l.input[segStart:l.pos])
				l.warn("Unterminated string", l.input[lx.Pos:l.pos], lx.Pos, l.pos-lx.Pos)
				return l.finishString(lx, sb.String())
			}
			l.warn("Unterminated string in DATA continues on next line", l.input[lx.Pos:l.pos], lx.Pos, l.pos-lx.Pos)
			l.readChar()
		default:
			l.readChar()
		}
	}
}

func (l *Lexer) finishString(lx Lexeme, value string) Lexeme {
	lx.Tok, lx.Lit = token.String, value
	lx.Orig = l.input[lx.Pos:l.pos]
	lx.Len = len(lx.Orig)
	return lx
}

// peekAfterEOL returns the first character after the line break at l.pos.
func (l *Lexer) peekAfterEOL() byte {
	i := l.pos
	if i < len(l.input) && l.input[i] == '\r' {
		i++
	}
	if i < len(l.input) && l.input[i] == '\n' {
		i++
	}
	if i < len(l.input) {
		return l.input[i]
	}
	return 0
}

// readWord scans an identifier or keyword with optional type suffix.
func (l *Lexer) readWord(lx Lexeme) Lexeme {
	name := l.readName()
	if l.ch == '$' || l.ch == '%' || l.ch == '!' {
		l.readChar()
		name = l.input[lx.Pos:l.pos]
	}
	lx.Len = len(name)
	tok := token.LookupKeyword([]byte(name))
	if tok == token.Identifier {
		if len(name) > 2 && strings.EqualFold(name[:2], "fn") && isLetter(name[2]) {
			// FNname is FN followed by the function name.
			fn := Lexeme{Tok: token.FN, Lit: token.FN.String(), Pos: lx.Pos, Len: 2, Ws: lx.Ws}
			if name[:2] != fn.Lit {
				fn.Orig = name[:2]
			}
			l.pending = append(l.pending, Lexeme{Tok: token.Identifier, Lit: name[2:], Pos: lx.Pos + 2, Len: len(name) - 2})
			return fn
		}
		lx.Tok, lx.Lit = token.Identifier, name
		return lx
	}
	lx.Tok, lx.Lit = tok, tok.String()
	if name != lx.Lit {
		lx.Orig = name
	}
	switch tok {
	case token.REM:
		l.restMode = true
	case token.DATA:
		l.dataMode = true
	}
	return lx
}

// readName reads letters, digits and dots.
func (l *Lexer) readName() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// nextData scans one DATA item: a quoted string, a comma or an unquoted
// run up to the next comma or line end with trailing blanks trimmed.
func (l *Lexer) nextData(lx Lexeme) Lexeme {
	switch l.ch {
	case ',':
		l.readChar()
		lx.Tok, lx.Lit, lx.Len = token.Comma, ",", 1
		return lx
	case '"':
		return l.readString(lx, true)
	}
	end := l.pos
	for !l.atEOL() && l.ch != ',' {
		l.readChar()
		if l.input[l.pos-1] != ' ' && l.input[l.pos-1] != '\t' {
			end = l.pos
		}
	}
	l.pos = end
	l.ch = l.charAt(end)
	lx.Tok, lx.Lit, lx.Len = token.Unquoted, l.input[lx.Pos:end], end-lx.Pos
	return lx
}

func (l *Lexer) skipWhitespace() string {
	start := l.pos
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) atEOL() bool {
	return l.pos >= len(l.input) || l.ch == '\n' || l.ch == '\r'
}

func (l *Lexer) readChar() {
	if l.pos < len(l.input) {
		l.pos++
	}
	l.ch = l.charAt(l.pos)
}

func (l *Lexer) charAt(i int) byte {
	if i < len(l.input) {
		return l.input[i]
	}
	return 0
}

func (l *Lexer) peekChar() byte { return l.charAt(l.pos + 1) }

func (l *Lexer) peekN(n int) byte { return l.charAt(l.pos + n) }

func (l *Lexer) fatal(msg, value string, pos int) Lexeme {
	l.err = &Error{Kind: KindLexical, Msg: msg, Value: value, Pos: pos, Len: len(value), Line: l.label}
	return Lexeme{Tok: token.Illegal, Lit: value, Pos: pos, Len: len(value)}
}

func (l *Lexer) warn(msg, value string, pos, length int) {
	l.warnings = append(l.warnings, &Error{Kind: KindWarning, Msg: msg, Value: value, Pos: pos, Len: length, Line: l.label})
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBinDigit(ch byte) bool { return ch == '0' || ch == '1' }
