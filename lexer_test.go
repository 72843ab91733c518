package locobasic

import (
	"errors"
	"testing"

	"github.com/soypat/go-locobasic/token"
)

type testtoktuple struct {
	tok     token.Token
	literal string
}

func TestLexer_tokens(t *testing.T) {
	cases := []struct {
		src    string
		expect []testtoktuple
	}{
		0: {
			src: `10 PRINT "Hello";a$`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "10"},
				{tok: token.PRINT, literal: "print"},
				{tok: token.String, literal: "Hello"},
				{tok: token.Semicolon, literal: ";"},
				{tok: token.Identifier, literal: "a$"},
			},
		},
		1: {
			src: `20 a=1E3:b=1e+2:c=.5E-1`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "20"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.Equals, literal: "="},
				{tok: token.Number, literal: "1e3"},
				{tok: token.Colon, literal: ":"},
				{tok: token.Identifier, literal: "b"},
				{tok: token.Equals, literal: "="},
				{tok: token.Number, literal: "1e+2"},
				{tok: token.Colon, literal: ":"},
				{tok: token.Identifier, literal: "c"},
				{tok: token.Equals, literal: "="},
				{tok: token.Number, literal: ".5e-1"},
			},
		},
		2: {
			// Exponent needs a digit after E, so ELSE survives.
			src: `30 IF a THEN 100ELSE 200`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "30"},
				{tok: token.IF, literal: "if"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.THEN, literal: "then"},
				{tok: token.Number, literal: "100"},
				{tok: token.ELSE, literal: "else"},
				{tok: token.Number, literal: "200"},
			},
		},
		3: {
			src: `40 x=&HFF+&X101+&1f`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "40"},
				{tok: token.Identifier, literal: "x"},
				{tok: token.Equals, literal: "="},
				{tok: token.HexNumber, literal: "&HFF"},
				{tok: token.Plus, literal: "+"},
				{tok: token.BinNumber, literal: "&X101"},
				{tok: token.Plus, literal: "+"},
				{tok: token.HexNumber, literal: "&1f"},
			},
		},
		4: {
			src: `50 REM hello: "world`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "50"},
				{tok: token.REM, literal: "rem"},
				{tok: token.Unquoted, literal: ` hello: "world`},
			},
		},
		5: {
			src: "60 CLS' comment\n",
			expect: []testtoktuple{
				{tok: token.Number, literal: "60"},
				{tok: token.CLS, literal: "cls"},
				{tok: token.Apostrophe, literal: "'"},
				{tok: token.Unquoted, literal: " comment"},
				{tok: token.EOL, literal: "\n"},
			},
		},
		6: {
			src: `70 DATA 1, abc def ,"x,y",,`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "70"},
				{tok: token.DATA, literal: "data"},
				{tok: token.Unquoted, literal: "1"},
				{tok: token.Comma, literal: ","},
				{tok: token.Unquoted, literal: "abc def"},
				{tok: token.Comma, literal: ","},
				{tok: token.String, literal: "x,y"},
				{tok: token.Comma, literal: ","},
				{tok: token.Comma, literal: ","},
			},
		},
		7: {
			src: `80 a=FNsq(2)+fn b`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "80"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.Equals, literal: "="},
				{tok: token.FN, literal: "fn"},
				{tok: token.Identifier, literal: "sq"},
				{tok: token.LParen, literal: "("},
				{tok: token.Number, literal: "2"},
				{tok: token.RParen, literal: ")"},
				{tok: token.Plus, literal: "+"},
				{tok: token.FN, literal: "fn"},
				{tok: token.Identifier, literal: "b"},
			},
		},
		8: {
			src: `90 |DIR,"*.bas"`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "90"},
				{tok: token.RSX, literal: "dir"},
				{tok: token.Comma, literal: ","},
				{tok: token.String, literal: "*.bas"},
			},
		},
		9: {
			src: `100 IF a<>b OR a=<b AND a><c THEN ?a`,
			expect: []testtoktuple{
				{tok: token.Number, literal: "100"},
				{tok: token.IF, literal: "if"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.NotEquals, literal: "<>"},
				{tok: token.Identifier, literal: "b"},
				{tok: token.OR, literal: "or"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.LessEq, literal: "<="},
				{tok: token.Identifier, literal: "b"},
				{tok: token.AND, literal: "and"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.NotEquals, literal: "<>"},
				{tok: token.Identifier, literal: "c"},
				{tok: token.THEN, literal: "then"},
				{tok: token.PRINT, literal: "print"},
				{tok: token.Identifier, literal: "a"},
			},
		},
		10: {
			src: "1 a\r\n2 b",
			expect: []testtoktuple{
				{tok: token.Number, literal: "1"},
				{tok: token.Identifier, literal: "a"},
				{tok: token.EOL, literal: "\n"},
				{tok: token.Number, literal: "2"},
				{tok: token.Identifier, literal: "b"},
			},
		},
		11: {
			src: `c%=a!\b.c MOD 2^-x`,
			expect: []testtoktuple{
				{tok: token.Identifier, literal: "c%"},
				{tok: token.Equals, literal: "="},
				{tok: token.Identifier, literal: "a!"},
				{tok: token.Backslash, literal: `\`},
				{tok: token.Identifier, literal: "b.c"},
				{tok: token.MOD, literal: "mod"},
				{tok: token.Number, literal: "2"},
				{tok: token.Caret, literal: "^"},
				{tok: token.Minus, literal: "-"},
				{tok: token.Identifier, literal: "x"},
			},
		},
		12: {
			src: `LEFT$(s$,2):Chr$(65)`,
			expect: []testtoktuple{
				{tok: token.LEFTSTR, literal: "left$"},
				{tok: token.LParen, literal: "("},
				{tok: token.Identifier, literal: "s$"},
				{tok: token.Comma, literal: ","},
				{tok: token.Number, literal: "2"},
				{tok: token.RParen, literal: ")"},
				{tok: token.Colon, literal: ":"},
				{tok: token.CHRSTR, literal: "chr$"},
				{tok: token.LParen, literal: "("},
				{tok: token.Number, literal: "65"},
				{tok: token.RParen, literal: ")"},
			},
		},
	}
	var l Lexer
	for i, tc := range cases {
		lexemes, err := l.Lex(tc.src)
		if err != nil {
			t.Errorf("case %d: %v", i, err)
			continue
		}
		if len(lexemes) == 0 || lexemes[len(lexemes)-1].Tok != token.EOS {
			t.Errorf("case %d: missing EOS lexeme", i)
			continue
		}
		lexemes = lexemes[:len(lexemes)-1]
		for j, lx := range lexemes {
			if j >= len(tc.expect) {
				t.Errorf("case %d: unexpected extra lexeme %s %q", i, lx.Tok, lx.Lit)
				break
			}
			want := tc.expect[j]
			if lx.Tok != want.tok || lx.Lit != want.literal {
				t.Errorf("case %d lexeme %d: got %s %q, want %s %q", i, j, lx.Tok, lx.Lit, want.tok, want.literal)
			}
		}
		if len(lexemes) < len(tc.expect) {
			t.Errorf("case %d: got %d lexemes, want %d", i, len(lexemes), len(tc.expect))
		}
	}
}

func TestLexer_positions(t *testing.T) {
	const src = `10 Print  "ab" : x=&H10`
	var l Lexer
	l.KeepWhitespace = true
	lexemes, err := l.Lex(src)
	if err != nil {
		t.Fatal(err)
	}
	expect := []Lexeme{
		{Tok: token.Number, Lit: "10", Pos: 0, Len: 2},
		{Tok: token.PRINT, Lit: "print", Pos: 3, Len: 5, Orig: "Print", Ws: " "},
		{Tok: token.String, Lit: "ab", Pos: 10, Len: 4, Orig: `"ab"`, Ws: "  "},
		{Tok: token.Colon, Lit: ":", Pos: 15, Len: 1, Ws: " "},
		{Tok: token.Identifier, Lit: "x", Pos: 17, Len: 1, Ws: " "},
		{Tok: token.Equals, Lit: "=", Pos: 18, Len: 1},
		{Tok: token.HexNumber, Lit: "&H10", Pos: 19, Len: 4},
		{Tok: token.EOS, Lit: "(end)", Pos: 23},
	}
	if len(lexemes) != len(expect) {
		t.Fatalf("got %d lexemes, want %d: %+v", len(lexemes), len(expect), lexemes)
	}
	for i := range expect {
		if lexemes[i] != expect[i] {
			t.Errorf("lexeme %d: got %+v, want %+v", i, lexemes[i], expect[i])
		}
	}
	// Every lexeme's Raw text is found in the source at its position.
	for _, lx := range lexemes[:len(lexemes)-1] {
		if got := src[lx.Pos:lx.End()]; got != lx.Raw() {
			t.Errorf("%s: source text %q differs from raw %q", lx.Tok, got, lx.Raw())
		}
	}
}

func TestLexer_errors(t *testing.T) {
	cases := []struct {
		src     string
		wantMsg string
		wantPos int
	}{
		0: {src: "10 a=b~", wantMsg: "Unrecognized token", wantPos: 6},
		1: {src: "20 a=&", wantMsg: "Expected number", wantPos: 5},
		2: {src: "30 a=&X2", wantMsg: "Expected number", wantPos: 5},
		3: {src: "40 a=1e999", wantMsg: "Number too large", wantPos: 5},
		4: {src: "50 | a", wantMsg: "Expected RSX name", wantPos: 3},
	}
	var l Lexer
	for i, tc := range cases {
		_, err := l.Lex(tc.src)
		if err == nil {
			t.Errorf("case %d: expected error", i)
			continue
		}
		var lerr *Error
		if !errors.As(err, &lerr) || !errors.Is(err, ErrLexical) {
			t.Errorf("case %d: expected lexical *Error, got %T %v", i, err, err)
			continue
		}
		if lerr.Msg != tc.wantMsg || lerr.Pos != tc.wantPos {
			t.Errorf("case %d: got %q at %d, want %q at %d", i, lerr.Msg, lerr.Pos, tc.wantMsg, tc.wantPos)
		}
		if lerr.Line == "" {
			t.Errorf("case %d: error should carry the line label", i)
		}
	}
}

func TestLexer_unterminatedString(t *testing.T) {
	var l Lexer
	lexemes, err := l.Lex("10 PRINT \"abc\n20 END")
	if err != nil {
		t.Fatal(err)
	}
	if lexemes[2].Tok != token.String || lexemes[2].Lit != "abc" || lexemes[2].Orig != `"abc` {
		t.Errorf("unexpected string lexeme %+v", lexemes[2])
	}
	if lexemes[3].Tok != token.EOL {
		t.Errorf("string must stop at line end, got %s", lexemes[3].Tok)
	}
	if len(l.Warnings()) != 1 || l.Warnings()[0].Msg != "Unterminated string" {
		t.Errorf("expected one unterminated string warning, got %v", l.Warnings())
	}
}

func TestLexer_dataStringContinuation(t *testing.T) {
	var l Lexer
	// Next line does not start with a digit: the string continues.
	lexemes, err := l.Lex("10 DATA \"ab\ncd\",1\n20 END")
	if err != nil {
		t.Fatal(err)
	}
	if lexemes[2].Tok != token.String || lexemes[2].Lit != "ab\ncd" {
		t.Fatalf("expected continued string, got %+v", lexemes[2])
	}
	if len(l.Warnings()) != 1 {
		t.Errorf("continuation must still warn, got %v", l.Warnings())
	}
	// Next line starts with a digit: the string ends at the line break.
	lexemes, err = l.Lex("10 DATA \"ab\n20 END")
	if err != nil {
		t.Fatal(err)
	}
	if lexemes[2].Lit != "ab" || lexemes[3].Tok != token.EOL || lexemes[4].Lit != "20" {
		t.Errorf("string should end at line break: %+v", lexemes)
	}
}
