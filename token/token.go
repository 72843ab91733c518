package token

import "strings"

type Token int

// Install stringer tool:
//  go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=Token -linecomment -output stringers.go .

// List of all tokens of Locomotive BASIC.
// Keyword line comments are the lower-camel names runtime methods are called by.
// When adding a new token add it in between blocks since we use comparison functions to check properties of tokens.
const (
	// Not to be used in code. Is to catch uninitialized tokens.
	Undefined Token = iota // <undefined>

	// ==================== KEYWORDS ====================

	ABS        // abs
	AFTER      // after
	AND        // and
	ASC        // asc
	ATN        // atn
	AUTO       // auto
	BINSTR     // bin$
	BORDER     // border
	BREAK      // break
	CALL       // call
	CAT        // cat
	CHAIN      // chain
	CHRSTR     // chr$
	CINT       // cint
	CLEAR      // clear
	CLG        // clg
	CLOSEIN    // closein
	CLOSEOUT   // closeout
	CLS        // cls
	CONT       // cont
	COPYCHRSTR // copychr$
	COS        // cos
	CREAL      // creal
	CURSOR     // cursor
	DATA       // data
	DECSTR     // dec$
	DEF        // def
	DEFINT     // defint
	DEFREAL    // defreal
	DEFSTR     // defstr
	DEG        // deg
	DELETE     // delete
	DERR       // derr
	DI         // di
	DIM        // dim
	DRAW       // draw
	DRAWR      // drawr
	EDIT       // edit
	EI         // ei
	ELSE       // else
	END        // end
	ENT        // ent
	ENV        // env
	EOF        // eof
	ERASE      // erase
	ERL        // erl
	ERR        // err
	ERROR      // error
	EVERY      // every
	EXP        // exp
	FILL       // fill
	FIX        // fix
	FN         // fn
	FOR        // for
	FRAME      // frame
	FRE        // fre
	GOSUB      // gosub
	GOTO       // goto
	GRAPHICS   // graphics
	HEXSTR     // hex$
	HIMEM      // himem
	IF         // if
	INK        // ink
	INKEY      // inkey
	INKEYSTR   // inkey$
	INP        // inp
	INPUT      // input
	INSTR      // instr
	INT        // int
	JOY        // joy
	KEY        // key
	LEFTSTR    // left$
	LEN        // len
	LET        // let
	LINE       // line
	LIST       // list
	LOAD       // load
	LOCATE     // locate
	LOG        // log
	LOG10      // log10
	LOWERSTR   // lower$
	MASK       // mask
	MAX        // max
	MEMORY     // memory
	MERGE      // merge
	MIDSTR     // mid$
	MIN        // min
	MOD        // mod
	MODE       // mode
	MOVE       // move
	MOVER      // mover
	NEW        // new
	NEXT       // next
	NOT        // not
	ON         // on
	OPENIN     // openin
	OPENOUT    // openout
	OR         // or
	ORIGIN     // origin
	OUT        // out
	PAPER      // paper
	PEEK       // peek
	PEN        // pen
	PI         // pi
	PLOT       // plot
	PLOTR      // plotr
	POKE       // poke
	POS        // pos
	PRINT      // print
	RAD        // rad
	RANDOMIZE  // randomize
	READ       // read
	RELEASE    // release
	REM        // rem
	REMAIN     // remain
	RENUM      // renum
	RESTORE    // restore
	RESUME     // resume
	RETURN     // return
	RIGHTSTR   // right$
	RND        // rnd
	ROUND      // round
	RUN        // run
	SAVE       // save
	SGN        // sgn
	SIN        // sin
	SOUND      // sound
	SPACESTR   // space$
	SPC        // spc
	SPEED      // speed
	SQ         // sq
	SQR        // sqr
	STEP       // step
	STOP       // stop
	STRSTR     // str$
	STRINGSTR  // string$
	SWAP       // swap
	SYMBOL     // symbol
	TAB        // tab
	TAG        // tag
	TAGOFF     // tagoff
	TAN        // tan
	TEST       // test
	TESTR      // testr
	THEN       // then
	TIME       // time
	TO         // to
	TROFF      // troff
	TRON       // tron
	UNT        // unt
	UPPERSTR   // upper$
	USING      // using
	VAL        // val
	VPOS       // vpos
	WAIT       // wait
	WEND       // wend
	WHILE      // while
	WIDTH      // width
	WINDOW     // window
	WRITE      // write
	XOR        // xor
	XPOS       // xpos
	YPOS       // ypos
	ZONE       // zone

	// Composite keywords. Never produced by the lexer, assembled by the parser
	// out of two or more keywords.
	CHAINMERGE    // chainMerge
	CLEARINPUT    // clearInput
	GRAPHICSPAPER // graphicsPaper
	GRAPHICSPEN   // graphicsPen
	KEYDEF        // keyDef
	LINEINPUT     // lineInput
	MIDASSIGN     // mid$Assign
	ONBREAKCONT   // onBreakCont
	ONBREAKGOSUB  // onBreakGosub
	ONBREAKSTOP   // onBreakStop
	ONERRORGOTO   // onErrorGoto
	ONGOSUB       // onGosub
	ONGOTO        // onGoto
	ONSQGOSUB     // onSqGosub
	RESUMENEXT    // resumeNext
	SPEEDINK      // speedInk
	SPEEDKEY      // speedKey
	SPEEDWRITE    // speedWrite
	SYMBOLAFTER   // symbolAfter
	WINDOWSWAP    // windowSwap

	// ==================== OPERATORS ====================

	Plus      // +
	Minus     // -
	Asterisk  // *
	Slash     // /
	Backslash // \
	Caret     // ^
	Equals    // =
	Less      // <
	Greater   // >
	LessEq    // <=
	GreaterEq // >=
	NotEquals // <>
	At        // @

	// ==================== DELIMITERS / PUNCTUATION ====================

	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	Comma      // ,
	Colon      // :
	Semicolon  // ;
	Hash       // #
	Apostrophe // '

	// ==================== LITERALS ====================

	Number     // number
	HexNumber  // hexnumber
	BinNumber  // binnumber
	String     // string
	Unquoted   // unquoted
	Identifier // identifier
	RSX        // |rsx

	// ==================== SPECIAL TOKENS ====================

	EOL     // (eol)
	EOS     // (end)
	Illegal // <illegal>
	numToks
)

// IsKeyword reports whether tok is a keyword the lexer can produce.
func (tok Token) IsKeyword() bool { return tok >= ABS && tok <= ZONE }

// IsComposite reports whether tok is a multi-word keyword assembled by the parser.
func (tok Token) IsComposite() bool { return tok >= CHAINMERGE && tok <= WINDOWSWAP }

func (tok Token) IsOperator() bool { return tok >= Plus && tok <= At }

func (tok Token) IsDelimiter() bool { return tok >= LParen && tok <= Apostrophe }

func (tok Token) IsLiteral() bool { return tok >= Number && tok <= RSX }

// IsNumber reports whether tok is a numeric literal of any base.
func (tok Token) IsNumber() bool { return tok == Number || tok == HexNumber || tok == BinNumber }

// IsComparison reports whether tok is one of the six relational operators.
func (tok Token) IsComparison() bool {
	return tok == Equals || (tok >= Less && tok <= NotEquals)
}

// IsIllegalOrEOS reports whether tok ends lexing or parsing.
func (tok Token) IsIllegalOrEOS() bool { return tok == Illegal || tok == EOS }

// IsStatementEnd reports whether tok terminates a statement without a colon.
func (tok Token) IsStatementEnd() bool {
	return tok == Colon || tok == EOL || tok == EOS || tok == ELSE || tok == Apostrophe
}

// IsStringFunc reports whether tok names a built-in returning a string.
func (tok Token) IsStringFunc() bool {
	return tok.IsKeyword() && strings.HasSuffix(tok.String(), "$")
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, ZONE-ABS+1)
	for tok := ABS; tok <= ZONE; tok++ {
		keywords[tok.String()] = tok
	}
}

// LookupKeyword returns the keyword token for a case-insensitive identifier
// (suffix included, as in "chr$") or [Identifier] if it is not a keyword.
func LookupKeyword(ident []byte) Token {
	var buf [16]byte
	if len(ident) > len(buf) {
		return Identifier
	}
	for i, c := range ident {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	tok, ok := keywords[string(buf[:len(ident)])]
	if !ok {
		return Identifier
	}
	return tok
}
