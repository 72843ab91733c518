package token

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a keyword by the syntactic position it may take.
type Kind byte

const (
	KindNone     Kind = 0
	KindCommand  Kind = 'c' // statement keyword, runtime method call.
	KindFunction Kind = 'f' // built-in function, valid in expressions.
	KindFragment Kind = 'p' // continuation word such as THEN, TO, STEP.
	KindOperator Kind = 'o' // word operator: AND, OR, XOR, MOD, NOT.
	KindInternal Kind = 'x' // handled entirely by the parser.
)

// Category is the expected syntactic category of one keyword argument.
type Category byte

const (
	CatNumber    Category = 'n'
	CatString    Category = 's'
	CatLine      Category = 'l' // line number literal.
	CatVariable  Category = 'v'
	CatLetter    Category = 'r' // letter or letter range, as in DEFINT a-c.
	CatLineRange Category = 'q' // line number range, as in LIST 10-50.
	CatStream    Category = '#'
	CatAny       Category = 'a'
)

// Describe returns the noun used in "Expected ..." diagnostics.
func (c Category) Describe() string {
	switch c {
	case CatNumber:
		return "number"
	case CatString:
		return "string"
	case CatLine:
		return "line number"
	case CatVariable:
		return "variable"
	case CatLetter:
		return "letter"
	case CatLineRange:
		return "line range"
	case CatStream:
		return "#"
	case CatAny:
		return "expression"
	}
	return fmt.Sprintf("Category(%q)", byte(c))
}

// ArgSpec describes one argument slot of a keyword signature.
type ArgSpec struct {
	Cat Category
	// Optional slots may be omitted at the end of the argument list.
	Optional bool
	// Null slots may be left empty ("PEN ,2"); the parser then synthesizes
	// a null argument. For streams it means the default stream #0.
	Null bool
	// Repeat slots may occur zero or more times.
	Repeat bool
}

func (a ArgSpec) String() string {
	var sb strings.Builder
	sb.WriteByte(byte(a.Cat))
	if a.Null {
		sb.WriteByte('0')
	}
	if a.Repeat {
		sb.WriteByte('*')
	} else if a.Optional {
		sb.WriteByte('?')
	}
	return sb.String()
}

// Signature is the pre-parsed form of a keyword signature string.
type Signature struct {
	Kind Kind
	Args []ArgSpec
}

// ParseSignature parses signature text such as "c #0? n0 n?".
// The first field is the keyword kind, each following field an argument
// category with optional modifiers: '0' null allowed, '?' optional,
// '*' repeated. A lone "*" repeats the previous argument.
func ParseSignature(text string) (Signature, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields[0]) != 1 {
		return Signature{}, errors.New("signature missing kind")
	}
	sig := Signature{Kind: Kind(fields[0][0])}
	switch sig.Kind {
	case KindCommand, KindFunction, KindFragment, KindOperator, KindInternal:
	default:
		return Signature{}, fmt.Errorf("unknown signature kind %q", fields[0])
	}
	for _, f := range fields[1:] {
		if f == "*" {
			if len(sig.Args) == 0 {
				return Signature{}, errors.New("repetition without argument")
			}
			rep := sig.Args[len(sig.Args)-1]
			rep.Optional, rep.Repeat = true, true
			sig.Args = append(sig.Args, rep)
			continue
		}
		spec := ArgSpec{Cat: Category(f[0])}
		switch spec.Cat {
		case CatNumber, CatString, CatLine, CatVariable, CatLetter, CatLineRange, CatStream, CatAny:
		default:
			return Signature{}, fmt.Errorf("unknown argument category %q in %q", f[0], text)
		}
		for _, mod := range f[1:] {
			switch mod {
			case '0':
				spec.Null = true
			case '?':
				spec.Optional = true
			case '*':
				spec.Optional, spec.Repeat = true, true
			default:
				return Signature{}, fmt.Errorf("unknown argument modifier %q in %q", mod, text)
			}
		}
		sig.Args = append(sig.Args, spec)
	}
	return sig, nil
}

// Signature returns the pre-parsed signature of a keyword token.
// Non-keyword tokens return the zero Signature.
func (tok Token) Signature() Signature {
	if tok < 0 || tok >= numToks {
		return Signature{}
	}
	return signatures[tok]
}

// IsFunction reports whether tok is a built-in function keyword.
func (tok Token) IsFunction() bool { return tok.Signature().Kind == KindFunction }

// IsCommand reports whether tok may start a statement.
func (tok Token) IsCommand() bool { return tok.Signature().Kind == KindCommand }

var signatures [numToks]Signature

func init() {
	for tok, text := range signatureText {
		sig, err := ParseSignature(text)
		if err != nil {
			panic(tok.String() + ": " + err.Error())
		}
		signatures[tok] = sig
	}
}

var signatureText = map[Token]string{
	ABS:        "f n",
	AFTER:      "c n n0? l",
	AND:        "o",
	ASC:        "f s",
	ATN:        "f n",
	AUTO:       "c n0? n?",
	BINSTR:     "f n n?",
	BORDER:     "c n n?",
	BREAK:      "p",
	CALL:       "c n a*",
	CAT:        "c",
	CHAIN:      "c s n?",
	CHRSTR:     "f n",
	CINT:       "f n",
	CLEAR:      "c",
	CLG:        "c n?",
	CLOSEIN:    "c",
	CLOSEOUT:   "c",
	CLS:        "c #0?",
	CONT:       "c",
	COPYCHRSTR: "f #",
	COS:        "f n",
	CREAL:      "f n",
	CURSOR:     "c n0? n?",
	DATA:       "x",
	DECSTR:     "f n s",
	DEF:        "x",
	DEFINT:     "c r r*",
	DEFREAL:    "c r r*",
	DEFSTR:     "c r r*",
	DEG:        "c",
	DELETE:     "c q?",
	DERR:       "f",
	DI:         "c",
	DIM:        "c v v*",
	DRAW:       "c n n n0? n?",
	DRAWR:      "c n n n0? n?",
	EDIT:       "c l",
	EI:         "c",
	ELSE:       "x",
	END:        "c",
	ENT:        "c n n*",
	ENV:        "c n n*",
	EOF:        "f",
	ERASE:      "c v v*",
	ERL:        "f",
	ERR:        "f",
	ERROR:      "c n",
	EVERY:      "c n n0? l",
	EXP:        "f n",
	FILL:       "c n",
	FIX:        "f n",
	FN:         "x",
	FOR:        "x",
	FRAME:      "c",
	FRE:        "f a",
	GOSUB:      "c l",
	GOTO:       "c l",
	GRAPHICS:   "x",
	HEXSTR:     "f n n?",
	HIMEM:      "f",
	IF:         "x",
	INK:        "c n n n?",
	INKEY:      "f n",
	INKEYSTR:   "f",
	INP:        "f n",
	INPUT:      "x",
	INSTR:      "f a a a?",
	INT:        "f n",
	JOY:        "f n",
	KEY:        "c n s",
	LEFTSTR:    "f s n",
	LEN:        "f s",
	LET:        "x",
	LINE:       "x",
	LIST:       "c q0? #0?",
	LOAD:       "c s n?",
	LOCATE:     "c #0? n n",
	LOG:        "f n",
	LOG10:      "f n",
	LOWERSTR:   "f s",
	MASK:       "c n0? n?",
	MAX:        "f n n*",
	MEMORY:     "c n",
	MERGE:      "c s",
	MIDSTR:     "f s n n?",
	MIN:        "f n n*",
	MOD:        "o",
	MODE:       "c n",
	MOVE:       "c n n n0? n?",
	MOVER:      "c n n n0? n?",
	NEW:        "c",
	NEXT:       "c v*",
	NOT:        "o",
	ON:         "x",
	OPENIN:     "c s",
	OPENOUT:    "c s",
	OR:         "o",
	ORIGIN:     "c n n n? n? n? n?",
	OUT:        "c n n",
	PAPER:      "c #0? n",
	PEEK:       "f n",
	PEN:        "c #0? n0 n?",
	PI:         "f",
	PLOT:       "c n n n0? n?",
	PLOTR:      "c n n n0? n?",
	POKE:       "c n n",
	POS:        "f #",
	PRINT:      "x",
	RAD:        "c",
	RANDOMIZE:  "c n?",
	READ:       "c v v*",
	RELEASE:    "c n",
	REM:        "x",
	REMAIN:     "f n",
	RENUM:      "c n0? n0? n?",
	RESTORE:    "c l?",
	RESUME:     "c l?",
	RETURN:     "c",
	RIGHTSTR:   "f s n",
	RND:        "f n?",
	ROUND:      "f n n?",
	RUN:        "x",
	SAVE:       "c s a? n? n? n?",
	SGN:        "f n",
	SIN:        "f n",
	SOUND:      "c n n n? n0? n0? n0? n?",
	SPACESTR:   "f n",
	SPC:        "f n",
	SPEED:      "x",
	SQ:         "f n",
	SQR:        "f n",
	STEP:       "p",
	STOP:       "c",
	STRSTR:     "f n",
	STRINGSTR:  "f n a",
	SWAP:       "p",
	SYMBOL:     "c n n*",
	TAB:        "f n",
	TAG:        "c #0?",
	TAGOFF:     "c #0?",
	TAN:        "f n",
	TEST:       "f n n",
	TESTR:      "f n n",
	THEN:       "p",
	TIME:       "f",
	TO:         "p",
	TROFF:      "c",
	TRON:       "c",
	UNT:        "f n",
	UPPERSTR:   "f s",
	USING:      "p",
	VAL:        "f s",
	VPOS:       "f #",
	WAIT:       "c n n n?",
	WEND:       "c",
	WHILE:      "c n",
	WIDTH:      "c n",
	WINDOW:     "c #0? n n n n",
	WRITE:      "c #0? a*",
	XOR:        "o",
	XPOS:       "f",
	YPOS:       "f",
	ZONE:       "c n",

	CHAINMERGE:    "c s n? q?",
	CLEARINPUT:    "c",
	GRAPHICSPAPER: "c n",
	GRAPHICSPEN:   "c n0 n?",
	KEYDEF:        "c n n n? n? n?",
	LINEINPUT:     "x",
	MIDASSIGN:     "x",
	ONBREAKCONT:   "c",
	ONBREAKGOSUB:  "c l",
	ONBREAKSTOP:   "c",
	ONERRORGOTO:   "c l",
	ONGOSUB:       "x",
	ONGOTO:        "x",
	ONSQGOSUB:     "c n l",
	RESUMENEXT:    "c",
	SPEEDINK:      "c n n",
	SPEEDKEY:      "c n n",
	SPEEDWRITE:    "c n",
	SYMBOLAFTER:   "c n",
	WINDOWSWAP:    "c n n?",
}

var compositeSource = map[Token]string{
	CHAINMERGE:    "CHAIN MERGE",
	CLEARINPUT:    "CLEAR INPUT",
	GRAPHICSPAPER: "GRAPHICS PAPER",
	GRAPHICSPEN:   "GRAPHICS PEN",
	KEYDEF:        "KEY DEF",
	LINEINPUT:     "LINE INPUT",
	MIDASSIGN:     "MID$",
	ONBREAKCONT:   "ON BREAK CONT",
	ONBREAKGOSUB:  "ON BREAK GOSUB",
	ONBREAKSTOP:   "ON BREAK STOP",
	ONERRORGOTO:   "ON ERROR GOTO",
	ONGOSUB:       "GOSUB",
	ONGOTO:        "GOTO",
	ONSQGOSUB:     "ON SQ",
	RESUMENEXT:    "RESUME NEXT",
	SPEEDINK:      "SPEED INK",
	SPEEDKEY:      "SPEED KEY",
	SPEEDWRITE:    "SPEED WRITE",
	SYMBOLAFTER:   "SYMBOL AFTER",
	WINDOWSWAP:    "WINDOW SWAP",
}

// Source returns the BASIC spelling of tok as the pretty printer writes it:
// upper case keywords, multi-word spelling for composites.
func (tok Token) Source() string {
	switch {
	case tok.IsKeyword():
		return strings.ToUpper(tok.String())
	case tok.IsComposite():
		return compositeSource[tok]
	}
	return tok.String()
}
