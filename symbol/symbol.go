// Package symbol provides static typing and the variable table used when
// compiling Locomotive BASIC programs.
package symbol

import (
	"sort"
	"strings"
)

// Type is the static type tag of an expression or variable.
type Type byte

const (
	Unknown Type = 0
	Int     Type = 'I'
	Real    Type = 'R'
	String  Type = '$'
)

func (t Type) String() string {
	switch t {
	case Int:
		return "I"
	case Real:
		return "R"
	case String:
		return "$"
	}
	return "?"
}

// IsNumeric reports whether t is Int or Real.
func (t Type) IsNumeric() bool { return t == Int || t == Real }

// Flags
type Flags uint64

const (
	FlagArray Flags = 1 << iota
	FlagFunction
	FlagAssigned
	FlagImplicit // type comes from a DEFINT/DEFREAL/DEFSTR rule.
)

func (f Flags) HasAny(hasBits Flags) bool { return f&hasBits != 0 }
func (f Flags) HasAll(hasBits Flags) bool { return f&hasBits == hasBits }
func (f Flags) With(mask Flags, setBits bool) Flags {
	if setBits {
		return f | mask
	} else {
		return f &^ mask
	}
}

// Var is a variable, array or DEF FN function seen in a program.
type Var struct {
	name   string // runtime property name, see JSName.
	source string // spelling at first use.
	typ    Type
	dims   int
	flags  Flags
	pos    int
	refs   int
}

// Name returns the runtime property name of the variable.
func (v *Var) Name() string { return v.name }

// Source returns the BASIC spelling the variable was first seen with.
func (v *Var) Source() string { return v.source }

// Type returns the static type, Unknown if it depends on run time rules.
func (v *Var) Type() Type { return v.typ }

// Dims returns the number of array dimensions, 0 if unknown or scalar.
func (v *Var) Dims() int { return v.dims }

// Flags returns the variable [Flags].
func (v *Var) Flags() Flags { return v.flags }

// Pos returns the source position of the first use.
func (v *Var) Pos() int { return v.pos }

// Refs returns how many times the variable was referenced.
func (v *Var) Refs() int { return v.refs }

// Table is the set of variables of a program keyed by runtime name.
// The zero value is not usable, see NewTable.
type Table struct {
	vars  map[string]*Var
	order []*Var
}

func NewTable() *Table {
	return &Table{vars: make(map[string]*Var)}
}

// Reset empties the table keeping allocated memory.
func (t *Table) Reset() {
	clear(t.vars)
	t.order = t.order[:0]
}

// Use records a reference to the BASIC variable source with static type typ.
// The first use fixes position and spelling; flags accumulate and a known
// type replaces Unknown.
func (t *Table) Use(source string, typ Type, flags Flags, pos int) *Var {
	name := JSName(source, flags.HasAny(FlagArray))
	if flags.HasAny(FlagFunction) {
		name = FnName(source)
	}
	v := t.vars[name]
	if v == nil {
		v = &Var{name: name, source: source, typ: typ, pos: pos}
		t.vars[name] = v
		t.order = append(t.order, v)
	}
	v.refs++
	v.flags |= flags
	if v.typ == Unknown {
		v.typ = typ
	}
	return v
}

// SetDims records the dimension count of an array.
func (v *Var) SetDims(n int) {
	if n > v.dims {
		v.dims = n
	}
}

// Lookup returns the variable with runtime name or nil.
func (t *Table) Lookup(name string) *Var { return t.vars[name] }

// Len returns the number of distinct variables.
func (t *Table) Len() int { return len(t.order) }

// Vars returns variables in order of first use.
func (t *Table) Vars() []*Var { return t.order }

// Names returns the sorted runtime names of all variables.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.order))
	for _, v := range t.order {
		names = append(names, v.name)
	}
	sort.Strings(names)
	return names
}

// JSName mangles a BASIC variable name into its runtime property name:
// lower case, '.' becomes '_', suffix '%' becomes "I", '!' becomes "R" and
// '$' is kept. Arrays get an "A" suffix so a and a() do not collide.
func JSName(source string, isArray bool) string {
	var sb strings.Builder
	sb.Grow(len(source) + 2)
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c >= 'A' && c <= 'Z':
			sb.WriteByte(c + 'a' - 'A')
		case c == '.':
			sb.WriteByte('_')
		case c == '%' && i == len(source)-1:
			sb.WriteByte('I')
		case c == '!' && i == len(source)-1:
			sb.WriteByte('R')
		default:
			sb.WriteByte(c)
		}
	}
	if isArray {
		sb.WriteByte('A')
	}
	return sb.String()
}

// FnName returns the runtime name of the DEF FN function called name.
func FnName(name string) string {
	return "fn" + JSName(name, false)
}

// SuffixType returns the type given by the name's suffix, Unknown if none.
func SuffixType(name string) Type {
	if name == "" {
		return Unknown
	}
	switch name[len(name)-1] {
	case '%':
		return Int
	case '!':
		return Real
	case '$':
		return String
	}
	return Unknown
}
