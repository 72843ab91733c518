package symbol

import "fmt"

// LetterRules are the DEFINT, DEFREAL and DEFSTR rules in effect: a static
// type per initial letter for names written without a suffix.
type LetterRules struct {
	types [26]Type
}

// Reset clears all rules so every unsuffixed name has Unknown type.
func (r *LetterRules) Reset() { r.types = [26]Type{} }

// Define assigns typ to the letters from..to inclusive. Letters are case-insensitive.
func (r *LetterRules) Define(from, to byte, typ Type) error {
	from, to = lower(from), lower(to)
	if from < 'a' || from > 'z' || to < 'a' || to > 'z' {
		return fmt.Errorf("letter range %c-%c outside a-z", from, to)
	}
	if from > to {
		return fmt.Errorf("letter range %c-%c is reversed", from, to)
	}
	for c := from; c <= to; c++ {
		r.types[c-'a'] = typ
	}
	return nil
}

// Letter returns the type defined for a letter, Unknown if none.
func (r *LetterRules) Letter(c byte) Type {
	c = lower(c)
	if c < 'a' || c > 'z' {
		return Unknown
	}
	return r.types[c-'a']
}

// TypeOf resolves the static type of a variable name: the suffix wins,
// otherwise the rule for the initial letter applies. r may be nil.
func (r *LetterRules) TypeOf(name string) Type {
	if t := SuffixType(name); t != Unknown {
		return t
	}
	if r == nil || name == "" {
		return Unknown
	}
	return r.Letter(name[0])
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
