package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// A FieldFilter is used to filter fields when printing AST nodes.
// If it returns false, the field is excluded from the output.
type FieldFilter func(name string, value reflect.Value) bool

// NotNilFilter returns true for all fields that are not nil or zero-value.
func NotNilFilter(_ string, v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return !v.IsNil()
	case reflect.Bool:
		return v.Bool()
	}
	return true
}

// StructureFilter drops source positions and zero values so two trees parsed
// from differently spaced source print identically.
func StructureFilter(name string, v reflect.Value) bool {
	switch name {
	case "StartPos", "EndPos", "NumLen":
		return false
	}
	return NotNilFilter(name, v)
}

// Fprint prints the AST node x to w as a compact tree. If f is non-nil only
// fields for which f returns true are printed.
func Fprint(w io.Writer, x any, f FieldFilter) error {
	p := &printer{filter: f}
	p.print(reflect.ValueOf(x))
	_, err := io.WriteString(w, p.sb.String())
	return err
}

// Sprint returns the structure of x without positions. Nodes that print
// equal have the same shape and literals.
func Sprint(x any) string {
	var sb strings.Builder
	Fprint(&sb, x, StructureFilter)
	return sb.String()
}

type printer struct {
	sb     strings.Builder
	filter FieldFilter
	indent int
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.sb, format, args...)
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.sb.WriteString("  ")
	}
}

func (p *printer) print(v reflect.Value) {
	if !v.IsValid() {
		p.printf("nil")
		return
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			p.printf("nil")
			return
		}
		v = v.Elem()
		if v.Kind() == reflect.Pointer {
			p.print(v)
			return
		}
	}
	t := v.Type()
	switch v.Kind() {
	case reflect.Struct:
		p.printf("%s{", t.Name())
		p.indent++
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			fv := v.Field(i)
			if !field.IsExported() || (p.filter != nil && !p.filter(field.Name, fv)) {
				continue
			}
			p.newline()
			p.printf("%s: ", field.Name)
			p.print(fv)
		}
		p.indent--
		p.newline()
		p.printf("}")
	case reflect.Slice, reflect.Array:
		p.printf("[")
		p.indent++
		for i := 0; i < v.Len(); i++ {
			p.newline()
			p.print(v.Index(i))
		}
		p.indent--
		if v.Len() > 0 {
			p.newline()
		}
		p.printf("]")
	case reflect.String:
		p.printf("%q", v.String())
	case reflect.Uint8:
		p.printf("%q", byte(v.Uint()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			p.printf("%s", s)
		} else {
			p.printf("%d", v.Int())
		}
	case reflect.Float32, reflect.Float64:
		p.printf("%g", v.Float())
	case reflect.Bool:
		p.printf("%t", v.Bool())
	default:
		p.printf("%v", v.Interface())
	}
}
