package symbol

import (
	"reflect"
	"testing"
)

func TestJSName(t *testing.T) {
	tests := []struct {
		name    string
		isArray bool
		want    string
	}{
		{"a", false, "a"},
		{"A", false, "a"},
		{"Count%", false, "countI"},
		{"x!", false, "xR"},
		{"name$", false, "name$"},
		{"my.var", false, "my_var"},
		{"a", true, "aA"},
		{"a%", true, "aIA"},
		{"s$", true, "s$A"},
	}
	for _, tc := range tests {
		if got := JSName(tc.name, tc.isArray); got != tc.want {
			t.Errorf("JSName(%q, %v)=%q, want %q", tc.name, tc.isArray, got, tc.want)
		}
	}
	if got := FnName("Area"); got != "fnarea" {
		t.Errorf("FnName: got %q", got)
	}
}

func TestTableUse(t *testing.T) {
	tbl := NewTable()
	a := tbl.Use("A", Unknown, 0, 3)
	tbl.Use("a", Real, FlagAssigned, 10)
	tbl.Use("b$", String, 0, 12)
	arr := tbl.Use("a", Unknown, FlagArray, 20)
	if tbl.Len() != 3 {
		t.Fatalf("expected 3 variables, got %d: %v", tbl.Len(), tbl.Names())
	}
	if a.Refs() != 2 || a.Pos() != 3 || a.Source() != "A" {
		t.Errorf("unexpected var a: refs=%d pos=%d source=%q", a.Refs(), a.Pos(), a.Source())
	}
	if a.Type() != Real {
		t.Errorf("known type should replace unknown, got %s", a.Type())
	}
	if !a.Flags().HasAll(FlagAssigned) || a.Flags().HasAny(FlagArray) {
		t.Errorf("unexpected flags %b", a.Flags())
	}
	if arr.Name() != "aA" || tbl.Lookup("aA") != arr {
		t.Errorf("array should be stored apart, got %q", arr.Name())
	}
	if got, want := tbl.Names(), []string{"a", "aA", "b$"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names()=%v, want %v", got, want)
	}
	fn := tbl.Use("sq", Unknown, FlagFunction, 30)
	if fn.Name() != "fnsq" {
		t.Errorf("function name %q", fn.Name())
	}
	tbl.Reset()
	if tbl.Len() != 0 || tbl.Lookup("a") != nil {
		t.Error("reset did not clear table")
	}
}

func TestSuffixType(t *testing.T) {
	for name, want := range map[string]Type{"": Unknown, "a": Unknown, "a%": Int, "a!": Real, "a$": String} {
		if got := SuffixType(name); got != want {
			t.Errorf("SuffixType(%q)=%s, want %s", name, got, want)
		}
	}
	if Int.String() != "I" || !Real.IsNumeric() || String.IsNumeric() || Unknown.String() != "?" {
		t.Error("Type methods")
	}
}
