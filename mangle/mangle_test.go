package mangle

import "testing"

func TestMangleLeavesOrdinaryNamesAlone(t *testing.T) {
	for _, name := range []string{"e", "stmt", "ADD", "x1"} {
		if got := Mangle(name); got != name {
			t.Errorf("Mangle(%q) = %q, want unchanged", name, got)
		}
	}
}

func TestMangleRenamesKeywordsAndPredeclared(t *testing.T) {
	cases := map[string]string{
		"type":   "type_",
		"range":  "range_",
		"func":   "func_",
		"len":    "len_",
		"string": "string_",
		"int":    "int_",
	}
	for in, want := range cases {
		if got := Mangle(in); got != want {
			t.Errorf("Mangle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMangleLeavesAuxiliaryNamesUnchangedEvenIfReserved(t *testing.T) {
	for _, name := range []string{"_ADD2", "_CONST1", "_type", "_range"} {
		if got := Mangle(name); got != name {
			t.Errorf("Mangle(%q) = %q, want unchanged (leading underscore invariant)", name, got)
		}
	}
}
