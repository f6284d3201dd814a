package mangle

// keywords and predeclared identifiers that would be invalid or shadow a
// builtin if emitted verbatim as a Go field, function, or local name.
var reserved = map[string]bool{
	// keywords (go/token.IsKeyword covers these; listed explicitly here
	// since this package has no dependency on go/token and the set is
	// small and fixed)
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,

	// predeclared identifiers a mangled name would otherwise shadow
	"any": true, "bool": true, "byte": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true, "int8": true,
	"int16": true, "int32": true, "int64": true, "rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "true": true, "false": true, "iota": true, "nil": true,
	"len": true, "cap": true, "make": true, "new": true, "append": true,
	"copy": true, "delete": true, "panic": true, "recover": true, "print": true,
	"println": true, "close": true, "complex": true, "real": true, "imag": true,
}

// Mangle returns name unchanged unless it would collide with a Go keyword
// or predeclared identifier, in which case it returns name with a trailing
// underscore appended. Names already beginning with "_" (auxiliary
// nonterminals minted by normalize.Normalize) are always passed through
// unchanged, even if reserved — none of ocamlburg's own mintings (e.g.
// "_ADD2") ever collide, and the invariant must hold regardless.
func Mangle(name string) string {
	if name == "" {
		return name
	}
	if name[0] == '_' {
		return name
	}
	if reserved[name] {
		return name + "_"
	}
	return name
}
