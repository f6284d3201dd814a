package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/tools/imports"

	burg "github.com/ocaml-burg/ocamlburg"
	"github.com/ocaml-burg/ocamlburg/typer"
)

// Generate emits a self-contained Go source file implementing the
// dynamic-programming tree-cover engine described by spec/groups/sigs
// (§4.5): package clause and imports, head fragment, the nonterm record
// type, the infinity value, the mutually recursive update routines, the
// mutually recursive constructor routines, tail fragment. If spec.Rules is
// empty, only the head and tail fragments are emitted (EmptySpecification
// is informational, not an error, per §7).
func Generate(w io.Writer, spec *burg.Spec, groups *Groups, sigs typer.Signatures) error {
	var body strings.Builder

	if spec.Head != "" {
		body.WriteString(spec.Head)
		body.WriteString("\n\n")
	}

	if len(spec.Rules) == 0 {
		tracer().Infof("codegen: empty rule list, emitting head/tail only")
		if spec.Tail != "" {
			body.WriteString(spec.Tail)
			body.WriteString("\n")
		}
		return writeOut(w, body.String())
	}

	fmt.Fprintf(&body, "// generated-from-hash: %s\n\n", fingerprint(spec))

	writeRecordType(&body, spec, groups)
	writeInfinityValue(&body, spec, groups)
	writeUpdateFuncs(&body, spec, groups)
	if err := writeConstructorFuncs(&body, spec, groups, sigs); err != nil {
		return err
	}

	if spec.Tail != "" {
		body.WriteString(spec.Tail)
		body.WriteString("\n")
	}

	pkg := "package " + packageName(spec) + "\n\n" +
		"import (\n\tburgrt \"github.com/ocaml-burg/ocamlburg/runtime\"\n)\n\n"

	return writeOut(w, pkg+body.String())
}

// packageName is a fixed name for the emitted file; spec.md leaves the
// emitted package's name unspecified, and a generator invoked once per
// spec file has no other natural source for one.
func packageName(spec *burg.Spec) string {
	return "generated"
}

// fingerprint is a deterministic content hash of the rule set, embedded as
// a comment just ahead of the record type so regenerating from an unchanged specification
// produces byte-identical output (Scenario F, §8) even across separate
// process runs — useful to `go:generate`-style build pipelines that would
// otherwise see spurious diffs.
func fingerprint(spec *burg.Spec) string {
	hash, err := structhash.Hash(spec.Rules, 1)
	if err != nil {
		// structhash only fails on unhashable types (channels, funcs); the
		// rule set is a plain data structure, so this is unreachable in
		// practice, but codegen must still not panic on it.
		return "unavailable"
	}
	return hash
}

// writeOut runs src through goimports-style formatting (the closest Go
// analogue to spec.md's external "pretty-printer" collaborator) and
// writes the result to w, reporting any write failure as IOFailure.
func writeOut(w io.Writer, src string) error {
	formatted, err := imports.Process("", []byte(src), nil)
	if err != nil {
		formatted = []byte(src) // best-effort: still emit unformatted, valid-or-not, text
	}
	if _, err := w.Write(formatted); err != nil {
		return burg.NewError(burg.IOFailure, burg.Pos{}, "writing generated output: %v", err)
	}
	return nil
}
