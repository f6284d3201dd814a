/*
Command ocamlburg reads a BURG-style code-generator specification and
emits the Go source of a dynamic-programming tree-matching code generator
for it.

Usage:

	ocamlburg [-norm|-version|-help] [-inspect] spec_file

-norm dumps the normalized rule set instead of generating code. -inspect
drops into a small interactive shell for querying the grouped rule set
(cons/chains/sig) once normalization and typing have succeeded. -twelf is
accepted but rejected with an Unsupported error, since no proof-assistant
export format is implemented here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	burg "github.com/ocaml-burg/ocamlburg"
	"github.com/ocaml-burg/ocamlburg/codegen"
	"github.com/ocaml-burg/ocamlburg/frontend"
	"github.com/ocaml-burg/ocamlburg/normalize"
	"github.com/ocaml-burg/ocamlburg/typer"
	"github.com/pterm/pterm"
)

const version = "ocamlburg 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	gtrace.SyntaxTracer = gologadapter.New()

	fs := flag.NewFlagSet("ocamlburg", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	normFlag := fs.Bool("norm", false, "dump the normalized rule set instead of generating code")
	versionFlag := fs.Bool("version", false, "print the version and exit")
	inspectFlag := fs.Bool("inspect", false, "drop into an interactive shell after typing the specification")
	twelfFlag := fs.Bool("twelf", false, "export an independent coverage-check file (not implemented)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Println(version)
		return 0
	}
	if *twelfFlag {
		pterm.Error.Println(burg.NewError(burg.Unsupported, burg.Pos{}, "-twelf is not implemented: the coverage-proof exporter is an external collaborator").Error())
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	specFile := fs.Arg(0)

	src, err := os.ReadFile(specFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}

	spec, err := frontend.Parse(specFile, src)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}

	normalized, err := normalize.Normalize(spec.Rules)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}

	if *normFlag {
		dumpNormalized(normalized)
		return 0
	}

	sigs, err := typer.Infer(normalized)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}

	groups, err := codegen.Group(normalized)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}

	if *inspectFlag {
		runInspectShell(groups, sigs)
		return 0
	}

	spec.Rules = normalized
	var buf bytes.Buffer
	if err := codegen.Generate(&buf, spec, groups, sigs); err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	return 0
}

func dumpNormalized(rules []burg.Rule) {
	for _, r := range rules {
		pterm.Println(r.String())
	}
}
