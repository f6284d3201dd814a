package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ocaml-burg/ocamlburg/codegen"
	"github.com/ocaml-burg/ocamlburg/typer"
	"github.com/pterm/pterm"
)

// runInspectShell is a small debugging REPL over an already-grouped,
// already-typed rule set, analogous to the teacher's own T.REPL tool but
// scoped to cons/chains/sig queries instead of s-expression evaluation.
func runInspectShell(groups *codegen.Groups, sigs typer.Signatures) {
	repl, err := readline.New("ocamlburg> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer repl.Close()

	pterm.Info.Println("commands: cons <name> | chains <name> | sig <name>; <ctrl>D to quit")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		handleInspectCommand(line, groups, sigs)
	}
	fmt.Fprintln(os.Stdout, "bye")
}

func handleInspectCommand(line string, groups *codegen.Groups, sigs typer.Signatures) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		pterm.Error.Println("usage: cons <name> | chains <name> | sig <name>")
		return
	}
	cmd, name := fields[0], fields[1]
	switch cmd {
	case "cons":
		rules, ok := groups.Cons[name]
		if !ok {
			pterm.Warning.Println(fmt.Sprintf("no constructor rules for %q", name))
			return
		}
		for _, r := range rules {
			pterm.Println(r.String())
		}
	case "chains":
		rules, ok := groups.Chains[name]
		if !ok {
			pterm.Warning.Println(fmt.Sprintf("no chain rules consuming %q", name))
			return
		}
		for _, r := range rules {
			pterm.Println(r.String())
		}
	case "sig":
		sig, ok := sigs.Get(name)
		if !ok {
			pterm.Warning.Println(fmt.Sprintf("no inferred signature for constructor %q", name))
			return
		}
		pterm.Println(sig.String())
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %q", cmd))
	}
}
