/*
Package burg implements the core data model for ocamlburg, a code-generator
generator in the BURG tradition (Fraser & Hanson, "Engineering a Simple,
Efficient Code Generator Generator", 1992).

ocamlburg consumes a declarative specification of tree-rewriting rules —
each rule mapping a pattern over a subject tree to a user-supplied action,
tagged with a cost — and emits source implementing a bottom-up
dynamic-programming tree-matching algorithm that covers a subject tree with
the minimum-cost set of rules. Package structure is as follows:

■ burg (this package): the data model (patterns, rules, specifications,
constructor signatures) and the pattern utilities shared by the rest of the
pipeline, plus the structured error type raised by every stage.

■ normalize: flattens nested constructor patterns into an equivalent rule
set whose patterns never nest a constructor inside another.

■ typer: derives a unique argument-type signature for every constructor.

■ codegen: emits the dynamic-programming engine itself — one update routine
per nonterminal, one constructor routine per pattern constructor.

■ runtime: the small support library (`Cost`, `Nt[T]`, `Choice`, `Matches`)
the emitted code imports.

■ frontend: lexer and parser for the specification language of §6.

■ mangle: the identifier mangler referenced by the code generator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package burg
