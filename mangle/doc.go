/*
Package mangle renames identifiers that would collide with a Go keyword or
predeclared identifier if emitted verbatim as a field, function, or local
variable name.

Grounded on spec.md §9 Design Notes, "Name mangling" paragraph: the one
invariant an identifier mangler must honor is that auxiliary names
(beginning with "_", minted by normalize.Normalize) pass through unchanged,
so sorting and field-name emission stay consistent with codegen's Groups.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package mangle
