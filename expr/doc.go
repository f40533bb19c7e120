// Package expr parses, evaluates, and analytically differentiates the
// arithmetic expressions used throughout Nexsys2 equations (spec.md §3,
// §4.2). Expr trees are built by Parse and consumed by Eval and Diff
// against a *symtab.Context.
package expr
