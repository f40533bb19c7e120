// Package symtab implements Context: the symbol table of constants and
// builtin functions that expr.Expr is evaluated and differentiated
// against. See spec.md §3 (Context) and §4.2 (eval/diff contracts).
package symtab
