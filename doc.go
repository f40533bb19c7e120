// Package nexsys2 solves systems of nonlinear algebraic equations
// written in the Nexsys2 domain-specific language: plain text with one
// equation per line, plus optional comments, named constants, variable
// domain/guess declarations, and if/else blocks.
//
// Solve runs the standard preprocessor schedule, parses the resulting
// equations, and discharges them via the solver pipeline (decomposition
// into single-unknown equations and minimal constrained subsystems, each
// solved by Newton-Raphson). SolveWith accepts a custom preprocessor
// schedule. SolveEquation exposes a single bounded 1-D solve directly,
// without any preprocessing or decomposition.
package nexsys2
