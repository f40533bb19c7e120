// Package equation implements the Equation parser from spec.md §4.3: a
// single line of text containing exactly one '=', split into lhs and rhs,
// recombined into the expression lhs-rhs whose root is zero, with the set
// of free variable names it mentions.
package equation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nexsys2-lang/nexsys2/expr"
	"github.com/nexsys2-lang/nexsys2/symtab"
)

// ErrNotAnEquation is returned when a line contains zero or more than one '='.
var ErrNotAnEquation = errors.New("equation: line does not contain exactly one '='")

// Equation is a parsed line: Expr evaluates to zero at a solution, and
// Mentions holds the names of every free variable (a Variable node not
// resolved as a Context constant) appearing in Expr.
type Equation struct {
	Source   string
	Expr     *expr.Expr
	Mentions map[string]struct{}
}

// Parse splits line on its single '=', parses both sides as expressions,
// and builds the equation lhs-rhs=0 with its mention set.
func Parse(line string, ctx *symtab.Context) (*Equation, error) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return nil, fmt.Errorf("equation.Parse(%q): %w", line, ErrNotAnEquation)
	}

	lhs, err := expr.Parse(parts[0])
	if err != nil {
		return nil, fmt.Errorf("equation.Parse(%q): lhs: %w", line, err)
	}
	rhs, err := expr.Parse(parts[1])
	if err != nil {
		return nil, fmt.Errorf("equation.Parse(%q): rhs: %w", line, err)
	}

	root := expr.Binary('-', lhs, rhs)
	mentions := make(map[string]struct{})
	for _, name := range root.VariableNames() {
		if _, isConst := ctx.Const(name); isConst {
			continue
		}
		mentions[name] = struct{}{}
	}

	return &Equation{Source: strings.TrimSpace(line), Expr: root, Mentions: mentions}, nil
}

// Unresolved returns the subset of Mentions not present in assign, in the
// order each name first appears in Expr.
func (e *Equation) Unresolved(assign map[string]float64) []string {
	var out []string
	for _, name := range e.Expr.VariableNames() {
		if _, ok := e.Mentions[name]; !ok {
			continue
		}
		if _, ok := assign[name]; !ok {
			out = append(out, name)
		}
	}

	return out
}
