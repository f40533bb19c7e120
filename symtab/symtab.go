// Package symtab implements the Context component from spec.md §3: a
// symbol table mapping a lowercase name to either a numeric constant or a
// builtin function (unary or n-ary), consulted by expr.Expr during
// evaluation and differentiation.
package symtab

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownSymbol is returned by Call when a name is not a callable
// builtin in the Context.
var ErrUnknownSymbol = errors.New("symtab: unknown symbol")

// ErrArityMismatch is returned when a builtin is called with the wrong
// number of arguments.
var ErrArityMismatch = errors.New("symtab: arity mismatch")

// ErrNonDifferentiable names the case of a builtin with no registered
// derivative rule. No function in this package returns it; expr.Expr.Diff
// reports that case with expr.ErrNonDifferentiable.
var ErrNonDifferentiable = errors.New("symtab: not differentiable")

// entryKind distinguishes the three things a Context entry can hold.
type entryKind int

const (
	kindConst entryKind = iota
	kindUnary
	kindNary
)

// entry is one binding in a Context.
type entry struct {
	kind   entryKind
	value  float64                 // kindConst
	unary  func(float64) float64   // kindUnary
	dunary func(float64) float64   // derivative of a unary builtin, if known
	nary   func([]float64) float64 // kindNary
	n      int                     // kindNary: expected argument count (variadic if n < 0)
}

// Context maps a lowercased symbol to a constant or builtin function.
// A Context is read-only during a solve; AddConst/AddUnary/AddNary are
// only meant to be called while building it up before use.
type Context struct {
	entries map[string]entry
}

// New returns a new Context. If withDefaults is true, it is seeded with
// common math builtins (sin, cos, tan, sinh, cosh, tanh, asin, acos, atan,
// log, ln, exp, sqrt, abs), the special "if" builtin, and the constants
// pi and e.
func New(withDefaults bool) *Context {
	c := &Context{entries: make(map[string]entry)}
	if withDefaults {
		seedDefaults(c)
	}

	return c
}

func seedDefaults(c *Context) {
	c.AddConst("pi", math.Pi)
	c.AddConst("e", math.E)

	c.AddUnaryWithDerivative("sin", math.Sin, math.Cos)
	c.AddUnaryWithDerivative("cos", math.Cos, func(x float64) float64 { return -math.Sin(x) })
	c.AddUnaryWithDerivative("tan", math.Tan, func(x float64) float64 { return 1 / (math.Cos(x) * math.Cos(x)) })
	c.AddUnaryWithDerivative("sinh", math.Sinh, math.Cosh)
	c.AddUnaryWithDerivative("cosh", math.Cosh, math.Sinh)
	c.AddUnaryWithDerivative("tanh", math.Tanh, func(x float64) float64 { return 1 - math.Tanh(x)*math.Tanh(x) })
	c.AddUnaryWithDerivative("asin", math.Asin, func(x float64) float64 { return 1 / math.Sqrt(1-x*x) })
	c.AddUnaryWithDerivative("acos", math.Acos, func(x float64) float64 { return -1 / math.Sqrt(1-x*x) })
	c.AddUnaryWithDerivative("atan", math.Atan, func(x float64) float64 { return 1 / (1 + x*x) })
	c.AddUnaryWithDerivative("log", math.Log10, func(x float64) float64 { return 1 / (x * math.Ln10) })
	c.AddUnaryWithDerivative("ln", math.Log, func(x float64) float64 { return 1 / x })
	c.AddUnaryWithDerivative("exp", math.Exp, math.Exp)
	c.AddUnaryWithDerivative("sqrt", math.Sqrt, func(x float64) float64 { return 1 / (2 * math.Sqrt(x)) })
	c.AddUnaryWithDerivative("abs", math.Abs, func(x float64) float64 {
		if x < 0 {
			return -1
		}
		return 1
	})

	// if(cond_lhs, op_code, cond_rhs, if_true, if_false)
	c.AddNary("if", 5, func(args []float64) float64 {
		if compare(args[0], args[1], args[2]) {
			return args[3]
		}
		return args[4]
	})
}

// compare evaluates lhs OP rhs where op is the numeric code from spec.md
// §3: 1=eq, 2=le, 3=ge, 4=lt, 5=gt, 6=ne.
func compare(lhs, op, rhs float64) bool {
	switch int(op) {
	case 1:
		return lhs == rhs
	case 2:
		return lhs <= rhs
	case 3:
		return lhs >= rhs
	case 4:
		return lhs < rhs
	case 5:
		return lhs > rhs
	case 6:
		return lhs != rhs
	default:
		return false
	}
}

// AddConst registers a named constant value.
func (c *Context) AddConst(name string, v float64) {
	c.entries[normalize(name)] = entry{kind: kindConst, value: v}
}

// AddUnary registers a unary builtin with no known derivative; expr's Diff
// will fail with expr.ErrNonDifferentiable if it is ever differentiated.
func (c *Context) AddUnary(name string, f func(float64) float64) {
	c.entries[normalize(name)] = entry{kind: kindUnary, unary: f}
}

// AddUnaryWithDerivative registers a unary builtin together with its
// analytic derivative, enabling expr.Expr.Diff to differentiate through it.
func (c *Context) AddUnaryWithDerivative(name string, f, df func(float64) float64) {
	c.entries[normalize(name)] = entry{kind: kindUnary, unary: f, dunary: df}
}

// AddNary registers an n-ary builtin. n < 0 marks it variadic (any arity
// accepted); otherwise calls with a different argument count fail with
// ErrArityMismatch.
func (c *Context) AddNary(name string, n int, f func([]float64) float64) {
	c.entries[normalize(name)] = entry{kind: kindNary, nary: f, n: n}
}

// Const looks up a constant by name, reporting whether it resolved and
// was in fact a constant entry.
func (c *Context) Const(name string) (float64, bool) {
	e, ok := c.entries[normalize(name)]
	if !ok || e.kind != kindConst {
		return 0, false
	}

	return e.value, true
}

// Has reports whether name resolves to anything in the Context.
func (c *Context) Has(name string) bool {
	_, ok := c.entries[normalize(name)]
	return ok
}

// Call invokes the builtin named name with the given arguments, checking
// arity. It fails with ErrUnknownSymbol if name isn't a builtin in this
// Context, or ErrArityMismatch on a bad argument count.
func (c *Context) Call(name string, args []float64) (float64, error) {
	e, ok := c.entries[normalize(name)]
	if !ok {
		return 0, fmt.Errorf("symtab.Call(%s): %w", name, ErrUnknownSymbol)
	}
	switch e.kind {
	case kindUnary:
		if len(args) != 1 {
			return 0, fmt.Errorf("symtab.Call(%s): want 1 arg, got %d: %w", name, len(args), ErrArityMismatch)
		}
		return e.unary(args[0]), nil
	case kindNary:
		if e.n >= 0 && len(args) != e.n {
			return 0, fmt.Errorf("symtab.Call(%s): want %d args, got %d: %w", name, e.n, len(args), ErrArityMismatch)
		}
		return e.nary(args), nil
	default:
		return 0, fmt.Errorf("symtab.Call(%s): not callable: %w", name, ErrUnknownSymbol)
	}
}

// DerivativeOf returns the derivative function for a registered unary
// builtin, reporting ok=false if name isn't a differentiable unary builtin.
func (c *Context) DerivativeOf(name string) (func(float64) float64, bool) {
	e, ok := c.entries[normalize(name)]
	if !ok || e.kind != kindUnary || e.dunary == nil {
		return nil, false
	}

	return e.dunary, true
}

// IsNary reports whether name is a registered n-ary builtin, and if so its
// declared arity (negative if variadic).
func (c *Context) IsNary(name string) (int, bool) {
	e, ok := c.entries[normalize(name)]
	if !ok || e.kind != kindNary {
		return 0, false
	}

	return e.n, true
}

// IsUnary reports whether name is a registered unary builtin.
func (c *Context) IsUnary(name string) bool {
	e, ok := c.entries[normalize(name)]
	return ok && e.kind == kindUnary
}

// normalize lowercases a symbol, matching spec.md's case-insensitive,
// lowercase-stored name convention.
func normalize(name string) string {
	return strings.ToLower(name)
}
