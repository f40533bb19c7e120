// Package expr implements the Expression component from spec.md §3/§4.2: a
// tagged tree over literals, variables, builtin calls, and binary/unary
// arithmetic, parsed by a hand-written recursive-descent parser and
// evaluated or analytically differentiated against a symtab.Context.
package expr

// Kind tags the node variant held by an Expr.
type Kind int

const (
	// KindLiteral holds a numeric constant in Value.
	KindLiteral Kind = iota
	// KindVariable holds a symbol name in Name, resolved against the
	// caller's assignment first, then the Context's constants.
	KindVariable
	// KindCall holds a builtin name in Name and its arguments in Args.
	KindCall
	// KindBinary holds an operator in Op and operands in Left, Right.
	KindBinary
	// KindNeg holds a single operand in Child (unary minus).
	KindNeg
	// kindDerivCall is produced only by Diff: it represents "the
	// registered derivative of the unary builtin Name, applied to
	// Args[0]", since a Context stores derivative rules as raw Go
	// functions rather than expression trees.
	kindDerivCall
)

// Expr is an immutable parsed expression node. Which fields are
// meaningful depends on Kind; see the Kind constants above.
type Expr struct {
	Kind  Kind
	Value float64
	Name  string
	Args  []*Expr
	Op    byte // '+', '-', '*', '/', '^' when Kind == KindBinary
	Left  *Expr
	Right *Expr
	Child *Expr
}

// Literal constructs a KindLiteral node.
func Literal(v float64) *Expr { return &Expr{Kind: KindLiteral, Value: v} }

// Variable constructs a KindVariable node.
func Variable(name string) *Expr { return &Expr{Kind: KindVariable, Name: name} }

// Call constructs a KindCall node.
func Call(name string, args ...*Expr) *Expr { return &Expr{Kind: KindCall, Name: name, Args: args} }

// Binary constructs a KindBinary node.
func Binary(op byte, left, right *Expr) *Expr {
	return &Expr{Kind: KindBinary, Op: op, Left: left, Right: right}
}

// Neg constructs a KindNeg (unary minus) node.
func Neg(child *Expr) *Expr { return &Expr{Kind: KindNeg, Child: child} }

// VariableNames returns the set of distinct Variable-node names appearing
// anywhere in the tree, in first-encountered order. Callers (e.g. package
// equation) filter this against a Context's constants to compute mentions.
func (e *Expr) VariableNames() []string {
	seen := make(map[string]struct{})
	var names []string
	var walk func(*Expr)
	walk = func(n *Expr) {
		if n == nil {
			return
		}
		switch n.Kind {
		case KindVariable:
			if _, ok := seen[n.Name]; !ok {
				seen[n.Name] = struct{}{}
				names = append(names, n.Name)
			}
		case KindCall, kindDerivCall:
			for _, a := range n.Args {
				walk(a)
			}
		case KindBinary:
			walk(n.Left)
			walk(n.Right)
		case KindNeg:
			walk(n.Child)
		}
	}
	walk(e)

	return names
}
