package system

import (
	"fmt"

	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/symtab"
)

// ConstraintStatus reports the outcome of a TryConstrainWith call.
type ConstraintStatus int

const (
	// WillConstrain means the equation was accepted into the builder.
	WillConstrain ConstraintStatus = iota
	// WillNotConstrain means the equation was rejected because it shares
	// no variables with the builder's current unknowns.
	WillNotConstrain
	// WillOverconstrain means accepting the equation would push the
	// equation count past the unknown count; it was rejected.
	WillOverconstrain
)

// Builder grows a set of equations toward a fully constrained system:
// equation count equal to free-variable count, counting only variables
// not already present in the global assignment (spec.md §4.5, §4.7; the
// GLOSSARY's "k equations mentioning exactly k unknowns (beyond those
// already in the global assignment)").
type Builder struct {
	ctx        *symtab.Context
	assign     map[string]float64
	equations  []*equation.Equation
	unknowns   map[string]struct{}
	firstOrder []string // insertion order of first mention, frozen by Build
}

// NewBuilder seeds a Builder with one equation, against the solver's
// current global assignment: variables already resolved in assign never
// count as unknowns. The seed must have at least one unresolved variable.
func NewBuilder(seed *equation.Equation, ctx *symtab.Context, assign map[string]float64) (*Builder, error) {
	unresolved := seed.Unresolved(assign)
	if len(unresolved) == 0 {
		return nil, fmt.Errorf("system.NewBuilder: %w", ErrEmptyMentions)
	}

	b := &Builder{
		ctx:       ctx,
		assign:    assign,
		equations: []*equation.Equation{seed},
		unknowns:  make(map[string]struct{}),
	}
	for _, name := range unresolved {
		b.addUnknown(name)
	}

	return b, nil
}

func (b *Builder) addUnknown(name string) {
	if _, ok := b.unknowns[name]; ok {
		return
	}
	b.unknowns[name] = struct{}{}
	b.firstOrder = append(b.firstOrder, name)
}

// TryConstrainWith evaluates whether eq can be added without over- or
// under-determining the growing subsystem, per the rule in spec.md §4.5:
// an equation introducing no new unknowns tightens the system
// (WillConstrain) as long as it doesn't push equations past unknowns
// (WillOverconstrain); an equation introducing new unknowns is accepted
// (WillConstrain) unless it shares none of the current unknowns at all,
// in which case it is rejected (WillNotConstrain) to keep the subsystem
// coherent. On WillConstrain the equation is accepted and b is mutated;
// otherwise b is left unchanged.
func (b *Builder) TryConstrainWith(eq *equation.Equation) (ConstraintStatus, error) {
	newCount := len(b.equations) + 1

	eqUnknowns := eq.Unresolved(b.assign)
	union := make(map[string]struct{}, len(b.unknowns)+len(eqUnknowns))
	for name := range b.unknowns {
		union[name] = struct{}{}
	}
	overlap := false
	var newly []string
	for _, name := range eqUnknowns {
		if _, ok := b.unknowns[name]; ok {
			overlap = true
		} else {
			newly = append(newly, name)
		}
		union[name] = struct{}{}
	}

	if newCount > len(union) {
		return WillOverconstrain, nil
	}

	if len(newly) == 0 && newCount <= len(b.unknowns) {
		b.equations = append(b.equations, eq)
		return WillConstrain, nil
	}

	if len(newly) > 0 {
		if !overlap && len(b.unknowns) > 0 {
			return WillNotConstrain, nil
		}
		b.equations = append(b.equations, eq)
		for _, name := range newly {
			b.addUnknown(name)
		}
		return WillConstrain, nil
	}

	return WillNotConstrain, nil
}

// IsFullyConstrained reports whether equation count equals unknown count
// and at least one equation has been accepted.
func (b *Builder) IsFullyConstrained() bool {
	return len(b.equations) == len(b.unknowns) && len(b.equations) >= 1
}

// Build freezes the builder into a System. It fails unless
// IsFullyConstrained holds.
func (b *Builder) Build() (*System, error) {
	if !b.IsFullyConstrained() {
		return nil, fmt.Errorf("system.Builder.Build: %w", ErrNotFullyConstrained)
	}

	vars := make([]string, len(b.firstOrder))
	copy(vars, b.firstOrder)

	eqs := make([]*equation.Equation, len(b.equations))
	copy(eqs, b.equations)

	spec := make(map[string]DeclaredVariable, len(vars))
	for _, v := range vars {
		spec[v] = DefaultDeclared()
	}

	return &System{
		Equations: eqs,
		Ctx:       b.ctx,
		Variables: vars,
		Spec:      spec,
	}, nil
}
