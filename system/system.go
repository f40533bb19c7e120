package system

import (
	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/symtab"
)

// System is a fully constrained set of equations ready for MultiVarSolver:
// equation count equals free-variable count. Variables fixes the column
// order of the Jacobian, frozen at Build time as the insertion order of
// each variable's first mention.
type System struct {
	Equations []*equation.Equation
	Ctx       *symtab.Context
	Variables []string
	Spec      map[string]DeclaredVariable
}

// SpecifyVariable overrides the guess/bounds for one of the system's
// variables, as extracted by the preprocessor pipeline's `keep`/`guess`
// declarations. Names outside Variables are ignored.
func (s *System) SpecifyVariable(name string, decl DeclaredVariable) {
	if _, ok := s.Spec[name]; !ok {
		return
	}
	s.Spec[name] = decl
}
