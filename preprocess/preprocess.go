// Package preprocess implements the preprocessor pipeline from spec.md
// §4.8: a fixed, ordered schedule of text-rewriting passes that turn
// surface syntax (comments, const, keep/guess declarations, if/else
// blocks) into plain equations plus constant and declared-variable maps,
// before the equation parser ever sees the text.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/nexsys2-lang/nexsys2/system"
)

// Kind distinguishes how a Preprocessor is scheduled.
type Kind int

const (
	// Once applies a preprocessor's Fn exactly one time.
	Once Kind = iota
	// UntilStable applies a preprocessor's Fn repeatedly until the text
	// it produces stops changing (a fixed point), or maxIterations is
	// reached.
	UntilStable
)

// Preprocessor is one named, scheduled rewrite pass.
type Preprocessor struct {
	Kind Kind
	Name string
	Fn   func(text string, consts map[string]float64, declared map[string]system.DeclaredVariable) (string, error)
}

// maxIterations bounds an UntilStable pass against a rewrite rule that
// never converges; spec.md §9's design notes call for a safety bound here.
const maxIterations = 1024

// ErrDiverged is returned when an UntilStable preprocessor fails to reach
// a fixed point within maxIterations passes.
var ErrDiverged = errors.New("preprocess: did not converge")

// Run applies pp to text in order, threading a shared consts and declared
// map through every pass, and returns the final text plus those maps.
func Run(text string, pp []Preprocessor) (string, map[string]float64, map[string]system.DeclaredVariable, error) {
	consts := make(map[string]float64)
	declared := make(map[string]system.DeclaredVariable)

	for _, p := range pp {
		var err error
		switch p.Kind {
		case Once:
			text, err = p.Fn(text, consts, declared)
		case UntilStable:
			text, err = runUntilStable(p, text, consts, declared)
		default:
			err = fmt.Errorf("preprocess.Run(%s): unknown kind %d", p.Name, p.Kind)
		}
		if err != nil {
			return "", nil, nil, fmt.Errorf("preprocess.Run(%s): %w", p.Name, err)
		}
	}

	return text, consts, declared, nil
}

func runUntilStable(p Preprocessor, text string, consts map[string]float64, declared map[string]system.DeclaredVariable) (string, error) {
	for i := 0; i < maxIterations; i++ {
		next, err := p.Fn(text, consts, declared)
		if err != nil {
			return "", err
		}
		if next == text {
			return text, nil
		}
		text = next
	}

	return "", fmt.Errorf("%s: %w", p.Name, ErrDiverged)
}

// Standard returns the fixed schedule from spec.md §4.8, in order:
// comments, const_values, domains, guess_values (all Once), then
// conditionals (UntilStable).
func Standard() []Preprocessor {
	return []Preprocessor{
		{Kind: Once, Name: "comments", Fn: stripComments},
		{Kind: Once, Name: "const_values", Fn: constValues},
		{Kind: Once, Name: "domains", Fn: domains},
		{Kind: Once, Name: "guess_values", Fn: guessValues},
		{Kind: UntilStable, Name: "conditionals", Fn: conditionals},
	}
}
