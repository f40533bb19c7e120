// Command nexsys2 solves one or more Nexsys2 DSL files and prints the
// resulting variable assignments as "name=value" lines, one per variable,
// sorted by name within each file for deterministic output.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	nexsys2 "github.com/nexsys2-lang/nexsys2"
	"github.com/nexsys2-lang/nexsys2/pipeline"
	"github.com/nexsys2-lang/nexsys2/preprocess"
	"github.com/nexsys2-lang/nexsys2/system"

	"gopkg.in/yaml.v3"
)

func main() {
	verbose := flag.Bool("v", false, "trace solver pipeline decisions to stderr")
	declarePath := flag.String("declare", "", "path to a YAML side-file of variable guesses/domains")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: nexsys2 [-v] [--declare path.yaml] FILE...")
		os.Exit(1)
	}

	seed, err := loadDeclareFile(*declarePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		if err := solveFile(path, seed, *verbose); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func solveFile(path string, seed map[string]system.DeclaredVariable, verbose bool) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("nexsys2: %s: %w", path, err)
	}

	opts := traceOption(path, verbose)
	result, err := nexsys2.SolveFull(string(text), preprocess.Standard(), seed, opts...)
	if err != nil {
		return fmt.Errorf("nexsys2: %s: %w", path, err)
	}

	printSorted(result)

	return nil
}

func traceOption(path string, verbose bool) []pipeline.Option {
	if !verbose {
		return nil
	}
	return []pipeline.Option{pipeline.WithTrace(func(event string) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, event)
	})}
}

func printSorted(result map[string]float64) {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s=%g\n", name, result[name])
	}
}

type declareFile struct {
	Vars map[string]struct {
		Guess *float64 `yaml:"guess"`
		Min   *float64 `yaml:"min"`
		Max   *float64 `yaml:"max"`
	} `yaml:"vars"`
}

// loadDeclareFile reads an optional YAML side-file of variable
// guesses/domains. An empty path returns an empty map: --declare is
// optional, and the DSL's own `keep`/`guess` directives still apply.
func loadDeclareFile(path string) (map[string]system.DeclaredVariable, error) {
	out := make(map[string]system.DeclaredVariable)
	if path == "" {
		return out, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nexsys2: --declare %s: %w", path, err)
	}

	var df declareFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("nexsys2: --declare %s: %w", path, err)
	}

	for name, v := range df.Vars {
		d := system.DefaultDeclared()
		if v.Guess != nil {
			d.Guess = *v.Guess
		}
		if v.Min != nil {
			d.Min = *v.Min
		}
		if v.Max != nil {
			d.Max = *v.Max
		}
		out[name] = d
	}

	return out, nil
}
