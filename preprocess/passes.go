package preprocess

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nexsys2-lang/nexsys2/system"
)

// legalVar and legalNum mirror spec.md §4.8's token patterns: a variable
// name and a (possibly signed) number literal.
const (
	legalVar = `[A-Za-z][A-Za-z0-9_]*`
	legalNum = `-?\s?[0-9]+(?:\.[0-9]*)?`
)

var commentPattern = regexp.MustCompile(`//[^\n]*`)

// stripComments removes "// ..." to end of line.
func stripComments(text string, _ map[string]float64, _ map[string]system.DeclaredVariable) (string, error) {
	return commentPattern.ReplaceAllString(text, ""), nil
}

var constPattern = regexp.MustCompile(`(?i)const\s+(` + legalVar + `\s*=\s*` + legalNum + `(?:\s*,\s*` + legalVar + `\s*=\s*` + legalNum + `)*)`)

// constValues matches "const V = N" (and, as a supplement, comma-chained
// "const a = 1, b = 2, ..."), recording each into consts and erasing the
// whole match.
func constValues(text string, consts map[string]float64, _ map[string]system.DeclaredVariable) (string, error) {
	matches := constPattern.FindAllStringSubmatchIndex(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		body := text[m[2]:m[3]]

		for _, clause := range strings.Split(body, ",") {
			parts := strings.SplitN(clause, "=", 2)
			if len(parts) != 2 {
				continue
			}
			name := strings.ToLower(strings.TrimSpace(parts[0]))
			val, err := parseNum(parts[1])
			if err != nil {
				continue
			}
			consts[name] = val
		}

		text = text[:m[0]] + text[m[1]:]
	}

	return text, nil
}

var domainPattern = regexp.MustCompile(`(?i)keep\s+(` + legalVar + `)\s+on\s+\[\s*(` + legalNum + `)\s*,\s*(` + legalNum + `)\s*\]`)

// domains matches "keep V on [min, max]", updating declared[V]'s bounds.
func domains(text string, _ map[string]float64, declared map[string]system.DeclaredVariable) (string, error) {
	return replaceAll(text, domainPattern, func(groups []string) string {
		name := strings.ToLower(groups[1])
		min, errMin := parseNum(groups[2])
		max, errMax := parseNum(groups[3])
		if errMin != nil || errMax != nil {
			return groups[0]
		}
		d, ok := declared[name]
		if !ok {
			d = system.DefaultDeclared()
		}
		d.Min, d.Max = min, max
		declared[name] = d
		return ""
	}), nil
}

var guessPattern = regexp.MustCompile(`(?i)guess\s+(` + legalNum + `)\s+for\s+(` + legalVar + `)`)

// guessValues matches "guess N for V", updating declared[V]'s guess.
func guessValues(text string, _ map[string]float64, declared map[string]system.DeclaredVariable) (string, error) {
	return replaceAll(text, guessPattern, func(groups []string) string {
		name := strings.ToLower(groups[2])
		val, err := parseNum(groups[1])
		if err != nil {
			return groups[0]
		}
		d, ok := declared[name]
		if !ok {
			d = system.DefaultDeclared()
		}
		d.Guess = val
		declared[name] = d
		return ""
	}), nil
}

// replaceAll runs re over text and rewrites each match via fn, which
// receives the full match plus its capture groups (groups[0] is the
// whole match, matching regexp.FindStringSubmatch's convention).
func replaceAll(text string, re *regexp.Regexp, fn func(groups []string) string) string {
	return re.ReplaceAllStringFunc(text, func(whole string) string {
		groups := re.FindStringSubmatch(whole)
		return fn(groups)
	})
}

func parseNum(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), " ", ""), 64)
}
