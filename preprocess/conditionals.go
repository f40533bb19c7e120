package preprocess

import (
	"regexp"
	"strings"

	"github.com/nexsys2-lang/nexsys2/system"
)

// conditionalPattern matches one "if [ A OP B ] ... else ... end" block,
// lazily so it stops at the first "end" rather than the last.
var conditionalPattern = regexp.MustCompile(
	`(?is)if\s*\[\s*(.*?)\s*(==|<=|>=|!=|<|>)\s*(.*?)\s*\]\s*(.*?)\s*else\s*(.*?)\s*end`,
)

// comparisonCode maps a comparison operator to the numeric code symtab's
// "if" builtin expects (spec.md §4.8).
var comparisonCode = map[string]string{
	"==": "1", "<=": "2", ">=": "3", "<": "4", ">": "5", "!=": "6",
}

// equationLineInIfBlock matches a line that is an equation (contains '=')
// rather than part of the if/else construct itself (no <, >, [, ]).
var equationLineInIfBlock = regexp.MustCompile(`=`)
var ifConstructChars = regexp.MustCompile(`[<>\[\]]`)

// conditionals rewrites multi-line if/else blocks into single-line
// `if(A, code, B, true_expr, false_expr) = 0` calls, per spec.md §4.8's
// item 5. It rewrites one block per call and is run to a fixed point, so
// sequential blocks in the same text all get rewritten. Nested blocks are
// not supported: the lazy pattern pairs an outer "if" with the inner
// block's "else" and "end".
func conditionals(text string, _ map[string]float64, _ map[string]system.DeclaredVariable) (string, error) {
	loc := conditionalPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, nil
	}
	groups := make([]string, 6)
	for i := 0; i < 6; i++ {
		if loc[2*i] < 0 {
			continue
		}
		groups[i] = text[loc[2*i]:loc[2*i+1]]
	}

	a, op, b, trueBranch, falseBranch := groups[1], groups[2], groups[3], groups[4], groups[5]
	code, ok := comparisonCode[op]
	if !ok {
		code = "0"
	}

	replacement := "if(" + stripWhitespace(a) + "," + code + "," + stripWhitespace(b) + "," +
		stripWhitespace(branchToExpr(trueBranch)) + "," + stripWhitespace(branchToExpr(falseBranch)) + ")=0"

	return text[:loc[0]] + replacement + text[loc[1]:], nil
}

// branchToExpr converts a branch body that is itself an equation
// ("lhs = rhs", containing '=' but none of < > [ ]) into the expression
// "lhs-(rhs)" whose root is zero exactly when the equation holds; a
// branch that is already a bare expression passes through unchanged.
func branchToExpr(body string) string {
	body = strings.TrimSpace(body)
	if !equationLineInIfBlock.MatchString(body) || ifConstructChars.MatchString(body) {
		return body
	}
	parts := strings.SplitN(body, "=", 2)
	if len(parts) != 2 {
		return body
	}
	return parts[0] + "-(" + parts[1] + ")"
}

func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
