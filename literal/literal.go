// Package literal rewrites a symbolic boolean expression into conventional
// literal notation: complement as a trailing apostrophe, AND as ".", OR as
// " + ". It performs no boolean reasoning.
//
//	(~B & ~D) | (B & D)   →   (B'.D') + (B.D)
//	(B | ~D) & (~B | D)   →   (B + D').(B' + D)
package literal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/crillab/gophersat/bf"
)

// ErrFormatMismatch indicates the input or output uses a spelling outside
// the known symbol set.
var ErrFormatMismatch = errors.New("literal: unrecognized expression spelling")

// Input spellings.
const (
	negation    = "~"
	conjunction = " & "
	disjunction = " | "
	trueText    = "True"
	falseText   = "False"
)

// Output spellings.
const (
	complement = "'"
	product    = "."
	sum        = " + "
)

// ToLiteralForm rewrites "~V" to "V'" for every variable name, " & " to ".",
// " | " to " + " and the constants True/False to 1/0. Spellings it does not
// recognise are left untouched.
func ToLiteralForm(expr string, vars []string) string {
	out := expr
	for _, v := range byLength(vars) {
		out = strings.ReplaceAll(out, negation+v, v+complement)
	}
	out = strings.ReplaceAll(out, conjunction, product)
	out = strings.ReplaceAll(out, disjunction, sum)
	switch out {
	case trueText:
		return "1"
	case falseText:
		return "0"
	}

	return out
}

// ToLiteralFormStrict is ToLiteralForm with validation. The input must use
// only the given variables, "~", "&", "|", parentheses and True/False, and
// must parse as a formula; the output must contain only variables,
// apostrophes, ".", "+", parentheses, 0 and 1. Any violation returns an
// error wrapping ErrFormatMismatch.
func ToLiteralFormStrict(expr string, vars []string) (string, error) {
	known := make(map[string]bool, len(vars)+2)
	for _, v := range vars {
		known[v] = true
	}
	known[trueText], known[falseText] = true, true

	if err := checkTokens(expr, known, "~&|()"); err != nil {
		return "", fmt.Errorf("%w: input: %v", ErrFormatMismatch, err)
	}
	if _, err := Parse(expr); err != nil {
		return "", fmt.Errorf("%w: input: %v", ErrFormatMismatch, err)
	}

	out := ToLiteralForm(expr, vars)
	outKnown := make(map[string]bool, len(vars)+2)
	for _, v := range vars {
		outKnown[v] = true
	}
	outKnown["0"], outKnown["1"] = true, true
	if err := checkTokens(out, outKnown, "'.+()"); err != nil {
		return "", fmt.Errorf("%w: output %q: %v", ErrFormatMismatch, out, err)
	}

	return out, nil
}

// Parse reads the symbolic spelling into a gophersat formula.
// True and False parse as constants.
func Parse(expr string) (bf.Formula, error) {
	switch strings.TrimSpace(expr) {
	case trueText:
		return bf.True, nil
	case falseText:
		return bf.False, nil
	}
	f, err := bf.Parse(strings.NewReader(strings.ReplaceAll(expr, negation, "^")))
	if err != nil {
		return nil, err
	}

	return f, nil
}

// checkTokens accepts identifiers present in idents, any rune in ops and
// whitespace. Anything else is reported.
func checkTokens(s string, idents map[string]bool, ops string) error {
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r) || strings.ContainsRune(ops, r):
			i++
		case isIdent(r):
			j := i
			for j < len(rs) && isIdent(rs[j]) {
				j++
			}
			if id := string(rs[i:j]); !idents[id] {
				return fmt.Errorf("unknown identifier %q at %d", id, i)
			}
			i = j
		default:
			return fmt.Errorf("unexpected %q at %d", r, i)
		}
	}

	return nil
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// byLength orders names longest first so "~AB" is rewritten before "~A".
func byLength(vars []string) []string {
	out := append([]string(nil), vars...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })

	return out
}
