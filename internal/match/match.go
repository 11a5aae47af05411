// Package match holds the string tests the hook policies are built from.
// None of them treat caller-supplied text as a pattern.
package match

import (
	"regexp"

	"github.com/sqve/ticketguard/internal/errors"
)

// ticketPattern is exactly two word characters, a hyphen and a run of digits
// at the start of a branch name, e.g. "DA-123".
var ticketPattern = regexp.MustCompile(`^(\w{2}-\d+)`)

// MatchesExactly reports whether text equals literal in its entirety.
func MatchesExactly(text, literal string) (bool, error) {
	re, err := compileLiteral(`\A`, literal, `\z`)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// StartsWith reports whether text begins with the literal prefix.
func StartsWith(text, prefix string) (bool, error) {
	re, err := compileLiteral(`\A`, prefix, "")
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// ExtractTicket returns the ticket identifier a branch name starts with.
func ExtractTicket(branch string) (string, bool) {
	m := ticketPattern.FindStringSubmatch(branch)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func compileLiteral(before, literal, after string) (*regexp.Regexp, error) {
	pattern := before + regexp.QuoteMeta(literal) + after
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.ErrPatternCompile(pattern, err)
	}
	return re, nil
}
