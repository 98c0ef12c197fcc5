// Package query prepares a chart's query text and parameters for
// execution: Sanitize screens raw SQL down to a read-only subset, and
// Defaults/MergeParams build the parameter map from a chart's declared
// variables. Everything here is a pure function with no I/O.
package query

import (
	"regexp"
	"strings"
)

// deniedKeyword matches any mutating, DDL or DCL keyword whose presence
// forces rejection. The match is whole-word and case-insensitive, so
// "created_at" survives while "Create Table" does not.
var deniedKeyword = regexp.MustCompile(`(?i)\b(update|delete|create|truncate|drop|insert|alter|exec|merge|call|grant|revoke|set)\b`)

var whitespace = regexp.MustCompile(`\s+`)

// Sanitize reduces raw SQL to a normalized read-only statement: runs of
// whitespace and newlines collapse to single spaces and one trailing
// statement terminator is stripped. It returns ok=false when there is no
// executable query; an empty input and a rejected one collapse into the
// same outcome, so callers cannot tell "nothing configured" from
// "rejected as unsafe".
//
// This is an exclusion filter, not a parser. It guarantees the result
// contains none of the denied keywords or comment markers; it does not
// guarantee the result is syntactically a SELECT.
func Sanitize(raw string) (string, bool) {
	q := strings.TrimSpace(whitespace.ReplaceAllString(raw, " "))
	if q == "" {
		return "", false
	}
	if deniedKeyword.MatchString(q) {
		return "", false
	}
	// Comment markers can smuggle statements past the keyword screen.
	if strings.Contains(q, "--") || strings.Contains(q, "/*") || strings.Contains(q, "*/") {
		return "", false
	}
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))
	if q == "" {
		return "", false
	}
	return q, true
}
