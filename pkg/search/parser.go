// Package search implements the tracker's query DSL: a small,
// regex-driven term extractor that turns a free-form query string into
// structured filters, plus an ent predicate builder (see builder.go)
// that turns those filters into a ticket query.
package search

import (
	"regexp"
	"strings"
)

// Term patterns, tried in order against whatever of the query string
// hasn't yet been consumed by an earlier pattern. Quoted forms are tried
// first so a quoted value is never re-split by the unquoted patterns.
var (
	termPropertyQuoted   = regexp.MustCompile(`(!?)(\w+):"(.+?)"`)
	termPropertyUnquoted = regexp.MustCompile(`(!?)(\w+):([~\w.-]+)`)
	termSearchQuoted     = regexp.MustCompile(`"(.+?)"`)
	termSearchUnquoted   = regexp.MustCompile(`(\S+)`)

	termPatterns = []*regexp.Regexp{
		termPropertyQuoted,
		termPropertyUnquoted,
		termSearchQuoted,
		termSearchUnquoted,
	}
)

// Term is one parsed query term: a property:value pair (negated when
// prefixed with '!'), or a bare free-text word/phrase when Property is
// empty.
type Term struct {
	Property string
	Value    string
	Negate   bool
}

// Terms extracts the search terms from a query string. Each pattern is
// applied repeatedly against the shrinking remainder of the string,
// left to right and pattern by pattern, so "label:bug foo" yields
// [{label bug} {"" foo}] rather than a different term order under a
// single combined pass.
func Terms(query string) []Term {
	var terms []Term
	for _, pattern := range termPatterns {
		remaining := query
		loc := pattern.FindStringSubmatchIndex(remaining)
		for loc != nil {
			terms = append(terms, termFromMatch(pattern, remaining, loc))
			remaining = remaining[:loc[0]] + remaining[loc[1]:]
			loc = pattern.FindStringSubmatchIndex(remaining)
		}
		query = remaining
	}
	return terms
}

func termFromMatch(pattern *regexp.Regexp, s string, loc []int) Term {
	if pattern == termPropertyQuoted || pattern == termPropertyUnquoted {
		negate := s[loc[2]:loc[3]] == "!"
		prop := s[loc[4]:loc[5]]
		value := s[loc[6]:loc[7]]
		return Term{
			Property: strings.ToLower(strings.TrimSpace(prop)),
			Value:    strings.TrimSpace(value),
			Negate:   negate,
		}
	}
	value := s[loc[2]:loc[3]]
	return Term{Value: strings.TrimSpace(value)}
}
