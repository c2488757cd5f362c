// Package search composes the free-text listing search predicate.
//
// A query is split on whitespace into terms. A listing matches when every
// term occurs in its title, or every term occurs in its description, both
// compared case-insensitively. A query without terms matches everything.
package search

import (
	"fmt"
	"strings"
)

// Fields searched by Filter.
const (
	TitleColumn       = "title"
	DescriptionColumn = "description"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Terms splits a free-text query on whitespace.
func Terms(query string) []string {
	return strings.Fields(query)
}

// Pattern turns a term into an ILIKE substring pattern, escaping wildcards.
func Pattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Filter returns the SQL predicate for the terms and its arguments.
// Placeholders are numbered from firstArg. Both fields share the same
// arguments. An empty predicate means no filtering.
func Filter(terms []string, firstArg int) (string, []any) {
	if len(terms) == 0 {
		return "", nil
	}

	args := make([]any, 0, len(terms))
	title := make([]string, 0, len(terms))
	description := make([]string, 0, len(terms))
	for i, term := range terms {
		n := firstArg + i
		args = append(args, Pattern(term))
		title = append(title, fmt.Sprintf("%s ILIKE $%d", TitleColumn, n))
		description = append(description, fmt.Sprintf("%s ILIKE $%d", DescriptionColumn, n))
	}

	clause := fmt.Sprintf("((%s) OR (%s))",
		strings.Join(title, " AND "),
		strings.Join(description, " AND "),
	)
	return clause, args
}
