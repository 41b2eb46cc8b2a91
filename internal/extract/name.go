// Package extract pulls structured entities (employee names, dates, leave
// types, expense categories, amounts) out of a raw utterance. Every
// extractor is a deterministic heuristic over the lower-cased input; none
// of them tokenizes or parses grammar.
package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xtreme16/asri/internal/store"
)

var titleCaser = cases.Title(language.Indonesian)

// Capitalize title-cases each whitespace-separated token for display.
func Capitalize(s string) string {
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}

// Name returns the first employee, in roster order, whose full name or
// first name appears as a substring of the utterance.
func Name(utterance string, employees []store.Employee) (store.Employee, bool) {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	for _, emp := range employees {
		full := strings.ToLower(strings.TrimSpace(emp.Name))
		if full == "" {
			continue
		}
		if strings.Contains(lower, full) {
			return emp, true
		}
		first := strings.Fields(full)[0]
		if strings.Contains(lower, first) {
			return emp, true
		}
	}
	return store.Employee{}, false
}

// EarliestName returns the employee whose name match starts earliest in the
// utterance. Both the full name and the bare first name count as matches.
// When two matches start at the same index, roster order wins.
func EarliestName(utterance string, employees []store.Employee) (store.Employee, bool) {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	var best store.Employee
	found := false
	earliest := len(lower) + 1

	for _, emp := range employees {
		full := strings.ToLower(strings.TrimSpace(emp.Name))
		if full == "" {
			continue
		}
		if idx := strings.Index(lower, full); idx >= 0 && idx < earliest {
			earliest = idx
			best = emp
			found = true
		}
		first := strings.Fields(full)[0]
		if idx := strings.Index(lower, first); idx >= 0 && idx < earliest {
			earliest = idx
			best = emp
			found = true
		}
	}
	return best, found
}
