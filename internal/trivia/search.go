package trivia

import "strings"

// Search filters items down to those whose question text contains term,
// case-insensitively. Input order is preserved. Rejecting empty terms is the
// caller's job; an empty term here matches everything.
func Search(term string, items []Question) []Question {
	needle := strings.ToLower(term)
	matched := make([]Question, 0, len(items))
	for _, q := range items {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	return matched
}
