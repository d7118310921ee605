package trivia

import "errors"

// ErrNotFound marks a requested record as absent. Repositories return it in
// place of driver-specific no-rows errors so callers can switch on the
// outcome explicitly.
var ErrNotFound = errors.New("not found")

// ErrUnknownCategory marks a write that references a category id with no
// backing record.
var ErrUnknownCategory = errors.New("unknown category")

// AllCategories is the quiz selector's sentinel meaning "no category filter".
const AllCategories = 0

// Question is a single trivia question as stored and served.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
