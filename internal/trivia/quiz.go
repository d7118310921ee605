package trivia

import "math/rand/v2"

// Eligible returns the questions from pool whose ids are absent from
// previous, preserving pool order.
func Eligible(pool []Question, previous []int) []Question {
	asked := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}
	eligible := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := asked[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	return eligible
}

// NextQuestion picks one question uniformly at random from pool, excluding
// ids listed in previous. The second return is false when the eligible set
// is empty; callers must treat that as "pool exhausted", not as an error.
func NextQuestion(pool []Question, previous []int) (Question, bool) {
	eligible := Eligible(pool, previous)
	if len(eligible) == 0 {
		return Question{}, false
	}
	return eligible[rand.IntN(len(eligible))], true
}
