package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func searchFixture() []Question {
	return []Question{
		{ID: 1, Question: "What is the title of the first Harry Potter book?", Answer: "Philosopher's Stone", Category: 5, Difficulty: 2},
		{ID: 2, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 1},
		{ID: 3, Question: "Which planet has the Great Red Spot?", Answer: "Jupiter", Category: 1, Difficulty: 3},
		{ID: 4, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 6, Difficulty: 1},
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	items := searchFixture()

	matched := Search("TITLE", items)

	assert.Len(t, matched, 1)
	assert.Equal(t, 1, matched[0].ID)
}

func TestSearchMatchesQuestionTextOnly(t *testing.T) {
	items := searchFixture()

	// "Jupiter" only appears in an answer
	assert.Empty(t, Search("jupiter", items))
}

func TestSearchPreservesOrder(t *testing.T) {
	items := searchFixture()

	matched := Search("what", items)

	assert.Len(t, matched, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{matched[0].ID, matched[1].ID, matched[2].ID})
}

func TestSearchIsIdempotent(t *testing.T) {
	items := searchFixture()

	once := Search("the", items)
	twice := Search("the", once)

	assert.Equal(t, once, twice)
}

func TestSearchEmptyTermMatchesEverything(t *testing.T) {
	items := searchFixture()

	// empty-term rejection is the handler's job, not the matcher's
	assert.Len(t, Search("", items), len(items))
}

func TestSearchNoMatches(t *testing.T) {
	assert.Empty(t, Search("nonexistent phrase", searchFixture()))
}
