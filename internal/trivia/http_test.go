package trivia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(questions QuestionStore, categories CategoryStore) *http.ServeMux {
	svc := newTestService(questions, categories)
	h := NewHTTPHandlers(svc, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("/categories", h.GetCategories)
	mux.HandleFunc("/categories/{id}/questions", h.QuestionsByCategory)
	mux.HandleFunc("/questions", h.Questions)
	mux.HandleFunc("/questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("/search", h.SearchQuestions)
	mux.HandleFunc("/quizzes", h.NextQuizQuestion)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestGetCategories(t *testing.T) {
	mux := newTestMux(fixtureStores(2))

	rec, _ := doRequest(t, mux, http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"categories":{"1":"Science","2":"Art"}}`, rec.Body.String())
}

func TestGetQuestionsSecondPage(t *testing.T) {
	mux := newTestMux(fixtureStores(15))

	rec, payload := doRequest(t, mux, http.MethodGet, "/questions?page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Len(t, payload["questions"], 5)
	assert.EqualValues(t, 15, payload["total_questions"])
	assert.Nil(t, payload["current_category"])

	first := payload["questions"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 11, first["id"])
}

func TestGetQuestionsDefaultsToFirstPage(t *testing.T) {
	mux := newTestMux(fixtureStores(15))

	rec, payload := doRequest(t, mux, http.MethodGet, "/questions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["questions"], 10)
	assert.Len(t, payload["categories"], 2)
}

func TestGetQuestionsPageBeyondEnd(t *testing.T) {
	mux := newTestMux(fixtureStores(15))

	rec, payload := doRequest(t, mux, http.MethodGet, "/questions?page=10", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.EqualValues(t, 404, payload["error"])
	assert.Equal(t, "resource not found", payload["message"])
}

func TestGetQuestionsRejectsBadPage(t *testing.T) {
	mux := newTestMux(fixtureStores(15))

	rec, payload := doRequest(t, mux, http.MethodGet, "/questions?page=zero", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestDeleteQuestionMissingID(t *testing.T) {
	mux := newTestMux(fixtureStores(3))

	rec, payload := doRequest(t, mux, http.MethodDelete, "/questions/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.EqualValues(t, 404, payload["error"])
}

func TestDeleteQuestionReturnsFirstPage(t *testing.T) {
	mux := newTestMux(fixtureStores(12))

	rec, payload := doRequest(t, mux, http.MethodDelete, "/questions/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.EqualValues(t, 3, payload["deleted"])
	assert.EqualValues(t, 11, payload["total_questions"])
	assert.Len(t, payload["questions"], 10)
}

func TestCreateQuestion(t *testing.T) {
	questions, categories := fixtureStores(4)
	mux := newTestMux(questions, categories)

	rec, payload := doRequest(t, mux, http.MethodPost, "/questions",
		`{"question":"Q","answer":"A","category":1,"difficulty":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.EqualValues(t, 5, payload["created"])
	assert.EqualValues(t, 5, payload["total_questions"])
	assert.Len(t, payload["question"], 5)

	// a subsequent listing reflects the insert
	_, listing := doRequest(t, mux, http.MethodGet, "/questions", "")
	assert.EqualValues(t, 5, listing["total_questions"])
}

func TestCreateQuestionDanglingCategory(t *testing.T) {
	mux := newTestMux(fixtureStores(1))

	rec, payload := doRequest(t, mux, http.MethodPost, "/questions",
		`{"question":"Q","answer":"A","category":42,"difficulty":2}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.EqualValues(t, 422, payload["error"])
}

func TestCreateQuestionMalformedBody(t *testing.T) {
	mux := newTestMux(fixtureStores(1))

	rec, _ := doRequest(t, mux, http.MethodPost, "/questions", `{"question":`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateQuestionMissingText(t *testing.T) {
	mux := newTestMux(fixtureStores(1))

	rec, _ := doRequest(t, mux, http.MethodPost, "/questions",
		`{"answer":"A","category":1,"difficulty":2}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSearchQuestions(t *testing.T) {
	questions := newMemQuestionStore(searchFixture())
	_, categories := fixtureStores(0)
	mux := newTestMux(questions, categories)

	rec, payload := doRequest(t, mux, http.MethodPost, "/search", `{"searchTerm":"title"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["questions"], 1)
	assert.EqualValues(t, 1, payload["total_questions"])
	assert.Nil(t, payload["current_category"])
}

func TestSearchQuestionsEmptyTerm(t *testing.T) {
	mux := newTestMux(fixtureStores(5))

	rec, payload := doRequest(t, mux, http.MethodPost, "/search", `{"searchTerm":""}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.EqualValues(t, 404, payload["error"])
}

func TestSearchQuestionsAbsentTerm(t *testing.T) {
	mux := newTestMux(fixtureStores(5))

	rec, _ := doRequest(t, mux, http.MethodPost, "/search", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchQuestionsNoMatches(t *testing.T) {
	mux := newTestMux(fixtureStores(5))

	rec, payload := doRequest(t, mux, http.MethodPost, "/search", `{"searchTerm":"zebra"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, payload["questions"])
	assert.EqualValues(t, 0, payload["total_questions"])
}

func TestQuestionsByCategory(t *testing.T) {
	mux := newTestMux(fixtureStores(10))

	rec, payload := doRequest(t, mux, http.MethodGet, "/categories/1/questions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	current := payload["current_category"].(map[string]any)
	assert.EqualValues(t, 1, current["id"])
	assert.Equal(t, "Science", current["type"])
	for _, raw := range payload["questions"].([]any) {
		assert.EqualValues(t, 1, raw.(map[string]any)["category"])
	}
}

func TestQuestionsByCategoryUnknown(t *testing.T) {
	mux := newTestMux(fixtureStores(10))

	rec, payload := doRequest(t, mux, http.MethodGet, "/categories/42/questions", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.EqualValues(t, 404, payload["error"])
}

func TestQuizNextQuestion(t *testing.T) {
	mux := newTestMux(fixtureStores(6))

	rec, payload := doRequest(t, mux, http.MethodPost, "/quizzes",
		`{"previous_questions":[1,2],"quiz_category":{"id":0,"type":"click"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	question := payload["question"].(map[string]any)
	assert.NotContains(t, []any{float64(1), float64(2)}, question["id"])
}

func TestQuizExhaustedPoolReturnsNull(t *testing.T) {
	// category 1 holds questions 2 and 4 out of four seeded questions
	mux := newTestMux(fixtureStores(4))

	rec, payload := doRequest(t, mux, http.MethodPost, "/quizzes",
		`{"previous_questions":[2,4],"quiz_category":{"id":1,"type":"Science"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	value, present := payload["question"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestQuizMalformedBody(t *testing.T) {
	mux := newTestMux(fixtureStores(4))

	rec, payload := doRequest(t, mux, http.MethodPost, "/quizzes", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 400, payload["error"])
}

func TestQuizMissingCategoryStructure(t *testing.T) {
	mux := newTestMux(fixtureStores(4))

	rec, _ := doRequest(t, mux, http.MethodPost, "/quizzes", `{"previous_questions":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(fixtureStores(2))

	rec, _ := doRequest(t, mux, http.MethodPost, "/categories", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
