package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/udacitrivia/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints of the trivia API.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers over a trivia service.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// GetCategories handles GET /categories.
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// Questions dispatches /questions by method: GET lists a page, POST creates.
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// listQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httperrors.RespondBadRequest(w, "page must be a positive integer")
			return
		}
		page = parsed
	}

	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("page", page).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        result.Questions,
		"categories":       result.Categories,
		"total_questions":  result.Total,
		"current_category": nil,
	})
}

type createQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// createQuestion handles POST /questions.
func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.Question == "" || req.Answer == "" {
		httperrors.RespondUnprocessable(w)
		return
	}

	result, err := h.svc.CreateQuestion(r.Context(), Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			httperrors.RespondUnprocessable(w)
			return
		}
		h.logger.Error().Err(err).Msg("create question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	// The singular "question" key holding the refreshed first page is the
	// wire format the frontend consumes.
	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"created":         result.ID,
		"question":        result.Questions,
		"total_questions": result.Total,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("question_id", id).Msg("delete question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"deleted":         result.ID,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions handles POST /search.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	if req.SearchTerm == "" {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm)
	if err != nil {
		h.logger.Error().Err(err).Msg("search questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": nil,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.QuestionsByCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("category_id", categoryID).Msg("list by category failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        result.Questions,
		"categories":       result.Categories,
		"total_questions":  result.Total,
		"current_category": result.Current,
	})
}

type quizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      *struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
	} `json:"quiz_category"`
}

// NextQuizQuestion handles POST /quizzes.
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, "invalid quiz payload")
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondBadRequest(w, "quiz_category is required")
		return
	}

	question, err := h.svc.NextQuizQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int("category_id", req.QuizCategory.ID).Msg("quiz selection failed")
		httperrors.RespondInternalError(w)
		return
	}

	// An exhausted pool is a legitimate end-of-quiz, reported as a null
	// question rather than an error.
	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
