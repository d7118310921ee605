package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/udacitrivia/trivia-api/internal/config"
	"github.com/udacitrivia/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", handlers.GetCategories)
	mux.HandleFunc("/categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("/questions", handlers.Questions)
	mux.HandleFunc("/questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("/search", handlers.SearchQuestions)
	mux.HandleFunc("/quizzes", handlers.NextQuizQuestion)

	handler := WithRequestLogging(logger, WithMetrics(WithCORS(cfg.CORS, mux)))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}
