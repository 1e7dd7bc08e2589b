package handler

import (
	"context"
	"net/http"

	"github.com/emberwell/assess-api/internal/model"
	"github.com/emberwell/assess-api/internal/service"
)

// QuizHandler serves the questionnaire definition endpoints
type QuizHandler struct {
	quiz    *model.Questionnaire
	scoring *service.ScoringService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *model.Questionnaire, scoring *service.ScoringService) *QuizHandler {
	return &QuizHandler{quiz: quiz, scoring: scoring}
}

// quizMeta is the definition without its question bank, enough for a
// client to render the wizard shell and profile step.
type quizMeta struct {
	Version    string              `json:"version"`
	ScoreBands []model.ScoreBand   `json:"scoreBands"`
	Categories []model.Category    `json:"categories"`
	Profile    model.ProfileSchema `json:"profile"`
}

// Meta handles GET /v1/quiz - questionnaire metadata
func (h *QuizHandler) Meta(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, quizMeta{
		Version:    h.quiz.Version,
		ScoreBands: h.quiz.ScoreBands,
		Categories: h.quiz.Categories,
		Profile:    h.quiz.Profile,
	}, map[string]string{
		"self":      "/v1/quiz",
		"questions": "/v1/quiz/questions",
	})
}

// ListQuestions handles GET /v1/quiz/questions?route= - questions for a route
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("route")
	route, ok := model.ParseRoute(raw)
	if !ok {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "route", Message: "must be one of male, female"},
		}))
		return
	}

	questions := h.scoring.EligibleQuestions(h.quiz, route)
	WriteCollection(w, http.StatusOK, questions, nil, map[string]string{
		"self": "/v1/quiz/questions?route=" + raw,
	})
}

// Pinger reports whether the backing session store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new health handler. A nil store skips the
// reachability check; the in-memory store has nothing to ping.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health - liveness and store reachability
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"store":  "unreachable",
			})
			return
		}
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
