package handler

import (
	"context"
	"net/http"

	"github.com/emberwell/assess-api/internal/model"
)

// SessionService is the session capability the handler depends on.
// Declared here so tests can substitute a mock.
type SessionService interface {
	Start(ctx context.Context) (string, error)
	State(ctx context.Context, sessionID string) (*model.SessionState, error)
	SaveAnswer(ctx context.Context, sessionID, questionID, letter string) error
	SaveProfile(ctx context.Context, sessionID string, profile model.ProfileState) error
	SaveStep(ctx context.Context, sessionID string, step int) error
	Progress(ctx context.Context, sessionID string) (*model.QuizProgress, error)
	Result(ctx context.Context, sessionID string) (*model.ScoreResult, error)
	Reset(ctx context.Context, sessionID string) error
}

// SessionHandler serves the quiz session endpoints
type SessionHandler struct {
	sessions SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /v1/sessions - open a new session
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.sessions.Start(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, map[string]string{"session_id": sessionID}, map[string]string{
		"self": "/v1/sessions/" + sessionID,
	})
}

// Get handles GET /v1/sessions/{sessionId} - full session state
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	state, err := h.sessions.State(r.Context(), sessionID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, state, map[string]string{
		"self":     "/v1/sessions/" + sessionID,
		"progress": "/v1/sessions/" + sessionID + "/progress",
		"result":   "/v1/sessions/" + sessionID + "/result",
	})
}

// PutAnswer handles PUT /v1/sessions/{sessionId}/answers/{questionId}
func (h *SessionHandler) PutAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	questionID := r.PathValue("questionId")
	if sessionID == "" || questionID == "" {
		WriteError(w, model.NewBadRequestError("session ID and question ID required"))
		return
	}

	var req struct {
		Letter string `json:"letter"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Letter == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "letter", Message: "letter is required"},
		}))
		return
	}

	if err := h.sessions.SaveAnswer(r.Context(), sessionID, questionID, req.Letter); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// PutProfile handles PUT /v1/sessions/{sessionId}/profile
func (h *SessionHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	var profile model.ProfileState
	if err := DecodeJSON(r, &profile); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.sessions.SaveProfile(r.Context(), sessionID, profile); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// PutStep handles PUT /v1/sessions/{sessionId}/step
func (h *SessionHandler) PutStep(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	var req struct {
		Step int `json:"step"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.sessions.SaveStep(r.Context(), sessionID, req.Step); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// GetProgress handles GET /v1/sessions/{sessionId}/progress
func (h *SessionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	progress, err := h.sessions.Progress(r.Context(), sessionID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, progress, map[string]string{
		"self": "/v1/sessions/" + sessionID + "/progress",
	})
}

// GetResult handles GET /v1/sessions/{sessionId}/result
func (h *SessionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	result, err := h.sessions.Result(r.Context(), sessionID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self": "/v1/sessions/" + sessionID + "/result",
	})
}

// Delete handles DELETE /v1/sessions/{sessionId} - discard a session
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	if err := h.sessions.Reset(r.Context(), sessionID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
