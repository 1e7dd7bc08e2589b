package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/emberwell/assess-api/internal/model"
)

// StateStore is the key-value capability session state persists through.
// Get returns (nil, nil) when the key does not exist. Implementations
// must return stored values byte-identical to what Set received.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Logical fields persisted per session, one blob each, mirroring the
// one-blob-per-field layout quiz clients already use.
const (
	fieldAnswers = "answers"
	fieldProfile = "profile"
	fieldStep    = "step"
)

// SessionServiceConfig holds dependencies for the session service
type SessionServiceConfig struct {
	Questionnaire *model.Questionnaire
	Store         StateStore
	Scoring       *ScoringService
	Profiles      *ProfileService
}

// SessionService orchestrates one wizard session: it persists in-progress
// answers, profile, and step through the injected store, and feeds the
// pure scoring and profile services when a result is requested. The
// scoring engine itself never touches storage.
type SessionService struct {
	quiz     *model.Questionnaire
	store    StateStore
	scoring  *ScoringService
	profiles *ProfileService
}

// NewSessionService creates a new session service
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	return &SessionService{
		quiz:     cfg.Questionnaire,
		store:    cfg.Store,
		scoring:  cfg.Scoring,
		profiles: cfg.Profiles,
	}
}

// stateKey namespaces a session field by questionnaire version, so state
// saved against one revision is invisible to the next.
func (s *SessionService) stateKey(sessionID, field string) string {
	return fmt.Sprintf("quiz:%s:%s:%s", s.quiz.Version, sessionID, field)
}

// Start opens a fresh session and returns its id.
func (s *SessionService) Start(ctx context.Context) (string, error) {
	sessionID := uuid.New().String()
	if err := s.SaveStep(ctx, sessionID, 0); err != nil {
		return "", err
	}
	return sessionID, nil
}

// SaveAnswer records the chosen letter for a question, validating that
// the question exists and currently offers that letter.
func (s *SessionService) SaveAnswer(ctx context.Context, sessionID, questionID, letter string) error {
	question, ok := s.quiz.QuestionByID(questionID)
	if !ok {
		return ErrQuestionNotFound
	}
	if _, ok := question.OptionByLetter(letter); !ok {
		return ErrInvalidOption
	}

	answers, err := s.Answers(ctx, sessionID)
	if err != nil {
		return err
	}
	answers[questionID] = letter
	return s.put(ctx, sessionID, fieldAnswers, answers)
}

// Answers loads the session's recorded answers. A session with nothing
// recorded yields an empty, non-nil map.
func (s *SessionService) Answers(ctx context.Context, sessionID string) (model.Answers, error) {
	answers := model.Answers{}
	if err := s.get(ctx, sessionID, fieldAnswers, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// SaveProfile persists the session's profile inputs as given. The profile
// is an opaque bag to the engine; no validation or clamping happens here.
func (s *SessionService) SaveProfile(ctx context.Context, sessionID string, profile model.ProfileState) error {
	return s.put(ctx, sessionID, fieldProfile, profile)
}

// Profile loads the session's profile inputs.
func (s *SessionService) Profile(ctx context.Context, sessionID string) (model.ProfileState, error) {
	var profile model.ProfileState
	if err := s.get(ctx, sessionID, fieldProfile, &profile); err != nil {
		return model.ProfileState{}, err
	}
	return profile, nil
}

// SaveStep persists the wizard step the session is on.
func (s *SessionService) SaveStep(ctx context.Context, sessionID string, step int) error {
	if step < 0 {
		return ErrInvalidStep
	}
	return s.put(ctx, sessionID, fieldStep, step)
}

// Step loads the wizard step the session is on.
func (s *SessionService) Step(ctx context.Context, sessionID string) (int, error) {
	var step int
	if err := s.get(ctx, sessionID, fieldStep, &step); err != nil {
		return 0, err
	}
	return step, nil
}

// State snapshots the whole session, including the derived profile.
func (s *SessionService) State(ctx context.Context, sessionID string) (*model.SessionState, error) {
	answers, err := s.Answers(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Profile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	step, err := s.Step(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &model.SessionState{
		Answers: answers,
		Profile: profile,
		Derived: s.profiles.Derive(profile),
		Step:    step,
	}, nil
}

// Progress reports how far the session is through its route's questions.
func (s *SessionService) Progress(ctx context.Context, sessionID string) (*model.QuizProgress, error) {
	answers, err := s.Answers(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Profile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	route := s.profiles.Derive(profile).Route

	eligible := s.scoring.EligibleQuestions(s.quiz, route)
	byCategory := make(map[string]int)
	answeredCount := 0
	for _, question := range eligible {
		if _, ok := answers[question.ID]; ok {
			answeredCount++
			byCategory[question.CategoryID]++
		}
	}

	return &model.QuizProgress{
		Route:          route,
		TotalQuestions: len(eligible),
		AnsweredCount:  answeredCount,
		ByCategory:     byCategory,
		Complete:       answeredCount == len(eligible),
	}, nil
}

// Result derives the session's route from its stored profile and scores
// its stored answers.
func (s *SessionService) Result(ctx context.Context, sessionID string) (*model.ScoreResult, error) {
	answers, err := s.Answers(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Profile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	route := s.profiles.Derive(profile).Route

	return s.scoring.Score(s.quiz, answers, route)
}

// Reset discards all persisted state for the session.
func (s *SessionService) Reset(ctx context.Context, sessionID string) error {
	for _, field := range []string{fieldAnswers, fieldProfile, fieldStep} {
		if err := s.store.Delete(ctx, s.stateKey(sessionID, field)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SessionService) get(ctx context.Context, sessionID, field string, v any) error {
	data, err := s.store.Get(ctx, s.stateKey(sessionID, field))
	if err != nil {
		return fmt.Errorf("load session %s: %w", field, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode session %s: %w", field, err)
	}
	return nil
}

func (s *SessionService) put(ctx context.Context, sessionID, field string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", field, err)
	}
	if err := s.store.Set(ctx, s.stateKey(sessionID, field), data); err != nil {
		return fmt.Errorf("save session %s: %w", field, err)
	}
	return nil
}
