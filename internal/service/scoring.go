package service

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/emberwell/assess-api/internal/model"
)

// MaxTopDrivers caps how many contributing categories a result names.
const MaxTopDrivers = 3

// ScoringService computes weighted risk scores from quiz answers.
// It is stateless and safe for concurrent use.
type ScoringService struct{}

// NewScoringService creates a new scoring service
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// EligibleQuestions returns the questions that apply on the given route,
// in definition order. Callers use it to drive pagination and progress.
func (s *ScoringService) EligibleQuestions(q *model.Questionnaire, route model.Route) []model.Question {
	eligible := make([]model.Question, 0, len(q.Questions))
	for _, question := range q.Questions {
		if question.AppliesToRoute(route) {
			eligible = append(eligible, question)
		}
	}
	return eligible
}

// categoryAccum accumulates the weighted point mass for one category while
// walking the answered questions.
type categoryAccum struct {
	id        string
	weighted  float64 // sum of normalized points x question weight
	weightSum float64 // sum of question weights
}

// Score computes the weighted 0-100 score for a session's answers on the
// given route, resolves its band, and ranks the contributing categories.
//
// Anomalies degrade rather than fail: a stored answer letter the question
// no longer offers is skipped, a category id missing from the definition
// falls back to zero weight and its raw id as label. The only errors are
// ErrNoAnswers (nothing answered on this route) and ErrNoBandMatch (band
// coverage gap in the definition).
func (s *ScoringService) Score(q *model.Questionnaire, answers model.Answers, route model.Route) (*model.ScoreResult, error) {
	answered := make([]model.Question, 0, len(q.Questions))
	for _, question := range s.EligibleQuestions(q, route) {
		if _, ok := answers[question.ID]; ok {
			answered = append(answered, question)
		}
	}
	if len(answered) == 0 {
		return nil, ErrNoAnswers
	}

	// Group answered questions by category, preserving first-appearance
	// order so driver ties resolve deterministically.
	var order []string
	accums := make(map[string]*categoryAccum)
	contexts := make([]model.AnswerContext, 0, len(answered))

	for _, question := range answered {
		letter := answers[question.ID]
		opt, ok := question.OptionByLetter(letter)
		if !ok {
			// Stale answer against a newer definition; drop the
			// contribution rather than fail the whole score.
			slog.Warn("stored answer letter no longer offered",
				slog.String("question_id", question.ID),
				slog.String("letter", letter),
			)
			continue
		}

		contexts = append(contexts, model.AnswerContext{
			QuestionID:   question.ID,
			QuestionText: question.Text,
			CategoryID:   question.CategoryID,
			Letter:       letter,
			Title:        opt.Title,
			Context:      opt.Context,
		})

		accum, ok := accums[question.CategoryID]
		if !ok {
			accum = &categoryAccum{id: question.CategoryID}
			accums[question.CategoryID] = accum
			order = append(order, question.CategoryID)
		}

		normalized := opt.Points / model.MaxOptionPoints * 100
		weight := question.RouteWeight(route)
		accum.weighted += normalized * weight
		accum.weightSum += weight
	}

	var (
		weightedFinal   float64
		usedWeightTotal float64
		drivers         []model.TopDriver
	)

	for _, categoryID := range order {
		accum := accums[categoryID]
		if accum.weightSum == 0 {
			// Zero total question weight: the category is excluded, not
			// counted as zero.
			continue
		}
		categoryScore := accum.weighted / accum.weightSum

		label := categoryID
		if category, ok := q.CategoryByID(categoryID); ok {
			label = category.Label
		} else {
			slog.Warn("question references unknown category",
				slog.String("category_id", categoryID),
			)
		}

		weight, _ := q.CategoryWeight(route, categoryID)
		contribution := categoryScore * float64(weight) / 100
		weightedFinal += contribution
		usedWeightTotal += float64(weight)

		drivers = append(drivers, model.TopDriver{
			CategoryID: categoryID,
			Label:      label,
			Pct:        contribution,
		})
	}

	// Renormalize when only part of the weighted categories received an
	// answer, so skipped categories are excluded from the denominator
	// instead of dragging the score toward zero. Weights summing above
	// 100 are a tolerated definition choice and are never scaled down.
	if usedWeightTotal > 0 && usedWeightTotal < 100 {
		weightedFinal = weightedFinal * 100 / usedWeightTotal
	} else if usedWeightTotal == 0 {
		weightedFinal = 0
	}

	// math.Round rounds halves away from zero.
	finalScore := int(math.Round(clamp(weightedFinal, 0, 100)))

	band, ok := resolveBand(q.ScoreBands, finalScore)
	if !ok {
		return nil, fmt.Errorf("%w: score %d", ErrNoBandMatch, finalScore)
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Pct > drivers[j].Pct
	})
	if len(drivers) > MaxTopDrivers {
		drivers = drivers[:MaxTopDrivers]
	}

	return &model.ScoreResult{
		Score:          finalScore,
		Band:           band,
		TopDrivers:     drivers,
		AnswerContexts: contexts,
	}, nil
}

// resolveBand finds the first band containing score.
func resolveBand(bands []model.ScoreBand, score int) (model.ScoreBand, bool) {
	for _, band := range bands {
		if band.Contains(score) {
			return band, true
		}
	}
	return model.ScoreBand{}, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
