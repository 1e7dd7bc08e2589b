package model

// Route identifies which question subset applies to a session.
// It is derived solely from the menstruation self-report, not from a
// general gender field.
type Route string

const (
	RouteMale   Route = "male"
	RouteFemale Route = "female"
)

// ParseRoute validates a raw route string.
func ParseRoute(s string) (Route, bool) {
	switch Route(s) {
	case RouteMale, RouteFemale:
		return Route(s), true
	}
	return "", false
}

// AppliesTo values for questions.
const (
	AppliesAll    = "all"
	AppliesMale   = "male"
	AppliesFemale = "female"
)

// OptionLetters is the fixed set of answer-letter codes an option may use.
var OptionLetters = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

// IsOptionLetter reports whether s is one of the allowed letter codes.
func IsOptionLetter(s string) bool {
	for _, l := range OptionLetters {
		if s == l {
			return true
		}
	}
	return false
}

// MaxOptionPoints is the top of the fixed per-option point scale.
// Scoring maps [0, MaxOptionPoints] linearly onto [0, 100].
const MaxOptionPoints = 7

// Questionnaire is the validated, immutable quiz definition.
type Questionnaire struct {
	// Version is an opaque revision tag; persisted session state is
	// namespaced by it so stale answers never leak across revisions.
	Version      string             `json:"version"`
	LetterPoints map[string]float64 `json:"letterPoints"`
	ScoreBands   []ScoreBand        `json:"scoreBands"`
	Categories   []Category         `json:"categories"`
	// CategoryWeights holds one weight map per route. Weights are relative
	// proportions on a nominal 100 basis; they are not required to sum to
	// exactly 100.
	CategoryWeights map[Route]map[string]int `json:"categoryWeights"`
	Profile         ProfileSchema            `json:"profile"`
	Questions       []Question               `json:"questions"`
}

// ScoreBand is a labeled inclusive score range.
type ScoreBand struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Band  string `json:"band"`
	Label string `json:"label"`
	Blurb string `json:"blurb"`
}

// Contains reports whether score falls inside the band.
func (b ScoreBand) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

// Category groups related questions under a weighted heading.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProfileSchema describes the optional demographic inputs the wizard
// collects. It is consumed by clients and the profile deriver only;
// scoring never reads it.
type ProfileSchema struct {
	Fields []ProfileField `json:"fields"`
}

// ProfileField is a single demographic input descriptor.
type ProfileField struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// Question is a single quiz question.
type Question struct {
	ID         string `json:"id"`
	AppliesTo  string `json:"appliesTo"`
	CategoryID string `json:"categoryId"`
	Text       string `json:"text"`
	// Acute flags symptoms that warrant immediate attention; informational
	// only, scoring ignores it.
	Acute bool `json:"acute,omitempty"`
	// WithinCategoryWeight weights this question against its category
	// siblings, per route. A route absent from the map weighs 1.
	WithinCategoryWeight map[Route]float64 `json:"withinCategoryWeight,omitempty"`
	Options              []Option          `json:"options"`
}

// Option is one selectable answer for a question.
type Option struct {
	Letter string `json:"letter"`
	Title  string `json:"title"`
	// Points is on the fixed 0-7 scale; see MaxOptionPoints.
	Points  float64 `json:"points"`
	Context string  `json:"context"`
}

// AppliesToRoute reports whether the question is eligible on the route.
func (q Question) AppliesToRoute(route Route) bool {
	return q.AppliesTo == AppliesAll || q.AppliesTo == string(route)
}

// OptionByLetter finds the option carrying the given letter code.
func (q Question) OptionByLetter(letter string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Letter == letter {
			return opt, true
		}
	}
	return Option{}, false
}

// RouteWeight returns the question's within-category weight for the route,
// defaulting to 1 when the definition does not set one.
func (q Question) RouteWeight(route Route) float64 {
	if q.WithinCategoryWeight == nil {
		return 1
	}
	w, ok := q.WithinCategoryWeight[route]
	if !ok {
		return 1
	}
	return w
}

// QuestionByID finds a question by id.
func (q *Questionnaire) QuestionByID(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// CategoryByID finds a category by id.
func (q *Questionnaire) CategoryByID(id string) (Category, bool) {
	for _, c := range q.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryWeight returns the route's weight for a category. A category
// missing from the route's weight map weighs 0.
func (q *Questionnaire) CategoryWeight(route Route, categoryID string) (int, bool) {
	weights, ok := q.CategoryWeights[route]
	if !ok {
		return 0, false
	}
	w, ok := weights[categoryID]
	return w, ok
}
