package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ParseQuestionnaire decodes and validates a raw JSON questionnaire
// definition. It is the only way to obtain a *Questionnaire from untrusted
// input; on failure it returns a *ValidationError describing every
// structural complaint found.
func ParseQuestionnaire(data []byte) (*Questionnaire, error) {
	var q Questionnaire
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, &ValidationError{Issues: []FieldError{decodeIssue(err)}}
	}
	if issues := q.validate(); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return &q, nil
}

// DecodeQuestionnaire validates an already-decoded definition blob, such
// as the output of a YAML parser. The value is round-tripped through JSON
// so both entry points share one set of shape checks.
func DecodeQuestionnaire(v any) (*Questionnaire, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &ValidationError{Issues: []FieldError{{
			Field:   "questionnaire",
			Message: fmt.Sprintf("definition is not a plain data structure: %v", err),
		}}}
	}
	return ParseQuestionnaire(data)
}

// decodeIssue turns a json decoding error into a field-level complaint.
func decodeIssue(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "questionnaire"
		}
		return FieldError{
			Field:   field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return FieldError{Field: "questionnaire", Message: err.Error()}
}

func (q *Questionnaire) validate() []FieldError {
	var issues []FieldError
	add := func(field, format string, args ...any) {
		issues = append(issues, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if q.Version == "" {
		add("version", "is required")
	}

	if len(q.LetterPoints) == 0 {
		add("letterPoints", "is required")
	}
	for letter := range q.LetterPoints {
		if !IsOptionLetter(letter) {
			add("letterPoints", "unknown option letter %q", letter)
		}
	}

	if len(q.ScoreBands) == 0 {
		add("scoreBands", "at least one band is required")
	}
	for i, b := range q.ScoreBands {
		field := fmt.Sprintf("scoreBands[%d]", i)
		if b.Band == "" {
			add(field+".band", "is required")
		}
		if b.Label == "" {
			add(field+".label", "is required")
		}
		if b.Min > b.Max {
			add(field, "min %d exceeds max %d", b.Min, b.Max)
		}
	}

	seenCategories := make(map[string]bool)
	for i, c := range q.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		switch {
		case c.ID == "":
			add(field+".id", "is required")
		case seenCategories[c.ID]:
			add(field+".id", "duplicate category id %q", c.ID)
		default:
			seenCategories[c.ID] = true
		}
		if c.Label == "" {
			add(field+".label", "is required")
		}
	}

	for route := range q.CategoryWeights {
		if route != RouteMale && route != RouteFemale {
			add("categoryWeights", "unknown route %q", route)
		}
	}

	for i, f := range q.Profile.Fields {
		field := fmt.Sprintf("profile.fields[%d]", i)
		if f.ID == "" {
			add(field+".id", "is required")
		}
		if f.Type == "" {
			add(field+".type", "is required")
		}
	}

	if len(q.Questions) == 0 {
		add("questions", "at least one question is required")
	}
	seenQuestions := make(map[string]bool)
	for i, question := range q.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		switch {
		case question.ID == "":
			add(field+".id", "is required")
		case seenQuestions[question.ID]:
			add(field+".id", "duplicate question id %q", question.ID)
		default:
			seenQuestions[question.ID] = true
		}
		switch question.AppliesTo {
		case AppliesAll, AppliesMale, AppliesFemale:
		default:
			add(field+".appliesTo", "must be one of all, male, female; got %q", question.AppliesTo)
		}
		if question.Text == "" {
			add(field+".text", "is required")
		}
		if question.CategoryID == "" {
			add(field+".categoryId", "is required")
		}
		// Intentionally no cross-check of categoryId against categories:
		// published definitions have shipped with dangling references and
		// scoring tolerates them (zero weight, id as label).
		if len(question.Options) == 0 {
			add(field+".options", "at least one option is required")
		}
		for j, opt := range question.Options {
			optField := fmt.Sprintf("%s.options[%d]", field, j)
			if !IsOptionLetter(opt.Letter) {
				add(optField+".letter", "unknown option letter %q", opt.Letter)
			}
			if opt.Points < 0 || opt.Points > MaxOptionPoints {
				add(optField+".points", "must be between 0 and %d, got %v", MaxOptionPoints, opt.Points)
			}
		}
		for route := range question.WithinCategoryWeight {
			if route != RouteMale && route != RouteFemale {
				add(field+".withinCategoryWeight", "unknown route %q", route)
			}
		}
	}

	return issues
}
