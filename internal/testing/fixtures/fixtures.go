package fixtures

import (
	"testing"

	"github.com/emberwell/assess-api/internal/model"
)

// rawQuestionnaire is a complete definition in the published wire format.
const rawQuestionnaire = `{
  "version": "2024-09",
  "letterPoints": {"a": 0, "b": 1, "c": 2, "d": 3, "e": 4, "f": 5, "g": 6, "h": 7},
  "scoreBands": [
    {"min": 0, "max": 24, "band": "on_track", "label": "On Track", "blurb": "Your answers suggest solid foundations."},
    {"min": 25, "max": 49, "band": "emerging", "label": "Emerging Risk", "blurb": "A few areas deserve attention."},
    {"min": 50, "max": 74, "band": "elevated", "label": "Elevated Risk", "blurb": "Several areas are working against you."},
    {"min": 75, "max": 100, "band": "high", "label": "High Risk", "blurb": "Your answers point to compounding strain."}
  ],
  "categories": [
    {"id": "sleep", "label": "Sleep"},
    {"id": "nutrition", "label": "Nutrition"},
    {"id": "movement", "label": "Movement"},
    {"id": "stress", "label": "Stress"},
    {"id": "cycle", "label": "Cycle Health"}
  ],
  "categoryWeights": {
    "male": {"sleep": 30, "nutrition": 30, "movement": 20, "stress": 20},
    "female": {"sleep": 25, "nutrition": 25, "movement": 15, "stress": 15, "cycle": 20}
  },
  "profile": {
    "fields": [
      {"id": "age_bracket", "label": "Age", "type": "select", "options": ["under_30", "30_44", "45_59", "60_plus"]},
      {"id": "menstruates", "label": "Do you menstruate?", "type": "select", "options": ["yes", "no"]},
      {"id": "height", "label": "Height", "type": "number"},
      {"id": "weight", "label": "Weight", "type": "number"},
      {"id": "waist", "label": "Waist", "type": "number"}
    ]
  },
  "questions": [
    {
      "id": "q_sleep_hours",
      "appliesTo": "all",
      "categoryId": "sleep",
      "text": "How many hours do you usually sleep?",
      "options": [
        {"letter": "a", "title": "7-9 hours", "points": 0, "context": "You protect your sleep window."},
        {"letter": "c", "title": "6-7 hours", "points": 2, "context": "Slightly short most nights."},
        {"letter": "h", "title": "Under 5 hours", "points": 7, "context": "Chronic short sleep."}
      ]
    },
    {
      "id": "q_sleep_quality",
      "appliesTo": "all",
      "categoryId": "sleep",
      "withinCategoryWeight": {"male": 2, "female": 2},
      "text": "How rested do you feel on waking?",
      "options": [
        {"letter": "a", "title": "Refreshed", "points": 0, "context": ""},
        {"letter": "e", "title": "Groggy most days", "points": 4, "context": "Waking unrested."},
        {"letter": "h", "title": "Exhausted", "points": 7, "context": "Sleep is not restoring you."}
      ]
    },
    {
      "id": "q_veg_servings",
      "appliesTo": "all",
      "categoryId": "nutrition",
      "text": "How many vegetable servings do you eat daily?",
      "options": [
        {"letter": "a", "title": "Five or more", "points": 0, "context": ""},
        {"letter": "d", "title": "Two or three", "points": 3, "context": "Room to add plants."},
        {"letter": "h", "title": "Rarely any", "points": 7, "context": "Very low intake."}
      ]
    },
    {
      "id": "q_exercise",
      "appliesTo": "all",
      "categoryId": "movement",
      "text": "How often do you exercise?",
      "options": [
        {"letter": "a", "title": "Most days", "points": 0, "context": ""},
        {"letter": "h", "title": "Never", "points": 7, "context": "Sedentary pattern."}
      ]
    },
    {
      "id": "q_stress_level",
      "appliesTo": "all",
      "categoryId": "stress",
      "text": "How would you rate your day-to-day stress?",
      "options": [
        {"letter": "a", "title": "Low", "points": 0, "context": ""},
        {"letter": "e", "title": "High", "points": 4, "context": "Sustained pressure."},
        {"letter": "h", "title": "Overwhelming", "points": 7, "context": "Stress is running the show."}
      ]
    },
    {
      "id": "q_cycle_regular",
      "appliesTo": "female",
      "categoryId": "cycle",
      "text": "How regular is your cycle?",
      "options": [
        {"letter": "a", "title": "Regular", "points": 0, "context": ""},
        {"letter": "h", "title": "Very irregular or absent", "points": 7, "context": "Worth discussing with a clinician."}
      ]
    },
    {
      "id": "q_strength_training",
      "appliesTo": "male",
      "categoryId": "movement",
      "text": "Do you do any strength training?",
      "options": [
        {"letter": "a", "title": "Twice a week or more", "points": 0, "context": ""},
        {"letter": "h", "title": "None", "points": 7, "context": "No resistance work."}
      ]
    }
  ]
}`

// RawQuestionnaire returns the fixture definition in wire format.
func RawQuestionnaire() []byte {
	return []byte(rawQuestionnaire)
}

// Questionnaire parses the fixture definition, failing the test if it
// does not validate.
func Questionnaire(t *testing.T) *model.Questionnaire {
	t.Helper()
	q, err := model.ParseQuestionnaire(RawQuestionnaire())
	if err != nil {
		t.Fatalf("fixture questionnaire failed to parse: %v", err)
	}
	return q
}
