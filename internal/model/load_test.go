package model

import "testing"

func TestLoadQuestionnaireFile_ShippedDefinition(t *testing.T) {
	t.Parallel()

	quiz, err := LoadQuestionnaireFile("../../questionnaire.json")
	if err != nil {
		t.Fatalf("shipped definition failed to load: %v", err)
	}

	if quiz.Version == "" {
		t.Error("expected a version")
	}
	if len(quiz.Questions) == 0 {
		t.Error("expected questions")
	}

	// Every reachable score must resolve to exactly one band.
	for score := 0; score <= 100; score++ {
		matches := 0
		for _, band := range quiz.ScoreBands {
			if band.Contains(score) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("score %d matched %d bands, want exactly 1", score, matches)
		}
	}
}

func TestLoadQuestionnaireFile_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadQuestionnaireFile("does-not-exist.json"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
