package fixtures

import "testing"

func TestFixtureBandsCoverFullScale(t *testing.T) {
	t.Parallel()

	quiz := Questionnaire(t)

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
