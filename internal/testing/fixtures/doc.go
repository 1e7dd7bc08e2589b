// Package fixtures provides a shared questionnaire definition for tests.
//
// The fixture is a small but complete definition exercising every
// structural feature: both routes, route-specific questions, per-route
// category weights, within-category question weights, and the full band
// ladder.
//
// # Usage
//
//	quiz := fixtures.Questionnaire(t)
//	result, err := scoring.Score(quiz, answers, model.RouteMale)
//
// Tests that need to exercise the parser directly start from the raw
// bytes instead:
//
//	data := fixtures.RawQuestionnaire()
package fixtures
