package model

// ScoreResult is the outcome of scoring a session's answers. It is
// produced fresh on every scoring call and carries no identity.
type ScoreResult struct {
	// Score is the final weighted score, clamped and rounded to 0-100.
	Score int `json:"score"`
	// Band is the score band covering Score.
	Band ScoreBand `json:"band"`
	// TopDrivers are the up-to-3 categories contributing most to the
	// score, ordered by descending contribution.
	TopDrivers []TopDriver `json:"top_drivers"`
	// AnswerContexts is the audit trail: one entry per answered in-route
	// question, in question order.
	AnswerContexts []AnswerContext `json:"answer_contexts"`
}

// TopDriver names a category and its weighted contribution to the score.
// Pct is the pre-renormalization contribution, so driver percentages for
// a partially answered quiz may not sum to the final score.
type TopDriver struct {
	CategoryID string  `json:"category_id"`
	Label      string  `json:"label"`
	Pct        float64 `json:"pct"`
}

// AnswerContext records how one answered question fed the score, pairing
// the chosen option with its coaching copy.
type AnswerContext struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	CategoryID   string `json:"category_id"`
	Letter       string `json:"letter"`
	Title        string `json:"title"`
	Context      string `json:"context"`
}
