package model

// Answers maps question id to the chosen option letter. Keys not present
// are unanswered; keys referencing questions the definition no longer has
// are ignored by scoring.
type Answers map[string]string

// SessionState is a snapshot of one wizard session's persisted state.
type SessionState struct {
	Answers Answers        `json:"answers"`
	Profile ProfileState   `json:"profile"`
	Derived DerivedProfile `json:"derived"`
	Step    int            `json:"step"`
}

// QuizProgress reports how far a session has progressed through its
// route's eligible questions.
type QuizProgress struct {
	Route          Route          `json:"route"`
	TotalQuestions int            `json:"total_questions"`
	AnsweredCount  int            `json:"answered_count"`
	ByCategory     map[string]int `json:"by_category"`
	Complete       bool           `json:"complete"`
}
