package model

// OptionCount is the number of options every quiz question carries.
const OptionCount = 4

// Question represents a single multiple-choice quiz question as served to the UI.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Valid reports whether q can be shown to a player: non-empty text, exactly
// OptionCount options and a correct answer that matches one option exactly.
func (q Question) Valid() bool {
	if q.Question == "" || q.CorrectAnswer == "" {
		return false
	}
	if len(q.Options) != OptionCount {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}

// Clone returns a copy of q that shares no memory with it.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	return c
}

// GetQuestionsRequest is the payload for POST /api/questions.
// Both fields are optional; out-of-range values are normalised, not rejected.
type GetQuestionsRequest struct {
	QuizType     string `json:"quiz_type"`
	NumQuestions *int   `json:"num_questions"`
}
