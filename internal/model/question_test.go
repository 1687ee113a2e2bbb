package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValid(t *testing.T) {
	base := Question{
		Question:      "2 + 2 = ?",
		Options:       []string{"3", "4", "5", "6"},
		CorrectAnswer: "4",
		Explanation:   "Basic addition.",
	}

	tests := []struct {
		name   string
		mutate func(q *Question)
		want   bool
	}{
		{"valid", func(q *Question) {}, true},
		{"empty explanation is allowed", func(q *Question) { q.Explanation = "" }, true},
		{"empty text", func(q *Question) { q.Question = "" }, false},
		{"missing answer", func(q *Question) { q.CorrectAnswer = "" }, false},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, false},
		{"five options", func(q *Question) { q.Options = append(q.Options, "7") }, false},
		{"answer not among options", func(q *Question) { q.CorrectAnswer = "8" }, false},
		{"answer differs in case", func(q *Question) {
			q.Options = []string{"Kind", "Cruel", "Selfish", "Bold"}
			q.CorrectAnswer = "kind"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base.Clone()
			tt.mutate(&q)
			assert.Equal(t, tt.want, q.Valid())
		})
	}
}

func TestQuestionCloneIsIndependent(t *testing.T) {
	q := Question{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"}
	c := q.Clone()
	c.Options[0] = "z"
	assert.Equal(t, "a", q.Options[0])
}

func TestNormalizeQuizRequest(t *testing.T) {
	tests := []struct {
		quizType string
		count    int
		want     QuizRequest
	}{
		{"aptitude", 15, QuizRequest{CategoryAptitude, 15}},
		{"reasoning", 10, QuizRequest{CategoryReasoning, 10}},
		{"verbal", 20, QuizRequest{CategoryVerbal, 20}},
		{"mixed", 5, QuizRequest{CategoryMixed, DefaultQuestions}},
		{"verbal", 21, QuizRequest{CategoryVerbal, DefaultQuestions}},
		{"unknown", 12, QuizRequest{CategoryMixed, 12}},
		{"", 0, QuizRequest{CategoryMixed, DefaultQuestions}},
		{"Aptitude", 10, QuizRequest{CategoryMixed, 10}},
	}

	for _, tt := range tests {
		got := NormalizeQuizRequest(tt.quizType, tt.count)
		assert.Equal(t, tt.want, got, "NormalizeQuizRequest(%q, %d)", tt.quizType, tt.count)
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("history").IsValid())
}
