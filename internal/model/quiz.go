package model

// Category selects the topic of a quiz.
type Category string

const (
	CategoryAptitude  Category = "aptitude"
	CategoryReasoning Category = "reasoning"
	CategoryVerbal    Category = "verbal"
	CategoryMixed     Category = "mixed"
)

var AllCategories = []Category{
	CategoryAptitude,
	CategoryReasoning,
	CategoryVerbal,
	CategoryMixed,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Question count bounds accepted for a single quiz.
const (
	MinQuestions     = 10
	MaxQuestions     = 20
	DefaultQuestions = 10
)

// CountInRange reports whether n lies in [MinQuestions, MaxQuestions].
func CountInRange(n int) bool {
	return n >= MinQuestions && n <= MaxQuestions
}

// QuizRequest is a normalised request for a set of questions.
type QuizRequest struct {
	Category Category
	Count    int
}

// NormalizeQuizRequest maps caller input onto a QuizRequest the pipeline
// accepts: unknown quiz types become mixed and out-of-range counts become
// DefaultQuestions.
func NormalizeQuizRequest(quizType string, count int) QuizRequest {
	category := Category(quizType)
	if !category.IsValid() {
		category = CategoryMixed
	}
	if !CountInRange(count) {
		count = DefaultQuestions
	}
	return QuizRequest{Category: category, Count: count}
}
