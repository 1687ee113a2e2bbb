package generator

import (
	"fmt"

	"github.com/stemsi/aptify-backend/internal/model"
)

var topicDescriptions = map[model.Category]string{
	model.CategoryAptitude:  "math problems, percentages, ratios, time and work, profit and loss, etc. for BTech students",
	model.CategoryReasoning: "logical reasoning problems, puzzles, sequences, coding-decoding, etc. for BTech students",
	model.CategoryVerbal:    "reading comprehension, synonyms, antonyms, sentence completion, grammar, etc. for BTech students",
	model.CategoryMixed:     "a mix of aptitude, reasoning, and verbal problems for BTech students",
}

const outputFormat = `Each MCQ should have:
1. A clear, concise question
2. Exactly 4 options in an "options" array
3. One correct answer
4. A brief explanation of the correct answer

Format the response as a JSON array of objects with the following structure:
[
  {
    "question": "Question text here",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_answer": "Correct option here (exactly as it appears in options)",
    "explanation": "Explanation for why this is the correct answer"
  }
]

Important: Ensure all questions are accurate, unbiased, and suitable for college-level aptitude tests.`

// BuildPrompt returns the instruction sent to the model for count questions
// on category. Unknown categories get the mixed topic.
func BuildPrompt(category model.Category, count int) string {
	topic, ok := topicDescriptions[category]
	if !ok {
		topic = topicDescriptions[model.CategoryMixed]
	}
	return fmt.Sprintf("Generate %d multiple-choice questions (MCQs) on %s.\n\n%s\n", count, topic, outputFormat)
}
