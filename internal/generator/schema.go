package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/stemsi/aptify-backend/internal/model"
)

const questionSchemaURL = "schema://quiz-question.json"

// questionSchema is the shape every generated entry must have. Membership of
// correct_answer in options is checked after decoding.
const questionSchema = `{
  "type": "object",
  "required": ["question", "options", "correct_answer", "explanation"],
  "properties": {
    "question":       {"type": "string", "minLength": 1},
    "options":        {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4, "uniqueItems": true},
    "correct_answer": {"type": "string", "minLength": 1},
    "explanation":    {"type": "string"}
  }
}`

var errAnswerNotInOptions = errors.New("correct_answer is not one of the options")

var compiledQuestionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionSchema))
	if err != nil {
		return nil, fmt.Errorf("parse question schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(questionSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add question schema: %w", err)
	}
	return c.Compile(questionSchemaURL)
})

// decodeQuestion validates raw against the question schema and decodes it.
func decodeQuestion(raw json.RawMessage) (model.Question, error) {
	sch, err := compiledQuestionSchema()
	if err != nil {
		return model.Question{}, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return model.Question{}, fmt.Errorf("parse entry: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return model.Question{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var q model.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return model.Question{}, fmt.Errorf("decode entry: %w", err)
	}
	if !q.Valid() {
		return model.Question{}, errAnswerNotInOptions
	}
	return q, nil
}

// validQuestions keeps the entries that decode into valid questions, in order.
func validQuestions(items []json.RawMessage) ([]model.Question, []error) {
	out := make([]model.Question, 0, len(items))
	var rejected []error
	for i, raw := range items {
		q, err := decodeQuestion(raw)
		if err != nil {
			rejected = append(rejected, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		out = append(out, q)
	}
	return out, rejected
}
