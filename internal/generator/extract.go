package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const fence = "```"

var (
	errNoFence       = errors.New("no fenced block")
	errNotArray      = errors.New("not a JSON array")
	errNotObjectList = errors.New("array element is not an object")
)

// extractionStrategy pulls a JSON array of objects out of model output.
type extractionStrategy struct {
	name    string
	extract func(text string) ([]json.RawMessage, error)
}

// Strategies are tried in order; the first success wins.
var extractionStrategies = []extractionStrategy{
	{name: "bare", extract: extractBare},
	{name: "json_fence", extract: extractLabeledFence},
	{name: "plain_fence", extract: extractPlainFence},
}

// extractQuestionArray returns the raw array elements and the name of the
// strategy that produced them.
func extractQuestionArray(text string) ([]json.RawMessage, string, error) {
	errs := make([]error, 0, len(extractionStrategies))
	for _, s := range extractionStrategies {
		items, err := s.extract(text)
		if err == nil {
			return items, s.name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
	}
	return nil, "", fmt.Errorf("%w: %w", ErrMalformedResponse, errors.Join(errs...))
}

func extractBare(text string) ([]json.RawMessage, error) {
	return decodeObjectArray(text)
}

// extractLabeledFence reads the block opened by ```json. A missing closing
// fence takes the rest of the text.
func extractLabeledFence(text string) ([]json.RawMessage, error) {
	const open = fence + "json"
	i := strings.Index(text, open)
	if i < 0 {
		return nil, errNoFence
	}
	return decodeObjectArray(untilFence(text[i+len(open):]))
}

// extractPlainFence reads the first fenced block, skipping an info string
// such as "JSON" or "javascript" on the opening line.
func extractPlainFence(text string) ([]json.RawMessage, error) {
	i := strings.Index(text, fence)
	if i < 0 {
		return nil, errNoFence
	}
	block := untilFence(text[i+len(fence):])
	if nl := strings.IndexByte(block, '\n'); nl >= 0 {
		if info := strings.TrimSpace(block[:nl]); info != "" && !strings.ContainsAny(info, "[{") {
			block = block[nl+1:]
		}
	}
	return decodeObjectArray(block)
}

func untilFence(s string) string {
	if j := strings.Index(s, fence); j >= 0 {
		return s[:j]
	}
	return s
}

func decodeObjectArray(s string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errNotArray
	}
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("%w: index %d", errNotObjectList, i)
		}
	}
	return items, nil
}
