package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/aptify-backend/internal/fallback"
	"github.com/stemsi/aptify-backend/internal/generator"
	"github.com/stemsi/aptify-backend/internal/model"
)

type fetchCall struct {
	category model.Category
	count    int
}

// fakeFetcher records its calls and returns a canned result.
type fakeFetcher struct {
	questions []model.Question
	err       error
	calls     []fetchCall
}

func (f *fakeFetcher) FetchQuestions(_ context.Context, category model.Category, count int) ([]model.Question, error) {
	f.calls = append(f.calls, fetchCall{category, count})
	return f.questions, f.err
}

type emptyFallback struct{}

func (emptyFallback) Questions(model.Category, int) []model.Question { return nil }

func generated(n int) []model.Question {
	out := make([]model.Question, n)
	for i := range out {
		out[i] = model.Question{
			Question:      fmt.Sprintf("generated %d", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "a",
			Explanation:   "x",
		}
	}
	return out
}

func newService(f QuestionFetcher, cfg QuestionServiceConfig) *QuestionService {
	return NewQuestionService(f, fallback.NewProvider(), cfg, zerolog.Nop())
}

func TestGetQuestionsPrefersGenerated(t *testing.T) {
	f := &fakeFetcher{questions: generated(12)}
	svc := newService(f, QuestionServiceConfig{})

	got, err := svc.GetQuestions(context.Background(), "verbal", 12)
	require.NoError(t, err)
	assert.Equal(t, generated(12), got)
	assert.Equal(t, []fetchCall{{model.CategoryVerbal, 12}}, f.calls)
}

func TestGetQuestionsFallsBackOnEmpty(t *testing.T) {
	p := fallback.NewProvider()
	for _, c := range model.AllCategories {
		for count := model.MinQuestions; count <= model.MaxQuestions; count++ {
			svc := newService(&fakeFetcher{}, QuestionServiceConfig{})
			got, err := svc.GetQuestions(context.Background(), string(c), count)
			require.NoError(t, err)
			assert.Equal(t, p.Questions(c, count), got, "category %s count %d", c, count)
		}
	}
}

func TestGetQuestionsFallsBackOnError(t *testing.T) {
	f := &fakeFetcher{questions: generated(10), err: generator.ErrInvalidArgument}
	svc := newService(f, QuestionServiceConfig{})

	got, err := svc.GetQuestions(context.Background(), "reasoning", 10)
	require.NoError(t, err)
	assert.Equal(t, fallback.NewProvider().Questions(model.CategoryReasoning, 10), got)
}

func TestGetQuestionsNormalizesInput(t *testing.T) {
	tests := []struct {
		name     string
		quizType string
		count    int
		want     fetchCall
	}{
		{"below range", "aptitude", 5, fetchCall{model.CategoryAptitude, 10}},
		{"above range", "aptitude", 21, fetchCall{model.CategoryAptitude, 10}},
		{"zero", "reasoning", 0, fetchCall{model.CategoryReasoning, 10}},
		{"negative", "verbal", -3, fetchCall{model.CategoryVerbal, 10}},
		{"unknown type", "unknown", 15, fetchCall{model.CategoryMixed, 15}},
		{"empty type", "", 20, fetchCall{model.CategoryMixed, 20}},
		{"in range", "verbal", 17, fetchCall{model.CategoryVerbal, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{}
			svc := newService(f, QuestionServiceConfig{})

			got, err := svc.GetQuestions(context.Background(), tt.quizType, tt.count)
			require.NoError(t, err)
			assert.Equal(t, []fetchCall{tt.want}, f.calls)
			assert.Len(t, got, tt.want.count)
		})
	}
}

func TestGetQuestionsShortResult(t *testing.T) {
	t.Run("kept as is by default", func(t *testing.T) {
		svc := newService(&fakeFetcher{questions: generated(4)}, QuestionServiceConfig{})
		got, err := svc.GetQuestions(context.Background(), "mixed", 10)
		require.NoError(t, err)
		assert.Equal(t, generated(4), got)
	})

	t.Run("topped up when enabled", func(t *testing.T) {
		svc := newService(&fakeFetcher{questions: generated(4)}, QuestionServiceConfig{TopUpShortResults: true})
		got, err := svc.GetQuestions(context.Background(), "mixed", 10)
		require.NoError(t, err)
		require.Len(t, got, 10)
		assert.Equal(t, generated(4), got[:4])
		assert.Equal(t, fallback.NewProvider().Questions(model.CategoryMixed, 6), got[4:])
	})
}

func TestGetQuestionsNoSource(t *testing.T) {
	svc := NewQuestionService(&fakeFetcher{}, emptyFallback{}, QuestionServiceConfig{}, zerolog.Nop())
	_, err := svc.GetQuestions(context.Background(), "mixed", 10)
	assert.True(t, errors.Is(err, ErrNoQuestions))
}

func TestGetQuestionsWithDisabledGenerator(t *testing.T) {
	gen, err := generator.NewFetcher(context.Background(), generator.Config{}, zerolog.Nop())
	require.NoError(t, err)
	svc := newService(gen, QuestionServiceConfig{})

	got, err := svc.GetQuestions(context.Background(), "aptitude", 14)
	require.NoError(t, err)
	assert.Equal(t, fallback.NewProvider().Questions(model.CategoryAptitude, 14), got)
}
