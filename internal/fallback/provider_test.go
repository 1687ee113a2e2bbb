package fallback

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/aptify-backend/internal/model"
)

func TestBanksAreValid(t *testing.T) {
	p := NewProvider()
	for _, c := range model.AllCategories {
		bank := p.Bank(c)
		require.Len(t, bank, 10, "bank %s", c)
		for i, q := range bank {
			assert.True(t, q.Valid(), "%s[%d] is not valid", c, i)
			seen := map[string]bool{}
			for _, opt := range q.Options {
				assert.False(t, seen[opt], "%s[%d] repeats option %q", c, i, opt)
				seen[opt] = true
			}
		}
	}
}

func TestQuestionsReturnsExactCount(t *testing.T) {
	p := NewProvider()
	for _, c := range model.AllCategories {
		for n := model.MinQuestions; n <= model.MaxQuestions; n++ {
			t.Run(fmt.Sprintf("%s/%d", c, n), func(t *testing.T) {
				got := p.Questions(c, n)
				require.Len(t, got, n)
				for _, q := range got {
					assert.True(t, q.Valid())
				}
			})
		}
	}
}

func TestMixedBankComposition(t *testing.T) {
	p := NewProvider()

	want := append([]model.Question{}, aptitudeBank[:3]...)
	want = append(want, reasoningBank[:4]...)
	want = append(want, verbalBank[:3]...)

	first := p.Questions(model.CategoryMixed, 10)
	second := p.Questions(model.CategoryMixed, 10)

	assert.Equal(t, want, first)
	assert.Equal(t, first, second)
}

func TestQuestionsTilesPastBankLength(t *testing.T) {
	p := NewProvider()
	got := p.Questions(model.CategoryAptitude, 25)
	require.Len(t, got, 25)

	for i, q := range got {
		assert.Equal(t, aptitudeBank[i%10].Question, q.Question, "entry %d", i)
	}
}

func TestQuestionsPrefixWhenCountFits(t *testing.T) {
	p := NewProvider()
	got := p.Questions(model.CategoryVerbal, 4)
	assert.Equal(t, verbalBank[:4], got)
}

func TestQuestionsUnknownCategoryUsesMixed(t *testing.T) {
	p := NewProvider()
	assert.Equal(t, p.Questions(model.CategoryMixed, 12), p.Questions(model.Category("history"), 12))
}

func TestQuestionsDoesNotExposeBank(t *testing.T) {
	p := NewProvider()
	got := p.Questions(model.CategoryReasoning, 10)
	got[0].Options[0] = "tampered"
	got[1].Question = "tampered"

	again := p.Questions(model.CategoryReasoning, 10)
	assert.NotEqual(t, "tampered", again[0].Options[0])
	assert.NotEqual(t, "tampered", again[1].Question)
}

func TestTile(t *testing.T) {
	bank := []model.Question{{Question: "a"}, {Question: "b"}, {Question: "c"}}

	tests := []struct {
		count int
		want  []string
	}{
		{0, []string{}},
		{-3, []string{}},
		{2, []string{"a", "b"}},
		{3, []string{"a", "b", "c"}},
		{7, []string{"a", "b", "c", "a", "b", "c", "a"}},
	}

	for _, tt := range tests {
		got := Tile(bank, tt.count)
		texts := make([]string, len(got))
		for i, q := range got {
			texts[i] = q.Question
		}
		assert.Equal(t, tt.want, texts, "Tile(bank, %d)", tt.count)
	}

	assert.Empty(t, Tile(nil, 5))
}
