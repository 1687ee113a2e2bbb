package fallback

import "github.com/stemsi/aptify-backend/internal/model"

// mixedBank is the first 3 aptitude, first 4 reasoning and first 3 verbal
// questions, in that order.
var mixedBank = concat(aptitudeBank[:3], reasoningBank[:4], verbalBank[:3])

// Provider serves questions from the static banks. It holds no mutable
// state and is safe for concurrent use.
type Provider struct {
	banks map[model.Category][]model.Question
}

// NewProvider creates a Provider over the built-in banks.
func NewProvider() *Provider {
	return &Provider{
		banks: map[model.Category][]model.Question{
			model.CategoryAptitude:  aptitudeBank,
			model.CategoryReasoning: reasoningBank,
			model.CategoryVerbal:    verbalBank,
			model.CategoryMixed:     mixedBank,
		},
	}
}

// Questions returns exactly count questions for category, tiling the bank
// when count exceeds its length. Unknown categories are served from the
// mixed bank. A non-positive count yields an empty slice.
func (p *Provider) Questions(category model.Category, count int) []model.Question {
	return Tile(p.Bank(category), count)
}

// Bank returns a copy of the full bank for category.
func (p *Provider) Bank(category model.Category) []model.Question {
	bank, ok := p.banks[category]
	if !ok {
		bank = p.banks[model.CategoryMixed]
	}
	return Tile(bank, len(bank))
}

// Tile repeats bank end to end ceil(count/len(bank)) times and truncates the
// result to count entries. Returned questions are copies.
func Tile(bank []model.Question, count int) []model.Question {
	if count <= 0 || len(bank) == 0 {
		return []model.Question{}
	}

	rounds := (count + len(bank) - 1) / len(bank)
	out := make([]model.Question, 0, rounds*len(bank))
	for i := 0; i < rounds; i++ {
		for _, q := range bank {
			out = append(out, q.Clone())
		}
	}
	return out[:count]
}

func concat(parts ...[]model.Question) []model.Question {
	var out []model.Question
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
