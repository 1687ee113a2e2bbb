package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/stemsi/aptify-backend/internal/logger"
	"github.com/stemsi/aptify-backend/internal/model"
)

// ErrNoQuestions is returned when neither source produced a question.
var ErrNoQuestions = errors.New("no questions available")

// QuestionFetcher is the generative source of questions. An empty result
// means the source is unavailable.
type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, category model.Category, count int) ([]model.Question, error)
}

// FallbackSource returns exactly count questions for category.
type FallbackSource interface {
	Questions(category model.Category, count int) []model.Question
}

// QuestionServiceConfig tunes how the two sources are combined.
type QuestionServiceConfig struct {
	// TopUpShortResults pads a short generated set with fallback questions.
	TopUpShortResults bool
}

// QuestionService picks between generated and fallback questions.
type QuestionService struct {
	fetcher  QuestionFetcher
	fallback FallbackSource
	cfg      QuestionServiceConfig
	log      zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(fetcher QuestionFetcher, fallback FallbackSource, cfg QuestionServiceConfig, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		fetcher:  fetcher,
		fallback: fallback,
		cfg:      cfg,
		log:      log.With().Str("component", "question_service").Logger(),
	}
}

// GetQuestions returns questions for a quiz. Unknown quiz types become mixed
// and counts outside the accepted range become the default. Generated
// questions are preferred; the fallback bank is used when none arrive.
func (s *QuestionService) GetQuestions(ctx context.Context, quizType string, count int) ([]model.Question, error) {
	req := model.NormalizeQuizRequest(quizType, count)
	log := logger.Ctx(ctx, s.log).With().
		Str("category", string(req.Category)).
		Int("count", req.Count).
		Logger()

	if string(req.Category) != quizType || req.Count != count {
		log.Debug().
			Str("quiz_type", quizType).
			Int("requested", count).
			Msg("Normalized quiz request")
	}

	generated, err := s.fetcher.FetchQuestions(ctx, req.Category, req.Count)
	if err != nil {
		log.Warn().Err(err).Msg("Question generator failed, using fallback bank")
		generated = nil
	}

	questions := generated
	source := "generated"

	switch {
	case len(generated) == 0:
		questions = s.fallback.Questions(req.Category, req.Count)
		source = "fallback"
	case len(generated) < req.Count && s.cfg.TopUpShortResults:
		missing := req.Count - len(generated)
		questions = append(generated, s.fallback.Questions(req.Category, missing)...)
		source = "generated+fallback"
	case len(generated) < req.Count:
		log.Warn().
			Int("returned", len(generated)).
			Msg("Generator returned fewer questions than requested")
	}

	if len(questions) == 0 {
		log.Error().Msg("No questions from any source")
		return nil, ErrNoQuestions
	}

	log.Info().
		Str("source", source).
		Int("returned", len(questions)).
		Msg("Questions served")

	return questions, nil
}
