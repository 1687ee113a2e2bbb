package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/stemsi/aptify-backend/internal/logger"
	"github.com/stemsi/aptify-backend/internal/model"
)

// Fetcher asks the Gemini API for quiz questions. It is best-effort: any
// remote or parsing trouble yields an empty result, never an error.
type Fetcher struct {
	cfg    Config
	client *genai.Client
	log    zerolog.Logger
}

// NewFetcher creates a Fetcher. Without an API key the Fetcher is a
// permanent no-op rather than a construction failure.
func NewFetcher(ctx context.Context, cfg Config, log zerolog.Logger) (*Fetcher, error) {
	cfg = cfg.withDefaults()
	f := &Fetcher{
		cfg: cfg,
		log: log.With().Str("component", "question_generator").Logger(),
	}

	if cfg.APIKey == "" {
		f.log.Warn().Msg("GEMINI_API_KEY not set, generated questions disabled")
		return f, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	f.client = client

	f.log.Info().
		Str("model", cfg.Model).
		Str("api_version", cfg.APIVersion).
		Dur("timeout", cfg.Timeout).
		Msg("Gemini question generator ready")

	return f, nil
}

// Enabled reports whether an API key is configured.
func (f *Fetcher) Enabled() bool {
	return f.client != nil
}

// FetchQuestions generates up to count questions on category. Out-of-contract
// input fails with ErrInvalidArgument; everything else degrades to an empty
// result. The result is never padded.
func (f *Fetcher) FetchQuestions(ctx context.Context, category model.Category, count int) (questions []model.Question, err error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, category)
	}
	if !model.CountInRange(count) {
		return nil, fmt.Errorf("%w: question count %d outside [%d, %d]",
			ErrInvalidArgument, count, model.MinQuestions, model.MaxQuestions)
	}

	log := logger.Ctx(ctx, f.log).With().
		Str("category", string(category)).
		Int("count", count).
		Logger()

	if f.client == nil {
		log.Debug().Msg("Generator disabled, skipping remote call")
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Question generation panicked")
			questions, err = nil, nil
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	start := time.Now()
	result, err := f.client.Models.GenerateContent(ctx, f.cfg.Model, genai.Text(BuildPrompt(category, count)), f.generationConfig())
	if err != nil {
		logRemoteFailure(log, err)
		return nil, nil
	}

	text := result.Text()
	log.Debug().Str("content", text).Msg("Gemini response text")

	items, strategy, err := extractQuestionArray(text)
	if err != nil {
		log.Error().Err(err).Int("content_len", len(text)).Msg("Failed to extract questions from model output")
		return nil, nil
	}

	questions, rejected := validQuestions(items)
	for _, r := range rejected {
		log.Debug().Err(r).Msg("Dropped generated question")
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	log.Info().
		Str("strategy", strategy).
		Int("received", len(items)).
		Int("dropped", len(rejected)).
		Int("returned", len(questions)).
		Dur("latency", time.Since(start)).
		Msg("Generated questions")

	return questions, nil
}

// ListModels returns the names of the models visible to the configured key.
func (f *Fetcher) ListModels(ctx context.Context) ([]string, error) {
	if f.client == nil {
		return nil, ErrNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	var names []string
	for m, err := range f.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		names = append(names, m.Name)
	}
	return names, nil
}

func (f *Fetcher) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(f.cfg.Temperature),
		TopK:            genai.Ptr(f.cfg.TopK),
		TopP:            genai.Ptr(f.cfg.TopP),
		MaxOutputTokens: f.cfg.MaxOutputTokens,
	}
}

func logRemoteFailure(log zerolog.Logger, err error) {
	var apiErr *genai.APIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Msg("Gemini API request timed out")
	case errors.As(err, &apiErr):
		log.Error().Err(err).Int("status", apiErr.Code).Msg("Gemini API returned an error status")
	default:
		log.Error().Err(err).Msg("Request to Gemini API failed")
	}
}
