package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stemsi/aptify-backend/internal/logger"
	"github.com/stemsi/aptify-backend/internal/model"
	"github.com/stemsi/aptify-backend/internal/response"
	"github.com/stemsi/aptify-backend/internal/service"
	"github.com/stemsi/aptify-backend/internal/validator"
)

// QuestionSource produces the questions for one quiz.
type QuestionSource interface {
	GetQuestions(ctx context.Context, quizType string, count int) ([]model.Question, error)
}

// QuestionHandler handles quiz question endpoints.
type QuestionHandler struct {
	questions QuestionSource
	log       zerolog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions QuestionSource, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		log:       log.With().Str("component", "question_handler").Logger(),
	}
}

// GetQuestions godoc
// POST /api/questions
// Returns the questions for a quiz. Missing fields take their defaults and
// out-of-range values are normalized rather than rejected. A body that is not
// a JSON object of the right field types gets 400 VALIDATION_ERROR; every
// other failure is a 500.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var req model.GetQuestionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	count := model.DefaultQuestions
	if req.NumQuestions != nil {
		count = *req.NumQuestions
	}

	ctx := c.Request.Context()
	questions, err := h.questions.GetQuestions(ctx, req.QuizType, count)
	if err != nil {
		logger.Ctx(ctx, h.log).Error().Err(err).
			Str("quiz_type", req.QuizType).
			Int("num_questions", count).
			Msg("Failed to get questions")
		code := response.ErrInternal
		if errors.Is(err, service.ErrNoQuestions) {
			code = response.ErrNoQuestions
		}
		response.Fail(c, http.StatusInternalServerError, code)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}
