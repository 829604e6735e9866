package controller

import (
	"errors"

	"language_quiz_backend/internal/service"
	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizSessionController struct {
	SessionService *service.QuizSessionService
}

func NewQuizSessionController(sessionService *service.QuizSessionService) *QuizSessionController {
	return &QuizSessionController{SessionService: sessionService}
}

// @Summary Start a quiz session
// @Description Returns the student view of the quiz with the start time and, for timed quizzes, a deadline.
// @Tags Quiz Sessions
// @Accept json
// @Produce json
// @Param X-Student-ID header string false "Student identifier"
// @Param id path int true "Quiz ID"
// @Param session body service.StartSessionRequest false "Optional student id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /v1/quiz-sessions/start/{id} [post]
func (c *QuizSessionController) StartSession(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	var req service.StartSessionRequest
	if err := decodeBody(ctx, &req, true); err != nil {
		respondError(ctx, err)
		return
	}

	student := req.StudentID
	if student == nil || *student == "" {
		student = nil
		if header := studentID(ctx); header != "" {
			student = &header
		}
	}

	start, err := c.SessionService.StartSession(ctx.Request.Context(), id, student)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quiz session started successfully", start)
}

// @Summary Submit answers
// @Tags Quiz Sessions
// @Accept json
// @Produce json
// @Param X-Student-ID header string false "Student identifier"
// @Param id path int true "Quiz ID"
// @Param submission body service.SubmitQuizRequest true "started_at and answers"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /v1/quiz-sessions/submit/{id} [post]
func (c *QuizSessionController) SubmitQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	var req service.SubmitQuizRequest
	if err := bindObject(ctx, &req); err != nil {
		respondError(ctx, err)
		return
	}

	result, err := c.SessionService.SubmitQuiz(ctx.Request.Context(), id, &req, studentID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quiz submitted successfully!", result)
}

// @Summary Preview a quiz
// @Tags Quiz Sessions
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /v1/quiz-sessions/preview/{id} [get]
func (c *QuizSessionController) PreviewQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	view, err := c.SessionService.Preview(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quiz retrieved successfully", view)
}

// @Summary Quiz statistics
// @Tags Quiz Sessions
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /v1/quiz-sessions/stats/{id} [get]
func (c *QuizSessionController) GetStats(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	stats, err := c.SessionService.Stats(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quiz statistics retrieved (placeholder)", stats)
}

// @Summary Validate answer format
// @Description Checks that every entry is an object with integer question_id and answer_id.
// @Tags Quiz Sessions
// @Accept json
// @Produce json
// @Param answers body service.ValidateAnswersRequest true "Answers to check"
// @Success 200 {object} util.Response
// @Failure 422 {object} util.ErrorResponse
// @Router /v1/quiz-sessions/validate-answers [post]
func (c *QuizSessionController) ValidateAnswers(ctx *gin.Context) {
	var req service.ValidateAnswersRequest
	if err := bindObject(ctx, &req); err != nil {
		respondError(ctx, err)
		return
	}

	result, err := c.SessionService.ValidateAnswerFormat(req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Answer format is valid", result)
}

// @Summary Check remaining time
// @Tags Quiz Sessions
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param timing body service.TimeCheckRequest true "Session start time"
// @Success 200 {object} util.Response
// @Failure 422 {object} util.ErrorResponse
// @Router /v1/quiz-sessions/time-check/{id} [post]
func (c *QuizSessionController) TimeCheck(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	var req service.TimeCheckRequest
	if err := decodeBody(ctx, &req, true); err != nil {
		var verr *util.ValidationError
		if errors.As(err, &verr) && len(req.StartedAt) == 0 {
			err = util.NewValidationMessage("Missing 'started_at' field")
		}
		respondError(ctx, err)
		return
	}

	result, err := c.SessionService.TimeCheck(ctx.Request.Context(), id, req.StartedAt)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if result.Unlimited {
		util.Success(ctx, "This quiz has no time limit", gin.H{"unlimited": true})
		return
	}
	util.Success(ctx, "Time check completed", result)
}
