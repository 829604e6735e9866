package controller

import (
	"fmt"
	"strconv"

	"language_quiz_backend/internal/service"
	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary Create a quiz
// @Description Creates a quiz with its questions and answers in one transaction.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Author identifier"
// @Param quiz body service.QuizSpec true "Quiz with questions"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /v1/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var spec service.QuizSpec
	if err := bindObject(ctx, &spec); err != nil {
		respondError(ctx, err)
		return
	}

	quiz, err := c.QuizService.CreateQuiz(ctx.Request.Context(), &spec, userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, "Quiz created successfully!", quiz)
}

// @Summary List quizzes
// @Tags Quizzes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, capped at the configured maximum" default(10)
// @Param category query string false "Exact category"
// @Param difficulty query string false "Exact difficulty level"
// @Param active_only query bool false "Only active quizzes" default(true)
// @Success 200 {object} util.Response
// @Router /v1/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	perPage, err := strconv.Atoi(ctx.Query("per_page"))
	if err != nil {
		perPage = 0
	}

	result, err := c.QuizService.ListQuizzes(ctx.Request.Context(), service.ListQuizzesParams{
		Page:       page,
		PerPage:    perPage,
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
		ActiveOnly: queryFlag(ctx, "active_only", true),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quizzes retrieved successfully", result)
}

// @Summary Get a quiz
// @Description With for_student=true the correct answers and explanations are removed.
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Param for_student query bool false "Student view" default(false)
// @Success 200 {object} util.Response
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /v1/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	var (
		data interface{}
		err  error
	)
	if queryFlag(ctx, "for_student", false) {
		data, err = c.QuizService.StudentView(ctx.Request.Context(), id)
	} else {
		data, err = c.QuizService.GetQuiz(ctx.Request.Context(), id)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quiz retrieved successfully", data)
}

// @Summary Update a quiz
// @Description Applies any subset of title, description, category, difficulty_level, time_limit and is_active.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Editor identifier"
// @Param id path int true "Quiz ID"
// @Param quiz body service.UpdateQuizRequest true "Fields to change"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /v1/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	var req service.UpdateQuizRequest
	if err := bindObject(ctx, &req); err != nil {
		respondError(ctx, err)
		return
	}

	quiz, err := c.QuizService.UpdateQuiz(ctx.Request.Context(), id, &req, userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Quiz updated successfully", quiz)
}

// @Summary Delete a quiz
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.ErrorResponse
// @Router /v1/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := quizID(ctx)
	if !ok {
		return
	}

	title, err := c.QuizService.DeleteQuiz(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, fmt.Sprintf("Quiz '%s' deleted successfully", title), nil)
}

// @Summary List categories
// @Tags Quizzes
// @Produce json
// @Success 200 {object} util.Response
// @Router /v1/quizzes/categories [get]
func (c *QuizController) GetCategories(ctx *gin.Context) {
	util.Success(ctx, "Categories retrieved successfully", gin.H{
		"categories": c.QuizService.ListCategories(),
	})
}

// @Summary List difficulty levels
// @Tags Quizzes
// @Produce json
// @Success 200 {object} util.Response
// @Router /v1/quizzes/difficulty-levels [get]
func (c *QuizController) GetDifficultyLevels(ctx *gin.Context) {
	util.Success(ctx, "Difficulty levels retrieved successfully", gin.H{
		"difficulty_levels": c.QuizService.ListDifficultyLevels(),
	})
}
