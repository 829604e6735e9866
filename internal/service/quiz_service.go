package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"language_quiz_backend/internal/config"
	"language_quiz_backend/internal/model"
	"language_quiz_backend/internal/repository"
	"language_quiz_backend/internal/util"
	"language_quiz_backend/pkg/logger"
	"language_quiz_backend/pkg/monitoring"
	"language_quiz_backend/pkg/tracing"

	"go.uber.org/zap"
)

type QuizService struct {
	Repo       *repository.QuizRepository
	Cache      repository.QuizCache
	Categories []string
	Now        func() time.Time

	pagination atomic.Pointer[config.PaginationConfig]
}

func NewQuizService(repo *repository.QuizRepository, cache repository.QuizCache, cfg *config.Config) *QuizService {
	if cache == nil {
		cache = repository.NopQuizCache{}
	}
	s := &QuizService{
		Repo:       repo,
		Cache:      cache,
		Categories: cfg.Quiz.Categories,
		Now:        func() time.Time { return time.Now().UTC() },
	}
	s.SetPagination(cfg.Pagination)
	return s
}

// SetPagination swaps the list limits; used on config reload.
func (s *QuizService) SetPagination(p config.PaginationConfig) {
	s.pagination.Store(&p)
}

func (s *QuizService) Pagination() config.PaginationConfig {
	return *s.pagination.Load()
}

func (s *QuizService) CreateQuiz(ctx context.Context, spec *QuizSpec, createdBy string) (detail *QuizDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.CreateQuiz", 0)
	defer func() { tracing.EndSpan(span, err) }()

	if errs := validateQuizHeader(spec); len(errs) > 0 {
		monitoring.ValidationRejections.WithLabelValues("create_quiz").Inc()
		return nil, util.NewValidationError(errs)
	}
	if len(spec.Questions) == 0 {
		monitoring.ValidationRejections.WithLabelValues("create_quiz").Inc()
		return nil, util.NewValidationError(map[string]interface{}{
			"questions": "Quiz must have at least one question",
		})
	}

	var quizID uint
	err = s.Repo.Transaction(ctx, func(tx *repository.QuizRepository) error {
		quiz, err := buildQuiz(ctx, tx, spec, createdBy)
		if err != nil {
			return err
		}
		quizID = quiz.ID
		return nil
	})
	if err != nil {
		var verr *util.ValidationError
		if errors.As(err, &verr) {
			monitoring.ValidationRejections.WithLabelValues("create_quiz").Inc()
		}
		return nil, err
	}

	quiz, err := s.Repo.FindQuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	monitoring.QuizzesCreated.Inc()
	logger.Log.Info("Quiz created",
		zap.Uint("quiz_id", quiz.ID),
		zap.Int("questions", quiz.QuestionCount()),
		zap.String("created_by", createdBy))

	return NewQuizDetail(quiz), nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id uint) (detail *QuizDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.GetQuiz", id)
	defer func() { tracing.EndSpan(span, err) }()

	quiz, err := s.Repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, util.ErrQuizUnavailable
	}
	return NewQuizDetail(quiz), nil
}

// StudentView returns the redacted view of an active quiz, served from the
// cache when possible.
func (s *QuizService) StudentView(ctx context.Context, id uint) (view *StudentQuizView, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.StudentView", id)
	defer func() { tracing.EndSpan(span, err) }()

	if payload, ok := s.Cache.Get(ctx, id); ok {
		var cached StudentQuizView
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		s.Cache.Invalidate(ctx, id)
	}

	quiz, err := s.Repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, util.ErrQuizUnavailable
	}

	view = NewStudentQuizView(quiz)
	if payload, err := json.Marshal(view); err == nil {
		s.Cache.Set(ctx, id, payload)
	}
	return view, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context, params ListQuizzesParams) (result *QuizListResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.ListQuizzes", 0)
	defer func() { tracing.EndSpan(span, err) }()

	limits := s.Pagination()
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = limits.DefaultPerPage
	}
	if perPage > limits.MaxPerPage {
		perPage = limits.MaxPerPage
	}

	filter := repository.QuizFilter{
		Category:   params.Category,
		Difficulty: params.Difficulty,
		ActiveOnly: params.ActiveOnly,
	}
	quizzes, total, err := s.Repo.ListQuizzes(ctx, filter, page, perPage)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(quizzes))
	for i := range quizzes {
		ids[i] = quizzes[i].ID
	}
	counts, err := s.Repo.CountQuestionsByQuiz(ctx, ids)
	if err != nil {
		return nil, err
	}

	result = &QuizListResult{
		Quizzes:    make([]QuizSummary, 0, len(quizzes)),
		Pagination: util.NewPagination(total, page, perPage),
	}
	for i := range quizzes {
		result.Quizzes = append(result.Quizzes, newQuizSummary(&quizzes[i], counts[quizzes[i].ID]))
	}
	return result, nil
}

func validateUpdate(req *UpdateQuizRequest) map[string]interface{} {
	errs := map[string]interface{}{}

	if req.Title.Set {
		switch {
		case req.Title.Null || req.Title.Value == "":
			errs["title"] = "title cannot be empty"
		case utf8.RuneCountInString(req.Title.Value) > maxTitleLength:
			errs["title"] = fmt.Sprintf("title must be at most %d characters", maxTitleLength)
		}
	}
	if req.Category.Set && !req.Category.Null && utf8.RuneCountInString(req.Category.Value) > 50 {
		errs["category"] = "category must be at most 50 characters"
	}
	if req.DifficultyLevel.Set && !model.DifficultyLevel(req.DifficultyLevel.Value).Valid() {
		errs["difficulty_level"] = "Difficulty level must be one of: " + difficultyChoices
	}
	if req.TimeLimit.Set && !req.TimeLimit.Null && req.TimeLimit.Value < 0 {
		errs["time_limit"] = "time_limit must be a non-negative number of minutes"
	}
	if req.IsActive.Set && req.IsActive.Null {
		errs["is_active"] = "is_active must be true or false"
	}
	return errs
}

// updateColumns maps the fields present in req to columns. Nullable fields
// sent as null are cleared.
func updateColumns(req *UpdateQuizRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title.Set {
		updates["title"] = req.Title.Value
	}
	if req.Description.Set {
		updates["description"] = req.Description.Ptr()
	}
	if req.Category.Set {
		updates["category"] = req.Category.Ptr()
	}
	if req.DifficultyLevel.Set {
		updates["difficulty_level"] = req.DifficultyLevel.Value
	}
	if req.TimeLimit.Set {
		updates["time_limit"] = req.TimeLimit.Ptr()
	}
	if req.IsActive.Set {
		updates["is_active"] = req.IsActive.Value
	}
	return updates
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id uint, req *UpdateQuizRequest, updatedBy string) (detail *QuizDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.UpdateQuiz", id)
	defer func() { tracing.EndSpan(span, err) }()

	if errs := validateUpdate(req); len(errs) > 0 {
		monitoring.ValidationRejections.WithLabelValues("update_quiz").Inc()
		return nil, util.NewValidationError(errs)
	}

	updates := updateColumns(req)
	updates["updated_at"] = s.Now()
	updates["updated_by"] = updatedBy

	err = s.Repo.Transaction(ctx, func(tx *repository.QuizRepository) error {
		if _, err := tx.FindQuizHeader(ctx, id); err != nil {
			return err
		}
		return tx.UpdateQuizFields(ctx, id, updates)
	})
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, id)

	quiz, err := s.Repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Quiz updated",
		zap.Uint("quiz_id", id),
		zap.Int("fields", len(updates)-2),
		zap.String("updated_by", updatedBy))

	return NewQuizDetail(quiz), nil
}

// DeleteQuiz removes the quiz with all of its questions and answers and returns its title.
func (s *QuizService) DeleteQuiz(ctx context.Context, id uint) (title string, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizService.DeleteQuiz", id)
	defer func() { tracing.EndSpan(span, err) }()

	err = s.Repo.Transaction(ctx, func(tx *repository.QuizRepository) error {
		quiz, err := tx.FindQuizHeader(ctx, id)
		if err != nil {
			return err
		}
		title = quiz.Title
		return tx.DeleteQuizTree(ctx, id)
	})
	if err != nil {
		return "", err
	}
	s.Cache.Invalidate(ctx, id)

	logger.Log.Info("Quiz deleted", zap.Uint("quiz_id", id), zap.String("title", title))
	return title, nil
}

func (s *QuizService) ListCategories() []string {
	return s.Categories
}

func (s *QuizService) ListDifficultyLevels() []model.DifficultyLevel {
	return model.DifficultyLevels
}
