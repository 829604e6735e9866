package repository

import (
	"context"
	"errors"

	"language_quiz_backend/internal/model"
	"language_quiz_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

type QuizFilter struct {
	Category   string
	Difficulty string
	ActiveOnly bool
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// WithTx returns a repository bound to tx.
func (r *QuizRepository) WithTx(tx *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: tx}
}

// Transaction runs fn with a repository scoped to one transaction. Any error
// returned by fn rolls the transaction back and is returned unchanged.
func (r *QuizRepository) Transaction(ctx context.Context, fn func(tx *QuizRepository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("order_index asc, id asc")
}

func orderedAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("order_index asc, id asc")
}

func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(quiz).Error
	return wrapDBError("create quiz", err)
}

// CreateQuestion inserts q and then its answers, which receive q's id.
func (r *QuizRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	db := r.DB.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(q).Error; err != nil {
		return wrapDBError("create question", err)
	}
	if len(q.Answers) == 0 {
		return nil
	}
	for i := range q.Answers {
		q.Answers[i].QuestionID = q.ID
	}
	return wrapDBError("create answers", db.Create(&q.Answers).Error)
}

// FindQuizByID loads the full quiz graph with questions and answers in display order.
func (r *QuizRepository) FindQuizByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Preload("Questions.Answers", orderedAnswers).
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, wrapDBError("find quiz", err)
	}
	return &quiz, nil
}

// FindQuizHeader loads the quiz row only.
func (r *QuizRepository) FindQuizHeader(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.WithContext(ctx).First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, wrapDBError("find quiz", err)
	}
	return &quiz, nil
}

func (r *QuizRepository) ListQuizzes(ctx context.Context, filter QuizFilter, page, perPage int) ([]model.Quiz, int64, error) {
	var quizzes []model.Quiz
	var total int64

	query := r.DB.WithContext(ctx).Model(&model.Quiz{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty_level = ?", filter.Difficulty)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError("count quizzes", err)
	}

	offset := (page - 1) * perPage
	err := query.Order("created_at desc, id desc").Offset(offset).Limit(perPage).Find(&quizzes).Error
	if err != nil {
		return nil, 0, wrapDBError("list quizzes", err)
	}
	return quizzes, total, nil
}

// CountQuestionsByQuiz returns the number of questions owned by each of ids.
// Quizzes without questions are absent from the map.
func (r *QuizRepository) CountQuestionsByQuiz(ctx context.Context, ids []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuizID uint
		Total  int
	}
	err := r.DB.WithContext(ctx).Model(&model.Question{}).
		Select("quiz_id, count(*) as total").
		Where("quiz_id IN ?", ids).
		Group("quiz_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBError("count questions", err)
	}

	for _, row := range rows {
		counts[row.QuizID] = row.Total
	}
	return counts, nil
}

// UpdateQuizFields writes updates, zero values included, to the quiz row.
func (r *QuizRepository) UpdateQuizFields(ctx context.Context, id uint, updates map[string]interface{}) error {
	res := r.DB.WithContext(ctx).Model(&model.Quiz{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return wrapDBError("update quiz", res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrQuizNotFound
	}
	return nil
}

// DeleteQuizTree removes the quiz and everything it owns, children first.
func (r *QuizRepository) DeleteQuizTree(ctx context.Context, id uint) error {
	db := r.DB.WithContext(ctx)

	var questionIDs []uint
	if err := db.Model(&model.Question{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
		return wrapDBError("list questions", err)
	}

	if len(questionIDs) > 0 {
		if err := db.Where("question_id IN ?", questionIDs).Delete(&model.Answer{}).Error; err != nil {
			return wrapDBError("delete answers", err)
		}
		if err := db.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return wrapDBError("delete questions", err)
		}
	}

	res := db.Delete(&model.Quiz{}, id)
	if res.Error != nil {
		return wrapDBError("delete quiz", res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrQuizNotFound
	}
	return nil
}

// Ping checks that the database answers.
func (r *QuizRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
