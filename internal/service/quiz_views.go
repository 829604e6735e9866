package service

import (
	"language_quiz_backend/internal/model"
	"language_quiz_backend/internal/util"
)

type AnswerView struct {
	ID          uint    `json:"id"`
	Text        string  `json:"text"`
	IsCorrect   bool    `json:"is_correct"`
	Explanation *string `json:"explanation"`
	OrderIndex  int     `json:"order_index"`
	CreatedAt   string  `json:"created_at"`
	QuestionID  uint    `json:"question_id"`
}

type QuestionView struct {
	ID           uint               `json:"id"`
	Text         string             `json:"text"`
	QuestionType model.QuestionType `json:"question_type"`
	Explanation  *string            `json:"explanation"`
	Points       int                `json:"points"`
	OrderIndex   int                `json:"order_index"`
	CreatedAt    string             `json:"created_at"`
	QuizID       uint               `json:"quiz_id"`
	Answers      []AnswerView       `json:"answers"`
}

type QuizSummary struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	Category        *string               `json:"category"`
	DifficultyLevel model.DifficultyLevel `json:"difficulty_level"`
	TimeLimit       *int                  `json:"time_limit"`
	IsActive        bool                  `json:"is_active"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
	CreatedBy       *string               `json:"created_by"`
	UpdatedBy       *string               `json:"updated_by"`
	QuestionCount   int                   `json:"question_count"`
}

// QuizDetail is the educator view: every question with its answers, correctness included.
type QuizDetail struct {
	QuizSummary
	Questions []QuestionView `json:"questions"`
}

type StudentAnswerView struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	OrderIndex int    `json:"order_index"`
}

type StudentQuestionView struct {
	ID           uint                `json:"id"`
	Text         string              `json:"text"`
	QuestionType model.QuestionType  `json:"question_type"`
	Points       int                 `json:"points"`
	OrderIndex   int                 `json:"order_index"`
	Answers      []StudentAnswerView `json:"answers"`
}

// StudentQuizView carries no correctness flags and no explanations.
type StudentQuizView struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	Category        *string               `json:"category"`
	DifficultyLevel model.DifficultyLevel `json:"difficulty_level"`
	TimeLimit       *int                  `json:"time_limit"`
	QuestionCount   int                   `json:"question_count"`
	Questions       []StudentQuestionView `json:"questions"`
}

type QuizListResult struct {
	Quizzes    []QuizSummary   `json:"quizzes"`
	Pagination util.Pagination `json:"pagination"`
}

func newQuizSummary(q *model.Quiz, questionCount int) QuizSummary {
	return QuizSummary{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		Category:        q.Category,
		DifficultyLevel: q.DifficultyLevel,
		TimeLimit:       q.TimeLimit,
		IsActive:        q.IsActive,
		CreatedAt:       util.FormatTimestamp(q.CreatedAt),
		UpdatedAt:       util.FormatTimestamp(q.UpdatedAt),
		CreatedBy:       q.CreatedBy,
		UpdatedBy:       q.UpdatedBy,
		QuestionCount:   questionCount,
	}
}

func NewQuizDetail(q *model.Quiz) *QuizDetail {
	detail := &QuizDetail{
		QuizSummary: newQuizSummary(q, q.QuestionCount()),
		Questions:   make([]QuestionView, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		qv := QuestionView{
			ID:           question.ID,
			Text:         question.Text,
			QuestionType: question.QuestionType,
			Explanation:  question.Explanation,
			Points:       question.Points,
			OrderIndex:   question.OrderIndex,
			CreatedAt:    util.FormatTimestamp(question.CreatedAt),
			QuizID:       question.QuizID,
			Answers:      make([]AnswerView, 0, len(question.Answers)),
		}
		for _, a := range question.Answers {
			qv.Answers = append(qv.Answers, AnswerView{
				ID:          a.ID,
				Text:        a.Text,
				IsCorrect:   a.IsCorrect,
				Explanation: a.Explanation,
				OrderIndex:  a.OrderIndex,
				CreatedAt:   util.FormatTimestamp(a.CreatedAt),
				QuestionID:  a.QuestionID,
			})
		}
		detail.Questions = append(detail.Questions, qv)
	}
	return detail
}

func NewStudentQuizView(q *model.Quiz) *StudentQuizView {
	view := &StudentQuizView{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		Category:        q.Category,
		DifficultyLevel: q.DifficultyLevel,
		TimeLimit:       q.TimeLimit,
		QuestionCount:   q.QuestionCount(),
		Questions:       make([]StudentQuestionView, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		sq := StudentQuestionView{
			ID:           question.ID,
			Text:         question.Text,
			QuestionType: question.QuestionType,
			Points:       question.Points,
			OrderIndex:   question.OrderIndex,
			Answers:      make([]StudentAnswerView, 0, len(question.Answers)),
		}
		for _, a := range question.Answers {
			sq.Answers = append(sq.Answers, StudentAnswerView{ID: a.ID, Text: a.Text, OrderIndex: a.OrderIndex})
		}
		view.Questions = append(view.Questions, sq)
	}
	return view
}
