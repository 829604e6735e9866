package service

import (
	"encoding/json"

	"language_quiz_backend/internal/util"
)

type AnswerSpec struct {
	Text        *string `json:"text"`
	IsCorrect   *bool   `json:"is_correct"`
	Explanation *string `json:"explanation"`
}

type QuestionSpec struct {
	Text         *string      `json:"text"`
	QuestionType *string      `json:"question_type"`
	Explanation  *string      `json:"explanation"`
	Points       *int         `json:"points"`
	Answers      []AnswerSpec `json:"answers"`
}

// QuizSpec is the authoring payload. Questions is nil when the key is absent
// and empty when an empty list was sent.
type QuizSpec struct {
	Title           *string        `json:"title" binding:"omitempty,max=100"`
	Description     *string        `json:"description"`
	Category        *string        `json:"category" binding:"omitempty,max=50"`
	DifficultyLevel *string        `json:"difficulty_level"`
	TimeLimit       *int           `json:"time_limit"`
	Questions       []QuestionSpec `json:"questions"`
}

type UpdateQuizRequest struct {
	Title           util.Optional[string] `json:"title"`
	Description     util.Optional[string] `json:"description"`
	Category        util.Optional[string] `json:"category"`
	DifficultyLevel util.Optional[string] `json:"difficulty_level"`
	TimeLimit       util.Optional[int]    `json:"time_limit"`
	IsActive        util.Optional[bool]   `json:"is_active"`
}

type ListQuizzesParams struct {
	Page       int
	PerPage    int
	Category   string
	Difficulty string
	ActiveOnly bool
}

type StartSessionRequest struct {
	StudentID *string `json:"student_id"`
}

// SubmitQuizRequest keeps both fields raw: a missing answers key is a
// validation failure and started_at is only honoured when it is a string.
type SubmitQuizRequest struct {
	StartedAt json.RawMessage `json:"started_at"`
	Answers   json.RawMessage `json:"answers"`
}

type ValidateAnswersRequest struct {
	Answers json.RawMessage `json:"answers"`
}

type TimeCheckRequest struct {
	StartedAt json.RawMessage `json:"started_at" binding:"required"`
}
