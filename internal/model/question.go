package model

import "errors"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	FillBlank      QuestionType = "fill_blank"
)

var QuestionTypes = []QuestionType{MultipleChoice, TrueFalse, FillBlank}

func (t QuestionType) Valid() bool {
	for _, qt := range QuestionTypes {
		if t == qt {
			return true
		}
	}
	return false
}

// MinAnswers is the smallest number of answer choices a question may carry.
const MinAnswers = 2

var (
	ErrTooFewAnswers       = errors.New("question must have at least 2 answer choices")
	ErrCorrectAnswerCount  = errors.New("question must have exactly one correct answer")
	ErrInvalidQuestionType = errors.New("unknown question type")
)

type Question struct {
	BaseModel
	Text         string       `gorm:"size:500;not null"`
	QuestionType QuestionType `gorm:"size:20;not null"`
	Explanation  *string      `gorm:"type:text"`
	Points       int          `gorm:"not null"`
	OrderIndex   int          `gorm:"not null;index"`
	QuizID       uint         `gorm:"not null;index"`

	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "question"
}

// NewQuestion attaches answers to q and returns it only when the aggregate is
// well formed: a known type, at least MinAnswers choices and exactly one correct.
func NewQuestion(q Question, answers []Answer) (Question, error) {
	if !q.QuestionType.Valid() {
		return Question{}, ErrInvalidQuestionType
	}
	if len(answers) < MinAnswers {
		return Question{}, ErrTooFewAnswers
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return Question{}, ErrCorrectAnswerCount
	}

	q.Answers = answers
	return q, nil
}

// CorrectAnswer returns the first answer flagged correct, or nil when stored
// data carries none.
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}

func (q *Question) AnswerByID(id uint) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}
