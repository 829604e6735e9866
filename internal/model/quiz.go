package model

import "time"

type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

var DifficultyLevels = []DifficultyLevel{Beginner, Intermediate, Advanced}

func (d DifficultyLevel) Valid() bool {
	for _, lvl := range DifficultyLevels {
		if d == lvl {
			return true
		}
	}
	return false
}

type Quiz struct {
	BaseModel
	Title           string          `gorm:"size:100;not null"`
	Description     *string         `gorm:"type:text"`
	Category        *string         `gorm:"size:50;index"`
	DifficultyLevel DifficultyLevel `gorm:"size:20;not null;index"`
	TimeLimit       *int            // minutes, nil or 0 means unlimited
	IsActive        bool            `gorm:"not null;index"`
	UpdatedAt       time.Time
	CreatedBy       *string `gorm:"size:100"`
	UpdatedBy       *string `gorm:"size:100"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (Quiz) TableName() string {
	return "quiz"
}

// HasTimeLimit reports whether the quiz declares a positive limit in minutes.
func (q *Quiz) HasTimeLimit() bool {
	return q.TimeLimit != nil && *q.TimeLimit > 0
}

func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}

func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
