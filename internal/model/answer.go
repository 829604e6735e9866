package model

type Answer struct {
	BaseModel
	Text        string  `gorm:"size:500;not null"`
	IsCorrect   bool    `gorm:"not null"`
	Explanation *string `gorm:"type:text"`
	OrderIndex  int     `gorm:"not null;index"`
	QuestionID  uint    `gorm:"not null;index"`
}

func (Answer) TableName() string {
	return "answer"
}
