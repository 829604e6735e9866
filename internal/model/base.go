package model

import (
	"time"
)

// BaseModel carries the surrogate key and creation stamp shared by quiz, question and answer rows.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
