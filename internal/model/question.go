package model

import (
	"time"
)

// Question is one item of the burnout questionnaire. QuestionKey is the
// stable short identifier ("pregunta1".."pregunta19") the ML service is fed
// with; the numeric ID is internal.
type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	QuestionKey  string    `json:"question_key" gorm:"size:50;not null;uniqueIndex"`
	QuestionText string    `json:"question_text" gorm:"type:text;not null"`
	Category     *string   `json:"category,omitempty" gorm:"size:100"`
	Order        int       `json:"order" gorm:"not null"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Options []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// QuestionOption is one selectable answer for a question.
type QuestionOption struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	QuestionID  uint      `json:"question_id" gorm:"not null;index"`
	OptionText  string    `json:"option_text" gorm:"size:100;not null"`
	OptionValue string    `json:"option_value" gorm:"size:100;not null"`
	Order       int       `json:"order" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
