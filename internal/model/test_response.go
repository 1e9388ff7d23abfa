package model

import (
	"time"
)

// TestResponse is one answer to one question within a test. The composite
// unique index makes resubmission an update, never a duplicate row.
type TestResponse struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	TestID      uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_test_question"`
	QuestionID  uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_test_question"`
	Question    Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerValue string    `json:"answer_value" gorm:"size:100;not null"`
	AnsweredAt  time.Time `json:"answered_at" gorm:"autoCreateTime"`
}
