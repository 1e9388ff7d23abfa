package model

import (
	"time"
)

type TestStatus string

const (
	TestStatusInProgress TestStatus = "in_progress"
	TestStatusCompleted  TestStatus = "completed"
)

// ExpectedResponses is the number of questionnaire answers a test must have
// before it can be completed.
const ExpectedResponses = 19

// Test is one questionnaire attempt by one user. It owns its responses and
// at most one result; both are removed with the test.
type Test struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	// Demographic fields sent to the ML service alongside the answers.
	Ciclo           int    `json:"ciclo" gorm:"not null"`
	Genero          string `json:"genero" gorm:"size:50;not null"`
	Facultad        string `json:"facultad" gorm:"size:255;not null"`
	Practicasprepro string `json:"practicasprepro" gorm:"size:10;not null"`

	Status      TestStatus `json:"status" gorm:"size:20;not null;default:'in_progress'"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Responses []TestResponse `json:"responses,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Result    *TestResult    `json:"result,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
