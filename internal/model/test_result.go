package model

import (
	"time"
)

// Prediction is the binary outcome of the ML model. "SI" means the user
// likely suffers burnout and needs recommendations.
type Prediction string

const (
	PredictionPositive Prediction = "SI"
	PredictionNegative Prediction = "N"
)

// IsPositive maps the prediction to the polarity recommendations are tagged with.
func (p Prediction) IsPositive() bool { return p == PredictionPositive }

// TestResult is the persisted outcome of one completed test. The unique
// index on TestID enforces at most one result per test.
type TestResult struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	TestID       uint       `json:"test_id" gorm:"not null;uniqueIndex"`
	Prediction   Prediction `json:"prediction" gorm:"size:10;not null"`
	Probability  float64    `json:"probability" gorm:"not null"`
	ModelVersion string     `json:"model_version" gorm:"size:50;not null"`
	PredictedAt  time.Time  `json:"predicted_at" gorm:"autoCreateTime"`

	Recommendations []TestRecommendation `json:"recommendations,omitempty" gorm:"foreignKey:TestResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
