package model

import (
	"time"
)

// Recommendation is a static advice entry shown to users after a test,
// tagged with the prediction polarity it applies to.
type Recommendation struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Title             string    `json:"title" gorm:"size:200;not null"`
	Description       string    `json:"description" gorm:"type:text;not null"`
	Category          *string   `json:"category,omitempty" gorm:"size:100"`
	ForPositiveResult bool      `json:"for_positive_result" gorm:"not null;default:true"`
	Active            bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TestRecommendation records which recommendations were assigned to a
// result, and when. Unique per (result, recommendation).
type TestRecommendation struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	TestResultID     uint           `json:"test_result_id" gorm:"not null;uniqueIndex:idx_result_recommendation"`
	RecommendationID uint           `json:"recommendation_id" gorm:"not null;uniqueIndex:idx_result_recommendation"`
	Recommendation   Recommendation `json:"recommendation,omitempty" gorm:"foreignKey:RecommendationID"`
	AssignedAt       time.Time      `json:"assigned_at" gorm:"autoCreateTime"`
}
