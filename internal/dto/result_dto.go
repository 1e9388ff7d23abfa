package dto

import "time"

// TestResultDetailDTO is the outcome of a completed test with its assigned
// recommendations, as shown to the user.
type TestResultDetailDTO struct {
	ID              uint                        `json:"id"`
	TestID          uint                        `json:"test_id"`
	Prediction      string                      `json:"prediction"`
	Probability     float64                     `json:"probability"`
	ModelVersion    string                      `json:"model_version"`
	PredictedAt     time.Time                   `json:"predicted_at"`
	Recommendations []RecommendationResponseDTO `json:"recommendations"`
}
