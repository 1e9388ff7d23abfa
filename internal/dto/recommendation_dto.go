package dto

import "time"

// RecommendationCreateDTO is for admins creating an advice entry.
type RecommendationCreateDTO struct {
	Title             string  `json:"title" binding:"required,max=200"`
	Description       string  `json:"description" binding:"required"`
	Category          *string `json:"category" binding:"omitempty,max=100"`
	ForPositiveResult *bool   `json:"for_positive_result"`
	Active            *bool   `json:"active"`
}

// RecommendationUpdateDTO is a partial update; only non-nil fields are applied.
type RecommendationUpdateDTO struct {
	Title             *string `json:"title" binding:"omitempty,max=200"`
	Description       *string `json:"description" binding:"omitempty"`
	Category          *string `json:"category" binding:"omitempty,max=100"`
	ForPositiveResult *bool   `json:"for_positive_result"`
	Active            *bool   `json:"active"`
}

type RecommendationResponseDTO struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          *string   `json:"category,omitempty"`
	ForPositiveResult bool      `json:"for_positive_result"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
