package dto

import "time"

// QuestionOptionCreateDTO is used within QuestionCreateDTO.
type QuestionOptionCreateDTO struct {
	OptionText  string `json:"option_text" binding:"required,max=100"`
	OptionValue string `json:"option_value" binding:"required,max=100"`
	Order       int    `json:"order" binding:"required,min=1"`
}

// QuestionCreateDTO is for admins creating a questionnaire item with its options.
type QuestionCreateDTO struct {
	QuestionKey  string                    `json:"question_key" binding:"required,max=50"`
	QuestionText string                    `json:"question_text" binding:"required"`
	Category     *string                   `json:"category" binding:"omitempty,max=100"`
	Order        int                       `json:"order" binding:"required,min=1"`
	Active       *bool                     `json:"active"`
	Options      []QuestionOptionCreateDTO `json:"options" binding:"omitempty,dive"`
}

// QuestionUpdateDTO is a partial update; only non-nil fields are applied.
// QuestionKey is immutable once created since the ML contract depends on it.
type QuestionUpdateDTO struct {
	QuestionText *string `json:"question_text" binding:"omitempty"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	Order        *int    `json:"order" binding:"omitempty,min=1"`
	Active       *bool   `json:"active"`
}

type QuestionOptionResponseDTO struct {
	ID          uint   `json:"id"`
	OptionText  string `json:"option_text"`
	OptionValue string `json:"option_value"`
	Order       int    `json:"order"`
}

type QuestionResponseDTO struct {
	ID           uint                        `json:"id"`
	QuestionKey  string                      `json:"question_key"`
	QuestionText string                      `json:"question_text"`
	Category     *string                     `json:"category,omitempty"`
	Order        int                         `json:"order"`
	Active       bool                        `json:"active"`
	Options      []QuestionOptionResponseDTO `json:"options,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}
