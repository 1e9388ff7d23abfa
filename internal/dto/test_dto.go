package dto

import "time"

// TestCreateDTO carries the demographics a user provides when starting a test.
// practicasprepro uses the custom "sino" rule ("Sí" or "No").
type TestCreateDTO struct {
	Ciclo           int    `json:"ciclo" binding:"required,min=1,max=20"`
	Genero          string `json:"genero" binding:"required,max=50"`
	Facultad        string `json:"facultad" binding:"required,max=255"`
	Practicasprepro string `json:"practicasprepro" binding:"required,sino"`
}

// ResponseSubmitDTO is a single answer to one question.
type ResponseSubmitDTO struct {
	QuestionID  uint   `json:"question_id" binding:"required,min=1"`
	AnswerValue string `json:"answer_value" binding:"required,max=100"`
}

// ResponsesBatchDTO submits several answers at once, applied in order.
type ResponsesBatchDTO struct {
	Responses []ResponseSubmitDTO `json:"responses" binding:"required,min=1,dive"`
}

// SubmitAckDTO acknowledges a stored answer with progress counters.
type SubmitAckDTO struct {
	Message        string `json:"message"`
	ResponseID     uint   `json:"response_id,omitempty"`
	TotalResponses int64  `json:"total_responses"`
	Remaining      int64  `json:"remaining"`
}

// TestResponseDTO is the summary view of a test with progress counters.
type TestResponseDTO struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"user_id"`
	Ciclo             int        `json:"ciclo"`
	Genero            string     `json:"genero"`
	Facultad          string     `json:"facultad"`
	Practicasprepro   string     `json:"practicasprepro"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	TotalResponses    int64      `json:"total_responses"`
	ExpectedResponses int        `json:"expected_responses"`
}

// TestListItemDTO is one row of a user's test history.
type TestListItemDTO struct {
	ID          uint       `json:"id"`
	Ciclo       int        `json:"ciclo"`
	Genero      string     `json:"genero"`
	Facultad    string     `json:"facultad"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	HasResult   bool       `json:"has_result"`
}

// ResponseDetailDTO is an answer joined with its question for the detail view.
type ResponseDetailDTO struct {
	ID           uint      `json:"id"`
	QuestionID   uint      `json:"question_id"`
	QuestionKey  string    `json:"question_key"`
	QuestionText string    `json:"question_text"`
	AnswerValue  string    `json:"answer_value"`
	AnsweredAt   time.Time `json:"answered_at"`
}

// TestDetailDTO is the full view of a test with all its answers.
type TestDetailDTO struct {
	TestResponseDTO
	Responses []ResponseDetailDTO `json:"responses"`
}
