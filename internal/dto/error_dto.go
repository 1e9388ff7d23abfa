package dto

// ErrorResponse is the uniform error payload. Kind is a stable
// machine-readable code; Message is for humans.
type ErrorResponse struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
