package dto

import "time"

// UserResponseDTO is the public view of an account.
type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDetailResponseDTO adds per-user test statistics for the profile view.
type UserDetailResponseDTO struct {
	UserResponseDTO
	TotalTests     int64 `json:"total_tests"`
	CompletedTests int64 `json:"completed_tests"`
}

// UserUpdateDTO is a partial profile update; only non-nil fields are applied.
type UserUpdateDTO struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Lastname *string `json:"lastname" binding:"omitempty,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
}

// ChangePasswordDTO is the payload for rotating the caller's own password.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}
