package dto

import "github.com/finlearnhq/finlearn_backend/internal/core/domain"

// RegisterUserRequest is the payload for user self-registration.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the shared payload for user and admin credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserLoginResponse is returned on successful user login or registration.
type UserLoginResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// AdminRegisterRequest is the payload for admin registration.
type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminSummary is the admin identity snippet embedded in login responses.
type AdminSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdminLoginResponse is returned on successful admin login.
type AdminLoginResponse struct {
	Token string       `json:"token"`
	Admin AdminSummary `json:"admin"`
}
