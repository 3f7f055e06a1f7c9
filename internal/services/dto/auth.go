package dto

import "academy_backend/internal/models"

// RegisterSuperAdminRequest is bound from the multipart form of the
// bootstrap registration endpoint.
type RegisterSuperAdminRequest struct {
	Name     string `form:"name" json:"name" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
