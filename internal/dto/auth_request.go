package dto

import "uni-seeder/internal/model"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest mirrors POST /auth/register. University carries the
// university id as a string because that is what the endpoint parses.
type RegisterRequest struct {
	Email         string     `json:"email" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	Password      string     `json:"password" validate:"required"`
	Role          model.Role `json:"role,omitempty"`
	University    string     `json:"university,omitempty"`
	Degree        string     `json:"degree,omitempty"`
	OpenToContact bool       `json:"openToContact"`
}
