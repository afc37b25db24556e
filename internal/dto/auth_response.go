package dto

import "uni-seeder/internal/model"

type AuthResponse struct {
	Message string     `json:"message,omitempty"`
	User    model.User `json:"user"`
	Token   string     `json:"token"`
}
