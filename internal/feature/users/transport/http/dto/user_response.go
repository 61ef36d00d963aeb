package dto

import "user_backend/internal/feature/auth/domain/entity"

// ListRes is the envelope returned by the user list endpoint.
type ListRes struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []*entity.User `json:"data"`
}

// ItemRes is the envelope returned for a single user record.
type ItemRes struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *entity.User `json:"data"`
}

// StatusRes is the envelope for responses without a data payload.
type StatusRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationErrorRes enumerates every failing field of a rejected request.
type ValidationErrorRes struct {
	Error   string            `json:"error"`
	Message map[string]string `json:"message"`
}
