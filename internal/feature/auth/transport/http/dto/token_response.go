package dto

// TokenRes represents the payload returned by /login and /refresh.
type TokenRes struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// MessageRes represents a simple acknowledgement response.
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes represents a structured error response.
type ErrorRes struct {
	Error string `json:"error"`
}
