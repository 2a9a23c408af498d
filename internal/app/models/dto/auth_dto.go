package dto

// LoginRequest represents the admin login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// LoginResponse represents a successful admin login
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn" example:"86400"` // seconds
}
