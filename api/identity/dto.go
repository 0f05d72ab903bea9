package identity

// AuthRequest represents a request to sign in with the admin key.
type AuthRequest struct {
	AdminKey string `json:"admin_key" binding:"required"`
}

// AuthResponse carries the issued access token.
type AuthResponse struct {
	Token string `json:"token"`
}
