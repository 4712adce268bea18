package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// StatusResponse drives the sign-in screen: when no admin exists yet the UI
// offers the first-admin bootstrap tab instead of login.
type StatusResponse struct {
	HasAdmin bool `json:"has_admin"`
}
