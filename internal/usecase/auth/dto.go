package auth

// SignupRequest represents the request payload for registering an account.
// No password strength policy beyond non-empty is enforced.
type SignupRequest struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginRequest represents the request payload for a credential check.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthResponse is the confirmation envelope returned by both signup and
// login. No session or token is issued.
type AuthResponse struct {
	Message string
	UserID  string
	Plan    string
}
