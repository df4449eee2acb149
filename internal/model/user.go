package model

// User represents the authenticated user's profile as returned by the service.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request body.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse represents the service's answer to a successful login or
// registration: a bearer token plus the user it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
