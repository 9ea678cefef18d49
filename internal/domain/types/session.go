package types

// User is the administrator profile returned by login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Session is the bearer token and the profile it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the full login reply; unlike other endpoints the caller
// inspects Success and Message directly.
type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *Session `json:"data,omitempty"`
}
