package dto

// LoginRequest is the dashboard login payload. Admins log in with the
// configured username; tutors with their registered email address.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse carries the issued session token and the identity behind it
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"28800"`
	Role      string `json:"role" example:"ADMIN" enums:"ADMIN,TUTOR"`
	Name      string `json:"name" example:"Administrator"`
	Email     string `json:"email,omitempty" example:"tutor@example.com"`
}
