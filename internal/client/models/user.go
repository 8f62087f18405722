// Package models defines the typed payloads exchanged with the bookkeeping API.
package models

// User is the authenticated account holder as returned by the auth endpoints.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// ProfileResponse wraps the user record returned by GET /api/auth/profile.
type ProfileResponse struct {
	User *User `json:"user"`
}
