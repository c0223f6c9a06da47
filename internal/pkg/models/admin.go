package models

import "time"

// Admin authenticates with username and password
type Admin struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Principal returns the admin variant of the resolved principal
func (a *Admin) Principal() *AdminPrincipal {
	return &AdminPrincipal{ID: a.ID, Username: a.Username}
}

// AdminLoginRequest is the admin login payload
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanumunderscore"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}
