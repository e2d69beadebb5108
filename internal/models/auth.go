package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a staff member.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IP       string `json:"-"`
}

// LoginResponse returns the issued token and staff info.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	Staff       StaffInfo `json:"staff"`
	IssuedAt    time.Time `json:"issued_at"`
}

// StaffInfo describes the authenticated staff member in responses.
type StaffInfo struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name,omitempty"`
	Role     StaffRole `json:"role"`
}

// StaffClaims represents the JWT payload for console access tokens. The role
// claim is advisory only: the authorization gate re-reads the staff record on
// every privileged action, so a stale token cannot outlive a suspension.
type StaffClaims struct {
	StaffID string    `json:"staff_id"`
	Email   string    `json:"email"`
	Role    StaffRole `json:"role"`
	jwt.RegisteredClaims
}
