package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
)

// GuestUserID stamps orders placed without a logged-in session.
const GuestUserID = "guest"

// User records are persisted as JSON documents, so the password hash keeps a
// JSON tag. Handlers must never return a User directly — use Public().
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"passwordHash,omitempty"`
	Role          UserRole  `json:"role"`
	Avatar        string    `json:"avatar,omitempty"`
	LoyaltyPoints int       `json:"loyaltyPoints,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicUser is the safe response shape: everything except credentials.
type PublicUser struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          UserRole `json:"role"`
	Avatar        string   `json:"avatar,omitempty"`
	LoyaltyPoints int      `json:"loyaltyPoints,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Avatar:        u.Avatar,
		LoyaltyPoints: u.LoyaltyPoints,
	}
}
