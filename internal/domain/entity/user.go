// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. A user owns at most one cart and
// any number of orders.
type User struct {
	ID           int64     // Auto-increment primary key.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier; unique across the system.
	PasswordHash string    // Stores the bcrypt-hashed password.
	Role         Role      // Single authorization role; defaults to RoleUser.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Principal is the authenticated identity established from a validated token.
// It is passed explicitly from the delivery layer into use cases; services
// never read the acting user from ambient state.
type Principal struct {
	Email string
	Role  Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
