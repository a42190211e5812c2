// Package models contains the domain structures shared between the
// business services and the storage layer. JSON tags follow the wire
// format of the public site (Spanish field names).
package models

import "time"

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the supported roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`     // Unique identifier (uuid)
	Name         string    `json:"nombre"` // Display name
	Email        string    `json:"correo"` // Unique, case-sensitive as stored
	PasswordHash string    `json:"-"`      // bcrypt hash, never serialized
	Role         string    `json:"rol"`    // RoleUser or RoleAdmin
	RegisteredAt time.Time `json:"fecha_registro"`
}
