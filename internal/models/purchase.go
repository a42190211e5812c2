package models

import "time"

// Purchase is a paid plan order. Rows are populated by the payment
// integration and are read-only here. UserID is nullable: a purchase
// survives the deletion of its owner.
type Purchase struct {
	ID     int       `json:"id"`
	UserID *string   `json:"usuario_id"`
	Plan   string    `json:"plan"`
	Amount float64   `json:"monto"`
	PaidAt time.Time `json:"fecha"`

	// Owner fields joined for the admin listing; empty when the
	// owning user was deleted.
	UserName  *string `json:"nombre,omitempty"`
	UserEmail *string `json:"correo,omitempty"`
}
