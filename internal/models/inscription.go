package models

import "time"

// Inscription is a lead captured by the landing-page contact form.
// Rows are immutable once created, except for the admin delete.
type Inscription struct {
	ID        int       `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Phone     *string   `json:"telefono,omitempty"`
	Message   *string   `json:"mensaje,omitempty"`
	CreatedAt time.Time `json:"fecha"` // server-assigned
}

// NewLead carries the form fields of an incoming inscription before it
// is persisted. Phone and Message may be empty.
type NewLead struct {
	Name    string `json:"nombre"`
	Email   string `json:"correo"`
	Phone   string `json:"telefono,omitempty"`
	Message string `json:"mensaje,omitempty"`
}
