package models

import "time"

// Well-known metric event types.
const (
	MetricInscription  = "inscripcion"
	MetricSatisfaction = "satisfaccion"
)

// MetricEvent is a generic typed numeric observation used by the
// dashboard rollups. Events are append-only.
type MetricEvent struct {
	ID        int       `json:"id"`
	Type      string    `json:"tipo"`
	Value     float64   `json:"valor"`
	CreatedAt time.Time `json:"fecha"`
}
