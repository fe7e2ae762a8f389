package models

import "time"

// Trilha append-only de transições de status.
type AppointmentHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`

	PreviousStatus string `gorm:"size:20" json:"previous_status"`
	NewStatus      string `gorm:"size:20" json:"new_status"`

	Type   string `gorm:"size:30;not null" json:"type"`
	Reason string `gorm:"size:255" json:"reason"`
	Actor  string `gorm:"size:50" json:"actor"`

	CreatedAt time.Time `json:"created_at"`
}
