package models

import "time"

// Dias atendidos usam os tokens domingo..sabado (ver domain/schedule).
type Professional struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	AttendedDays []string `gorm:"serializer:json" json:"dias_atendidos"`

	StartTime string `gorm:"size:5" json:"hora_inicio"`
	EndTime   string `gorm:"size:5" json:"hora_fim"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
