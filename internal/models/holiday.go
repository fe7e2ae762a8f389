package models

import "time"

// Feriados são informativos: marcam o calendário mas não impedem
// agendamento (decisão de produto).
type Holiday struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"column:data;size:10;not null;uniqueIndex" json:"data"`
	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}
