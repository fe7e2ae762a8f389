package models

import "time"

// Bloqueio administrativo. Sem hora_inicio/hora_fim o bloqueio cobre
// os dias inteiros entre data_inicio e data_fim.
type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartDate string `gorm:"column:data_inicio;size:10;not null;index" json:"data_inicio"`
	EndDate   string `gorm:"column:data_fim;size:10;not null;index" json:"data_fim"`

	StartTime string `gorm:"column:hora_inicio;size:5" json:"hora_inicio"`
	EndTime   string `gorm:"column:hora_fim;size:5" json:"hora_fim"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
